package models

// Config represents application configuration
type Config struct {
	App      AppConfig
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	NATS     NATSConfig
	Provider ProviderConfig
	Consent  ConsentConfig
	OTP      OTPConfig
	APIKey   APIKeyConfig
	Logger   LoggerConfig
}

// AppConfig contains application-specific configuration
type AppConfig struct {
	Name        string
	Environment string
	Debug       bool
	Version     string
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
}

// DatabaseConfig contains database connection configuration
type DatabaseConfig struct {
	Host      string
	Port      int
	Username  string
	Password  string
	Database  string
	SSLMode   string
	MaxConns  int
	IdleConns int
}

// RedisConfig contains Redis connection configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
}

// NATSConfig contains NATS connection configuration
type NATSConfig struct {
	URL string
}

// ProviderConfig contains the external verification provider settings.
type ProviderConfig struct {
	Name           string
	BaseURL        string
	APIKey         string
	ClientID       string
	ClientSecret   string
	TimeoutSeconds int
	// TokenTTLHours is set conservatively below the provider's stated
	// token validity (23 for a 24-hour token).
	TokenTTLHours int
	MaxAttempts   int
}

// ConsentConfig contains consent-flow settings.
type ConsentConfig struct {
	// StateSecret signs the state token embedded in consent URLs.
	StateSecret string
	// SessionTTLMinutes bounds how long a subject has to complete consent.
	SessionTTLMinutes int
}

// OTPConfig contains OTP challenge settings.
type OTPConfig struct {
	TTLMinutes  int
	MaxAttempts int
}

// APIKeyConfig holds inbound API keys for the collaborating services.
type APIKeyConfig struct {
	RegistrationService string
	AdminPortal         string
}

// LoggerConfig contains logger configuration
type LoggerConfig struct {
	Level    string
	FilePath string
	Type     string
}
