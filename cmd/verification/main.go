package main

import (
	"log"
	"os"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/vericore/kyc/internal/pkg/config"
	"github.com/vericore/kyc/internal/pkg/database"
	"github.com/vericore/kyc/internal/pkg/health"
	"github.com/vericore/kyc/internal/pkg/logger"
	"github.com/vericore/kyc/internal/pkg/middleware"
	natspkg "github.com/vericore/kyc/internal/pkg/nats"
	"github.com/vericore/kyc/internal/pkg/server"
	gatewayNats "github.com/vericore/kyc/services/verification/gateway/nats"
	"github.com/vericore/kyc/services/verification/gateway/provider"
	"github.com/vericore/kyc/services/verification/handler"
	"github.com/vericore/kyc/services/verification/repository"
	"github.com/vericore/kyc/services/verification/usecase"
)

func main() {
	appName := "verification-service"
	configPath := os.Getenv("CONFIG_PATH")
	configs := config.InitConfig(configPath)

	zapLogger, err := logger.InitZapLoggerFromConfig(configs)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	defer zapLogger.Close()

	zapLogger.Info("Starting application",
		zap.String("app", appName),
		zap.String("version", configs.App.Version),
		zap.String("environment", configs.App.Environment),
	)

	// Initialize PostgreSQL database connection
	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
	}
	defer postgresClient.Close()

	// Initialize Redis client
	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		zapLogger.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer redisClient.Close()

	// Initialize NATS
	natsClient, err := natspkg.NewClient(configs.NATS.URL)
	if err != nil {
		zapLogger.Fatal("Failed to connect to NATS", zap.Error(err))
	}
	defer natsClient.Close()

	// Initialize repository
	verificationRepo := repository.NewVerificationRepo(configs, postgresClient.GetDB(), redisClient)

	// Initialize gateways
	providerGW := provider.NewClient(configs.Provider, zapLogger)
	eventsGW := gatewayNats.NewNATSGateway(natsClient)

	// Initialize usecase
	verificationUC := usecase.NewVerificationUC(configs, verificationRepo, verificationRepo, providerGW, eventsGW, zapLogger)

	// Initialize handlers
	h := handler.NewHandler(verificationUC, configs)

	// Initialize Echo router
	e := echo.New()

	// Add middlewares
	e.Use(middleware.RequestIDMiddleware())
	e.Use(logger.ZapEchoMiddleware(zapLogger))
	e.Use(middleware.PanicRecoveryMiddleware(zapLogger))

	// Register health endpoints
	health.RegisterHealthEndpoints(e, appName)

	// Register service routes
	h.RegisterRoutes(e)

	zapLogger.Info("Starting server",
		zap.String("app", appName),
		zap.Int("port", configs.Server.Port),
	)

	srv := server.NewGracefulServer(e, zapLogger, configs.Server.Port)
	if err := srv.Start(); err != nil {
		zapLogger.Fatal("Server terminated",
			zap.String("app", appName),
			zap.Error(err),
		)
	}
}
