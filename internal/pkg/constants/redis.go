package constants

// Redis key formats
const (
	// OTP Challenge Engine
	KeyOTPCode     = "verification:otp:%s"          // Format: verification:otp:{reference_id}
	KeyOTPAttempts = "verification:otp:attempts:%s" // Format: verification:otp:attempts:{reference_id}
)
