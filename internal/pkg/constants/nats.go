package constants

// NATS subjects
const (
	// SubjectVerificationCompleted carries terminal session outcomes to the
	// account-approval subsystem.
	SubjectVerificationCompleted = "verification.completed"
)
