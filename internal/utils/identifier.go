package utils

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/vericore/kyc/internal/pkg/models"
)

var (
	aadhaarPattern = regexp.MustCompile(`^[2-9][0-9]{11}$`)
	panPattern     = regexp.MustCompile(`^[A-Z]{5}[0-9]{4}[A-Z]$`)
	gstinPattern   = regexp.MustCompile(`^[0-9]{2}[A-Z]{5}[0-9]{4}[A-Z][0-9A-Z]Z[0-9A-Z]$`)
	cinPattern     = regexp.MustCompile(`^[UL][0-9]{5}[A-Z]{2}[0-9]{4}[A-Z]{3}[0-9]{6}$`)
)

// NormalizeIdentifier cleans and validates a claimed identifier for its
// subject type. Validation happens before any session is created or any
// provider is contacted.
func NormalizeIdentifier(subjectType models.SubjectType, identifier string) (string, error) {
	cleaned := strings.TrimSpace(identifier)

	switch subjectType {
	case models.SubjectAadhaar:
		cleaned = strings.ReplaceAll(cleaned, " ", "")
		cleaned = strings.ReplaceAll(cleaned, "-", "")
		// Aadhaar numbers are exactly 12 digits and never start with 0 or 1.
		if !aadhaarPattern.MatchString(cleaned) {
			return "", models.ValidationError("invalid aadhaar number format")
		}
	case models.SubjectPAN:
		cleaned = strings.ToUpper(cleaned)
		if !panPattern.MatchString(cleaned) {
			return "", models.ValidationError("invalid PAN format")
		}
	case models.SubjectGSTIN:
		cleaned = strings.ToUpper(cleaned)
		if !gstinPattern.MatchString(cleaned) {
			return "", models.ValidationError("invalid GSTIN format")
		}
	case models.SubjectCIN:
		cleaned = strings.ToUpper(cleaned)
		if !cinPattern.MatchString(cleaned) {
			return "", models.ValidationError("invalid CIN format")
		}
	default:
		return "", models.ValidationError(fmt.Sprintf("unsupported subject type: %q", subjectType))
	}

	return cleaned, nil
}

// IdentifierHash returns a short stable digest of an identifier, used for
// reference ids and supersession lookups so raw document numbers do not leak
// into keys or logs.
func IdentifierHash(identifier string) string {
	sum := sha256.Sum256([]byte(identifier))
	return hex.EncodeToString(sum[:])[:12]
}

// BuildReferenceID generates the externally-visible session identifier,
// unique per creation instant: {method}_{identifierHash}_{unix millis}.
func BuildReferenceID(method models.VerificationMethod, identifier string) string {
	return fmt.Sprintf("%s_%s_%d", method, IdentifierHash(identifier), time.Now().UnixMilli())
}

// MaskIdentifier hides all but the last four characters of an identifier for
// log output.
func MaskIdentifier(identifier string) string {
	if len(identifier) <= 4 {
		return identifier
	}
	return strings.Repeat("X", len(identifier)-4) + identifier[len(identifier)-4:]
}
