package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// StateClaims binds a consent redirect back to the verification session that
// initiated it.
type StateClaims struct {
	ReferenceID string `json:"reference_id"`
	jwt.RegisteredClaims
}

// GenerateStateToken signs a state token carried through the provider consent
// redirect. Its lifetime matches the consent session TTL.
func GenerateStateToken(referenceID, secret string, ttl time.Duration) (string, int64, error) {
	expirationTime := time.Now().Add(ttl)
	expiresAt := expirationTime.Unix()

	claims := jwt.MapClaims{
		"reference_id": referenceID,
		"exp":          expiresAt,
		"iss":          "vericore",
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", 0, err
	}

	return tokenString, expiresAt, nil
}

// ValidateStateToken verifies a state token and returns the reference id it
// was issued for.
func ValidateStateToken(tokenString, secret string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	})
	if err != nil {
		return "", err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return "", fmt.Errorf("invalid state token")
	}

	referenceID, ok := claims["reference_id"].(string)
	if !ok || referenceID == "" {
		return "", fmt.Errorf("state token missing reference_id")
	}
	return referenceID, nil
}
