package security

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// HashAdminKey returns the bcrypt hash stored in ADMIN_KEY_HASH
func HashAdminKey(key string) (string, error) {
	if len(key) < 12 {
		return "", fmt.Errorf("admin key must be at least 12 characters")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(key), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash admin key: %w", err)
	}
	return string(hash), nil
}

// CheckAdminKey reports whether key matches hash. An empty hash disables
// admin access.
func CheckAdminKey(hash, key string) bool {
	if hash == "" || key == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(key)) == nil
}
