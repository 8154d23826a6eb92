package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/pbkdf2"
)

const (
	saltBytes  = 16
	tokenBytes = 24
	kdfRounds  = 4096
	kdfKeyLen  = 32
)

// GenerateSalt generates a fresh random salt for a new user
func GenerateSalt() (string, error) {
	bytes := make([]byte, saltBytes)
	if _, err := rand.Read(bytes); err != nil {
		return "", fmt.Errorf("failed to generate salt: %w", err)
	}
	return hex.EncodeToString(bytes), nil
}

// HashPassword derives a one-way hash from the password and salt. Login
// re-derives with the stored salt and compares the hex strings.
func HashPassword(password, salt string) string {
	key := pbkdf2.Key([]byte(password), []byte(salt), kdfRounds, kdfKeyLen, sha256.New)
	return hex.EncodeToString(key)
}

// GenerateToken generates an opaque bearer token for a session
func GenerateToken() (string, error) {
	bytes := make([]byte, tokenBytes)
	if _, err := rand.Read(bytes); err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	return hex.EncodeToString(bytes), nil
}

// ValidPassword checks the registration password policy: 8-30 characters
// with at least one uppercase letter, one lowercase letter, one digit and
// one character outside A-Za-z0-9.
func ValidPassword(password string) bool {
	if len(password) < 8 || len(password) > 30 {
		return false
	}

	var hasUpper, hasLower, hasDigit, hasSpecial bool
	for _, c := range password {
		switch {
		case c >= 'A' && c <= 'Z':
			hasUpper = true
		case c >= 'a' && c <= 'z':
			hasLower = true
		case c >= '0' && c <= '9':
			hasDigit = true
		default:
			hasSpecial = true
		}
	}

	return hasUpper && hasLower && hasDigit && hasSpecial
}
