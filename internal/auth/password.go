package auth

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// PasswordHashCost is the bcrypt work factor. Cost 10 keeps hashing
// deliberately slow against brute force while staying tolerable per request.
const PasswordHashCost = 10

// HashPassword computes a salted bcrypt hash of the plaintext password.
// bcrypt embeds a fresh random salt, so hashing the same password twice
// yields different strings.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), PasswordHashCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// CheckPassword reports whether password matches the stored bcrypt hash.
// The comparison is constant-time; any mismatch or malformed hash yields
// false, never an error.
func CheckPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
