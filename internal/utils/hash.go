package utils

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// HashPassword transforms a plaintext password into a salted bcrypt hash.
//
// bcrypt embeds a per-call random salt into the encoded output, so two calls
// with the same input produce different hashes that both verify correctly.
// The cost factor is bcrypt.DefaultCost; raising it slows brute-force attacks
// at the price of login latency.
//
// An empty password is hashed like any other: strength policy belongs to
// request validation, not to this helper.
//
// Returns the encoded hash string or an error if the input exceeds bcrypt's
// 72-byte limit.
func HashPassword(plaintext string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}

	return string(hash), nil
}

// CheckPassword reports whether plaintext matches the stored bcrypt hash.
//
// The comparison runs in constant time relative to the hash contents.
// A malformed or truncated stored hash yields false rather than an error,
// so a corrupted credential record degrades to "login denied" instead of
// failing the request pipeline.
func CheckPassword(plaintext, storedHash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(storedHash), []byte(plaintext)) == nil
}
