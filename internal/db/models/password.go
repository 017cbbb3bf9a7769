package models

import (
	"fmt"

	"github.com/alexedwards/argon2id"
)

// HashPassword hashes a plaintext password using Argon2id with the default parameters.
func HashPassword(password string) (string, error) {
	hash, err := argon2id.CreateHash(password, argon2id.DefaultParams)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}

	return hash, nil
}

// VerifyPassword compares password with an Argon2id hash in constant time.
// A malformed or empty hash never matches.
func VerifyPassword(hash, password string) bool {
	if hash == "" {
		return false
	}

	match, err := argon2id.ComparePasswordAndHash(password, hash)
	if err != nil {
		return false
	}

	return match
}
