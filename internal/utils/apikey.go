package utils

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// APIKeyBytes is the entropy of a generated machine API key. The key is
// printed hex encoded, so it is twice as long.
const APIKeyBytes = 32

// GenerateAPIKey returns a new machine API key and the bcrypt hash that goes
// into API_KEY_HASH. Only the hash is stored by the service.
func GenerateAPIKey() (key, hash string, err error) {
	b := make([]byte, APIKeyBytes)
	if _, err := rand.Read(b); err != nil {
		return "", "", fmt.Errorf("failed to read random bytes for API key: %w", err)
	}
	key = hex.EncodeToString(b)
	hash, err = HashAPIKey(key)
	if err != nil {
		return "", "", fmt.Errorf("failed to hash API key: %w", err)
	}
	return key, hash, nil
}

// HashAPIKey hashes a plaintext API key using bcrypt.
func HashAPIKey(key string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(key), bcrypt.DefaultCost)
	return string(hash), err
}

// CheckAPIKeyHash compares a plaintext API key with a bcrypt hash.
func CheckAPIKeyHash(key, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(key)) == nil
}
