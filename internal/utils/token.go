package utils

import (
	"crypto/rand"
	"encoding/hex"
)

// GenerateToken returns an opaque session token of exactly length hex
// characters drawn from crypto/rand.
func GenerateToken(length int) (string, error) {
	buf := make([]byte, (length+1)/2)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf)[:length], nil
}
