package utils

import (
	"crypto/rand"
	"fmt"
)

// GenerateOTP returns a random six-digit one-time code.
func GenerateOTP() (string, error) {
	buf := make([]byte, 3)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	code := int(buf[0])<<16 | int(buf[1])<<8 | int(buf[2])
	code = code % 1000000
	return fmt.Sprintf("%06d", code), nil
}
