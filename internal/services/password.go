package services

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// DefaultPasswordLength matches the length used by the setup defaults.
const DefaultPasswordLength = 12

// passwordAlphabet: 26 lowercase + 26 uppercase + 10 digits + 8 symbols.
const passwordAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789!@#$%^&*"

// GeneratePassword draws each character independently and uniformly
// from passwordAlphabet. There is no character-class guarantee: an
// all-digit password is a legal outcome.
func GeneratePassword(length int) (string, error) {
	if length <= 0 {
		length = DefaultPasswordLength
	}

	alphabetSize := big.NewInt(int64(len(passwordAlphabet)))
	buf := make([]byte, length)
	for i := range buf {
		n, err := rand.Int(rand.Reader, alphabetSize)
		if err != nil {
			return "", fmt.Errorf("failed to generate random bytes: %w", err)
		}
		buf[i] = passwordAlphabet[n.Int64()]
	}

	return string(buf), nil
}
