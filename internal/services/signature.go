package services

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"strings"
)

// VerifySignature checks the Kwify webhook signature: hex-encoded
// HMAC-SHA256 over the raw body, optionally prefixed with "sha256=".
// Verification is opt-in: an empty secret accepts everything.
func VerifySignature(payload []byte, signatureHeader, secret string) bool {
	if secret == "" {
		return true
	}
	if signatureHeader == "" {
		return false
	}

	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(payload)
	expected := hex.EncodeToString(mac.Sum(nil))

	provided := strings.ToLower(strings.TrimPrefix(signatureHeader, "sha256="))

	return subtle.ConstantTimeCompare([]byte(expected), []byte(provided)) == 1
}
