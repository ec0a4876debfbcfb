package util

import (
	"crypto/sha256"
	"encoding/hex"
)

// HashContent returns the hex-encoded SHA-256 digest of s.
func HashContent(s string) string {
	sum := sha256.Sum256([]byte(s))
	return hex.EncodeToString(sum[:])
}
