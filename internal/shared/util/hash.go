package util

import (
	"crypto/sha256"
	"encoding/hex"
)

// Fingerprint returns the hex-encoded SHA-256 digest of the given text.
// Identical text always yields the identical fingerprint, which makes it
// suitable as a content-addressed cache key.
func Fingerprint(text string) string {
	sum := sha256.Sum256([]byte(text))
	return hex.EncodeToString(sum[:])
}
