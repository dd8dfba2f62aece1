package utils

import (
	"crypto/sha256"
	"encoding/hex"
)

// Sha256Hex returns the lowercase hex digest the web clients compute before
// transmitting a password. Used server-side only to seed the admin account
// and in tests.
func Sha256Hex(raw string) string {
	sum := sha256.Sum256([]byte(raw))
	return hex.EncodeToString(sum[:])
}
