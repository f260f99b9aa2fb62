package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// RenderKey returns the cache key for rendering input in the given format.
// The key format is: render:<format>:<sha256(input)>
func RenderKey(input []byte, format string) string {
	return fmt.Sprintf("render:%s:%s", format, Hash(input))
}

// Hash computes a SHA-256 hash of the input data.
// Returns the full 64-character hex string.
func Hash(data []byte) string {
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}
