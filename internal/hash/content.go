package hash

import (
	"crypto/sha256"
	"encoding/hex"
)

// Content computes the hex-encoded SHA-256 digest of the raw file bytes.
// Two files are exact duplicates iff their content hashes are equal.
func Content(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
