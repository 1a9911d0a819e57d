package auth

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
)

// HashSecret is the one-way transform from a plaintext secret to the stored
// credential digest: sha-256 over the UTF-8 bytes, hex-encoded. It is
// deterministic, so a stored digest is never recomputed from itself and a
// correct secret always reproduces it.
func HashSecret(secret string) string {
	sum := sha256.Sum256([]byte(secret))
	return hex.EncodeToString(sum[:])
}

// digestsEqual compares two digests in constant time
func digestsEqual(a, b string) bool {
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}
