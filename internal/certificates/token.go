package certificates

import (
	"crypto/rand"
	"encoding/hex"
)

// TokenLength is the length of an encoded certificate token: 128 bits as hex.
const TokenLength = 32

// GenerateToken returns a fresh opaque certificate token. Tokens are drawn from
// the process-wide secure random source; uniqueness is not checked against
// existing rows since collisions are negligible at this entropy.
func GenerateToken() string {
	buf := make([]byte, TokenLength/2)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand never fails on a healthy system; a broken entropy
		// source is not something a request handler can recover from.
		panic(err)
	}
	return hex.EncodeToString(buf)
}
