package claim

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// tokenBytes is the entropy of a verification token. 32 random bytes
// rendered as 64 hex characters; the token is the sole credential for the
// email verification path, so it must be infeasible to guess or enumerate.
const tokenBytes = 32

// GenerateToken mints an opaque verification token from a cryptographically
// secure random source.
func GenerateToken() (string, error) {
	buf := make([]byte, tokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate verification token: %w", err)
	}
	return hex.EncodeToString(buf), nil
}
