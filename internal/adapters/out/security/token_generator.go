package security

import (
	"crypto/rand"
	"encoding/hex"

	"logistics/internal/core/ports"
)

// tokenByteLength is the entropy of a generated token in bytes.
// 32 bytes encode to a 64-character hex string.
const tokenByteLength = 32

// RandomTokenGenerator implements ports.TokenGenerator using crypto/rand.
// Generated tokens are hex-encoded and safe to embed in URLs and emails.
type RandomTokenGenerator struct{}

// NewRandomTokenGenerator creates a generator backed by the operating
// system's cryptographic random source.
func NewRandomTokenGenerator() *RandomTokenGenerator {
	return &RandomTokenGenerator{}
}

// Generate produces a new unguessable token string.
func (g *RandomTokenGenerator) Generate() (string, error) {
	buf := make([]byte, tokenByteLength)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}

var _ ports.TokenGenerator = (*RandomTokenGenerator)(nil)
