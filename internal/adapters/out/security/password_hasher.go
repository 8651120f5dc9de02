// Package security provides credential-handling adapters: password hashing
// and one-time token generation for the user account flows.
package security

import (
	"logistics/internal/core/ports"

	"golang.org/x/crypto/bcrypt"
)

// BcryptPasswordHasher implements ports.PasswordHasher using the bcrypt
// adaptive hashing algorithm. Each hash embeds its own salt, so equal
// passwords produce different hashes.
type BcryptPasswordHasher struct {
	cost int
}

// NewBcryptPasswordHasher creates a hasher with the given bcrypt cost.
// A cost below bcrypt.MinCost falls back to bcrypt.DefaultCost.
func NewBcryptPasswordHasher(cost int) *BcryptPasswordHasher {
	if cost < bcrypt.MinCost {
		cost = bcrypt.DefaultCost
	}
	return &BcryptPasswordHasher{cost: cost}
}

// Hash produces a bcrypt hash of the raw password.
func (h *BcryptPasswordHasher) Hash(raw string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(raw), h.cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Verify reports whether raw matches the stored bcrypt hash.
func (h *BcryptPasswordHasher) Verify(raw, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(raw)) == nil
}

var _ ports.PasswordHasher = (*BcryptPasswordHasher)(nil)
