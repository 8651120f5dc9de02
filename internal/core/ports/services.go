package ports

// PasswordHasher hashes raw passwords and verifies candidates against a
// stored hash. The domain layer never sees raw hashing details.
type PasswordHasher interface {
	// Hash produces a storable hash of the raw password.
	Hash(raw string) (string, error)

	// Verify reports whether raw matches the stored hash.
	Verify(raw, hash string) bool
}

// TokenGenerator produces opaque, unguessable one-time token strings for
// email verification and password reset flows.
type TokenGenerator interface {
	Generate() (string, error)
}
