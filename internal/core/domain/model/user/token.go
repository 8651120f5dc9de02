package user

import "time"

// Token lifetimes for the two credential flows.
const (
	emailVerificationTokenTTL = 24 * time.Hour
	passwordResetTokenTTL     = time.Hour
)

// Flow names used in TokenInvalidError messages.
const (
	emailVerificationTokenName = "email verification"
	passwordResetTokenName     = "password reset"
)

// PendingToken pairs a credential-flow token with its expiry. The pair is a
// single unit: it is set atomically when a token is generated and cleared
// atomically when consumed or invalidated, so a token can never exist without
// its expiry or vice versa. A nil *PendingToken means no token is pending.
type PendingToken struct {
	value     string
	expiresAt time.Time
}

// newPendingToken creates a pending token expiring ttl from now (UTC).
func newPendingToken(token string, ttl time.Duration) *PendingToken {
	return &PendingToken{
		value:     token,
		expiresAt: time.Now().UTC().Add(ttl),
	}
}

// RestorePendingToken rehydrates a token pair from persistence.
func RestorePendingToken(token string, expiresAt time.Time) *PendingToken {
	return &PendingToken{
		value:     token,
		expiresAt: expiresAt,
	}
}

// Value returns the token string.
func (t *PendingToken) Value() string {
	return t.value
}

// ExpiresAt returns the UTC expiry instant.
func (t *PendingToken) ExpiresAt() time.Time {
	return t.expiresAt
}

// isValid reports whether the pair exists and its expiry is strictly in the
// future.
func (t *PendingToken) isValid() bool {
	return t != nil && !t.expiresAt.IsZero() && t.expiresAt.After(time.Now().UTC())
}

// matches reports whether the stored token exactly equals the supplied one.
func (t *PendingToken) matches(token string) bool {
	return t != nil && t.value == token
}
