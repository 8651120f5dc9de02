package user

import (
	"errors"
	"strings"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
)

// nameMaxLength bounds first and last names.
const nameMaxLength = 100

// ErrUserIsNotConstructed is returned when a User instance was not created
// through one of the factory functions.
var ErrUserIsNotConstructed = errors.New("User must be created via NewLocalUser, NewOAuthUser, or RestoreUser")

// User represents a platform account. It is the aggregate root for the
// credential lifecycle: email verification, password reset, role and
// activation changes.
//
// Invariants:
//   - Valid identity, validated email, non-blank names of at most 100 chars
//   - Password hash is present for locally registered users and absent for
//     OAuth users
//   - Verification and reset tokens live as atomic token+expiry pairs, set
//     together and cleared together; successful use clears the pair
//     (one-time tokens)
//   - Every successful mutation refreshes updatedAt (UTC); failed operations
//     leave the aggregate untouched
//
// Concurrent mutation of the same account is not guarded here; the
// persistence layer is responsible for conflict handling, and a regenerated
// token supersedes any outstanding one (last write wins).
type User struct {
	id           kernel.UUID
	email        Email
	firstName    string
	lastName     string
	passwordHash *string
	role         Role

	emailVerified     bool
	verificationToken *PendingToken
	resetToken        *PendingToken

	active    bool
	createdAt time.Time
	updatedAt time.Time

	isConstructed bool
}

// NewLocalUser creates a locally registered user. The email arrives as a
// primitive and is validated here; the password hash must be non-blank
// (hashing itself happens outside the aggregate). The account starts
// unverified, active, with the default User role.
func NewLocalUser(id kernel.UUID, email, firstName, lastName, passwordHash string) (*User, error) {
	if isBlank(passwordHash) {
		return nil, errs.NewValueIsRequiredError("passwordHash")
	}

	u, err := newUser(id, email, firstName, lastName)
	if err != nil {
		return nil, err
	}

	u.passwordHash = &passwordHash
	return u, nil
}

// NewOAuthUser creates a user registered through an external identity
// provider. No password hash is stored and the email counts as verified
// immediately, since the provider already proved ownership.
func NewOAuthUser(id kernel.UUID, email, firstName, lastName string) (*User, error) {
	u, err := newUser(id, email, firstName, lastName)
	if err != nil {
		return nil, err
	}

	u.emailVerified = true
	return u, nil
}

func newUser(id kernel.UUID, email, firstName, lastName string) (*User, error) {
	now := time.Now().UTC()
	u := &User{
		role:          RoleUser,
		active:        true,
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}

	emailVO, emailErr := NewEmail(email)

	if err := errors.Join(
		u.setID(id),
		emailErr,
		u.setName(&u.firstName, "firstName", firstName),
		u.setName(&u.lastName, "lastName", lastName),
	); err != nil {
		return nil, err
	}

	u.email = emailVO
	return u, nil
}

// RestoreUser reconstructs a User from a complete persistence snapshot.
// Field values are validated but verification state, token pairs, and
// timestamps are taken as stored.
func RestoreUser(
	id kernel.UUID,
	email Email,
	firstName string,
	lastName string,
	passwordHash *string,
	role Role,
	emailVerified bool,
	verificationToken *PendingToken,
	resetToken *PendingToken,
	active bool,
	createdAt time.Time,
	updatedAt time.Time,
) (*User, error) {
	u := &User{
		passwordHash:      passwordHash,
		emailVerified:     emailVerified,
		verificationToken: verificationToken,
		resetToken:        resetToken,
		active:            active,
		createdAt:         createdAt,
		updatedAt:         updatedAt,
		isConstructed:     true,
	}

	if err := errors.Join(
		u.setID(id),
		email.Validate(),
		u.setName(&u.firstName, "firstName", firstName),
		u.setName(&u.lastName, "lastName", lastName),
		role.Validate(),
	); err != nil {
		return nil, err
	}

	u.email = email
	u.role = role
	return u, nil
}

// Validate ensures the User instance was properly constructed through a
// factory function.
func (u *User) Validate() error {
	if u == nil || !u.isConstructed {
		return ErrUserIsNotConstructed
	}

	return nil
}

// IsEqual compares two users by their unique identifiers.
func (u *User) IsEqual(other *User) bool {
	return other != nil && u.id.IsEqual(other.id)
}

// ID returns the user's unique identifier.
func (u *User) ID() kernel.UUID {
	return u.id
}

// Email returns the validated email value object.
func (u *User) Email() Email {
	return u.email
}

// FirstName returns the user's first name.
func (u *User) FirstName() string {
	return u.firstName
}

// LastName returns the user's last name.
func (u *User) LastName() string {
	return u.lastName
}

// FullName returns "FirstName LastName".
func (u *User) FullName() string {
	return strings.TrimSpace(u.firstName + " " + u.lastName)
}

// PasswordHash returns the stored hash, or nil for OAuth-created users.
func (u *User) PasswordHash() *string {
	return u.passwordHash
}

// Role returns the user's current role.
func (u *User) Role() Role {
	return u.role
}

// IsEmailVerified reports whether the email has been verified.
func (u *User) IsEmailVerified() bool {
	return u.emailVerified
}

// IsActive reports whether the account is active.
func (u *User) IsActive() bool {
	return u.active
}

// EmailVerificationToken returns the pending verification pair, nil when none.
func (u *User) EmailVerificationToken() *PendingToken {
	return u.verificationToken
}

// PasswordResetToken returns the pending reset pair, nil when none.
func (u *User) PasswordResetToken() *PendingToken {
	return u.resetToken
}

// CreatedAt returns the creation audit timestamp.
func (u *User) CreatedAt() time.Time {
	return u.createdAt
}

// UpdatedAt returns the last-mutation audit timestamp.
func (u *User) UpdatedAt() time.Time {
	return u.updatedAt
}

// GenerateEmailVerificationToken stores token with a 24-hour expiry.
// Fails with an AlreadyVerifiedError when the email is already verified and
// with a validation error when token is blank. Any outstanding verification
// token is overwritten: the last generated token wins.
func (u *User) GenerateEmailVerificationToken(token string) error {
	if u.emailVerified {
		return errs.NewAlreadyVerifiedError(u.email.Value())
	}

	if isBlank(token) {
		return errs.NewValueIsRequiredError("token")
	}

	u.verificationToken = newPendingToken(token, emailVerificationTokenTTL)
	u.touch()
	return nil
}

// VerifyEmail marks the email verified when token matches the stored,
// unexpired verification token, then clears the pair so the token cannot be
// replayed. A missing or expired pair fails as "expired"; a non-matching
// token fails as "invalid"; both are TokenInvalidError.
func (u *User) VerifyEmail(token string) error {
	if u.emailVerified {
		return errs.NewAlreadyVerifiedError(u.email.Value())
	}

	if !u.verificationToken.isValid() {
		return errs.NewTokenExpiredError(emailVerificationTokenName)
	}

	if !u.verificationToken.matches(token) {
		return errs.NewTokenMismatchError(emailVerificationTokenName)
	}

	u.emailVerified = true
	u.verificationToken = nil
	u.touch()
	return nil
}

// IsEmailVerificationTokenValid reports whether a verification token is
// stored and its expiry is strictly in the future.
func (u *User) IsEmailVerificationTokenValid() bool {
	return u.verificationToken.isValid()
}

// GeneratePasswordResetToken stores token with a 1-hour expiry. There is no
// precondition on verification state: unverified accounts may reset their
// password. Blank tokens fail with a validation error. Any outstanding reset
// token is overwritten.
func (u *User) GeneratePasswordResetToken(token string) error {
	if isBlank(token) {
		return errs.NewValueIsRequiredError("token")
	}

	u.resetToken = newPendingToken(token, passwordResetTokenTTL)
	u.touch()
	return nil
}

// IsPasswordResetTokenValid reports whether a reset token is stored and its
// expiry is strictly in the future.
func (u *User) IsPasswordResetTokenValid() bool {
	return u.resetToken.isValid()
}

// ResetPassword replaces the password hash when token matches the stored,
// unexpired reset token, then clears the pair (one-time use). Failure reasons
// mirror VerifyEmail: "expired" for a missing/expired pair, "invalid" for a
// mismatch.
func (u *User) ResetPassword(token, newPasswordHash string) error {
	if !u.resetToken.isValid() {
		return errs.NewTokenExpiredError(passwordResetTokenName)
	}

	if !u.resetToken.matches(token) {
		return errs.NewTokenMismatchError(passwordResetTokenName)
	}

	u.passwordHash = &newPasswordHash
	u.resetToken = nil
	u.touch()
	return nil
}

// SetPasswordHash directly replaces the password hash, for administrative
// flows. Blank hashes fail with a validation error. Any pending reset token
// is cleared, invalidating outstanding reset flows.
func (u *User) SetPasswordHash(passwordHash string) error {
	if isBlank(passwordHash) {
		return errs.NewValueIsRequiredError("passwordHash")
	}

	u.passwordHash = &passwordHash
	u.resetToken = nil
	u.touch()
	return nil
}

// ChangeRole assigns a new role. The aggregate enforces only that the role is
// a recognized member; who may perform the change is an external concern.
func (u *User) ChangeRole(newRole Role) error {
	if err := newRole.Validate(); err != nil {
		return err
	}

	u.role = newRole
	u.touch()
	return nil
}

// Deactivate marks the account inactive. Idempotent.
func (u *User) Deactivate() {
	u.active = false
	u.touch()
}

// Activate marks the account active. Idempotent.
func (u *User) Activate() {
	u.active = true
	u.touch()
}

// ClearExpiredTokens drops token pairs whose expiry has passed and reports
// whether anything was cleared. Used by the periodic cleanup job; valid
// pending tokens are left alone.
func (u *User) ClearExpiredTokens() bool {
	cleared := false

	if u.verificationToken != nil && !u.verificationToken.isValid() {
		u.verificationToken = nil
		cleared = true
	}
	if u.resetToken != nil && !u.resetToken.isValid() {
		u.resetToken = nil
		cleared = true
	}

	if cleared {
		u.touch()
	}
	return cleared
}

// touch refreshes the last-mutation timestamp. Called on every successful
// mutation, never on failure.
func (u *User) touch() {
	u.updatedAt = time.Now().UTC()
}

func (u *User) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	u.id = id
	return nil
}

func (u *User) setName(field *string, paramName, value string) error {
	if isBlank(value) {
		return errs.NewValueIsRequiredError(paramName)
	}
	if len(value) > nameMaxLength {
		return errs.NewValueIsOutOfRangeError(paramName+" length", len(value), 1, nameMaxLength)
	}
	*field = value
	return nil
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
