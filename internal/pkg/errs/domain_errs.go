package errs

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for the domain-specific error kinds raised by the order and
// user aggregates.
var (
	ErrStateConflict        = errors.New("state conflict")
	ErrEmailAlreadyVerified = errors.New("email is already verified")
	ErrTokenIsInvalid       = errors.New("token is invalid")
	ErrPasswordIsTooWeak    = errors.New("password is too weak")
)

// Reasons carried by TokenInvalidError so callers can distinguish an expired
// token from a mismatched one.
const (
	TokenReasonExpired  = "expired"
	TokenReasonMismatch = "invalid"
)

// StateConflictError indicates an order-status transition that the transition
// table forbids. It names both states and the legal next-state set.
type StateConflictError struct {
	CurrentState string
	TargetState  string
	AllowedNext  []string
}

// NewStateConflictError creates a StateConflictError for an illegal transition
// from currentState to targetState, listing the transitions the table allows.
func NewStateConflictError(currentState, targetState string, allowedNext []string) *StateConflictError {
	return &StateConflictError{
		CurrentState: currentState,
		TargetState:  targetState,
		AllowedNext:  allowedNext,
	}
}

func (e *StateConflictError) Error() string {
	allowed := "none"
	if len(e.AllowedNext) > 0 {
		allowed = strings.Join(e.AllowedNext, ", ")
	}
	return sanitize(fmt.Sprintf("%s: transition from %s to %s is not allowed, valid next statuses are: %s",
		ErrStateConflict, e.CurrentState, e.TargetState, allowed))
}

func (e *StateConflictError) Unwrap() error {
	return ErrStateConflict
}

// AlreadyVerifiedError indicates a verification operation attempted on an
// account whose email is already verified.
type AlreadyVerifiedError struct {
	ParamName string
}

// NewAlreadyVerifiedError creates an AlreadyVerifiedError for the given
// parameter, typically the user identifier.
func NewAlreadyVerifiedError(paramName string) *AlreadyVerifiedError {
	return &AlreadyVerifiedError{ParamName: paramName}
}

func (e *AlreadyVerifiedError) Error() string {
	return sanitize(fmt.Sprintf("%s: %s", ErrEmailAlreadyVerified, e.ParamName))
}

func (e *AlreadyVerifiedError) Unwrap() error {
	return ErrEmailAlreadyVerified
}

// TokenInvalidError indicates a verification or reset token that is missing,
// expired, or mismatched. TokenName identifies the flow ("email verification"
// or "password reset"); Reason is TokenReasonExpired or TokenReasonMismatch.
type TokenInvalidError struct {
	TokenName string
	Reason    string
}

// NewTokenExpiredError creates a TokenInvalidError for a token that is absent
// or past its expiry.
func NewTokenExpiredError(tokenName string) *TokenInvalidError {
	return &TokenInvalidError{
		TokenName: tokenName,
		Reason:    TokenReasonExpired,
	}
}

// NewTokenMismatchError creates a TokenInvalidError for a supplied token that
// does not equal the stored one.
func NewTokenMismatchError(tokenName string) *TokenInvalidError {
	return &TokenInvalidError{
		TokenName: tokenName,
		Reason:    TokenReasonMismatch,
	}
}

func (e *TokenInvalidError) Error() string {
	if e.Reason == TokenReasonExpired {
		return sanitize(fmt.Sprintf("%s: %s token has expired", ErrTokenIsInvalid, e.TokenName))
	}
	return sanitize(fmt.Sprintf("%s: %s token does not match", ErrTokenIsInvalid, e.TokenName))
}

func (e *TokenInvalidError) Unwrap() error {
	return ErrTokenIsInvalid
}

// WeakPasswordError indicates a password that fails the complexity policy.
// Requirements carries the human-readable policy text for API responses.
type WeakPasswordError struct {
	Requirements string
}

// NewWeakPasswordError creates a WeakPasswordError carrying the policy text.
func NewWeakPasswordError(requirements string) *WeakPasswordError {
	return &WeakPasswordError{Requirements: requirements}
}

func (e *WeakPasswordError) Error() string {
	return sanitize(fmt.Sprintf("%s: %s", ErrPasswordIsTooWeak, e.Requirements))
}

func (e *WeakPasswordError) Unwrap() error {
	return ErrPasswordIsTooWeak
}
