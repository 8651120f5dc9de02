package user

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

// emailMaxLength is the maximum accepted length of an email address after
// trimming.
const emailMaxLength = 256

// emailPattern requires a local part, an @, a domain, and a dot-separated
// TLD, none of which may contain whitespace or additional @ signs.
var emailPattern = regexp.MustCompile(`(?i)^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// ErrEmailIsNotConstructed is returned when attempting to use an Email that
// was not created via NewEmail.
var ErrEmailIsNotConstructed = errs.NewValueIsRequiredError(
	"email must be created via NewEmail constructor")

// Email is an immutable, validated email address.
//
// The raw input is trimmed before validation; the stored value keeps the
// original letter case — no normalization or case folding happens here, so
// value comparison is byte-exact. Whether lookups should fold case is a
// repository-level decision.
type Email struct { //nolint:recvcheck //using for validation
	value string

	guard guard.ConstructorGuard
}

// NewEmail validates and creates an Email. Blank input, input longer than 256
// characters after trimming, and input not matching the local@domain.tld
// shape all fail with a validation error kind.
func NewEmail(raw string) (Email, error) {
	if strings.TrimSpace(raw) == "" {
		return Email{}, errs.NewValueIsRequiredError("email")
	}

	trimmed := strings.TrimSpace(raw)

	// Length is counted in characters, not bytes, so multibyte local parts
	// are not penalized.
	if length := utf8.RuneCountInString(trimmed); length > emailMaxLength {
		return Email{}, errs.NewValueIsOutOfRangeError("email length", length, 1, emailMaxLength)
	}

	if !emailPattern.MatchString(trimmed) {
		return Email{}, errs.NewValueIsInvalidErrorWithCause("email",
			fmt.Errorf("%q does not match the expected email format", trimmed))
	}

	return Email{
		value: trimmed,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// RestoreEmail rehydrates an Email from persistence without re-running the
// format checks. The stored value is trusted to have passed NewEmail once.
func RestoreEmail(value string) Email {
	return Email{
		value: value,
		guard: guard.NewConstructorGuard(),
	}
}

// Value returns the trimmed, case-preserved address.
func (e Email) Value() string {
	return e.value
}

// String implements fmt.Stringer.
func (e Email) String() string {
	return e.value
}

// IsEqual compares two emails byte-exactly; case differences make addresses
// unequal.
func (e Email) IsEqual(other Email) bool {
	return e.value == other.value
}

// Validate ensures the email was created via a constructor.
func (e Email) Validate() error {
	return e.guard.Validate(ErrEmailIsNotConstructed)
}
