package user

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"logistics/internal/pkg/errs"
)

// passwordMinLength is the minimum accepted password length.
const passwordMinLength = 8

// passwordSpecialChars is the fixed set of characters that satisfy the
// special-character requirement of the password policy.
const passwordSpecialChars = "!@#$%^&*-_=+[]{}|;:'\",.<>?/~`\\"

// PasswordRequirements is the human-readable complexity policy, carried by
// WeakPasswordError so API responses can explain a rejection.
const PasswordRequirements = "Password must be at least 8 characters long and contain at least one uppercase letter, " +
	"one lowercase letter, one digit, and one special character (" + passwordSpecialChars + ")."

// IsStrongPassword reports whether raw satisfies the complexity policy:
// at least 8 characters with at least one uppercase letter, one lowercase
// letter, one digit, and one character from the special set. Blank or
// whitespace-only input is weak. This function never fails.
func IsStrongPassword(raw string) bool {
	if strings.TrimSpace(raw) == "" {
		return false
	}

	// Minimum length is counted in characters, not bytes.
	if utf8.RuneCountInString(raw) < passwordMinLength {
		return false
	}

	var hasUpper, hasLower, hasDigit, hasSpecial bool
	for _, r := range raw {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		case strings.ContainsRune(passwordSpecialChars, r):
			hasSpecial = true
		}
	}

	return hasUpper && hasLower && hasDigit && hasSpecial
}

// EnsureStrongPassword fails with a WeakPasswordError carrying the
// requirements text when raw does not satisfy the policy.
func EnsureStrongPassword(raw string) error {
	if !IsStrongPassword(raw) {
		return errs.NewWeakPasswordError(PasswordRequirements)
	}
	return nil
}
