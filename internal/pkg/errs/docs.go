// Package errs provides standardized error types for the logistics application.
// It implements a consistent pattern for error creation, formatting, and
// unwrapping that is used throughout the application.
//
// Generic validation kinds:
//   - ValueIsRequiredError: a required value is missing or blank
//   - ValueIsInvalidError: a value is malformed
//   - ValueIsOutOfRangeError: a value is outside its permitted bounds
//   - ObjectNotFoundError: an object cannot be found
//
// Domain kinds raised by the order and user aggregates:
//   - StateConflictError: an order-status transition the table forbids
//   - AlreadyVerifiedError: verification attempted on a verified account
//   - TokenInvalidError: a credential token is expired or mismatched
//   - WeakPasswordError: a password fails the complexity policy
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions, with and without cause where applicable
//   - Error() method for formatting the error message
//   - Unwrap() method returning the sentinel, so callers classify with
//     errors.Is rather than inspecting struct types; the generic kinds
//     unwrap to both the sentinel and the cause when one is attached
//
// The application layer relies on these kinds when mapping failures to
// transport responses; the domain layer never produces anything else.
package errs
