// Package user implements the user account aggregate and its credential
// lifecycle: registration (local and OAuth), email verification, password
// reset, role changes, and activation.
//
// The package also provides the Email value object, the password complexity
// policy, the Role enumeration, and PendingToken — the atomic token+expiry
// pair used by both the verification and reset flows. Tokens are one-time:
// successful use clears the pair, so replaying a consumed token fails.
package user
