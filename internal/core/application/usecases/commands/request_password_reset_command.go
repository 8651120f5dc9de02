package commands

import (
	"errors"

	"logistics/internal/pkg/guard"
)

var ErrRequestPasswordResetCommandIsNotConstructed = errors.New(
	"RequestPasswordResetCommand must be created via NewRequestPasswordResetCommand constructor",
)

// RequestPasswordResetCommand represents a request to issue a password reset
// token for the account bound to the given email. The lookup is byte-exact,
// matching the email value object's no-normalization rule.
type RequestPasswordResetCommand struct { //nolint:recvcheck //using for validation
	email string

	guard guard.ConstructorGuard
}

// NewRequestPasswordResetCommand creates a command to issue a reset token.
func NewRequestPasswordResetCommand(email string) (RequestPasswordResetCommand, error) {
	command := RequestPasswordResetCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setEmail(email); err != nil {
		return RequestPasswordResetCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrRequestPasswordResetCommandIsNotConstructed if validation fails.
func (c RequestPasswordResetCommand) Validate() error {
	return c.guard.Validate(ErrRequestPasswordResetCommandIsNotConstructed)
}

// Email returns the account email the reset was requested for.
func (c RequestPasswordResetCommand) Email() string {
	return c.email
}

func (c *RequestPasswordResetCommand) setEmail(email string) error {
	if email == "" {
		return ErrEmailIsRequired
	}

	c.email = email
	return nil
}
