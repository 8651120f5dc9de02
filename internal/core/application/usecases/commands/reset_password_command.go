package commands

import (
	"errors"

	"logistics/internal/pkg/guard"
)

var ErrResetPasswordCommandIsNotConstructed = errors.New(
	"ResetPasswordCommand must be created via NewResetPasswordCommand constructor",
)

// ResetPasswordCommand represents a request to replace an account's password
// using a previously issued reset token.
type ResetPasswordCommand struct { //nolint:recvcheck //using for validation
	email       string
	token       string
	newPassword string

	guard guard.ConstructorGuard
}

// NewResetPasswordCommand creates a command to complete a password reset.
func NewResetPasswordCommand(email, token, newPassword string) (ResetPasswordCommand, error) {
	command := ResetPasswordCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setEmail(email),
		command.setToken(token),
		command.setNewPassword(newPassword),
	); err != nil {
		return ResetPasswordCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrResetPasswordCommandIsNotConstructed if validation fails.
func (c ResetPasswordCommand) Validate() error {
	return c.guard.Validate(ErrResetPasswordCommandIsNotConstructed)
}

// Email returns the account email.
func (c ResetPasswordCommand) Email() string {
	return c.email
}

// Token returns the presented reset token.
func (c ResetPasswordCommand) Token() string {
	return c.token
}

// NewPassword returns the raw replacement password.
func (c ResetPasswordCommand) NewPassword() string {
	return c.newPassword
}

func (c *ResetPasswordCommand) setEmail(email string) error {
	if email == "" {
		return ErrEmailIsRequired
	}

	c.email = email
	return nil
}

func (c *ResetPasswordCommand) setToken(token string) error {
	if token == "" {
		return ErrTokenIsRequired
	}

	c.token = token
	return nil
}

func (c *ResetPasswordCommand) setNewPassword(newPassword string) error {
	if newPassword == "" {
		return ErrPasswordIsRequired
	}

	c.newPassword = newPassword
	return nil
}
