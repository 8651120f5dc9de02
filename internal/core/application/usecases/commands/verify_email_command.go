package commands

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
)

var (
	ErrVerifyEmailCommandIsNotConstructed = errors.New(
		"VerifyEmailCommand must be created via NewVerifyEmailCommand constructor",
	)
	ErrTokenIsRequired = errors.New("token is required")
)

// VerifyEmailCommand represents a request to confirm a user's email address
// using a previously issued verification token.
type VerifyEmailCommand struct { //nolint:recvcheck //using for validation
	userID kernel.UUID
	token  string

	guard guard.ConstructorGuard
}

// NewVerifyEmailCommand creates a command to verify a user's email.
func NewVerifyEmailCommand(userID kernel.UUID, token string) (VerifyEmailCommand, error) {
	command := VerifyEmailCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setUserID(userID),
		command.setToken(token),
	); err != nil {
		return VerifyEmailCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrVerifyEmailCommandIsNotConstructed if validation fails.
func (c VerifyEmailCommand) Validate() error {
	return c.guard.Validate(ErrVerifyEmailCommandIsNotConstructed)
}

// UserID returns the unique identifier of the user.
func (c VerifyEmailCommand) UserID() kernel.UUID {
	return c.userID
}

// Token returns the presented verification token.
func (c VerifyEmailCommand) Token() string {
	return c.token
}

func (c *VerifyEmailCommand) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}

	c.userID = userID
	return nil
}

func (c *VerifyEmailCommand) setToken(token string) error {
	if token == "" {
		return ErrTokenIsRequired
	}

	c.token = token
	return nil
}
