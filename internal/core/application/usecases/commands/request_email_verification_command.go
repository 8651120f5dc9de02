package commands

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
)

var ErrRequestEmailVerificationCommandIsNotConstructed = errors.New(
	"RequestEmailVerificationCommand must be created via NewRequestEmailVerificationCommand constructor",
)

// RequestEmailVerificationCommand represents a request to issue a fresh
// email verification token for a user. A newly issued token supersedes any
// outstanding one.
type RequestEmailVerificationCommand struct { //nolint:recvcheck //using for validation
	userID kernel.UUID

	guard guard.ConstructorGuard
}

// NewRequestEmailVerificationCommand creates a command to issue a
// verification token for the given user.
func NewRequestEmailVerificationCommand(userID kernel.UUID) (RequestEmailVerificationCommand, error) {
	command := RequestEmailVerificationCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setUserID(userID); err != nil {
		return RequestEmailVerificationCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrRequestEmailVerificationCommandIsNotConstructed if validation fails.
func (c RequestEmailVerificationCommand) Validate() error {
	return c.guard.Validate(ErrRequestEmailVerificationCommandIsNotConstructed)
}

// UserID returns the unique identifier of the user.
func (c RequestEmailVerificationCommand) UserID() kernel.UUID {
	return c.userID
}

func (c *RequestEmailVerificationCommand) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}

	c.userID = userID
	return nil
}
