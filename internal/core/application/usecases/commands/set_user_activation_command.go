package commands

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
)

var ErrSetUserActivationCommandIsNotConstructed = errors.New(
	"SetUserActivationCommand must be created via NewSetUserActivationCommand constructor",
)

// SetUserActivationCommand represents a request to activate or deactivate a
// user account. Both directions are idempotent.
type SetUserActivationCommand struct { //nolint:recvcheck //using for validation
	userID kernel.UUID
	active bool

	guard guard.ConstructorGuard
}

// NewSetUserActivationCommand creates a command to set the account's
// activation state.
func NewSetUserActivationCommand(userID kernel.UUID, active bool) (SetUserActivationCommand, error) {
	command := SetUserActivationCommand{
		active: active,
		guard:  guard.NewConstructorGuard(),
	}

	if err := command.setUserID(userID); err != nil {
		return SetUserActivationCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrSetUserActivationCommandIsNotConstructed if validation fails.
func (c SetUserActivationCommand) Validate() error {
	return c.guard.Validate(ErrSetUserActivationCommandIsNotConstructed)
}

// UserID returns the unique identifier of the user.
func (c SetUserActivationCommand) UserID() kernel.UUID {
	return c.userID
}

// Active returns the desired activation state.
func (c SetUserActivationCommand) Active() bool {
	return c.active
}

func (c *SetUserActivationCommand) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}

	c.userID = userID
	return nil
}
