package commands

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/user"
	"logistics/internal/pkg/guard"
)

var ErrChangeUserRoleCommandIsNotConstructed = errors.New(
	"ChangeUserRoleCommand must be created via NewChangeUserRoleCommand constructor",
)

// ChangeUserRoleCommand represents a request to assign a new role to a user.
// Authorization of the caller is an outer-layer concern.
type ChangeUserRoleCommand struct { //nolint:recvcheck //using for validation
	userID kernel.UUID
	role   user.Role

	guard guard.ConstructorGuard
}

// NewChangeUserRoleCommand creates a command to change a user's role.
// Validates that the role is a recognized member of the role enum.
func NewChangeUserRoleCommand(userID kernel.UUID, role user.Role) (ChangeUserRoleCommand, error) {
	command := ChangeUserRoleCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setUserID(userID),
		command.setRole(role),
	); err != nil {
		return ChangeUserRoleCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrChangeUserRoleCommandIsNotConstructed if validation fails.
func (c ChangeUserRoleCommand) Validate() error {
	return c.guard.Validate(ErrChangeUserRoleCommandIsNotConstructed)
}

// UserID returns the unique identifier of the user.
func (c ChangeUserRoleCommand) UserID() kernel.UUID {
	return c.userID
}

// Role returns the role to assign.
func (c ChangeUserRoleCommand) Role() user.Role {
	return c.role
}

func (c *ChangeUserRoleCommand) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}

	c.userID = userID
	return nil
}

func (c *ChangeUserRoleCommand) setRole(role user.Role) error {
	if err := role.Validate(); err != nil {
		return err
	}

	c.role = role
	return nil
}
