package commands

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
)

var ErrRegisterOAuthUserCommandIsNotConstructed = errors.New(
	"RegisterOAuthUserCommand must be created via NewRegisterOAuthUserCommand constructor",
)

// RegisterOAuthUserCommand represents a request to register a user whose
// identity was verified by an external OAuth provider. No password is
// involved and the email counts as verified from the start.
type RegisterOAuthUserCommand struct { //nolint:recvcheck //using for validation
	userID    kernel.UUID
	email     string
	firstName string
	lastName  string

	guard guard.ConstructorGuard
}

// NewRegisterOAuthUserCommand creates a command to register an OAuth user.
func NewRegisterOAuthUserCommand(
	userID kernel.UUID,
	email, firstName, lastName string,
) (RegisterOAuthUserCommand, error) {
	command := RegisterOAuthUserCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setUserID(userID),
		command.setEmail(email),
		command.setFirstName(firstName),
		command.setLastName(lastName),
	); err != nil {
		return RegisterOAuthUserCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrRegisterOAuthUserCommandIsNotConstructed if validation fails.
func (c RegisterOAuthUserCommand) Validate() error {
	return c.guard.Validate(ErrRegisterOAuthUserCommandIsNotConstructed)
}

// UserID returns the unique identifier for the new user.
func (c RegisterOAuthUserCommand) UserID() kernel.UUID {
	return c.userID
}

// Email returns the provider-asserted email address.
func (c RegisterOAuthUserCommand) Email() string {
	return c.email
}

// FirstName returns the user's first name.
func (c RegisterOAuthUserCommand) FirstName() string {
	return c.firstName
}

// LastName returns the user's last name.
func (c RegisterOAuthUserCommand) LastName() string {
	return c.lastName
}

func (c *RegisterOAuthUserCommand) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}

	c.userID = userID
	return nil
}

func (c *RegisterOAuthUserCommand) setEmail(email string) error {
	if email == "" {
		return ErrEmailIsRequired
	}

	c.email = email
	return nil
}

func (c *RegisterOAuthUserCommand) setFirstName(firstName string) error {
	if firstName == "" {
		return ErrFirstNameIsRequired
	}

	c.firstName = firstName
	return nil
}

func (c *RegisterOAuthUserCommand) setLastName(lastName string) error {
	if lastName == "" {
		return ErrLastNameIsRequired
	}

	c.lastName = lastName
	return nil
}
