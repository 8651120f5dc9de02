package commands_test

import (
	"testing"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRegisterUserCommand_ValidInput(t *testing.T) {
	id := kernel.NewUUID()
	cmd, err := commands.NewRegisterUserCommand(id, "jan@example.com", "Jan", "Kowalski", "Str0ng!pass")
	require.NoError(t, err)
	assert.Equal(t, id, cmd.UserID())
	assert.Equal(t, "jan@example.com", cmd.Email())
	assert.Equal(t, "Jan", cmd.FirstName())
	assert.Equal(t, "Kowalski", cmd.LastName())
	assert.Equal(t, "Str0ng!pass", cmd.Password())
}

func TestNewRegisterUserCommand_MissingFields(t *testing.T) {
	id := kernel.NewUUID()

	_, err := commands.NewRegisterUserCommand(id, "", "Jan", "Kowalski", "Str0ng!pass")
	assert.ErrorIs(t, err, commands.ErrEmailIsRequired)

	_, err = commands.NewRegisterUserCommand(id, "jan@example.com", "", "Kowalski", "Str0ng!pass")
	assert.ErrorIs(t, err, commands.ErrFirstNameIsRequired)

	_, err = commands.NewRegisterUserCommand(id, "jan@example.com", "Jan", "", "Str0ng!pass")
	assert.ErrorIs(t, err, commands.ErrLastNameIsRequired)

	_, err = commands.NewRegisterUserCommand(id, "jan@example.com", "Jan", "Kowalski", "")
	assert.ErrorIs(t, err, commands.ErrPasswordIsRequired)
}

func TestNewRegisterUserCommand_InvalidUserID(t *testing.T) {
	_, err := commands.NewRegisterUserCommand(kernel.UUID{}, "jan@example.com", "Jan", "Kowalski", "Str0ng!pass")
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}
