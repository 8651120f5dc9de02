package commands_test

import (
	"errors"
	"testing"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/user"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func localUser(t *testing.T, id kernel.UUID) *user.User {
	t.Helper()
	u, err := user.NewLocalUser(id, "jan@example.com", "Jan", "Kowalski", "bcrypt-hash")
	require.NoError(t, err)
	return u
}

func TestRequestEmailVerificationCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	cmd, err := commands.NewRequestEmailVerificationCommand(id)
	require.NoError(t, err)

	aggregate := localUser(t, id)

	generator := new(MockTokenGenerator)
	generator.On("Generate").Return("tok-123", nil).Once()

	repo := new(MockUserRepository)
	uow := new(MockUserUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("UserRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, id).Return(aggregate, nil).Once(),
		repo.On("Update", mock.Anything, aggregate).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUserUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRequestEmailVerificationCommandHandler(factory, generator)
	token, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, "tok-123", token)
	require.NotNil(t, aggregate.EmailVerificationToken())
	assert.Equal(t, "tok-123", aggregate.EmailVerificationToken().Value())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestRequestEmailVerificationCommandHandler_Handle_AlreadyVerified(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	cmd, err := commands.NewRequestEmailVerificationCommand(id)
	require.NoError(t, err)

	aggregate, err := user.NewOAuthUser(id, "jan@example.com", "Jan", "Kowalski")
	require.NoError(t, err)

	generator := new(MockTokenGenerator)
	generator.On("Generate").Return("tok-123", nil).Once()

	repo := new(MockUserRepository)
	uow := new(MockUserUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("UserRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, id).Return(aggregate, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUserUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRequestEmailVerificationCommandHandler(factory, generator)
	_, err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrEmailAlreadyVerified)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestRequestEmailVerificationCommandHandler_Handle_GeneratorError(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewRequestEmailVerificationCommand(kernel.NewUUID())
	require.NoError(t, err)

	generator := new(MockTokenGenerator)
	generator.On("Generate").Return("", errors.New("entropy error")).Once()

	factory := new(MockUserUoWFactory)

	h := commands.NewRequestEmailVerificationCommandHandler(factory, generator)
	_, err = h.Handle(ctx, cmd)
	require.Error(t, err)
	factory.AssertNotCalled(t, "Create")
}
