package commands_test

import (
	"testing"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/user"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRequestPasswordResetCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewRequestPasswordResetCommand("jan@example.com")
	require.NoError(t, err)

	aggregate := localUser(t, kernel.NewUUID())

	generator := new(MockTokenGenerator)
	generator.On("Generate").Return("reset-1", nil).Once()

	repo := new(MockUserRepository)
	uow := new(MockUserUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("UserRepository").Return(repo).Once(),
		repo.On("GetByEmail", mock.Anything, mock.MatchedBy(func(e user.Email) bool {
			return e.Value() == "jan@example.com"
		})).Return(aggregate, nil).Once(),
		repo.On("Update", mock.Anything, aggregate).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUserUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRequestPasswordResetCommandHandler(factory, generator)
	token, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, "reset-1", token)
	require.NotNil(t, aggregate.PasswordResetToken())
	assert.Equal(t, "reset-1", aggregate.PasswordResetToken().Value())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestRequestPasswordResetCommandHandler_Handle_UnknownEmail(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewRequestPasswordResetCommand("nobody@example.com")
	require.NoError(t, err)

	generator := new(MockTokenGenerator)
	generator.On("Generate").Return("reset-1", nil).Once()

	repo := new(MockUserRepository)
	uow := new(MockUserUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("UserRepository").Return(repo).Once(),
		repo.On("GetByEmail", mock.Anything, mock.AnythingOfType("user.Email")).
			Return(nil, errs.NewObjectNotFoundError("email", "nobody@example.com")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUserUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRequestPasswordResetCommandHandler(factory, generator)
	_, err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestRequestPasswordResetCommandHandler_Handle_InvalidEmail(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewRequestPasswordResetCommand("not-an-email")
	require.NoError(t, err)

	generator := new(MockTokenGenerator)
	factory := new(MockUserUoWFactory)

	h := commands.NewRequestPasswordResetCommandHandler(factory, generator)
	_, err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	factory.AssertNotCalled(t, "Create")
}
