package commands

import (
	"context"

	"logistics/internal/core/domain/model/user"
	"logistics/internal/pkg/errs"
)

// RegisterOAuthUserCommandHandler handles registration through an external
// identity provider. The resulting account has no password hash and its
// email is pre-verified.
type RegisterOAuthUserCommandHandler struct {
	uowFactory UserUoWFactory
}

// NewRegisterOAuthUserCommandHandler creates a handler for OAuth registration.
func NewRegisterOAuthUserCommandHandler(uowFactory UserUoWFactory) RegisterOAuthUserCommandHandler {
	return RegisterOAuthUserCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the OAuth registration command.
// Duplicate emails fail with a ValueIsInvalidError wrapping
// ErrEmailAlreadyRegistered, same as local registration.
func (h *RegisterOAuthUserCommandHandler) Handle(ctx context.Context, cmd RegisterOAuthUserCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	email, err := user.NewEmail(cmd.Email())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	userRepo := uow.UserRepository()

	exists, err := userRepo.ExistsByEmail(ctx, email)
	if err != nil {
		return err
	}
	if exists {
		return errs.NewValueIsInvalidErrorWithCause("email", ErrEmailAlreadyRegistered)
	}

	aggregate, err := user.NewOAuthUser(cmd.UserID(), cmd.Email(), cmd.FirstName(), cmd.LastName())
	if err != nil {
		return err
	}

	if err = userRepo.Add(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
