package commands

import (
	"context"
)

// VerifyEmailCommandHandler confirms email addresses.
// Loads the aggregate and delegates token checking to it; a successful
// verification consumes the stored token pair.
type VerifyEmailCommandHandler struct {
	uowFactory UserUoWFactory
}

// NewVerifyEmailCommandHandler creates a handler for email verification.
func NewVerifyEmailCommandHandler(uowFactory UserUoWFactory) VerifyEmailCommandHandler {
	return VerifyEmailCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the verification command.
// Expired or mismatched tokens fail with a TokenInvalidError carrying the
// distinguishing reason; an already verified account fails with an
// AlreadyVerifiedError.
func (h *VerifyEmailCommandHandler) Handle(ctx context.Context, cmd VerifyEmailCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	userRepo := uow.UserRepository()
	aggregate, err := userRepo.Get(ctx, cmd.UserID())
	if err != nil {
		return err
	}

	if err = aggregate.VerifyEmail(cmd.Token()); err != nil {
		return err
	}

	if err = userRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
