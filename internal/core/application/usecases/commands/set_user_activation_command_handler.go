package commands

import (
	"context"
)

// SetUserActivationCommandHandler activates and deactivates user accounts.
type SetUserActivationCommandHandler struct {
	uowFactory UserUoWFactory
}

// NewSetUserActivationCommandHandler creates a handler for activation changes.
func NewSetUserActivationCommandHandler(uowFactory UserUoWFactory) SetUserActivationCommandHandler {
	return SetUserActivationCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the activation command. Setting the state the account is
// already in is a successful no-op at the domain level; the aggregate is
// persisted either way.
func (h *SetUserActivationCommandHandler) Handle(ctx context.Context, cmd SetUserActivationCommand) error {
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

	if cmd.Active() {
		aggregate.Activate()
	} else {
		aggregate.Deactivate()
	}

	if err = userRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
