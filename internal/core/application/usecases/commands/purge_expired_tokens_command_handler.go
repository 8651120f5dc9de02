package commands

import (
	"context"
)

// PurgeExpiredTokensCommandHandler removes expired token pairs.
// Loads every user holding at least one expired pair, clears the expired
// pairs on the aggregate, and persists the changed users in one transaction.
type PurgeExpiredTokensCommandHandler struct {
	uowFactory UserUoWFactory
}

// NewPurgeExpiredTokensCommandHandler creates a handler for token cleanup.
func NewPurgeExpiredTokensCommandHandler(uowFactory UserUoWFactory) PurgeExpiredTokensCommandHandler {
	return PurgeExpiredTokensCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the cleanup command and returns how many users were
// updated. Valid pending tokens are left alone.
func (h *PurgeExpiredTokensCommandHandler) Handle(ctx context.Context, cmd PurgeExpiredTokensCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	userRepo := uow.UserRepository()
	users, err := userRepo.GetAllWithExpiredTokens(ctx)
	if err != nil {
		return 0, err
	}

	purged := 0
	for _, aggregate := range users {
		if !aggregate.ClearExpiredTokens() {
			continue
		}

		if err = userRepo.Update(ctx, aggregate); err != nil {
			return 0, err
		}
		purged++
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return purged, nil
}
