package commands

import (
	"context"

	"logistics/internal/core/ports"
)

// RequestEmailVerificationCommandHandler issues email verification tokens.
// Generates an opaque token through the generator port, stores it on the
// aggregate with its 24-hour expiry, and returns it to the caller for
// delivery.
type RequestEmailVerificationCommandHandler struct {
	uowFactory UserUoWFactory
	generator  ports.TokenGenerator
}

// NewRequestEmailVerificationCommandHandler creates a handler for issuing
// verification tokens.
func NewRequestEmailVerificationCommandHandler(
	uowFactory UserUoWFactory,
	generator ports.TokenGenerator,
) RequestEmailVerificationCommandHandler {
	return RequestEmailVerificationCommandHandler{
		uowFactory: uowFactory,
		generator:  generator,
	}
}

// Handle processes the token request and returns the issued token.
// Fails with an AlreadyVerifiedError when the account's email is already
// verified; nothing is persisted in that case.
func (h *RequestEmailVerificationCommandHandler) Handle(
	ctx context.Context,
	cmd RequestEmailVerificationCommand,
) (string, error) {
	if err := cmd.Validate(); err != nil {
		return "", err
	}

	token, err := h.generator.Generate()
	if err != nil {
		return "", err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return "", err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	userRepo := uow.UserRepository()
	aggregate, err := userRepo.Get(ctx, cmd.UserID())
	if err != nil {
		return "", err
	}

	if err = aggregate.GenerateEmailVerificationToken(token); err != nil {
		return "", err
	}

	if err = userRepo.Update(ctx, aggregate); err != nil {
		return "", err
	}

	if err = uow.Commit(ctx); err != nil {
		return "", err
	}

	return token, nil
}
