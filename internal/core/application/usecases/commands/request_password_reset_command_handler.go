package commands

import (
	"context"

	"logistics/internal/core/domain/model/user"
	"logistics/internal/core/ports"
)

// RequestPasswordResetCommandHandler issues password reset tokens.
// Looks the account up by exact email, stores a generated token with its
// 1-hour expiry, and returns it to the caller for delivery. Unverified
// accounts may reset their password.
type RequestPasswordResetCommandHandler struct {
	uowFactory UserUoWFactory
	generator  ports.TokenGenerator
}

// NewRequestPasswordResetCommandHandler creates a handler for issuing reset
// tokens.
func NewRequestPasswordResetCommandHandler(
	uowFactory UserUoWFactory,
	generator ports.TokenGenerator,
) RequestPasswordResetCommandHandler {
	return RequestPasswordResetCommandHandler{
		uowFactory: uowFactory,
		generator:  generator,
	}
}

// Handle processes the reset request and returns the issued token.
// An unknown email fails with the repository's not-found error.
func (h *RequestPasswordResetCommandHandler) Handle(
	ctx context.Context,
	cmd RequestPasswordResetCommand,
) (string, error) {
	if err := cmd.Validate(); err != nil {
		return "", err
	}

	email, err := user.NewEmail(cmd.Email())
	if err != nil {
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
	aggregate, err := userRepo.GetByEmail(ctx, email)
	if err != nil {
		return "", err
	}

	if err = aggregate.GeneratePasswordResetToken(token); err != nil {
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
