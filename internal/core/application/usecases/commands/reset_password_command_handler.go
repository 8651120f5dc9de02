package commands

import (
	"context"

	"logistics/internal/core/domain/model/user"
	"logistics/internal/core/ports"
)

// ResetPasswordCommandHandler completes password resets.
// Enforces the password policy on the replacement password, hashes it, and
// lets the aggregate check the token and consume the pair.
type ResetPasswordCommandHandler struct {
	uowFactory UserUoWFactory
	hasher     ports.PasswordHasher
}

// NewResetPasswordCommandHandler creates a handler for completing resets.
func NewResetPasswordCommandHandler(uowFactory UserUoWFactory, hasher ports.PasswordHasher) ResetPasswordCommandHandler {
	return ResetPasswordCommandHandler{
		uowFactory: uowFactory,
		hasher:     hasher,
	}
}

// Handle processes the reset command.
// A weak replacement password fails with a WeakPasswordError before any I/O;
// expired or mismatched tokens fail with a TokenInvalidError and leave the
// stored hash untouched.
func (h *ResetPasswordCommandHandler) Handle(ctx context.Context, cmd ResetPasswordCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if err := user.EnsureStrongPassword(cmd.NewPassword()); err != nil {
		return err
	}

	email, err := user.NewEmail(cmd.Email())
	if err != nil {
		return err
	}

	hash, err := h.hasher.Hash(cmd.NewPassword())
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
	aggregate, err := userRepo.GetByEmail(ctx, email)
	if err != nil {
		return err
	}

	if err = aggregate.ResetPassword(cmd.Token(), hash); err != nil {
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
