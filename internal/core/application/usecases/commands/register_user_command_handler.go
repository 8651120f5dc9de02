package commands

import (
	"context"
	"errors"

	"logistics/internal/core/domain/model/user"
	"logistics/internal/core/ports"
	"logistics/internal/pkg/errs"
)

// ErrEmailAlreadyRegistered signals a registration attempt with an email
// already bound to an account. Surfaced wrapped in a ValueIsInvalidError.
var ErrEmailAlreadyRegistered = errors.New("email is already registered")

// RegisterUserCommandHandler handles local user registration.
// Enforces the password policy, hashes the password through the hasher port,
// and guards email uniqueness before creating the aggregate.
type RegisterUserCommandHandler struct {
	uowFactory UserUoWFactory
	hasher     ports.PasswordHasher
}

// NewRegisterUserCommandHandler creates a handler for local registration.
// Requires a UserUoWFactory for persistence and a PasswordHasher for
// credential hashing.
func NewRegisterUserCommandHandler(uowFactory UserUoWFactory, hasher ports.PasswordHasher) RegisterUserCommandHandler {
	return RegisterUserCommandHandler{
		uowFactory: uowFactory,
		hasher:     hasher,
	}
}

// Handle processes the registration command.
// Weak passwords fail with a WeakPasswordError before any I/O; duplicate
// emails fail with a ValueIsInvalidError wrapping ErrEmailAlreadyRegistered.
func (h *RegisterUserCommandHandler) Handle(ctx context.Context, cmd RegisterUserCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if err := user.EnsureStrongPassword(cmd.Password()); err != nil {
		return err
	}

	email, err := user.NewEmail(cmd.Email())
	if err != nil {
		return err
	}

	hash, err := h.hasher.Hash(cmd.Password())
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

	aggregate, err := user.NewLocalUser(cmd.UserID(), cmd.Email(), cmd.FirstName(), cmd.LastName(), hash)
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
