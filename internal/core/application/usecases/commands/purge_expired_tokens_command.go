package commands

import (
	"errors"

	"logistics/internal/pkg/guard"
)

var ErrPurgeExpiredTokensCommandIsNotConstructed = errors.New(
	"PurgeExpiredTokensCommand must be created via NewPurgeExpiredTokensCommand constructor",
)

// PurgeExpiredTokensCommand triggers removal of expired verification and
// reset token pairs across all users. This batch operation is the entry
// point of the periodic cleanup job.
//
// Example:
//
//	cmd := NewPurgeExpiredTokensCommand()
//	handler := NewPurgeExpiredTokensCommandHandler(uowFactory)
//
//	// Run periodically from a scheduler
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    log.Printf("Token cleanup failed: %v", err)
//	}
type PurgeExpiredTokensCommand struct {
	guard guard.ConstructorGuard
}

// NewPurgeExpiredTokensCommand creates a command to purge expired tokens.
// This is a parameterless command that processes all affected users.
func NewPurgeExpiredTokensCommand() PurgeExpiredTokensCommand {
	command := PurgeExpiredTokensCommand{
		guard: guard.NewConstructorGuard(),
	}

	return command
}

// Validate ensures the command was created through the constructor.
// Returns ErrPurgeExpiredTokensCommandIsNotConstructed if validation fails.
func (c *PurgeExpiredTokensCommand) Validate() error {
	return c.guard.Validate(ErrPurgeExpiredTokensCommandIsNotConstructed)
}
