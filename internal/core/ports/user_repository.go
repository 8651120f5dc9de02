// Package ports defines repository and service interfaces for the domain.
// These interfaces establish contracts between the domain layer and infrastructure,
// enabling dependency inversion and testability.
package ports

import (
	"context"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/user"
)

// UserRepository defines the persistence contract for user aggregates.
// Provides methods for storing, retrieving, and querying user entities
// with their complete credential state including pending token pairs.
type UserRepository interface {
	// Add persists a new user aggregate to storage.
	// The user must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *user.User) error

	// Update persists changes to an existing user aggregate.
	// The user must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *user.User) error

	// Get retrieves a user aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*user.User, error)

	// GetByEmail retrieves a user aggregate by its exact email value.
	// The lookup is byte-exact; no case folding is applied.
	GetByEmail(ctx context.Context, email user.Email) (*user.User, error)

	// ExistsByEmail reports whether a user with the exact email value exists.
	ExistsByEmail(ctx context.Context, email user.Email) (bool, error)

	// GetAllWithExpiredTokens retrieves all users holding at least one token
	// pair whose expiry has passed. Used by the periodic cleanup job.
	GetAllWithExpiredTokens(ctx context.Context) ([]*user.User, error)
}
