// Package userrepo provides data transfer objects and mapping functions for user persistence.
// This package implements the repository pattern for the user domain aggregate, handling
// the conversion between domain entities and database representations.
package userrepo

import (
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/user"

	"github.com/google/uuid"
)

// UserDTO represents the database structure for persisting user aggregates.
// Token pairs are stored as nullable column pairs, set and cleared together
// with the domain's PendingToken semantics.
type UserDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	Email         string    `gorm:"type:varchar(256);not null;uniqueIndex"`
	FirstName     string    `gorm:"type:varchar(100);not null"`
	LastName      string    `gorm:"type:varchar(100);not null"`
	PasswordHash  *string
	Role          int  `gorm:"type:smallint;not null"`
	EmailVerified bool `gorm:"not null"`

	VerificationToken          *string
	VerificationTokenExpiresAt *time.Time `gorm:"index"`
	ResetToken                 *string
	ResetTokenExpiresAt        *time.Time `gorm:"index"`

	Active    bool `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName specifies the database table name for user entities.
// Overrides GORM's default naming convention to use "users".
func (UserDTO) TableName() string {
	return "users"
}

// fromDomain converts a user domain aggregate to its database representation.
func fromDomain(aggregate *user.User) UserDTO {
	verificationToken, verificationExpiry := splitToken(aggregate.EmailVerificationToken())
	resetToken, resetExpiry := splitToken(aggregate.PasswordResetToken())

	return UserDTO{
		ID:            aggregate.ID().Bytes(),
		Email:         aggregate.Email().Value(),
		FirstName:     aggregate.FirstName(),
		LastName:      aggregate.LastName(),
		PasswordHash:  aggregate.PasswordHash(),
		Role:          int(aggregate.Role()),
		EmailVerified: aggregate.IsEmailVerified(),

		VerificationToken:          verificationToken,
		VerificationTokenExpiresAt: verificationExpiry,
		ResetToken:                 resetToken,
		ResetTokenExpiresAt:        resetExpiry,

		Active:    aggregate.IsActive(),
		CreatedAt: aggregate.CreatedAt(),
		UpdatedAt: aggregate.UpdatedAt(),
	}
}

// toDomain converts a database DTO to a user domain aggregate.
// Reconstructs the complete aggregate including token pairs using RestoreUser.
func toDomain(dto UserDTO) (*user.User, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return user.RestoreUser(
		id,
		user.RestoreEmail(dto.Email),
		dto.FirstName,
		dto.LastName,
		dto.PasswordHash,
		user.Role(dto.Role),
		dto.EmailVerified,
		joinToken(dto.VerificationToken, dto.VerificationTokenExpiresAt),
		joinToken(dto.ResetToken, dto.ResetTokenExpiresAt),
		dto.Active,
		dto.CreatedAt,
		dto.UpdatedAt,
	)
}

// splitToken maps a pending token pair onto its two nullable columns.
func splitToken(token *user.PendingToken) (*string, *time.Time) {
	if token == nil {
		return nil, nil
	}

	value := token.Value()
	expiresAt := token.ExpiresAt()
	return &value, &expiresAt
}

// joinToken rebuilds a pending token pair from its columns. A row with only
// one half of the pair set is treated as having no token.
func joinToken(value *string, expiresAt *time.Time) *user.PendingToken {
	if value == nil || expiresAt == nil {
		return nil
	}

	return user.RestorePendingToken(*value, expiresAt.UTC())
}
