// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"dropmarks/internal/domain/entity"
	"dropmarks/internal/errors"

	"github.com/google/uuid"
)

// ErrUserNotFound is returned when no user matches the lookup key.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the standard operations for user persistence.
type UserRepository interface {
	// FindByUsername retrieves the user with exactly this username.
	// It returns ErrUserNotFound when absent.
	FindByUsername(ctx context.Context, username string) (*entity.User, error)

	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// Create persists a new user. A duplicate username yields
	// domain errors.ErrUserAlreadyExists.
	Create(ctx context.Context, user *entity.User) error

	// UpdatePasswordHash replaces the stored hash of the named user.
	UpdatePasswordHash(ctx context.Context, username, passwordHash string) error

	// DeleteByUsername removes the named user. It returns ErrUserNotFound when absent.
	DeleteByUsername(ctx context.Context, username string) error
}
