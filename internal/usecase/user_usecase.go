package usecase

import (
	"context"

	"dropmarks/internal/domain/entity"
)

// CreateUserInput defines the data required to create an account.
type CreateUserInput struct {
	Username string `validate:"required,min=3,max=64,username"`
	Password string `validate:"required"`
}

// ChangePasswordInput replaces the password of an existing account.
type ChangePasswordInput struct {
	Username string `validate:"required"`
	Password string `validate:"required"`
}

// UserUsecase administers the accounts that CredentialVerifier checks.
type UserUsecase interface {
	CreateUser(ctx context.Context, input *CreateUserInput) (*entity.User, error)
	GetUser(ctx context.Context, username string) (*entity.User, error)
	DeleteUser(ctx context.Context, username string) error
	ChangePassword(ctx context.Context, input *ChangePasswordInput) error
}
