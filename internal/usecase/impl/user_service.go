package impl

import (
	"context"
	"log/slog"
	"regexp"

	"dropmarks/config"
	deliverycontext "dropmarks/internal/delivery/context"
	"dropmarks/internal/domain/entity"
	domainerrors "dropmarks/internal/domain/errors"
	"dropmarks/internal/domain/repository"
	"dropmarks/internal/domain/service"
	"dropmarks/internal/usecase"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const bcryptMaxPasswordBytes = 72

var usernamePattern = regexp.MustCompile(`^[A-Za-z0-9_.\-]+$`)

// userService implements the UserUsecase interface.
type userService struct {
	sessions repository.SessionManager
	hasher   service.PasswordHasher
	validate *validator.Validate
	logger   *slog.Logger
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	Sessions repository.SessionManager
	Hasher   service.PasswordHasher
	Logger   *slog.Logger
}

func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		sessions: params.Sessions,
		hasher:   params.Hasher,
		validate: newValidator(),
		logger:   params.Logger,
	}
}

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("username", func(fl validator.FieldLevel) bool {
		return usernamePattern.MatchString(fl.Field().String())
	})

	return v
}

func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *userService) CreateUser(ctx context.Context, input *usecase.CreateUserInput) (*entity.User, error) {
	if err := srv.validate.Struct(input); err != nil {
		srv.log(ctx).Warn("Invalid user input", slog.String("username", input.Username), slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrValidationFailed.WithDetails(err.Error()), "invalid create user input")
	}

	hash, err := srv.hashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	user := &entity.User{Username: input.Username, PasswordHash: hash}
	err = srv.sessions.WithSession(ctx, func(repos repository.RepositoryFactory) error {
		return repos.NewUserRepository().Create(ctx, user)
	})
	if err != nil {
		if !errors.Is(err, domainerrors.ErrUserAlreadyExists) {
			srv.log(ctx).Error("Failed to create user", slog.String("username", input.Username), slog.Any("error", err))
		}

		return nil, errors.Wrap(err, "failed to create user")
	}

	srv.log(ctx).Info("User created", slog.String("username", user.Username), slog.Any("userID", user.ID), slog.String("scheme", srv.hasher.Scheme()))

	return user, nil
}

func (srv *userService) GetUser(ctx context.Context, username string) (*entity.User, error) {
	var user *entity.User
	err := srv.sessions.WithSession(ctx, func(repos repository.RepositoryFactory) error {
		var err error
		user, err = repos.NewUserRepository().FindByUsername(ctx, username)

		return err
	})
	if err != nil {
		return nil, translateUserError(err, "failed to get user")
	}

	return user, nil
}

func (srv *userService) DeleteUser(ctx context.Context, username string) error {
	err := srv.sessions.WithSession(ctx, func(repos repository.RepositoryFactory) error {
		return repos.NewUserRepository().DeleteByUsername(ctx, username)
	})
	if err != nil {
		return translateUserError(err, "failed to delete user")
	}

	srv.log(ctx).Info("User deleted", slog.String("username", username))

	return nil
}

func (srv *userService) ChangePassword(ctx context.Context, input *usecase.ChangePasswordInput) error {
	if err := srv.validate.Struct(input); err != nil {
		return errors.Wrap(domainerrors.ErrValidationFailed.WithDetails(err.Error()), "invalid change password input")
	}

	hash, err := srv.hashPassword(input.Password)
	if err != nil {
		return err
	}

	err = srv.sessions.WithSession(ctx, func(repos repository.RepositoryFactory) error {
		return repos.NewUserRepository().UpdatePasswordHash(ctx, input.Username, hash)
	})
	if err != nil {
		return translateUserError(err, "failed to change password")
	}

	srv.log(ctx).Info("Password changed", slog.String("username", input.Username), slog.String("scheme", srv.hasher.Scheme()))

	return nil
}

func (srv *userService) hashPassword(password string) (string, error) {
	if srv.hasher.Scheme() == config.SchemeBcrypt && len(password) > bcryptMaxPasswordBytes {
		return "", errors.WithStack(domainerrors.ErrPasswordTooLong)
	}

	hash, err := srv.hasher.Hash(password)
	if err != nil {
		return "", errors.Wrap(err, "failed to hash password")
	}

	return hash, nil
}

// translateUserError maps repository.ErrUserNotFound onto the domain AppError.
func translateUserError(err error, message string) error {
	if errors.Is(err, repository.ErrUserNotFound) {
		return domainerrors.ErrUserNotFound.WrapMessage(message)
	}

	return errors.Wrap(err, message)
}
