// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "dropmarks/internal/delivery/context"
	"dropmarks/internal/domain/entity"
	domainerrors "dropmarks/internal/domain/errors"
	"dropmarks/internal/domain/repository"
	"dropmarks/internal/domain/service"
	"dropmarks/internal/errors"
	"dropmarks/internal/usecase"

	"go.uber.org/fx"
)

// credentialVerifier implements usecase.CredentialVerifier. It holds no
// mutable state, so one instance serves concurrent requests.
type credentialVerifier struct {
	sessions   repository.SessionManager
	comparator service.HashComparator
	logger     *slog.Logger
}

// CredentialVerifierParams holds dependencies for CredentialVerifier, injected by Fx.
type CredentialVerifierParams struct {
	fx.In

	Sessions   repository.SessionManager
	Comparator service.HashComparator
	Logger     *slog.Logger
}

func NewCredentialVerifier(params CredentialVerifierParams) usecase.CredentialVerifier {
	return &credentialVerifier{
		sessions:   params.Sessions,
		comparator: params.Comparator,
		logger:     params.Logger,
	}
}

func (v *credentialVerifier) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, v.logger)
}

// Verify looks the username up in a fresh store session and compares the
// password against the stored hash. The session is released before Verify
// returns on every path, including a panic in the lookup or the comparator.
func (v *credentialVerifier) Verify(ctx context.Context, credentials entity.Credentials) (*usecase.VerificationResult, error) {
	result, err := v.verify(ctx, credentials)
	if err != nil {
		v.log(ctx).Error("Credential verification unavailable",
			slog.String("username", credentials.Username),
			slog.Any("error", err),
		)

		return nil, domainerrors.NewAuthenticationUnavailableError(err)
	}

	switch result.Outcome {
	case entity.AuthOutcomeAuthenticated:
		v.log(ctx).Debug("Credentials verified", slog.String("username", credentials.Username), slog.Any("userID", result.User.ID))
	default:
		v.log(ctx).Warn("Credentials rejected", slog.String("username", credentials.Username), slog.String("outcome", string(result.Outcome)))
	}

	return result, nil
}

func (v *credentialVerifier) verify(ctx context.Context, credentials entity.Credentials) (result *usecase.VerificationResult, err error) {
	// WithSession releases the session before re-raising; the panic stops here.
	defer func() {
		if r := recover(); r != nil {
			result, err = nil, errors.FromPanic(r)
		}
	}()

	err = v.sessions.WithSession(ctx, func(repos repository.RepositoryFactory) error {
		user, err := repos.NewUserRepository().FindByUsername(ctx, credentials.Username)
		if errors.Is(err, repository.ErrUserNotFound) {
			result = &usecase.VerificationResult{Outcome: entity.AuthOutcomeNotFound}

			return nil
		}
		if err != nil {
			return errors.Wrap(err, "failed to look up user")
		}

		matched, err := v.comparator.Check(credentials.Password, user.PasswordHash)
		if err != nil {
			return errors.Wrap(err, "failed to compare password hash")
		}

		if !matched {
			result = &usecase.VerificationResult{Outcome: entity.AuthOutcomeMismatch}

			return nil
		}

		result = &usecase.VerificationResult{Outcome: entity.AuthOutcomeAuthenticated, User: user}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}
