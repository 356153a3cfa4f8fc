package impl

import (
	"context"
	"testing"

	"dropmarks/internal/domain/entity"
	domainerrors "dropmarks/internal/domain/errors"
	"dropmarks/internal/domain/repository"
	mockRepo "dropmarks/internal/mocks/repository"
	mockSvc "dropmarks/internal/mocks/service"
	"dropmarks/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const aliceHash = "$2a$10$aliceStoredHash"

type verifierFixtures struct {
	verifier   usecase.CredentialVerifier
	userRepo   *mockRepo.MockUserRepository
	comparator *mockSvc.MockPasswordHasher
	sessions   *sessionCounter
}

func createTestVerifier(t *testing.T) verifierFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	comparator := mockSvc.NewMockPasswordHasher(t)
	sessions, counter := newCountingSessions(t, userRepo)

	verifier := NewCredentialVerifier(CredentialVerifierParams{
		Sessions:   sessions,
		Comparator: comparator,
		Logger:     newDiscardLogger(),
	})

	return verifierFixtures{
		verifier:   verifier,
		userRepo:   userRepo,
		comparator: comparator,
		sessions:   counter,
	}
}

func alice() *entity.User {
	return &entity.User{ID: uuid.New(), Username: "alice", PasswordHash: aliceHash}
}

func assertReleasedOnce(t *testing.T, counter *sessionCounter) {
	t.Helper()
	assert.Equal(t, 1, counter.opened, "sessions opened")
	assert.Equal(t, 1, counter.released, "sessions released")
}

func TestCredentialVerifier_Authenticated(t *testing.T) {
	fx := createTestVerifier(t)
	ctx := context.Background()
	user := alice()

	fx.userRepo.EXPECT().FindByUsername(ctx, "alice").Return(user, nil).Once()
	fx.comparator.EXPECT().Check("secret123", aliceHash).Return(true, nil).Once()

	result, err := fx.verifier.Verify(ctx, entity.Credentials{Username: "alice", Password: "secret123"})

	require.NoError(t, err)
	assert.True(t, result.Authenticated())
	assert.Equal(t, entity.AuthOutcomeAuthenticated, result.Outcome)
	assert.Equal(t, user, result.User)
	assertReleasedOnce(t, fx.sessions)
}

func TestCredentialVerifier_Mismatch(t *testing.T) {
	fx := createTestVerifier(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().FindByUsername(ctx, "alice").Return(alice(), nil).Once()
	fx.comparator.EXPECT().Check("wrong", aliceHash).Return(false, nil).Once()

	result, err := fx.verifier.Verify(ctx, entity.Credentials{Username: "alice", Password: "wrong"})

	require.NoError(t, err)
	assert.False(t, result.Authenticated())
	assert.Equal(t, entity.AuthOutcomeMismatch, result.Outcome)
	assert.Nil(t, result.User)
	assertReleasedOnce(t, fx.sessions)
}

func TestCredentialVerifier_NotFound(t *testing.T) {
	tests := []struct {
		name        string
		credentials entity.Credentials
	}{
		{name: "unknown user", credentials: entity.Credentials{Username: "bob", Password: "anything"}},
		{name: "empty username", credentials: entity.Credentials{Username: "", Password: "secret123"}},
		{name: "empty both", credentials: entity.Credentials{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestVerifier(t)
			ctx := context.Background()

			fx.userRepo.EXPECT().FindByUsername(ctx, tt.credentials.Username).Return(nil, repository.ErrUserNotFound).Once()

			result, err := fx.verifier.Verify(ctx, tt.credentials)

			require.NoError(t, err)
			assert.Equal(t, entity.AuthOutcomeNotFound, result.Outcome)
			assert.Nil(t, result.User)
			fx.comparator.AssertNotCalled(t, "Check", mock.Anything, mock.Anything)
			assertReleasedOnce(t, fx.sessions)
		})
	}
}

func TestCredentialVerifier_EmptyPasswordIsMismatch(t *testing.T) {
	fx := createTestVerifier(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().FindByUsername(ctx, "alice").Return(alice(), nil).Once()
	fx.comparator.EXPECT().Check("", aliceHash).Return(false, nil).Once()

	result, err := fx.verifier.Verify(ctx, entity.Credentials{Username: "alice"})

	require.NoError(t, err)
	assert.Equal(t, entity.AuthOutcomeMismatch, result.Outcome)
}

func TestCredentialVerifier_StoreFailure(t *testing.T) {
	connErr := errors.New("dial tcp 10.0.0.5:5432: connection refused")
	hashErr := domainerrors.ErrUnsupportedHash.WrapMessage("unrecognised hash format")

	tests := []struct {
		name    string
		setup   func(fx verifierFixtures, ctx context.Context)
		wantErr error
	}{
		{
			name: "lookup error",
			setup: func(fx verifierFixtures, ctx context.Context) {
				fx.userRepo.EXPECT().FindByUsername(ctx, "alice").Return(nil, connErr).Once()
			},
			wantErr: connErr,
		},
		{
			name: "comparator error",
			setup: func(fx verifierFixtures, ctx context.Context) {
				fx.userRepo.EXPECT().FindByUsername(ctx, "alice").Return(alice(), nil).Once()
				fx.comparator.EXPECT().Check("secret123", aliceHash).Return(false, hashErr).Once()
			},
			wantErr: domainerrors.ErrUnsupportedHash,
		},
		{
			name: "lookup panic",
			setup: func(fx verifierFixtures, ctx context.Context) {
				fx.userRepo.EXPECT().FindByUsername(ctx, "alice").
					RunAndReturn(func(context.Context, string) (*entity.User, error) {
						panic("driver bug")
					}).Once()
			},
		},
		{
			name: "comparator panic",
			setup: func(fx verifierFixtures, ctx context.Context) {
				fx.userRepo.EXPECT().FindByUsername(ctx, "alice").Return(alice(), nil).Once()
				fx.comparator.EXPECT().Check("secret123", aliceHash).
					RunAndReturn(func(string, string) (bool, error) {
						panic(connErr)
					}).Once()
			},
			wantErr: connErr,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestVerifier(t)
			ctx := context.Background()
			tt.setup(fx, ctx)

			result, err := fx.verifier.Verify(ctx, entity.Credentials{Username: "alice", Password: "secret123"})

			require.Error(t, err)
			assert.Nil(t, result)
			assert.True(t, errors.Is(err, domainerrors.ErrAuthenticationUnavailable))
			assert.False(t, errors.Is(err, repository.ErrUserNotFound))
			if tt.wantErr != nil {
				assert.True(t, errors.Is(err, tt.wantErr))
			}
			assertReleasedOnce(t, fx.sessions)
		})
	}
}

func TestCredentialVerifier_SessionOpenFailure(t *testing.T) {
	openErr := errors.New("too many connections")
	sessions := mockRepo.NewMockSessionManager(t)
	sessions.EXPECT().WithSession(mock.Anything, mock.Anything).Return(openErr).Once()

	verifier := NewCredentialVerifier(CredentialVerifierParams{
		Sessions:   sessions,
		Comparator: mockSvc.NewMockPasswordHasher(t),
		Logger:     newDiscardLogger(),
	})

	result, err := verifier.Verify(context.Background(), entity.Credentials{Username: "alice", Password: "secret123"})

	assert.Nil(t, result)
	assert.True(t, errors.Is(err, domainerrors.ErrAuthenticationUnavailable))
	assert.True(t, errors.Is(err, openErr))
}

func TestCredentialVerifier_Idempotent(t *testing.T) {
	fx := createTestVerifier(t)
	ctx := context.Background()
	user := alice()

	fx.userRepo.EXPECT().FindByUsername(ctx, "alice").Return(user, nil).Twice()
	fx.comparator.EXPECT().Check("wrong", aliceHash).Return(false, nil).Twice()

	first, err := fx.verifier.Verify(ctx, entity.Credentials{Username: "alice", Password: "wrong"})
	require.NoError(t, err)
	second, err := fx.verifier.Verify(ctx, entity.Credentials{Username: "alice", Password: "wrong"})
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 2, fx.sessions.opened)
	assert.Equal(t, 2, fx.sessions.released)
}
