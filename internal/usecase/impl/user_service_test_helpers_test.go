package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"dropmarks/internal/domain/repository"
	mockRepo "dropmarks/internal/mocks/repository"

	"github.com/stretchr/testify/mock"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// sessionCounter records how often a mocked session was opened and released.
type sessionCounter struct {
	opened   int
	released int
}

// newCountingSessions returns a SessionManager mock that hands repo to every
// session and counts releases, including releases while a panic unwinds.
func newCountingSessions(t *testing.T, repo repository.UserRepository) (*mockRepo.MockSessionManager, *sessionCounter) {
	t.Helper()

	counter := &sessionCounter{}
	sessions := mockRepo.NewMockSessionManager(t)
	sessions.EXPECT().
		WithSession(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			counter.opened++
			defer func() { counter.released++ }()

			factory := mockRepo.NewMockRepositoryFactory(t)
			factory.EXPECT().NewUserRepository().Return(repo)

			return fn(factory)
		})

	return sessions, counter
}
