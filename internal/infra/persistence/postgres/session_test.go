package postgres

import (
	"context"
	"testing"

	"dropmarks/internal/domain/entity"
	"dropmarks/internal/domain/repository"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionManager_CommitsOnSuccess(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	sessions := NewSessionManager(db)

	err := sessions.WithSession(ctx, func(repos repository.RepositoryFactory) error {
		assert.Equal(t, 1, inUseConnections(t, db))

		return repos.NewUserRepository().Create(ctx, &entity.User{Username: "alice", PasswordHash: "x"})
	})
	require.NoError(t, err)
	assert.Equal(t, 0, inUseConnections(t, db))

	_, err = NewUserRepository(db).FindByUsername(ctx, "alice")
	assert.NoError(t, err)
}

func TestSessionManager_RollsBackOnError(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	sessions := NewSessionManager(db)
	boom := errors.New("boom")

	err := sessions.WithSession(ctx, func(repos repository.RepositoryFactory) error {
		require.NoError(t, repos.NewUserRepository().Create(ctx, &entity.User{Username: "alice", PasswordHash: "x"}))

		return boom
	})
	assert.True(t, errors.Is(err, boom))
	assert.Equal(t, 0, inUseConnections(t, db))

	_, err = NewUserRepository(db).FindByUsername(ctx, "alice")
	assert.True(t, errors.Is(err, repository.ErrUserNotFound))
}

func TestSessionManager_ReleasesOnPanic(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	sessions := NewSessionManager(db)

	assert.PanicsWithValue(t, "lookup exploded", func() {
		_ = sessions.WithSession(ctx, func(repos repository.RepositoryFactory) error {
			_, _ = repos.NewUserRepository().FindByUsername(ctx, "alice")
			panic("lookup exploded")
		})
	})
	assert.Equal(t, 0, inUseConnections(t, db))

	// The single pooled connection must be usable again.
	_, err := NewUserRepository(db).FindByUsername(ctx, "alice")
	assert.True(t, errors.Is(err, repository.ErrUserNotFound))
}

func TestSessionManager_ConcurrentSessionsAreIsolated(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	sessions := NewSessionManager(db)
	require.NoError(t, NewUserRepository(db).Create(ctx, &entity.User{Username: "alice", PasswordHash: "x"}))

	const workers = 8
	errs := make(chan error, workers)
	for range workers {
		go func() {
			errs <- sessions.WithSession(ctx, func(repos repository.RepositoryFactory) error {
				_, err := repos.NewUserRepository().FindByUsername(ctx, "alice")

				return err
			})
		}()
	}

	for range workers {
		assert.NoError(t, <-errs)
	}
	assert.Equal(t, 0, inUseConnections(t, db))
}
