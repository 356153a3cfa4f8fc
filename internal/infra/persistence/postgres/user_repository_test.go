package postgres

import (
	"context"
	"testing"

	"dropmarks/internal/domain/entity"
	domainerrors "dropmarks/internal/domain/errors"
	"dropmarks/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepository_CreateAndFind(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(newTestDB(t))

	user := &entity.User{Username: "alice", PasswordHash: "$2a$04$hash"}
	require.NoError(t, repo.Create(ctx, user))
	assert.NotEqual(t, uuid.Nil, user.ID)
	assert.False(t, user.CreatedAt.IsZero())

	found, err := repo.FindByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, user.ID, found.ID)
	assert.Equal(t, "$2a$04$hash", found.PasswordHash)

	byID, err := repo.FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice", byID.Username)
}

func TestUserRepository_FindByUsername_NotFound(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(newTestDB(t))
	require.NoError(t, repo.Create(ctx, &entity.User{Username: "alice", PasswordHash: "x"}))

	for _, username := range []string{"bob", "", "ALICE"} {
		_, err := repo.FindByUsername(ctx, username)
		assert.True(t, errors.Is(err, repository.ErrUserNotFound), username)
	}

	_, err := repo.FindByID(ctx, uuid.New())
	assert.True(t, errors.Is(err, repository.ErrUserNotFound))
}

func TestUserRepository_Create_Duplicate(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(newTestDB(t))

	require.NoError(t, repo.Create(ctx, &entity.User{Username: "alice", PasswordHash: "x"}))

	err := repo.Create(ctx, &entity.User{Username: "alice", PasswordHash: "y"})
	assert.True(t, errors.Is(err, domainerrors.ErrUserAlreadyExists))
}

func TestUserRepository_UpdatePasswordHash(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(newTestDB(t))
	require.NoError(t, repo.Create(ctx, &entity.User{Username: "alice", PasswordHash: "old"}))

	require.NoError(t, repo.UpdatePasswordHash(ctx, "alice", "new"))

	found, err := repo.FindByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, "new", found.PasswordHash)

	err = repo.UpdatePasswordHash(ctx, "bob", "new")
	assert.True(t, errors.Is(err, repository.ErrUserNotFound))
}

func TestUserRepository_DeleteByUsername(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(newTestDB(t))
	require.NoError(t, repo.Create(ctx, &entity.User{Username: "alice", PasswordHash: "x"}))

	require.NoError(t, repo.DeleteByUsername(ctx, "alice"))

	_, err := repo.FindByUsername(ctx, "alice")
	assert.True(t, errors.Is(err, repository.ErrUserNotFound))

	err = repo.DeleteByUsername(ctx, "alice")
	assert.True(t, errors.Is(err, repository.ErrUserNotFound))
}

func TestUserRepository_StoreFailureIsDatabaseError(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	_, err = repo.FindByUsername(context.Background(), "alice")
	require.Error(t, err)
	assert.False(t, errors.Is(err, repository.ErrUserNotFound))

	_, ok := domainerrors.AsAppError(err)
	assert.True(t, ok)
}
