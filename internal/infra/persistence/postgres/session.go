// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"dropmarks/internal/domain/repository"
	"dropmarks/internal/errors"

	"gorm.io/gorm"
)

// gormSessionManager implements repository.SessionManager with one GORM
// transaction per session. The transaction pins a single pooled connection
// until it is committed or rolled back.
type gormSessionManager struct {
	db *gorm.DB
}

// gormRepositoryFactory hands out repositories bound to one transaction.
type gormRepositoryFactory struct {
	tx *gorm.DB
}

func (f *gormRepositoryFactory) NewUserRepository() repository.UserRepository {
	return NewUserRepository(f.tx)
}

func NewSessionManager(db *gorm.DB) repository.SessionManager {
	return &gormSessionManager{db: db}
}

// WithSession runs fn inside a transaction and always returns its connection
// to the pool: commit on success, rollback on error, rollback then re-panic
// on panic.
func (m *gormSessionManager) WithSession(ctx context.Context, fn func(repos repository.RepositoryFactory) error) error {
	tx := m.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return errors.Wrap(tx.Error, "failed to open session")
	}

	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			panic(r)
		}
	}()

	if err := fn(&gormRepositoryFactory{tx: tx}); err != nil {
		if rbErr := tx.Rollback().Error; rbErr != nil {
			return errors.Wrapf(err, "session rollback failed: %v", rbErr)
		}

		return err
	}

	if err := tx.Commit().Error; err != nil {
		return errors.Wrap(err, "failed to commit session")
	}

	return nil
}
