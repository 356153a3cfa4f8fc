package repository

import "context"

// SessionManager scopes repository access to one store session.
// The usecase layer uses it without depending on a specific driver like GORM.
type SessionManager interface {
	// WithSession opens a session, hands fn repositories bound to it and releases
	// the session before returning, whether fn succeeds, fails or panics.
	// A panic inside fn is re-raised after the release.
	WithSession(ctx context.Context, fn func(repos RepositoryFactory) error) error
}

// RepositoryFactory provides repository instances bound to a single session.
type RepositoryFactory interface {
	NewUserRepository() UserRepository
}
