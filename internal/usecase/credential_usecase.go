// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"dropmarks/internal/domain/entity"
)

// VerificationResult is the verdict for one set of credentials. User is set
// only when Outcome is entity.AuthOutcomeAuthenticated.
type VerificationResult struct {
	Outcome entity.AuthOutcome
	User    *entity.User
}

// Authenticated reports whether the credentials matched a stored user.
func (r *VerificationResult) Authenticated() bool {
	return r != nil && r.Outcome == entity.AuthOutcomeAuthenticated && r.User != nil
}

// CredentialVerifier checks basic credentials against the user store.
type CredentialVerifier interface {
	// Verify returns NotFound, Mismatch or Authenticated as a result. An
	// infrastructure failure is returned as an error matching
	// domain errors.ErrAuthenticationUnavailable instead.
	Verify(ctx context.Context, credentials entity.Credentials) (*VerificationResult, error)
}
