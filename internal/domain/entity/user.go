// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is a stored account that can authenticate with basic credentials.
type User struct {
	ID           uuid.UUID // Global unique identifier of the account.
	Username     string    // Unique login name; comparison rules are those of the store.
	PasswordHash string    // One-way hash of the password in one of the supported formats.
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Credentials is a username/password pair decoded from a request.
// It is created per request and never persisted.
type Credentials struct {
	Username string
	Password string
}

// String never includes the password so credentials are safe to log by accident.
func (c Credentials) String() string {
	return "Credentials{Username: " + c.Username + "}"
}

// GoString mirrors String for %#v.
func (c Credentials) GoString() string {
	return c.String()
}
