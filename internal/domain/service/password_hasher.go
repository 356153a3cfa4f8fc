// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

// HashComparator checks a plaintext password against a stored one-way hash.
type HashComparator interface {
	// Check reports whether password matches hash. A well-formed hash that does
	// not match yields false and a nil error. A malformed or unsupported hash
	// yields an error.
	Check(password, hash string) (bool, error)
}

// PasswordHasher produces new hashes in addition to comparing them.
type PasswordHasher interface {
	HashComparator

	// Hash generates a salted hash from a plaintext password.
	Hash(password string) (string, error)

	// Scheme names the algorithm, e.g. "bcrypt".
	Scheme() string
}
