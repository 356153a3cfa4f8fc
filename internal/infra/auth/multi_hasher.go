package auth

import (
	"strings"

	"dropmarks/config"
	domainerrors "dropmarks/internal/domain/errors"
	"dropmarks/internal/domain/service"
	"dropmarks/internal/errors"

	"go.uber.org/fx"
)

const (
	SchemeBcrypt    = config.SchemeBcrypt
	SchemeArgon2ID  = config.SchemeArgon2ID
	SchemeJasypt    = config.SchemeJasypt
	SchemeUnixCrypt = config.SchemeUnixCrypt
)

// MultiHasher detects the scheme of a stored hash and delegates to the matching
// hasher. New hashes are produced with the default scheme.
type MultiHasher struct {
	def     service.PasswordHasher
	hashers map[string]service.PasswordHasher
}

// NewMultiHasher registers hashers by Scheme and selects defaultScheme for Hash.
func NewMultiHasher(defaultScheme string, hashers ...service.PasswordHasher) (*MultiHasher, error) {
	m := &MultiHasher{hashers: make(map[string]service.PasswordHasher, len(hashers))}
	for _, h := range hashers {
		m.hashers[h.Scheme()] = h
	}

	def, ok := m.hashers[defaultScheme]
	if !ok {
		return nil, errors.Errorf("default hash scheme %q is not registered", defaultScheme)
	}
	m.def = def

	return m, nil
}

func (m *MultiHasher) Scheme() string {
	return m.def.Scheme()
}

func (m *MultiHasher) Hash(password string) (string, error) {
	return m.def.Hash(password)
}

// Check routes to the hasher owning the hash format. Unknown formats are an error.
func (m *MultiHasher) Check(password, hash string) (bool, error) {
	scheme := DetectScheme(hash)
	if scheme == "" {
		return false, errors.Wrap(domainerrors.ErrUnsupportedHash, "unrecognised hash format")
	}

	h, ok := m.hashers[scheme]
	if !ok {
		return false, errors.Wrapf(domainerrors.ErrUnsupportedHash, "hash scheme %q is not enabled", scheme)
	}

	return h.Check(password, hash)
}

// DetectScheme names the scheme of a stored hash, or returns "" when unknown.
func DetectScheme(hash string) string {
	switch {
	case hash == "":
		return ""
	case strings.HasPrefix(hash, "$2a$"), strings.HasPrefix(hash, "$2b$"), strings.HasPrefix(hash, "$2y$"):
		return SchemeBcrypt
	case strings.HasPrefix(hash, argon2idPrefix):
		return SchemeArgon2ID
	case isUnixCrypt(hash):
		return SchemeUnixCrypt
	}

	if _, ok := decodeJasypt(hash); ok {
		return SchemeJasypt
	}

	return ""
}

// HasherParams defines the dependencies of NewPasswordHasher.
type HasherParams struct {
	fx.In

	Config *config.Config
}

// NewPasswordHasher builds the MultiHasher with every supported scheme and the configured default.
func NewPasswordHasher(params HasherParams) (*MultiHasher, error) {
	scheme := SchemeBcrypt
	cost := 0
	if params.Config.Auth != nil {
		if params.Config.Auth.Scheme != "" {
			scheme = params.Config.Auth.Scheme
		}
		cost = params.Config.Auth.BcryptCost
	}

	return NewMultiHasher(scheme,
		NewBcryptHasherWithCost(cost),
		NewArgon2idHasher(DefaultArgon2Params),
		NewUnixCryptHasher(),
		NewJasyptHasher(),
	)
}
