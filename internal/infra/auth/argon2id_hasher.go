package auth

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"

	domainerrors "dropmarks/internal/domain/errors"
	"dropmarks/internal/domain/service"
	"dropmarks/internal/errors"

	"golang.org/x/crypto/argon2"
)

const argon2idPrefix = "$argon2id$"

// Argon2Params are the cost parameters used for new argon2id hashes.
type Argon2Params struct {
	Memory  uint32 // KiB
	Time    uint32
	Threads uint8
	SaltLen uint32
	KeyLen  uint32
}

// DefaultArgon2Params follows the RFC 9106 second recommended option.
var DefaultArgon2Params = Argon2Params{
	Memory:  64 * 1024,
	Time:    3,
	Threads: 4,
	SaltLen: 16,
	KeyLen:  32,
}

// argon2idHasher produces and verifies PHC formatted argon2id hashes:
// $argon2id$v=19$m=65536,t=3,p=4$<salt b64>$<hash b64>
type argon2idHasher struct {
	params Argon2Params
}

func NewArgon2idHasher(params Argon2Params) service.PasswordHasher {
	return &argon2idHasher{params: params}
}

func (h *argon2idHasher) Scheme() string {
	return SchemeArgon2ID
}

func (h *argon2idHasher) Hash(password string) (string, error) {
	salt := make([]byte, h.params.SaltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
	}

	key := argon2.IDKey([]byte(password), salt, h.params.Time, h.params.Memory, h.params.Threads, h.params.KeyLen)

	return fmt.Sprintf("%sv=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2idPrefix,
		argon2.Version,
		h.params.Memory, h.params.Time, h.params.Threads,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key),
	), nil
}

func (h *argon2idHasher) Check(password, hash string) (bool, error) {
	params, salt, expected, err := parseArgon2id(hash)
	if err != nil {
		return false, err
	}

	derived := argon2.IDKey([]byte(password), salt, params.Time, params.Memory, params.Threads, uint32(len(expected)))

	return subtle.ConstantTimeCompare(derived, expected) == 1, nil
}

func parseArgon2id(hash string) (Argon2Params, []byte, []byte, error) {
	var params Argon2Params

	// ["", "argon2id", "v=19", "m=..,t=..,p=..", salt, hash]
	parts := strings.Split(hash, "$")
	if len(parts) != 6 || parts[1] != "argon2id" {
		return params, nil, nil, errors.Wrap(domainerrors.ErrUnsupportedHash, "argon2id: invalid format")
	}

	version, err := strconv.Atoi(strings.TrimPrefix(parts[2], "v="))
	if err != nil || version != argon2.Version {
		return params, nil, nil, errors.Wrapf(domainerrors.ErrUnsupportedHash, "argon2id: unsupported version %q", parts[2])
	}

	seen := make(map[string]bool, 3)
	for _, kv := range strings.Split(parts[3], ",") {
		key, val, ok := strings.Cut(kv, "=")
		if !ok {
			return params, nil, nil, errors.Wrapf(domainerrors.ErrUnsupportedHash, "argon2id: invalid parameter %q", kv)
		}
		if seen[key] {
			return params, nil, nil, errors.Wrapf(domainerrors.ErrUnsupportedHash, "argon2id: duplicate parameter %q", key)
		}
		seen[key] = true

		n, err := strconv.ParseUint(val, 10, 32)
		if err != nil || n == 0 {
			return params, nil, nil, errors.Wrapf(domainerrors.ErrUnsupportedHash, "argon2id: invalid parameter %q", kv)
		}

		switch key {
		case "m":
			params.Memory = uint32(n)
		case "t":
			params.Time = uint32(n)
		case "p":
			if n > 255 {
				return params, nil, nil, errors.Wrapf(domainerrors.ErrUnsupportedHash, "argon2id: parallelism %d out of range", n)
			}
			params.Threads = uint8(n)
		default:
			return params, nil, nil, errors.Wrapf(domainerrors.ErrUnsupportedHash, "argon2id: unknown parameter %q", key)
		}
	}

	if params.Memory == 0 || params.Time == 0 || params.Threads == 0 {
		return params, nil, nil, errors.Wrap(domainerrors.ErrUnsupportedHash, "argon2id: missing parameters")
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return params, nil, nil, errors.Wrapf(domainerrors.ErrUnsupportedHash, "argon2id: invalid salt: %v", err)
	}

	key, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil || len(key) == 0 {
		return params, nil, nil, errors.Wrap(domainerrors.ErrUnsupportedHash, "argon2id: invalid key")
	}

	return params, salt, key, nil
}
