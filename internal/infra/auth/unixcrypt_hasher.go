package auth

import (
	"crypto/rand"
	"crypto/subtle"
	"strings"

	domainerrors "dropmarks/internal/domain/errors"
	"dropmarks/internal/domain/service"
	"dropmarks/internal/errors"

	"github.com/digitive/crypt"
)

const (
	unixCryptLen      = 13
	unixCryptAlphabet = "./0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"
)

// unixCryptHasher handles traditional 13 character DES crypt(3) hashes.
// Only the first 8 bytes of a password are significant.
type unixCryptHasher struct{}

func NewUnixCryptHasher() service.PasswordHasher {
	return &unixCryptHasher{}
}

func (h *unixCryptHasher) Scheme() string {
	return SchemeUnixCrypt
}

func (h *unixCryptHasher) Hash(password string) (string, error) {
	raw := make([]byte, 2)
	if _, err := rand.Read(raw); err != nil {
		return "", errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
	}

	salt := []byte{
		unixCryptAlphabet[int(raw[0])%len(unixCryptAlphabet)],
		unixCryptAlphabet[int(raw[1])%len(unixCryptAlphabet)],
	}

	hashed, err := crypt.Crypt(password, string(salt))
	if err != nil {
		return "", errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
	}

	return hashed, nil
}

func (h *unixCryptHasher) Check(password, hash string) (bool, error) {
	if !isUnixCrypt(hash) {
		return false, errors.Wrap(domainerrors.ErrUnsupportedHash, "unixcrypt: invalid format")
	}

	computed, err := crypt.Crypt(password, hash[:2])
	if err != nil {
		return false, errors.Wrapf(domainerrors.ErrUnsupportedHash, "unixcrypt: %v", err)
	}

	return subtle.ConstantTimeCompare([]byte(computed), []byte(hash)) == 1, nil
}

func isUnixCrypt(hash string) bool {
	if len(hash) != unixCryptLen {
		return false
	}

	for i := 0; i < len(hash); i++ {
		if !strings.ContainsRune(unixCryptAlphabet, rune(hash[i])) {
			return false
		}
	}

	return true
}
