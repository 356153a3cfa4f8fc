package auth

import (
	"crypto/md5" //nolint:gosec // legacy digest format, verification only by default
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"

	domainerrors "dropmarks/internal/domain/errors"
	"dropmarks/internal/domain/service"
	"dropmarks/internal/errors"

	"golang.org/x/text/unicode/norm"
)

const (
	jasyptSaltSize   = 8
	jasyptIterations = 1000
)

// jasyptHasher reads and writes digests in the format of Jasypt's
// BasicPasswordEncryptor: base64(salt || md5^1000(salt || password)).
// Rows migrated from older deployments carry these digests. Passwords are
// NFC-normalised and UTF-8 encoded before digesting, as Jasypt does.
type jasyptHasher struct{}

func NewJasyptHasher() service.PasswordHasher {
	return &jasyptHasher{}
}

func (h *jasyptHasher) Scheme() string {
	return SchemeJasypt
}

func (h *jasyptHasher) Hash(password string) (string, error) {
	salt := make([]byte, jasyptSaltSize)
	if _, err := rand.Read(salt); err != nil {
		return "", errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
	}

	return base64.StdEncoding.EncodeToString(append(salt, jasyptDigest(salt, password)...)), nil
}

func (h *jasyptHasher) Check(password, hash string) (bool, error) {
	raw, ok := decodeJasypt(hash)
	if !ok {
		return false, errors.Wrap(domainerrors.ErrUnsupportedHash, "jasypt: invalid digest")
	}

	salt, expected := raw[:jasyptSaltSize], raw[jasyptSaltSize:]

	return subtle.ConstantTimeCompare(jasyptDigest(salt, password), expected) == 1, nil
}

func jasyptDigest(salt []byte, password string) []byte {
	first := md5.New() //nolint:gosec
	first.Write(salt)
	first.Write([]byte(norm.NFC.String(password)))
	digest := first.Sum(nil)

	for i := 0; i < jasyptIterations-1; i++ {
		sum := md5.Sum(digest) //nolint:gosec
		digest = sum[:]
	}

	return digest
}

func decodeJasypt(hash string) ([]byte, bool) {
	raw, err := base64.StdEncoding.DecodeString(hash)
	if err != nil || len(raw) != jasyptSaltSize+md5.Size {
		return nil, false
	}

	return raw, true
}
