package auth

import (
	"crypto/md5" //nolint:gosec
	"encoding/base64"
	"testing"

	domainerrors "dropmarks/internal/domain/errors"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJasyptHasher_RoundTrip(t *testing.T) {
	hasher := NewJasyptHasher()

	hash, err := hasher.Hash("secret123")
	require.NoError(t, err)

	raw, err := base64.StdEncoding.DecodeString(hash)
	require.NoError(t, err)
	assert.Len(t, raw, jasyptSaltSize+md5.Size)

	ok, err := hasher.Check("secret123", hash)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = hasher.Check("wrong", hash)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestJasyptDigest_IteratesOverSaltedInput(t *testing.T) {
	salt := []byte("12345678")

	sum := md5.Sum(append(append([]byte{}, salt...), "secret123"...)) //nolint:gosec
	want := sum[:]
	for i := 1; i < jasyptIterations; i++ {
		next := md5.Sum(want) //nolint:gosec
		want = next[:]
	}

	assert.Equal(t, want, jasyptDigest(salt, "secret123"))

	stored := base64.StdEncoding.EncodeToString(append(salt, want...))
	ok, err := NewJasyptHasher().Check("secret123", stored)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestJasyptHasher_InvalidDigest(t *testing.T) {
	for _, hash := range []string{"", "not-base64!", base64.StdEncoding.EncodeToString([]byte("too short"))} {
		ok, err := NewJasyptHasher().Check("secret123", hash)
		assert.False(t, ok)
		assert.True(t, errors.Is(err, domainerrors.ErrUnsupportedHash), hash)
	}
}

// Digests below use the fixed salt 3a9107c45e22b86f with Jasypt's
// BasicPasswordEncryptor settings (MD5, 1000 iterations, salt prepended).
func TestJasyptHasher_FixedDigests(t *testing.T) {
	tests := []struct {
		name     string
		password string
		stored   string
		want     bool
	}{
		{name: "ascii", password: "secret123", stored: "OpEHxF4iuG8WdveO8/9YXPPID2kAXiw5", want: true},
		{name: "composed", password: "caf\u00e9", stored: "OpEHxF4iuG+QvyBJLKeQljNPxHh1rScf", want: true},
		{name: "decomposed", password: "cafe\u0301", stored: "OpEHxF4iuG+QvyBJLKeQljNPxHh1rScf", want: true},
		{name: "wrong", password: "cafe", stored: "OpEHxF4iuG+QvyBJLKeQljNPxHh1rScf", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, err := NewJasyptHasher().Check(tt.password, tt.stored)
			require.NoError(t, err)
			assert.Equal(t, tt.want, ok)
		})
	}
}

func TestJasyptHasher_NormalizesBeforeHashing(t *testing.T) {
	hasher := NewJasyptHasher()

	hash, err := hasher.Hash("caf\u00e9")
	require.NoError(t, err)

	ok, err := hasher.Check("cafe\u0301", hash)
	require.NoError(t, err)
	assert.True(t, ok)
}
