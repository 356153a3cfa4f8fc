package errors

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrapKeepsIdentity(t *testing.T) {
	wrapped := Wrap(io.EOF, "read header")

	assert.True(t, Is(wrapped, io.EOF))
	assert.Equal(t, io.EOF, Cause(wrapped))
	assert.Equal(t, "read header: EOF", wrapped.Error())
	assert.Nil(t, Wrap(nil, "ignored"))
}

func TestFromPanic(t *testing.T) {
	t.Run("error value", func(t *testing.T) {
		err := FromPanic(io.ErrUnexpectedEOF)
		assert.True(t, Is(err, io.ErrUnexpectedEOF))
		assert.Contains(t, err.Error(), "panic")
	})

	t.Run("non error value", func(t *testing.T) {
		err := FromPanic("boom")
		assert.EqualError(t, err, "panic: boom")
	})
}
