package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "dropmarks/internal/delivery/context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func serveWithRequestID(t *testing.T, header string) (string, string, *slog.Logger) {
	t.Helper()

	e := echo.New()
	m := NewRequestIDMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))

	var fromContext string
	var logger *slog.Logger
	h := m.Process(func(c echo.Context) error {
		fromContext = deliverycontext.GetRequestIDFromContext(c.Request().Context())
		logger = deliverycontext.GetLogger(c.Request().Context())
		assert.Equal(t, fromContext, deliverycontext.GetRequestID(c))

		return c.NoContent(http.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if header != "" {
		req.Header.Set(deliverycontext.HeaderXRequestID, header)
	}
	rec := httptest.NewRecorder()
	require.NoError(t, h(e.NewContext(req, rec)))

	assert.Equal(t, fromContext, rec.Header().Get(deliverycontext.HeaderXRequestID))

	return rec.Header().Get(deliverycontext.HeaderXRequestID), fromContext, logger
}

func TestRequestIDKeepsClientValue(t *testing.T) {
	id, _, logger := serveWithRequestID(t, "abc-123")

	assert.Equal(t, "abc-123", id)
	assert.NotNil(t, logger)
}

func TestRequestIDGeneratedWhenMissing(t *testing.T) {
	id, _, _ := serveWithRequestID(t, "")

	_, err := uuid.Parse(id)
	assert.NoError(t, err)
}

func TestRequestIDReplacesUnsafeValue(t *testing.T) {
	id, _, _ := serveWithRequestID(t, "bad value\nwith newline")

	_, err := uuid.Parse(id)
	assert.NoError(t, err)
}
