package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"dropmarks/config"
	deliverycontext "dropmarks/internal/delivery/context"
	"dropmarks/internal/delivery/http/response"
	domainerrors "dropmarks/internal/domain/errors"
	"dropmarks/internal/errors"

	"github.com/labstack/echo/v4"
)

// ErrorMiddleware error handling middleware
type ErrorMiddleware struct {
	logger *slog.Logger
	realm  string
	debug  bool
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger, cfg *config.Config) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
		realm:  cfg.Auth.Realm,
		debug:  cfg.Env.Debug,
	}
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	if appErr, ok := domainerrors.AsAppError(err); ok {
		m.challenge(c, appErr.HTTPCode())
		m.write(c, appErr.HTTPCode(), response.Response{
			Success: false,
			Code:    appErr.HTTPCode(),
			Message: appErr.Message(),
			Error: &response.ErrorInfo{
				Code:    appErr.ErrorCode(),
				Details: appErr.Details(),
			},
		})

		return
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		message := httpMessage(httpErr)
		m.challenge(c, httpErr.Code)
		m.write(c, httpErr.Code, response.Response{
			Success: false,
			Code:    httpErr.Code,
			Message: message,
			Error: &response.ErrorInfo{
				Code:    httpErrorCode(httpErr.Code),
				Details: message,
			},
		})

		return
	}

	ctx := c.Request().Context()
	deliverycontext.GetLoggerOrDefault(ctx, m.logger).ErrorContext(ctx, "Unhandled error",
		slog.Any("error", err),
		slog.String("path", c.Request().URL.Path),
		slog.String("method", c.Request().Method),
	)

	details := ""
	if m.debug {
		details = err.Error()
	}

	m.write(c, http.StatusInternalServerError, response.Response{
		Success: false,
		Code:    http.StatusInternalServerError,
		Message: "Internal server error",
		Error: &response.ErrorInfo{
			Code:    domainerrors.ErrInternalError.ErrorCode(),
			Details: details,
		},
	})
}

// challenge makes sure every 401 carries a Basic challenge.
func (m *ErrorMiddleware) challenge(c echo.Context, status int) {
	if status != http.StatusUnauthorized {
		return
	}

	header := c.Response().Header()
	if header.Get(echo.HeaderWWWAuthenticate) == "" {
		header.Set(echo.HeaderWWWAuthenticate, "Basic realm="+strconv.Quote(m.realm))
	}
}

func (m *ErrorMiddleware) write(c echo.Context, status int, body response.Response) {
	var err error
	if c.Request().Method == http.MethodHead {
		err = c.NoContent(status)
	} else {
		err = c.JSON(status, body)
	}
	if err != nil {
		m.logger.Error("Failed to write error response", slog.Any("error", err))
	}
}

func httpMessage(httpErr *echo.HTTPError) string {
	if message, ok := httpErr.Message.(string); ok {
		return message
	}
	if httpErr.Message == nil {
		return http.StatusText(httpErr.Code)
	}

	return fmt.Sprint(httpErr.Message)
}

func httpErrorCode(status int) string {
	switch status {
	case http.StatusUnauthorized:
		return domainerrors.ErrInvalidCredentials.ErrorCode()
	case http.StatusNotFound:
		return domainerrors.ErrNotFound.ErrorCode()
	default:
		return "HTTP_ERROR"
	}
}
