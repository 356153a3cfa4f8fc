package middleware

import (
	"log/slog"
	"strconv"
	"time"

	"dropmarks/config"
	deliverycontext "dropmarks/internal/delivery/context"
	"dropmarks/internal/domain/entity"
	"dropmarks/internal/domain/service"
	"dropmarks/internal/usecase"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/fx"
)

type BasicAuthParams struct {
	fx.In

	Verifier  usecase.CredentialVerifier
	Publisher service.AuthEventPublisher
	Config    *config.Config
	Logger    *slog.Logger
}

// BasicAuthMiddleware authenticates requests with HTTP basic credentials
// checked against the user store.
type BasicAuthMiddleware struct {
	verifier  usecase.CredentialVerifier
	publisher service.AuthEventPublisher
	realm     string
	logger    *slog.Logger
	now       func() time.Time
}

func NewBasicAuthMiddleware(params BasicAuthParams) *BasicAuthMiddleware {
	return &BasicAuthMiddleware{
		verifier:  params.Verifier,
		publisher: params.Publisher,
		realm:     params.Config.Auth.Realm,
		logger:    params.Logger,
		now:       time.Now,
	}
}

// Authenticate rejects requests without valid credentials with 401 and a
// Basic challenge. The authenticated user is stored as the request principal.
func (m *BasicAuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return echomiddleware.BasicAuthWithConfig(echomiddleware.BasicAuthConfig{
		Realm:     m.realm,
		Validator: m.validate,
	})(next)
}

func (m *BasicAuthMiddleware) validate(username, password string, c echo.Context) (bool, error) {
	ctx := c.Request().Context()

	result, err := m.verifier.Verify(ctx, entity.Credentials{Username: username, Password: password})
	if err != nil {
		m.publish(c, username, entity.AuthOutcomeUnavailable)
		c.Response().Header().Set(echo.HeaderWWWAuthenticate, "Basic realm="+strconv.Quote(m.realm))

		return false, err
	}

	m.publish(c, username, result.Outcome)

	if !result.Authenticated() {
		return false, nil
	}

	deliverycontext.SetPrincipal(c, result.User)

	return true, nil
}

func (m *BasicAuthMiddleware) publish(c echo.Context, username string, outcome entity.AuthOutcome) {
	ctx := c.Request().Context()
	event := &entity.AuthEvent{
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		Username:   username,
		Outcome:    outcome,
		RemoteIP:   c.RealIP(),
		OccurredAt: m.now().UTC(),
	}

	if err := m.publisher.PublishAuthEvent(ctx, event); err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, m.logger).WarnContext(ctx, "Failed to publish auth event",
			slog.String("outcome", string(outcome)),
			slog.Any("error", err),
		)
	}
}
