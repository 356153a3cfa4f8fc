package pubsub

import (
	"context"
	"log/slog"

	"dropmarks/config"
	"dropmarks/internal/domain/entity"
	"dropmarks/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// noopPublisher is used when no publisher is configured
type noopPublisher struct {
	logger *slog.Logger
}

func NewNoopPublisher(logger *slog.Logger) service.AuthEventPublisher {
	return &noopPublisher{logger: logger}
}

func (p *noopPublisher) PublishAuthEvent(_ context.Context, event *entity.AuthEvent) error {
	p.logger.Debug("[NoopPubSub] Event publishing disabled, skipping",
		slog.String("outcome", string(event.Outcome)),
	)

	return nil
}

func (p *noopPublisher) Close() error {
	return nil
}

// PublisherParams holds dependencies for AuthEventPublisher, injected by Fx
type PublisherParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewAuthEventPublisher picks the publisher named by authEvents.provider.
func NewAuthEventPublisher(params PublisherParams) (service.AuthEventPublisher, error) {
	cfg := params.Config.AuthEvents
	logger := params.Logger

	if cfg == nil || cfg.Provider == "" {
		logger.Info("Auth events not configured, using no-op publisher")

		return NewNoopPublisher(logger), nil
	}

	var publisher service.AuthEventPublisher

	switch cfg.Provider {
	case config.PublisherLocal:
		if cfg.LocalEndpoint == "" {
			return nil, errors.New("local endpoint is required for local provider")
		}
		logger.Info("Using local HTTP publisher for auth events",
			slog.String("endpoint", cfg.LocalEndpoint),
		)

		publisher = NewLocalHTTPPublisher(cfg.LocalEndpoint, logger)

	case config.PublisherGoogle:
		if cfg.ProjectID == "" || cfg.TopicID == "" {
			return nil, errors.New("project ID and topic ID are required for google provider")
		}

		var err error
		publisher, err = NewGooglePubSubPublisher(params.Ctx, cfg.ProjectID, cfg.TopicID, logger)
		if err != nil {
			return nil, err
		}

	default:
		return nil, errors.Errorf("unknown auth event provider: %s", cfg.Provider)
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			logger.Info("Closing AuthEventPublisher")

			return publisher.Close()
		},
	})

	return publisher, nil
}

// messageAttributes are set on every transport for filtering and tracing.
func messageAttributes(event *entity.AuthEvent) map[string]string {
	attributes := map[string]string{
		"outcome":  string(event.Outcome),
		"username": event.Username,
	}
	if event.RequestID != "" {
		attributes["request_id"] = event.RequestID
	}

	return attributes
}
