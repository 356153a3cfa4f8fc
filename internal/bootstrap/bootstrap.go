// Package bootstrap holds the fx modules shared by the dropmarks binaries.
package bootstrap

import (
	"context"

	"dropmarks/config"
	"dropmarks/internal/delivery/http"
	"dropmarks/internal/delivery/http/middleware"
	"dropmarks/internal/delivery/http/router/handler"
	"dropmarks/internal/domain/service"
	"dropmarks/internal/infra/auth"
	logs "dropmarks/internal/infra/log"
	"dropmarks/internal/infra/persistence/postgres"
	"dropmarks/internal/infra/pubsub"
	"dropmarks/internal/usecase/impl"

	"go.uber.org/fx"
)

// Core provides everything needed to verify and administer credentials.
func Core() fx.Option {
	return fx.Options(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
	)
}

// HTTP provides the echo delivery in the "deliveries" group.
func HTTP() fx.Option {
	return fx.Options(
		injectMiddleware(),
		injectHandler(),
		injectDelivery(),
	)
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Provide(
		postgres.NewSessionManager,
	)
}

func injectService() fx.Option {
	return fx.Provide(
		fx.Annotate(
			auth.NewPasswordHasher,
			fx.As(new(service.PasswordHasher)),
			fx.As(new(service.HashComparator)),
		),
		pubsub.NewAuthEventPublisher,
	)
}

func injectUsecase() fx.Option {
	return fx.Provide(
		impl.NewCredentialVerifier,
		impl.NewUserService,
	)
}

func injectMiddleware() fx.Option {
	return fx.Provide(
		middleware.NewBasicAuthMiddleware,
	)
}

func injectHandler() fx.Option {
	return fx.Provide(
		handler.NewPrincipalHandler,
	)
}

func injectDelivery() fx.Option {
	return fx.Provide(
		fx.Annotate(
			http.NewServer,
			fx.ResultTags(`group:"deliveries"`),
		),
	)
}
