package main

import (
	"context"
	"log/slog"

	"dropmarks/internal/bootstrap"
	"dropmarks/internal/delivery"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Shutdowner

	Logger     *slog.Logger
	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		bootstrap.Core(),
		bootstrap.HTTP(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				params.Logger.Error("Failed to start server", slog.Any("error", err))
				if err := params.Shutdown(fx.ExitCode(1)); err != nil {
					params.Logger.Error("Failed to shut down", slog.Any("error", err))
				}
			}
		}()
	}
}
