// Package command contains the dropmarksctl command constructors.
package command

import (
	"context"
	"errors"
	"log/slog"
	"os"

	"dropmarks/config"
	"dropmarks/internal/bootstrap"
	"dropmarks/internal/domain/lifecycle"
	logs "dropmarks/internal/infra/log"
	"dropmarks/internal/usecase"

	"github.com/spf13/cobra"
	"go.uber.org/fx"
)

// Services are the use cases the admin commands operate on.
type Services struct {
	Users    usecase.UserUsecase
	Verifier usecase.CredentialVerifier
	Logger   *slog.Logger
}

// Runner starts the application, hands its services to fn and stops it again.
type Runner func(ctx context.Context, fn func(ctx context.Context, svc *Services) error) error

// RootCommand instantiates the root command, with all sub-commands bound.
func RootCommand() *cobra.Command {
	return newRootCommand(runWithFx)
}

func newRootCommand(run Runner) *cobra.Command {
	var configFilePath string

	cmd := &cobra.Command{
		Use:          "dropmarksctl [command] [flags]",
		Short:        "Administer the dropmarks user store",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		CompletionOptions: cobra.CompletionOptions{
			HiddenDefaultCmd: true,
		},
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			if configFilePath == "" {
				return nil
			}

			return os.Setenv(config.PathEnvKey, configFilePath)
		},
	}

	cmd.PersistentFlags().StringVarP(
		&configFilePath,
		"config", "c",
		"",
		"path to the configuration file (defaults to $"+config.PathEnvKey+" or ./config/config.yaml)",
	)

	cmd.AddCommand(
		userCommand(run),
	)

	return cmd
}

// runWithFx builds the shared application graph without the HTTP delivery.
func runWithFx(ctx context.Context, fn func(ctx context.Context, svc *Services) error) (runErr error) {
	var svc Services

	app := fx.New(
		bootstrap.Core(),
		fx.NopLogger,
		// stdout carries command output.
		fx.Decorate(func(cfg *config.Config) (*slog.Logger, error) {
			return logs.NewWithWriter(cfg, os.Stderr)
		}),
		fx.Populate(&svc.Users, &svc.Verifier, &svc.Logger),
	)
	if err := app.Err(); err != nil {
		return err
	}

	startCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()
	if err := app.Start(startCtx); err != nil {
		return err
	}

	defer func() {
		stopCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), lifecycle.ShutdownTimeout)
		defer cancel()
		if err := app.Stop(stopCtx); err != nil {
			runErr = errors.Join(runErr, err)
		}
	}()

	return fn(ctx, &svc)
}
