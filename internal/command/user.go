package command

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"

	"dropmarks/internal/domain/entity"
	"dropmarks/internal/errors"
	"dropmarks/internal/usecase"

	"github.com/spf13/cobra"
)

// ErrCredentialsRejected is returned by "user verify" for a non-matching password or unknown user.
var ErrCredentialsRejected = errors.New("credentials rejected")

func userCommand(run Runner) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "User commands",
	}
	cmd.AddCommand(
		userCreateCommand(run),
		userDeleteCommand(run),
		userPasswdCommand(run),
		userVerifyCommand(run),
	)

	return cmd
}

func userCreateCommand(run Runner) *cobra.Command {
	return &cobra.Command{
		Use:   "create NAME",
		Short: "Create user",
		Long: "Creates a user entry for the provided username and password. Passwords may be\n" +
			"provided via stdin or through the interactive prompt.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			passwd, err := prompt(cmd, "password: ", true)
			if err != nil {
				return err
			}

			return run(cmd.Context(), func(ctx context.Context, svc *Services) error {
				user, err := svc.Users.CreateUser(ctx, &usecase.CreateUserInput{
					Username: name,
					Password: string(passwd),
				})
				if err != nil {
					return err
				}

				svc.Logger.InfoContext(ctx, "created user",
					slog.String("name", user.Username),
					slog.String("id", user.ID.String()),
				)

				return nil
			})
		},
	}
}

func userDeleteCommand(run Runner) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "delete NAME",
		Short: "Delete user",
		Long:  "Permanently deletes the user. This operation is irreversible.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]

			return run(cmd.Context(), func(ctx context.Context, svc *Services) error {
				logger := svc.Logger.With(slog.String("name", name))
				if _, err := svc.Users.GetUser(ctx, name); err != nil {
					return err
				}

				if !yes {
					resp, err := prompt(cmd, "Are you sure you want to delete this user? [y|N] ", false)
					if err != nil || !bytes.Equal(resp, []byte{'y'}) {
						logger.InfoContext(ctx, "aborted user deletion")

						return err
					}
				}

				if err := svc.Users.DeleteUser(ctx, name); err != nil {
					return err
				}
				logger.InfoContext(ctx, "user deleted")

				return nil
			})
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "skip the confirmation prompt")

	return cmd
}

func userPasswdCommand(run Runner) *cobra.Command {
	return &cobra.Command{
		Use:   "passwd NAME",
		Short: "Change user password",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			passwd, err := prompt(cmd, "new password: ", true)
			if err != nil {
				return err
			}

			return run(cmd.Context(), func(ctx context.Context, svc *Services) error {
				if err := svc.Users.ChangePassword(ctx, &usecase.ChangePasswordInput{
					Username: name,
					Password: string(passwd),
				}); err != nil {
					return err
				}

				svc.Logger.InfoContext(ctx, "password changed", slog.String("name", name))

				return nil
			})
		},
	}
}

func userVerifyCommand(run Runner) *cobra.Command {
	return &cobra.Command{
		Use:   "verify NAME",
		Short: "Check a password against the user store",
		Long: "Runs the same verification as the HTTP basic auth middleware and prints the\n" +
			"outcome. Exits non-zero unless the credentials are authenticated.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			passwd, err := prompt(cmd, "password: ", true)
			if err != nil {
				return err
			}

			return run(cmd.Context(), func(ctx context.Context, svc *Services) error {
				result, err := svc.Verifier.Verify(ctx, entity.Credentials{
					Username: name,
					Password: string(passwd),
				})
				if err != nil {
					fmt.Fprintln(cmd.OutOrStdout(), entity.AuthOutcomeUnavailable)

					return err
				}

				fmt.Fprintln(cmd.OutOrStdout(), result.Outcome)
				if !result.Authenticated() {
					return ErrCredentialsRejected
				}

				return nil
			})
		},
	}
}
