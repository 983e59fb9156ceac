package client

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-task-keeper/internal/adapter"
	"github.com/MKhiriev/go-task-keeper/models"
)

func registerCommand(env *commandEnv) *cobra.Command {
	var request models.RegisterRequest

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create an account and log in",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) (err error) {
			if request.Name == "" {
				if request.Name, err = env.prompt.Line("Name: "); err != nil {
					return err
				}
			}
			if request.Email == "" {
				if request.Email, err = env.prompt.Line("Email: "); err != nil {
					return err
				}
			}
			if request.Password, err = env.prompt.Secret("Password: "); err != nil {
				return err
			}
			request.Normalize()

			user, err := env.api.Register(cmd.Context(), request)
			if err != nil {
				return err
			}
			if err = env.saveSession(); err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Registered and logged in as %s\n", userLabel(user))
			return err
		},
	}

	cmd.Flags().StringVar(&request.Name, "name", "", "display name")
	cmd.Flags().StringVar(&request.Email, "email", "", "account email")

	return cmd
}

func loginCommand(env *commandEnv) *cobra.Command {
	var request models.LoginRequest

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in to an existing account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) (err error) {
			if request.Email == "" {
				if request.Email, err = env.prompt.Line("Email: "); err != nil {
					return err
				}
			}
			if request.Password, err = env.prompt.Secret("Password: "); err != nil {
				return err
			}
			request.Normalize()

			user, err := env.api.Login(cmd.Context(), request)
			if err != nil {
				return err
			}
			if err = env.saveSession(); err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Logged in as %s\n", userLabel(user))
			return err
		},
	}

	cmd.Flags().StringVar(&request.Email, "email", "", "account email")

	return cmd
}

func logoutCommand(env *commandEnv) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "End the current session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			// an expired session is as good as a closed one
			if err := env.api.Logout(cmd.Context()); err != nil && !errors.Is(err, adapter.ErrUnauthorized) {
				return err
			}
			if err := env.store.Clear(); err != nil {
				return err
			}

			_, err := fmt.Fprintln(cmd.OutOrStdout(), "Logged out")
			return err
		},
	}
}

func meCommand(env *commandEnv) *cobra.Command {
	return &cobra.Command{
		Use:   "me",
		Short: "Show the logged-in user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			user, err := env.api.Me(cmd.Context())
			if err != nil {
				return err
			}
			return renderUser(cmd.OutOrStdout(), user)
		},
	}
}

func healthCommand(env *commandEnv) *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check that the server is up",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := env.api.Health(cmd.Context()); err != nil {
				return err
			}
			_, err := fmt.Fprintln(cmd.OutOrStdout(), "Server is healthy")
			return err
		},
	}
}

// versionCommand prints the client build info and, when reachable, the
// server version. An unreachable server is reported but is not an error.
func (a *App) versionCommand(env *commandEnv) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show client and server versions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			if _, err := fmt.Fprintln(out, a.buildInfo.String()); err != nil {
				return err
			}

			version, err := env.api.ServerVersion(cmd.Context())
			if err != nil {
				env.log.Warn().Err(err).Msg("server version unavailable")
				version = models.BuildInfoUnknown
			}

			_, err = fmt.Fprintf(out, "Server version: %s\n", version)
			return err
		},
	}
}

func userLabel(user models.AuthenticatedUser) string {
	return fmt.Sprintf("%s <%s>", user.Name, user.Email)
}
