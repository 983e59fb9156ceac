package client

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-task-keeper/internal/adapter"
	"github.com/MKhiriev/go-task-keeper/internal/config"
	"github.com/MKhiriev/go-task-keeper/internal/logger"
)

// commandEnv is the per-invocation state shared by all commands. It is filled
// in by the root command before any subcommand runs.
type commandEnv struct {
	api    adapter.ServerAdapter
	store  *SessionStore
	server string
	log    *logger.Logger
	prompt *prompter
}

// saveSession persists the cookie the server issued on register or login.
func (e *commandEnv) saveSession() error {
	cookie := e.api.SessionCookie()
	if cookie == nil {
		return fmt.Errorf("%w: no session cookie in response", adapter.ErrInvalidResponse)
	}
	return e.store.Save(e.server, cookie)
}

func (a *App) rootCommand() (*cobra.Command, *commandEnv) {
	var (
		env       = &commandEnv{log: logger.Nop()}
		overrides config.ClientConfig
		logPath   string
	)

	cmd := &cobra.Command{
		Use:          "task-keeper [command] [flags]",
		Short:        "Command-line client for the go-task-keeper API",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		// errors are printed once by main
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			HiddenDefaultCmd: true,
		},
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.GetClientConfig(overrides)
			if err != nil {
				return fmt.Errorf("error getting configs: %w", err)
			}

			env.log = logger.NewClientLogger(clientRole, logPath)
			env.log.Debug().
				Str("server", cfg.Adapter.HTTPAddress).
				Dur("timeout", cfg.Adapter.RequestTimeout).
				Str("command", cmd.CommandPath()).
				Msg("client started")
			cmd.SetContext(env.log.WithContext(cmd.Context()))

			if env.api, err = a.newAdapter(cfg.Adapter, env.log); err != nil {
				return fmt.Errorf("error creating server adapter: %w", err)
			}

			sessionPath := cfg.Adapter.SessionFile
			if sessionPath == "" {
				sessionPath = a.sessionPath
			}
			env.store = NewSessionStore(sessionPath)
			env.server = cfg.Adapter.HTTPAddress

			cookie, err := env.store.Load(env.server)
			if err != nil {
				env.log.Warn().Err(err).Msg("ignoring unreadable session file")
			}
			if cookie != nil {
				env.api.SetSessionCookie(cookie)
			}

			env.prompt = newPrompter(cmd.InOrStdin(), cmd.ErrOrStderr())
			return nil
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVarP(&overrides.Adapter.HTTPAddress, "server", "s", "",
		"base URL of the server (default "+config.DefaultClientServerAddress+")")
	flags.DurationVar(&overrides.Adapter.RequestTimeout, "timeout", 0,
		fmt.Sprintf("request timeout (default %s)", config.DefaultClientRequestTimeout))
	flags.StringVar(&overrides.Adapter.SessionFile, "session-file", "",
		"file the session is kept in between runs (default "+a.sessionPath+")")
	flags.StringVar(&logPath, "log-file", a.logPath, "file client logs are written to, empty to disable")

	cmd.AddCommand(
		registerCommand(env),
		loginCommand(env),
		logoutCommand(env),
		meCommand(env),
		healthCommand(env),
		a.versionCommand(env),
		taskCommand(env),
	)

	return cmd, env
}
