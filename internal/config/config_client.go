package config

import (
	"fmt"
	"time"

	"dario.cat/mergo"
)

// Defaults for the command-line API client.
const (
	DefaultClientServerAddress  = "http://localhost:8080"
	DefaultClientRequestTimeout = 10 * time.Second
)

// ClientConfig is the configuration of the command-line API client.
type ClientConfig struct {
	// Adapter holds the settings of the HTTP transport to the server.
	Adapter ClientAdapter `envPrefix:"ADAPTER_"`
}

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the base URL of the server (e.g. "http://localhost:8080").
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the default timeout for outbound client requests.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// SessionFile is where the session cookie is kept between invocations.
	// Empty means the default location under the XDG state directory.
	// Env: ADAPTER_SESSION_FILE
	SessionFile string `env:"SESSION_FILE"`
}

// GetClientConfig loads the client configuration from defaults and the
// environment, then applies overrides (typically command-line flags).
// Non-zero fields of overrides win.
func GetClientConfig(overrides ClientConfig) (*ClientConfig, error) {
	cfg := &ClientConfig{
		Adapter: ClientAdapter{
			HTTPAddress:    DefaultClientServerAddress,
			RequestTimeout: DefaultClientRequestTimeout,
		},
	}

	envCfg := &ClientConfig{}
	if err := parseEnv(envCfg); err != nil {
		return nil, err
	}

	for _, src := range []*ClientConfig{envCfg, &overrides} {
		if err := mergo.Merge(cfg, src, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("error merging client configs: %w", err)
		}
	}

	return cfg, cfg.validate()
}
