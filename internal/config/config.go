// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// Environment names recognised in [App.Environment].
const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

// Default values applied before any configuration source is read.
const (
	DefaultHTTPAddress    = "localhost:8080"
	DefaultTokenIssuer    = "go-task-keeper"
	DefaultTokenDuration  = 24 * time.Hour
	DefaultRequestTimeout = 30 * time.Second
	DefaultClientURL      = "http://localhost:3000"
)

// StructuredConfig is the top-level configuration container for the
// go-task-keeper server. It aggregates all sub-configurations and is
// populated by merging defaults, environment variables, command-line flags,
// and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as cryptographic keys,
	// token parameters, and the deployment environment.
	App App `envPrefix:"APP_"`

	// Storage holds configuration for the persistence backend.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address and timeout settings for the HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Storage groups the configuration for all storage backends used by the
// application.
type Storage struct {
	// DB holds the relational database connection settings.
	DB DB `envPrefix:"DB_"`
}

// App holds application-level configuration values that control security,
// token lifecycle, and deployment mode.
type App struct {
	// EncryptionKey is the AES-256 key protecting task descriptions at rest.
	// It must decode to exactly 32 bytes; see [ResolveEncryptionKey].
	// Env: APP_ENCRYPTION_KEY
	EncryptionKey string `env:"ENCRYPTION_KEY"`

	// TokenSignKey is the secret key used to sign and verify session tokens.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim embedded in every issued session token.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration specifies how long a session token (and its cookie)
	// remains valid after issuance.
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// Environment is the deployment mode, "development" or "production".
	// Production switches the session cookie to SameSite=None; Secure.
	// Env: APP_ENVIRONMENT
	Environment string `env:"ENVIRONMENT"`

	// ClientURL is the browser origin allowed to call the API with
	// credentials (CORS).
	// Env: APP_CLIENT_URL
	ClientURL string `env:"CLIENT_URL"`

	// Version is the semantic version string of the running application.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// IsProduction reports whether the application runs in production mode.
func (a App) IsProduction() bool {
	return a.Environment == EnvProduction
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// DB holds connection settings for the relational database backend.
type DB struct {
	// DSN selects and configures the database. A "postgres://" or
	// "postgresql://" DSN uses PostgreSQL through pgx; a "sqlite://" or
	// "file:" DSN uses SQLite.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Redacted returns a copy of cfg with every secret replaced by a fixed
// marker, suitable for logging.
func (cfg StructuredConfig) Redacted() StructuredConfig {
	const mask = "[REDACTED]"
	if cfg.App.EncryptionKey != "" {
		cfg.App.EncryptionKey = mask
	}
	if cfg.App.TokenSignKey != "" {
		cfg.App.TokenSignKey = mask
	}
	if cfg.Storage.DB.DSN != "" {
		cfg.Storage.DB.DSN = mask
	}
	return cfg
}

// GetStructuredConfig loads, merges, and validates the server configuration
// from all available sources in the following priority order
// (later sources override non-zero fields of earlier ones):
//  1. Built-in defaults
//  2. Environment variables
//  3. Command-line flags
//  4. JSON file (path resolved from sources 2 and 3)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(args).
		withJSON().
		build()
}
