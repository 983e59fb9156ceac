package config

import "errors"

// ErrConfig is the class of every configuration failure. A process that hits
// it cannot serve requests and must stop at startup.
var ErrConfig = errors.New("configuration error")

// Key material errors returned by [ResolveEncryptionKey] and
// [ResolveSigningSecret]. Both wrap [ErrConfig].
var (
	// ErrMissingSecret indicates that a required secret is not configured.
	ErrMissingSecret = errors.New("missing secret")

	// ErrInvalidKeyLength indicates that the encryption key does not decode
	// to exactly 32 bytes.
	ErrInvalidKeyLength = errors.New("invalid key length")
)

// Validation errors returned by validate when required configuration groups
// are incomplete or invalid.
var (
	// ErrInvalidServerConfigs indicates invalid server settings
	// (for example, missing HTTP address or non-positive request timeout).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, empty DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (for example, unknown environment or non-positive token duration).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidAdapterConfigs indicates invalid client adapter settings
	// (for example, missing server address).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
)
