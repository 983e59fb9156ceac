// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Secrets are resolved here so that a missing or malformed key stops the
// process before any request is served.
func (cfg *StructuredConfig) validate() error {
	var errs []error

	if _, err := ResolveEncryptionKey(cfg.App); err != nil {
		errs = append(errs, err)
	}
	if _, err := ResolveSigningSecret(cfg.App); err != nil {
		errs = append(errs, err)
	}

	if cfg.App.TokenIssuer == "" || cfg.App.TokenDuration <= 0 {
		errs = append(errs, fmt.Errorf("%w: token issuer and positive token duration are required", ErrInvalidAppConfigs))
	}
	if cfg.App.Environment != EnvDevelopment && cfg.App.Environment != EnvProduction {
		errs = append(errs, fmt.Errorf("%w: unknown environment %q", ErrInvalidAppConfigs, cfg.App.Environment))
	}

	if cfg.Storage.DB.DSN == "" {
		errs = append(errs, ErrInvalidStorageConfigs)
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 {
		errs = append(errs, ErrInvalidServerConfigs)
	}

	return errors.Join(errs...)
}

func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	return nil
}
