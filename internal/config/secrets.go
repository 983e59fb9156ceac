// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/base64"
	"encoding/hex"
	"fmt"
)

// EncryptionKeySize is the AES-256 key size in bytes.
const EncryptionKeySize = 32

// ResolveEncryptionKey returns the task description encryption key from cfg.
//
// The configured value is accepted in any of the following forms, tried in
// order:
//   - a raw 32-byte string;
//   - 64 hexadecimal characters;
//   - standard base64 of 32 bytes.
//
// Returns [ErrMissingSecret] if the value is empty and [ErrInvalidKeyLength]
// if it does not decode to exactly [EncryptionKeySize] bytes. Both are wrapped
// in [ErrConfig].
func ResolveEncryptionKey(cfg App) ([]byte, error) {
	raw := cfg.EncryptionKey
	if raw == "" {
		return nil, fmt.Errorf("%w: encryption key: %w", ErrConfig, ErrMissingSecret)
	}

	if len(raw) == EncryptionKeySize {
		return []byte(raw), nil
	}

	if len(raw) == hex.EncodedLen(EncryptionKeySize) {
		if key, err := hex.DecodeString(raw); err == nil {
			return key, nil
		}
	}

	if key, err := base64.StdEncoding.DecodeString(raw); err == nil && len(key) == EncryptionKeySize {
		return key, nil
	}

	return nil, fmt.Errorf("%w: encryption key: %w", ErrConfig, ErrInvalidKeyLength)
}

// ResolveSigningSecret returns the session token signing secret from cfg.
//
// Returns [ErrMissingSecret] wrapped in [ErrConfig] if the value is empty.
func ResolveSigningSecret(cfg App) ([]byte, error) {
	if cfg.TokenSignKey == "" {
		return nil, fmt.Errorf("%w: token sign key: %w", ErrConfig, ErrMissingSecret)
	}

	return []byte(cfg.TokenSignKey), nil
}
