// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
	"strings"

	"github.com/MKhiriev/go-task-keeper/internal/config"
	"github.com/MKhiriev/go-task-keeper/internal/logger"
)

const envelopeSeparator = ":"

// fieldCipher is the AES-256-CBC implementation of [FieldCipher].
type fieldCipher struct {
	block  cipher.Block
	random io.Reader
	logger *logger.Logger
}

// NewFieldCipher constructs a [FieldCipher] for the given key.
//
// Returns [config.ErrInvalidKeyLength] (wrapped in [config.ErrConfig]) if key
// is not exactly 32 bytes.
func NewFieldCipher(key []byte, log *logger.Logger) (FieldCipher, error) {
	if len(key) != config.EncryptionKeySize {
		return nil, fmt.Errorf("%w: field cipher key is %d bytes: %w", config.ErrConfig, len(key), config.ErrInvalidKeyLength)
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", config.ErrConfig, err)
	}

	return &fieldCipher{
		block:  block,
		random: rand.Reader,
		logger: log,
	}, nil
}

// Encrypt implements [FieldCipher]. The plaintext is PKCS#7 padded and
// encrypted in CBC mode under a fresh 16-byte IV.
func (c *fieldCipher) Encrypt(plaintext string) (string, error) {
	iv := make([]byte, aes.BlockSize)
	if _, err := io.ReadFull(c.random, iv); err != nil {
		return "", fmt.Errorf("%w: %w: %w", ErrCipher, ErrEncryptionFailed, err)
	}

	padded := pkcs7Pad([]byte(plaintext), aes.BlockSize)
	ciphertext := make([]byte, len(padded))
	cipher.NewCBCEncrypter(c.block, iv).CryptBlocks(ciphertext, padded)

	return hex.EncodeToString(iv) + envelopeSeparator + hex.EncodeToString(ciphertext), nil
}

// Decrypt implements [FieldCipher].
func (c *fieldCipher) Decrypt(envelope string) (string, error) {
	if envelope == "" {
		return "", nil
	}

	ivHex, ctHex, found := strings.Cut(envelope, envelopeSeparator)
	if !found || ivHex == "" || ctHex == "" {
		c.logger.Warn().Msg("value is not an encrypted envelope, returning it as is")
		return envelope, nil
	}

	iv, err := hex.DecodeString(ivHex)
	if err != nil {
		return "", fmt.Errorf("%w: %w: iv: %w", ErrCipher, ErrDecryptionFailed, err)
	}
	if len(iv) != aes.BlockSize {
		return "", fmt.Errorf("%w: %w: iv is %d bytes", ErrCipher, ErrDecryptionFailed, len(iv))
	}

	ciphertext, err := hex.DecodeString(ctHex)
	if err != nil {
		return "", fmt.Errorf("%w: %w: ciphertext: %w", ErrCipher, ErrDecryptionFailed, err)
	}
	if len(ciphertext) == 0 || len(ciphertext)%aes.BlockSize != 0 {
		return "", fmt.Errorf("%w: %w: ciphertext is %d bytes", ErrCipher, ErrDecryptionFailed, len(ciphertext))
	}

	plaintext := make([]byte, len(ciphertext))
	cipher.NewCBCDecrypter(c.block, iv).CryptBlocks(plaintext, ciphertext)

	plaintext, err = pkcs7Unpad(plaintext, aes.BlockSize)
	if err != nil {
		return "", fmt.Errorf("%w: %w: %w", ErrCipher, ErrDecryptionFailed, err)
	}

	return string(plaintext), nil
}

func pkcs7Pad(data []byte, blockSize int) []byte {
	n := blockSize - len(data)%blockSize
	return append(data, bytes.Repeat([]byte{byte(n)}, n)...)
}

func pkcs7Unpad(data []byte, blockSize int) ([]byte, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("empty input")
	}

	n := int(data[len(data)-1])
	if n == 0 || n > blockSize || n > len(data) {
		return nil, fmt.Errorf("invalid padding")
	}
	for _, b := range data[len(data)-n:] {
		if int(b) != n {
			return nil, fmt.Errorf("invalid padding")
		}
	}

	return data[:len(data)-n], nil
}
