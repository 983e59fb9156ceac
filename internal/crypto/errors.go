package crypto

import "errors"

// ErrCipher is the class of every field cipher failure.
var ErrCipher = errors.New("cipher error")

var (
	// ErrDecryptionFailed indicates a malformed envelope: bad hex, wrong IV
	// length, ciphertext that is not whole blocks, or invalid padding.
	ErrDecryptionFailed = errors.New("decryption failed")

	// ErrEncryptionFailed indicates that the random IV could not be read.
	ErrEncryptionFailed = errors.New("encryption failed")
)
