package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/crypto_mock.go -package=mock

// FieldCipher protects a single text field at rest.
//
// The envelope format is hex(iv) + ":" + hex(ciphertext) where iv is 16 fresh
// random bytes per call, so encrypting the same plaintext twice yields
// different envelopes. The cipher is safe for concurrent use.
type FieldCipher interface {
	// Encrypt returns the envelope for plaintext. Empty input yields an
	// envelope too.
	Encrypt(plaintext string) (string, error)

	// Decrypt returns the plaintext held by envelope.
	//
	// An empty envelope decrypts to "". A value without the iv/ciphertext
	// separator (or with an empty side) is treated as legacy plaintext and is
	// returned unchanged. Any other malformed input returns
	// [ErrDecryptionFailed].
	Decrypt(envelope string) (string, error)
}

// PasswordHasher turns passwords into one-way digests and checks them.
type PasswordHasher interface {
	// Hash returns a salted digest of password.
	Hash(password string) (string, error)

	// Verify reports whether password matches hash. A malformed hash never
	// matches.
	Verify(password, hash string) bool

	// VerifyDummy runs a comparison against a fixed digest and always reports
	// false. It is used when no account exists so that the response time
	// matches a real comparison.
	VerifyDummy(password string) bool
}
