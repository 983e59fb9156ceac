package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"encoding/hex"
	"errors"
	"strings"
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-task-keeper/internal/config"
	"github.com/MKhiriev/go-task-keeper/internal/logger"
)

var testKey = []byte("0123456789abcdef0123456789abcdef")

func newTestCipher(t *testing.T) FieldCipher {
	t.Helper()
	c, err := NewFieldCipher(testKey, logger.Nop())
	require.NoError(t, err)
	return c
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("no entropy") }

func TestNewFieldCipher_KeyLength(t *testing.T) {
	for _, n := range []int{0, 16, 24, 31, 33} {
		_, err := NewFieldCipher(make([]byte, n), logger.Nop())
		require.Error(t, err)
		assert.ErrorIs(t, err, config.ErrInvalidKeyLength)
		assert.ErrorIs(t, err, config.ErrConfig)
	}
}

func TestFieldCipher_RoundTrip(t *testing.T) {
	c := newTestCipher(t)
	faker := gofakeit.New(42)

	plaintexts := []string{
		"",
		"buy milk",
		"ünïcødé ✓ задача 任务",
		strings.Repeat("a", aes.BlockSize),
		strings.Repeat("b", aes.BlockSize-1),
		faker.Sentence(40),
	}

	for _, p := range plaintexts {
		envelope, err := c.Encrypt(p)
		require.NoError(t, err)

		got, err := c.Decrypt(envelope)
		require.NoError(t, err)
		assert.Equal(t, p, got)
	}
}

func TestFieldCipher_EnvelopeFormat(t *testing.T) {
	c := newTestCipher(t)

	envelope, err := c.Encrypt("buy milk")
	require.NoError(t, err)

	ivHex, ctHex, found := strings.Cut(envelope, ":")
	require.True(t, found)

	iv, err := hex.DecodeString(ivHex)
	require.NoError(t, err)
	assert.Len(t, iv, aes.BlockSize)

	ct, err := hex.DecodeString(ctHex)
	require.NoError(t, err)
	assert.Len(t, ct, aes.BlockSize)
	assert.Equal(t, strings.ToLower(envelope), envelope)
}

func TestFieldCipher_EmptyPlaintextIsFullBlock(t *testing.T) {
	c := newTestCipher(t)

	envelope, err := c.Encrypt("")
	require.NoError(t, err)

	_, ctHex, _ := strings.Cut(envelope, ":")
	assert.Len(t, ctHex, 2*aes.BlockSize)
}

func TestFieldCipher_IVUniqueness(t *testing.T) {
	c := newTestCipher(t)

	first, err := c.Encrypt("same text")
	require.NoError(t, err)
	second, err := c.Encrypt("same text")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.NotEqual(t, strings.Split(first, ":")[0], strings.Split(second, ":")[0])
}

func TestFieldCipher_DecryptEmpty(t *testing.T) {
	got, err := newTestCipher(t).Decrypt("")
	require.NoError(t, err)
	assert.Equal(t, "", got)
}

func TestFieldCipher_DecryptPassthrough(t *testing.T) {
	c := newTestCipher(t)

	for _, in := range []string{"legacy plain text", ":abcdef", "abcdef:"} {
		got, err := c.Decrypt(in)
		require.NoError(t, err)
		assert.Equal(t, in, got)
	}
}

func TestFieldCipher_DecryptMalformed(t *testing.T) {
	c := newTestCipher(t)

	valid, err := c.Encrypt("buy milk")
	require.NoError(t, err)
	ivHex, ctHex, _ := strings.Cut(valid, ":")

	tests := []struct {
		name     string
		envelope string
	}{
		{name: "iv not hex", envelope: "zz" + ivHex[2:] + ":" + ctHex},
		{name: "ciphertext not hex", envelope: ivHex + ":xyz"},
		{name: "short iv", envelope: ivHex[:8] + ":" + ctHex},
		{name: "partial block", envelope: ivHex + ":" + ctHex[:10]},
		{name: "bad padding", envelope: badPaddingEnvelope(t, c)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := c.Decrypt(tt.envelope)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrDecryptionFailed)
			assert.ErrorIs(t, err, ErrCipher)
		})
	}
}

// badPaddingEnvelope encrypts a full block ending in a zero byte without
// padding, so the decrypted block never carries valid PKCS#7 padding.
func badPaddingEnvelope(t *testing.T, c FieldCipher) string {
	t.Helper()
	fc, ok := c.(*fieldCipher)
	require.True(t, ok)

	iv := make([]byte, aes.BlockSize)
	block := make([]byte, aes.BlockSize)
	ct := make([]byte, aes.BlockSize)
	cipher.NewCBCEncrypter(fc.block, iv).CryptBlocks(ct, block)

	return hex.EncodeToString(iv) + ":" + hex.EncodeToString(ct)
}

func TestFieldCipher_WrongKeyFails(t *testing.T) {
	c := newTestCipher(t)
	envelope, err := c.Encrypt("top secret description")
	require.NoError(t, err)

	other, err := NewFieldCipher([]byte("fedcba9876543210fedcba9876543210"), logger.Nop())
	require.NoError(t, err)

	got, err := other.Decrypt(envelope)
	if err == nil {
		assert.NotEqual(t, "top secret description", got)
		return
	}
	assert.ErrorIs(t, err, ErrDecryptionFailed)
}

func TestFieldCipher_EncryptRandomFailure(t *testing.T) {
	c := &fieldCipher{random: failingReader{}, logger: logger.Nop()}

	_, err := c.Encrypt("x")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrEncryptionFailed)
	assert.ErrorIs(t, err, ErrCipher)
}

func TestPKCS7(t *testing.T) {
	for n := 0; n <= 2*aes.BlockSize; n++ {
		data := []byte(strings.Repeat("x", n))
		padded := pkcs7Pad(append([]byte(nil), data...), aes.BlockSize)
		assert.Zero(t, len(padded)%aes.BlockSize)
		assert.Greater(t, len(padded), n)

		unpadded, err := pkcs7Unpad(padded, aes.BlockSize)
		require.NoError(t, err)
		assert.Equal(t, data, unpadded)
	}

	_, err := pkcs7Unpad([]byte{}, aes.BlockSize)
	assert.Error(t, err)
	_, err = pkcs7Unpad([]byte{1, 2, 3, 17}, aes.BlockSize)
	assert.Error(t, err)
}
