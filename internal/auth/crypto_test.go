package auth

import (
	"bytes"
	"encoding/base64"
	"strings"
	"testing"

	apperrors "bleck-backend/internal/errors"

	"github.com/stretchr/testify/require"
)

func mustSetSecret(t *testing.T) string {
	t.Helper()
	// Deterministic 32-byte secret for tests
	secret := base64.StdEncoding.EncodeToString(bytes.Repeat([]byte{1}, 32))
	require.NoError(t, SetTokenSecret(secret))
	return secret
}

func TestEncryptDecryptRoundTrip(t *testing.T) {
	mustSetSecret(t)

	plaintext := "EAAB-facebook-token"
	ciphertext, err := EncryptToken(plaintext)
	require.NoError(t, err)
	require.NotEqual(t, plaintext, ciphertext)
	require.True(t, strings.HasPrefix(ciphertext, "enc:v1:"))

	decrypted, err := DecryptToken(ciphertext)
	require.NoError(t, err)
	require.Equal(t, plaintext, decrypted)
}

func TestEncryptToken_NonceDiffers(t *testing.T) {
	mustSetSecret(t)

	a, err := EncryptToken("same")
	require.NoError(t, err)
	b, err := EncryptToken("same")
	require.NoError(t, err)
	require.NotEqual(t, a, b)
}

func TestDecryptPlaintextRejected(t *testing.T) {
	mustSetSecret(t)

	_, err := DecryptToken("plain-token")
	require.Error(t, err)
	require.Contains(t, err.Error(), "encrypted")
}

func TestDecryptTamperedPayload(t *testing.T) {
	mustSetSecret(t)

	ciphertext, err := EncryptToken("tok")
	require.NoError(t, err)
	tampered := ciphertext[:len(ciphertext)-4] + "AAAA"

	_, err = DecryptToken(tampered)
	require.Error(t, err)
}

func TestOptionalTokens(t *testing.T) {
	mustSetSecret(t)

	enc, err := EncryptOptional("")
	require.NoError(t, err)
	require.Empty(t, enc)

	dec, err := DecryptOptional("")
	require.NoError(t, err)
	require.Empty(t, dec)

	enc, err = EncryptOptional("refresh-1")
	require.NoError(t, err)
	dec, err = DecryptOptional(enc)
	require.NoError(t, err)
	require.Equal(t, "refresh-1", dec)
}

func TestSetTokenSecretInvalid(t *testing.T) {
	short := base64.StdEncoding.EncodeToString(bytes.Repeat([]byte{2}, 16))
	err := SetTokenSecret(short)
	require.Error(t, err)
	require.True(t, apperrors.IsConfiguration(err))

	require.ErrorIs(t, SetTokenSecret(""), apperrors.ErrTokenSecretMissing)
	require.Error(t, SetTokenSecret("%%%not-base64"))
}

func TestConfigureTokenSecret_FromConfig(t *testing.T) {
	secret := base64.StdEncoding.EncodeToString(bytes.Repeat([]byte{3}, 32))
	require.NoError(t, ConfigureTokenSecret(&AuthConfig{TokenSecret: secret}))

	enc, err := EncryptToken("x")
	require.NoError(t, err)

	require.NoError(t, SetTokenSecret(base64.StdEncoding.EncodeToString(bytes.Repeat([]byte{4}, 32))))
	_, err = DecryptToken(enc)
	require.Error(t, err, "a different key must not open the value")
}
