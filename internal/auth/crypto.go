package auth

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"

	apperrors "bleck-backend/internal/errors"
)

const (
	// encPrefix marks values sealed by EncryptToken and carries the format version
	encPrefix   = "enc:v1:"
	gcmNonceLen = 12
	keyLen      = 32
)

var (
	keyMu         sync.RWMutex
	encryptionKey []byte
)

// SetTokenSecret installs the AES-256 key used for platform tokens at rest.
// The secret must be a base64-encoded 32-byte value (openssl rand -base64 32).
func SetTokenSecret(base64Secret string) error {
	raw, err := decodeKey(base64Secret)
	if err != nil {
		return err
	}
	keyMu.Lock()
	encryptionKey = raw
	keyMu.Unlock()
	return nil
}

// ConfigureTokenSecret installs the key from the auth configuration, falling back to TOKEN_SECRET
func ConfigureTokenSecret(config *AuthConfig) error {
	secret := ""
	if config != nil {
		secret = config.TokenSecret
	}
	if strings.TrimSpace(secret) == "" {
		secret = os.Getenv("TOKEN_SECRET")
	}
	return SetTokenSecret(secret)
}

func decodeKey(secret string) ([]byte, error) {
	if strings.TrimSpace(secret) == "" {
		return nil, apperrors.ErrTokenSecretMissing
	}
	raw, err := base64.StdEncoding.DecodeString(secret)
	if err != nil {
		return nil, apperrors.NewConfigurationError("failed to base64 decode TOKEN_SECRET")
	}
	if len(raw) != keyLen {
		return nil, apperrors.NewConfigurationError(fmt.Sprintf("TOKEN_SECRET must decode to exactly %d bytes", keyLen))
	}
	return raw, nil
}

func currentKey() ([]byte, error) {
	keyMu.RLock()
	key := encryptionKey
	keyMu.RUnlock()
	if len(key) == keyLen {
		return key, nil
	}

	// not configured explicitly: try the environment once more
	raw, err := decodeKey(os.Getenv("TOKEN_SECRET"))
	if err != nil {
		return nil, err
	}
	keyMu.Lock()
	encryptionKey = raw
	keyMu.Unlock()
	return raw, nil
}

func newGCM() (cipher.AEAD, error) {
	key, err := currentKey()
	if err != nil {
		return nil, err
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	return cipher.NewGCM(block)
}

// EncryptToken seals a token with AES-256-GCM.
// Format: "enc:v1:" + base64(nonce || ciphertext)
func EncryptToken(plaintext string) (string, error) {
	gcm, err := newGCM()
	if err != nil {
		return "", err
	}

	nonce := make([]byte, gcmNonceLen)
	if _, err := rand.Read(nonce); err != nil {
		return "", err
	}

	ciphertext := gcm.Seal(nil, nonce, []byte(plaintext), nil)
	combined := append(nonce, ciphertext...)
	return encPrefix + base64.StdEncoding.EncodeToString(combined), nil
}

// DecryptToken opens a value produced by EncryptToken. Plaintext input is rejected.
func DecryptToken(s string) (string, error) {
	if len(s) < len(encPrefix) || subtle.ConstantTimeCompare([]byte(s[:len(encPrefix)]), []byte(encPrefix)) != 1 {
		return "", errors.New("token is not encrypted (missing " + encPrefix + " prefix)")
	}

	gcm, err := newGCM()
	if err != nil {
		return "", err
	}

	combined, err := base64.StdEncoding.DecodeString(s[len(encPrefix):])
	if err != nil {
		return "", errors.New("failed to base64 decode encrypted token")
	}
	if len(combined) < gcmNonceLen {
		return "", errors.New("invalid encrypted token payload")
	}

	plain, err := gcm.Open(nil, combined[:gcmNonceLen], combined[gcmNonceLen:], nil)
	if err != nil {
		return "", errors.New("failed to decrypt token")
	}
	return string(plain), nil
}

// EncryptOptional encrypts a token that may be absent. Empty input stays empty.
func EncryptOptional(plaintext string) (string, error) {
	if plaintext == "" {
		return "", nil
	}
	return EncryptToken(plaintext)
}

// DecryptOptional is the inverse of EncryptOptional
func DecryptOptional(s string) (string, error) {
	if s == "" {
		return "", nil
	}
	return DecryptToken(s)
}
