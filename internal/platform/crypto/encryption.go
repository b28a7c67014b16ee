// Package crypto seals secret values at rest with AES-256-GCM. MFA
// secrets are the only callers today. When no key is configured the
// service passes values through unchanged so local setups work without
// provisioning one.
package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
)

// Service wraps a single AEAD built once at startup. A nil aead means
// the service is running in plaintext mode.
type Service struct {
	aead cipher.AEAD
}

func New(key string) (*Service, error) {
	if key == "" {
		return &Service{}, nil
	}
	material := keyBytes(key)
	if len(material) != 32 {
		return nil, fmt.Errorf("DATA_ENCRYPTION_KEY must be 32 bytes after decoding, got %d", len(material))
	}
	block, err := aes.NewCipher(material)
	if err != nil {
		return nil, err
	}
	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}
	return &Service{aead: aead}, nil
}

func (s *Service) Configured() bool {
	return s.aead != nil
}

// Encrypt seals plain and prefixes the random nonce to the result.
func (s *Service) Encrypt(plain []byte) ([]byte, error) {
	if len(plain) == 0 {
		return nil, nil
	}
	if s.aead == nil {
		return plain, nil
	}
	nonce := make([]byte, s.aead.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return nil, err
	}
	return s.aead.Seal(nonce, nonce, plain, nil), nil
}

// Decrypt reverses Encrypt, expecting the nonce at the front of sealed.
func (s *Service) Decrypt(sealed []byte) ([]byte, error) {
	if len(sealed) == 0 {
		return nil, nil
	}
	if s.aead == nil {
		return sealed, nil
	}
	n := s.aead.NonceSize()
	if len(sealed) < n {
		return nil, errors.New("sealed value shorter than nonce")
	}
	return s.aead.Open(nil, sealed[:n], sealed[n:], nil)
}

func (s *Service) EncryptString(value string) ([]byte, error) {
	if value == "" {
		return nil, nil
	}
	return s.Encrypt([]byte(value))
}

func (s *Service) DecryptString(sealed []byte) (string, error) {
	plain, err := s.Decrypt(sealed)
	if err != nil {
		return "", err
	}
	return string(plain), nil
}

// keyBytes accepts the key as 64 hex characters, standard or raw base64,
// or raw bytes, in that order of preference.
func keyBytes(raw string) []byte {
	if len(raw) == 64 {
		if b, err := hex.DecodeString(raw); err == nil {
			return b
		}
	}
	for _, enc := range []*base64.Encoding{base64.StdEncoding, base64.RawStdEncoding} {
		if b, err := enc.DecodeString(raw); err == nil {
			return b
		}
	}
	return []byte(raw)
}
