package storage

import (
	"encoding/json"
	"fmt"

	"github.com/AlexZinkM/cw721-wallet/internal/crypto"
	"github.com/AlexZinkM/cw721-wallet/internal/model"
)

// Sealed encrypts every value with a password before handing it to the inner store.
type Sealed struct {
	inner    Storage
	password []byte
	params   crypto.Params
}

// NewSealed wraps inner. The password is copied; call Close to wipe it.
func NewSealed(inner Storage, password []byte) *Sealed {
	return NewSealedWithParams(inner, password, crypto.DefaultParams)
}

// NewSealedWithParams is NewSealed with explicit scrypt parameters.
func NewSealedWithParams(inner Storage, password []byte, params crypto.Params) *Sealed {
	p := make([]byte, len(password))
	copy(p, password)
	return &Sealed{inner: inner, password: p, params: params}
}

func (s *Sealed) Get(key string) (string, error) {
	raw, err := s.inner.Get(key)
	if err != nil {
		return "", err
	}

	var sealed model.SealedSecret
	if err := json.Unmarshal([]byte(raw), &sealed); err != nil {
		return "", fmt.Errorf("value under %s is not sealed: %w", key, err)
	}

	plaintext, err := crypto.Open(&sealed, s.password)
	if err != nil {
		return "", fmt.Errorf("failed to open %s: %w", key, err)
	}
	defer clear(plaintext)
	return string(plaintext), nil
}

func (s *Sealed) Set(key, value string) error {
	plaintext := []byte(value)
	defer clear(plaintext)

	sealed, err := crypto.SealWithParams(plaintext, s.password, s.params)
	if err != nil {
		return fmt.Errorf("failed to seal %s: %w", key, err)
	}
	data, err := json.Marshal(sealed)
	if err != nil {
		return fmt.Errorf("failed to marshal sealed %s: %w", key, err)
	}
	return s.inner.Set(key, string(data))
}

func (s *Sealed) Delete(key string) error {
	return s.inner.Delete(key)
}

func (s *Sealed) Close() error {
	clear(s.password)
	return s.inner.Close()
}
