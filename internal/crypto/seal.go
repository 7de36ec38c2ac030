package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"io"

	"github.com/AlexZinkM/cw721-wallet/internal/model"

	"golang.org/x/crypto/scrypt"
)

const (
	sealVersion  = 1
	scryptKeyLen = 32
	saltLen      = 32
	nonceLen     = 12
)

// ErrInvalidPassword is returned when a sealed secret cannot be opened with the given password.
var ErrInvalidPassword = errors.New("invalid password")

// Params are the scrypt cost parameters used to derive the sealing key.
type Params struct {
	N int
	R int
	P int
}

// DefaultParams favours security over speed.
//
// N=2^18 (~256MB RAM, 0.5-2s) keeps brute force expensive while still fitting
// the memory limits of small machines.
var DefaultParams = Params{N: 1 << 18, R: 8, P: 1}

// Seal encrypts plaintext with a key derived from password using DefaultParams.
// password must be []byte for security (caller should zero it after use)
func Seal(plaintext, password []byte) (*model.SealedSecret, error) {
	return SealWithParams(plaintext, password, DefaultParams)
}

// SealWithParams is Seal with explicit scrypt parameters.
func SealWithParams(plaintext, password []byte, params Params) (*model.SealedSecret, error) {
	if len(password) == 0 {
		return nil, errors.New("password cannot be empty")
	}

	salt := make([]byte, saltLen)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return nil, fmt.Errorf("failed to generate salt: %w", err)
	}

	nonce := make([]byte, nonceLen)
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, fmt.Errorf("failed to generate nonce: %w", err)
	}

	aesGCM, err := newGCM(password, salt, params)
	if err != nil {
		return nil, err
	}

	ciphertext := aesGCM.Seal(nil, nonce, plaintext, nil)

	return &model.SealedSecret{
		Version:    sealVersion,
		ScryptN:    params.N,
		ScryptR:    params.R,
		ScryptP:    params.P,
		Salt:       base64.StdEncoding.EncodeToString(salt),
		Nonce:      base64.StdEncoding.EncodeToString(nonce),
		CipherText: base64.StdEncoding.EncodeToString(ciphertext),
	}, nil
}

// Open decrypts a sealed secret. The caller should clear the result after use.
func Open(sealed *model.SealedSecret, password []byte) ([]byte, error) {
	if sealed == nil {
		return nil, errors.New("sealed secret is nil")
	}
	if sealed.Version != sealVersion {
		return nil, fmt.Errorf("unsupported sealed secret version %d", sealed.Version)
	}

	salt, err := base64.StdEncoding.DecodeString(sealed.Salt)
	if err != nil {
		return nil, fmt.Errorf("failed to decode salt: %w", err)
	}

	nonce, err := base64.StdEncoding.DecodeString(sealed.Nonce)
	if err != nil {
		return nil, fmt.Errorf("failed to decode nonce: %w", err)
	}

	ciphertext, err := base64.StdEncoding.DecodeString(sealed.CipherText)
	if err != nil {
		return nil, fmt.Errorf("failed to decode ciphertext: %w", err)
	}

	params := Params{N: sealed.ScryptN, R: sealed.ScryptR, P: sealed.ScryptP}
	aesGCM, err := newGCM(password, salt, params)
	if err != nil {
		return nil, err
	}

	plaintext, err := aesGCM.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, ErrInvalidPassword
	}
	return plaintext, nil
}

func newGCM(password, salt []byte, params Params) (cipher.AEAD, error) {
	key, err := scrypt.Key(password, salt, params.N, params.R, params.P, scryptKeyLen)
	if err != nil {
		return nil, fmt.Errorf("failed to derive key: %w", err)
	}
	defer clear(key)

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("failed to create cipher: %w", err)
	}

	aesGCM, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("failed to create GCM: %w", err)
	}
	return aesGCM, nil
}
