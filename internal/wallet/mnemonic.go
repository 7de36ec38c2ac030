// Package wallet provisions the signing identity from a mnemonic kept in local storage.
package wallet

import (
	"errors"
	"fmt"
	"strings"

	"github.com/tyler-smith/go-bip39"

	"github.com/AlexZinkM/cw721-wallet/internal/storage"
)

// MnemonicKey is the storage key of the wallet mnemonic.
const MnemonicKey = "mnemonic"

// 16 bytes of entropy, encoded as 12 words.
const entropyBits = 128

var ErrInvalidMnemonic = errors.New("invalid mnemonic")

// GenerateMnemonic returns a new 12-word phrase built from crypto/rand entropy.
func GenerateMnemonic() (string, error) {
	entropy, err := bip39.NewEntropy(entropyBits)
	if err != nil {
		return "", fmt.Errorf("failed to generate entropy: %w", err)
	}
	defer clear(entropy)

	mnemonic, err := bip39.NewMnemonic(entropy)
	if err != nil {
		return "", fmt.Errorf("failed to encode mnemonic: %w", err)
	}
	return mnemonic, nil
}

// LoadOrCreateMnemonic returns the stored phrase, generating and storing one on first use.
// An existing value is never overwritten.
func LoadOrCreateMnemonic(store storage.Storage) (string, error) {
	loaded, err := store.Get(MnemonicKey)
	switch {
	case err == nil:
		loaded = strings.TrimSpace(loaded)
		if !bip39.IsMnemonicValid(loaded) {
			return "", fmt.Errorf("stored mnemonic is corrupted: %w", ErrInvalidMnemonic)
		}
		return loaded, nil
	case !errors.Is(err, storage.ErrNotFound):
		return "", fmt.Errorf("failed to load mnemonic: %w", err)
	}

	generated, err := GenerateMnemonic()
	if err != nil {
		return "", err
	}
	if err := store.Set(MnemonicKey, generated); err != nil {
		return "", fmt.Errorf("failed to store mnemonic: %w", err)
	}
	return generated, nil
}

// LoadOrCreateWallet derives the Signer for the stored (or newly created) mnemonic.
func LoadOrCreateWallet(store storage.Storage, prefix string) (*Signer, error) {
	mnemonic, err := LoadOrCreateMnemonic(store)
	if err != nil {
		return nil, err
	}
	return NewSigner(mnemonic, prefix)
}

// ForgetMnemonic clears the stored phrase. The next LoadOrCreateMnemonic creates a new wallet.
func ForgetMnemonic(store storage.Storage) error {
	if err := store.Delete(MnemonicKey); err != nil {
		return fmt.Errorf("failed to clear mnemonic: %w", err)
	}
	return nil
}
