package wallet

import (
	"errors"
	"fmt"

	"github.com/cosmos/cosmos-sdk/crypto/hd"
	cryptotypes "github.com/cosmos/cosmos-sdk/crypto/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/cosmos/cosmos-sdk/types/bech32"
	"github.com/tyler-smith/go-bip39"
)

// HDPath is the Cosmos Hub derivation path for account 0, index 0: m/44'/118'/0'/0/0.
func HDPath() string {
	return hd.CreateHDPath(sdk.CoinType, 0, 0).String()
}

// Signer is an offline signer bound to one secp256k1 key and one bech32 prefix.
type Signer struct {
	priv    cryptotypes.PrivKey
	prefix  string
	address string
}

// NewSigner derives the key for mnemonic on HDPath and encodes its address with prefix.
func NewSigner(mnemonic, prefix string) (*Signer, error) {
	if prefix == "" {
		return nil, errors.New("address prefix is required")
	}
	if !bip39.IsMnemonicValid(mnemonic) {
		return nil, ErrInvalidMnemonic
	}

	derived, err := hd.Secp256k1.Derive()(mnemonic, "", HDPath())
	if err != nil {
		return nil, fmt.Errorf("failed to derive key: %w", err)
	}
	defer clear(derived)

	priv := hd.Secp256k1.Generate()(derived)
	address, err := bech32.ConvertAndEncode(prefix, priv.PubKey().Address())
	if err != nil {
		return nil, fmt.Errorf("failed to encode address: %w", err)
	}

	return &Signer{
		priv:    priv,
		prefix:  prefix,
		address: address,
	}, nil
}

// Address returns the bech32 account address.
func (s *Signer) Address() string {
	return s.address
}

// Prefix returns the bech32 prefix the address was encoded with.
func (s *Signer) Prefix() string {
	return s.prefix
}

// PubKey returns the compressed secp256k1 public key.
func (s *Signer) PubKey() cryptotypes.PubKey {
	return s.priv.PubKey()
}

// Sign signs msg (SIGN_MODE_DIRECT sign bytes) with the private key.
func (s *Signer) Sign(msg []byte) ([]byte, error) {
	return s.priv.Sign(msg)
}
