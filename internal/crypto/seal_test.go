package crypto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testParams = Params{N: 1 << 10, R: 8, P: 1}

func TestSealOpen_RoundTrip(t *testing.T) {
	secret := []byte("tiny stage merge jungle hedgehog fame wet pact diamond elevator ozone garden")

	sealed, err := SealWithParams(secret, []byte("dev"), testParams)
	require.NoError(t, err)

	assert.Equal(t, testParams.N, sealed.ScryptN)
	assert.NotContains(t, sealed.CipherText, "jungle")

	plaintext, err := Open(sealed, []byte("dev"))
	require.NoError(t, err)
	assert.Equal(t, secret, plaintext)
}

func TestSeal_FreshSaltAndNonce(t *testing.T) {
	a, err := SealWithParams([]byte("same"), []byte("dev"), testParams)
	require.NoError(t, err)
	b, err := SealWithParams([]byte("same"), []byte("dev"), testParams)
	require.NoError(t, err)

	assert.NotEqual(t, a.Salt, b.Salt)
	assert.NotEqual(t, a.Nonce, b.Nonce)
	assert.NotEqual(t, a.CipherText, b.CipherText)
}

func TestOpen_WrongPassword(t *testing.T) {
	sealed, err := SealWithParams([]byte("secret"), []byte("dev"), testParams)
	require.NoError(t, err)

	_, err = Open(sealed, []byte("prod"))
	assert.ErrorIs(t, err, ErrInvalidPassword)
}

func TestSeal_EmptyPassword(t *testing.T) {
	_, err := SealWithParams([]byte("secret"), nil, testParams)
	assert.Error(t, err)
}

func TestOpen_UnsupportedVersion(t *testing.T) {
	sealed, err := SealWithParams([]byte("secret"), []byte("dev"), testParams)
	require.NoError(t, err)
	sealed.Version = 7

	_, err = Open(sealed, []byte("dev"))
	assert.Error(t, err)
}
