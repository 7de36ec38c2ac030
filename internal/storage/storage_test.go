package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dgraph-io/badger/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AlexZinkM/cw721-wallet/internal/crypto"
)

func exerciseStore(t *testing.T, s Storage) {
	t.Helper()

	_, err := s.Get("mnemonic")
	require.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, s.Set("mnemonic", "alpha beta"))
	got, err := s.Get("mnemonic")
	require.NoError(t, err)
	assert.Equal(t, "alpha beta", got)

	require.NoError(t, s.Set("other", "x"))
	require.NoError(t, s.Delete("mnemonic"))

	_, err = s.Get("mnemonic")
	assert.ErrorIs(t, err, ErrNotFound)

	got, err = s.Get("other")
	require.NoError(t, err)
	assert.Equal(t, "x", got)

	// deleting a missing key is not an error
	assert.NoError(t, s.Delete("mnemonic"))
}

func TestFileStore(t *testing.T) {
	s, err := OpenFile(filepath.Join(t.TempDir(), "wallet.json"))
	require.NoError(t, err)
	defer s.Close()

	exerciseStore(t, s)
}

func TestFileStore_PersistsAcrossOpens(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wallet.json")

	s, err := OpenFile(path)
	require.NoError(t, err)
	require.NoError(t, s.Set("mnemonic", "persisted"))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())

	reopened, err := OpenFile(path)
	require.NoError(t, err)
	got, err := reopened.Get("mnemonic")
	require.NoError(t, err)
	assert.Equal(t, "persisted", got)
}

func TestFileStore_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wallet.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0600))

	s, err := OpenFile(path)
	require.NoError(t, err)

	_, err = s.Get("mnemonic")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFound)
}

func TestOpenFile_RejectsDirectory(t *testing.T) {
	_, err := OpenFile(t.TempDir())
	assert.Error(t, err)
}

func TestBadgerStore_InMemory(t *testing.T) {
	s, err := openBadger(badger.DefaultOptions("").WithInMemory(true).WithLogger(nil))
	require.NoError(t, err)
	defer s.Close()

	exerciseStore(t, s)
}

func TestOpen_Backends(t *testing.T) {
	dir := t.TempDir()

	fs, err := Open("file", filepath.Join(dir, "wallet.json"))
	require.NoError(t, err)
	assert.IsType(t, &FileStore{}, fs)
	require.NoError(t, fs.Close())

	bs, err := Open("badger", filepath.Join(dir, "badger"))
	require.NoError(t, err)
	assert.IsType(t, &BadgerStore{}, bs)
	require.NoError(t, bs.Close())

	_, err = Open("sqlite", dir)
	assert.Error(t, err)
}

func TestSealed(t *testing.T) {
	inner, err := OpenFile(filepath.Join(t.TempDir(), "wallet.json"))
	require.NoError(t, err)

	s := NewSealedWithParams(inner, []byte("dev"), crypto.Params{N: 1 << 10, R: 8, P: 1})
	exerciseStore(t, s)
}

func TestSealed_StoresCiphertext(t *testing.T) {
	inner, err := OpenFile(filepath.Join(t.TempDir(), "wallet.json"))
	require.NoError(t, err)
	params := crypto.Params{N: 1 << 10, R: 8, P: 1}

	s := NewSealedWithParams(inner, []byte("dev"), params)
	require.NoError(t, s.Set("mnemonic", "tiny stage merge jungle"))

	raw, err := inner.Get("mnemonic")
	require.NoError(t, err)
	assert.False(t, strings.Contains(raw, "jungle"))
	assert.Contains(t, raw, "cipherText")

	wrong := NewSealedWithParams(inner, []byte("prod"), params)
	_, err = wrong.Get("mnemonic")
	assert.ErrorIs(t, err, crypto.ErrInvalidPassword)
}

func TestSealed_RejectsPlainValue(t *testing.T) {
	inner, err := OpenFile(filepath.Join(t.TempDir(), "wallet.json"))
	require.NoError(t, err)
	require.NoError(t, inner.Set("mnemonic", "plain words"))

	s := NewSealedWithParams(inner, []byte("dev"), crypto.Params{N: 1 << 10, R: 8, P: 1})
	_, err = s.Get("mnemonic")
	assert.Error(t, err)
}
