package common

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, ""},
		{"no separator", errors.New("connection refused"), "connection refused"},
		{"last segment", errors.New("failed to execute message; message index: 0: token_id already claimed"), "message index: 0: token_id already claimed"},
		{"wrapped", fmt.Errorf("mint: %w", errors.New("a; b;   Unauthorized")), "Unauthorized"},
		{"trailing separator", errors.New("broken;"), ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ErrorMessage(tt.err))
		})
	}
}

func TestGenerateQRCode(t *testing.T) {
	encoded, err := GenerateQRCode("wasm1qqqsyqcyq5rqwzqfpg9scrgwpugpzysn9gx9pr")
	require.NoError(t, err)

	png, err := base64.StdEncoding.DecodeString(encoded)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(png, []byte("\x89PNG")))
}
