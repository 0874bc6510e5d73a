// file: internals/helpers/public_token_test.go
package helper

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeneratePublicToken(t *testing.T) {
	tok, err := GeneratePublicToken()
	require.NoError(t, err)

	// 24 byte acak → 48 karakter hex
	assert.Len(t, tok, 48)
	_, err = hex.DecodeString(tok)
	assert.NoError(t, err)

	other, err := GeneratePublicToken()
	require.NoError(t, err)
	assert.NotEqual(t, tok, other)
}
