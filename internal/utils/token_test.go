package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateToken_Length(t *testing.T) {
	for _, length := range []int{1, 7, 20, 32, 64} {
		token, err := GenerateToken(length)
		require.NoError(t, err)
		assert.Len(t, token, length)
	}
}

func TestGenerateToken_HexAlphabet(t *testing.T) {
	token, err := GenerateToken(40)
	require.NoError(t, err)

	for _, r := range token {
		assert.Contains(t, "0123456789abcdef", string(r))
	}
}

func TestGenerateToken_Unique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		token, err := GenerateToken(20)
		require.NoError(t, err)
		assert.False(t, seen[token], "token %q repeated", token)
		seen[token] = true
	}
}
