package security_test

import (
	"encoding/hex"
	"testing"

	"logistics/internal/adapters/out/security"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRandomTokenGenerator_Generate(t *testing.T) {
	generator := security.NewRandomTokenGenerator()

	token, err := generator.Generate()
	require.NoError(t, err)

	assert.Len(t, token, 64)
	_, err = hex.DecodeString(token)
	assert.NoError(t, err, "token should be valid hex")
}

func TestRandomTokenGenerator_TokensAreUnique(t *testing.T) {
	generator := security.NewRandomTokenGenerator()

	seen := make(map[string]struct{})
	for i := 0; i < 100; i++ {
		token, err := generator.Generate()
		require.NoError(t, err)

		_, duplicate := seen[token]
		require.False(t, duplicate, "generated tokens must not repeat")
		seen[token] = struct{}{}
	}
}
