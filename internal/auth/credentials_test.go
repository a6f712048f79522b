package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlainVerifier(t *testing.T) {
	v := PlainVerifier{}

	stored, err := v.Hash("senha123")
	require.NoError(t, err)

	assert.True(t, v.Verify(stored, "senha123"))
	assert.False(t, v.Verify(stored, "outra"))

	// Legacy rows without a credential never match anything.
	assert.False(t, v.Verify("", ""))
}

func TestBcryptVerifier(t *testing.T) {
	v := BcryptVerifier{}

	stored, err := v.Hash("senha123")
	require.NoError(t, err)
	assert.NotEqual(t, "senha123", stored)

	assert.True(t, v.Verify(stored, "senha123"))
	assert.False(t, v.Verify(stored, "outra"))
	assert.False(t, v.Verify("", "senha123"))
}

func TestVerifiersAreInterchangeable(t *testing.T) {
	for _, v := range []Verifier{PlainVerifier{}, BcryptVerifier{}} {
		stored, err := v.Hash("senha123")
		require.NoError(t, err)
		assert.True(t, v.Verify(stored, "senha123"))
	}
}
