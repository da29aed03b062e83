package authUtils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundtrip(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	for _, kind := range []string{KindCitizen, KindMunicipal} {
		token, err := GenerateToken("abc123", kind)
		require.NoError(t, err)

		sub, actor, err := ParseToken(token)
		require.NoError(t, err)
		assert.Equal(t, "abc123", sub)
		assert.Equal(t, kind, actor)
	}
}

func TestParseTokenRejectsWrongSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	token, err := GenerateToken("abc123", KindCitizen)
	require.NoError(t, err)

	t.Setenv("JWT_SECRET", "other-secret")
	_, _, err = ParseToken(token)
	assert.Error(t, err)
}

func TestParseTokenRejectsGarbage(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	_, _, err := ParseToken("not-a-token")
	assert.Error(t, err)
}

func TestGenerateTokenRequiresSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	_, err := GenerateToken("abc123", KindCitizen)
	assert.Error(t, err)
}
