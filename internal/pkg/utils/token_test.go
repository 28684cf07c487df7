package utils

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sustainage/sdg-engine/internal/pkg/constants"
)

func TestAuthTokenRoundTrip(t *testing.T) {
	viper.Set(constants.ViperSecretKey, "test-secret")
	t.Cleanup(func() { viper.Set(constants.ViperSecretKey, "") })

	raw, err := GenerateAuthToken(&AuthTokenWrapper{TenantID: "acme"})
	require.NoError(t, err)

	parsed, err := ParseAuthToken(raw)
	require.NoError(t, err)
	assert.Equal(t, "acme", parsed.TenantID)
}

func TestParseAuthTokenRejectsWrongSecret(t *testing.T) {
	viper.Set(constants.ViperSecretKey, "test-secret")
	t.Cleanup(func() { viper.Set(constants.ViperSecretKey, "") })

	raw, err := GenerateAuthToken(&AuthTokenWrapper{TenantID: "acme"})
	require.NoError(t, err)

	viper.Set(constants.ViperSecretKey, "rotated")
	_, err = ParseAuthToken(raw)
	assert.ErrorIs(t, err, constants.ErrUnauthorized)
}

func TestParseAuthTokenRejectsGarbage(t *testing.T) {
	_, err := ParseAuthToken("not-a-jwt")
	assert.ErrorIs(t, err, constants.ErrUnauthorized)
}
