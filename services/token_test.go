package services

import (
	"os"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Swapnil-DevGeek/note-taker/utils"
)

func TestMain(m *testing.M) {
	os.Setenv("GO_ENV", "test")
	utils.InitJWT()
	os.Exit(m.Run())
}

func TestGenerateAndParseToken(t *testing.T) {
	token, err := GenerateToken("alice@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	email, err := ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", email)
}

func TestTokenCarriesOnlyEmailClaim(t *testing.T) {
	token, err := GenerateToken("bob@example.com")
	require.NoError(t, err)

	parsed, err := jwt.Parse(token, func(*jwt.Token) (interface{}, error) {
		return []byte(utils.JWTSecretKey), nil
	})
	require.NoError(t, err)

	claims := parsed.Claims.(jwt.MapClaims)
	assert.Equal(t, jwt.MapClaims{"email": "bob@example.com"}, claims)
	_, hasExp := claims["exp"]
	assert.False(t, hasExp, "tokens are issued without an expiry")
}

func TestParseTokenRejectsGarbage(t *testing.T) {
	_, err := ParseToken("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = ParseToken("")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseTokenRejectsWrongSecret(t *testing.T) {
	other := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"email": "x@y.com"})
	signed, err := other.SignedString([]byte("some-other-secret"))
	require.NoError(t, err)

	_, err = ParseToken(signed)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseTokenRejectsMissingEmail(t *testing.T) {
	empty := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{})
	signed, err := empty.SignedString([]byte(utils.JWTSecretKey))
	require.NoError(t, err)

	_, err = ParseToken(signed)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
