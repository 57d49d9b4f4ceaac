package jwt_test

import (
	"testing"
	"time"

	"dishlist/backend/pkg/jwt"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const secret = "test-secret"

func TestGenerateAndParse(t *testing.T) {
	token, err := jwt.GenerateToken(42, secret, time.Hour)
	require.NoError(t, err)

	userID, err := jwt.ParseToken(token, secret)
	require.NoError(t, err)
	assert.Equal(t, uint(42), userID)
}

func TestParseToken_Rejects(t *testing.T) {
	expired, err := jwt.GenerateToken(42, secret, -time.Minute)
	require.NoError(t, err)

	otherSecret, err := jwt.GenerateToken(42, "another-secret", time.Hour)
	require.NoError(t, err)

	noSubject, err := gojwt.NewWithClaims(gojwt.SigningMethodHS256, gojwt.MapClaims{
		"exp": time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte(secret))
	require.NoError(t, err)

	noExpiry, err := gojwt.NewWithClaims(gojwt.SigningMethodHS256, gojwt.MapClaims{
		"sub": 42,
	}).SignedString([]byte(secret))
	require.NoError(t, err)

	for name, token := range map[string]string{
		"expired":      expired,
		"wrong secret": otherSecret,
		"no subject":   noSubject,
		"no expiry":    noExpiry,
		"garbage":      "not.a.token",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := jwt.ParseToken(token, secret)
			assert.ErrorIs(t, err, jwt.ErrInvalidToken)
		})
	}
}
