package jwthelper

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var key = []byte("test-signing-key")

func TestGenerateAndParse(t *testing.T) {
	token, err := GenerateToken(key, 7, "curl/8.0", time.Hour)
	require.NoError(t, err)

	claims, err := ParseToken(key, token)
	require.NoError(t, err)

	assert.Equal(t, uint(7), claims.UserID)
	assert.NotEmpty(t, claims.ID)
}

func TestGenerateToken_Unique(t *testing.T) {
	a, err := GenerateToken(key, 7, "curl/8.0", time.Hour)
	require.NoError(t, err)
	b, err := GenerateToken(key, 7, "curl/8.0", time.Hour)
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
}

func TestParseToken_Rejects(t *testing.T) {
	valid, err := GenerateToken(key, 7, "curl/8.0", time.Hour)
	require.NoError(t, err)

	expired, err := GenerateToken(key, 7, "curl/8.0", -time.Minute)
	require.NoError(t, err)

	none, err := jwt.NewWithClaims(jwt.SigningMethodNone, UserClaims{UserID: 7}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	cases := map[string]struct {
		key   []byte
		token string
	}{
		"wrong key":   {[]byte("other"), valid},
		"expired":     {key, expired},
		"unsigned":    {key, none},
		"garbage":     {key, "not-a-jwt"},
		"empty token": {key, ""},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := ParseToken(tc.key, tc.token)
			assert.ErrorIs(t, err, ErrInvalidToken)
		})
	}
}
