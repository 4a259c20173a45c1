package api

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/stretchr/testify/require"
)

const testDecodeToken = "test-signing-secret"

func signTestJWT(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(testDecodeToken))
	require.NoError(t, err)
	return signed
}

func Test_parseSupabaseJWT(t *testing.T) {
	t.Run("happy path", func(t *testing.T) {
		tokenStr := signTestJWT(t, jwt.MapClaims{
			"email": "user@example.com",
			"exp":   time.Now().UTC().Add(time.Hour).Unix(),
			"user_metadata": map[string]interface{}{
				"first_name": "Ada",
			},
		})

		parsed, err := parseSupabaseJWT(tokenStr, testDecodeToken)
		require.NoError(t, err)
		require.Equal(t, "user@example.com", *parsed.Email)
		require.Equal(t, "Ada", *parsed.UserMetadata.FirstName)
	})

	t.Run("expired token rejected", func(t *testing.T) {
		tokenStr := signTestJWT(t, jwt.MapClaims{
			"email": "user@example.com",
			"exp":   time.Now().UTC().Add(-time.Hour).Unix(),
		})

		_, err := parseSupabaseJWT(tokenStr, testDecodeToken)
		require.Error(t, err)
	})

	t.Run("missing email rejected", func(t *testing.T) {
		tokenStr := signTestJWT(t, jwt.MapClaims{
			"exp": time.Now().UTC().Add(time.Hour).Unix(),
		})

		_, err := parseSupabaseJWT(tokenStr, testDecodeToken)
		require.Error(t, err)
	})

	t.Run("wrong signing secret rejected", func(t *testing.T) {
		tokenStr := signTestJWT(t, jwt.MapClaims{
			"email": "user@example.com",
			"exp":   time.Now().UTC().Add(time.Hour).Unix(),
		})

		_, err := parseSupabaseJWT(tokenStr, "a-different-secret")
		require.Error(t, err)
	})
}
