package jwt_test

import (
	"testing"
	"time"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"

	"handy/config"
	"handy/infras/jwt"
)

const testSecret = "test-secret"

func newService() jwt.JWT {
	cfg := &config.Config{}
	cfg.JWT.AccessSecret = testSecret
	cfg.JWT.RefreshSecret = "other-secret"

	return jwt.New(cfg)
}

func signToken(t *testing.T, tokenType jwt.TokenType, expiresAt time.Time) string {
	t.Helper()

	claims := jwt.Claims{
		UserID: "user-1",
		Email:  "user@example.com",
		Role:   "customer",
		Type:   tokenType,
		RegisteredClaims: gojwt.RegisteredClaims{
			ExpiresAt: gojwt.NewNumericDate(expiresAt),
			Subject:   "user-1",
		},
	}

	signed, err := gojwt.NewWithClaims(gojwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	assert.NoError(t, err)

	return signed
}

func TestValidateToken(t *testing.T) {
	svc := newService()

	t.Run("valid access token", func(t *testing.T) {
		token := signToken(t, jwt.AccessToken, time.Now().Add(time.Hour))

		claims, err := svc.ValidateToken(token, jwt.AccessToken)

		assert.NoError(t, err)
		assert.Equal(t, "user-1", claims.UserID)
		assert.Equal(t, "customer", claims.Role)
	})

	t.Run("expired token", func(t *testing.T) {
		token := signToken(t, jwt.AccessToken, time.Now().Add(-time.Hour))

		_, err := svc.ValidateToken(token, jwt.AccessToken)

		assert.ErrorIs(t, err, jwt.ErrExpiredToken)
	})

	t.Run("token type mismatch", func(t *testing.T) {
		// Signed with the access secret but claiming to be a refresh token.
		token := signToken(t, jwt.RefreshToken, time.Now().Add(time.Hour))

		_, err := svc.ValidateToken(token, jwt.AccessToken)

		assert.ErrorIs(t, err, jwt.ErrInvalidClaim)
	})

	t.Run("garbage token", func(t *testing.T) {
		_, err := svc.ValidateToken("not-a-token", jwt.AccessToken)

		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})
}

func TestExtractTokenFromHeader(t *testing.T) {
	token, err := jwt.ExtractTokenFromHeader("Bearer abc.def.ghi")
	assert.NoError(t, err)
	assert.Equal(t, "abc.def.ghi", token)

	_, err = jwt.ExtractTokenFromHeader("")
	assert.Error(t, err)

	_, err = jwt.ExtractTokenFromHeader("Token abc")
	assert.Error(t, err)
}
