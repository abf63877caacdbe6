package jwt

import (
	"testing"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/soberfaysal-hue/enterprise-ai-security-platform/pkg/config"
)

func newManagerWithSecret(secret string) Manager {
	cfg := &config.ServerConfig{SecretKey: secret}
	return NewJwtManager(cfg)
}

func signTokenWithSecret(secret string, claims jwtlib.Claims) (string, error) {
	token := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

func TestCreateToken_AndValidate_Success(t *testing.T) {
	mgr := newManagerWithSecret("test-secret")

	token, err := mgr.CreateToken()
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	err = mgr.ValidateToken(token)
	assert.NoError(t, err)
}

func TestValidateToken_InvalidSignature(t *testing.T) {
	// Token signed with a different secret should be invalid
	claims := &Claims{RegisteredClaims: jwtlib.RegisteredClaims{IssuedAt: jwtlib.NewNumericDate(time.Now())}}
	signed, err := signTokenWithSecret("other-secret", claims)
	assert.NoError(t, err)

	mgr := newManagerWithSecret("test-secret")
	err = mgr.ValidateToken(signed)
	assert.Error(t, err)
	assert.Equal(t, ErrInvalidToken, err)
}

func TestValidateToken_Expired(t *testing.T) {
	secret := "expire-secret"
	claims := &Claims{RegisteredClaims: jwtlib.RegisteredClaims{
		IssuedAt:  jwtlib.NewNumericDate(time.Now().Add(-2 * time.Hour)),
		ExpiresAt: jwtlib.NewNumericDate(time.Now().Add(-1 * time.Hour)),
	}}
	signed, err := signTokenWithSecret(secret, claims)
	assert.NoError(t, err)

	mgr := newManagerWithSecret(secret)
	err = mgr.ValidateToken(signed)
	assert.Error(t, err)
	assert.Equal(t, ErrExpiredToken, err)
}

func TestValidateToken_Malformed(t *testing.T) {
	mgr := newManagerWithSecret("test-secret")
	err := mgr.ValidateToken("not-a-token")
	assert.Error(t, err)
	assert.Equal(t, ErrInvalidToken, err)
}
