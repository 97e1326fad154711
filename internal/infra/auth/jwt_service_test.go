package auth

import (
	"testing"
	"time"

	"account/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestJWTConfig(secret string, ttl time.Duration) *config.Config {
	cfg := &config.Config{Auth: &config.AuthConfig{AccessTokenTTL: ttl}}
	cfg.SecretKey.Access = secret

	return cfg
}

func TestJWTService_GenerateAndValidate(t *testing.T) {
	svc, err := NewJWTService(newTestJWTConfig("access-secret", time.Minute))
	require.NoError(t, err)

	userID := uuid.New()
	token, err := svc.GenerateAccessToken(userID, []string{"customer", "staff"})
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, []string{"customer", "staff"}, claims.Roles)
	assert.Equal(t, userID.String(), claims.Subject)
	assert.WithinDuration(t, time.Now().Add(time.Minute), claims.ExpiresAt.Time, 5*time.Second)
}

func TestJWTService_InvalidToken(t *testing.T) {
	svc, err := NewJWTService(newTestJWTConfig("access-secret", time.Minute))
	require.NoError(t, err)

	_, err = svc.ValidateToken("not-a-token")
	assert.Error(t, err)

	other, err := NewJWTService(newTestJWTConfig("other-secret", time.Minute))
	require.NoError(t, err)
	foreign, err := other.GenerateAccessToken(uuid.New(), nil)
	require.NoError(t, err)

	_, err = svc.ValidateToken(foreign)
	assert.Error(t, err)
}

func TestJWTService_ExpiredToken(t *testing.T) {
	svc, err := NewJWTService(newTestJWTConfig("access-secret", time.Minute))
	require.NoError(t, err)

	issued := time.Now().Add(-time.Hour)
	svc.(*jwtService).now = func() time.Time { return issued }
	token, err := svc.GenerateAccessToken(uuid.New(), []string{"customer"})
	require.NoError(t, err)

	svc.(*jwtService).now = time.Now
	_, err = svc.ValidateToken(token)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestJWTService_RejectsOtherSigningMethod(t *testing.T) {
	svc, err := NewJWTService(newTestJWTConfig("access-secret", time.Minute))
	require.NoError(t, err)

	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{"uid": uuid.NewString()}).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = svc.ValidateToken(unsigned)
	assert.Error(t, err)
}

func TestJWTService_EmptySecret(t *testing.T) {
	_, err := NewJWTService(newTestJWTConfig("", time.Minute))

	assert.Error(t, err)
}

func TestJWTService_DefaultTTL(t *testing.T) {
	svc, err := NewJWTService(newTestJWTConfig("access-secret", 0))
	require.NoError(t, err)

	assert.Equal(t, 15*time.Minute, svc.(*jwtService).accessTTL)
}
