package auth

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"botany/config"
)

func newTestJWTService(t *testing.T) *jwtService {
	t.Helper()

	cfg := &config.Config{}
	cfg.SecretKey.Access = "test-access-secret"
	cfg.SecretKey.Refresh = "test-refresh-secret"

	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	return svc.(*jwtService)
}

func TestNewJWTService_RequiresSecrets(t *testing.T) {
	cfg := &config.Config{}
	_, err := NewJWTService(cfg)
	assert.Error(t, err)
}

func TestJWTService_GenerateAndValidate(t *testing.T) {
	svc := newTestJWTService(t)
	userID := uuid.New()

	access, refresh, err := svc.GenerateTokens(userID)
	require.NoError(t, err)
	assert.NotEmpty(t, access)
	assert.NotEmpty(t, refresh)
	assert.NotEqual(t, access, refresh)

	got, err := svc.ValidateAccessToken(access)
	require.NoError(t, err)
	assert.Equal(t, userID, got)
}

func TestJWTService_RejectsRefreshTokenAsAccess(t *testing.T) {
	svc := newTestJWTService(t)

	_, refresh, err := svc.GenerateTokens(uuid.New())
	require.NoError(t, err)

	// Refresh tokens are signed with a different secret and must not
	// pass access-token validation.
	_, err = svc.ValidateAccessToken(refresh)
	assert.Error(t, err)
}

func TestJWTService_RejectsGarbage(t *testing.T) {
	svc := newTestJWTService(t)

	_, err := svc.ValidateAccessToken("not-a-token")
	assert.Error(t, err)
}

func TestJWTService_RefreshTokenDuration(t *testing.T) {
	svc := newTestJWTService(t)
	assert.Equal(t, time.Hour*24*7, svc.GetRefreshTokenDuration())
}
