//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"hotel-registry/internal/pkg/clock"
	"hotel-registry/internal/pkg/config"
	"hotel-registry/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type JWTHelper struct {
	cfg config.JWTConfig
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	return &JWTHelper{cfg: cfg}
}

func (h *JWTHelper) GenerateToken(t *testing.T, operatorID uuid.UUID) string {
	t.Helper()
	duration, err := time.ParseDuration(h.cfg.Duration)
	require.NoError(t, err)
	service := jwt.NewService(h.cfg.Secret, duration, clock.NewRealClock())
	token, err := service.GenerateToken(operatorID)
	require.NoError(t, err)
	return token
}

// CreateExpiredToken issues a token whose expiry is already in the past.
func (h *JWTHelper) CreateExpiredToken(t *testing.T, operatorID uuid.UUID) string {
	t.Helper()
	duration, err := time.ParseDuration(h.cfg.Duration)
	require.NoError(t, err)
	past := clock.NewMockClock(time.Now().Add(-2 * duration))
	service := jwt.NewService(h.cfg.Secret, duration, past)
	token, err := service.GenerateToken(operatorID)
	require.NoError(t, err)
	return token
}
