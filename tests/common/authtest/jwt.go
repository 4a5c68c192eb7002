//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"experience-booking/internal/domain/user"
	"experience-booking/internal/pkg/config"
	"experience-booking/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// JWTHelper issues tokens the way the identity service does so tests can
// call protected routes without a login endpoint.
type JWTHelper struct {
	cfg config.JWTConfig
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	return &JWTHelper{cfg: cfg}
}

func (h *JWTHelper) GenerateToken(t *testing.T, userID uuid.UUID, role user.Role, email string) string {
	t.Helper()
	duration, err := time.ParseDuration(h.cfg.Duration)
	require.NoError(t, err)
	service := jwt.NewService(h.cfg.Secret, duration, h.cfg.Issuer)
	token, err := service.GenerateToken(userID, role, email)
	require.NoError(t, err)
	return token
}

func (h *JWTHelper) CreateExpiredToken(t *testing.T, userID uuid.UUID, role user.Role) string {
	t.Helper()
	service := jwt.NewService(h.cfg.Secret, 1*time.Millisecond, h.cfg.Issuer)
	token, err := service.GenerateToken(userID, role, "")
	require.NoError(t, err)
	time.Sleep(10 * time.Millisecond)
	return token
}
