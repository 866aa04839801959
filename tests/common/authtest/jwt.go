//go:build unit || e2e

package authtest

import (
	"testing"

	"hotel-booking-api/internal/domain/user"
	"hotel-booking-api/internal/pkg/config"
	"hotel-booking-api/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// MintToken signs a JWT for a fixture user directly, bypassing the login
// endpoint.
func MintToken(t *testing.T, cfg config.Config, userID uuid.UUID, role user.Role) string {
	t.Helper()

	svc := jwt.NewService(cfg.JWT.Secret, cfg.JWT.Duration)
	token, err := svc.GenerateToken(userID, role)
	require.NoError(t, err)
	return token
}
