package usecase

import (
	"hotel-booking-api/internal/domain/user"
	"hotel-booking-api/internal/pkg/jwt"

	"github.com/google/uuid"
)

// TokenValidator is the narrow surface the auth middleware needs: turn a
// bearer token into an identity or reject it.
type TokenValidator interface {
	ValidateToken(raw string) (uuid.UUID, user.Role, error)
}

type jwtTokenValidator struct {
	svc *jwt.Service
}

func NewTokenValidator(svc *jwt.Service) TokenValidator {
	return &jwtTokenValidator{svc: svc}
}

func (v *jwtTokenValidator) ValidateToken(raw string) (uuid.UUID, user.Role, error) {
	claims, err := v.svc.ValidateToken(raw)
	if err != nil {
		return uuid.Nil, "", err
	}

	// The role claim is re-parsed rather than trusted: a token minted
	// before a role rename must not smuggle an unknown role into context.
	role, err := user.NewRole(claims.Role)
	if err != nil {
		return uuid.Nil, "", err
	}
	return claims.UserID, role, nil
}
