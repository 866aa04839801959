package response

import (
	"time"

	"hotel-booking-api/internal/usecase/readmodel"

	"github.com/google/uuid"
)

type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

func FromAuthorizedUserRM(rm *readmodel.AuthorizedUserRM) UserResponse {
	return UserResponse{
		ID:        rm.ID,
		Email:     rm.Email,
		Role:      rm.Role,
		CreatedAt: rm.CreatedAt,
	}
}
