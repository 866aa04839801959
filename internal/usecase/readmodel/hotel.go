package readmodel

import (
	"time"

	"github.com/google/uuid"
)

type HotelRM struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Address     string    `json:"address"`
	City        string    `json:"city"`
	Country     string    `json:"country"`
	Description *string   `json:"description,omitempty"`
	StarRating  *float64  `json:"star_rating,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
