package readmodel

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RoomSearchFilter narrows the availability search. City and Country are
// ILIKE patterns; empty means no filter.
type RoomSearchFilter struct {
	City     string
	Country  string
	CheckIn  time.Time
	CheckOut time.Time
	Guests   int
	Page     int
	PageSize int
}

type RoomRM struct {
	ID            uuid.UUID       `json:"id"`
	HotelID       uuid.UUID       `json:"hotel_id"`
	HotelName     string          `json:"hotel_name"`
	RoomNumber    string          `json:"room_number"`
	Capacity      int             `json:"capacity"`
	PricePerNight decimal.Decimal `json:"price_per_night"`
	IsAvailable   bool            `json:"is_available"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}
