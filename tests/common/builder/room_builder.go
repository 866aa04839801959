//go:build unit || e2e

package builder

import (
	"time"

	domroom "hotel-booking-api/internal/domain/room"
	reqdto "hotel-booking-api/internal/handler/dto/request"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type RoomBuilder struct {
	HotelID       uuid.UUID
	RoomNumber    string
	Capacity      int
	PricePerNight decimal.Decimal
	Now           time.Time
}

func NewRoomBuilder() *RoomBuilder {
	return &RoomBuilder{
		HotelID:       uuid.New(),
		RoomNumber:    "101",
		Capacity:      2,
		PricePerNight: decimal.NewFromInt(100000),
		Now:           time.Date(2026, 2, 1, 9, 0, 0, 0, time.UTC),
	}
}

func (b *RoomBuilder) With(mutate func(*RoomBuilder)) *RoomBuilder {
	mutate(b)
	return b
}

func (b *RoomBuilder) BuildDomain() (*domroom.Room, error) {
	return domroom.NewRoom(b.HotelID, b.RoomNumber, b.Capacity, b.PricePerNight, b.Now)
}

func (b *RoomBuilder) BuildCreateRequestDTO() reqdto.CreateRoomRequest {
	return reqdto.CreateRoomRequest{
		RoomNumber:    b.RoomNumber,
		Capacity:      b.Capacity,
		PricePerNight: b.PricePerNight,
	}
}
