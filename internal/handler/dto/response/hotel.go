package response

import (
	"log/slog"
	"time"

	"hotel-booking-api/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"github.com/shopspring/decimal"
)

type HotelResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Address     string    `json:"address"`
	City        string    `json:"city"`
	Country     string    `json:"country"`
	Description *string   `json:"description,omitempty"`
	StarRating  *float64  `json:"starRating,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type RoomResponse struct {
	ID            uuid.UUID       `json:"id"`
	HotelID       uuid.UUID       `json:"hotelId"`
	HotelName     string          `json:"hotelName"`
	RoomNumber    string          `json:"roomNumber"`
	Capacity      int             `json:"capacity"`
	PricePerNight decimal.Decimal `json:"pricePerNight"`
	IsAvailable   bool            `json:"isAvailable"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}

func FromHotelRM(rm *readmodel.HotelRM) *HotelResponse {
	var resp HotelResponse
	if err := copier.Copy(&resp, rm); err != nil {
		slog.Error("failed to map hotel read model", "error", err.Error())
	}
	return &resp
}

func FromHotelRMs(rms []*readmodel.HotelRM) []*HotelResponse {
	result := make([]*HotelResponse, 0, len(rms))
	for _, rm := range rms {
		result = append(result, FromHotelRM(rm))
	}
	return result
}

func FromRoomRM(rm *readmodel.RoomRM) *RoomResponse {
	var resp RoomResponse
	if err := copier.Copy(&resp, rm); err != nil {
		slog.Error("failed to map room read model", "error", err.Error())
	}
	return &resp
}

func FromRoomRMs(rms []*readmodel.RoomRM) []*RoomResponse {
	result := make([]*RoomResponse, 0, len(rms))
	for _, rm := range rms {
		result = append(result, FromRoomRM(rm))
	}
	return result
}
