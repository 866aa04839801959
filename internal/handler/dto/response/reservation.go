package response

import (
	"log/slog"
	"time"

	"hotel-booking-api/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"github.com/shopspring/decimal"
)

type ReservationResponse struct {
	ID                    uuid.UUID        `json:"id"`
	RoomID                uuid.UUID        `json:"roomId"`
	RoomNumber            string           `json:"roomNumber"`
	HotelID               uuid.UUID        `json:"hotelId"`
	HotelName             string           `json:"hotelName"`
	UserID                uuid.UUID        `json:"userId"`
	UserEmail             string           `json:"userEmail"`
	CheckInDate           time.Time        `json:"checkInDate"`
	CheckOutDate          time.Time        `json:"checkOutDate"`
	Status                string           `json:"status"`
	TotalPrice            decimal.Decimal  `json:"totalPrice"`
	NumberOfGuests        int              `json:"numberOfGuests"`
	Note                  *string          `json:"note,omitempty"`
	CheckInTime           *time.Time       `json:"checkInTime,omitempty"`
	CheckOutTime          *time.Time       `json:"checkOutTime,omitempty"`
	EarlyCheckInSurcharge *decimal.Decimal `json:"earlyCheckInSurcharge,omitempty"`
	LateCheckOutSurcharge *decimal.Decimal `json:"lateCheckOutSurcharge,omitempty"`
	ActualPrice           *decimal.Decimal `json:"actualPrice,omitempty"`
	CreatedAt             time.Time        `json:"createdAt"`
	UpdatedAt             time.Time        `json:"updatedAt"`
}

type ReservationListResponse struct {
	ID           uuid.UUID       `json:"id"`
	RoomID       uuid.UUID       `json:"roomId"`
	RoomNumber   string          `json:"roomNumber"`
	HotelName    string          `json:"hotelName"`
	CheckInDate  time.Time       `json:"checkInDate"`
	CheckOutDate time.Time       `json:"checkOutDate"`
	Status       string          `json:"status"`
	TotalPrice   decimal.Decimal `json:"totalPrice"`
	CreatedAt    time.Time       `json:"createdAt"`
}

func FromReservationRM(rm *readmodel.ReservationRM) *ReservationResponse {
	var resp ReservationResponse
	if err := copier.Copy(&resp, rm); err != nil {
		slog.Error("failed to map reservation read model", "error", err.Error())
	}
	return &resp
}

func FromReservationListRMs(rms []*readmodel.ReservationListRM) []*ReservationListResponse {
	result := make([]*ReservationListResponse, 0, len(rms))
	for _, rm := range rms {
		var resp ReservationListResponse
		if err := copier.Copy(&resp, rm); err != nil {
			slog.Error("failed to map reservation list read model", "error", err.Error())
			continue
		}
		result = append(result, &resp)
	}
	return result
}
