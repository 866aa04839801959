package readmodel

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Read models (DTO for the read side)
type ReservationRM struct {
	ID                    uuid.UUID        `json:"id"`
	RoomID                uuid.UUID        `json:"room_id"`
	RoomNumber            string           `json:"room_number"`
	HotelID               uuid.UUID        `json:"hotel_id"`
	HotelName             string           `json:"hotel_name"`
	UserID                uuid.UUID        `json:"user_id"`
	UserEmail             string           `json:"user_email"`
	CheckInDate           time.Time        `json:"check_in_date"`
	CheckOutDate          time.Time        `json:"check_out_date"`
	Status                string           `json:"status"`
	TotalPrice            decimal.Decimal  `json:"total_price"`
	NumberOfGuests        int              `json:"number_of_guests"`
	Note                  *string          `json:"note,omitempty"`
	CheckInTime           *time.Time       `json:"check_in_time,omitempty"`
	CheckOutTime          *time.Time       `json:"check_out_time,omitempty"`
	EarlyCheckInSurcharge *decimal.Decimal `json:"early_check_in_surcharge,omitempty"`
	LateCheckOutSurcharge *decimal.Decimal `json:"late_check_out_surcharge,omitempty"`
	ActualPrice           *decimal.Decimal `json:"actual_price,omitempty"`
	CreatedAt             time.Time        `json:"created_at"`
	UpdatedAt             time.Time        `json:"updated_at"`
}

type ReservationListRM struct {
	ID           uuid.UUID       `json:"id"`
	RoomID       uuid.UUID       `json:"room_id"`
	RoomNumber   string          `json:"room_number"`
	HotelName    string          `json:"hotel_name"`
	CheckInDate  time.Time       `json:"check_in_date"`
	CheckOutDate time.Time       `json:"check_out_date"`
	Status       string          `json:"status"`
	TotalPrice   decimal.Decimal `json:"total_price"`
	CreatedAt    time.Time       `json:"created_at"`
}
