package request

import "time"

type CreateReservationRequest struct {
	RoomID         string    `json:"room_id" binding:"required,uuid"`
	CheckInDate    time.Time `json:"check_in_date" binding:"required"`
	CheckOutDate   time.Time `json:"check_out_date" binding:"required"`
	NumberOfGuests int       `json:"number_of_guests" binding:"required,min=1"`
}

// CheckInRequest and CheckOutRequest accept an optional actual time;
// when omitted the server clock is used.
type CheckInRequest struct {
	At *time.Time `json:"at"`
}

type CheckOutRequest struct {
	At *time.Time `json:"at"`
}
