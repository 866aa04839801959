//go:build unit || e2e

package builder

import (
	"time"

	domreservation "hotel-booking-api/internal/domain/reservation"
	reqdto "hotel-booking-api/internal/handler/dto/request"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ReservationBuilder struct {
	RoomID      uuid.UUID
	UserID      uuid.UUID
	CheckIn     time.Time
	CheckOut    time.Time
	NightlyRate decimal.Decimal
	Guests      int
	Now         time.Time
}

func NewReservationBuilder() *ReservationBuilder {
	checkIn := time.Date(2026, 3, 1, 15, 0, 0, 0, time.UTC)
	return &ReservationBuilder{
		RoomID:      uuid.New(),
		UserID:      uuid.New(),
		CheckIn:     checkIn,
		CheckOut:    checkIn.AddDate(0, 0, 3).Add(-4 * time.Hour), // 11:00 three days later
		NightlyRate: decimal.NewFromInt(100000),
		Guests:      2,
		Now:         checkIn.Add(-14 * 24 * time.Hour),
	}
}

func (b *ReservationBuilder) With(mutate func(*ReservationBuilder)) *ReservationBuilder {
	mutate(b)
	return b
}

func (b *ReservationBuilder) WithStay(checkIn, checkOut time.Time) *ReservationBuilder {
	b.CheckIn = checkIn
	b.CheckOut = checkOut
	return b
}

func (b *ReservationBuilder) WithGuests(n int) *ReservationBuilder {
	b.Guests = n
	return b
}

func (b *ReservationBuilder) WithNightlyRate(rate decimal.Decimal) *ReservationBuilder {
	b.NightlyRate = rate
	return b
}

func (b *ReservationBuilder) BuildStay() (domreservation.Stay, error) {
	return domreservation.NewStay(b.CheckIn, b.CheckOut)
}

func (b *ReservationBuilder) BuildDomain() (*domreservation.Reservation, error) {
	stay, err := b.BuildStay()
	if err != nil {
		return nil, err
	}
	return domreservation.NewReservation(b.RoomID, b.UserID, stay, b.NightlyRate, b.Guests, b.Now)
}

func (b *ReservationBuilder) BuildCreateRequestDTO() reqdto.CreateReservationRequest {
	return reqdto.CreateReservationRequest{
		RoomID:         b.RoomID.String(),
		CheckInDate:    b.CheckIn,
		CheckOutDate:   b.CheckOut,
		NumberOfGuests: b.Guests,
	}
}
