package reservation

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidStay          = errors.New("check-in date must be before check-out date")
	ErrInvalidGuestCount    = errors.New("number of guests must be at least one")
	ErrNegativeRate         = errors.New("nightly rate cannot be negative")
	ErrInvalidTransition    = errors.New("invalid reservation status transition")
	ErrCheckInWindowExpired = errors.New("check-in window has expired")
	ErrMissingCheckInTime   = errors.New("actual check-in time is required for check-out")
)

// CheckInGraceWindow is how long after the expected check-in date a guest
// may still check in.
const CheckInGraceWindow = 24 * time.Hour

// Stay is the booked [check-in, check-out) interval.
type Stay struct {
	checkIn  time.Time
	checkOut time.Time
}

func NewStay(checkIn, checkOut time.Time) (Stay, error) {
	if !checkIn.Before(checkOut) {
		return Stay{}, ErrInvalidStay
	}
	return Stay{checkIn: checkIn, checkOut: checkOut}, nil
}

func (s Stay) CheckIn() time.Time  { return s.checkIn }
func (s Stay) CheckOut() time.Time { return s.checkOut }

func (s Stay) Nights() int {
	return Nights(s.checkIn, s.checkOut)
}

// Overlaps uses half-open semantics: [a,b) and [c,d) overlap iff a < d && c < b.
func (s Stay) Overlaps(other Stay) bool {
	return s.checkIn.Before(other.checkOut) && other.checkIn.Before(s.checkOut)
}

type Reservation struct {
	id                    uuid.UUID
	roomID                uuid.UUID
	userID                uuid.UUID
	stay                  Stay
	status                Status
	totalPrice            decimal.Decimal
	guests                int
	note                  string
	checkInTime           *time.Time
	checkOutTime          *time.Time
	earlyCheckInSurcharge *decimal.Decimal
	lateCheckOutSurcharge *decimal.Decimal
	actualPrice           *decimal.Decimal
	deleted               bool
	createdAt             time.Time
	updatedAt             time.Time
}

// NewReservation creates a pending reservation priced at nights x rate.
func NewReservation(roomID, userID uuid.UUID, stay Stay, nightlyRate decimal.Decimal, guests int, now time.Time) (*Reservation, error) {
	if guests < 1 {
		return nil, ErrInvalidGuestCount
	}
	if nightlyRate.IsNegative() {
		return nil, ErrNegativeRate
	}

	return &Reservation{
		id:         uuid.New(),
		roomID:     roomID,
		userID:     userID,
		stay:       stay,
		status:     StatusPending,
		totalPrice: BasePrice(stay.CheckIn(), stay.CheckOut(), nightlyRate),
		guests:     guests,
		createdAt:  now,
		updatedAt:  now,
	}, nil
}

func ReconstructReservation(
	id, roomID, userID uuid.UUID,
	stay Stay,
	status Status,
	totalPrice decimal.Decimal,
	guests int,
	note string,
	checkInTime, checkOutTime *time.Time,
	earlyCheckInSurcharge, lateCheckOutSurcharge, actualPrice *decimal.Decimal,
	deleted bool,
	createdAt, updatedAt time.Time,
) *Reservation {
	return &Reservation{
		id:                    id,
		roomID:                roomID,
		userID:                userID,
		stay:                  stay,
		status:                status,
		totalPrice:            totalPrice,
		guests:                guests,
		note:                  note,
		checkInTime:           checkInTime,
		checkOutTime:          checkOutTime,
		earlyCheckInSurcharge: earlyCheckInSurcharge,
		lateCheckOutSurcharge: lateCheckOutSurcharge,
		actualPrice:           actualPrice,
		deleted:               deleted,
		createdAt:             createdAt,
		updatedAt:             updatedAt,
	}
}

func (r *Reservation) transition(to Status, now time.Time) error {
	if !r.status.CanTransition(to) {
		return ErrInvalidTransition
	}
	r.status = to
	r.updatedAt = now
	return nil
}

// Confirm moves a pending reservation to confirmed after a successful payment.
func (r *Reservation) Confirm(now time.Time) error {
	return r.transition(StatusConfirmed, now)
}

// Cancel is allowed while the reservation is still pending or confirmed.
func (r *Reservation) Cancel(now time.Time) error {
	return r.transition(StatusCancelled, now)
}

// CheckIn records the actual arrival. Rejected once now is past the
// expected check-in date plus the grace window.
func (r *Reservation) CheckIn(at, now time.Time) error {
	if !r.status.CanTransition(StatusCheckedIn) {
		return ErrInvalidTransition
	}
	if now.After(r.stay.CheckIn().Add(CheckInGraceWindow)) {
		return ErrCheckInWindowExpired
	}

	hoursEarly := r.stay.CheckIn().Sub(at).Hours()
	if hoursEarly > 0 {
		r.note = fmt.Sprintf("Early check-in by %.2f hours", hoursEarly)
	} else {
		r.note = "On-time check-in"
	}

	t := at
	r.checkInTime = &t
	return r.transition(StatusCheckedIn, now)
}

// CheckOut records the actual departure and settles the final price,
// including early/late surcharges, via the pricing calculator.
func (r *Reservation) CheckOut(at time.Time, nightlyRate decimal.Decimal, now time.Time) (PriceBreakdown, error) {
	if !r.status.CanTransition(StatusCheckedOut) {
		return PriceBreakdown{}, ErrInvalidTransition
	}
	if r.checkInTime == nil {
		return PriceBreakdown{}, ErrMissingCheckInTime
	}

	breakdown := CalculateStayPrice(*r.checkInTime, r.stay.CheckIn(), at, r.stay.CheckOut(), nightlyRate)

	hoursLate := at.Sub(r.stay.CheckOut()).Hours()
	var msg string
	if hoursLate > 0 {
		msg = fmt.Sprintf("Late check-out by %.2f hours", hoursLate)
	} else {
		msg = "On-time check-out"
	}
	if r.note != "" {
		r.note += "\n" + msg
	} else {
		r.note = msg
	}

	t := at
	r.checkOutTime = &t
	early := breakdown.EarlyCheckInFee
	late := breakdown.LateCheckOutFee
	total := breakdown.Total()
	r.earlyCheckInSurcharge = &early
	r.lateCheckOutSurcharge = &late
	r.actualPrice = &total

	if err := r.transition(StatusCheckedOut, now); err != nil {
		return PriceBreakdown{}, err
	}
	return breakdown, nil
}

func (r *Reservation) ID() uuid.UUID                          { return r.id }
func (r *Reservation) RoomID() uuid.UUID                      { return r.roomID }
func (r *Reservation) UserID() uuid.UUID                      { return r.userID }
func (r *Reservation) Stay() Stay                             { return r.stay }
func (r *Reservation) Status() Status                         { return r.status }
func (r *Reservation) TotalPrice() decimal.Decimal            { return r.totalPrice }
func (r *Reservation) Guests() int                            { return r.guests }
func (r *Reservation) Note() string                           { return r.note }
func (r *Reservation) CheckInTime() *time.Time                { return r.checkInTime }
func (r *Reservation) CheckOutTime() *time.Time               { return r.checkOutTime }
func (r *Reservation) EarlyCheckInSurcharge() *decimal.Decimal { return r.earlyCheckInSurcharge }
func (r *Reservation) LateCheckOutSurcharge() *decimal.Decimal { return r.lateCheckOutSurcharge }
func (r *Reservation) ActualPrice() *decimal.Decimal          { return r.actualPrice }
func (r *Reservation) IsDeleted() bool                        { return r.deleted }
func (r *Reservation) CreatedAt() time.Time                   { return r.createdAt }
func (r *Reservation) UpdatedAt() time.Time                   { return r.updatedAt }
