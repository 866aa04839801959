package room

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrEmptyRoomNumber = errors.New("room number cannot be empty")
	ErrInvalidCapacity = errors.New("capacity must be between 1 and 100")
	ErrNegativeRate    = errors.New("nightly rate cannot be negative")
)

const MaxCapacity = 100

// Room belongs to a hotel. IsAvailable is only a cache of "no active
// reservation currently occupies the room"; the reservation overlap check
// is authoritative for booking conflicts.
type Room struct {
	id            uuid.UUID
	hotelID       uuid.UUID
	roomNumber    string
	capacity      int
	pricePerNight decimal.Decimal
	isAvailable   bool
	deleted       bool
	createdAt     time.Time
	updatedAt     time.Time
}

func NewRoom(hotelID uuid.UUID, roomNumber string, capacity int, pricePerNight decimal.Decimal, now time.Time) (*Room, error) {
	roomNumber = strings.TrimSpace(roomNumber)
	if roomNumber == "" {
		return nil, ErrEmptyRoomNumber
	}
	if capacity < 1 || capacity > MaxCapacity {
		return nil, ErrInvalidCapacity
	}
	if pricePerNight.IsNegative() {
		return nil, ErrNegativeRate
	}

	return &Room{
		id:            uuid.New(),
		hotelID:       hotelID,
		roomNumber:    roomNumber,
		capacity:      capacity,
		pricePerNight: pricePerNight,
		isAvailable:   true,
		createdAt:     now,
		updatedAt:     now,
	}, nil
}

func ReconstructRoom(
	id, hotelID uuid.UUID,
	roomNumber string,
	capacity int,
	pricePerNight decimal.Decimal,
	isAvailable, deleted bool,
	createdAt, updatedAt time.Time,
) *Room {
	return &Room{
		id:            id,
		hotelID:       hotelID,
		roomNumber:    roomNumber,
		capacity:      capacity,
		pricePerNight: pricePerNight,
		isAvailable:   isAvailable,
		deleted:       deleted,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}
}

func (r *Room) CanAccommodate(guests int) bool {
	return guests >= 1 && guests <= r.capacity
}

func (r *Room) ID() uuid.UUID                  { return r.id }
func (r *Room) HotelID() uuid.UUID             { return r.hotelID }
func (r *Room) RoomNumber() string             { return r.roomNumber }
func (r *Room) Capacity() int                  { return r.capacity }
func (r *Room) PricePerNight() decimal.Decimal { return r.pricePerNight }
func (r *Room) IsAvailable() bool              { return r.isAvailable }
func (r *Room) IsDeleted() bool                { return r.deleted }
func (r *Room) CreatedAt() time.Time           { return r.createdAt }
func (r *Room) UpdatedAt() time.Time           { return r.updatedAt }
