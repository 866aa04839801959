package shared

import (
	"context"
	"time"

	"hotel-booking-api/internal/domain/reservation"
	"hotel-booking-api/internal/domain/room"
	"hotel-booking-api/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// UnitOfWork runs fn inside a single database transaction. All booking
// mutations (create, confirm, cancel, check-in, check-out) go through
// Within so the conflict check and the write land in the same
// transactional snapshot.
type UnitOfWork interface {
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

type Tx interface {
	Reservations() ReservationRepository
	Rooms() RoomRepository
	Users() UserRepository
	Payments() PaymentRepository
	Notifications() NotificationRepository
}

type ReservationRepository interface {
	Create(ctx context.Context, res *reservation.Reservation) (uuid.UUID, error)
	Update(ctx context.Context, res *reservation.Reservation) error
	// FindByIDForUpdate loads and row-locks a reservation for a status change.
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error)
	// ExistsOverlapping reports whether any non-cancelled, non-deleted
	// reservation for the room overlaps the candidate stay (half-open).
	ExistsOverlapping(ctx context.Context, roomID uuid.UUID, stay reservation.Stay) (bool, error)
}

type RoomRepository interface {
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*room.Room, error)
	SetAvailability(ctx context.Context, roomID uuid.UUID, available bool, now time.Time) error
}

// UserRepository verifies the requesting account inside the booking
// transaction. A valid JWT is not enough: the account may have been
// deleted or deactivated since the token was minted.
type UserRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*readmodel.AuthorizedUserRM, error)
}

type PaymentRecord struct {
	ReservationID uuid.UUID
	Amount        decimal.Decimal
	Method        string
	Status        string
	TransactionID string
}

type PaymentRepository interface {
	Create(ctx context.Context, record PaymentRecord, now time.Time) (uuid.UUID, error)
}

// NotificationRepository is the outbox for email jobs picked up by a
// delivery worker outside this service.
type NotificationRepository interface {
	Enqueue(ctx context.Context, kind, topic string, payload []byte, runAt time.Time) error
}
