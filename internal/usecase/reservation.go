package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"hotel-booking-api/internal/domain/reservation"
	"hotel-booking-api/internal/domain/user"
	reqdto "hotel-booking-api/internal/handler/dto/request"
	"hotel-booking-api/internal/infra"
	"hotel-booking-api/internal/pkg/clock"
	"hotel-booking-api/internal/pkg/errs"
	"hotel-booking-api/internal/usecase/readmodel"
	"hotel-booking-api/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrInvalidStatusTransition = errors.New("reservation status does not allow this operation")
	ErrCheckInWindowExpired    = errors.New("check-in window has expired")
	ErrCheckOutWithoutCheckIn  = errors.New("cannot check out a reservation that never checked in")
	ErrNotReservationOwner     = errors.New("reservation belongs to another user")
	ErrPaymentRejected         = errors.New("payment was rejected by the gateway")
)

// ReservationReadStore is the query side used outside the booking
// transaction.
type ReservationReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*readmodel.ReservationRM, error)
	FindByUserID(ctx context.Context, userID uuid.UUID, page, pageSize int) ([]*readmodel.ReservationListRM, error)
}

// AvailabilityInvalidator drops cached availability hints after a booking
// mutation commits.
type AvailabilityInvalidator interface {
	Invalidate(ctx context.Context, roomID uuid.UUID)
}

type ReservationUseCase interface {
	CreateReservation(ctx context.Context, req reqdto.CreateReservationRequest, userID uuid.UUID) (*readmodel.ReservationRM, error)
	ConfirmOnPayment(ctx context.Context, reservationID uuid.UUID, payment shared.PaymentRecord) error
	CancelReservation(ctx context.Context, id, actorID uuid.UUID, actorRole user.Role) error
	CheckIn(ctx context.Context, id uuid.UUID, at *time.Time) (*readmodel.ReservationRM, error)
	CheckOut(ctx context.Context, id uuid.UUID, at *time.Time) (*readmodel.ReservationRM, error)
	GetReservation(ctx context.Context, id, actorID uuid.UUID, actorRole user.Role) (*readmodel.ReservationRM, error)
	GetUserReservations(ctx context.Context, userID uuid.UUID, page, pageSize int) ([]*readmodel.ReservationListRM, error)
}

type reservationUseCaseImpl struct {
	uow          shared.UnitOfWork
	reads        ReservationReadStore
	availability AvailabilityInvalidator
	clock        clock.Clock
}

func NewReservationUseCase(
	uow shared.UnitOfWork,
	reads ReservationReadStore,
	availability AvailabilityInvalidator,
	clock clock.Clock,
) ReservationUseCase {
	return &reservationUseCaseImpl{
		uow:          uow,
		reads:        reads,
		availability: availability,
		clock:        clock,
	}
}

// CreateReservation books a room for the requested stay. The overlap check
// and the insert run in one transaction; the exclusion constraint on
// room+stay catches the race where two requests pass the check together.
func (r *reservationUseCaseImpl) CreateReservation(
	ctx context.Context,
	req reqdto.CreateReservationRequest,
	userID uuid.UUID,
) (*readmodel.ReservationRM, error) {
	roomID, err := uuid.Parse(req.RoomID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrRoomNotFound)
	}

	stay, err := reservation.NewStay(req.CheckInDate.UTC(), req.CheckOutDate.UTC())
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidStayDates)
	}

	var reservationID uuid.UUID
	err = r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		// The token alone does not prove the account still exists or is
		// still active.
		actor, err := tx.Users().FindByID(ctx, userID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, ErrUserNotFound)
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		if !actor.IsActive {
			return ErrUserInactive
		}

		rm, err := tx.Rooms().FindByIDForUpdate(ctx, roomID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, errs.ErrRoomNotFound)
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		if !rm.CanAccommodate(req.NumberOfGuests) {
			return errs.ErrCapacityExceeded
		}

		taken, err := tx.Reservations().ExistsOverlapping(ctx, roomID, stay)
		if err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		if taken {
			return errs.ErrReservationConflict
		}

		res, err := reservation.NewReservation(roomID, userID, stay, rm.PricePerNight(), req.NumberOfGuests, r.clock.Now())
		if err != nil {
			return errs.Mark(err, errs.ErrDomainValidation)
		}

		if reservationID, err = tx.Reservations().Create(ctx, res); err != nil {
			if infra.IsKind(err, infra.KindConflict) {
				return errs.Mark(err, errs.ErrReservationConflict)
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		r.enqueueNotification(ctx, tx, "reservation_created", res.ID(), userID)
		return nil
	})
	if err != nil {
		return nil, err
	}

	r.availability.Invalidate(ctx, roomID)

	return r.reads.FindByID(ctx, reservationID)
}

// ConfirmOnPayment moves a pending reservation to confirmed after the
// gateway reports success, records the payment, and marks the room taken.
func (r *reservationUseCaseImpl) ConfirmOnPayment(ctx context.Context, reservationID uuid.UUID, payment shared.PaymentRecord) error {
	var roomID uuid.UUID
	err := r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		res, err := tx.Reservations().FindByIDForUpdate(ctx, reservationID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, errs.ErrReservationNotFound)
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		roomID = res.RoomID()

		if err := res.Confirm(r.clock.Now()); err != nil {
			return errs.Mark(err, ErrInvalidStatusTransition)
		}
		if err := tx.Reservations().Update(ctx, res); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		payment.ReservationID = reservationID
		if _, err := tx.Payments().Create(ctx, payment, r.clock.Now()); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		if err := tx.Rooms().SetAvailability(ctx, res.RoomID(), false, r.clock.Now()); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		r.enqueueNotification(ctx, tx, "reservation_confirmed", reservationID, res.UserID())
		return nil
	})
	if err != nil {
		return err
	}

	r.availability.Invalidate(ctx, roomID)
	return nil
}

// CancelReservation is allowed for the owning guest or for staff/admin.
func (r *reservationUseCaseImpl) CancelReservation(ctx context.Context, id, actorID uuid.UUID, actorRole user.Role) error {
	var roomID uuid.UUID
	err := r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		res, err := tx.Reservations().FindByIDForUpdate(ctx, id)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, errs.ErrReservationNotFound)
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		roomID = res.RoomID()

		if res.UserID() != actorID && !actorRole.CanManageReservations() {
			return ErrNotReservationOwner
		}

		wasConfirmed := res.Status() == reservation.StatusConfirmed
		if err := res.Cancel(r.clock.Now()); err != nil {
			return errs.Mark(err, ErrInvalidStatusTransition)
		}
		if err := tx.Reservations().Update(ctx, res); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		// A cancelled pending reservation never held the room.
		if wasConfirmed {
			if err := tx.Rooms().SetAvailability(ctx, res.RoomID(), true, r.clock.Now()); err != nil {
				return errs.Mark(err, errs.ErrDatabaseOperationFailed)
			}
		}

		r.enqueueNotification(ctx, tx, "reservation_cancelled", id, res.UserID())
		return nil
	})
	if err != nil {
		return err
	}

	r.availability.Invalidate(ctx, roomID)
	return nil
}

// CheckIn records the guest's arrival. Early arrival is allowed and noted;
// the surcharge is settled at check-out. Arrival more than a day past the
// booked check-in date is rejected.
func (r *reservationUseCaseImpl) CheckIn(ctx context.Context, id uuid.UUID, at *time.Time) (*readmodel.ReservationRM, error) {
	now := r.clock.Now()
	actual := now
	if at != nil {
		actual = at.UTC()
	}

	err := r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		res, err := tx.Reservations().FindByIDForUpdate(ctx, id)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, errs.ErrReservationNotFound)
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		if err := res.CheckIn(actual, now); err != nil {
			switch {
			case errors.Is(err, reservation.ErrCheckInWindowExpired):
				return errs.Mark(err, ErrCheckInWindowExpired)
			default:
				return errs.Mark(err, ErrInvalidStatusTransition)
			}
		}

		if err := tx.Reservations().Update(ctx, res); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return r.reads.FindByID(ctx, id)
}

// CheckOut records the departure and settles the final price, including
// early check-in and late check-out surcharges against the room's nightly
// rate. The room becomes available again.
func (r *reservationUseCaseImpl) CheckOut(ctx context.Context, id uuid.UUID, at *time.Time) (*readmodel.ReservationRM, error) {
	now := r.clock.Now()
	actual := now
	if at != nil {
		actual = at.UTC()
	}

	var roomID uuid.UUID
	err := r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		res, err := tx.Reservations().FindByIDForUpdate(ctx, id)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, errs.ErrReservationNotFound)
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		roomID = res.RoomID()

		rm, err := tx.Rooms().FindByIDForUpdate(ctx, res.RoomID())
		if err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		if _, err := res.CheckOut(actual, rm.PricePerNight(), now); err != nil {
			switch {
			case errors.Is(err, reservation.ErrMissingCheckInTime):
				return errs.Mark(err, ErrCheckOutWithoutCheckIn)
			default:
				return errs.Mark(err, ErrInvalidStatusTransition)
			}
		}

		if err := tx.Reservations().Update(ctx, res); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		if err := tx.Rooms().SetAvailability(ctx, res.RoomID(), true, now); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		r.enqueueNotification(ctx, tx, "reservation_checked_out", id, res.UserID())
		return nil
	})
	if err != nil {
		return nil, err
	}

	r.availability.Invalidate(ctx, roomID)

	return r.reads.FindByID(ctx, id)
}

// GetReservation hides other guests' reservations from non-staff callers.
func (r *reservationUseCaseImpl) GetReservation(ctx context.Context, id, actorID uuid.UUID, actorRole user.Role) (*readmodel.ReservationRM, error) {
	rm, err := r.reads.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrReservationNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if rm.UserID != actorID && !actorRole.CanManageReservations() {
		return nil, errs.ErrReservationNotFound
	}

	return rm, nil
}

func (r *reservationUseCaseImpl) GetUserReservations(ctx context.Context, userID uuid.UUID, page, pageSize int) ([]*readmodel.ReservationListRM, error) {
	items, err := r.reads.FindByUserID(ctx, userID, page, pageSize)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	return items, nil
}

// enqueueNotification writes an email job into the outbox within the same
// transaction. Failures are logged, not surfaced: the booking outcome must
// not depend on the notification pipeline.
func (r *reservationUseCaseImpl) enqueueNotification(ctx context.Context, tx shared.Tx, kind string, reservationID, userID uuid.UUID) {
	payload, err := json.Marshal(map[string]string{
		"reservation_id": reservationID.String(),
		"user_id":        userID.String(),
	})
	if err != nil {
		slog.Warn("failed to marshal notification payload", "kind", kind, "error", err.Error())
		return
	}
	if err := tx.Notifications().Enqueue(ctx, kind, "email", payload, r.clock.Now()); err != nil {
		slog.Warn("failed to enqueue notification", "kind", kind, "error", err.Error())
	}
}
