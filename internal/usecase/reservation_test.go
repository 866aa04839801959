//go:build unit

package usecase_test

import (
	"context"
	"testing"
	"time"

	"hotel-booking-api/internal/domain/reservation"
	"hotel-booking-api/internal/domain/room"
	"hotel-booking-api/internal/domain/user"
	"hotel-booking-api/internal/infra"
	"hotel-booking-api/internal/pkg/clock"
	"hotel-booking-api/internal/pkg/errs"
	"hotel-booking-api/internal/usecase"
	"hotel-booking-api/internal/usecase/readmodel"
	"hotel-booking-api/internal/usecase/shared"
	"hotel-booking-api/tests/common/builder"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---------------------------------------------------------------------------
// hand-rolled stubs for the transactional boundary
// ---------------------------------------------------------------------------

type stubReservationRepo struct {
	created     *reservation.Reservation
	createErr   error
	updated     *reservation.Reservation
	updateErr   error
	findRes     *reservation.Reservation
	findErr     error
	overlapping bool
	overlapErr  error
}

func (s *stubReservationRepo) Create(_ context.Context, res *reservation.Reservation) (uuid.UUID, error) {
	if s.createErr != nil {
		return uuid.Nil, s.createErr
	}
	s.created = res
	return res.ID(), nil
}

func (s *stubReservationRepo) Update(_ context.Context, res *reservation.Reservation) error {
	if s.updateErr != nil {
		return s.updateErr
	}
	s.updated = res
	return nil
}

func (s *stubReservationRepo) FindByIDForUpdate(_ context.Context, _ uuid.UUID) (*reservation.Reservation, error) {
	return s.findRes, s.findErr
}

func (s *stubReservationRepo) ExistsOverlapping(_ context.Context, _ uuid.UUID, _ reservation.Stay) (bool, error) {
	return s.overlapping, s.overlapErr
}

type availabilityCall struct {
	roomID    uuid.UUID
	available bool
}

type stubRoomRepo struct {
	room     *room.Room
	findErr  error
	setCalls []availabilityCall
}

func (s *stubRoomRepo) FindByIDForUpdate(_ context.Context, _ uuid.UUID) (*room.Room, error) {
	return s.room, s.findErr
}

func (s *stubRoomRepo) SetAvailability(_ context.Context, roomID uuid.UUID, available bool, _ time.Time) error {
	s.setCalls = append(s.setCalls, availabilityCall{roomID: roomID, available: available})
	return nil
}

type stubUserRepo struct {
	rm  *readmodel.AuthorizedUserRM
	err error
}

func (s *stubUserRepo) FindByID(_ context.Context, _ uuid.UUID) (*readmodel.AuthorizedUserRM, error) {
	return s.rm, s.err
}

type stubPaymentRepo struct {
	records []shared.PaymentRecord
	err     error
}

func (s *stubPaymentRepo) Create(_ context.Context, record shared.PaymentRecord, _ time.Time) (uuid.UUID, error) {
	if s.err != nil {
		return uuid.Nil, s.err
	}
	s.records = append(s.records, record)
	return uuid.New(), nil
}

type stubNotificationRepo struct {
	kinds []string
	err   error
}

func (s *stubNotificationRepo) Enqueue(_ context.Context, kind, _ string, _ []byte, _ time.Time) error {
	if s.err != nil {
		return s.err
	}
	s.kinds = append(s.kinds, kind)
	return nil
}

type stubTx struct {
	reservations  *stubReservationRepo
	rooms         *stubRoomRepo
	users         *stubUserRepo
	payments      *stubPaymentRepo
	notifications *stubNotificationRepo
}

func (s *stubTx) Reservations() shared.ReservationRepository   { return s.reservations }
func (s *stubTx) Rooms() shared.RoomRepository                 { return s.rooms }
func (s *stubTx) Users() shared.UserRepository                 { return s.users }
func (s *stubTx) Payments() shared.PaymentRepository           { return s.payments }
func (s *stubTx) Notifications() shared.NotificationRepository { return s.notifications }

type stubUoW struct {
	tx *stubTx
}

func (s *stubUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return fn(ctx, s.tx)
}

type stubReadStore struct {
	rm      *readmodel.ReservationRM
	rmErr   error
	list    []*readmodel.ReservationListRM
	listErr error
}

func (s *stubReadStore) FindByID(_ context.Context, _ uuid.UUID) (*readmodel.ReservationRM, error) {
	return s.rm, s.rmErr
}

func (s *stubReadStore) FindByUserID(_ context.Context, _ uuid.UUID, _, _ int) ([]*readmodel.ReservationListRM, error) {
	return s.list, s.listErr
}

type stubInvalidator struct {
	invalidated []uuid.UUID
}

func (s *stubInvalidator) Invalidate(_ context.Context, roomID uuid.UUID) {
	s.invalidated = append(s.invalidated, roomID)
}

// ---------------------------------------------------------------------------
// fixture wiring
// ---------------------------------------------------------------------------

type reservationFixture struct {
	uc          usecase.ReservationUseCase
	tx          *stubTx
	reads       *stubReadStore
	invalidator *stubInvalidator
	clock       *clock.MockClock
}

var bookingTime = time.Date(2026, 2, 15, 10, 0, 0, 0, time.UTC)

func newReservationFixture(t *testing.T) *reservationFixture {
	t.Helper()

	testRoom, err := builder.NewRoomBuilder().BuildDomain()
	require.NoError(t, err)

	tx := &stubTx{
		reservations: &stubReservationRepo{},
		rooms:        &stubRoomRepo{room: testRoom},
		users: &stubUserRepo{rm: &readmodel.AuthorizedUserRM{
			ID:       uuid.New(),
			Email:    "guest@example.com",
			Role:     "guest",
			IsActive: true,
		}},
		payments:      &stubPaymentRepo{},
		notifications: &stubNotificationRepo{},
	}
	reads := &stubReadStore{rm: &readmodel.ReservationRM{ID: uuid.New()}}
	invalidator := &stubInvalidator{}
	mockClock := clock.NewMockClock(bookingTime)

	return &reservationFixture{
		uc:          usecase.NewReservationUseCase(&stubUoW{tx: tx}, reads, invalidator, mockClock),
		tx:          tx,
		reads:       reads,
		invalidator: invalidator,
		clock:       mockClock,
	}
}

func notFoundErr() error {
	return infra.WrapRepoErr("no rows", errs.New("no rows in result set"), infra.KindNotFound)
}

func pendingReservation(t *testing.T) *reservation.Reservation {
	t.Helper()
	res, err := builder.NewReservationBuilder().BuildDomain()
	require.NoError(t, err)
	return res
}

func confirmedReservation(t *testing.T) *reservation.Reservation {
	t.Helper()
	res := pendingReservation(t)
	require.NoError(t, res.Confirm(bookingTime))
	return res
}

func checkedInReservation(t *testing.T) *reservation.Reservation {
	t.Helper()
	res := confirmedReservation(t)
	at := res.Stay().CheckIn()
	require.NoError(t, res.CheckIn(at, at))
	return res
}

// ---------------------------------------------------------------------------
// CreateReservation
// ---------------------------------------------------------------------------

func TestCreateReservation(t *testing.T) {
	userID := uuid.New()
	req := builder.NewReservationBuilder().BuildCreateRequestDTO()

	t.Run("books the room and invalidates the availability cache", func(t *testing.T) {
		f := newReservationFixture(t)

		rm, err := f.uc.CreateReservation(context.Background(), req, userID)
		require.NoError(t, err)
		assert.Equal(t, f.reads.rm, rm)

		created := f.tx.reservations.created
		require.NotNil(t, created)
		assert.Equal(t, reservation.StatusPending, created.Status())
		assert.Equal(t, userID, created.UserID())
		assert.True(t, created.TotalPrice().Equal(decimal.NewFromInt(300000)))

		assert.Equal(t, []string{"reservation_created"}, f.tx.notifications.kinds)
		assert.Len(t, f.invalidator.invalidated, 1)
	})

	t.Run("malformed room id", func(t *testing.T) {
		f := newReservationFixture(t)
		badReq := req
		badReq.RoomID = "not-a-uuid"

		_, err := f.uc.CreateReservation(context.Background(), badReq, userID)
		assert.ErrorIs(t, err, errs.ErrRoomNotFound)
	})

	t.Run("check-in on or after check-out", func(t *testing.T) {
		f := newReservationFixture(t)
		badReq := req
		badReq.CheckOutDate = badReq.CheckInDate

		_, err := f.uc.CreateReservation(context.Background(), badReq, userID)
		assert.ErrorIs(t, err, errs.ErrInvalidStayDates)
	})

	t.Run("token for a user that no longer exists", func(t *testing.T) {
		f := newReservationFixture(t)
		f.tx.users.rm = nil
		f.tx.users.err = notFoundErr()

		_, err := f.uc.CreateReservation(context.Background(), req, userID)
		assert.ErrorIs(t, err, usecase.ErrUserNotFound)
		assert.Nil(t, f.tx.reservations.created)
		assert.Empty(t, f.tx.notifications.kinds)
	})

	t.Run("deactivated user cannot book", func(t *testing.T) {
		f := newReservationFixture(t)
		f.tx.users.rm.IsActive = false

		_, err := f.uc.CreateReservation(context.Background(), req, userID)
		assert.ErrorIs(t, err, usecase.ErrUserInactive)
		assert.Nil(t, f.tx.reservations.created)
		assert.Empty(t, f.invalidator.invalidated)
	})

	t.Run("unknown room", func(t *testing.T) {
		f := newReservationFixture(t)
		f.tx.rooms.room = nil
		f.tx.rooms.findErr = notFoundErr()

		_, err := f.uc.CreateReservation(context.Background(), req, userID)
		assert.ErrorIs(t, err, errs.ErrRoomNotFound)
		assert.Empty(t, f.invalidator.invalidated)
	})

	t.Run("too many guests for the room", func(t *testing.T) {
		f := newReservationFixture(t)
		crowded := req
		crowded.NumberOfGuests = 10

		_, err := f.uc.CreateReservation(context.Background(), crowded, userID)
		assert.ErrorIs(t, err, errs.ErrCapacityExceeded)
		assert.Nil(t, f.tx.reservations.created)
	})

	t.Run("overlapping reservation found by the in-transaction check", func(t *testing.T) {
		f := newReservationFixture(t)
		f.tx.reservations.overlapping = true

		_, err := f.uc.CreateReservation(context.Background(), req, userID)
		assert.ErrorIs(t, err, errs.ErrReservationConflict)
		assert.Nil(t, f.tx.reservations.created)
		assert.Empty(t, f.invalidator.invalidated)
	})

	t.Run("concurrent insert trips the exclusion constraint", func(t *testing.T) {
		f := newReservationFixture(t)
		f.tx.reservations.createErr = infra.WrapRepoErr("insert reservation", errs.New("exclusion violation"), infra.KindConflict)

		_, err := f.uc.CreateReservation(context.Background(), req, userID)
		assert.ErrorIs(t, err, errs.ErrReservationConflict)
	})
}

// ---------------------------------------------------------------------------
// ConfirmOnPayment
// ---------------------------------------------------------------------------

func TestConfirmOnPayment(t *testing.T) {
	payment := shared.PaymentRecord{
		Amount:        decimal.NewFromInt(300000),
		Method:        "credit_card",
		Status:        "succeeded",
		TransactionID: "txn-123",
	}

	t.Run("confirms, records the payment and holds the room", func(t *testing.T) {
		f := newReservationFixture(t)
		res := pendingReservation(t)
		f.tx.reservations.findRes = res

		require.NoError(t, f.uc.ConfirmOnPayment(context.Background(), res.ID(), payment))

		assert.Equal(t, reservation.StatusConfirmed, res.Status())
		require.Len(t, f.tx.payments.records, 1)
		assert.Equal(t, res.ID(), f.tx.payments.records[0].ReservationID)
		require.Len(t, f.tx.rooms.setCalls, 1)
		assert.False(t, f.tx.rooms.setCalls[0].available)
		assert.Equal(t, []string{"reservation_confirmed"}, f.tx.notifications.kinds)
		assert.Equal(t, []uuid.UUID{res.RoomID()}, f.invalidator.invalidated)
	})

	t.Run("unknown reservation", func(t *testing.T) {
		f := newReservationFixture(t)
		f.tx.reservations.findErr = notFoundErr()

		err := f.uc.ConfirmOnPayment(context.Background(), uuid.New(), payment)
		assert.ErrorIs(t, err, errs.ErrReservationNotFound)
	})

	t.Run("already confirmed", func(t *testing.T) {
		f := newReservationFixture(t)
		f.tx.reservations.findRes = confirmedReservation(t)

		err := f.uc.ConfirmOnPayment(context.Background(), uuid.New(), payment)
		assert.ErrorIs(t, err, usecase.ErrInvalidStatusTransition)
		assert.Empty(t, f.tx.payments.records)
	})
}

// ---------------------------------------------------------------------------
// CancelReservation
// ---------------------------------------------------------------------------

func TestCancelReservation(t *testing.T) {
	t.Run("owner cancels a pending reservation without releasing the room", func(t *testing.T) {
		f := newReservationFixture(t)
		res := pendingReservation(t)
		f.tx.reservations.findRes = res

		require.NoError(t, f.uc.CancelReservation(context.Background(), res.ID(), res.UserID(), user.RoleGuest))

		assert.Equal(t, reservation.StatusCancelled, res.Status())
		assert.Empty(t, f.tx.rooms.setCalls)
		assert.Equal(t, []string{"reservation_cancelled"}, f.tx.notifications.kinds)
	})

	t.Run("cancelling a confirmed reservation frees the room", func(t *testing.T) {
		f := newReservationFixture(t)
		res := confirmedReservation(t)
		f.tx.reservations.findRes = res

		require.NoError(t, f.uc.CancelReservation(context.Background(), res.ID(), res.UserID(), user.RoleGuest))

		require.Len(t, f.tx.rooms.setCalls, 1)
		assert.True(t, f.tx.rooms.setCalls[0].available)
		assert.Equal(t, []uuid.UUID{res.RoomID()}, f.invalidator.invalidated)
	})

	t.Run("another guest cannot cancel", func(t *testing.T) {
		f := newReservationFixture(t)
		res := pendingReservation(t)
		f.tx.reservations.findRes = res

		err := f.uc.CancelReservation(context.Background(), res.ID(), uuid.New(), user.RoleGuest)
		assert.ErrorIs(t, err, usecase.ErrNotReservationOwner)
		assert.Equal(t, reservation.StatusPending, res.Status())
	})

	t.Run("staff can cancel on behalf of a guest", func(t *testing.T) {
		f := newReservationFixture(t)
		res := pendingReservation(t)
		f.tx.reservations.findRes = res

		require.NoError(t, f.uc.CancelReservation(context.Background(), res.ID(), uuid.New(), user.RoleStaff))
		assert.Equal(t, reservation.StatusCancelled, res.Status())
	})

	t.Run("cancelling twice fails", func(t *testing.T) {
		f := newReservationFixture(t)
		res := pendingReservation(t)
		require.NoError(t, res.Cancel(bookingTime))
		f.tx.reservations.findRes = res

		err := f.uc.CancelReservation(context.Background(), res.ID(), res.UserID(), user.RoleGuest)
		assert.ErrorIs(t, err, usecase.ErrInvalidStatusTransition)
	})
}

// ---------------------------------------------------------------------------
// CheckIn / CheckOut
// ---------------------------------------------------------------------------

func TestCheckIn(t *testing.T) {
	t.Run("uses the server clock when no time is given", func(t *testing.T) {
		f := newReservationFixture(t)
		res := confirmedReservation(t)
		f.tx.reservations.findRes = res
		f.clock.Set(res.Stay().CheckIn().Add(-4 * time.Hour))

		_, err := f.uc.CheckIn(context.Background(), res.ID(), nil)
		require.NoError(t, err)

		assert.Equal(t, reservation.StatusCheckedIn, res.Status())
		require.NotNil(t, res.CheckInTime())
		assert.Equal(t, f.clock.Now(), *res.CheckInTime())
		assert.Equal(t, "Early check-in by 4.00 hours", res.Note())
		assert.Equal(t, res, f.tx.reservations.updated)
	})

	t.Run("explicit arrival time is honored", func(t *testing.T) {
		f := newReservationFixture(t)
		res := confirmedReservation(t)
		f.tx.reservations.findRes = res
		f.clock.Set(res.Stay().CheckIn())

		at := res.Stay().CheckIn().Add(-2 * time.Hour)
		_, err := f.uc.CheckIn(context.Background(), res.ID(), &at)
		require.NoError(t, err)
		assert.Equal(t, at, *res.CheckInTime())
	})

	t.Run("arrival past the grace window", func(t *testing.T) {
		f := newReservationFixture(t)
		res := confirmedReservation(t)
		f.tx.reservations.findRes = res
		f.clock.Set(res.Stay().CheckIn().Add(reservation.CheckInGraceWindow + time.Hour))

		_, err := f.uc.CheckIn(context.Background(), res.ID(), nil)
		assert.ErrorIs(t, err, usecase.ErrCheckInWindowExpired)
	})

	t.Run("pending reservation cannot check in", func(t *testing.T) {
		f := newReservationFixture(t)
		res := pendingReservation(t)
		f.tx.reservations.findRes = res
		f.clock.Set(res.Stay().CheckIn())

		_, err := f.uc.CheckIn(context.Background(), res.ID(), nil)
		assert.ErrorIs(t, err, usecase.ErrInvalidStatusTransition)
	})
}

func TestCheckOut(t *testing.T) {
	t.Run("settles the final price and frees the room", func(t *testing.T) {
		f := newReservationFixture(t)
		res := checkedInReservation(t)
		f.tx.reservations.findRes = res

		at := res.Stay().CheckOut().Add(5 * time.Hour)
		_, err := f.uc.CheckOut(context.Background(), res.ID(), &at)
		require.NoError(t, err)

		assert.Equal(t, reservation.StatusCheckedOut, res.Status())
		require.NotNil(t, res.ActualPrice())
		// 3 nights x 100000 plus a 50% late check-out surcharge
		assert.True(t, res.ActualPrice().Equal(decimal.NewFromInt(350000)))

		require.Len(t, f.tx.rooms.setCalls, 1)
		assert.True(t, f.tx.rooms.setCalls[0].available)
		assert.Equal(t, []string{"reservation_checked_out"}, f.tx.notifications.kinds)
		assert.Equal(t, []uuid.UUID{res.RoomID()}, f.invalidator.invalidated)
	})

	t.Run("checked-in status without a recorded arrival", func(t *testing.T) {
		f := newReservationFixture(t)
		res := pendingReservation(t)
		stay := res.Stay()
		broken := reservation.ReconstructReservation(
			res.ID(), res.RoomID(), res.UserID(), stay,
			reservation.StatusCheckedIn, res.TotalPrice(), res.Guests(), "",
			nil, nil, nil, nil, nil,
			false, res.CreatedAt(), res.UpdatedAt(),
		)
		f.tx.reservations.findRes = broken

		_, err := f.uc.CheckOut(context.Background(), broken.ID(), nil)
		assert.ErrorIs(t, err, usecase.ErrCheckOutWithoutCheckIn)
	})

	t.Run("confirmed reservation cannot check out", func(t *testing.T) {
		f := newReservationFixture(t)
		res := confirmedReservation(t)
		f.tx.reservations.findRes = res

		_, err := f.uc.CheckOut(context.Background(), res.ID(), nil)
		assert.ErrorIs(t, err, usecase.ErrInvalidStatusTransition)
	})
}

// ---------------------------------------------------------------------------
// read side
// ---------------------------------------------------------------------------

func TestGetReservation(t *testing.T) {
	ownerID := uuid.New()

	newFixtureWithOwner := func(t *testing.T) *reservationFixture {
		f := newReservationFixture(t)
		f.reads.rm = &readmodel.ReservationRM{ID: uuid.New(), UserID: ownerID}
		return f
	}

	t.Run("owner sees their reservation", func(t *testing.T) {
		f := newFixtureWithOwner(t)
		rm, err := f.uc.GetReservation(context.Background(), f.reads.rm.ID, ownerID, user.RoleGuest)
		require.NoError(t, err)
		assert.Equal(t, f.reads.rm, rm)
	})

	t.Run("other guests get not-found, not forbidden", func(t *testing.T) {
		f := newFixtureWithOwner(t)
		_, err := f.uc.GetReservation(context.Background(), f.reads.rm.ID, uuid.New(), user.RoleGuest)
		assert.ErrorIs(t, err, errs.ErrReservationNotFound)
	})

	t.Run("staff see every reservation", func(t *testing.T) {
		f := newFixtureWithOwner(t)
		rm, err := f.uc.GetReservation(context.Background(), f.reads.rm.ID, uuid.New(), user.RoleStaff)
		require.NoError(t, err)
		assert.Equal(t, f.reads.rm, rm)
	})

	t.Run("unknown reservation", func(t *testing.T) {
		f := newFixtureWithOwner(t)
		f.reads.rm = nil
		f.reads.rmErr = notFoundErr()

		_, err := f.uc.GetReservation(context.Background(), uuid.New(), ownerID, user.RoleGuest)
		assert.ErrorIs(t, err, errs.ErrReservationNotFound)
	})
}

func TestGetUserReservations(t *testing.T) {
	f := newReservationFixture(t)
	f.reads.list = []*readmodel.ReservationListRM{
		{ID: uuid.New(), Status: "confirmed"},
		{ID: uuid.New(), Status: "pending"},
	}

	items, err := f.uc.GetUserReservations(context.Background(), uuid.New(), 1, 20)
	require.NoError(t, err)
	assert.Len(t, items, 2)
}
