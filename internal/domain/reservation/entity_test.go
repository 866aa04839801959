//go:build unit

package reservation_test

import (
	"testing"
	"time"

	"hotel-booking-api/internal/domain/reservation"
	"hotel-booking-api/tests/common/builder"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStay(t *testing.T) {
	t.Run("valid interval", func(t *testing.T) {
		stay, err := reservation.NewStay(date(1, 15, 0), date(4, 11, 0))
		require.NoError(t, err)
		assert.Equal(t, 3, stay.Nights())
	})

	t.Run("check-in equal to check-out is rejected", func(t *testing.T) {
		_, err := reservation.NewStay(date(1, 15, 0), date(1, 15, 0))
		assert.ErrorIs(t, err, reservation.ErrInvalidStay)
	})

	t.Run("check-in after check-out is rejected", func(t *testing.T) {
		_, err := reservation.NewStay(date(4, 11, 0), date(1, 15, 0))
		assert.ErrorIs(t, err, reservation.ErrInvalidStay)
	})
}

func TestStayOverlaps(t *testing.T) {
	base, err := reservation.NewStay(date(5, 0, 0), date(10, 0, 0))
	require.NoError(t, err)

	cases := []struct {
		name     string
		checkIn  time.Time
		checkOut time.Time
		want     bool
	}{
		{"identical interval", date(5, 0, 0), date(10, 0, 0), true},
		{"contained interval", date(6, 0, 0), date(8, 0, 0), true},
		{"overlapping start", date(3, 0, 0), date(6, 0, 0), true},
		{"overlapping end", date(9, 0, 0), date(12, 0, 0), true},
		{"back-to-back before is allowed", date(1, 0, 0), date(5, 0, 0), false},
		{"back-to-back after is allowed", date(10, 0, 0), date(14, 0, 0), false},
		{"disjoint", date(20, 0, 0), date(22, 0, 0), false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			other, err := reservation.NewStay(c.checkIn, c.checkOut)
			require.NoError(t, err)
			assert.Equal(t, c.want, base.Overlaps(other))
			assert.Equal(t, c.want, other.Overlaps(base))
		})
	}
}

func TestNewReservation(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewReservationBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, reservation.StatusPending, actual.Status())
		assert.True(t, actual.TotalPrice().Equal(decimal.NewFromInt(300000)))
		assert.Nil(t, actual.CheckInTime())
		assert.Nil(t, actual.ActualPrice())
		assert.Equal(t, actual.CreatedAt(), actual.UpdatedAt())
	})

	t.Run("guest count validation", func(t *testing.T) {
		_, err := builder.NewReservationBuilder().WithGuests(0).BuildDomain()
		assert.ErrorIs(t, err, reservation.ErrInvalidGuestCount)
	})

	t.Run("negative nightly rate", func(t *testing.T) {
		_, err := builder.NewReservationBuilder().WithNightlyRate(decimal.NewFromInt(-1)).BuildDomain()
		assert.ErrorIs(t, err, reservation.ErrNegativeRate)
	})
}

func TestStatusTransitions(t *testing.T) {
	cases := []struct {
		from reservation.Status
		to   reservation.Status
		ok   bool
	}{
		{reservation.StatusPending, reservation.StatusConfirmed, true},
		{reservation.StatusPending, reservation.StatusCancelled, true},
		{reservation.StatusPending, reservation.StatusCheckedIn, false},
		{reservation.StatusPending, reservation.StatusCheckedOut, false},
		{reservation.StatusConfirmed, reservation.StatusCheckedIn, true},
		{reservation.StatusConfirmed, reservation.StatusCancelled, true},
		{reservation.StatusConfirmed, reservation.StatusCheckedOut, false},
		{reservation.StatusCheckedIn, reservation.StatusCheckedOut, true},
		{reservation.StatusCheckedIn, reservation.StatusCancelled, false},
		{reservation.StatusCheckedOut, reservation.StatusConfirmed, false},
		{reservation.StatusCancelled, reservation.StatusConfirmed, false},
		{reservation.StatusCancelled, reservation.StatusCancelled, false},
	}
	for _, c := range cases {
		t.Run(string(c.from)+" to "+string(c.to), func(t *testing.T) {
			assert.Equal(t, c.ok, c.from.CanTransition(c.to))
		})
	}

	t.Run("terminal statuses", func(t *testing.T) {
		assert.True(t, reservation.StatusCancelled.IsTerminal())
		assert.True(t, reservation.StatusCheckedOut.IsTerminal())
		assert.False(t, reservation.StatusPending.IsTerminal())
		assert.False(t, reservation.StatusConfirmed.IsTerminal())
		assert.False(t, reservation.StatusCheckedIn.IsTerminal())
	})
}

func TestReservationLifecycle(t *testing.T) {
	newPending := func(t *testing.T) *reservation.Reservation {
		t.Helper()
		res, err := builder.NewReservationBuilder().BuildDomain()
		require.NoError(t, err)
		return res
	}
	rate := decimal.NewFromInt(100000)
	expectedIn := date(1, 15, 0)
	expectedOut := date(4, 11, 0)

	t.Run("confirm a pending reservation", func(t *testing.T) {
		res := newPending(t)
		require.NoError(t, res.Confirm(date(1, 0, 0)))
		assert.Equal(t, reservation.StatusConfirmed, res.Status())
	})

	t.Run("confirm twice fails", func(t *testing.T) {
		res := newPending(t)
		require.NoError(t, res.Confirm(date(1, 0, 0)))
		assert.ErrorIs(t, res.Confirm(date(1, 0, 0)), reservation.ErrInvalidTransition)
	})

	t.Run("cancel from pending and confirmed", func(t *testing.T) {
		res := newPending(t)
		require.NoError(t, res.Cancel(date(1, 0, 0)))
		assert.Equal(t, reservation.StatusCancelled, res.Status())

		res = newPending(t)
		require.NoError(t, res.Confirm(date(1, 0, 0)))
		require.NoError(t, res.Cancel(date(1, 0, 0)))
		assert.Equal(t, reservation.StatusCancelled, res.Status())
	})

	t.Run("cancel a cancelled reservation fails", func(t *testing.T) {
		res := newPending(t)
		require.NoError(t, res.Cancel(date(1, 0, 0)))
		assert.ErrorIs(t, res.Cancel(date(1, 0, 0)), reservation.ErrInvalidTransition)
	})

	t.Run("check in on time", func(t *testing.T) {
		res := newPending(t)
		require.NoError(t, res.Confirm(date(1, 0, 0)))

		require.NoError(t, res.CheckIn(expectedIn, expectedIn))
		assert.Equal(t, reservation.StatusCheckedIn, res.Status())
		require.NotNil(t, res.CheckInTime())
		assert.Equal(t, expectedIn, *res.CheckInTime())
		assert.Equal(t, "On-time check-in", res.Note())
	})

	t.Run("early check-in is noted", func(t *testing.T) {
		res := newPending(t)
		require.NoError(t, res.Confirm(date(1, 0, 0)))

		at := expectedIn.Add(-4 * time.Hour)
		require.NoError(t, res.CheckIn(at, at))
		assert.Equal(t, "Early check-in by 4.00 hours", res.Note())
	})

	t.Run("check-in before confirmation fails", func(t *testing.T) {
		res := newPending(t)
		assert.ErrorIs(t, res.CheckIn(expectedIn, expectedIn), reservation.ErrInvalidTransition)
	})

	t.Run("check-in past the grace window fails", func(t *testing.T) {
		res := newPending(t)
		require.NoError(t, res.Confirm(date(1, 0, 0)))

		now := expectedIn.Add(reservation.CheckInGraceWindow + time.Minute)
		assert.ErrorIs(t, res.CheckIn(now, now), reservation.ErrCheckInWindowExpired)
		assert.Equal(t, reservation.StatusConfirmed, res.Status())
	})

	t.Run("check-in at the edge of the grace window succeeds", func(t *testing.T) {
		res := newPending(t)
		require.NoError(t, res.Confirm(date(1, 0, 0)))

		now := expectedIn.Add(reservation.CheckInGraceWindow)
		assert.NoError(t, res.CheckIn(now, now))
	})

	t.Run("check out settles surcharges and actual price", func(t *testing.T) {
		res := newPending(t)
		require.NoError(t, res.Confirm(date(1, 0, 0)))

		in := expectedIn.Add(-4 * time.Hour)
		require.NoError(t, res.CheckIn(in, in))

		out := expectedOut.Add(5 * time.Hour)
		breakdown, err := res.CheckOut(out, rate, out)
		require.NoError(t, err)

		assert.Equal(t, reservation.StatusCheckedOut, res.Status())
		assert.True(t, breakdown.BasePrice.Equal(decimal.NewFromInt(300000)))
		assert.True(t, breakdown.EarlyCheckInFee.Equal(decimal.NewFromInt(30000)))
		assert.True(t, breakdown.LateCheckOutFee.Equal(decimal.NewFromInt(50000)))

		require.NotNil(t, res.ActualPrice())
		assert.True(t, res.ActualPrice().Equal(decimal.NewFromInt(380000)))
		require.NotNil(t, res.EarlyCheckInSurcharge())
		assert.True(t, res.EarlyCheckInSurcharge().Equal(decimal.NewFromInt(30000)))
		require.NotNil(t, res.LateCheckOutSurcharge())
		assert.True(t, res.LateCheckOutSurcharge().Equal(decimal.NewFromInt(50000)))
		assert.Equal(t, "Early check-in by 4.00 hours\nLate check-out by 5.00 hours", res.Note())
	})

	t.Run("on-time check-out keeps the booked price", func(t *testing.T) {
		res := newPending(t)
		require.NoError(t, res.Confirm(date(1, 0, 0)))
		require.NoError(t, res.CheckIn(expectedIn, expectedIn))

		breakdown, err := res.CheckOut(expectedOut, rate, expectedOut)
		require.NoError(t, err)

		assert.True(t, breakdown.Total().Equal(res.TotalPrice()))
		assert.Equal(t, "On-time check-in\nOn-time check-out", res.Note())
	})

	t.Run("check-out without check-in fails", func(t *testing.T) {
		res := reservation.ReconstructReservation(
			uuid.New(), uuid.New(), uuid.New(),
			mustStay(t, expectedIn, expectedOut),
			reservation.StatusCheckedIn,
			decimal.NewFromInt(300000), 2, "",
			nil, nil, nil, nil, nil,
			false, date(1, 0, 0), date(1, 0, 0),
		)
		_, err := res.CheckOut(expectedOut, rate, expectedOut)
		assert.ErrorIs(t, err, reservation.ErrMissingCheckInTime)
	})

	t.Run("check-out from pending fails", func(t *testing.T) {
		res := newPending(t)
		_, err := res.CheckOut(expectedOut, rate, expectedOut)
		assert.ErrorIs(t, err, reservation.ErrInvalidTransition)
	})
}

func mustStay(t *testing.T, in, out time.Time) reservation.Stay {
	t.Helper()
	stay, err := reservation.NewStay(in, out)
	require.NoError(t, err)
	return stay
}
