//go:build unit

package room_test

import (
	"testing"

	"hotel-booking-api/internal/domain/room"
	"hotel-booking-api/tests/common/builder"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRoom(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewRoomBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, "101", actual.RoomNumber())
		assert.True(t, actual.IsAvailable())
		assert.False(t, actual.IsDeleted())
	})

	cases := []struct {
		name   string
		mutate func(*builder.RoomBuilder)
		errIs  error
	}{
		{
			name:   "empty room number",
			mutate: func(b *builder.RoomBuilder) { b.RoomNumber = "" },
			errIs:  room.ErrEmptyRoomNumber,
		},
		{
			name:   "whitespace room number",
			mutate: func(b *builder.RoomBuilder) { b.RoomNumber = "   " },
			errIs:  room.ErrEmptyRoomNumber,
		},
		{
			name:   "zero capacity",
			mutate: func(b *builder.RoomBuilder) { b.Capacity = 0 },
			errIs:  room.ErrInvalidCapacity,
		},
		{
			name:   "capacity above maximum",
			mutate: func(b *builder.RoomBuilder) { b.Capacity = room.MaxCapacity + 1 },
			errIs:  room.ErrInvalidCapacity,
		},
		{
			name:   "capacity at maximum",
			mutate: func(b *builder.RoomBuilder) { b.Capacity = room.MaxCapacity },
		},
		{
			name:   "negative nightly rate",
			mutate: func(b *builder.RoomBuilder) { b.PricePerNight = decimal.NewFromInt(-100) },
			errIs:  room.ErrNegativeRate,
		},
		{
			name:   "free room is allowed",
			mutate: func(b *builder.RoomBuilder) { b.PricePerNight = decimal.Zero },
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual, err := builder.NewRoomBuilder().With(c.mutate).BuildDomain()
			if c.errIs != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, c.errIs)
				assert.Nil(t, actual)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, actual)
		})
	}
}

func TestCanAccommodate(t *testing.T) {
	actual, err := builder.NewRoomBuilder().With(func(b *builder.RoomBuilder) { b.Capacity = 3 }).BuildDomain()
	require.NoError(t, err)

	assert.True(t, actual.CanAccommodate(1))
	assert.True(t, actual.CanAccommodate(3))
	assert.False(t, actual.CanAccommodate(4))
	assert.False(t, actual.CanAccommodate(0))
	assert.False(t, actual.CanAccommodate(-1))
}
