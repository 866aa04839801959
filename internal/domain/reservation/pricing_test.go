//go:build unit

package reservation_test

import (
	"testing"
	"time"

	"hotel-booking-api/internal/domain/reservation"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(day, hour, minute int) time.Time {
	return time.Date(2026, 3, day, hour, minute, 0, 0, time.UTC)
}

func TestNights(t *testing.T) {
	cases := []struct {
		name     string
		checkIn  time.Time
		checkOut time.Time
		want     int
	}{
		{"three nights ignoring time of day", date(1, 15, 0), date(4, 11, 0), 3},
		{"single night", date(1, 15, 0), date(2, 11, 0), 1},
		{"late check-in does not shorten the stay", date(1, 23, 59), date(4, 0, 1), 3},
		{"two weeks", date(1, 15, 0), date(15, 11, 0), 14},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, reservation.Nights(c.checkIn, c.checkOut))
		})
	}
}

func TestCalculateStayPrice(t *testing.T) {
	rate := decimal.NewFromInt(100000)
	expectedIn := date(1, 15, 0)
	expectedOut := date(4, 11, 0)

	type testCase struct {
		name      string
		actualIn  time.Time
		actualOut time.Time
		rate      decimal.Decimal
		wantBase  int64
		wantEarly int64
		wantLate  int64
	}

	cases := []testCase{
		{
			name:      "on-time stay has no surcharges",
			actualIn:  expectedIn,
			actualOut: expectedOut,
			rate:      rate,
			wantBase:  300000,
		},
		{
			name:      "under one hour early is free",
			actualIn:  expectedIn.Add(-30 * time.Minute),
			actualOut: expectedOut,
			rate:      rate,
			wantBase:  300000,
		},
		{
			name:      "four hours early charges 30 percent of the nightly rate",
			actualIn:  expectedIn.Add(-4 * time.Hour),
			actualOut: expectedOut,
			rate:      rate,
			wantBase:  300000,
			wantEarly: 30000,
		},
		{
			name:      "five hours early moves to the 50 percent band",
			actualIn:  expectedIn.Add(-5 * time.Hour),
			actualOut: expectedOut,
			rate:      rate,
			wantBase:  300000,
			wantEarly: 50000,
		},
		{
			name:      "eight hours early stays in the 50 percent band",
			actualIn:  expectedIn.Add(-8 * time.Hour),
			actualOut: expectedOut,
			rate:      rate,
			wantBase:  300000,
			wantEarly: 50000,
		},
		{
			name:      "nine hours early counts as the previous night, no surcharge",
			actualIn:  expectedIn.Add(-9 * time.Hour),
			actualOut: expectedOut,
			rate:      rate,
			wantBase:  300000,
		},
		{
			name:      "two hours late charges 30 percent",
			actualIn:  expectedIn,
			actualOut: expectedOut.Add(2 * time.Hour),
			rate:      rate,
			wantBase:  300000,
			wantLate:  30000,
		},
		{
			name:      "four hours late moves to the 50 percent band",
			actualIn:  expectedIn,
			actualOut: expectedOut.Add(4 * time.Hour),
			rate:      rate,
			wantBase:  300000,
			wantLate:  50000,
		},
		{
			name:      "seven hours late charges a full night",
			actualIn:  expectedIn,
			actualOut: expectedOut.Add(7 * time.Hour),
			rate:      rate,
			wantBase:  300000,
			wantLate:  100000,
		},
		{
			name:      "twelve hours late still charges a full night",
			actualIn:  expectedIn,
			actualOut: expectedOut.Add(12 * time.Hour),
			rate:      rate,
			wantBase:  300000,
			wantLate:  100000,
		},
		{
			name:      "early arrival and late departure stack",
			actualIn:  expectedIn.Add(-4 * time.Hour),
			actualOut: expectedOut.Add(5 * time.Hour),
			rate:      rate,
			wantBase:  300000,
			wantEarly: 30000,
			wantLate:  50000,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := reservation.CalculateStayPrice(c.actualIn, expectedIn, c.actualOut, expectedOut, c.rate)

			assert.True(t, got.BasePrice.Equal(decimal.NewFromInt(c.wantBase)),
				"base price: want %d, got %s", c.wantBase, got.BasePrice)
			assert.True(t, got.EarlyCheckInFee.Equal(decimal.NewFromInt(c.wantEarly)),
				"early fee: want %d, got %s", c.wantEarly, got.EarlyCheckInFee)
			assert.True(t, got.LateCheckOutFee.Equal(decimal.NewFromInt(c.wantLate)),
				"late fee: want %d, got %s", c.wantLate, got.LateCheckOutFee)

			wantTotal := decimal.NewFromInt(c.wantBase + c.wantEarly + c.wantLate)
			assert.True(t, got.Total().Equal(wantTotal),
				"total: want %s, got %s", wantTotal, got.Total())
		})
	}

	t.Run("premium room settles at 1,250,000 for two nights with five hours late", func(t *testing.T) {
		premium := decimal.NewFromInt(500000)
		in := date(10, 15, 0)
		out := date(12, 11, 0)

		got := reservation.CalculateStayPrice(in, in, out.Add(5*time.Hour), out, premium)

		require.Equal(t, 2, got.Nights)
		assert.True(t, got.BasePrice.Equal(decimal.NewFromInt(1000000)))
		assert.True(t, got.LateCheckOutFee.Equal(decimal.NewFromInt(250000)))
		assert.True(t, got.Total().Equal(decimal.NewFromInt(1250000)))
	})

	t.Run("leaving before the expected check-out gives no refund", func(t *testing.T) {
		got := reservation.CalculateStayPrice(expectedIn, expectedIn, expectedOut.Add(-20*time.Hour), expectedOut, rate)

		assert.True(t, got.BasePrice.Equal(decimal.NewFromInt(300000)))
		assert.True(t, got.LateCheckOutFee.IsZero())
		assert.True(t, got.Total().Equal(decimal.NewFromInt(300000)))
	})
}
