package reservation

import (
	"time"

	"github.com/shopspring/decimal"
)

// SurchargeTier is one band of the early check-in / late check-out fee
// schedule. Hours are measured relative to the expected check-in or
// check-out time; a band covers the half-open range [MinHours, MaxHours),
// with MaxHours <= 0 meaning unbounded above.
type SurchargeTier struct {
	MinHours float64
	MaxHours float64
	Rate     decimal.Decimal // fraction of the nightly rate
}

// Hours-early / hours-late surcharge policy. Arriving more than 9 hours
// early counts as the previous night and carries no surcharge here.
var (
	EarlyCheckInTiers = []SurchargeTier{
		{MinHours: 1, MaxHours: 5, Rate: decimal.NewFromFloat(0.3)},
		{MinHours: 5, MaxHours: 9, Rate: decimal.NewFromFloat(0.5)},
	}
	LateCheckOutTiers = []SurchargeTier{
		{MinHours: 0, MaxHours: 4, Rate: decimal.NewFromFloat(0.3)},
		{MinHours: 4, MaxHours: 7, Rate: decimal.NewFromFloat(0.5)},
		{MinHours: 7, MaxHours: 0, Rate: decimal.NewFromFloat(1.0)},
	}
)

type PriceBreakdown struct {
	Nights          int
	BasePrice       decimal.Decimal
	EarlyCheckInFee decimal.Decimal
	LateCheckOutFee decimal.Decimal
}

func (b PriceBreakdown) Total() decimal.Decimal {
	return b.BasePrice.Add(b.EarlyCheckInFee).Add(b.LateCheckOutFee)
}

// Nights counts whole days between the expected dates, ignoring time of day.
func Nights(checkIn, checkOut time.Time) int {
	in := truncateToDate(checkIn)
	out := truncateToDate(checkOut)
	return int(out.Sub(in).Hours() / 24)
}

func truncateToDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

func BasePrice(checkIn, checkOut time.Time, nightlyRate decimal.Decimal) decimal.Decimal {
	return nightlyRate.Mul(decimal.NewFromInt(int64(Nights(checkIn, checkOut))))
}

// CalculateStayPrice is the pricing calculator for a completed stay:
// base price over the expected dates plus tiered surcharges for checking
// in early or checking out late. Pure and deterministic; callers supply a
// non-negative nightly rate and expected check-in before expected check-out.
func CalculateStayPrice(
	actualCheckIn, expectedCheckIn time.Time,
	actualCheckOut, expectedCheckOut time.Time,
	nightlyRate decimal.Decimal,
) PriceBreakdown {
	b := PriceBreakdown{
		Nights:          Nights(expectedCheckIn, expectedCheckOut),
		EarlyCheckInFee: decimal.Zero,
		LateCheckOutFee: decimal.Zero,
	}
	b.BasePrice = nightlyRate.Mul(decimal.NewFromInt(int64(b.Nights)))

	if actualCheckIn.Before(expectedCheckIn) {
		hoursEarly := expectedCheckIn.Sub(actualCheckIn).Hours()
		b.EarlyCheckInFee = tierFee(EarlyCheckInTiers, hoursEarly, nightlyRate)
	}

	if actualCheckOut.After(expectedCheckOut) {
		hoursLate := actualCheckOut.Sub(expectedCheckOut).Hours()
		b.LateCheckOutFee = tierFee(LateCheckOutTiers, hoursLate, nightlyRate)
	}

	return b
}

func tierFee(tiers []SurchargeTier, hours float64, nightlyRate decimal.Decimal) decimal.Decimal {
	for _, t := range tiers {
		if hours >= t.MinHours && (t.MaxHours <= 0 || hours < t.MaxHours) {
			return nightlyRate.Mul(t.Rate)
		}
	}
	return decimal.Zero
}
