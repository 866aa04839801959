//go:build unit || e2e

package builder

import (
	"time"

	domhotel "hotel-booking-api/internal/domain/hotel"
	reqdto "hotel-booking-api/internal/handler/dto/request"
)

type HotelBuilder struct {
	Name        string
	Address     string
	City        string
	Country     string
	Description *string
	StarRating  *float64
	Now         time.Time
}

func NewHotelBuilder() *HotelBuilder {
	description := "A quiet hotel near the station."
	stars := 4.5
	return &HotelBuilder{
		Name:        "Grand Test Hotel",
		Address:     "1-2-3 Example Street",
		City:        "Tokyo",
		Country:     "Japan",
		Description: &description,
		StarRating:  &stars,
		Now:         time.Date(2026, 1, 10, 9, 0, 0, 0, time.UTC),
	}
}

func (b *HotelBuilder) With(mutate func(*HotelBuilder)) *HotelBuilder {
	mutate(b)
	return b
}

func (b *HotelBuilder) BuildDomain() (*domhotel.Hotel, error) {
	return domhotel.NewHotel(b.Name, b.Address, b.City, b.Country, b.Description, b.StarRating, b.Now)
}

func (b *HotelBuilder) BuildCreateRequestDTO() reqdto.CreateHotelRequest {
	return reqdto.CreateHotelRequest{
		Name:        b.Name,
		Address:     b.Address,
		City:        b.City,
		Country:     b.Country,
		Description: b.Description,
		StarRating:  b.StarRating,
	}
}
