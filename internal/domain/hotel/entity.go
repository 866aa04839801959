package hotel

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyName         = errors.New("hotel name cannot be empty")
	ErrEmptyAddress      = errors.New("hotel address cannot be empty")
	ErrEmptyCity         = errors.New("hotel city cannot be empty")
	ErrEmptyCountry      = errors.New("hotel country cannot be empty")
	ErrInvalidStarRating = errors.New("star rating must be between 0.1 and 5")
)

type Hotel struct {
	id          uuid.UUID
	name        string
	address     string
	city        string
	country     string
	description *string
	starRating  *float64
	deleted     bool
	createdAt   time.Time
	updatedAt   time.Time
}

func NewHotel(name, address, city, country string, description *string, starRating *float64, now time.Time) (*Hotel, error) {
	name = strings.TrimSpace(name)
	address = strings.TrimSpace(address)
	city = strings.TrimSpace(city)
	country = strings.TrimSpace(country)

	switch {
	case name == "":
		return nil, ErrEmptyName
	case address == "":
		return nil, ErrEmptyAddress
	case city == "":
		return nil, ErrEmptyCity
	case country == "":
		return nil, ErrEmptyCountry
	}
	if starRating != nil && (*starRating < 0.1 || *starRating > 5) {
		return nil, ErrInvalidStarRating
	}

	return &Hotel{
		id:          uuid.New(),
		name:        name,
		address:     address,
		city:        city,
		country:     country,
		description: description,
		starRating:  starRating,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func ReconstructHotel(
	id uuid.UUID,
	name, address, city, country string,
	description *string,
	starRating *float64,
	deleted bool,
	createdAt, updatedAt time.Time,
) *Hotel {
	return &Hotel{
		id:          id,
		name:        name,
		address:     address,
		city:        city,
		country:     country,
		description: description,
		starRating:  starRating,
		deleted:     deleted,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

func (h *Hotel) ID() uuid.UUID        { return h.id }
func (h *Hotel) Name() string         { return h.name }
func (h *Hotel) Address() string      { return h.address }
func (h *Hotel) City() string         { return h.city }
func (h *Hotel) Country() string      { return h.country }
func (h *Hotel) Description() *string { return h.description }
func (h *Hotel) StarRating() *float64 { return h.starRating }
func (h *Hotel) IsDeleted() bool      { return h.deleted }
func (h *Hotel) CreatedAt() time.Time { return h.createdAt }
func (h *Hotel) UpdatedAt() time.Time { return h.updatedAt }
