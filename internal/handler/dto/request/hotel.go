package request

import (
	"time"

	"github.com/shopspring/decimal"
)

type CreateHotelRequest struct {
	Name        string   `json:"name" binding:"required"`
	Address     string   `json:"address" binding:"required"`
	City        string   `json:"city" binding:"required"`
	Country     string   `json:"country" binding:"required"`
	Description *string  `json:"description"`
	StarRating  *float64 `json:"star_rating" binding:"omitempty,gt=0,lte=5"`
}

type UpdateHotelRequest struct {
	Name        string   `json:"name" binding:"required"`
	Address     string   `json:"address" binding:"required"`
	City        string   `json:"city" binding:"required"`
	Country     string   `json:"country" binding:"required"`
	Description *string  `json:"description"`
	StarRating  *float64 `json:"star_rating" binding:"omitempty,gt=0,lte=5"`
}

type ListHotelsQuery struct {
	City     string `form:"city"`
	Country  string `form:"country"`
	Page     int    `form:"page,default=1" binding:"omitempty,min=1"`
	PageSize int    `form:"page_size,default=20" binding:"omitempty,min=1,max=100"`
}

type CreateRoomRequest struct {
	RoomNumber    string          `json:"room_number" binding:"required"`
	Capacity      int             `json:"capacity" binding:"required,min=1,max=100"`
	PricePerNight decimal.Decimal `json:"price_per_night" binding:"required"`
}

type UpdateRoomRequest struct {
	RoomNumber    string          `json:"room_number" binding:"required"`
	Capacity      int             `json:"capacity" binding:"required,min=1,max=100"`
	PricePerNight decimal.Decimal `json:"price_per_night" binding:"required"`
	IsAvailable   bool            `json:"is_available"`
}

type SearchRoomsQuery struct {
	City     string    `form:"city"`
	Country  string    `form:"country"`
	CheckIn  time.Time `form:"check_in" binding:"required" time_format:"2006-01-02"`
	CheckOut time.Time `form:"check_out" binding:"required" time_format:"2006-01-02"`
	Guests   int       `form:"guests,default=1" binding:"omitempty,min=1"`
	Page     int       `form:"page,default=1" binding:"omitempty,min=1"`
	PageSize int       `form:"page_size,default=20" binding:"omitempty,min=1,max=100"`
}
