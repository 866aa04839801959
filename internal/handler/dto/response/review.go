package response

import (
	"log/slog"
	"time"

	"hotel-booking-api/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type ReviewResponse struct {
	ID        uuid.UUID `json:"id"`
	HotelID   uuid.UUID `json:"hotelId"`
	UserID    uuid.UUID `json:"userId"`
	UserEmail string    `json:"userEmail"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func FromReviewRMs(rms []*readmodel.ReviewRM) []*ReviewResponse {
	result := make([]*ReviewResponse, 0, len(rms))
	for _, rm := range rms {
		var resp ReviewResponse
		if err := copier.Copy(&resp, rm); err != nil {
			slog.Error("failed to map review read model", "error", err.Error())
			continue
		}
		result = append(result, &resp)
	}
	return result
}
