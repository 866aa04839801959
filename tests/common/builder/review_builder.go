//go:build unit || e2e

package builder

import (
	"time"

	domreview "hotel-booking-api/internal/domain/review"
	reqdto "hotel-booking-api/internal/handler/dto/request"

	"github.com/google/uuid"
)

type ReviewBuilder struct {
	HotelID uuid.UUID
	UserID  uuid.UUID
	Rating  int
	Comment string
	Now     time.Time
}

func NewReviewBuilder() *ReviewBuilder {
	return &ReviewBuilder{
		HotelID: uuid.New(),
		UserID:  uuid.New(),
		Rating:  5,
		Comment: "Excellent stay!",
		Now:     time.Date(2026, 3, 5, 12, 0, 0, 0, time.UTC),
	}
}

func (b *ReviewBuilder) With(mutate func(*ReviewBuilder)) *ReviewBuilder {
	mutate(b)
	return b
}

func (b *ReviewBuilder) WithRating(rating int) *ReviewBuilder {
	b.Rating = rating
	return b
}

func (b *ReviewBuilder) WithComment(comment string) *ReviewBuilder {
	b.Comment = comment
	return b
}

func (b *ReviewBuilder) BuildDomain() (*domreview.Review, error) {
	return domreview.NewReview(b.HotelID, b.UserID, b.Rating, b.Comment, b.Now)
}

func (b *ReviewBuilder) BuildCreateRequestDTO() reqdto.CreateReviewRequest {
	return reqdto.CreateReviewRequest{
		Rating:  b.Rating,
		Comment: b.Comment,
	}
}
