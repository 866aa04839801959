package review

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidRating  = errors.New("rating must be between 1 and 5")
	ErrEmptyComment   = errors.New("comment cannot be empty")
	ErrCommentTooLong = errors.New("comment exceeds maximum length")
)

const MaxCommentLength = 2000

type Review struct {
	id        uuid.UUID
	hotelID   uuid.UUID
	userID    uuid.UUID
	rating    int
	comment   string
	deleted   bool
	createdAt time.Time
	updatedAt time.Time
}

func NewReview(hotelID, userID uuid.UUID, rating int, comment string, now time.Time) (*Review, error) {
	if rating < 1 || rating > 5 {
		return nil, ErrInvalidRating
	}
	comment = strings.TrimSpace(comment)
	if comment == "" {
		return nil, ErrEmptyComment
	}
	if len(comment) > MaxCommentLength {
		return nil, ErrCommentTooLong
	}

	return &Review{
		id:        uuid.New(),
		hotelID:   hotelID,
		userID:    userID,
		rating:    rating,
		comment:   comment,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructReview(id, hotelID, userID uuid.UUID, rating int, comment string, deleted bool, createdAt, updatedAt time.Time) *Review {
	return &Review{
		id:        id,
		hotelID:   hotelID,
		userID:    userID,
		rating:    rating,
		comment:   comment,
		deleted:   deleted,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

// Revise updates rating and comment, re-running validation.
func (r *Review) Revise(rating int, comment string, now time.Time) error {
	if rating < 1 || rating > 5 {
		return ErrInvalidRating
	}
	comment = strings.TrimSpace(comment)
	if comment == "" {
		return ErrEmptyComment
	}
	if len(comment) > MaxCommentLength {
		return ErrCommentTooLong
	}

	r.rating = rating
	r.comment = comment
	r.updatedAt = now
	return nil
}

func (r *Review) IsOwnedBy(userID uuid.UUID) bool {
	return r.userID == userID
}

func (r *Review) ID() uuid.UUID        { return r.id }
func (r *Review) HotelID() uuid.UUID   { return r.hotelID }
func (r *Review) UserID() uuid.UUID    { return r.userID }
func (r *Review) Rating() int          { return r.rating }
func (r *Review) Comment() string      { return r.comment }
func (r *Review) IsDeleted() bool      { return r.deleted }
func (r *Review) CreatedAt() time.Time { return r.createdAt }
func (r *Review) UpdatedAt() time.Time { return r.updatedAt }
