package repository

import (
	"context"
	"time"

	"hotel-booking-api/internal/domain/review"
	"hotel-booking-api/internal/infra"
	"hotel-booking-api/internal/infra/db"
	"hotel-booking-api/internal/pkg/pgconv"
	"hotel-booking-api/internal/usecase/readmodel"

	"github.com/google/uuid"
)

type ReviewRepository struct {
	db db.DBTX
}

func NewReviewRepository(dbtx db.DBTX) *ReviewRepository {
	return &ReviewRepository{db: dbtx}
}

func (r *ReviewRepository) Create(ctx context.Context, rv *review.Review) (uuid.UUID, error) {
	const q = `
		INSERT INTO reviews (id, hotel_id, user_id, rating, comment, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`

	var id uuid.UUID
	err := r.db.QueryRow(ctx, q,
		rv.ID(), rv.HotelID(), rv.UserID(), rv.Rating(), rv.Comment(),
		rv.CreatedAt(), rv.UpdatedAt(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create review", err)
	}

	return id, nil
}

func (r *ReviewRepository) Update(ctx context.Context, rv *review.Review) error {
	const q = `
		UPDATE reviews SET rating = $2, comment = $3, updated_at = $4
		WHERE id = $1 AND NOT is_deleted`

	tag, err := r.db.Exec(ctx, q, rv.ID(), rv.Rating(), rv.Comment(), rv.UpdatedAt())
	if err != nil {
		return infra.WrapRepoErr("failed to update review", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("review not found", nil, infra.KindNotFound)
	}

	return nil
}

func (r *ReviewRepository) SoftDelete(ctx context.Context, id uuid.UUID, now time.Time) error {
	const q = `UPDATE reviews SET is_deleted = TRUE, updated_at = $2 WHERE id = $1 AND NOT is_deleted`

	tag, err := r.db.Exec(ctx, q, id, now)
	if err != nil {
		return infra.WrapRepoErr("failed to delete review", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("review not found", nil, infra.KindNotFound)
	}

	return nil
}

func (r *ReviewRepository) FindDomainByID(ctx context.Context, id uuid.UUID) (*review.Review, error) {
	const q = `
		SELECT id, hotel_id, user_id, rating, comment, is_deleted, created_at, updated_at
		FROM reviews
		WHERE id = $1 AND NOT is_deleted`

	var (
		rid, hotelID, userID uuid.UUID
		rating               int
		comment              string
		deleted              bool
		createdAt, updatedAt time.Time
	)
	err := r.db.QueryRow(ctx, q, id).Scan(&rid, &hotelID, &userID, &rating, &comment, &deleted, &createdAt, &updatedAt)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("review not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find review", err)
	}

	return review.ReconstructReview(rid, hotelID, userID, rating, comment, deleted, createdAt, updatedAt), nil
}

func (r *ReviewRepository) ListByHotel(ctx context.Context, hotelID uuid.UUID, page, pageSize int) ([]*readmodel.ReviewRM, error) {
	const q = `
		SELECT rv.id, rv.hotel_id, rv.user_id, u.email, rv.rating, rv.comment, rv.created_at, rv.updated_at
		FROM reviews rv
		JOIN users u ON u.id = rv.user_id
		WHERE rv.hotel_id = $1 AND NOT rv.is_deleted
		ORDER BY rv.created_at DESC
		LIMIT $2 OFFSET $3`

	rows, err := r.db.Query(ctx, q, hotelID, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reviews", err)
	}
	defer rows.Close()

	var result []*readmodel.ReviewRM
	for rows.Next() {
		var item readmodel.ReviewRM
		if err := rows.Scan(
			&item.ID, &item.HotelID, &item.UserID, &item.UserEmail,
			&item.Rating, &item.Comment, &item.CreatedAt, &item.UpdatedAt,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan review row", err)
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate review rows", err)
	}

	return result, nil
}
