package repository

import (
	"context"
	"time"

	"hotel-booking-api/internal/domain/hotel"
	"hotel-booking-api/internal/infra"
	"hotel-booking-api/internal/infra/db"
	"hotel-booking-api/internal/pkg/pgconv"
	"hotel-booking-api/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

type HotelRepository struct {
	db db.DBTX
}

func NewHotelRepository(dbtx db.DBTX) *HotelRepository {
	return &HotelRepository{db: dbtx}
}

func (r *HotelRepository) Create(ctx context.Context, h *hotel.Hotel) (uuid.UUID, error) {
	const q = `
		INSERT INTO hotels (id, name, address, city, country, description, star_rating, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id`

	var id uuid.UUID
	err := r.db.QueryRow(ctx, q,
		h.ID(), h.Name(), h.Address(), h.City(), h.Country(),
		pgconv.StringPtrToPgtype(h.Description()), h.StarRating(),
		h.CreatedAt(), h.UpdatedAt(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create hotel", err)
	}

	return id, nil
}

func (r *HotelRepository) Update(ctx context.Context, h *hotel.Hotel) error {
	const q = `
		UPDATE hotels SET
			name = $2, address = $3, city = $4, country = $5,
			description = $6, star_rating = $7, updated_at = $8
		WHERE id = $1 AND NOT is_deleted`

	tag, err := r.db.Exec(ctx, q,
		h.ID(), h.Name(), h.Address(), h.City(), h.Country(),
		pgconv.StringPtrToPgtype(h.Description()), h.StarRating(), h.UpdatedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update hotel", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("hotel not found", nil, infra.KindNotFound)
	}

	return nil
}

func (r *HotelRepository) SoftDelete(ctx context.Context, id uuid.UUID, now time.Time) error {
	const q = `UPDATE hotels SET is_deleted = TRUE, updated_at = $2 WHERE id = $1 AND NOT is_deleted`

	tag, err := r.db.Exec(ctx, q, id, now)
	if err != nil {
		return infra.WrapRepoErr("failed to delete hotel", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("hotel not found", nil, infra.KindNotFound)
	}

	return nil
}

func (r *HotelRepository) FindDomainByID(ctx context.Context, id uuid.UUID) (*hotel.Hotel, error) {
	const q = `
		SELECT id, name, address, city, country, description, star_rating, is_deleted, created_at, updated_at
		FROM hotels
		WHERE id = $1 AND NOT is_deleted`

	var (
		hid                  uuid.UUID
		name, address        string
		city, country        string
		description          pgtype.Text
		starRating           *float64
		deleted              bool
		createdAt, updatedAt time.Time
	)
	err := r.db.QueryRow(ctx, q, id).Scan(
		&hid, &name, &address, &city, &country,
		&description, &starRating, &deleted, &createdAt, &updatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("hotel not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find hotel", err)
	}

	return hotel.ReconstructHotel(hid, name, address, city, country,
		pgconv.StringPtrFromPgtype(description), starRating, deleted, createdAt, updatedAt), nil
}

func (r *HotelRepository) FindByID(ctx context.Context, id uuid.UUID) (*readmodel.HotelRM, error) {
	const q = hotelViewQuery + ` WHERE id = $1 AND NOT is_deleted`

	rows, err := r.db.Query(ctx, q, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find hotel view", err)
	}
	defer rows.Close()

	items, err := collectHotelRMs(rows)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, infra.WrapRepoErr("hotel not found", nil, infra.KindNotFound)
	}

	return items[0], nil
}

const hotelViewQuery = `
	SELECT id, name, address, city, country, description, star_rating, created_at, updated_at
	FROM hotels`

func (r *HotelRepository) List(ctx context.Context, city, country string, page, pageSize int) ([]*readmodel.HotelRM, error) {
	const q = hotelViewQuery + `
	WHERE NOT is_deleted
	  AND ($1::text = '' OR city ILIKE $1)
	  AND ($2::text = '' OR country ILIKE $2)
	ORDER BY name
	LIMIT $3 OFFSET $4`

	rows, err := r.db.Query(ctx, q, city, country, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list hotels", err)
	}
	defer rows.Close()

	return collectHotelRMs(rows)
}

func collectHotelRMs(rows pgx.Rows) ([]*readmodel.HotelRM, error) {
	var result []*readmodel.HotelRM
	for rows.Next() {
		var (
			item        readmodel.HotelRM
			description pgtype.Text
		)
		if err := rows.Scan(
			&item.ID, &item.Name, &item.Address, &item.City, &item.Country,
			&description, &item.StarRating, &item.CreatedAt, &item.UpdatedAt,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan hotel row", err)
		}
		item.Description = pgconv.StringPtrFromPgtype(description)
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate hotel rows", err)
	}

	return result, nil
}
