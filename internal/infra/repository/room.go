package repository

import (
	"context"
	"time"

	"hotel-booking-api/internal/domain/room"
	"hotel-booking-api/internal/infra"
	"hotel-booking-api/internal/infra/db"
	"hotel-booking-api/internal/pkg/pgconv"
	"hotel-booking-api/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

type RoomRepository struct {
	db db.DBTX
}

func NewRoomRepository(dbtx db.DBTX) *RoomRepository {
	return &RoomRepository{db: dbtx}
}

func (r *RoomRepository) Create(ctx context.Context, rm *room.Room) (uuid.UUID, error) {
	const q = `
		INSERT INTO rooms (id, hotel_id, room_number, capacity, price_per_night, is_available, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`

	var id uuid.UUID
	err := r.db.QueryRow(ctx, q,
		rm.ID(), rm.HotelID(), rm.RoomNumber(), rm.Capacity(),
		pgconv.DecimalToNumeric(rm.PricePerNight()), rm.IsAvailable(),
		rm.CreatedAt(), rm.UpdatedAt(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create room", err)
	}

	return id, nil
}

func (r *RoomRepository) Update(ctx context.Context, rm *room.Room) error {
	const q = `
		UPDATE rooms SET
			room_number = $2,
			capacity = $3,
			price_per_night = $4,
			is_available = $5,
			updated_at = $6
		WHERE id = $1 AND NOT is_deleted`

	tag, err := r.db.Exec(ctx, q,
		rm.ID(), rm.RoomNumber(), rm.Capacity(),
		pgconv.DecimalToNumeric(rm.PricePerNight()), rm.IsAvailable(), rm.UpdatedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update room", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("room not found", nil, infra.KindNotFound)
	}

	return nil
}

func (r *RoomRepository) SoftDelete(ctx context.Context, id uuid.UUID, now time.Time) error {
	const q = `UPDATE rooms SET is_deleted = TRUE, updated_at = $2 WHERE id = $1 AND NOT is_deleted`

	tag, err := r.db.Exec(ctx, q, id, now)
	if err != nil {
		return infra.WrapRepoErr("failed to delete room", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("room not found", nil, infra.KindNotFound)
	}

	return nil
}

func (r *RoomRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*room.Room, error) {
	const q = `
		SELECT id, hotel_id, room_number, capacity, price_per_night, is_available, is_deleted, created_at, updated_at
		FROM rooms
		WHERE id = $1 AND NOT is_deleted
		FOR UPDATE`

	return r.scanRoom(ctx, q, id)
}

func (r *RoomRepository) SetAvailability(ctx context.Context, roomID uuid.UUID, available bool, now time.Time) error {
	const q = `UPDATE rooms SET is_available = $2, updated_at = $3 WHERE id = $1 AND NOT is_deleted`

	tag, err := r.db.Exec(ctx, q, roomID, available, now)
	if err != nil {
		return infra.WrapRepoErr("failed to update room availability", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("room not found", nil, infra.KindNotFound)
	}

	return nil
}

func (r *RoomRepository) scanRoom(ctx context.Context, q string, args ...any) (*room.Room, error) {
	var (
		id, hotelID          uuid.UUID
		roomNumber           string
		capacity             int
		pricePerNight        pgtype.Numeric
		isAvailable, deleted bool
		createdAt, updatedAt time.Time
	)

	err := r.db.QueryRow(ctx, q, args...).Scan(
		&id, &hotelID, &roomNumber, &capacity, &pricePerNight,
		&isAvailable, &deleted, &createdAt, &updatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("room not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find room", err)
	}

	rate, err := pgconv.DecimalFromNumeric(pricePerNight)
	if err != nil {
		return nil, infra.WrapRepoErr("stored room has invalid nightly rate", err)
	}

	return room.ReconstructRoom(id, hotelID, roomNumber, capacity, rate, isAvailable, deleted, createdAt, updatedAt), nil
}

// ---------------------------------------------------------------------------
// Read side
// ---------------------------------------------------------------------------

const roomViewColumns = `
	r.id, r.hotel_id, h.name, r.room_number, r.capacity, r.price_per_night, r.is_available, r.created_at, r.updated_at`

func (r *RoomRepository) FindByID(ctx context.Context, id uuid.UUID) (*readmodel.RoomRM, error) {
	q := `SELECT` + roomViewColumns + `
	FROM rooms r
	JOIN hotels h ON h.id = r.hotel_id
	WHERE r.id = $1 AND NOT r.is_deleted`

	rows, err := r.db.Query(ctx, q, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find room view", err)
	}
	defer rows.Close()

	items, err := collectRoomRMs(rows)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, infra.WrapRepoErr("room not found", nil, infra.KindNotFound)
	}

	return items[0], nil
}

func (r *RoomRepository) ListByHotel(ctx context.Context, hotelID uuid.UUID) ([]*readmodel.RoomRM, error) {
	q := `SELECT` + roomViewColumns + `
	FROM rooms r
	JOIN hotels h ON h.id = r.hotel_id
	WHERE r.hotel_id = $1 AND NOT r.is_deleted
	ORDER BY r.room_number`

	rows, err := r.db.Query(ctx, q, hotelID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list rooms", err)
	}
	defer rows.Close()

	return collectRoomRMs(rows)
}

// SearchAvailable returns rooms with enough capacity and no overlapping
// active reservation for the requested stay. The overlap subquery is the
// authority; rooms.is_available is ignored here.
func (r *RoomRepository) SearchAvailable(ctx context.Context, filter readmodel.RoomSearchFilter) ([]*readmodel.RoomRM, error) {
	q := `SELECT` + roomViewColumns + `
	FROM rooms r
	JOIN hotels h ON h.id = r.hotel_id
	WHERE NOT r.is_deleted
	  AND NOT h.is_deleted
	  AND r.capacity >= $1
	  AND ($2::text = '' OR h.city ILIKE $2)
	  AND ($3::text = '' OR h.country ILIKE $3)
	  AND NOT EXISTS (
		SELECT 1 FROM reservations res
		WHERE res.room_id = r.id
		  AND res.status <> 'cancelled'
		  AND NOT res.is_deleted
		  AND res.check_in_date < $5
		  AND res.check_out_date > $4
	  )
	ORDER BY r.price_per_night, r.room_number
	LIMIT $6 OFFSET $7`

	rows, err := r.db.Query(ctx, q,
		filter.Guests, filter.City, filter.Country,
		filter.CheckIn, filter.CheckOut,
		filter.PageSize, (filter.Page-1)*filter.PageSize,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to search available rooms", err)
	}
	defer rows.Close()

	return collectRoomRMs(rows)
}

func collectRoomRMs(rows pgx.Rows) ([]*readmodel.RoomRM, error) {
	var result []*readmodel.RoomRM
	for rows.Next() {
		var (
			item          readmodel.RoomRM
			pricePerNight pgtype.Numeric
		)
		if err := rows.Scan(
			&item.ID, &item.HotelID, &item.HotelName, &item.RoomNumber, &item.Capacity,
			&pricePerNight, &item.IsAvailable, &item.CreatedAt, &item.UpdatedAt,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan room row", err)
		}
		rate, err := pgconv.DecimalFromNumeric(pricePerNight)
		if err != nil {
			return nil, infra.WrapRepoErr("stored room has invalid nightly rate", err)
		}
		item.PricePerNight = rate
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate room rows", err)
	}

	return result, nil
}
