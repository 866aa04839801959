package repository

import (
	"context"
	"time"

	"hotel-booking-api/internal/domain/reservation"
	"hotel-booking-api/internal/infra"
	"hotel-booking-api/internal/infra/db"
	"hotel-booking-api/internal/pkg/pgconv"
	"hotel-booking-api/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type ReservationRepository struct {
	db db.DBTX
}

func NewReservationRepository(dbtx db.DBTX) *ReservationRepository {
	return &ReservationRepository{db: dbtx}
}

func (r *ReservationRepository) Create(ctx context.Context, res *reservation.Reservation) (uuid.UUID, error) {
	const q = `
		INSERT INTO reservations (
			id, room_id, user_id, check_in_date, check_out_date,
			status, total_price, number_of_guests, note, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id`

	var id uuid.UUID
	err := r.db.QueryRow(ctx, q,
		res.ID(), res.RoomID(), res.UserID(),
		res.Stay().CheckIn(), res.Stay().CheckOut(),
		res.Status().String(), pgconv.DecimalToNumeric(res.TotalPrice()),
		res.Guests(), res.Note(), res.CreatedAt(), res.UpdatedAt(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create reservation", err)
	}

	return id, nil
}

func (r *ReservationRepository) Update(ctx context.Context, res *reservation.Reservation) error {
	const q = `
		UPDATE reservations SET
			status = $2,
			note = $3,
			check_in_time = $4,
			check_out_time = $5,
			early_check_in_surcharge = $6,
			late_check_out_surcharge = $7,
			actual_price = $8,
			updated_at = $9
		WHERE id = $1 AND NOT is_deleted`

	tag, err := r.db.Exec(ctx, q,
		res.ID(), res.Status().String(), res.Note(),
		pgconv.TimePtrToPgtype(res.CheckInTime()),
		pgconv.TimePtrToPgtype(res.CheckOutTime()),
		pgconv.DecimalPtrToNumeric(res.EarlyCheckInSurcharge()),
		pgconv.DecimalPtrToNumeric(res.LateCheckOutSurcharge()),
		pgconv.DecimalPtrToNumeric(res.ActualPrice()),
		res.UpdatedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update reservation", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
	}

	return nil
}

func (r *ReservationRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error) {
	const q = `
		SELECT id, room_id, user_id, check_in_date, check_out_date,
		       status, total_price, number_of_guests, note,
		       check_in_time, check_out_time,
		       early_check_in_surcharge, late_check_out_surcharge, actual_price,
		       is_deleted, created_at, updated_at
		FROM reservations
		WHERE id = $1 AND NOT is_deleted
		FOR UPDATE`

	return r.scanReservation(ctx, q, id)
}

func (r *ReservationRepository) ExistsOverlapping(ctx context.Context, roomID uuid.UUID, stay reservation.Stay) (bool, error) {
	// Half-open overlap: [a,b) and [c,d) overlap iff a < d AND c < b.
	const q = `
		SELECT EXISTS (
			SELECT 1 FROM reservations
			WHERE room_id = $1
			  AND status <> 'cancelled'
			  AND NOT is_deleted
			  AND check_in_date < $3
			  AND check_out_date > $2
		)`

	var exists bool
	err := r.db.QueryRow(ctx, q, roomID, stay.CheckIn(), stay.CheckOut()).Scan(&exists)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check overlapping reservations", err)
	}

	return exists, nil
}

func (r *ReservationRepository) scanReservation(ctx context.Context, q string, args ...any) (*reservation.Reservation, error) {
	var (
		id, roomID, userID   uuid.UUID
		checkInDate          time.Time
		checkOutDate         time.Time
		status               string
		totalPrice           pgtype.Numeric
		guests               int
		note                 string
		checkInTime          pgtype.Timestamptz
		checkOutTime         pgtype.Timestamptz
		earlySurcharge       pgtype.Numeric
		lateSurcharge        pgtype.Numeric
		actualPrice          pgtype.Numeric
		deleted              bool
		createdAt, updatedAt time.Time
	)

	err := r.db.QueryRow(ctx, q, args...).Scan(
		&id, &roomID, &userID, &checkInDate, &checkOutDate,
		&status, &totalPrice, &guests, &note,
		&checkInTime, &checkOutTime,
		&earlySurcharge, &lateSurcharge, &actualPrice,
		&deleted, &createdAt, &updatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reservation", err)
	}

	stay, err := reservation.NewStay(checkInDate, checkOutDate)
	if err != nil {
		return nil, infra.WrapRepoErr("stored reservation has invalid stay dates", err)
	}

	total, err := pgconv.DecimalFromNumeric(totalPrice)
	if err != nil {
		return nil, infra.WrapRepoErr("stored reservation has invalid total price", err)
	}
	early, err := pgconv.DecimalPtrFromNumeric(earlySurcharge)
	if err != nil {
		return nil, infra.WrapRepoErr("stored reservation has invalid early surcharge", err)
	}
	late, err := pgconv.DecimalPtrFromNumeric(lateSurcharge)
	if err != nil {
		return nil, infra.WrapRepoErr("stored reservation has invalid late surcharge", err)
	}
	actual, err := pgconv.DecimalPtrFromNumeric(actualPrice)
	if err != nil {
		return nil, infra.WrapRepoErr("stored reservation has invalid actual price", err)
	}

	return reservation.ReconstructReservation(
		id, roomID, userID,
		stay,
		reservation.Status(status),
		total,
		guests,
		note,
		pgconv.TimePtrFromPgtype(checkInTime),
		pgconv.TimePtrFromPgtype(checkOutTime),
		early, late, actual,
		deleted,
		createdAt, updatedAt,
	), nil
}

// ---------------------------------------------------------------------------
// Read side
// ---------------------------------------------------------------------------

const reservationViewQuery = `
	SELECT r.id, r.room_id, rm.room_number, h.id, h.name,
	       r.user_id, u.email,
	       r.check_in_date, r.check_out_date, r.status,
	       r.total_price, r.number_of_guests, NULLIF(r.note, ''),
	       r.check_in_time, r.check_out_time,
	       r.early_check_in_surcharge, r.late_check_out_surcharge, r.actual_price,
	       r.created_at, r.updated_at
	FROM reservations r
	JOIN rooms rm ON rm.id = r.room_id
	JOIN hotels h ON h.id = rm.hotel_id
	JOIN users u ON u.id = r.user_id`

func (r *ReservationRepository) FindByID(ctx context.Context, id uuid.UUID) (*readmodel.ReservationRM, error) {
	q := reservationViewQuery + `
	WHERE r.id = $1 AND NOT r.is_deleted`

	rm, err := r.scanReservationRM(ctx, q, id)
	if err != nil {
		return nil, err
	}

	return rm, nil
}

func (r *ReservationRepository) FindByUserID(ctx context.Context, userID uuid.UUID, page, pageSize int) ([]*readmodel.ReservationListRM, error) {
	const q = `
		SELECT r.id, r.room_id, rm.room_number, h.name,
		       r.check_in_date, r.check_out_date, r.status, r.total_price, r.created_at
		FROM reservations r
		JOIN rooms rm ON rm.id = r.room_id
		JOIN hotels h ON h.id = rm.hotel_id
		WHERE r.user_id = $1 AND NOT r.is_deleted
		ORDER BY r.created_at DESC
		LIMIT $2 OFFSET $3`

	rows, err := r.db.Query(ctx, q, userID, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list user reservations", err)
	}
	defer rows.Close()

	var result []*readmodel.ReservationListRM
	for rows.Next() {
		var (
			item       readmodel.ReservationListRM
			totalPrice pgtype.Numeric
		)
		if err := rows.Scan(
			&item.ID, &item.RoomID, &item.RoomNumber, &item.HotelName,
			&item.CheckInDate, &item.CheckOutDate, &item.Status, &totalPrice, &item.CreatedAt,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan reservation list row", err)
		}
		if item.TotalPrice, err = pgconv.DecimalFromNumeric(totalPrice); err != nil {
			return nil, infra.WrapRepoErr("stored reservation has invalid total price", err)
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate reservation rows", err)
	}

	return result, nil
}

func (r *ReservationRepository) scanReservationRM(ctx context.Context, q string, args ...any) (*readmodel.ReservationRM, error) {
	var (
		rm             readmodel.ReservationRM
		totalPrice     pgtype.Numeric
		note           pgtype.Text
		checkInTime    pgtype.Timestamptz
		checkOutTime   pgtype.Timestamptz
		earlySurcharge pgtype.Numeric
		lateSurcharge  pgtype.Numeric
		actualPrice    pgtype.Numeric
	)

	err := r.db.QueryRow(ctx, q, args...).Scan(
		&rm.ID, &rm.RoomID, &rm.RoomNumber, &rm.HotelID, &rm.HotelName,
		&rm.UserID, &rm.UserEmail,
		&rm.CheckInDate, &rm.CheckOutDate, &rm.Status,
		&totalPrice, &rm.NumberOfGuests, &note,
		&checkInTime, &checkOutTime,
		&earlySurcharge, &lateSurcharge, &actualPrice,
		&rm.CreatedAt, &rm.UpdatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reservation view", err)
	}

	if rm.TotalPrice, err = pgconv.DecimalFromNumeric(totalPrice); err != nil {
		return nil, infra.WrapRepoErr("stored reservation has invalid total price", err)
	}
	rm.Note = pgconv.StringPtrFromPgtype(note)
	rm.CheckInTime = pgconv.TimePtrFromPgtype(checkInTime)
	rm.CheckOutTime = pgconv.TimePtrFromPgtype(checkOutTime)
	if rm.EarlyCheckInSurcharge, err = pgconv.DecimalPtrFromNumeric(earlySurcharge); err != nil {
		return nil, infra.WrapRepoErr("stored reservation has invalid early surcharge", err)
	}
	if rm.LateCheckOutSurcharge, err = pgconv.DecimalPtrFromNumeric(lateSurcharge); err != nil {
		return nil, infra.WrapRepoErr("stored reservation has invalid late surcharge", err)
	}
	if rm.ActualPrice, err = pgconv.DecimalPtrFromNumeric(actualPrice); err != nil {
		return nil, infra.WrapRepoErr("stored reservation has invalid actual price", err)
	}

	return &rm, nil
}
