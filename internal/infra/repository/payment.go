package repository

import (
	"context"
	"time"

	"hotel-booking-api/internal/infra"
	"hotel-booking-api/internal/infra/db"
	"hotel-booking-api/internal/pkg/pgconv"
	"hotel-booking-api/internal/usecase/shared"

	"github.com/google/uuid"
)

type PaymentRepository struct {
	db db.DBTX
}

func NewPaymentRepository(dbtx db.DBTX) *PaymentRepository {
	return &PaymentRepository{db: dbtx}
}

func (r *PaymentRepository) Create(ctx context.Context, record shared.PaymentRecord, now time.Time) (uuid.UUID, error) {
	const q = `
		INSERT INTO payments (id, reservation_id, amount, method, status, transaction_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`

	var id uuid.UUID
	err := r.db.QueryRow(ctx, q,
		uuid.New(), record.ReservationID, pgconv.DecimalToNumeric(record.Amount),
		record.Method, record.Status, record.TransactionID, now,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to record payment", err)
	}

	return id, nil
}
