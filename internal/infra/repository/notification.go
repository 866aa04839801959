package repository

import (
	"context"
	"time"

	"hotel-booking-api/internal/infra"
	"hotel-booking-api/internal/infra/db"

	"github.com/google/uuid"
)

// NotificationRepository writes email jobs into an outbox table inside the
// booking transaction. A separate worker drains the table and sends.
type NotificationRepository struct {
	db db.DBTX
}

func NewNotificationRepository(dbtx db.DBTX) *NotificationRepository {
	return &NotificationRepository{db: dbtx}
}

func (r *NotificationRepository) Enqueue(ctx context.Context, kind, topic string, payload []byte, runAt time.Time) error {
	const q = `
		INSERT INTO notification_jobs (id, kind, topic, payload, status, run_at, created_at)
		VALUES ($1, $2, $3, $4, 'pending', $5, $6)`

	_, err := r.db.Exec(ctx, q, uuid.New(), kind, topic, payload, runAt, runAt)
	if err != nil {
		return infra.WrapRepoErr("failed to enqueue notification job", err)
	}

	return nil
}
