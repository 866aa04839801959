//go:build unit || e2e

package dbtest

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

// Pre-computed bcrypt hash. Fixture users authenticate with minted JWTs,
// never through the login endpoint, so the plaintext is irrelevant.
const testPasswordHash = "$2a$12$R9h/cIPz0gi.URNNX3kh2OPST9/PgBkqquzi.Ss7KIUgO2t0jWMUW"

func CreateTestUser(t *testing.T, db DBLike, email, role string) uuid.UUID {
	t.Helper()

	userID := uuid.New()
	now := time.Now().UTC()
	ctx := context.Background()

	tag, err := db.Exec(ctx,
		`INSERT INTO users (id, email, password_hash, role, is_active, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, true, $5, $5)
		 ON CONFLICT (email) DO NOTHING`,
		userID, email, testPasswordHash, role, now)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		require.NoError(t, db.QueryRow(ctx, "SELECT id FROM users WHERE email = $1", email).Scan(&userID))
	}
	return userID
}

func CreateTestHotel(t *testing.T, db DBLike, name, city, country string) uuid.UUID {
	t.Helper()

	hotelID := uuid.New()
	now := time.Now().UTC()
	_, err := db.Exec(context.Background(),
		`INSERT INTO hotels (id, name, address, city, country, created_at, updated_at)
		 VALUES ($1, $2, '1 Test Street', $3, $4, $5, $5)`,
		hotelID, name, city, country, now)
	require.NoError(t, err)
	return hotelID
}

func CreateTestRoom(t *testing.T, db DBLike, hotelID uuid.UUID, roomNumber string, capacity int, pricePerNight decimal.Decimal) uuid.UUID {
	t.Helper()

	roomID := uuid.New()
	now := time.Now().UTC()
	_, err := db.Exec(context.Background(),
		`INSERT INTO rooms (id, hotel_id, room_number, capacity, price_per_night, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $6)`,
		roomID, hotelID, roomNumber, capacity, pricePerNight, now)
	require.NoError(t, err)
	return roomID
}

func ReservationStatus(t *testing.T, db DBLike, reservationID uuid.UUID) string {
	t.Helper()

	var status string
	err := db.QueryRow(context.Background(),
		"SELECT status FROM reservations WHERE id = $1", reservationID).Scan(&status)
	require.NoError(t, err)
	return status
}

func CountNotificationJobs(t *testing.T, db DBLike, kind string) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(),
		"SELECT count(*) FROM notification_jobs WHERE kind = $1", kind).Scan(&n)
	require.NoError(t, err)
	return n
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       string
)

// ResetDB truncates every table so each subtest starts from a clean slate.
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var buildErr error
	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			buildErr = err
			return
		}
		defer rows.Close()

		var tables []string
		for rows.Next() {
			var name string
			if err := rows.Scan(&name); err != nil {
				buildErr = err
				return
			}
			tables = append(tables, name)
		}
		if err := rows.Err(); err != nil {
			buildErr = err
			return
		}
		if len(tables) == 0 {
			truncateSQL = "SELECT 1"
			return
		}
		truncateSQL = "TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE"
	})
	if buildErr != nil {
		return buildErr
	}

	_, err := pool.Exec(ctx, truncateSQL)
	return err
}
