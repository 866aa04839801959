package repository

import (
	"context"
	"time"

	"hotel-booking-api/internal/domain/user"
	"hotel-booking-api/internal/infra"
	"hotel-booking-api/internal/infra/db"
	"hotel-booking-api/internal/pkg/pgconv"
	"hotel-booking-api/internal/usecase/readmodel"

	"github.com/google/uuid"
)

type UserRepository struct {
	db db.DBTX
}

func NewUserRepository(dbtx db.DBTX) *UserRepository {
	return &UserRepository{db: dbtx}
}

func (r *UserRepository) Create(ctx context.Context, u *user.User, passwordHash string) (uuid.UUID, error) {
	const q = `
		INSERT INTO users (id, email, password_hash, role, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`

	var id uuid.UUID
	err := r.db.QueryRow(ctx, q,
		u.ID(), u.Email().String(), passwordHash, u.Role().String(), u.IsActive(),
		u.CreatedAt(), u.UpdatedAt(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create user", err)
	}

	return id, nil
}

// Credentials carries what the login flow needs to verify a password.
type Credentials struct {
	UserID       uuid.UUID
	Email        string
	Role         string
	IsActive     bool
	PasswordHash string
}

func (r *UserRepository) FindCredentialsByEmail(ctx context.Context, email string) (*Credentials, error) {
	const q = `
		SELECT id, email, role, is_active, password_hash
		FROM users
		WHERE email = $1`

	var c Credentials
	err := r.db.QueryRow(ctx, q, email).Scan(&c.UserID, &c.Email, &c.Role, &c.IsActive, &c.PasswordHash)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by email", err)
	}

	return &c, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id uuid.UUID) (*readmodel.AuthorizedUserRM, error) {
	const q = `
		SELECT id, email, role, is_active, created_at
		FROM users
		WHERE id = $1`

	var (
		rm        readmodel.AuthorizedUserRM
		createdAt time.Time
	)
	err := r.db.QueryRow(ctx, q, id).Scan(&rm.ID, &rm.Email, &rm.Role, &rm.IsActive, &createdAt)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user", err)
	}
	rm.CreatedAt = createdAt

	return &rm, nil
}
