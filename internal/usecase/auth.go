package usecase

import (
	"context"
	"errors"

	"hotel-booking-api/internal/domain/user"
	reqdto "hotel-booking-api/internal/handler/dto/request"
	"hotel-booking-api/internal/infra"
	"hotel-booking-api/internal/infra/repository"
	"hotel-booking-api/internal/pkg/clock"
	"hotel-booking-api/internal/pkg/errs"
	"hotel-booking-api/internal/pkg/jwt"
	"hotel-booking-api/internal/pkg/password"
	"hotel-booking-api/internal/usecase/readmodel"

	"github.com/google/uuid"
)

var (
	ErrUserNotFound         = errors.New("user not found")
	ErrEmailAlreadyTaken    = errors.New("email address already registered")
	ErrInvalidCredentials   = errors.New("invalid email or password")
	ErrUserInactive         = errors.New("user account is inactive")
	ErrAuthenticationFailed = errors.New("authentication failed")
	ErrTokenGeneration      = errors.New("token generation failed")
	ErrTokenValidation      = errors.New("token validation failed")
)

type UserRepository interface {
	Create(ctx context.Context, u *user.User, passwordHash string) (uuid.UUID, error)
	FindCredentialsByEmail(ctx context.Context, email string) (*repository.Credentials, error)
	FindByID(ctx context.Context, id uuid.UUID) (*readmodel.AuthorizedUserRM, error)
}

type AuthUseCase interface {
	Register(ctx context.Context, req reqdto.RegisterRequest) (*readmodel.AuthorizedUserRM, error)
	Login(ctx context.Context, req reqdto.LoginRequest) (string, *readmodel.AuthorizedUserRM, error)
	GetCurrentUser(ctx context.Context, userID uuid.UUID) (*readmodel.AuthorizedUserRM, error)
	ValidateToken(tokenString string) (uuid.UUID, user.Role, error)
}

type authUseCaseImpl struct {
	userRepo   UserRepository
	jwtService *jwt.Service
	clock      clock.Clock
}

func NewAuthUseCase(userRepo UserRepository, jwtService *jwt.Service, clock clock.Clock) AuthUseCase {
	return &authUseCaseImpl{
		userRepo:   userRepo,
		jwtService: jwtService,
		clock:      clock,
	}
}

// Register creates a guest account with a bcrypt password hash.
func (a *authUseCaseImpl) Register(ctx context.Context, req reqdto.RegisterRequest) (*readmodel.AuthorizedUserRM, error) {
	email, err := user.NewEmail(req.Email)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}
	if err := user.ValidatePlainPassword(req.Password); err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	u, err := user.NewUser(email, user.RoleGuest, a.clock.Now())
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	hash, err := password.HashPassword(req.Password)
	if err != nil {
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	id, err := a.userRepo.Create(ctx, u, hash)
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, errs.Mark(err, ErrEmailAlreadyTaken)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	return a.userRepo.FindByID(ctx, id)
}

func (a *authUseCaseImpl) Login(ctx context.Context, req reqdto.LoginRequest) (string, *readmodel.AuthorizedUserRM, error) {
	email, err := user.NewEmail(req.Email)
	if err != nil {
		return "", nil, ErrInvalidCredentials
	}

	creds, err := a.userRepo.FindCredentialsByEmail(ctx, email.String())
	if err != nil {
		// Same answer for unknown email and wrong password.
		return "", nil, ErrInvalidCredentials
	}
	if !creds.IsActive {
		return "", nil, ErrUserInactive
	}
	if err := password.ComparePassword(creds.PasswordHash, req.Password); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	role, err := user.NewRole(creds.Role)
	if err != nil {
		return "", nil, ErrAuthenticationFailed
	}

	token, err := a.jwtService.GenerateToken(creds.UserID, role)
	if err != nil {
		return "", nil, ErrTokenGeneration
	}

	rm, err := a.userRepo.FindByID(ctx, creds.UserID)
	if err != nil {
		return "", nil, ErrUserNotFound
	}

	return token, rm, nil
}

func (a *authUseCaseImpl) GetCurrentUser(ctx context.Context, userID uuid.UUID) (*readmodel.AuthorizedUserRM, error) {
	rm, err := a.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, ErrUserNotFound
	}
	if !rm.IsActive {
		return nil, ErrUserInactive
	}

	return rm, nil
}

func (a *authUseCaseImpl) ValidateToken(tokenString string) (uuid.UUID, user.Role, error) {
	claims, err := a.jwtService.ValidateToken(tokenString)
	if err != nil {
		return uuid.Nil, "", ErrTokenValidation
	}

	role, err := user.NewRole(claims.Role)
	if err != nil {
		return uuid.Nil, "", ErrTokenValidation
	}

	return claims.UserID, role, nil
}
