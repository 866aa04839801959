package usecase

import (
	"context"
	"errors"
	"time"

	"hotel-booking-api/internal/domain/review"
	"hotel-booking-api/internal/domain/user"
	reqdto "hotel-booking-api/internal/handler/dto/request"
	"hotel-booking-api/internal/infra"
	"hotel-booking-api/internal/pkg/clock"
	"hotel-booking-api/internal/pkg/errs"
	"hotel-booking-api/internal/usecase/readmodel"

	"github.com/google/uuid"
)

var ErrNotReviewAuthor = errors.New("review belongs to another user")

type ReviewRepository interface {
	Create(ctx context.Context, rv *review.Review) (uuid.UUID, error)
	Update(ctx context.Context, rv *review.Review) error
	SoftDelete(ctx context.Context, id uuid.UUID, now time.Time) error
	FindDomainByID(ctx context.Context, id uuid.UUID) (*review.Review, error)
	ListByHotel(ctx context.Context, hotelID uuid.UUID, page, pageSize int) ([]*readmodel.ReviewRM, error)
}

type ReviewUseCase interface {
	CreateReview(ctx context.Context, hotelID, userID uuid.UUID, req reqdto.CreateReviewRequest) (uuid.UUID, error)
	UpdateReview(ctx context.Context, id, actorID uuid.UUID, actorRole user.Role, req reqdto.UpdateReviewRequest) error
	DeleteReview(ctx context.Context, id, actorID uuid.UUID, actorRole user.Role) error
	ListHotelReviews(ctx context.Context, hotelID uuid.UUID, q reqdto.ListReviewsQuery) ([]*readmodel.ReviewRM, error)
}

type reviewUseCaseImpl struct {
	reviewRepo ReviewRepository
	hotelRepo  HotelRepository
	clock      clock.Clock
}

func NewReviewUseCase(reviewRepo ReviewRepository, hotelRepo HotelRepository, clock clock.Clock) ReviewUseCase {
	return &reviewUseCaseImpl{
		reviewRepo: reviewRepo,
		hotelRepo:  hotelRepo,
		clock:      clock,
	}
}

func (r *reviewUseCaseImpl) CreateReview(ctx context.Context, hotelID, userID uuid.UUID, req reqdto.CreateReviewRequest) (uuid.UUID, error) {
	if _, err := r.hotelRepo.FindByID(ctx, hotelID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return uuid.Nil, errs.Mark(err, errs.ErrHotelNotFound)
		}
		return uuid.Nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	rv, err := review.NewReview(hotelID, userID, req.Rating, req.Comment, r.clock.Now())
	if err != nil {
		return uuid.Nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	id, err := r.reviewRepo.Create(ctx, rv)
	if err != nil {
		return uuid.Nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	return id, nil
}

func (r *reviewUseCaseImpl) UpdateReview(ctx context.Context, id, actorID uuid.UUID, actorRole user.Role, req reqdto.UpdateReviewRequest) error {
	rv, err := r.findOwned(ctx, id, actorID, actorRole)
	if err != nil {
		return err
	}

	if err := rv.Revise(req.Rating, req.Comment, r.clock.Now()); err != nil {
		return errs.Mark(err, errs.ErrDomainValidation)
	}

	if err := r.reviewRepo.Update(ctx, rv); err != nil {
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return nil
}

func (r *reviewUseCaseImpl) DeleteReview(ctx context.Context, id, actorID uuid.UUID, actorRole user.Role) error {
	if _, err := r.findOwned(ctx, id, actorID, actorRole); err != nil {
		return err
	}

	if err := r.reviewRepo.SoftDelete(ctx, id, r.clock.Now()); err != nil {
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return nil
}

func (r *reviewUseCaseImpl) ListHotelReviews(ctx context.Context, hotelID uuid.UUID, q reqdto.ListReviewsQuery) ([]*readmodel.ReviewRM, error) {
	items, err := r.reviewRepo.ListByHotel(ctx, hotelID, q.Page, q.PageSize)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return items, nil
}

func (r *reviewUseCaseImpl) findOwned(ctx context.Context, id, actorID uuid.UUID, actorRole user.Role) (*review.Review, error) {
	rv, err := r.reviewRepo.FindDomainByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrReviewNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if !rv.IsOwnedBy(actorID) && !actorRole.CanManageReservations() {
		return nil, ErrNotReviewAuthor
	}
	return rv, nil
}
