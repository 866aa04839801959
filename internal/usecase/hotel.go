package usecase

import (
	"context"
	"time"

	"hotel-booking-api/internal/domain/hotel"
	reqdto "hotel-booking-api/internal/handler/dto/request"
	"hotel-booking-api/internal/infra"
	"hotel-booking-api/internal/pkg/clock"
	"hotel-booking-api/internal/pkg/errs"
	"hotel-booking-api/internal/usecase/readmodel"

	"github.com/google/uuid"
)

type HotelRepository interface {
	Create(ctx context.Context, h *hotel.Hotel) (uuid.UUID, error)
	Update(ctx context.Context, h *hotel.Hotel) error
	SoftDelete(ctx context.Context, id uuid.UUID, now time.Time) error
	FindDomainByID(ctx context.Context, id uuid.UUID) (*hotel.Hotel, error)
	FindByID(ctx context.Context, id uuid.UUID) (*readmodel.HotelRM, error)
	List(ctx context.Context, city, country string, page, pageSize int) ([]*readmodel.HotelRM, error)
}

type HotelUseCase interface {
	CreateHotel(ctx context.Context, req reqdto.CreateHotelRequest) (*readmodel.HotelRM, error)
	UpdateHotel(ctx context.Context, id uuid.UUID, req reqdto.UpdateHotelRequest) (*readmodel.HotelRM, error)
	DeleteHotel(ctx context.Context, id uuid.UUID) error
	GetHotel(ctx context.Context, id uuid.UUID) (*readmodel.HotelRM, error)
	ListHotels(ctx context.Context, q reqdto.ListHotelsQuery) ([]*readmodel.HotelRM, error)
}

type hotelUseCaseImpl struct {
	hotelRepo HotelRepository
	clock     clock.Clock
}

func NewHotelUseCase(hotelRepo HotelRepository, clock clock.Clock) HotelUseCase {
	return &hotelUseCaseImpl{hotelRepo: hotelRepo, clock: clock}
}

func (h *hotelUseCaseImpl) CreateHotel(ctx context.Context, req reqdto.CreateHotelRequest) (*readmodel.HotelRM, error) {
	ht, err := hotel.NewHotel(req.Name, req.Address, req.City, req.Country, req.Description, req.StarRating, h.clock.Now())
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	id, err := h.hotelRepo.Create(ctx, ht)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	return h.hotelRepo.FindByID(ctx, id)
}

func (h *hotelUseCaseImpl) UpdateHotel(ctx context.Context, id uuid.UUID, req reqdto.UpdateHotelRequest) (*readmodel.HotelRM, error) {
	existing, err := h.hotelRepo.FindDomainByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrHotelNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	updated, err := hotel.NewHotel(req.Name, req.Address, req.City, req.Country, req.Description, req.StarRating, h.clock.Now())
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}
	ht := hotel.ReconstructHotel(
		existing.ID(),
		updated.Name(), updated.Address(), updated.City(), updated.Country(),
		updated.Description(), updated.StarRating(),
		false,
		existing.CreatedAt(), h.clock.Now(),
	)

	if err := h.hotelRepo.Update(ctx, ht); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrHotelNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	return h.hotelRepo.FindByID(ctx, id)
}

func (h *hotelUseCaseImpl) DeleteHotel(ctx context.Context, id uuid.UUID) error {
	if err := h.hotelRepo.SoftDelete(ctx, id, h.clock.Now()); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, errs.ErrHotelNotFound)
		}
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return nil
}

func (h *hotelUseCaseImpl) GetHotel(ctx context.Context, id uuid.UUID) (*readmodel.HotelRM, error) {
	rm, err := h.hotelRepo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrHotelNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return rm, nil
}

func (h *hotelUseCaseImpl) ListHotels(ctx context.Context, q reqdto.ListHotelsQuery) ([]*readmodel.HotelRM, error) {
	items, err := h.hotelRepo.List(ctx, q.City, q.Country, q.Page, q.PageSize)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return items, nil
}
