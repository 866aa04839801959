package usecase

import (
	"context"
	"time"

	"hotel-booking-api/internal/domain/room"
	reqdto "hotel-booking-api/internal/handler/dto/request"
	"hotel-booking-api/internal/infra"
	"hotel-booking-api/internal/pkg/clock"
	"hotel-booking-api/internal/pkg/errs"
	"hotel-booking-api/internal/usecase/readmodel"

	"github.com/google/uuid"
)

// RoomRepository is the pool-backed room store used outside the booking
// transaction (inventory management and search).
type RoomRepository interface {
	Create(ctx context.Context, rm *room.Room) (uuid.UUID, error)
	Update(ctx context.Context, rm *room.Room) error
	SoftDelete(ctx context.Context, id uuid.UUID, now time.Time) error
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*room.Room, error)
	FindByID(ctx context.Context, id uuid.UUID) (*readmodel.RoomRM, error)
	ListByHotel(ctx context.Context, hotelID uuid.UUID) ([]*readmodel.RoomRM, error)
	SearchAvailable(ctx context.Context, filter readmodel.RoomSearchFilter) ([]*readmodel.RoomRM, error)
}

// AvailabilityHint is the read side of the per-room availability cache.
// Lookups fall back to the database row on a miss.
type AvailabilityHint interface {
	Get(ctx context.Context, roomID uuid.UUID) (available, found bool)
	Set(ctx context.Context, roomID uuid.UUID, available bool)
}

type RoomUseCase interface {
	CreateRoom(ctx context.Context, hotelID uuid.UUID, req reqdto.CreateRoomRequest) (*readmodel.RoomRM, error)
	UpdateRoom(ctx context.Context, id uuid.UUID, req reqdto.UpdateRoomRequest) (*readmodel.RoomRM, error)
	DeleteRoom(ctx context.Context, id uuid.UUID) error
	GetRoom(ctx context.Context, id uuid.UUID) (*readmodel.RoomRM, error)
	ListRoomsByHotel(ctx context.Context, hotelID uuid.UUID) ([]*readmodel.RoomRM, error)
	SearchRooms(ctx context.Context, q reqdto.SearchRoomsQuery) ([]*readmodel.RoomRM, error)
}

type roomUseCaseImpl struct {
	roomRepo     RoomRepository
	hotelRepo    HotelRepository
	availability AvailabilityHint
	clock        clock.Clock
}

func NewRoomUseCase(roomRepo RoomRepository, hotelRepo HotelRepository, availability AvailabilityHint, clock clock.Clock) RoomUseCase {
	return &roomUseCaseImpl{
		roomRepo:     roomRepo,
		hotelRepo:    hotelRepo,
		availability: availability,
		clock:        clock,
	}
}

func (r *roomUseCaseImpl) CreateRoom(ctx context.Context, hotelID uuid.UUID, req reqdto.CreateRoomRequest) (*readmodel.RoomRM, error) {
	if _, err := r.hotelRepo.FindByID(ctx, hotelID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrHotelNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	rm, err := room.NewRoom(hotelID, req.RoomNumber, req.Capacity, req.PricePerNight, r.clock.Now())
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	id, err := r.roomRepo.Create(ctx, rm)
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, errs.Mark(err, errs.ErrDomainValidation)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	return r.roomRepo.FindByID(ctx, id)
}

func (r *roomUseCaseImpl) UpdateRoom(ctx context.Context, id uuid.UUID, req reqdto.UpdateRoomRequest) (*readmodel.RoomRM, error) {
	existing, err := r.roomRepo.FindByIDForUpdate(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrRoomNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	validated, err := room.NewRoom(existing.HotelID(), req.RoomNumber, req.Capacity, req.PricePerNight, r.clock.Now())
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}
	updated := room.ReconstructRoom(
		existing.ID(), existing.HotelID(),
		validated.RoomNumber(), validated.Capacity(), validated.PricePerNight(),
		req.IsAvailable, false,
		existing.CreatedAt(), r.clock.Now(),
	)

	if err := r.roomRepo.Update(ctx, updated); err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	return r.roomRepo.FindByID(ctx, id)
}

func (r *roomUseCaseImpl) DeleteRoom(ctx context.Context, id uuid.UUID) error {
	if err := r.roomRepo.SoftDelete(ctx, id, r.clock.Now()); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, errs.ErrRoomNotFound)
		}
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return nil
}

func (r *roomUseCaseImpl) GetRoom(ctx context.Context, id uuid.UUID) (*readmodel.RoomRM, error) {
	rm, err := r.roomRepo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrRoomNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	// The cached hint wins when present: booking writers invalidate it on
	// commit, so it is never staler than the row just read.
	if available, found := r.availability.Get(ctx, id); found {
		rm.IsAvailable = available
	} else {
		r.availability.Set(ctx, id, rm.IsAvailable)
	}
	return rm, nil
}

func (r *roomUseCaseImpl) ListRoomsByHotel(ctx context.Context, hotelID uuid.UUID) ([]*readmodel.RoomRM, error) {
	items, err := r.roomRepo.ListByHotel(ctx, hotelID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return items, nil
}

// SearchRooms lists rooms free for the requested stay. The dates are
// validated the same way a booking would be, so searchable always means
// bookable at this instant.
func (r *roomUseCaseImpl) SearchRooms(ctx context.Context, q reqdto.SearchRoomsQuery) ([]*readmodel.RoomRM, error) {
	if !q.CheckIn.Before(q.CheckOut) {
		return nil, errs.ErrInvalidStayDates
	}

	filter := readmodel.RoomSearchFilter{
		City:     likePattern(q.City),
		Country:  likePattern(q.Country),
		CheckIn:  q.CheckIn.UTC(),
		CheckOut: q.CheckOut.UTC(),
		Guests:   q.Guests,
		Page:     q.Page,
		PageSize: q.PageSize,
	}

	items, err := r.roomRepo.SearchAvailable(ctx, filter)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return items, nil
}

func likePattern(s string) string {
	if s == "" {
		return ""
	}
	return "%" + s + "%"
}
