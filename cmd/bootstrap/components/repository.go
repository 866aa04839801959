package components

import (
	"hotel-booking-api/internal/infra/cache"
	"hotel-booking-api/internal/infra/db"
	repo_impl "hotel-booking-api/internal/infra/repository"
	"hotel-booking-api/internal/infra/uow"
	"hotel-booking-api/internal/pkg/config"
	"hotel-booking-api/internal/usecase"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		NewDBTX,
		uow.NewPostgresUoW,
		fx.Annotate(
			NewAvailabilityCache,
			fx.As(new(usecase.AvailabilityInvalidator)),
			fx.As(new(usecase.AvailabilityHint)),
		),
		fx.Annotate(
			repo_impl.NewUserRepository,
			fx.As(new(usecase.UserRepository)),
		),
		fx.Annotate(
			repo_impl.NewHotelRepository,
			fx.As(new(usecase.HotelRepository)),
		),
		fx.Annotate(
			repo_impl.NewRoomRepository,
			fx.As(new(usecase.RoomRepository)),
		),
		fx.Annotate(
			repo_impl.NewReviewRepository,
			fx.As(new(usecase.ReviewRepository)),
		),
		// Pool-backed reservation repository doubles as the read store.
		fx.Annotate(
			repo_impl.NewReservationRepository,
			fx.As(new(usecase.ReservationReadStore)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}

func NewAvailabilityCache(client *redis.Client, cfg config.Config) *cache.AvailabilityCache {
	return cache.NewAvailabilityCache(client, cfg.Redis)
}
