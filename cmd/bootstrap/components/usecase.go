package components

import (
	"hotel-booking-api/internal/pkg/clock"
	"hotel-booking-api/internal/usecase"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		clock.NewRealClock,
		usecase.NewTokenValidator,
		usecase.NewAuthUseCase,
		usecase.NewHotelUseCase,
		usecase.NewRoomUseCase,
		usecase.NewReviewUseCase,
		usecase.NewReservationUseCase,
		usecase.NewPaymentUseCase,
	),
)
