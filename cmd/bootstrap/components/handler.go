package components

import (
	"hotel-booking-api/internal/handler"
	"hotel-booking-api/internal/handler/api"
	"hotel-booking-api/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewHotelHandler,
		api.NewRoomHandler,
		api.NewReservationHandler,
		api.NewPaymentHandler,
		api.NewReviewHandler,
		middleware.NewAuthMiddleware,
		NewHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

func NewHandlers(
	auth *api.AuthHandler,
	hotel *api.HotelHandler,
	room *api.RoomHandler,
	reservation *api.ReservationHandler,
	payment *api.PaymentHandler,
	review *api.ReviewHandler,
) handler.Handlers {
	return handler.Handlers{
		Auth:        auth,
		Hotel:       hotel,
		Room:        room,
		Reservation: reservation,
		Payment:     payment,
		Review:      review,
	}
}
