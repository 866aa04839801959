package usecase

import (
	"context"

	reqdto "hotel-booking-api/internal/handler/dto/request"
	"hotel-booking-api/internal/pkg/clock"
	"hotel-booking-api/internal/pkg/errs"
	"hotel-booking-api/internal/usecase/shared"

	"github.com/google/uuid"
)

const gatewaySuccessCode = "00"

type PaymentUseCase interface {
	HandleWebhook(ctx context.Context, req reqdto.PaymentWebhookRequest) error
}

type paymentUseCaseImpl struct {
	reservations ReservationUseCase
	uow          shared.UnitOfWork
	clock        clock.Clock
}

func NewPaymentUseCase(reservations ReservationUseCase, uow shared.UnitOfWork, clock clock.Clock) PaymentUseCase {
	return &paymentUseCaseImpl{
		reservations: reservations,
		uow:          uow,
		clock:        clock,
	}
}

// HandleWebhook processes the gateway callback. A success code confirms
// the reservation; anything else records the failed attempt and leaves
// the reservation pending so the guest can retry.
func (p *paymentUseCaseImpl) HandleWebhook(ctx context.Context, req reqdto.PaymentWebhookRequest) error {
	reservationID, err := uuid.Parse(req.ReservationID)
	if err != nil {
		return errs.Mark(err, errs.ErrReservationNotFound)
	}

	if req.ResponseCode != gatewaySuccessCode {
		err := p.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			record := shared.PaymentRecord{
				ReservationID: reservationID,
				Amount:        req.Amount,
				Method:        req.Method,
				Status:        "failed",
				TransactionID: req.TransactionID,
			}
			_, err := tx.Payments().Create(ctx, record, p.clock.Now())
			return err
		})
		if err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		return ErrPaymentRejected
	}

	return p.reservations.ConfirmOnPayment(ctx, reservationID, shared.PaymentRecord{
		ReservationID: reservationID,
		Amount:        req.Amount,
		Method:        req.Method,
		Status:        "succeeded",
		TransactionID: req.TransactionID,
	})
}
