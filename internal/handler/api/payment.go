package api

import (
	"errors"
	"net/http"

	reqdto "hotel-booking-api/internal/handler/dto/request"
	"hotel-booking-api/internal/handler/httperr"
	"hotel-booking-api/internal/handler/middleware"
	"hotel-booking-api/internal/pkg/errs"
	"hotel-booking-api/internal/usecase"

	"github.com/gin-gonic/gin"
)

type PaymentHandler struct {
	paymentUseCase usecase.PaymentUseCase
}

func NewPaymentHandler(paymentUseCase usecase.PaymentUseCase) *PaymentHandler {
	return &PaymentHandler{
		paymentUseCase: paymentUseCase,
	}
}

// @Summary Payment webhook
// @Description Gateway callback; confirms the reservation on a success code
// @Tags payments
// @Accept json
// @Produce json
// @Param request body reqdto.PaymentWebhookRequest true "Gateway callback"
// @Success 200 {object} map[string]string
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /payments/webhook [post]
func (h *PaymentHandler) Webhook(c *gin.Context) {
	var req reqdto.PaymentWebhookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	err := h.paymentUseCase.HandleWebhook(c.Request.Context(), req)
	middleware.ObserveReservationOp("confirm", err)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrReservationNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Reservation not found", nil)
		case errors.Is(err, usecase.ErrPaymentRejected):
			// Acknowledge the callback so the gateway stops retrying.
			c.JSON(http.StatusOK, gin.H{"status": "payment_failed"})
		case errors.Is(err, usecase.ErrInvalidStatusTransition):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Reservation cannot be confirmed", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to process payment callback", nil)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "confirmed"})
}
