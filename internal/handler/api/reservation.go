package api

import (
	"errors"
	"net/http"

	"hotel-booking-api/internal/domain/user"
	reqdto "hotel-booking-api/internal/handler/dto/request"
	resdto "hotel-booking-api/internal/handler/dto/response"
	"hotel-booking-api/internal/handler/httperr"
	"hotel-booking-api/internal/handler/middleware"
	"hotel-booking-api/internal/pkg/errs"
	"hotel-booking-api/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ReservationHandler struct {
	reservationUseCase usecase.ReservationUseCase
}

func NewReservationHandler(reservationUseCase usecase.ReservationUseCase) *ReservationHandler {
	return &ReservationHandler{
		reservationUseCase: reservationUseCase,
	}
}

// @Summary Create reservation
// @Description Book a room for a stay; the reservation starts pending until payment confirms it
// @Tags reservations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateReservationRequest true "Reservation request"
// @Success 201 {object} resdto.ReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /reservations [post]
func (h *ReservationHandler) CreateReservation(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errors.New("missing user context"), "Internal server error", nil)
		return
	}

	var req reqdto.CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	rm, err := h.reservationUseCase.CreateReservation(c.Request.Context(), req, userID)
	middleware.ObserveReservationOp("create", err)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrUserNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "User not found", nil)
		case errors.Is(err, usecase.ErrUserInactive):
			httperr.AbortWithError(c, http.StatusForbidden, err, "Account is inactive", nil)
		case errors.Is(err, errs.ErrRoomNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Room not found", nil)
		case errors.Is(err, errs.ErrInvalidStayDates):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Check-in date must be before check-out date", nil)
		case errors.Is(err, errs.ErrCapacityExceeded):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Room cannot accommodate that many guests", nil)
		case errors.Is(err, errs.ErrReservationConflict):
			httperr.AbortWithError(c, http.StatusConflict, err, "Room is already booked for the requested dates", nil)
		case errors.Is(err, errs.ErrDomainValidation):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid reservation request", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to create reservation", nil)
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromReservationRM(rm))
}

// @Summary Get reservation
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 404 {object} httperr.Response
// @Router /reservations/{id} [get]
func (h *ReservationHandler) GetReservation(c *gin.Context) {
	userID, role, id, ok := h.actorAndID(c)
	if !ok {
		return
	}

	rm, err := h.reservationUseCase.GetReservation(c.Request.Context(), id, userID, role)
	if err != nil {
		if errors.Is(err, errs.ErrReservationNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Reservation not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to get reservation", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromReservationRM(rm))
}

// @Summary List own reservations
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number"
// @Param page_size query int false "Page size"
// @Success 200 {array} resdto.ReservationListResponse
// @Router /reservations [get]
func (h *ReservationHandler) GetUserReservations(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errors.New("missing user context"), "Internal server error", nil)
		return
	}

	var q struct {
		Page     int `form:"page,default=1" binding:"omitempty,min=1"`
		PageSize int `form:"page_size,default=20" binding:"omitempty,min=1,max=100"`
	}
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query parameters", nil)
		return
	}

	items, err := h.reservationUseCase.GetUserReservations(c.Request.Context(), userID, q.Page, q.PageSize)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list reservations", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromReservationListRMs(items))
}

// @Summary Cancel reservation
// @Description Cancel a pending or confirmed reservation
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Success 204
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /reservations/{id}/cancel [post]
func (h *ReservationHandler) CancelReservation(c *gin.Context) {
	userID, role, id, ok := h.actorAndID(c)
	if !ok {
		return
	}

	err := h.reservationUseCase.CancelReservation(c.Request.Context(), id, userID, role)
	middleware.ObserveReservationOp("cancel", err)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrReservationNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Reservation not found", nil)
		case errors.Is(err, usecase.ErrNotReservationOwner):
			httperr.AbortWithError(c, http.StatusForbidden, err, "Not allowed to cancel this reservation", nil)
		case errors.Is(err, usecase.ErrInvalidStatusTransition):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Reservation can no longer be cancelled", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to cancel reservation", nil)
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Check in
// @Description Record the guest's arrival (front desk)
// @Tags reservations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Param request body reqdto.CheckInRequest false "Actual arrival time"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /reservations/{id}/check-in [post]
func (h *ReservationHandler) CheckIn(c *gin.Context) {
	id, ok := h.reservationID(c)
	if !ok {
		return
	}

	var req reqdto.CheckInRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
			return
		}
	}

	rm, err := h.reservationUseCase.CheckIn(c.Request.Context(), id, req.At)
	middleware.ObserveReservationOp("check_in", err)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrReservationNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Reservation not found", nil)
		case errors.Is(err, usecase.ErrCheckInWindowExpired):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Check-in window has expired", nil)
		case errors.Is(err, usecase.ErrInvalidStatusTransition):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Reservation is not ready for check-in", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to check in", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromReservationRM(rm))
}

// @Summary Check out
// @Description Record the departure and settle the final price including surcharges
// @Tags reservations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Param request body reqdto.CheckOutRequest false "Actual departure time"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /reservations/{id}/check-out [post]
func (h *ReservationHandler) CheckOut(c *gin.Context) {
	id, ok := h.reservationID(c)
	if !ok {
		return
	}

	var req reqdto.CheckOutRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
			return
		}
	}

	rm, err := h.reservationUseCase.CheckOut(c.Request.Context(), id, req.At)
	middleware.ObserveReservationOp("check_out", err)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrReservationNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Reservation not found", nil)
		case errors.Is(err, usecase.ErrCheckOutWithoutCheckIn):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Reservation was never checked in", nil)
		case errors.Is(err, usecase.ErrInvalidStatusTransition):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Reservation is not ready for check-out", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to check out", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromReservationRM(rm))
}

func (h *ReservationHandler) reservationID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid reservation ID", nil)
		return uuid.Nil, false
	}
	return id, true
}

func (h *ReservationHandler) actorAndID(c *gin.Context) (uuid.UUID, user.Role, uuid.UUID, bool) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errors.New("missing user context"), "Internal server error", nil)
		return uuid.Nil, "", uuid.Nil, false
	}
	role, ok := middleware.GetUserRole(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errors.New("missing role context"), "Internal server error", nil)
		return uuid.Nil, "", uuid.Nil, false
	}
	id, ok := h.reservationID(c)
	if !ok {
		return uuid.Nil, "", uuid.Nil, false
	}
	return userID, role, id, true
}
