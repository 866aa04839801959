package api

import (
	"errors"
	"net/http"

	reqdto "hotel-booking-api/internal/handler/dto/request"
	resdto "hotel-booking-api/internal/handler/dto/response"
	"hotel-booking-api/internal/handler/httperr"
	"hotel-booking-api/internal/pkg/errs"
	"hotel-booking-api/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type RoomHandler struct {
	roomUseCase usecase.RoomUseCase
}

func NewRoomHandler(roomUseCase usecase.RoomUseCase) *RoomHandler {
	return &RoomHandler{
		roomUseCase: roomUseCase,
	}
}

// @Summary Create room
// @Tags rooms
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param hotel_id path string true "Hotel ID"
// @Param request body reqdto.CreateRoomRequest true "Room details"
// @Success 201 {object} resdto.RoomResponse
// @Failure 404 {object} httperr.Response
// @Router /hotels/{hotel_id}/rooms [post]
func (h *RoomHandler) CreateRoom(c *gin.Context) {
	hotelID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid hotel ID", nil)
		return
	}

	var req reqdto.CreateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	rm, err := h.roomUseCase.CreateRoom(c.Request.Context(), hotelID, req)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrHotelNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Hotel not found", nil)
		case errors.Is(err, errs.ErrDomainValidation):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid room details", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to create room", nil)
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromRoomRM(rm))
}

// @Summary Update room
// @Tags rooms
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Room ID"
// @Param request body reqdto.UpdateRoomRequest true "Room details"
// @Success 200 {object} resdto.RoomResponse
// @Failure 404 {object} httperr.Response
// @Router /rooms/{id} [put]
func (h *RoomHandler) UpdateRoom(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req reqdto.UpdateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	rm, err := h.roomUseCase.UpdateRoom(c.Request.Context(), id, req)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrRoomNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Room not found", nil)
		case errors.Is(err, errs.ErrDomainValidation):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid room details", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to update room", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromRoomRM(rm))
}

// @Summary Delete room
// @Tags rooms
// @Security BearerAuth
// @Param id path string true "Room ID"
// @Success 204
// @Failure 404 {object} httperr.Response
// @Router /rooms/{id} [delete]
func (h *RoomHandler) DeleteRoom(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.roomUseCase.DeleteRoom(c.Request.Context(), id); err != nil {
		if errors.Is(err, errs.ErrRoomNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Room not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to delete room", nil)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Get room
// @Tags rooms
// @Produce json
// @Param id path string true "Room ID"
// @Success 200 {object} resdto.RoomResponse
// @Failure 404 {object} httperr.Response
// @Router /rooms/{id} [get]
func (h *RoomHandler) GetRoom(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	rm, err := h.roomUseCase.GetRoom(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, errs.ErrRoomNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Room not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to get room", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromRoomRM(rm))
}

// @Summary List rooms of a hotel
// @Tags rooms
// @Produce json
// @Param hotel_id path string true "Hotel ID"
// @Success 200 {array} resdto.RoomResponse
// @Router /hotels/{hotel_id}/rooms [get]
func (h *RoomHandler) ListRoomsByHotel(c *gin.Context) {
	hotelID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid hotel ID", nil)
		return
	}

	items, err := h.roomUseCase.ListRoomsByHotel(c.Request.Context(), hotelID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list rooms", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromRoomRMs(items))
}

// @Summary Search available rooms
// @Description List rooms free for the requested stay
// @Tags rooms
// @Produce json
// @Param city query string false "City filter"
// @Param country query string false "Country filter"
// @Param check_in query string true "Check-in date (YYYY-MM-DD)"
// @Param check_out query string true "Check-out date (YYYY-MM-DD)"
// @Param guests query int false "Number of guests"
// @Success 200 {array} resdto.RoomResponse
// @Failure 400 {object} httperr.Response
// @Router /rooms/search [get]
func (h *RoomHandler) SearchRooms(c *gin.Context) {
	var q reqdto.SearchRoomsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query parameters", nil)
		return
	}

	items, err := h.roomUseCase.SearchRooms(c.Request.Context(), q)
	if err != nil {
		if errors.Is(err, errs.ErrInvalidStayDates) {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Check-in date must be before check-out date", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to search rooms", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromRoomRMs(items))
}
