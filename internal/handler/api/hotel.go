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

type HotelHandler struct {
	hotelUseCase usecase.HotelUseCase
}

func NewHotelHandler(hotelUseCase usecase.HotelUseCase) *HotelHandler {
	return &HotelHandler{
		hotelUseCase: hotelUseCase,
	}
}

// @Summary Create hotel
// @Tags hotels
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateHotelRequest true "Hotel details"
// @Success 201 {object} resdto.HotelResponse
// @Failure 400 {object} httperr.Response
// @Router /hotels [post]
func (h *HotelHandler) CreateHotel(c *gin.Context) {
	var req reqdto.CreateHotelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	rm, err := h.hotelUseCase.CreateHotel(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, errs.ErrDomainValidation) {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid hotel details", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to create hotel", nil)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromHotelRM(rm))
}

// @Summary Update hotel
// @Tags hotels
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Hotel ID"
// @Param request body reqdto.UpdateHotelRequest true "Hotel details"
// @Success 200 {object} resdto.HotelResponse
// @Failure 404 {object} httperr.Response
// @Router /hotels/{id} [put]
func (h *HotelHandler) UpdateHotel(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req reqdto.UpdateHotelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	rm, err := h.hotelUseCase.UpdateHotel(c.Request.Context(), id, req)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrHotelNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Hotel not found", nil)
		case errors.Is(err, errs.ErrDomainValidation):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid hotel details", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to update hotel", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromHotelRM(rm))
}

// @Summary Delete hotel
// @Tags hotels
// @Security BearerAuth
// @Param id path string true "Hotel ID"
// @Success 204
// @Failure 404 {object} httperr.Response
// @Router /hotels/{id} [delete]
func (h *HotelHandler) DeleteHotel(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.hotelUseCase.DeleteHotel(c.Request.Context(), id); err != nil {
		if errors.Is(err, errs.ErrHotelNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Hotel not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to delete hotel", nil)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Get hotel
// @Tags hotels
// @Produce json
// @Param id path string true "Hotel ID"
// @Success 200 {object} resdto.HotelResponse
// @Failure 404 {object} httperr.Response
// @Router /hotels/{id} [get]
func (h *HotelHandler) GetHotel(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	rm, err := h.hotelUseCase.GetHotel(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, errs.ErrHotelNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Hotel not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to get hotel", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromHotelRM(rm))
}

// @Summary List hotels
// @Tags hotels
// @Produce json
// @Param city query string false "City filter"
// @Param country query string false "Country filter"
// @Param page query int false "Page number"
// @Param page_size query int false "Page size"
// @Success 200 {array} resdto.HotelResponse
// @Router /hotels [get]
func (h *HotelHandler) ListHotels(c *gin.Context) {
	var q reqdto.ListHotelsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query parameters", nil)
		return
	}

	items, err := h.hotelUseCase.ListHotels(c.Request.Context(), q)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list hotels", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromHotelRMs(items))
}

func pathID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid ID", nil)
		return uuid.Nil, false
	}
	return id, true
}
