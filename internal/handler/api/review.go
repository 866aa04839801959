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

type ReviewHandler struct {
	reviewUseCase usecase.ReviewUseCase
}

func NewReviewHandler(reviewUseCase usecase.ReviewUseCase) *ReviewHandler {
	return &ReviewHandler{
		reviewUseCase: reviewUseCase,
	}
}

// @Summary Create review
// @Tags reviews
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param hotel_id path string true "Hotel ID"
// @Param request body reqdto.CreateReviewRequest true "Review"
// @Success 201 {object} map[string]string
// @Failure 404 {object} httperr.Response
// @Router /hotels/{hotel_id}/reviews [post]
func (h *ReviewHandler) CreateReview(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errors.New("missing user context"), "Internal server error", nil)
		return
	}

	hotelID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid hotel ID", nil)
		return
	}

	var req reqdto.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	id, err := h.reviewUseCase.CreateReview(c.Request.Context(), hotelID, userID, req)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrHotelNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Hotel not found", nil)
		case errors.Is(err, errs.ErrDomainValidation):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid review", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to create review", nil)
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": id.String()})
}

// @Summary Update review
// @Tags reviews
// @Accept json
// @Security BearerAuth
// @Param id path string true "Review ID"
// @Param request body reqdto.UpdateReviewRequest true "Review"
// @Success 204
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /reviews/{id} [put]
func (h *ReviewHandler) UpdateReview(c *gin.Context) {
	actorID, role, id, ok := h.actorAndID(c)
	if !ok {
		return
	}

	var req reqdto.UpdateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	if err := h.reviewUseCase.UpdateReview(c.Request.Context(), id, actorID, role, req); err != nil {
		switch {
		case errors.Is(err, errs.ErrReviewNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Review not found", nil)
		case errors.Is(err, usecase.ErrNotReviewAuthor):
			httperr.AbortWithError(c, http.StatusForbidden, err, "Not allowed to modify this review", nil)
		case errors.Is(err, errs.ErrDomainValidation):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid review", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to update review", nil)
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Delete review
// @Tags reviews
// @Security BearerAuth
// @Param id path string true "Review ID"
// @Success 204
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /reviews/{id} [delete]
func (h *ReviewHandler) DeleteReview(c *gin.Context) {
	actorID, role, id, ok := h.actorAndID(c)
	if !ok {
		return
	}

	if err := h.reviewUseCase.DeleteReview(c.Request.Context(), id, actorID, role); err != nil {
		switch {
		case errors.Is(err, errs.ErrReviewNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Review not found", nil)
		case errors.Is(err, usecase.ErrNotReviewAuthor):
			httperr.AbortWithError(c, http.StatusForbidden, err, "Not allowed to delete this review", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to delete review", nil)
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary List hotel reviews
// @Tags reviews
// @Produce json
// @Param hotel_id path string true "Hotel ID"
// @Success 200 {array} resdto.ReviewResponse
// @Router /hotels/{hotel_id}/reviews [get]
func (h *ReviewHandler) ListHotelReviews(c *gin.Context) {
	hotelID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid hotel ID", nil)
		return
	}

	var q reqdto.ListReviewsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query parameters", nil)
		return
	}

	items, err := h.reviewUseCase.ListHotelReviews(c.Request.Context(), hotelID, q)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list reviews", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromReviewRMs(items))
}

func (h *ReviewHandler) actorAndID(c *gin.Context) (uuid.UUID, user.Role, uuid.UUID, bool) {
	actorID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errors.New("missing user context"), "Internal server error", nil)
		return uuid.Nil, "", uuid.Nil, false
	}
	role, ok := middleware.GetUserRole(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errors.New("missing role context"), "Internal server error", nil)
		return uuid.Nil, "", uuid.Nil, false
	}
	id, idOK := pathID(c)
	if !idOK {
		return uuid.Nil, "", uuid.Nil, false
	}
	return actorID, role, id, true
}
