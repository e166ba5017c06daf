package review

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"workerconnect/internal/domain"
	"workerconnect/internal/middleware"
	"workerconnect/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes mounts the review endpoints under the authenticated group.
// Only customers may write reviews; reading requires any valid token.
func (h *Handler) RegisterRoutes(authed *gin.RouterGroup) {
	authed.GET("/workers/:id/reviews", h.ListReviews)
	authed.POST("/workers/:id/addReview", middleware.RequireRole(string(domain.RoleCustomer)), h.AddReview)
}

func (h *Handler) AddReview(c *gin.Context) {
	workerID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid worker ID")
		return
	}

	var req CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	rv, err := h.service.Create(c.Request.Context(), c.GetInt64("user_id"), workerID, req)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, rv)
}

func (h *Handler) ListReviews(c *gin.Context) {
	workerID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid worker ID")
		return
	}

	reviews, err := h.service.ListByWorker(c.Request.Context(), workerID)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, reviews)
}

func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrInvalidRequest):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Rating must be 1-5 and comment must not be empty")
	case errors.Is(err, ErrWorkerNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Worker not found")
	case errors.Is(err, ErrAuthorNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Account not found")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Something went wrong")
	}
}
