package catalog

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"workerconnect/internal/domain"
	"workerconnect/internal/pkg/response"
	"workerconnect/internal/repository"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes mounts the public directory endpoints.
func (h *Handler) RegisterRoutes(v1 *gin.RouterGroup) {
	v1.GET("/workers", h.ListWorkers)
	v1.GET("/workers/:id", h.GetWorker)
}

// ListWorkers handles GET /workers with optional occupation, location and
// availability filters.
func (h *Handler) ListWorkers(c *gin.Context) {
	var f repository.WorkerFilters

	f.Occupation = c.Query("occupation")
	f.Location = c.Query("location")
	if availability := c.Query("availability"); availability != "" {
		if !domain.Availability(availability).Valid() {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "availability must be available or unavailable")
			return
		}
		f.Availability = availability
	}

	f.Limit = 20
	if limit := c.Query("limit"); limit != "" {
		if val, err := strconv.Atoi(limit); err == nil && val > 0 && val <= 100 {
			f.Limit = val
		}
	}

	f.Offset = 0
	if page := c.Query("page"); page != "" {
		if val, err := strconv.Atoi(page); err == nil && val > 0 {
			f.Offset = (val - 1) * f.Limit
		}
	}

	workers, total, err := h.service.ListWorkers(c.Request.Context(), f)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Could not list workers")
		return
	}

	totalPages := (int(total) + f.Limit - 1) / f.Limit
	currentPage := (f.Offset / f.Limit) + 1

	response.Success(c, http.StatusOK, gin.H{
		"workers": workers,
		"pagination": gin.H{
			"page":        currentPage,
			"limit":       f.Limit,
			"total":       total,
			"total_pages": totalPages,
		},
	})
}

// GetWorker handles GET /workers/:id.
func (h *Handler) GetWorker(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid worker ID")
		return
	}

	worker, err := h.service.GetWorker(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrWorkerNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Worker not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Could not load worker")
		return
	}

	response.Success(c, http.StatusOK, worker)
}
