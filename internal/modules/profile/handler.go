package profile

import (
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"sort"
	"strings"

	"github.com/gin-gonic/gin"

	"workerconnect/internal/domain"
	"workerconnect/internal/middleware"
	"workerconnect/internal/pkg/response"
	"workerconnect/internal/pkg/storage"
	"workerconnect/internal/pkg/validator"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes mounts the profile endpoints under the authenticated group.
func (h *Handler) RegisterRoutes(authed *gin.RouterGroup) {
	workers := authed.Group("/workers", middleware.RequireRole(string(domain.RoleWorker)))
	{
		workers.GET("/profile", h.GetWorkerProfile)
		workers.PUT("/profile", h.UpdateWorkerProfile)
	}

	customers := authed.Group("/customers", middleware.RequireRole(string(domain.RoleCustomer)))
	{
		customers.GET("/profile", h.GetCustomerProfile)
		customers.PUT("/profile", h.UpdateCustomerProfile)
	}
}

func (h *Handler) GetWorkerProfile(c *gin.Context) {
	worker, err := h.service.GetWorker(c.Request.Context(), c.GetInt64("user_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, worker)
}

func (h *Handler) GetCustomerProfile(c *gin.Context) {
	customer, err := h.service.GetCustomer(c.Request.Context(), c.GetInt64("user_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, customer)
}

// UpdateWorkerProfile handles PUT /workers/profile (multipart). Only the
// provided fields overwrite; new files replace the stored URLs.
func (h *Handler) UpdateWorkerProfile(c *gin.Context) {
	var req UpdateWorkerRequest
	if err := c.ShouldBind(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	if fields := validator.Validate(&req); fields != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", fieldErrors(fields))
		return
	}

	files := WorkerFiles{
		ProfilePic:       formFile(c, "profilePic"),
		PreviousWorkPics: formFiles(c, "previousWorkPics"),
		IntroVid:         formFile(c, "introVid"),
	}

	worker, err := h.service.UpdateWorker(c.Request.Context(), c.GetInt64("user_id"), req, files)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, worker)
}

func (h *Handler) UpdateCustomerProfile(c *gin.Context) {
	var req UpdateCustomerRequest
	if err := c.ShouldBind(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	if fields := validator.Validate(&req); fields != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", fieldErrors(fields))
		return
	}

	files := CustomerFiles{ProfilePic: formFile(c, "profilePic")}

	customer, err := h.service.UpdateCustomer(c.Request.Context(), c.GetInt64("user_id"), req, files)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, customer)
}

// fieldErrors flattens validation failures into a single message,
// sorted by field so the output is stable.
func fieldErrors(fields map[string]string) string {
	parts := make([]string, 0, len(fields))
	for field, tag := range fields {
		parts = append(parts, fmt.Sprintf("%s failed on %s", field, tag))
	}
	sort.Strings(parts)
	return "Invalid fields: " + strings.Join(parts, "; ")
}

func formFile(c *gin.Context, name string) *multipart.FileHeader {
	fh, err := c.FormFile(name)
	if err != nil {
		return nil
	}
	return fh
}

func formFiles(c *gin.Context, name string) []*multipart.FileHeader {
	form, err := c.MultipartForm()
	if err != nil || form == nil {
		return nil
	}
	return form.File[name]
}

func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrProfileNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Profile not found")
	case errors.Is(err, ErrInvalidField):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
	case errors.Is(err, storage.ErrInvalidMimeType),
		errors.Is(err, storage.ErrFileTooLarge),
		errors.Is(err, storage.ErrEmptyFile):
		response.Error(c, http.StatusBadRequest, "UPLOAD_FAILED", "Attached file is not acceptable")
	case errors.Is(err, ErrUploadFailed):
		response.Error(c, http.StatusInternalServerError, "UPLOAD_FAILED", "Could not store uploaded file")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Something went wrong")
	}
}
