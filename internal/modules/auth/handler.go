package auth

import (
	"errors"
	"mime/multipart"
	"net/http"

	"workerconnect/internal/pkg/response"
	"workerconnect/internal/pkg/storage"

	"github.com/gin-gonic/gin"
)

// Handler manages all HTTP interactions for authentication and email
// verification.
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(v1 *gin.RouterGroup) {
	workers := v1.Group("/workers")
	{
		workers.POST("/signup", h.WorkerSignup)
		workers.POST("/signin", h.WorkerSignin)
		workers.POST("/verify-email", h.VerifyEmail)
		workers.POST("/resend-email-otp", h.ResendEmailOTP)
	}

	customers := v1.Group("/customers")
	{
		customers.POST("/signup", h.CustomerSignup)
		customers.POST("/signin", h.CustomerSignin)
	}
}

// CustomerSignup handles POST /customers/signup (multipart: scalar fields
// plus an optional profilePic part). A token is returned immediately.
func (h *Handler) CustomerSignup(c *gin.Context) {
	var req RegisterCustomerRequest
	if err := c.ShouldBind(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	files := CustomerFiles{ProfilePic: formFile(c, "profilePic")}

	customer, token, err := h.service.RegisterCustomer(c.Request.Context(), req, files)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{
		"user":  customer,
		"token": token,
	})
}

// WorkerSignup handles POST /workers/signup (multipart: scalar fields plus
// profilePic, aadharPic, previousWorkPics, introVid parts). No token is
// issued; the worker must verify their email first.
func (h *Handler) WorkerSignup(c *gin.Context) {
	var req RegisterWorkerRequest
	if err := c.ShouldBind(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	files := WorkerFiles{
		ProfilePic:       formFile(c, "profilePic"),
		AadharPic:        formFile(c, "aadharPic"),
		PreviousWorkPics: formFiles(c, "previousWorkPics"),
		IntroVid:         formFile(c, "introVid"),
	}

	worker, err := h.service.RegisterWorker(c.Request.Context(), req, files)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{
		"user":    worker,
		"message": "Account created. Verify your email with the code we sent you.",
	})
}

func (h *Handler) CustomerSignin(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	customer, token, err := h.service.LoginCustomer(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"user":  customer,
		"token": token,
	})
}

func (h *Handler) WorkerSignin(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	worker, token, err := h.service.LoginWorker(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"user":  worker,
		"token": token,
	})
}

// VerifyEmail handles POST /workers/verify-email {email, otp}. On success
// the response carries a login token.
func (h *Handler) VerifyEmail(c *gin.Context) {
	var req VerifyEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Email and OTP are required")
		return
	}

	worker, token, err := h.service.VerifyWorkerEmail(c.Request.Context(), req.Email, req.OTP)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"user":  worker,
		"token": token,
	})
}

func (h *Handler) ResendEmailOTP(c *gin.Context) {
	var req ResendOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Email is required")
		return
	}

	if err := h.service.ResendWorkerOTP(c.Request.Context(), req.Email); err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"message": "OTP resent to email",
	})
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

// respondError maps workflow sentinels onto the response envelope. Raw
// store and driver errors never reach the client.
func respondError(c *gin.Context, err error) {
	var vErr *ValidationError
	switch {
	case errors.As(err, &vErr):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", vErr.Field+" "+vErr.Reason)
	case errors.Is(err, ErrDuplicateAccount):
		response.Error(c, http.StatusConflict, "ACCOUNT_EXISTS", "An account with this email or phone already exists")
	case errors.Is(err, ErrInvalidIdentifier):
		response.Error(c, http.StatusBadRequest, "INVALID_IDENTIFIER", "Enter a valid email or phone number")
	case errors.Is(err, ErrAccountNotFound):
		response.Error(c, http.StatusNotFound, "ACCOUNT_NOT_FOUND", "Account not found")
	case errors.Is(err, ErrInvalidCredentials):
		response.Error(c, http.StatusUnauthorized, "INVALID_CREDENTIALS", "Email/phone or password is incorrect")
	case errors.Is(err, ErrEmailNotVerified):
		response.Error(c, http.StatusForbidden, "EMAIL_NOT_VERIFIED", "Email not verified")
	case errors.Is(err, ErrInvalidOTP):
		response.Error(c, http.StatusBadRequest, "INVALID_OTP", "Invalid OTP")
	case errors.Is(err, ErrOTPExpired):
		response.Error(c, http.StatusBadRequest, "OTP_EXPIRED", "OTP expired, please request a new one")
	case errors.Is(err, ErrNoPendingOTP):
		response.Error(c, http.StatusBadRequest, "NO_PENDING_OTP", "No OTP found, please resend")
	case errors.Is(err, ErrAlreadyVerified):
		response.Error(c, http.StatusBadRequest, "ALREADY_VERIFIED", "Email already verified")
	case errors.Is(err, storage.ErrInvalidMimeType),
		errors.Is(err, storage.ErrFileTooLarge),
		errors.Is(err, storage.ErrEmptyFile):
		response.Error(c, http.StatusBadRequest, "UPLOAD_FAILED", "Attached file is not acceptable")
	case errors.Is(err, ErrUploadFailed):
		response.Error(c, http.StatusInternalServerError, "UPLOAD_FAILED", "Could not store uploaded file")
	case errors.Is(err, ErrPersistenceFailed):
		response.Error(c, http.StatusInternalServerError, "PERSISTENCE_FAILED", "Could not save account")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Something went wrong")
	}
}
