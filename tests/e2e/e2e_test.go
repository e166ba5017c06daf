package e2e

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"workerconnect/internal/database"
	"workerconnect/internal/domain"
	"workerconnect/internal/middleware"
	"workerconnect/internal/modules/auth"
	"workerconnect/internal/modules/catalog"
	"workerconnect/internal/modules/profile"
	"workerconnect/internal/modules/review"
	jwtsvc "workerconnect/internal/pkg/jwt"
	"workerconnect/internal/pkg/storage"
	"workerconnect/internal/repository"
)

// recordingMailer captures dispatched OTP codes so the tests can verify
// with the real one.
type recordingMailer struct {
	mu    sync.Mutex
	codes map[string]string
}

func (m *recordingMailer) SendOTP(_ context.Context, email, code string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.codes[email] = code
	return nil
}

func (m *recordingMailer) lastCode(email string) string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.codes[email]
}

type testSuite struct {
	router *gin.Engine
	db     *gorm.DB
	mailer *recordingMailer
}

type envelope struct {
	Success bool                   `json:"success"`
	Data    map[string]interface{} `json:"data,omitempty"`
	Code    string                 `json:"code,omitempty"`
	Message string                 `json:"message,omitempty"`
}

// tiny valid PNG (1x1 transparent pixel)
var pngBytes = []byte{
	0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A,
	0x00, 0x00, 0x00, 0x0D, 0x49, 0x48, 0x44, 0x52,
	0x00, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00, 0x01,
	0x08, 0x06, 0x00, 0x00, 0x00, 0x1F, 0x15, 0xC4,
	0x89, 0x00, 0x00, 0x00, 0x0D, 0x49, 0x44, 0x41,
	0x54, 0x78, 0x9C, 0x62, 0x00, 0x01, 0x00, 0x00,
	0x05, 0x00, 0x01, 0x0D, 0x0A, 0x2D, 0xB4, 0x00,
	0x00, 0x00, 0x00, 0x49, 0x45, 0x4E, 0x44, 0xAE,
	0x42, 0x60, 0x82,
}

func setupSuite(t *testing.T) *testSuite {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := database.Connect(":memory:")
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.Customer{}, &domain.Worker{}, &domain.Review{}))

	customerRepo := repository.NewCustomerRepository(db)
	workerRepo := repository.NewWorkerRepository(db)
	reviewRepo := repository.NewReviewRepository(db)

	store := storage.NewLocalStore(t.TempDir(), "/static/uploads")
	mail := &recordingMailer{codes: map[string]string{}}
	j := jwtsvc.New("test_secret_key_32_characters_min", 0)

	authService := auth.NewService(customerRepo, workerRepo, j, mail, store, "test-pepper", 10*time.Minute)
	authHandler := auth.NewHandler(authService)

	profileService := profile.NewService(workerRepo, customerRepo, store)
	profileHandler := profile.NewHandler(profileService)

	catalogService := catalog.NewService(workerRepo)
	catalogHandler := catalog.NewHandler(catalogService)

	reviewService := review.NewService(reviewRepo, workerRepo, customerRepo)
	reviewHandler := review.NewHandler(reviewService)

	log := logrus.New()
	log.SetOutput(io.Discard)

	r := gin.New()
	r.Use(middleware.RequestLogger(log))
	r.Use(middleware.CORS())

	v1 := r.Group("/api/v1")
	{
		authHandler.RegisterRoutes(v1)
		catalogHandler.RegisterRoutes(v1)

		authed := v1.Group("/")
		authed.Use(middleware.JWTAuth(j))
		{
			profileHandler.RegisterRoutes(authed)
			reviewHandler.RegisterRoutes(authed)
		}
	}

	return &testSuite{router: r, db: db, mailer: mail}
}

func (s *testSuite) doJSON(t *testing.T, method, path, token string, body interface{}) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	var env envelope
	_ = json.Unmarshal(w.Body.Bytes(), &env)
	return w, env
}

func (s *testSuite) doMultipart(t *testing.T, path string, fields map[string]string, files map[string][]byte) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	for name, content := range files {
		part, err := mw.CreateFormFile(name, name+".png")
		require.NoError(t, err)
		_, err = part.Write(content)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	var env envelope
	_ = json.Unmarshal(w.Body.Bytes(), &env)
	return w, env
}

func workerSignupFields(email, phone string) map[string]string {
	return map[string]string{
		"name":         "Ravi Kumar",
		"email":        email,
		"phone":        phone,
		"password":     "password1",
		"location":     "Pune",
		"occupation":   "Plumber",
		"skills":       "Pipe Fitting, Leak Repair",
		"experience":   "8",
		"availability": "available",
		"bio":          "Residential plumbing.",
		"price":        "450",
		"aadhar":       "123456789012",
	}
}

func TestWorkerJourney(t *testing.T) {
	s := setupSuite(t)

	// Signup with an avatar upload. No token is issued yet.
	w, env := s.doMultipart(t, "/api/v1/workers/signup",
		workerSignupFields("ravi@example.com", "9876543210"),
		map[string][]byte{"profilePic": pngBytes},
	)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	require.True(t, env.Success)
	assert.NotContains(t, env.Data, "token")

	user := env.Data["user"].(map[string]interface{})
	assert.Equal(t, false, user["email_verified"])
	assert.NotContains(t, w.Body.String(), "password")

	// Signin is blocked until the email is verified.
	w, env = s.doJSON(t, http.MethodPost, "/api/v1/workers/signin", "", gin.H{
		"identifier": "ravi@example.com",
		"password":   "password1",
	})
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "EMAIL_NOT_VERIFIED", env.Code)

	// A wrong code is rejected without consuming the pending one.
	w, _ = s.doJSON(t, http.MethodPost, "/api/v1/workers/verify-email", "", gin.H{
		"email": "ravi@example.com",
		"otp":   "000000",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Verify with the real dispatched code.
	code := s.mailer.lastCode("ravi@example.com")
	require.Len(t, code, 6)
	w, env = s.doJSON(t, http.MethodPost, "/api/v1/workers/verify-email", "", gin.H{
		"email": "ravi@example.com",
		"otp":   code,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	require.NotEmpty(t, env.Data["token"])

	// The code is single-use: the same code no longer matters because the
	// account is verified and verify is now trivially idempotent.
	w, _ = s.doJSON(t, http.MethodPost, "/api/v1/workers/verify-email", "", gin.H{
		"email": "ravi@example.com",
		"otp":   "000000",
	})
	assert.Equal(t, http.StatusOK, w.Code)

	// Signin now succeeds.
	w, env = s.doJSON(t, http.MethodPost, "/api/v1/workers/signin", "", gin.H{
		"identifier": "ravi@example.com",
		"password":   "password1",
	})
	require.Equal(t, http.StatusOK, w.Code)
	token := env.Data["token"].(string)
	require.NotEmpty(t, token)

	// Own profile is readable and the update merges.
	w, env = s.doJSON(t, http.MethodGet, "/api/v1/workers/profile", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	req := httptest.NewRequest(http.MethodPut, "/api/v1/workers/profile",
		bytes.NewBufferString(`{"bio":"Updated bio"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Contains(t, rec.Body.String(), "Updated bio")
}

func TestDuplicateWorkerSignup(t *testing.T) {
	s := setupSuite(t)

	w, _ := s.doMultipart(t, "/api/v1/workers/signup",
		workerSignupFields("dup@example.com", "9876543211"), nil)
	require.Equal(t, http.StatusCreated, w.Code)

	w, env := s.doMultipart(t, "/api/v1/workers/signup",
		workerSignupFields("dup@example.com", "9876543212"), nil)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "ACCOUNT_EXISTS", env.Code)

	// Same phone under a fresh email collides too; the message covers both.
	w, env = s.doMultipart(t, "/api/v1/workers/signup",
		workerSignupFields("other@example.com", "9876543211"), nil)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "ACCOUNT_EXISTS", env.Code)
	assert.Contains(t, env.Message, "email or phone")
}

func TestCustomerSignupAndReviewFlow(t *testing.T) {
	s := setupSuite(t)

	// A verified worker to review.
	w, _ := s.doMultipart(t, "/api/v1/workers/signup",
		workerSignupFields("target@example.com", "9876543213"), nil)
	require.Equal(t, http.StatusCreated, w.Code)
	code := s.mailer.lastCode("target@example.com")
	w, env := s.doJSON(t, http.MethodPost, "/api/v1/workers/verify-email", "", gin.H{
		"email": "target@example.com",
		"otp":   code,
	})
	require.Equal(t, http.StatusOK, w.Code)
	workerToken := env.Data["token"].(string)
	workerID := int64(env.Data["user"].(map[string]interface{})["id"].(float64))

	// Customer signup returns a token immediately.
	w, env = s.doMultipart(t, "/api/v1/customers/signup", map[string]string{
		"name":     "Asha Patel",
		"email":    "asha@example.com",
		"phone":    "9123456780",
		"password": "password1",
		"location": "Mumbai",
	}, nil)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	customerToken := env.Data["token"].(string)
	require.NotEmpty(t, customerToken)

	reviewPath := fmt.Sprintf("/api/v1/workers/%d/addReview", workerID)

	// Workers cannot write reviews.
	w, _ = s.doJSON(t, http.MethodPost, reviewPath, workerToken, gin.H{
		"rating": 5, "comment": "self praise",
	})
	assert.Equal(t, http.StatusForbidden, w.Code)

	// Out-of-range rating is rejected.
	w, _ = s.doJSON(t, http.MethodPost, reviewPath, customerToken, gin.H{
		"rating": 6, "comment": "too good",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Two valid reviews, the second anonymous.
	w, _ = s.doJSON(t, http.MethodPost, reviewPath, customerToken, gin.H{
		"rating": 5, "comment": "Great work",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w, _ = s.doJSON(t, http.MethodPost, reviewPath, customerToken, gin.H{
		"rating": 4, "comment": "Second visit", "isAnon": true,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	// Listing requires a token and preserves append order.
	listPath := fmt.Sprintf("/api/v1/workers/%d/reviews", workerID)
	w, _ = s.doJSON(t, http.MethodGet, listPath, "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	req := httptest.NewRequest(http.MethodGet, listPath, nil)
	req.Header.Set("Authorization", "Bearer "+customerToken)
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var listEnv struct {
		Success bool `json:"success"`
		Data    []struct {
			Rating     int    `json:"rating"`
			Comment    string `json:"comment"`
			AuthorName string `json:"author_name"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &listEnv))
	require.Len(t, listEnv.Data, 2)
	assert.Equal(t, "Great work", listEnv.Data[0].Comment)
	assert.Equal(t, "Asha Patel", listEnv.Data[0].AuthorName)
	assert.Equal(t, "Anonymous", listEnv.Data[1].AuthorName)
}

func TestPublicCatalog(t *testing.T) {
	s := setupSuite(t)

	w, _ := s.doMultipart(t, "/api/v1/workers/signup",
		workerSignupFields("cat@example.com", "9876543214"), nil)
	require.Equal(t, http.StatusCreated, w.Code)

	// Listing is public and hides identity documents.
	w, env := s.doJSON(t, http.MethodGet, "/api/v1/workers?occupation=Plumber", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	workers := env.Data["workers"].([]interface{})
	require.Len(t, workers, 1)
	first := workers[0].(map[string]interface{})
	assert.Empty(t, first["aadhar_number"])
	assert.NotContains(t, w.Body.String(), "123456789012")

	id := int64(first["id"].(float64))
	w, _ = s.doJSON(t, http.MethodGet, fmt.Sprintf("/api/v1/workers/%d", id), "", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w, env = s.doJSON(t, http.MethodGet, "/api/v1/workers/99999", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "NOT_FOUND", env.Code)
}
