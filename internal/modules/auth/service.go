package auth

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"strings"
	"time"

	"workerconnect/internal/domain"
	"workerconnect/internal/pkg/mailer"
	"workerconnect/internal/pkg/storage"
	"workerconnect/internal/pkg/validator"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const (
	minPasswordLength = 8
	maxExperienceYrs  = 60
)

type jwtService interface {
	GenerateToken(userID int64, role string) (string, error)
}

// Service contains all business logic for registration, login, and email
// verification.
type Service struct {
	customers CustomerRepositoryInterface
	workers   WorkerRepositoryInterface
	jwt       jwtService
	mailer    mailer.Mailer
	store     storage.Store
	otpPepper string
	otpTTL    time.Duration
}

func NewService(
	customers CustomerRepositoryInterface,
	workers WorkerRepositoryInterface,
	jwt jwtService,
	m mailer.Mailer,
	store storage.Store,
	otpPepper string,
	otpTTL time.Duration,
) *Service {
	return &Service{
		customers: customers,
		workers:   workers,
		jwt:       jwt,
		mailer:    m,
		store:     store,
		otpPepper: otpPepper,
		otpTTL:    otpTTL,
	}
}

// RegisterCustomer creates a customer account and returns it with a session
// token. Customers are not verification-gated.
func (s *Service) RegisterCustomer(ctx context.Context, req RegisterCustomerRequest, files CustomerFiles) (*domain.Customer, string, error) {
	if err := validateAccountFields(req.Name, req.Email, req.Phone, req.Password); err != nil {
		return nil, "", err
	}

	exists, err := s.customers.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return nil, "", err
	}
	if exists {
		return nil, "", ErrDuplicateAccount
	}

	profilePicURL := domain.DefaultProfilePicURL
	if files.ProfilePic != nil {
		if profilePicURL, err = s.upload(ctx, files.ProfilePic, "profile"); err != nil {
			return nil, "", err
		}
	}

	hash, err := hashPassword(req.Password)
	if err != nil {
		return nil, "", err
	}

	customer := &domain.Customer{
		Name:          strings.TrimSpace(req.Name),
		Email:         validator.NormalizeEmail(req.Email),
		Phone:         validator.NormalizePhone(req.Phone),
		PasswordHash:  hash,
		Location:      strings.TrimSpace(req.Location),
		ProfilePicURL: profilePicURL,
	}

	if err := s.customers.Create(ctx, customer); err != nil {
		return nil, "", translatePersistError(err)
	}

	token, err := s.jwt.GenerateToken(customer.ID, string(domain.RoleCustomer))
	if err != nil {
		return nil, "", err
	}

	customer.PasswordHash = ""
	return customer, token, nil
}

// RegisterWorker creates an unverified worker account and dispatches the
// email OTP. No session token is issued until the email is verified.
func (s *Service) RegisterWorker(ctx context.Context, req RegisterWorkerRequest, files WorkerFiles) (*domain.Worker, error) {
	if err := validateWorkerFields(req); err != nil {
		return nil, err
	}

	exists, err := s.workers.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrDuplicateAccount
	}

	// All uploads happen before anything is persisted: a failed upload
	// aborts the whole registration with no partial account.
	profilePicURL := domain.DefaultProfilePicURL
	if files.ProfilePic != nil {
		if profilePicURL, err = s.upload(ctx, files.ProfilePic, "profile"); err != nil {
			return nil, err
		}
	}

	var aadharPicURL string
	if files.AadharPic != nil {
		if aadharPicURL, err = s.upload(ctx, files.AadharPic, "aadhar"); err != nil {
			return nil, err
		}
	}

	workPicURLs := make([]string, 0, len(files.PreviousWorkPics))
	for _, fh := range files.PreviousWorkPics {
		url, err := s.upload(ctx, fh, "work")
		if err != nil {
			return nil, err
		}
		workPicURLs = append(workPicURLs, url)
	}

	var introVidURL string
	if files.IntroVid != nil {
		if introVidURL, err = s.upload(ctx, files.IntroVid, "intro"); err != nil {
			return nil, err
		}
	}

	hash, err := hashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	availability := domain.Availability(req.Availability)
	if availability == "" {
		availability = domain.AvailabilityAvailable
	}

	worker := &domain.Worker{
		Name:                strings.TrimSpace(req.Name),
		Email:               validator.NormalizeEmail(req.Email),
		Phone:               validator.NormalizePhone(req.Phone),
		PasswordHash:        hash,
		Location:            strings.TrimSpace(req.Location),
		ProfilePicURL:       profilePicURL,
		Occupation:          strings.TrimSpace(req.Occupation),
		Skills:              normalizeSkills(req.Skills),
		ExperienceYears:     req.Experience,
		Bio:                 req.Bio,
		PriceHint:           req.Price,
		Availability:        availability,
		AadharNumber:        strings.ReplaceAll(strings.TrimSpace(req.Aadhar), " ", ""),
		AadharPicURL:        aadharPicURL,
		IntroVidURL:         introVidURL,
		PreviousWorkPicURLs: workPicURLs,
		EmailVerified:       false,
	}

	if err := s.workers.Create(ctx, worker); err != nil {
		return nil, translatePersistError(err)
	}

	if err := s.issueOTP(ctx, worker); err != nil {
		return nil, err
	}

	worker.PasswordHash = ""
	return worker, nil
}

// LoginCustomer resolves the identifier, checks the password, and issues a
// token. Customers have no verification gate.
func (s *Service) LoginCustomer(ctx context.Context, req LoginRequest) (*domain.Customer, string, error) {
	customer, err := s.findCustomer(ctx, req.identifier())
	if err != nil {
		return nil, "", err
	}

	if err := comparePassword(customer.PasswordHash, req.Password); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.jwt.GenerateToken(customer.ID, string(domain.RoleCustomer))
	if err != nil {
		return nil, "", err
	}

	customer.PasswordHash = ""
	return customer, token, nil
}

// LoginWorker is LoginCustomer plus the verification gate: an unverified
// worker never receives a token, even with correct credentials.
func (s *Service) LoginWorker(ctx context.Context, req LoginRequest) (*domain.Worker, string, error) {
	worker, err := s.findWorker(ctx, req.identifier())
	if err != nil {
		return nil, "", err
	}

	if err := comparePassword(worker.PasswordHash, req.Password); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	if !worker.EmailVerified {
		return nil, "", ErrEmailNotVerified
	}

	token, err := s.jwt.GenerateToken(worker.ID, string(domain.RoleWorker))
	if err != nil {
		return nil, "", err
	}

	worker.PasswordHash = ""
	return worker, token, nil
}

func (s *Service) findCustomer(ctx context.Context, identifier string) (*domain.Customer, error) {
	var (
		customer *domain.Customer
		err      error
	)
	switch {
	case validator.IsEmail(identifier):
		customer, err = s.customers.GetByEmail(ctx, identifier)
	case validator.IsPhone(identifier):
		customer, err = s.customers.GetByPhone(ctx, identifier)
	default:
		return nil, ErrInvalidIdentifier
	}
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, err
	}
	return customer, nil
}

func (s *Service) findWorker(ctx context.Context, identifier string) (*domain.Worker, error) {
	var (
		worker *domain.Worker
		err    error
	)
	switch {
	case validator.IsEmail(identifier):
		worker, err = s.workers.GetByEmail(ctx, identifier)
	case validator.IsPhone(identifier):
		worker, err = s.workers.GetByPhone(ctx, identifier)
	default:
		return nil, ErrInvalidIdentifier
	}
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, err
	}
	return worker, nil
}

func (s *Service) upload(ctx context.Context, fh *multipart.FileHeader, folder string) (string, error) {
	url, err := s.store.Save(ctx, fh, folder)
	if err != nil {
		return "", fmt.Errorf("%s: %w: %w", fh.Filename, ErrUploadFailed, err)
	}
	return url, nil
}

func validateAccountFields(name, email, phone, password string) error {
	if strings.TrimSpace(name) == "" {
		return invalidField("name", "is required")
	}
	if !validator.IsEmail(email) {
		return invalidField("email", "must be a valid email address")
	}
	if !validator.IsPhone(phone) {
		return invalidField("phone", "must be a valid 10-digit mobile number")
	}
	if len(password) < minPasswordLength {
		return invalidField("password", "must be at least 8 characters")
	}
	return nil
}

func validateWorkerFields(req RegisterWorkerRequest) error {
	if err := validateAccountFields(req.Name, req.Email, req.Phone, req.Password); err != nil {
		return err
	}
	if strings.TrimSpace(req.Occupation) == "" {
		return invalidField("occupation", "is required")
	}
	if len(normalizeSkills(req.Skills)) == 0 {
		return invalidField("skills", "must not be empty")
	}
	if req.Experience < 0 || req.Experience > maxExperienceYrs {
		return invalidField("experience", "must be between 0 and 60")
	}
	if req.Availability != "" && !domain.Availability(req.Availability).Valid() {
		return invalidField("availability", "must be available or unavailable")
	}
	if !validator.IsAadhar(req.Aadhar) {
		return invalidField("aadhar", "must be a 12-digit number")
	}
	return nil
}

// normalizeSkills trims entries and splits comma-separated values, so both
// repeated form fields and a single "a, b, c" value are accepted.
func normalizeSkills(raw []string) []string {
	out := make([]string, 0, len(raw))
	for _, entry := range raw {
		for _, skill := range strings.Split(entry, ",") {
			if skill = strings.TrimSpace(skill); skill != "" {
				out = append(out, skill)
			}
		}
	}
	return out
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func comparePassword(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}

// translatePersistError maps store-level uniqueness violations to
// ErrDuplicateAccount; the raw driver error never reaches the caller. Two
// concurrent signups with the same email race down to the unique index, so
// the constraint violation must be handled here as well as the pre-check.
func translatePersistError(err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) || isUniqueViolation(err) {
		return ErrDuplicateAccount
	}
	return fmt.Errorf("%w: %v", ErrPersistenceFailed, err)
}

func isUniqueViolation(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "SQLSTATE 23505") ||
		strings.Contains(msg, "duplicate key value violates unique constraint") ||
		strings.Contains(msg, "UNIQUE constraint failed")
}
