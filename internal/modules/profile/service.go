package profile

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"strings"

	"gorm.io/gorm"

	"workerconnect/internal/domain"
	"workerconnect/internal/pkg/storage"
)

const maxExperienceYrs = 60

type Service struct {
	workers   WorkerRepositoryInterface
	customers CustomerRepositoryInterface
	store     storage.Store
}

func NewService(workers WorkerRepositoryInterface, customers CustomerRepositoryInterface, store storage.Store) *Service {
	return &Service{
		workers:   workers,
		customers: customers,
		store:     store,
	}
}

// GetWorker returns the worker's own record with secrets stripped.
func (s *Service) GetWorker(ctx context.Context, workerID int64) (*domain.Worker, error) {
	worker, err := s.workers.GetByID(ctx, workerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	worker.PasswordHash = ""
	return worker, nil
}

func (s *Service) GetCustomer(ctx context.Context, customerID int64) (*domain.Customer, error) {
	customer, err := s.customers.GetByID(ctx, customerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	customer.PasswordHash = ""
	return customer, nil
}

// UpdateWorker merges the provided fields into the stored record. Absent
// fields keep their value; new files are uploaded first and replace the
// stored URLs only when the whole batch succeeds.
func (s *Service) UpdateWorker(ctx context.Context, workerID int64, req UpdateWorkerRequest, files WorkerFiles) (*domain.Worker, error) {
	worker, err := s.workers.GetByID(ctx, workerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}

	if err := applyWorkerFields(worker, req); err != nil {
		return nil, err
	}

	if files.ProfilePic != nil {
		url, err := s.upload(ctx, files.ProfilePic, "profile")
		if err != nil {
			return nil, err
		}
		worker.ProfilePicURL = url
	}
	if len(files.PreviousWorkPics) > 0 {
		urls := make([]string, 0, len(files.PreviousWorkPics))
		for _, fh := range files.PreviousWorkPics {
			url, err := s.upload(ctx, fh, "work")
			if err != nil {
				return nil, err
			}
			urls = append(urls, url)
		}
		worker.PreviousWorkPicURLs = urls
	}
	if files.IntroVid != nil {
		url, err := s.upload(ctx, files.IntroVid, "intro")
		if err != nil {
			return nil, err
		}
		worker.IntroVidURL = url
	}

	if err := s.workers.Update(ctx, worker); err != nil {
		return nil, err
	}

	worker.PasswordHash = ""
	return worker, nil
}

func (s *Service) UpdateCustomer(ctx context.Context, customerID int64, req UpdateCustomerRequest, files CustomerFiles) (*domain.Customer, error) {
	customer, err := s.customers.GetByID(ctx, customerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}

	if req.Name != nil {
		if strings.TrimSpace(*req.Name) == "" {
			return nil, fmt.Errorf("%w: name must not be blank", ErrInvalidField)
		}
		customer.Name = strings.TrimSpace(*req.Name)
	}
	if req.Location != nil {
		customer.Location = strings.TrimSpace(*req.Location)
	}

	if files.ProfilePic != nil {
		url, err := s.upload(ctx, files.ProfilePic, "profile")
		if err != nil {
			return nil, err
		}
		customer.ProfilePicURL = url
	}

	if err := s.customers.Update(ctx, customer); err != nil {
		return nil, err
	}

	customer.PasswordHash = ""
	return customer, nil
}

func applyWorkerFields(worker *domain.Worker, req UpdateWorkerRequest) error {
	if req.Name != nil {
		if strings.TrimSpace(*req.Name) == "" {
			return fmt.Errorf("%w: name must not be blank", ErrInvalidField)
		}
		worker.Name = strings.TrimSpace(*req.Name)
	}
	if req.Location != nil {
		worker.Location = strings.TrimSpace(*req.Location)
	}
	if req.Occupation != nil {
		if strings.TrimSpace(*req.Occupation) == "" {
			return fmt.Errorf("%w: occupation must not be blank", ErrInvalidField)
		}
		worker.Occupation = strings.TrimSpace(*req.Occupation)
	}
	if req.Skills != nil {
		skills := normalizeSkills(req.Skills)
		if len(skills) == 0 {
			return fmt.Errorf("%w: skills must not be empty", ErrInvalidField)
		}
		worker.Skills = skills
	}
	if req.Experience != nil {
		if *req.Experience < 0 || *req.Experience > maxExperienceYrs {
			return fmt.Errorf("%w: experience must be between 0 and 60", ErrInvalidField)
		}
		worker.ExperienceYears = *req.Experience
	}
	if req.Bio != nil {
		worker.Bio = *req.Bio
	}
	if req.Price != nil {
		if *req.Price < 0 {
			return fmt.Errorf("%w: price must not be negative", ErrInvalidField)
		}
		worker.PriceHint = *req.Price
	}
	if req.Availability != nil {
		availability := domain.Availability(*req.Availability)
		if !availability.Valid() {
			return fmt.Errorf("%w: availability must be available or unavailable", ErrInvalidField)
		}
		worker.Availability = availability
	}
	return nil
}

func (s *Service) upload(ctx context.Context, fh *multipart.FileHeader, folder string) (string, error) {
	url, err := s.store.Save(ctx, fh, folder)
	if err != nil {
		return "", fmt.Errorf("%s: %w: %w", fh.Filename, ErrUploadFailed, err)
	}
	return url, nil
}

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
