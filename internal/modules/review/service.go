package review

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"workerconnect/internal/domain"
)

const anonymousName = "Anonymous"

type Service struct {
	reviews ReviewRepositoryInterface
	workers WorkerGate
	authors AuthorGate
}

func NewService(reviews ReviewRepositoryInterface, workers WorkerGate, authors AuthorGate) *Service {
	return &Service{reviews: reviews, workers: workers, authors: authors}
}

// Create appends a review to the worker's history. The author's display
// name and picture are snapshotted from the customer record at write time;
// anonymous reviews carry a placeholder identity but still record the
// author id.
func (s *Service) Create(ctx context.Context, authorID, workerID int64, req CreateReviewRequest) (*domain.Review, error) {
	if req.Rating < 1 || req.Rating > 5 {
		return nil, ErrInvalidRequest
	}
	if strings.TrimSpace(req.Comment) == "" {
		return nil, ErrInvalidRequest
	}

	if _, err := s.workers.GetByID(ctx, workerID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrWorkerNotFound
		}
		return nil, err
	}

	author, err := s.authors.GetByID(ctx, authorID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAuthorNotFound
		}
		return nil, err
	}

	name := author.Name
	picURL := author.ProfilePicURL
	if req.IsAnon {
		name = anonymousName
		picURL = domain.DefaultProfilePicURL
	}

	rv := &domain.Review{
		WorkerID:     workerID,
		AuthorID:     authorID,
		Rating:       req.Rating,
		Comment:      strings.TrimSpace(req.Comment),
		IsAnonymous:  req.IsAnon,
		AuthorName:   name,
		AuthorPicURL: picURL,
		CreatedAt:    time.Now(),
	}

	if err := s.reviews.Create(ctx, rv); err != nil {
		return nil, err
	}
	return rv, nil
}

// ListByWorker returns the full review history in append order.
func (s *Service) ListByWorker(ctx context.Context, workerID int64) ([]domain.Review, error) {
	if _, err := s.workers.GetByID(ctx, workerID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrWorkerNotFound
		}
		return nil, err
	}
	return s.reviews.ListByWorker(ctx, workerID)
}
