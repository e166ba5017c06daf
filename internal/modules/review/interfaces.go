package review

import (
	"context"

	"workerconnect/internal/domain"
)

type ReviewRepositoryInterface interface {
	Create(ctx context.Context, rv *domain.Review) error
	ListByWorker(ctx context.Context, workerID int64) ([]domain.Review, error)
}

// WorkerGate checks the review target exists.
type WorkerGate interface {
	GetByID(ctx context.Context, id int64) (*domain.Worker, error)
}

// AuthorGate resolves the reviewing customer's display identity.
type AuthorGate interface {
	GetByID(ctx context.Context, id int64) (*domain.Customer, error)
}
