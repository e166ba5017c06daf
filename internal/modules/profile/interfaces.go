package profile

import (
	"context"

	"workerconnect/internal/domain"
)

type WorkerRepositoryInterface interface {
	GetByID(ctx context.Context, id int64) (*domain.Worker, error)
	Update(ctx context.Context, w *domain.Worker) error
}

type CustomerRepositoryInterface interface {
	GetByID(ctx context.Context, id int64) (*domain.Customer, error)
	Update(ctx context.Context, c *domain.Customer) error
}
