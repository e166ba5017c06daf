package catalog

import (
	"context"

	"workerconnect/internal/domain"
	"workerconnect/internal/repository"
)

type WorkerRepositoryInterface interface {
	GetByID(ctx context.Context, id int64) (*domain.Worker, error)
	List(ctx context.Context, f repository.WorkerFilters) ([]domain.Worker, int64, error)
}
