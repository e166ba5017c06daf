package catalog

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"workerconnect/internal/domain"
	"workerconnect/internal/repository"
)

type Service struct {
	workers WorkerRepositoryInterface
}

func NewService(workers WorkerRepositoryInterface) *Service {
	return &Service{workers: workers}
}

// ListWorkers returns a page of the public worker directory. Secrets are
// stripped from every record.
func (s *Service) ListWorkers(ctx context.Context, f repository.WorkerFilters) ([]domain.Worker, int64, error) {
	workers, total, err := s.workers.List(ctx, f)
	if err != nil {
		return nil, 0, err
	}
	for i := range workers {
		scrub(&workers[i])
	}
	return workers, total, nil
}

// GetWorker returns a single public worker record.
func (s *Service) GetWorker(ctx context.Context, id int64) (*domain.Worker, error) {
	worker, err := s.workers.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrWorkerNotFound
		}
		return nil, err
	}
	scrub(worker)
	return worker, nil
}

// scrub removes fields that must never appear in public listings. The
// Aadhaar number and its scan are identity documents, not directory data.
func scrub(w *domain.Worker) {
	w.PasswordHash = ""
	w.AadharNumber = ""
	w.AadharPicURL = ""
}
