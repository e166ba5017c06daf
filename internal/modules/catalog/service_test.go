package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"workerconnect/internal/domain"
	"workerconnect/internal/repository"
)

type mockWorkerRepo struct {
	mock.Mock
}

func (m *mockWorkerRepo) GetByID(ctx context.Context, id int64) (*domain.Worker, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Worker), args.Error(1)
}

func (m *mockWorkerRepo) List(ctx context.Context, f repository.WorkerFilters) ([]domain.Worker, int64, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]domain.Worker), args.Get(1).(int64), args.Error(2)
}

func TestListWorkers_StripsSecrets(t *testing.T) {
	workers := new(mockWorkerRepo)
	svc := NewService(workers)

	workers.On("List", mock.Anything, mock.Anything).Return([]domain.Worker{
		{
			ID:           1,
			Name:         "Ravi Kumar",
			PasswordHash: "$2a$10$hash",
			AadharNumber: "123456789012",
			AadharPicURL: "http://cdn/aadhar.png",
		},
	}, int64(1), nil)

	result, total, err := svc.ListWorkers(context.Background(), repository.WorkerFilters{Limit: 20})
	require.NoError(t, err)

	assert.Equal(t, int64(1), total)
	require.Len(t, result, 1)
	assert.Empty(t, result[0].PasswordHash)
	assert.Empty(t, result[0].AadharNumber)
	assert.Empty(t, result[0].AadharPicURL)
	assert.Equal(t, "Ravi Kumar", result[0].Name)
}

func TestListWorkers_PassesFilters(t *testing.T) {
	workers := new(mockWorkerRepo)
	svc := NewService(workers)

	want := repository.WorkerFilters{
		Occupation:   "Plumber",
		Location:     "Pune",
		Availability: string(domain.AvailabilityAvailable),
		Limit:        10,
		Offset:       20,
	}
	workers.On("List", mock.Anything, want).Return([]domain.Worker{}, int64(0), nil)

	_, _, err := svc.ListWorkers(context.Background(), want)
	require.NoError(t, err)
	workers.AssertExpectations(t)
}

func TestGetWorker_NotFound(t *testing.T) {
	workers := new(mockWorkerRepo)
	svc := NewService(workers)

	workers.On("GetByID", mock.Anything, int64(99)).Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.GetWorker(context.Background(), 99)
	assert.ErrorIs(t, err, ErrWorkerNotFound)
}

func TestGetWorker_StripsSecrets(t *testing.T) {
	workers := new(mockWorkerRepo)
	svc := NewService(workers)

	workers.On("GetByID", mock.Anything, int64(1)).Return(&domain.Worker{
		ID:           1,
		PasswordHash: "$2a$10$hash",
		AadharNumber: "123456789012",
	}, nil)

	worker, err := svc.GetWorker(context.Background(), 1)
	require.NoError(t, err)
	assert.Empty(t, worker.PasswordHash)
	assert.Empty(t, worker.AadharNumber)
}
