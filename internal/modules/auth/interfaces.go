package auth

import (
	"context"
	"time"

	"workerconnect/internal/domain"
)

// CustomerRepositoryInterface — only the methods the auth service uses.
type CustomerRepositoryInterface interface {
	Create(ctx context.Context, c *domain.Customer) error
	GetByEmail(ctx context.Context, email string) (*domain.Customer, error)
	GetByPhone(ctx context.Context, phone string) (*domain.Customer, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}

// WorkerRepositoryInterface — account lookups plus OTP state mutation.
type WorkerRepositoryInterface interface {
	Create(ctx context.Context, w *domain.Worker) error
	GetByEmail(ctx context.Context, email string) (*domain.Worker, error)
	GetByPhone(ctx context.Context, phone string) (*domain.Worker, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	SetOTP(ctx context.Context, workerID int64, codeHash string, expiresAt time.Time) error
	MarkEmailVerified(ctx context.Context, workerID int64) error
}
