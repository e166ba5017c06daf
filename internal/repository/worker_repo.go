package repository

import (
	"context"
	"time"

	"workerconnect/internal/domain"
	"workerconnect/internal/pkg/validator"

	"gorm.io/gorm"
)

type WorkerRepository struct {
	db *gorm.DB
}

func NewWorkerRepository(db *gorm.DB) *WorkerRepository {
	return &WorkerRepository{db: db}
}

// WorkerFilters narrows the public worker listing.
type WorkerFilters struct {
	Occupation   string
	Location     string
	Availability string
	Limit        int
	Offset       int
}

func (r *WorkerRepository) Create(ctx context.Context, w *domain.Worker) error {
	w.Email = validator.NormalizeEmail(w.Email)
	w.Phone = validator.NormalizePhone(w.Phone)
	return r.db.WithContext(ctx).Create(w).Error
}

func (r *WorkerRepository) GetByEmail(ctx context.Context, email string) (*domain.Worker, error) {
	var w domain.Worker
	tx := r.db.WithContext(ctx).
		Where("email = ?", validator.NormalizeEmail(email)).
		First(&w)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &w, nil
}

func (r *WorkerRepository) GetByPhone(ctx context.Context, phone string) (*domain.Worker, error) {
	var w domain.Worker
	tx := r.db.WithContext(ctx).
		Where("phone = ?", validator.NormalizePhone(phone)).
		First(&w)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &w, nil
}

func (r *WorkerRepository) GetByID(ctx context.Context, id int64) (*domain.Worker, error) {
	var w domain.Worker
	tx := r.db.WithContext(ctx).First(&w, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &w, nil
}

func (r *WorkerRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64
	tx := r.db.WithContext(ctx).Model(&domain.Worker{}).
		Where("email = ?", validator.NormalizeEmail(email)).
		Count(&count)
	return count > 0, tx.Error
}

func (r *WorkerRepository) Update(ctx context.Context, w *domain.Worker) error {
	w.Email = validator.NormalizeEmail(w.Email)
	w.Phone = validator.NormalizePhone(w.Phone)
	return r.db.WithContext(ctx).Save(w).Error
}

// List returns workers matching the filters plus the unpaginated total.
func (r *WorkerRepository) List(ctx context.Context, f WorkerFilters) ([]domain.Worker, int64, error) {
	q := r.db.WithContext(ctx).Model(&domain.Worker{})

	if f.Occupation != "" {
		q = q.Where("LOWER(occupation) = LOWER(?)", f.Occupation)
	}
	if f.Location != "" {
		q = q.Where("LOWER(location) LIKE LOWER(?)", "%"+f.Location+"%")
	}
	if f.Availability != "" {
		q = q.Where("availability = ?", f.Availability)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var workers []domain.Worker
	if err := q.Order("id").Limit(f.Limit).Offset(f.Offset).Find(&workers).Error; err != nil {
		return nil, 0, err
	}
	return workers, total, nil
}

// SetOTP stores a fresh peppered code hash and expiry, overwriting any
// prior pending code.
func (r *WorkerRepository) SetOTP(ctx context.Context, workerID int64, codeHash string, expiresAt time.Time) error {
	return r.db.WithContext(ctx).Model(&domain.Worker{}).
		Where("id = ?", workerID).
		Updates(map[string]any{
			"otp_hash":       codeHash,
			"otp_expires_at": expiresAt,
			"updated_at":     time.Now(),
		}).Error
}

// MarkEmailVerified flips the verified flag and consumes the pending code.
func (r *WorkerRepository) MarkEmailVerified(ctx context.Context, workerID int64) error {
	return r.db.WithContext(ctx).Model(&domain.Worker{}).
		Where("id = ?", workerID).
		Updates(map[string]any{
			"email_verified": true,
			"otp_hash":       "",
			"otp_expires_at": nil,
			"updated_at":     time.Now(),
		}).Error
}
