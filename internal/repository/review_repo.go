package repository

import (
	"context"

	"workerconnect/internal/domain"

	"gorm.io/gorm"
)

// ReviewRepository is deliberately append-only: reviews are immutable once
// stored, so no update or delete method exists.
type ReviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) *ReviewRepository {
	return &ReviewRepository{db: db}
}

func (r *ReviewRepository) Create(ctx context.Context, rv *domain.Review) error {
	return r.db.WithContext(ctx).Create(rv).Error
}

// ListByWorker returns reviews in insertion order (append order equals
// chronological order).
func (r *ReviewRepository) ListByWorker(ctx context.Context, workerID int64) ([]domain.Review, error) {
	var reviews []domain.Review
	tx := r.db.WithContext(ctx).
		Where("worker_id = ?", workerID).
		Order("id").
		Find(&reviews)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return reviews, nil
}
