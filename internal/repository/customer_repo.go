package repository

import (
	"context"

	"workerconnect/internal/domain"
	"workerconnect/internal/pkg/validator"

	"gorm.io/gorm"
)

type CustomerRepository struct {
	db *gorm.DB
}

func NewCustomerRepository(db *gorm.DB) *CustomerRepository {
	return &CustomerRepository{db: db}
}

func (r *CustomerRepository) Create(ctx context.Context, c *domain.Customer) error {
	c.Email = validator.NormalizeEmail(c.Email)
	c.Phone = validator.NormalizePhone(c.Phone)
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *CustomerRepository) GetByEmail(ctx context.Context, email string) (*domain.Customer, error) {
	var c domain.Customer
	tx := r.db.WithContext(ctx).
		Where("email = ?", validator.NormalizeEmail(email)).
		First(&c)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &c, nil
}

func (r *CustomerRepository) GetByPhone(ctx context.Context, phone string) (*domain.Customer, error) {
	var c domain.Customer
	tx := r.db.WithContext(ctx).
		Where("phone = ?", validator.NormalizePhone(phone)).
		First(&c)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &c, nil
}

func (r *CustomerRepository) GetByID(ctx context.Context, id int64) (*domain.Customer, error) {
	var c domain.Customer
	tx := r.db.WithContext(ctx).First(&c, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &c, nil
}

func (r *CustomerRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64
	tx := r.db.WithContext(ctx).Model(&domain.Customer{}).
		Where("email = ?", validator.NormalizeEmail(email)).
		Count(&count)
	return count > 0, tx.Error
}

func (r *CustomerRepository) Update(ctx context.Context, c *domain.Customer) error {
	c.Email = validator.NormalizeEmail(c.Email)
	c.Phone = validator.NormalizePhone(c.Phone)
	return r.db.WithContext(ctx).Save(c).Error
}
