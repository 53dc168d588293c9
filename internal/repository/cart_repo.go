package repository

import (
	"context"
	"errors"

	"github.com/D4sh12/e-commerce-api/internal/models"

	"gorm.io/gorm"
)

type CartRepo interface {
	Create(ctx context.Context, c *models.Cart) error
	GetByUserID(ctx context.Context, userID uint) (*models.Cart, error)
}

type cartRepo struct{ db *gorm.DB }

func NewCartRepo(db *gorm.DB) CartRepo { return &cartRepo{db: db} }

func (r *cartRepo) Create(ctx context.Context, c *models.Cart) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *cartRepo) GetByUserID(ctx context.Context, userID uint) (*models.Cart, error) {
	var cart models.Cart
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&cart).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &cart, nil
}
