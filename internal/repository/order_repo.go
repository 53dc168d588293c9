package repository

import (
	"context"
	"errors"

	"github.com/D4sh12/e-commerce-api/internal/models"

	"gorm.io/gorm"
)

type OrderListFilter struct {
	UserID uint
	Limit  int
	Offset int
}

type OrderRepo interface {
	Create(ctx context.Context, o *models.Order) error
	GetByID(ctx context.Context, id uint) (*models.Order, error)
	GetByIDForUser(ctx context.Context, id, userID uint) (*models.Order, error)
	ListByUser(ctx context.Context, f OrderListFilter) ([]models.Order, int64, error)
	Delete(ctx context.Context, id uint) (bool, error)

	WithTx(ctx context.Context, fn func(txOrders OrderRepo, txItems OrderItemRepo) error) error
}

type orderRepo struct{ db *gorm.DB }

func NewOrderRepo(db *gorm.DB) OrderRepo { return &orderRepo{db: db} }

func (r *orderRepo) Create(ctx context.Context, o *models.Order) error {
	return r.db.WithContext(ctx).Omit("User", "Items").Create(o).Error
}

func (r *orderRepo) GetByID(ctx context.Context, id uint) (*models.Order, error) {
	var ord models.Order
	err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Items").
		Preload("Items.Product").
		First(&ord, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &ord, nil
}

// GetByIDForUser ищет заказ только среди заказов владельца: чужой заказ
// неотличим от несуществующего.
func (r *orderRepo) GetByIDForUser(ctx context.Context, id, userID uint) (*models.Order, error) {
	var ord models.Order
	err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Items").
		Preload("Items.Product").
		First(&ord, "id = ? AND user_id = ?", id, userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &ord, nil
}

func (r *orderRepo) ListByUser(ctx context.Context, f OrderListFilter) ([]models.Order, int64, error) {
	q := r.db.WithContext(ctx).Model(&models.Order{}).Where("user_id = ?", f.UserID)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if f.Limit <= 0 {
		f.Limit = 10
	}
	if f.Offset < 0 {
		f.Offset = 0
	}

	var list []models.Order
	err := q.Order("created_at DESC").
		Limit(f.Limit).
		Offset(f.Offset).
		Preload("User").
		Preload("Items").
		Preload("Items.Product").
		Find(&list).Error
	return list, total, err
}

// Delete удаляет заказ; позиции удаляются каскадно на уровне БД.
func (r *orderRepo) Delete(ctx context.Context, id uint) (bool, error) {
	tx := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Order{})
	return tx.RowsAffected > 0, tx.Error
}

func (r *orderRepo) WithTx(ctx context.Context, fn func(txOrders OrderRepo, txItems OrderItemRepo) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&orderRepo{db: tx}, &orderItemRepo{db: tx})
	})
}
