package service

import (
	"context"

	"github.com/D4sh12/e-commerce-api/internal/models"
)

// CreateOrderItem — сырая позиция из запроса. Указатели, чтобы валидатор
// различал «поле отсутствует» и «поле невалидно».
type CreateOrderItem struct {
	ProductID *int64
	Quantity  *int64
}

type CreateOrderInput struct {
	Items []CreateOrderItem
}

type ListOrdersFilter struct {
	Limit  int
	Offset int
}

type OrderService interface {
	CreateOrder(ctx context.Context, in CreateOrderInput) (*models.Order, error)
	GetOrder(ctx context.Context, id uint) (*models.Order, error)
	ListOrders(ctx context.Context, f ListOrdersFilter) ([]models.Order, int64, error)
	DeleteOrder(ctx context.Context, id uint) error
}
