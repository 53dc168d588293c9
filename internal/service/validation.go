package service

import (
	"context"

	"github.com/D4sh12/e-commerce-api/internal/repository"
)

// OrderValidator проверяет состав заказа против каталога. Без побочных
// эффектов: можно вызывать и без создания заказа.
type OrderValidator struct {
	products repository.ProductRepo
}

func NewOrderValidator(products repository.ProductRepo) *OrderValidator {
	return &OrderValidator{products: products}
}

// ValidateOrder проходит позиции в порядке запроса; для каждой позиции
// срабатывает первое нарушенное правило.
func (v *OrderValidator) ValidateOrder(ctx context.Context, in CreateOrderInput) error {
	if len(in.Items) == 0 {
		return NewValidationError("Order must contain at least one item")
	}

	for _, item := range in.Items {
		if err := v.validateItem(ctx, item); err != nil {
			return err
		}
	}
	return nil
}

func (v *OrderValidator) validateItem(ctx context.Context, item CreateOrderItem) error {
	if item.ProductID == nil {
		return NewValidationError("The product ID is required")
	}
	if *item.ProductID <= 0 {
		return NewValidationError("The product ID should be a positive integer")
	}

	product, err := v.products.GetByID(ctx, uint(*item.ProductID))
	if err != nil {
		return err
	}
	if product == nil {
		return NewValidationError("The product ID provided doesn't exist")
	}

	if item.Quantity == nil {
		return NewValidationError("The product quantity is required")
	}
	if *item.Quantity <= 0 {
		return NewValidationError("The product quantity should be a positive integer")
	}

	if product.Quantity < *item.Quantity {
		return NewValidationError("The product is not available in the requested quantity")
	}
	return nil
}
