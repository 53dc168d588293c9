package service

import (
	"context"
	"time"

	"github.com/D4sh12/e-commerce-api/internal/models"
	"github.com/D4sh12/e-commerce-api/internal/repository"
)

type orderService struct {
	repo      *repository.Repository
	validator *OrderValidator
	now       func() time.Time
}

func NewOrderService(repo *repository.Repository, validator *OrderValidator) OrderService {
	return &orderService{
		repo:      repo,
		validator: validator,
		now:       time.Now,
	}
}

func requireAuth(ctx context.Context) (uint, error) {
	uid, ok := UserIDFromContext(ctx)
	if !ok {
		return 0, ErrUnauthorized
	}
	return uid, nil
}

func (s *orderService) CreateOrder(ctx context.Context, in CreateOrderInput) (*models.Order, error) {
	userID, err := requireAuth(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.validator.ValidateOrder(ctx, in); err != nil {
		return nil, err
	}

	now := s.now()
	var order *models.Order

	// Заказ и позиции пишутся одной транзакцией: либо все строки, либо ни одной.
	err = s.repo.Orders.WithTx(ctx, func(txOrders repository.OrderRepo, txItems repository.OrderItemRepo) error {
		order = &models.Order{
			UserID:    userID,
			Status:    models.OrderStatusPending,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := txOrders.Create(ctx, order); err != nil {
			return err
		}

		items := make([]models.OrderItem, 0, len(in.Items))
		for _, it := range in.Items {
			items = append(items, models.OrderItem{
				OrderID:   order.ID,
				ProductID: uint(*it.ProductID),
				Quantity:  *it.Quantity,
				CreatedAt: now,
			})
		}
		if err := txItems.BulkCreate(ctx, items); err != nil {
			return err
		}

		created, err := txOrders.GetByID(ctx, order.ID)
		if err != nil {
			return err
		}
		order = created
		return nil
	})
	if err != nil {
		return nil, err
	}

	return order, nil
}

func (s *orderService) GetOrder(ctx context.Context, id uint) (*models.Order, error) {
	userID, err := requireAuth(ctx)
	if err != nil {
		return nil, err
	}

	ord, err := s.repo.Orders.GetByIDForUser(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	if ord == nil {
		return nil, ErrOrderNotFound
	}
	return ord, nil
}

func (s *orderService) ListOrders(ctx context.Context, f ListOrdersFilter) ([]models.Order, int64, error) {
	userID, err := requireAuth(ctx)
	if err != nil {
		return nil, 0, err
	}

	if f.Limit <= 0 {
		f.Limit = 10
	}
	if f.Offset < 0 {
		f.Offset = 0
	}

	return s.repo.Orders.ListByUser(ctx, repository.OrderListFilter{
		UserID: userID,
		Limit:  f.Limit,
		Offset: f.Offset,
	})
}

func (s *orderService) DeleteOrder(ctx context.Context, id uint) error {
	userID, err := requireAuth(ctx)
	if err != nil {
		return err
	}

	ord, err := s.repo.Orders.GetByIDForUser(ctx, id, userID)
	if err != nil {
		return err
	}
	if ord == nil {
		return ErrOrderNotFound
	}
	if ord.Status != models.OrderStatusPending {
		return ErrOrderNotDeletable
	}

	ok, err := s.repo.Orders.Delete(ctx, ord.ID)
	if err != nil {
		return err
	}
	if !ok {
		return ErrOrderNotFound
	}
	return nil
}
