package dto

import (
	"encoding/json"
	"time"

	"github.com/D4sh12/e-commerce-api/internal/models"
	"github.com/D4sh12/e-commerce-api/internal/service"
)

// OptionalInt — целое поле запроса, терпимое к неверному типу: строка или
// дробное число не валят разбор тела, а доходят до валидатора как
// неположительное значение, чтобы клиент получил точное сообщение.
type OptionalInt struct {
	Present bool
	Valid   bool
	Value   int64
}

func (f *OptionalInt) UnmarshalJSON(b []byte) error {
	f.Present = true
	if err := json.Unmarshal(b, &f.Value); err != nil {
		f.Valid = false
		f.Value = 0
		return nil
	}
	f.Valid = true
	return nil
}

func (f OptionalInt) toPtr() *int64 {
	if !f.Present {
		return nil
	}
	v := f.Value
	if !f.Valid {
		v = 0
	}
	return &v
}

type OrderItemRequest struct {
	ProductID OptionalInt `json:"product_id"`
	Quantity  OptionalInt `json:"quantity"`
}

type CreateOrderRequest struct {
	Items []OrderItemRequest `json:"items"`
}

func (r CreateOrderRequest) ToInput() service.CreateOrderInput {
	in := service.CreateOrderInput{Items: make([]service.CreateOrderItem, 0, len(r.Items))}
	for _, it := range r.Items {
		in.Items = append(in.Items, service.CreateOrderItem{
			ProductID: it.ProductID.toPtr(),
			Quantity:  it.Quantity.toPtr(),
		})
	}
	return in
}

// OrderProductResponse — товар внутри позиции заказа: без остатка,
// бренда, описания, категории и изображений.
type OrderProductResponse struct {
	ID    uint    `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

type OrderItemResponse struct {
	ID       uint                 `json:"id"`
	Quantity int64                `json:"quantity"`
	Product  OrderProductResponse `json:"product"`
}

type OrderResponse struct {
	ID          uint                `json:"id"`
	Status      string              `json:"status"`
	TotalAmount float64             `json:"total_amount"`
	CreatedAt   time.Time           `json:"created_at"`
	UpdatedAt   time.Time           `json:"updated_at"`
	User        UserResponse        `json:"user"`
	Items       []OrderItemResponse `json:"items"`
}

func NewOrderResponse(o *models.Order) OrderResponse {
	items := make([]OrderItemResponse, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, OrderItemResponse{
			ID:       it.ID,
			Quantity: it.Quantity,
			Product: OrderProductResponse{
				ID:    it.Product.ID,
				Name:  it.Product.Name,
				Price: centsToAmount(it.Product.PriceCents),
			},
		})
	}
	return OrderResponse{
		ID:          o.ID,
		Status:      string(o.Status),
		TotalAmount: centsToAmount(service.OrderTotalCents(o)),
		CreatedAt:   o.CreatedAt,
		UpdatedAt:   o.UpdatedAt,
		User:        NewUserResponse(&o.User),
		Items:       items,
	}
}

func NewOrderListResponse(orders []models.Order) []OrderResponse {
	out := make([]OrderResponse, 0, len(orders))
	for i := range orders {
		out = append(out, NewOrderResponse(&orders[i]))
	}
	return out
}

func centsToAmount(cents int64) float64 {
	return float64(cents) / 100
}
