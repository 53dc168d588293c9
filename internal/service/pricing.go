package service

import "github.com/D4sh12/e-commerce-api/internal/models"

// Сумма заказа не хранится: она пересчитывается при каждом чтении по
// текущей цене товара. Изменение цены в каталоге меняет и сумму уже
// размещённых заказов.
func OrderTotalCents(o *models.Order) int64 {
	var total int64
	for _, item := range o.Items {
		total += item.Product.PriceCents * item.Quantity
	}
	return total
}
