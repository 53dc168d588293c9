package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/D4sh12/e-commerce-api/internal/service"
	"github.com/D4sh12/e-commerce-api/internal/transport/http/dto"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type OrderHandler struct {
	orders service.OrderService
	log    *zap.Logger
}

func NewOrderHandler(orders service.OrderService, log *zap.Logger) *OrderHandler {
	return &OrderHandler{orders: orders, log: log}
}

// List godoc
// @Summary Список заказов пользователя
// @Tags orders
// @Produce json
// @Param page query int false "Номер страницы" default(1)
// @Param limit query int false "Размер страницы" default(10)
// @Success 200 {object} dto.Response "Заказы с метаданными пагинации"
// @Failure 401 {object} dto.Response "Нет токена"
// @Security BearerAuth
// @Router /orders [get]
func (h *OrderHandler) List(c *gin.Context) {
	page := intQuery(c, "page", 1)
	limit := intQuery(c, "limit", 10)
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	orders, total, err := h.orders.ListOrders(c.Request.Context(), service.ListOrdersFilter{
		Limit:  limit,
		Offset: (page - 1) * limit,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSuccess("Orders successfully fetched", gin.H{
		"orders": dto.NewOrderListResponse(orders),
		"meta":   dto.NewMeta(page, limit, total),
	}))
}

// Create godoc
// @Summary Создание заказа
// @Description Проверяет позиции по каталогу и создаёт заказ одной транзакцией
// @Tags orders
// @Accept json
// @Produce json
// @Param order body dto.CreateOrderRequest true "Позиции заказа"
// @Success 201 {object} dto.Response "Заказ создан"
// @Failure 400 {object} dto.Response "Ошибка валидации позиций"
// @Failure 401 {object} dto.Response "Нет токена"
// @Security BearerAuth
// @Router /orders [post]
func (h *OrderHandler) Create(c *gin.Context) {
	var req dto.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warn("Invalid create order request", zap.Error(err))
		c.JSON(http.StatusBadRequest, dto.NewError("Invalid request body"))
		return
	}

	order, err := h.orders.CreateOrder(c.Request.Context(), req.ToInput())
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewSuccess("Order successfully created", gin.H{
		"order": dto.NewOrderResponse(order),
	}))
}

// Get godoc
// @Summary Заказ по идентификатору
// @Tags orders
// @Produce json
// @Param id path int true "ID заказа"
// @Success 200 {object} dto.Response "Заказ"
// @Failure 404 {object} dto.Response "Заказ не найден"
// @Security BearerAuth
// @Router /orders/{id} [get]
func (h *OrderHandler) Get(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		c.JSON(http.StatusNotFound, dto.NewError("Order not found"))
		return
	}

	order, err := h.orders.GetOrder(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSuccess("Order successfully fetched", gin.H{
		"order": dto.NewOrderResponse(order),
	}))
}

// Delete godoc
// @Summary Удаление заказа
// @Description Удалить можно только заказ в статусе Pending
// @Tags orders
// @Produce json
// @Param id path int true "ID заказа"
// @Success 200 {object} dto.Response "Заказ удалён"
// @Failure 400 {object} dto.Response "Заказ нельзя удалить"
// @Failure 404 {object} dto.Response "Заказ не найден"
// @Security BearerAuth
// @Router /orders/{id} [delete]
func (h *OrderHandler) Delete(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		c.JSON(http.StatusNotFound, dto.NewError("Order not found"))
		return
	}

	if err := h.orders.DeleteOrder(c.Request.Context(), id); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSuccess("Order successfully deleted", nil))
}

func (h *OrderHandler) respondError(c *gin.Context, err error) {
	if verr, ok := service.AsValidationError(err); ok {
		c.JSON(http.StatusBadRequest, dto.NewError(verr.Message))
		return
	}
	switch {
	case errors.Is(err, service.ErrOrderNotFound):
		c.JSON(http.StatusNotFound, dto.NewError("Order not found"))
	case errors.Is(err, service.ErrOrderNotDeletable):
		c.JSON(http.StatusBadRequest, dto.NewError("Order cannot be deleted"))
	case errors.Is(err, service.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, dto.NewError("Unauthorized"))
	default:
		h.log.Error("Order operation failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, dto.NewError("Internal server error"))
	}
}

func idParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

func intQuery(c *gin.Context, key string, def int) int {
	v := c.Query(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}
