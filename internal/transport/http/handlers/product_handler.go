package handlers

import (
	"errors"
	"net/http"

	"github.com/D4sh12/e-commerce-api/internal/service"
	"github.com/D4sh12/e-commerce-api/internal/transport/http/dto"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type ProductHandler struct {
	products service.ProductService
	log      *zap.Logger
}

func NewProductHandler(products service.ProductService, log *zap.Logger) *ProductHandler {
	return &ProductHandler{products: products, log: log}
}

// List godoc
// @Summary Каталог товаров
// @Tags products
// @Produce json
// @Param q query string false "Поиск по названию"
// @Param category query string false "Фильтр по категории"
// @Param page query int false "Номер страницы" default(1)
// @Param limit query int false "Размер страницы" default(20)
// @Success 200 {object} dto.Response "Список товаров"
// @Failure 500 {object} dto.Response "Внутренняя ошибка"
// @Router /products [get]
func (h *ProductHandler) List(c *gin.Context) {
	page := intQuery(c, "page", 1)
	limit := intQuery(c, "limit", 20)
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}

	f := service.ListProductsFilter{
		Query:  c.Query("q"),
		Limit:  limit,
		Offset: (page - 1) * limit,
	}
	if cat := c.Query("category"); cat != "" {
		f.Category = &cat
	}

	products, total, err := h.products.ListProducts(c.Request.Context(), f)
	if err != nil {
		h.log.Error("Product listing failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, dto.NewError("Internal server error"))
		return
	}

	c.JSON(http.StatusOK, dto.NewSuccess("Products successfully fetched", gin.H{
		"products": dto.NewProductListResponse(products),
		"meta":     dto.NewMeta(page, limit, total),
	}))
}

// Get godoc
// @Summary Товар по идентификатору
// @Tags products
// @Produce json
// @Param id path int true "ID товара"
// @Success 200 {object} dto.Response "Товар"
// @Failure 404 {object} dto.Response "Товар не найден"
// @Router /products/{id} [get]
func (h *ProductHandler) Get(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		c.JSON(http.StatusNotFound, dto.NewError("Product not found"))
		return
	}

	product, err := h.products.GetProduct(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			c.JSON(http.StatusNotFound, dto.NewError("Product not found"))
			return
		}
		h.log.Error("Product fetch failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, dto.NewError("Internal server error"))
		return
	}

	c.JSON(http.StatusOK, dto.NewSuccess("Product successfully fetched", gin.H{
		"product": dto.NewProductResponse(product),
	}))
}
