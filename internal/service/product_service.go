package service

import (
	"context"

	"github.com/D4sh12/e-commerce-api/internal/models"
	"github.com/D4sh12/e-commerce-api/internal/repository"
)

type ListProductsFilter struct {
	Query    string
	Category *string
	Limit    int
	Offset   int
}

type ProductService interface {
	GetProduct(ctx context.Context, id uint) (*models.Product, error)
	ListProducts(ctx context.Context, f ListProductsFilter) ([]models.Product, int64, error)
}

type productService struct {
	repo *repository.Repository
}

func NewProductService(repo *repository.Repository) ProductService {
	return &productService{repo: repo}
}

func (s *productService) GetProduct(ctx context.Context, id uint) (*models.Product, error) {
	p, err := s.repo.Products.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrProductNotFound
	}
	return p, nil
}

func (s *productService) ListProducts(ctx context.Context, f ListProductsFilter) ([]models.Product, int64, error) {
	if f.Limit <= 0 {
		f.Limit = 20
	}
	if f.Offset < 0 {
		f.Offset = 0
	}

	return s.repo.Products.List(ctx, repository.ProductListFilter{
		Query:    f.Query,
		Category: f.Category,
		Limit:    f.Limit,
		Offset:   f.Offset,
	})
}
