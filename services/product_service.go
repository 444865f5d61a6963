package services

import (
	"context"

	"kgs-gunshop/models"
	"kgs-gunshop/repositories"
)

type ProductService struct {
	productRepo *repositories.ProductRepository
}

func NewProductService(repo *repositories.ProductRepository) *ProductService {
	return &ProductService{productRepo: repo}
}

func (s *ProductService) GetAllProducts(ctx context.Context) ([]models.Product, error) {
	return s.productRepo.GetAll(ctx)
}

func (s *ProductService) GetProductByID(ctx context.Context, id string) (models.Product, error) {
	return s.productRepo.GetByID(ctx, id)
}

func (s *ProductService) GetProductsByCategory(ctx context.Context, category string) ([]models.Product, error) {
	return s.productRepo.GetByCategory(ctx, category)
}

func (s *ProductService) GetAllCategories(ctx context.Context) ([]string, error) {
	return s.productRepo.Categories(ctx)
}
