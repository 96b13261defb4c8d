package services

import (
	"context"
	"errors"
	"fmt"

	"stockwatch/internal/models"
	"stockwatch/internal/repositories"

	"github.com/jackc/pgx/v5"
)

type ProductService interface {
	// Create persists a product and its initial inventory row atomically.
	// Returns ErrWarehouseNotFound if the target warehouse does not exist and
	// repositories.ErrDuplicateSKU on a SKU conflict.
	Create(ctx context.Context, input *models.NewProduct) (*models.Product, error)
}

type productService struct {
	productRepo   repositories.ProductRepository
	warehouseRepo repositories.WarehouseRepository
}

func NewProductService(productRepo repositories.ProductRepository, warehouseRepo repositories.WarehouseRepository) ProductService {
	return &productService{
		productRepo:   productRepo,
		warehouseRepo: warehouseRepo,
	}
}

func (s *productService) Create(ctx context.Context, input *models.NewProduct) (*models.Product, error) {
	if _, err := s.warehouseRepo.GetByID(ctx, input.WarehouseID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrWarehouseNotFound
		}
		return nil, fmt.Errorf("lookup warehouse %d: %w", input.WarehouseID, err)
	}

	productType := input.ProductType
	if productType == "" {
		productType = models.ProductTypeStandard
	}

	product := &models.Product{
		Name:        input.Name,
		SKU:         input.SKU,
		BasePrice:   input.Price,
		ProductType: productType,
	}
	if err := s.productRepo.CreateWithInitialStock(ctx, product, input.WarehouseID, input.InitialQuantity); err != nil {
		return nil, err
	}
	return product, nil
}
