package repositories

import (
	"context"
	"fmt"

	"stockwatch/internal/models"
)

type ProductRepository interface {
	// CreateWithInitialStock inserts the product and its first inventory row
	// in one transaction. A unique SKU violation surfaces as ErrDuplicateSKU;
	// any other failure rolls both inserts back.
	CreateWithInitialStock(ctx context.Context, product *models.Product, warehouseID int64, quantity int) error
	GetByID(ctx context.Context, id int64) (*models.Product, error)
}

type productRepo struct {
	db Database
}

func NewProductRepository(db Database) ProductRepository {
	return &productRepo{db: db}
}

func (r *productRepo) CreateWithInitialStock(ctx context.Context, product *models.Product, warehouseID int64, quantity int) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin product creation: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	insertProduct := `
		INSERT INTO product (name, sku, base_price, product_type, created_at)
		VALUES ($1, $2, $3, $4, NOW())
		RETURNING product_id
	`
	if err := tx.QueryRow(ctx, insertProduct, product.Name, product.SKU, product.BasePrice, product.ProductType).Scan(&product.ID); err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicateSKU
		}
		return fmt.Errorf("insert product: %w", err)
	}

	insertInventory := `
		INSERT INTO inventory (product_id, warehouse_id, quantity, updated_at)
		VALUES ($1, $2, $3, NOW())
	`
	if _, err := tx.Exec(ctx, insertInventory, product.ID, warehouseID, quantity); err != nil {
		return fmt.Errorf("insert inventory: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit product creation: %w", err)
	}
	return nil
}

func (r *productRepo) GetByID(ctx context.Context, id int64) (*models.Product, error) {
	product := &models.Product{}
	query := `
		SELECT product_id, name, sku, description, base_price, product_type, created_at
		FROM product
		WHERE product_id = $1
	`
	err := r.db.QueryRow(ctx, query, id).Scan(&product.ID, &product.Name, &product.SKU, &product.Description, &product.BasePrice, &product.ProductType, &product.CreatedAt)
	if err != nil {
		return nil, err
	}
	return product, nil
}
