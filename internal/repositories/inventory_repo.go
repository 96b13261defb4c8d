package repositories

import (
	"context"

	"stockwatch/internal/models"
)

type InventoryRepository interface {
	// AggregateByWarehouses sums quantities per product across the given
	// warehouses. Products without an inventory row in any of them are not
	// returned.
	AggregateByWarehouses(ctx context.Context, warehouseIDs []int64) ([]*models.ProductStockSummary, error)
	// WarehouseBreakdown returns per-warehouse quantities for one product,
	// restricted to the company's warehouses.
	WarehouseBreakdown(ctx context.Context, productID, companyID int64) ([]models.WarehouseStock, error)
}

type inventoryRepo struct {
	db Database
}

func NewInventoryRepository(db Database) InventoryRepository {
	return &inventoryRepo{db: db}
}

func (r *inventoryRepo) AggregateByWarehouses(ctx context.Context, warehouseIDs []int64) ([]*models.ProductStockSummary, error) {
	query := `
		SELECT p.product_id, p.name, p.sku, p.product_type, COALESCE(SUM(i.quantity), 0) AS total_quantity
		FROM product p
		JOIN inventory i ON i.product_id = p.product_id
		WHERE i.warehouse_id = ANY($1)
		GROUP BY p.product_id, p.name, p.sku, p.product_type
		ORDER BY p.product_id
	`
	rows, err := r.db.Query(ctx, query, warehouseIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var summaries []*models.ProductStockSummary
	for rows.Next() {
		summary := &models.ProductStockSummary{}
		if err := rows.Scan(&summary.ProductID, &summary.Name, &summary.SKU, &summary.ProductType, &summary.TotalQuantity); err != nil {
			return nil, err
		}
		summaries = append(summaries, summary)
	}
	return summaries, rows.Err()
}

func (r *inventoryRepo) WarehouseBreakdown(ctx context.Context, productID, companyID int64) ([]models.WarehouseStock, error) {
	query := `
		SELECT w.warehouse_id, w.location, i.quantity
		FROM warehouse w
		JOIN inventory i ON i.warehouse_id = w.warehouse_id
		WHERE i.product_id = $1 AND w.company_id = $2
		ORDER BY w.warehouse_id
	`
	rows, err := r.db.Query(ctx, query, productID, companyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	breakdown := []models.WarehouseStock{}
	for rows.Next() {
		var stock models.WarehouseStock
		if err := rows.Scan(&stock.ID, &stock.Location, &stock.Quantity); err != nil {
			return nil, err
		}
		breakdown = append(breakdown, stock)
	}
	return breakdown, rows.Err()
}
