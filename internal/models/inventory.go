package models

import "time"

type Inventory struct {
	ID                int64     `json:"id" db:"inventory_id"`
	ProductID         int64     `json:"product_id" db:"product_id"`
	WarehouseID       int64     `json:"warehouse_id" db:"warehouse_id"`
	Quantity          int       `json:"quantity" db:"quantity"`
	LowStockThreshold *int      `json:"low_stock_threshold" db:"low_stock_threshold"`
	UpdatedAt         time.Time `json:"updated_at" db:"updated_at"`
}

// ProductStockSummary is one row of the per-product quantity aggregation
// across a set of warehouses.
type ProductStockSummary struct {
	ProductID     int64  `json:"product_id"`
	Name          string `json:"name"`
	SKU           string `json:"sku"`
	ProductType   string `json:"product_type"`
	TotalQuantity int    `json:"total_quantity"`
}
