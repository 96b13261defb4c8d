package models

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	ProductTypeStandard = "standard"
	ProductTypeBundle   = "bundle"
)

type Product struct {
	ID          int64           `json:"id" db:"product_id"`
	Name        string          `json:"name" db:"name"`
	SKU         string          `json:"sku" db:"sku"`
	Description *string         `json:"description" db:"description"`
	BasePrice   decimal.Decimal `json:"base_price" db:"base_price"`
	ProductType string          `json:"product_type" db:"product_type"`
	CreatedAt   time.Time       `json:"created_at" db:"created_at"`
}

// NewProduct is the validated input for creating a product together with its
// initial stock record.
type NewProduct struct {
	Name            string
	SKU             string
	Price           decimal.Decimal
	ProductType     string
	WarehouseID     int64
	InitialQuantity int
}
