package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Supplier struct {
	ID           int64     `json:"id" db:"supplier_id"`
	Name         string    `json:"name" db:"name"`
	ContactEmail *string   `json:"contact_email" db:"contact_email"`
	ContactPhone *string   `json:"contact_phone" db:"contact_phone"`
	Address      *string   `json:"address" db:"address"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

type SupplierProduct struct {
	ID                   int64            `json:"id" db:"supplier_product_id"`
	SupplierID           int64            `json:"supplier_id" db:"supplier_id"`
	ProductID            int64            `json:"product_id" db:"product_id"`
	LeadTimeDays         *int             `json:"lead_time_days" db:"lead_time_days"`
	MinimumOrderQuantity *int             `json:"minimum_order_quantity" db:"minimum_order_quantity"`
	UnitCost             *decimal.Decimal `json:"unit_cost" db:"unit_cost"`
}
