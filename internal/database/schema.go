package database

import (
	"context"
	"fmt"

	"stockwatch/internal/repositories"
)

// Schema is created if absent at process start. product_type is free text
// with a default rather than a CHECK: the alert computation treats unknown
// types as a distinct bucket with its own default threshold.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS company (
		company_id BIGSERIAL PRIMARY KEY,
		name TEXT NOT NULL,
		email TEXT UNIQUE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS warehouse (
		warehouse_id BIGSERIAL PRIMARY KEY,
		company_id BIGINT NOT NULL REFERENCES company (company_id),
		location TEXT,
		capacity INT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_warehouse_company ON warehouse (company_id)`,
	`CREATE TABLE IF NOT EXISTS product (
		product_id BIGSERIAL PRIMARY KEY,
		name TEXT NOT NULL,
		sku TEXT NOT NULL UNIQUE,
		description TEXT,
		base_price NUMERIC(10, 2) NOT NULL,
		product_type TEXT NOT NULL DEFAULT 'standard',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_product_type ON product (product_type)`,
	`CREATE TABLE IF NOT EXISTS inventory (
		inventory_id BIGSERIAL PRIMARY KEY,
		product_id BIGINT NOT NULL REFERENCES product (product_id),
		warehouse_id BIGINT NOT NULL REFERENCES warehouse (warehouse_id),
		quantity INT NOT NULL DEFAULT 0 CHECK (quantity >= 0),
		low_stock_threshold INT,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		CONSTRAINT uq_product_warehouse UNIQUE (product_id, warehouse_id)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_inventory_warehouse ON inventory (warehouse_id)`,
	`CREATE INDEX IF NOT EXISTS idx_inventory_product_quantity ON inventory (product_id, quantity)`,
	`CREATE TABLE IF NOT EXISTS inventory_history (
		history_id BIGSERIAL PRIMARY KEY,
		inventory_id BIGINT NOT NULL REFERENCES inventory (inventory_id),
		previous_quantity INT,
		new_quantity INT,
		change_reason TEXT,
		changed_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		changed_by TEXT
	)`,
	`CREATE INDEX IF NOT EXISTS idx_history_inventory ON inventory_history (inventory_id)`,
	`CREATE INDEX IF NOT EXISTS idx_history_changed_at ON inventory_history (changed_at)`,
	`CREATE TABLE IF NOT EXISTS supplier (
		supplier_id BIGSERIAL PRIMARY KEY,
		name TEXT NOT NULL,
		contact_email TEXT,
		contact_phone TEXT,
		address TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS supplier_product (
		supplier_product_id BIGSERIAL PRIMARY KEY,
		supplier_id BIGINT NOT NULL REFERENCES supplier (supplier_id),
		product_id BIGINT NOT NULL REFERENCES product (product_id),
		lead_time_days INT,
		minimum_order_quantity INT,
		unit_cost NUMERIC(10, 2),
		CONSTRAINT uq_supplier_product UNIQUE (supplier_id, product_id)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_supplier_product_product ON supplier_product (product_id)`,
}

// EnsureSchema applies the schema statements in order.
func EnsureSchema(ctx context.Context, db repositories.Database) error {
	for _, stmt := range schemaStatements {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("apply schema statement: %w", err)
		}
	}
	return nil
}
