package repositories

import (
	"context"

	"stockwatch/internal/models"
)

type WarehouseRepository interface {
	Create(ctx context.Context, warehouse *models.Warehouse) error
	GetByID(ctx context.Context, id int64) (*models.Warehouse, error)
	ListByCompany(ctx context.Context, companyID int64) ([]*models.Warehouse, error)
}

type warehouseRepo struct {
	db Database
}

func NewWarehouseRepository(db Database) WarehouseRepository {
	return &warehouseRepo{db: db}
}

func (r *warehouseRepo) Create(ctx context.Context, warehouse *models.Warehouse) error {
	query := `
		INSERT INTO warehouse (company_id, location, capacity, created_at)
		VALUES ($1, $2, $3, NOW())
		RETURNING warehouse_id
	`
	return r.db.QueryRow(ctx, query, warehouse.CompanyID, warehouse.Location, warehouse.Capacity).Scan(&warehouse.ID)
}

func (r *warehouseRepo) GetByID(ctx context.Context, id int64) (*models.Warehouse, error) {
	warehouse := &models.Warehouse{}
	query := `
		SELECT warehouse_id, company_id, location, capacity, created_at
		FROM warehouse
		WHERE warehouse_id = $1
	`
	err := r.db.QueryRow(ctx, query, id).Scan(&warehouse.ID, &warehouse.CompanyID, &warehouse.Location, &warehouse.Capacity, &warehouse.CreatedAt)
	if err != nil {
		return nil, err
	}
	return warehouse, nil
}

func (r *warehouseRepo) ListByCompany(ctx context.Context, companyID int64) ([]*models.Warehouse, error) {
	query := `
		SELECT warehouse_id, company_id, location, capacity, created_at
		FROM warehouse
		WHERE company_id = $1
		ORDER BY warehouse_id
	`
	rows, err := r.db.Query(ctx, query, companyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var warehouses []*models.Warehouse
	for rows.Next() {
		warehouse := &models.Warehouse{}
		if err := rows.Scan(&warehouse.ID, &warehouse.CompanyID, &warehouse.Location, &warehouse.Capacity, &warehouse.CreatedAt); err != nil {
			return nil, err
		}
		warehouses = append(warehouses, warehouse)
	}
	return warehouses, rows.Err()
}
