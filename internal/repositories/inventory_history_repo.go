package repositories

import (
	"context"
	"time"

	"stockwatch/internal/models"
)

type InventoryHistoryRepository interface {
	// Record appends a quantity-change entry. History rows are never updated
	// or deleted.
	Record(ctx context.Context, entry *models.InventoryHistory) error
	// HasRecentSale reports whether the product has at least one history
	// entry with the sale reason since the given time.
	HasRecentSale(ctx context.Context, productID int64, since time.Time) (bool, error)
}

type inventoryHistoryRepo struct {
	db Database
}

func NewInventoryHistoryRepository(db Database) InventoryHistoryRepository {
	return &inventoryHistoryRepo{db: db}
}

func (r *inventoryHistoryRepo) Record(ctx context.Context, entry *models.InventoryHistory) error {
	query := `
		INSERT INTO inventory_history (inventory_id, previous_quantity, new_quantity, change_reason, changed_at, changed_by)
		VALUES ($1, $2, $3, $4, NOW(), $5)
		RETURNING history_id
	`
	return r.db.QueryRow(ctx, query, entry.InventoryID, entry.PreviousQuantity, entry.NewQuantity, entry.ChangeReason, entry.ChangedBy).Scan(&entry.ID)
}

func (r *inventoryHistoryRepo) HasRecentSale(ctx context.Context, productID int64, since time.Time) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1
			FROM inventory_history h
			JOIN inventory i ON i.inventory_id = h.inventory_id
			WHERE i.product_id = $1 AND h.change_reason = $2 AND h.changed_at >= $3
		)
	`
	var exists bool
	err := r.db.QueryRow(ctx, query, productID, models.ChangeReasonSale, since).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}
