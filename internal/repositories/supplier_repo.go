package repositories

import (
	"context"

	"stockwatch/internal/models"

	"github.com/shopspring/decimal"
)

type SupplierRepository interface {
	// OffersByProduct returns every supplier offer for a product, regardless
	// of which company is asking.
	OffersByProduct(ctx context.Context, productID int64) ([]models.SupplierOption, error)
}

type supplierRepo struct {
	db Database
}

func NewSupplierRepository(db Database) SupplierRepository {
	return &supplierRepo{db: db}
}

func (r *supplierRepo) OffersByProduct(ctx context.Context, productID int64) ([]models.SupplierOption, error) {
	query := `
		SELECT s.name, s.contact_email, sp.lead_time_days, sp.minimum_order_quantity, sp.unit_cost
		FROM supplier s
		JOIN supplier_product sp ON sp.supplier_id = s.supplier_id
		WHERE sp.product_id = $1
		ORDER BY s.supplier_id
	`
	rows, err := r.db.Query(ctx, query, productID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	offers := []models.SupplierOption{}
	for rows.Next() {
		var offer models.SupplierOption
		var unitCost *decimal.Decimal
		if err := rows.Scan(&offer.Name, &offer.Email, &offer.LeadTime, &offer.MinOrderQty, &unitCost); err != nil {
			return nil, err
		}
		if unitCost != nil {
			cost, _ := unitCost.Float64()
			offer.Cost = &cost
		}
		offers = append(offers, offer)
	}
	return offers, rows.Err()
}
