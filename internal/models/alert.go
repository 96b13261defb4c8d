package models

const (
	SeverityCritical = "critical"
	SeverityHigh     = "high"
	SeverityMedium   = "medium"
)

// AlertParams are the query parameters of the low-stock alert computation.
type AlertParams struct {
	ThresholdOverride int
	IncludeNoSales    bool
	Days              int
}

// DefaultAlertParams returns the documented defaults: full threshold, sales
// filter on, 30 day lookback.
func DefaultAlertParams() AlertParams {
	return AlertParams{ThresholdOverride: 100, IncludeNoSales: false, Days: 30}
}

// WarehouseStock is the per-warehouse quantity breakdown of an alert.
type WarehouseStock struct {
	ID       int64   `json:"id"`
	Location *string `json:"loc"`
	Quantity int     `json:"qty"`
}

// SupplierOption is a supplier offer attached to an alert. MinOrderQty is
// fetched alongside the rest but stays out of the response payload.
type SupplierOption struct {
	Name        string   `json:"name"`
	Email       *string  `json:"email"`
	LeadTime    *int     `json:"lead_time"`
	MinOrderQty *int     `json:"-"`
	Cost        *float64 `json:"cost"`
}

type LowStockAlert struct {
	ProductID         int64            `json:"product_id"`
	ProductName       string           `json:"product_name"`
	SKU               string           `json:"sku"`
	TotalQuantity     int              `json:"total_quantity"`
	LowStockThreshold int              `json:"low_stock_threshold"`
	Severity          string           `json:"severity"`
	Warehouses        []WarehouseStock `json:"warehouses"`
	Suppliers         []SupplierOption `json:"suppliers"`
}

type LowStockReport struct {
	Alerts      []LowStockAlert `json:"alerts"`
	TotalAlerts int             `json:"total_alerts"`
	Timestamp   string          `json:"timestamp"`
}
