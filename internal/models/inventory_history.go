package models

import "time"

// ChangeReasonSale marks history entries written for sale events. The alert
// computation only looks at this reason.
const ChangeReasonSale = "sale"

// InventoryHistory rows are append-only; nothing in this codebase updates or
// deletes them.
type InventoryHistory struct {
	ID               int64     `json:"id" db:"history_id"`
	InventoryID      int64     `json:"inventory_id" db:"inventory_id"`
	PreviousQuantity int       `json:"previous_quantity" db:"previous_quantity"`
	NewQuantity      int       `json:"new_quantity" db:"new_quantity"`
	ChangeReason     string    `json:"change_reason" db:"change_reason"`
	ChangedAt        time.Time `json:"changed_at" db:"changed_at"`
	ChangedBy        *string   `json:"changed_by" db:"changed_by"`
}
