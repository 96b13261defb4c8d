package models

import "time"

type Warehouse struct {
	ID        int64     `json:"id" db:"warehouse_id"`
	CompanyID int64     `json:"company_id" db:"company_id"`
	Location  *string   `json:"location" db:"location"`
	Capacity  *int      `json:"capacity" db:"capacity"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
