package models

import "time"

type Company struct {
	ID        int64     `json:"id" db:"company_id"`
	Name      string    `json:"name" db:"name"`
	Email     *string   `json:"email" db:"email"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
