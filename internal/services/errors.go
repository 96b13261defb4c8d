package services

import "errors"

var (
	ErrCompanyNotFound   = errors.New("company not found")
	ErrWarehouseNotFound = errors.New("warehouse not found")
)
