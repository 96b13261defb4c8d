package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"stockwatch/internal/common"
	"stockwatch/internal/models"
	"stockwatch/internal/repositories"
	"stockwatch/internal/services"
)

// ProductHandlers handles HTTP requests for products
type ProductHandlers struct {
	productService services.ProductService
}

func NewProductHandlers(productService services.ProductService) *ProductHandlers {
	return &ProductHandlers{productService: productService}
}

// createProductRequest keeps price and the integer fields as raw JSON so a
// malformed value yields a field-specific message instead of a bind failure,
// and so prices arrive as exact decimal text (string or number) rather than
// a float64.
type createProductRequest struct {
	Name            *string         `json:"name"`
	SKU             *string         `json:"sku"`
	Price           json.RawMessage `json:"price"`
	WarehouseID     json.RawMessage `json:"warehouse_id"`
	ProductType     *string         `json:"product_type"`
	InitialQuantity json.RawMessage `json:"initial_quantity"`
}

// CreateProduct handles POST /api/products
func (h *ProductHandlers) CreateProduct(c echo.Context) error {
	ctx := c.Request().Context()

	var req createProductRequest
	if err := c.Bind(&req); err != nil {
		return common.SendValidationError(c, "Invalid request format")
	}

	if req.Name == nil || strings.TrimSpace(*req.Name) == "" {
		return common.SendValidationError(c, "Missing required field: name")
	}
	if req.SKU == nil || strings.TrimSpace(*req.SKU) == "" {
		return common.SendValidationError(c, "Missing required field: sku")
	}
	if jsonValueMissing(req.Price) {
		return common.SendValidationError(c, "Missing required field: price")
	}
	if jsonValueMissing(req.WarehouseID) {
		return common.SendValidationError(c, "Missing required field: warehouse_id")
	}

	price, err := decimalFromJSON(req.Price)
	if err != nil {
		return common.SendValidationError(c, "Price must be a valid decimal number")
	}
	if price.IsNegative() {
		return common.SendValidationError(c, "Price cannot be negative")
	}

	warehouseID, err := intFromJSON(req.WarehouseID)
	if err != nil {
		return common.SendValidationError(c, "warehouse_id must be an integer")
	}

	var initialQuantity int64
	if !jsonValueMissing(req.InitialQuantity) {
		initialQuantity, err = intFromJSON(req.InitialQuantity)
		if err != nil {
			return common.SendValidationError(c, "initial_quantity must be an integer")
		}
		if initialQuantity < 0 {
			return common.SendValidationError(c, "Quantity cannot be negative")
		}
	}

	input := &models.NewProduct{
		Name:            *req.Name,
		SKU:             *req.SKU,
		Price:           price,
		WarehouseID:     warehouseID,
		InitialQuantity: int(initialQuantity),
	}
	if req.ProductType != nil {
		input.ProductType = *req.ProductType
	}

	product, err := h.productService.Create(ctx, input)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrWarehouseNotFound):
			return common.SendNotFoundError(c, fmt.Sprintf("Warehouse %d does not exist", warehouseID))
		case errors.Is(err, repositories.ErrDuplicateSKU):
			return common.SendConflictError(c, "SKU already exists")
		default:
			log.Printf("create product failed: %v", err)
			return common.SendServerError(c, "Internal server error")
		}
	}

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"message":      "Product created successfully",
		"product_id":   product.ID,
		"sku":          product.SKU,
		"warehouse_id": warehouseID,
	})
}

func jsonValueMissing(raw json.RawMessage) bool {
	if len(raw) == 0 {
		return true
	}
	return strings.TrimSpace(string(raw)) == "null"
}

// decimalFromJSON parses a JSON number or string as an exact decimal.
func decimalFromJSON(raw json.RawMessage) (decimal.Decimal, error) {
	value := strings.TrimSpace(string(raw))
	if unquoted, err := strconv.Unquote(value); err == nil {
		value = strings.TrimSpace(unquoted)
	}
	return decimal.NewFromString(value)
}

// intFromJSON parses a JSON number or string as an integer.
func intFromJSON(raw json.RawMessage) (int64, error) {
	value := strings.TrimSpace(string(raw))
	if unquoted, err := strconv.Unquote(value); err == nil {
		value = strings.TrimSpace(unquoted)
	}
	return strconv.ParseInt(value, 10, 64)
}
