package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"stockwatch/internal/common"
	"stockwatch/internal/models"
	"stockwatch/internal/services"
)

// AlertHandlers handles HTTP requests for low-stock alerts
type AlertHandlers struct {
	alertService services.AlertService
}

func NewAlertHandlers(alertService services.AlertService) *AlertHandlers {
	return &AlertHandlers{alertService: alertService}
}

// LowStockAlerts handles GET /api/companies/:company_id/alerts/low-stock
func (h *AlertHandlers) LowStockAlerts(c echo.Context) error {
	ctx := c.Request().Context()

	companyID, err := strconv.ParseInt(c.Param("company_id"), 10, 64)
	if err != nil {
		return common.SendNotFoundError(c, "Company not found")
	}

	// Malformed integer params fall back to their defaults; only an
	// out-of-range override is rejected.
	params := models.DefaultAlertParams()
	if v := c.QueryParam("threshold_override"); v != "" {
		if override, err := strconv.Atoi(v); err == nil {
			params.ThresholdOverride = override
		}
	}
	if params.ThresholdOverride < 0 || params.ThresholdOverride > 100 {
		return common.SendValidationError(c, "threshold_override must be between 0 and 100")
	}
	params.IncludeNoSales = strings.EqualFold(c.QueryParam("include_no_sales"), "true")
	if v := c.QueryParam("days"); v != "" {
		if days, err := strconv.Atoi(v); err == nil {
			params.Days = days
		}
	}

	report, err := h.alertService.LowStock(ctx, companyID, params)
	if err != nil {
		if errors.Is(err, services.ErrCompanyNotFound) {
			return common.SendNotFoundError(c, fmt.Sprintf("Company %d not found", companyID))
		}
		log.Printf("low stock alerts failed for company %d: %v", companyID, err)
		return common.SendServerError(c, "Internal server error")
	}

	return c.JSON(http.StatusOK, report)
}
