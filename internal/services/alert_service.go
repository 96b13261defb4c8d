package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sort"
	"time"

	"stockwatch/internal/caching"
	"stockwatch/internal/models"
	"stockwatch/internal/repositories"

	"github.com/jackc/pgx/v5"
)

// Base low-stock thresholds by product type. Unknown types fall back to
// defaultStockThreshold.
var stockThresholds = map[string]int{
	models.ProductTypeStandard: 20,
	models.ProductTypeBundle:   10,
}

const defaultStockThreshold = 15

type AlertService interface {
	// LowStock computes the severity-ordered low-stock report for a company.
	// Returns ErrCompanyNotFound if the company does not exist.
	LowStock(ctx context.Context, companyID int64, params models.AlertParams) (*models.LowStockReport, error)
}

type alertService struct {
	companyRepo   repositories.CompanyRepository
	warehouseRepo repositories.WarehouseRepository
	inventoryRepo repositories.InventoryRepository
	historyRepo   repositories.InventoryHistoryRepository
	supplierRepo  repositories.SupplierRepository
	cacheService  caching.CacheService
	cacheTTL      time.Duration
}

func NewAlertService(
	companyRepo repositories.CompanyRepository,
	warehouseRepo repositories.WarehouseRepository,
	inventoryRepo repositories.InventoryRepository,
	historyRepo repositories.InventoryHistoryRepository,
	supplierRepo repositories.SupplierRepository,
	cacheService caching.CacheService,
	cacheTTL time.Duration,
) AlertService {
	return &alertService{
		companyRepo:   companyRepo,
		warehouseRepo: warehouseRepo,
		inventoryRepo: inventoryRepo,
		historyRepo:   historyRepo,
		supplierRepo:  supplierRepo,
		cacheService:  cacheService,
		cacheTTL:      cacheTTL,
	}
}

// LowStock runs the alert pipeline: aggregate quantities across the company's
// warehouses, drop products at or above their adjusted threshold, filter by
// recent sales activity, classify severity, and enrich with warehouse and
// supplier context. The reads are independent queries, not one snapshot;
// concurrent writes during a computation can show through.
func (s *alertService) LowStock(ctx context.Context, companyID int64, params models.AlertParams) (*models.LowStockReport, error) {
	if _, err := s.companyRepo.GetByID(ctx, companyID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrCompanyNotFound
		}
		return nil, fmt.Errorf("lookup company %d: %w", companyID, err)
	}

	cacheKey := alertCacheKey(companyID, params)
	if s.cacheService != nil {
		report, err := s.cacheService.GetAlertReport(ctx, cacheKey)
		if err != nil {
			log.Printf("alert cache read failed for company %d: %v", companyID, err)
		} else if report != nil {
			return report, nil
		}
	}

	warehouses, err := s.warehouseRepo.ListByCompany(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("list warehouses for company %d: %w", companyID, err)
	}
	if len(warehouses) == 0 {
		// A company without warehouses has no stock to alert on.
		return &models.LowStockReport{
			Alerts:    []models.LowStockAlert{},
			Timestamp: utcTimestamp(),
		}, nil
	}

	warehouseIDs := make([]int64, 0, len(warehouses))
	for _, warehouse := range warehouses {
		warehouseIDs = append(warehouseIDs, warehouse.ID)
	}

	summaries, err := s.inventoryRepo.AggregateByWarehouses(ctx, warehouseIDs)
	if err != nil {
		return nil, fmt.Errorf("aggregate stock: %w", err)
	}

	since := time.Now().UTC().AddDate(0, 0, -params.Days)
	alerts := []models.LowStockAlert{}

	for _, summary := range summaries {
		adjusted := baseThresholdFor(summary.ProductType) * params.ThresholdOverride / 100
		if summary.TotalQuantity >= adjusted {
			continue
		}

		if !params.IncludeNoSales {
			sold, err := s.historyRepo.HasRecentSale(ctx, summary.ProductID, since)
			if err != nil {
				return nil, fmt.Errorf("check sales history for product %d: %w", summary.ProductID, err)
			}
			if !sold {
				continue
			}
		}

		breakdown, err := s.inventoryRepo.WarehouseBreakdown(ctx, summary.ProductID, companyID)
		if err != nil {
			return nil, fmt.Errorf("warehouse breakdown for product %d: %w", summary.ProductID, err)
		}
		offers, err := s.supplierRepo.OffersByProduct(ctx, summary.ProductID)
		if err != nil {
			return nil, fmt.Errorf("supplier offers for product %d: %w", summary.ProductID, err)
		}

		alerts = append(alerts, models.LowStockAlert{
			ProductID:         summary.ProductID,
			ProductName:       summary.Name,
			SKU:               summary.SKU,
			TotalQuantity:     summary.TotalQuantity,
			LowStockThreshold: adjusted,
			Severity:          classifySeverity(summary.TotalQuantity, adjusted),
			Warehouses:        breakdown,
			Suppliers:         offers,
		})
	}

	// Critical first; ties keep aggregation order.
	sort.SliceStable(alerts, func(i, j int) bool {
		return severityRank(alerts[i].Severity) < severityRank(alerts[j].Severity)
	})

	report := &models.LowStockReport{
		Alerts:      alerts,
		TotalAlerts: len(alerts),
		Timestamp:   utcTimestamp(),
	}

	if s.cacheService != nil {
		if err := s.cacheService.SetAlertReport(ctx, cacheKey, report, s.cacheTTL); err != nil {
			log.Printf("alert cache write failed for company %d: %v", companyID, err)
		}
	}
	return report, nil
}

func baseThresholdFor(productType string) int {
	if threshold, ok := stockThresholds[productType]; ok {
		return threshold
	}
	return defaultStockThreshold
}

// classifySeverity compares the integer quantity against fractional cut
// points of the adjusted threshold. The fractions are not rounded: with an
// adjusted threshold of 7, a quantity of 3 is critical (3 <= 3.5) and 4 is
// high (4 <= 5.25).
func classifySeverity(quantity, threshold int) string {
	switch {
	case float64(quantity) <= float64(threshold)*0.5:
		return models.SeverityCritical
	case float64(quantity) <= float64(threshold)*0.75:
		return models.SeverityHigh
	default:
		return models.SeverityMedium
	}
}

func severityRank(severity string) int {
	switch severity {
	case models.SeverityCritical:
		return 0
	case models.SeverityHigh:
		return 1
	case models.SeverityMedium:
		return 2
	default:
		return 3
	}
}

func alertCacheKey(companyID int64, params models.AlertParams) string {
	return fmt.Sprintf("alerts:low-stock:%d:%d:%t:%d", companyID, params.ThresholdOverride, params.IncludeNoSales, params.Days)
}

func utcTimestamp() string {
	return time.Now().UTC().Format(time.RFC3339)
}
