package services

import (
	"context"
	"time"

	"stockwatch/internal/models"

	"github.com/stretchr/testify/mock"
)

// Mock repositories and services

type MockCompanyRepository struct {
	mock.Mock
}

func (m *MockCompanyRepository) Create(ctx context.Context, company *models.Company) error {
	args := m.Called(ctx, company)
	return args.Error(0)
}

func (m *MockCompanyRepository) GetByID(ctx context.Context, id int64) (*models.Company, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Company), args.Error(1)
}

type MockWarehouseRepository struct {
	mock.Mock
}

func (m *MockWarehouseRepository) Create(ctx context.Context, warehouse *models.Warehouse) error {
	args := m.Called(ctx, warehouse)
	return args.Error(0)
}

func (m *MockWarehouseRepository) GetByID(ctx context.Context, id int64) (*models.Warehouse, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Warehouse), args.Error(1)
}

func (m *MockWarehouseRepository) ListByCompany(ctx context.Context, companyID int64) ([]*models.Warehouse, error) {
	args := m.Called(ctx, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Warehouse), args.Error(1)
}

type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) CreateWithInitialStock(ctx context.Context, product *models.Product, warehouseID int64, quantity int) error {
	args := m.Called(ctx, product, warehouseID, quantity)
	return args.Error(0)
}

func (m *MockProductRepository) GetByID(ctx context.Context, id int64) (*models.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

type MockInventoryRepository struct {
	mock.Mock
}

func (m *MockInventoryRepository) AggregateByWarehouses(ctx context.Context, warehouseIDs []int64) ([]*models.ProductStockSummary, error) {
	args := m.Called(ctx, warehouseIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.ProductStockSummary), args.Error(1)
}

func (m *MockInventoryRepository) WarehouseBreakdown(ctx context.Context, productID, companyID int64) ([]models.WarehouseStock, error) {
	args := m.Called(ctx, productID, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.WarehouseStock), args.Error(1)
}

type MockInventoryHistoryRepository struct {
	mock.Mock
}

func (m *MockInventoryHistoryRepository) Record(ctx context.Context, entry *models.InventoryHistory) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockInventoryHistoryRepository) HasRecentSale(ctx context.Context, productID int64, since time.Time) (bool, error) {
	args := m.Called(ctx, productID, since)
	return args.Bool(0), args.Error(1)
}

type MockSupplierRepository struct {
	mock.Mock
}

func (m *MockSupplierRepository) OffersByProduct(ctx context.Context, productID int64) ([]models.SupplierOption, error) {
	args := m.Called(ctx, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.SupplierOption), args.Error(1)
}

type MockCacheService struct {
	mock.Mock
}

func (m *MockCacheService) GetAlertReport(ctx context.Context, key string) (*models.LowStockReport, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.LowStockReport), args.Error(1)
}

func (m *MockCacheService) SetAlertReport(ctx context.Context, key string, report *models.LowStockReport, ttl time.Duration) error {
	args := m.Called(ctx, key, report, ttl)
	return args.Error(0)
}

func (m *MockCacheService) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
