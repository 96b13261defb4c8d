package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stockwatch/internal/models"
)

type stubCache struct {
	pingErr error
}

func (s *stubCache) GetAlertReport(ctx context.Context, key string) (*models.LowStockReport, error) {
	return nil, nil
}

func (s *stubCache) SetAlertReport(ctx context.Context, key string, report *models.LowStockReport, ttl time.Duration) error {
	return nil
}

func (s *stubCache) Ping(ctx context.Context) error {
	return s.pingErr
}

func getHealth(t *testing.T, h *HealthHandlers, path string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if path == "/health/ready" {
		require.NoError(t, h.ReadinessCheck(c))
	} else {
		require.NoError(t, h.HealthCheck(c))
	}
	return rec
}

func TestHealthCheckHealthy(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()
	mock.ExpectExec("SELECT 1").WillReturnResult(pgxmock.NewResult("SELECT", 1))

	h := NewHealthHandlers(mock, &stubCache{})
	rec := getHealth(t, h, "/health")
	require.Equal(t, http.StatusOK, rec.Code)

	var status HealthStatus
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &status))
	assert.Equal(t, "healthy", status.Status)
	assert.Equal(t, "healthy", status.Services["database"])
	assert.Equal(t, "healthy", status.Services["cache"])
}

func TestHealthCheckDegradedCache(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()
	mock.ExpectExec("SELECT 1").WillReturnResult(pgxmock.NewResult("SELECT", 1))

	h := NewHealthHandlers(mock, &stubCache{pingErr: errors.New("connection refused")})
	rec := getHealth(t, h, "/health")
	require.Equal(t, http.StatusPartialContent, rec.Code)

	var status HealthStatus
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &status))
	assert.Equal(t, "degraded", status.Status)
	assert.Equal(t, "unhealthy", status.Services["cache"])
}

func TestHealthCheckWithoutCache(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()
	mock.ExpectExec("SELECT 1").WillReturnResult(pgxmock.NewResult("SELECT", 1))

	h := NewHealthHandlers(mock, nil)
	rec := getHealth(t, h, "/health")
	require.Equal(t, http.StatusOK, rec.Code)

	var status HealthStatus
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &status))
	assert.NotContains(t, status.Services, "cache")
}

func TestReadinessCheckDatabaseDown(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()
	mock.ExpectExec("SELECT 1").WillReturnError(errors.New("connection refused"))

	h := NewHealthHandlers(mock, nil)
	rec := getHealth(t, h, "/health/ready")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestReadinessCheckReady(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()
	mock.ExpectExec("SELECT 1").WillReturnResult(pgxmock.NewResult("SELECT", 1))

	h := NewHealthHandlers(mock, nil)
	rec := getHealth(t, h, "/health/ready")
	assert.Equal(t, http.StatusOK, rec.Code)
}
