package repositories

import (
	"context"
	"testing"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOffersByProduct(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	email := "sales@supply.test"
	leadTime := 7
	minOrder := 50
	cost := decimal.RequireFromString("12.50")
	mock.ExpectQuery("FROM supplier s").
		WithArgs(int64(1)).
		WillReturnRows(pgxmock.NewRows([]string{"name", "contact_email", "lead_time_days", "minimum_order_quantity", "unit_cost"}).
			AddRow("Acme Supply", &email, &leadTime, &minOrder, &cost).
			AddRow("Backup Supply", nil, nil, nil, nil))

	repo := NewSupplierRepository(mock)
	offers, err := repo.OffersByProduct(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, offers, 2)

	assert.Equal(t, "Acme Supply", offers[0].Name)
	require.NotNil(t, offers[0].Cost)
	assert.InDelta(t, 12.5, *offers[0].Cost, 0.0001)
	require.NotNil(t, offers[0].LeadTime)
	assert.Equal(t, 7, *offers[0].LeadTime)

	assert.Equal(t, "Backup Supply", offers[1].Name)
	assert.Nil(t, offers[1].Email)
	assert.Nil(t, offers[1].Cost)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOffersByProductNone(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery("FROM supplier s").
		WithArgs(int64(9)).
		WillReturnRows(pgxmock.NewRows([]string{"name", "contact_email", "lead_time_days", "minimum_order_quantity", "unit_cost"}))

	repo := NewSupplierRepository(mock)
	offers, err := repo.OffersByProduct(context.Background(), 9)
	require.NoError(t, err)
	assert.NotNil(t, offers)
	assert.Empty(t, offers)
	assert.NoError(t, mock.ExpectationsWereMet())
}
