package analytics_test

import (
	"context"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/workmate/commerce-api/internal/application/analytics"
	"github.com/workmate/commerce-api/internal/domain/entity"
	"github.com/workmate/commerce-api/pkg/apperror"
)

func TestProductCombos(t *testing.T) {
	engine := fixtureEngine()

	rows, err := engine.ProductCombos(context.Background(), 2, 0)
	require.NoError(t, err)
	require.Len(t, rows, 1)

	// #1001 and #1003 both contain products {1,2}; #1002 has one product
	combo := rows[0]
	assert.Equal(t, []int64{1, 2}, combo.ProductCombination)
	assert.Equal(t, 2, combo.ComboSize)
	assert.Equal(t, 2, combo.Frequency)
	assert.InDelta(t, 110.0+33.0, combo.TotalRevenue, 1e-6)
	assert.InDelta(t, 71.5, combo.AverageOrderValue, 1e-6)
	assert.Equal(t, []int64{1001, 1003}, combo.SampleOrders)
}

func TestProductCombos_Canonicalization(t *testing.T) {
	at := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	orders := []entity.Order{
		order(3001, "#3001", at, 20, 22, 0, 0, item(1, 1), item(2, 1)),
		order(3002, "#3002", at, 40, 44, 0, 0, item(2, 1), item(1, 1)),
	}
	engine := analytics.NewEngine(&stubSource{orders: orders})

	rows, err := engine.ProductCombos(context.Background(), 2, 0)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, []int64{1, 2}, rows[0].ProductCombination)
	assert.Equal(t, 2, rows[0].Frequency)
}

func TestProductCombos_DuplicateProductCollapses(t *testing.T) {
	at := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	// two line items, but only one distinct product
	orders := []entity.Order{
		order(3003, "#3003", at, 20, 22, 0, 0, item(5, 1), item(5, 2)),
	}
	engine := analytics.NewEngine(&stubSource{orders: orders})

	rows, err := engine.ProductCombos(context.Background(), 2, 0)
	require.NoError(t, err)
	assert.Empty(t, rows)

	rows, err = engine.ProductCombos(context.Background(), 1, 0)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, []int64{5}, rows[0].ProductCombination)
	assert.Equal(t, 1, rows[0].ComboSize)
}

func TestProductCombos_SampleOrdersCapped(t *testing.T) {
	at := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	var orders []entity.Order
	for i := 0; i < 5; i++ {
		orders = append(orders, order(int64(4000+i), fmt.Sprintf("#400%d", i), at.Add(time.Duration(i)*time.Hour), 10, 11, 0, 0,
			item(1, 1), item(2, 1)))
	}
	engine := analytics.NewEngine(&stubSource{orders: orders})

	rows, err := engine.ProductCombos(context.Background(), 2, 0)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, 5, rows[0].Frequency)
	assert.Len(t, rows[0].SampleOrders, 3)
	assert.Equal(t, []int64{4000, 4001, 4002}, rows[0].SampleOrders)
}

func TestProductCombos_SampleOrdersCarryOrderIDs(t *testing.T) {
	at := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	orders := []entity.Order{
		order(9001, "#A", at, 10, 11, 0, 0, item(1, 1), item(2, 1)),
	}
	engine := analytics.NewEngine(&stubSource{orders: orders})

	rows, err := engine.ProductCombos(context.Background(), 2, 0)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	// samples carry the external order id, not the display name
	assert.Equal(t, []int64{9001}, rows[0].SampleOrders)
}

func TestProductCombos_SortAndLimit(t *testing.T) {
	at := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	orders := []entity.Order{
		order(5001, "#5001", at, 10, 11, 0, 0, item(1, 1), item(2, 1)),
		order(5002, "#5002", at, 10, 11, 0, 0, item(1, 1), item(2, 1)),
		order(5003, "#5003", at, 10, 11, 0, 0, item(3, 1), item(4, 1)),
	}
	engine := analytics.NewEngine(&stubSource{orders: orders})

	rows, err := engine.ProductCombos(context.Background(), 2, 1)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, []int64{1, 2}, rows[0].ProductCombination)
	assert.Equal(t, 2, rows[0].Frequency)
}

func TestProductCombos_Validation(t *testing.T) {
	engine := fixtureEngine()

	_, err := engine.ProductCombos(context.Background(), 0, 0)
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, apperror.GetAppError(err).Code)

	_, err = engine.ProductCombos(context.Background(), 2, -5)
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, apperror.GetAppError(err).Code)
}
