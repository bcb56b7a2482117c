package analytics_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/workmate/commerce-api/internal/application/analytics"
	"github.com/workmate/commerce-api/internal/domain/entity"
)

func TestSalesByMonth(t *testing.T) {
	engine := fixtureEngine()

	rows, err := engine.SalesByMonth(context.Background(), nil)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	jan := rows[0]
	assert.Equal(t, 2024, jan.Year)
	assert.Equal(t, 1, jan.Month)
	assert.Equal(t, "2024-01", jan.YearMonth)
	assert.Equal(t, "January", jan.MonthName)
	assert.Equal(t, 2, jan.OrderCount)
	assert.InDelta(t, 150.0, jan.TotalRevenue, 1e-6)
	assert.InDelta(t, 165.0, jan.TotalSales, 1e-6)
	assert.InDelta(t, 12.0, jan.TotalTax, 1e-6)
	assert.InDelta(t, 3.0, jan.TotalDiscounts, 1e-6)
	assert.Equal(t, "2024-01-05", jan.MonthStart)
	assert.Equal(t, "2024-01-20", jan.MonthEnd)

	feb := rows[1]
	assert.Equal(t, 2, feb.Month)
	assert.Equal(t, "February", feb.MonthName)
	assert.Equal(t, 1, feb.OrderCount)
	assert.InDelta(t, 30.0, feb.TotalRevenue, 1e-6)
	assert.Equal(t, "2024-02-01", feb.MonthStart)
	assert.Equal(t, "2024-02-01", feb.MonthEnd)
}

func TestSalesByMonth_YearFilter(t *testing.T) {
	orders := fixtureOrders()
	orders = append(orders, order(900, "#900", time.Date(2023, 12, 28, 10, 0, 0, 0, time.UTC), 70, 77, 5, 0,
		item(1, 1)))
	engine := analytics.NewEngine(&stubSource{orders: orders})

	year := 2024
	rows, err := engine.SalesByMonth(context.Background(), &year)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	counted := 0
	seen := map[int]bool{}
	for _, row := range rows {
		assert.Equal(t, 2024, row.Year)
		assert.False(t, seen[row.Month], "month %d appears twice", row.Month)
		seen[row.Month] = true
		counted += row.OrderCount
	}
	// every 2024 order lands in exactly one month bucket
	assert.Equal(t, 3, counted)
}

func TestSalesByWeek(t *testing.T) {
	engine := fixtureEngine()

	rows, err := engine.SalesByWeek(context.Background(), nil)
	require.NoError(t, err)
	require.Len(t, rows, 3)

	// weeks start on Sunday; days before the year's first Sunday are week 0
	assert.Equal(t, 0, rows[0].Week)
	assert.Equal(t, "2024-W00", rows[0].YearWeek)
	assert.Equal(t, 1, rows[0].OrderCount)
	assert.InDelta(t, 100.0, rows[0].TotalRevenue, 1e-6)
	assert.Equal(t, "2024-01-05", rows[0].WeekStart)
	assert.Equal(t, "2024-01-05", rows[0].WeekEnd)

	assert.Equal(t, 2, rows[1].Week)
	assert.Equal(t, "2024-W02", rows[1].YearWeek)
	assert.Equal(t, 4, rows[2].Week)

	for _, row := range rows {
		assert.Equal(t, 2024, row.Year)
	}
}

func TestSalesByDayOfWeek(t *testing.T) {
	engine := fixtureEngine()

	rows, err := engine.SalesByDayOfWeek(context.Background(), nil)
	require.NoError(t, err)
	require.Len(t, rows, 3)

	// #1003 Thursday, #1001 Friday, #1002 Saturday; 1=Sunday .. 7=Saturday
	assert.Equal(t, 5, rows[0].DayOfWeek)
	assert.Equal(t, "Thursday", rows[0].DayName)
	assert.InDelta(t, 30.0, rows[0].TotalRevenue, 1e-6)

	assert.Equal(t, 6, rows[1].DayOfWeek)
	assert.Equal(t, "Friday", rows[1].DayName)

	assert.Equal(t, 7, rows[2].DayOfWeek)
	assert.Equal(t, "Saturday", rows[2].DayName)
	assert.Equal(t, 1, rows[2].OrderCount)
}

func TestSalesByHour(t *testing.T) {
	engine := fixtureEngine()

	rows, err := engine.SalesByHour(context.Background(), nil)
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, 0, rows[0].Hour)
	assert.Equal(t, "12 AM", rows[0].FormattedTime)
	assert.Equal(t, "Late Night", rows[0].TimePeriod)

	assert.Equal(t, 9, rows[1].Hour)
	assert.Equal(t, "9 AM", rows[1].FormattedTime)
	assert.Equal(t, "Morning", rows[1].TimePeriod)

	assert.Equal(t, 14, rows[2].Hour)
	assert.Equal(t, "2 PM", rows[2].FormattedTime)
	assert.Equal(t, "Afternoon", rows[2].TimePeriod)
	assert.InDelta(t, 110.0, rows[2].TotalSales, 1e-6)
}

func TestSalesByHour_ClockEdges(t *testing.T) {
	orders := []entity.Order{}
	for _, hour := range []int{11, 12, 17, 18, 23} {
		orders = append(orders, order(int64(2000+hour), "#x", time.Date(2024, 3, 1, hour, 0, 0, 0, time.UTC), 10, 11, 0, 0,
			item(1, 1)))
	}
	engine := analytics.NewEngine(&stubSource{orders: orders})

	rows, err := engine.SalesByHour(context.Background(), nil)
	require.NoError(t, err)
	require.Len(t, rows, 5)

	expect := map[int][2]string{
		11: {"11 AM", "Morning"},
		12: {"12 PM", "Afternoon"},
		17: {"5 PM", "Afternoon"},
		18: {"6 PM", "Evening"},
		23: {"11 PM", "Evening"},
	}
	for _, row := range rows {
		want := expect[row.Hour]
		assert.Equal(t, want[0], row.FormattedTime, "hour %d", row.Hour)
		assert.Equal(t, want[1], row.TimePeriod, "hour %d", row.Hour)
	}
}
