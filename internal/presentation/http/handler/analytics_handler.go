package handler

import (
	"context"
	"fmt"
	"math"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/workmate/commerce-api/internal/application/analytics"
	"github.com/workmate/commerce-api/internal/presentation/http/dto/response"
)

// AnalyticsEngine is the engine surface the analytics endpoints consume
type AnalyticsEngine interface {
	UnitsSoldPerProduct(ctx context.Context, limit int) ([]analytics.ProductUnitsRow, error)
	RevenuePerProduct(ctx context.Context) ([]analytics.ProductRevenueRow, error)
	SalesByWeek(ctx context.Context, year *int) ([]analytics.WeeklySalesRow, error)
	SalesByMonth(ctx context.Context, year *int) ([]analytics.MonthlySalesRow, error)
	SalesByDayOfWeek(ctx context.Context, year *int) ([]analytics.DayOfWeekSalesRow, error)
	SalesByHour(ctx context.Context, year *int) ([]analytics.HourlySalesRow, error)
	ProductCombos(ctx context.Context, minComboSize, limit int) ([]analytics.ComboRow, error)
}

// AnalyticsHandler handles sales analytics HTTP requests
type AnalyticsHandler struct {
	engine AnalyticsEngine
}

// NewAnalyticsHandler creates a new analytics handler
func NewAnalyticsHandler(engine AnalyticsEngine) *AnalyticsHandler {
	return &AnalyticsHandler{engine: engine}
}

// yearFilter parses the optional ?year= query parameter
func yearFilter(c *gin.Context) (*int, bool) {
	raw := c.Query("year")
	if raw == "" {
		return nil, true
	}
	year, err := strconv.Atoi(raw)
	if err != nil {
		response.BadRequest(c, "Invalid year: "+raw)
		return nil, false
	}
	return &year, true
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func yearSuffix(year *int) string {
	if year == nil {
		return ""
	}
	return fmt.Sprintf(" for year %d", *year)
}

// analyticsPayload is the original analytics response shape: raw rows plus
// caller-computed summary and insight blocks
func analyticsPayload(c *gin.Context, message string, data interface{}, insights, summary gin.H) {
	c.JSON(200, gin.H{
		"success":  true,
		"message":  message,
		"data":     data,
		"insights": insights,
		"summary":  summary,
	})
}

// SalesByWeek handles GET /orders/analytics/sales/weekly
func (h *AnalyticsHandler) SalesByWeek(c *gin.Context) {
	year, ok := yearFilter(c)
	if !ok {
		return
	}

	rows, err := h.engine.SalesByWeek(c.Request.Context(), year)
	if err != nil {
		response.Error(c, err)
		return
	}

	totalSales, totalOrders := 0.0, 0
	for _, row := range rows {
		totalSales += row.TotalSales
		totalOrders += row.OrderCount
	}
	totalWeeks := len(rows)

	summary := gin.H{
		"total_sales":             round2(totalSales),
		"total_orders":            totalOrders,
		"total_weeks":             totalWeeks,
		"average_sales_per_week":  safeAverage(totalSales, totalWeeks),
		"average_orders_per_week": safeAverage(float64(totalOrders), totalWeeks),
		"year_filter":             year,
	}
	c.JSON(200, gin.H{
		"success": true,
		"message": "Retrieved weekly sales data" + yearSuffix(year),
		"data":    rows,
		"summary": summary,
	})
}

// SalesByMonth handles GET /orders/analytics/sales/monthly
func (h *AnalyticsHandler) SalesByMonth(c *gin.Context) {
	year, ok := yearFilter(c)
	if !ok {
		return
	}

	rows, err := h.engine.SalesByMonth(c.Request.Context(), year)
	if err != nil {
		response.Error(c, err)
		return
	}

	totalSales, totalOrders := 0.0, 0
	for _, row := range rows {
		totalSales += row.TotalSales
		totalOrders += row.OrderCount
	}
	totalMonths := len(rows)

	c.JSON(200, gin.H{
		"success": true,
		"message": "Retrieved monthly sales data" + yearSuffix(year),
		"data":    rows,
		"summary": gin.H{
			"total_sales":              round2(totalSales),
			"total_orders":             totalOrders,
			"total_months":             totalMonths,
			"average_sales_per_month":  safeAverage(totalSales, totalMonths),
			"average_orders_per_month": safeAverage(float64(totalOrders), totalMonths),
			"year_filter":              year,
		},
	})
}

// UnitsSold handles GET /orders/analytics/products/units-sold
func (h *AnalyticsHandler) UnitsSold(c *gin.Context) {
	rows, err := h.engine.UnitsSoldPerProduct(c.Request.Context(), 0)
	if err != nil {
		response.Error(c, err)
		return
	}

	totalUnits := 0
	for _, row := range rows {
		totalUnits += row.TotalQuantitySold
	}
	totalProducts := len(rows)

	c.JSON(200, gin.H{
		"success": true,
		"message": fmt.Sprintf("Retrieved units sold data for %d products", totalProducts),
		"data":    rows,
		"summary": gin.H{
			"total_units_sold":          totalUnits,
			"total_products":            totalProducts,
			"average_units_per_product": safeAverage(float64(totalUnits), totalProducts),
		},
	})
}

// Revenue handles GET /orders/analytics/products/revenue
func (h *AnalyticsHandler) Revenue(c *gin.Context) {
	rows, err := h.engine.RevenuePerProduct(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	totalRevenue := 0.0
	for _, row := range rows {
		totalRevenue += row.TotalRevenue
	}
	totalProducts := len(rows)

	c.JSON(200, gin.H{
		"success": true,
		"message": fmt.Sprintf("Retrieved revenue data for %d products", totalProducts),
		"data":    rows,
		"summary": gin.H{
			"total_revenue":               round2(totalRevenue),
			"total_products":              totalProducts,
			"average_revenue_per_product": safeAverage(totalRevenue, totalProducts),
		},
	})
}

// SalesByDay handles GET /orders/analytics/sales/by-day
func (h *AnalyticsHandler) SalesByDay(c *gin.Context) {
	year, ok := yearFilter(c)
	if !ok {
		return
	}

	rows, err := h.engine.SalesByDayOfWeek(c.Request.Context(), year)
	if err != nil {
		response.Error(c, err)
		return
	}

	if len(rows) == 0 {
		analyticsPayload(c, "No sales data found", rows, nil, nil)
		return
	}

	best, worst := rows[0], rows[0]
	totalSales, totalOrders := 0.0, 0
	for _, row := range rows {
		if row.TotalSales > best.TotalSales {
			best = row
		}
		if row.TotalSales < worst.TotalSales {
			worst = row
		}
		totalSales += row.TotalSales
		totalOrders += row.OrderCount
	}

	ratioBase := worst.TotalSales
	if ratioBase == 0 {
		ratioBase = 1
	}

	insights := gin.H{
		"best_day": gin.H{
			"day":         best.DayName,
			"total_sales": best.TotalSales,
			"order_count": best.OrderCount,
		},
		"worst_day": gin.H{
			"day":         worst.DayName,
			"total_sales": worst.TotalSales,
			"order_count": worst.OrderCount,
		},
		"performance_ratio": round2(best.TotalSales / ratioBase),
	}
	summary := gin.H{
		"total_sales":          round2(totalSales),
		"total_orders":         totalOrders,
		"average_daily_sales":  round2(totalSales / float64(len(rows))),
		"average_daily_orders": round2(float64(totalOrders) / float64(len(rows))),
		"year_filter":          year,
	}
	analyticsPayload(c, "Retrieved sales data by day of week"+yearSuffix(year), rows, insights, summary)
}

// SalesByHour handles GET /orders/analytics/sales/by-hour
func (h *AnalyticsHandler) SalesByHour(c *gin.Context) {
	year, ok := yearFilter(c)
	if !ok {
		return
	}

	rows, err := h.engine.SalesByHour(c.Request.Context(), year)
	if err != nil {
		response.Error(c, err)
		return
	}

	if len(rows) == 0 {
		analyticsPayload(c, "No sales data found", rows, nil, nil)
		return
	}

	peak, low := rows[0], rows[0]
	totalSales, totalOrders := 0.0, 0
	type periodAcc struct {
		sales  float64
		orders int
	}
	periods := map[string]*periodAcc{}
	for _, row := range rows {
		if row.TotalSales > peak.TotalSales {
			peak = row
		}
		if row.TotalSales < low.TotalSales {
			low = row
		}
		totalSales += row.TotalSales
		totalOrders += row.OrderCount

		acc, ok := periods[row.TimePeriod]
		if !ok {
			acc = &periodAcc{}
			periods[row.TimePeriod] = acc
		}
		acc.sales += row.TotalSales
		acc.orders += row.OrderCount
	}

	bestPeriod := ""
	for name, acc := range periods {
		if bestPeriod == "" || acc.sales > periods[bestPeriod].sales {
			bestPeriod = name
		}
	}

	breakdown := gin.H{}
	for name, acc := range periods {
		breakdown[name] = gin.H{"sales": round2(acc.sales), "orders": acc.orders}
	}

	insights := gin.H{
		"peak_hour": gin.H{
			"hour":           peak.Hour,
			"formatted_time": peak.FormattedTime,
			"total_sales":    peak.TotalSales,
			"order_count":    peak.OrderCount,
			"time_period":    peak.TimePeriod,
		},
		"lowest_hour": gin.H{
			"hour":           low.Hour,
			"formatted_time": low.FormattedTime,
			"total_sales":    low.TotalSales,
			"order_count":    low.OrderCount,
			"time_period":    low.TimePeriod,
		},
		"best_time_period": gin.H{
			"period":       bestPeriod,
			"total_sales":  round2(periods[bestPeriod].sales),
			"total_orders": periods[bestPeriod].orders,
		},
		"time_period_breakdown": breakdown,
	}
	summary := gin.H{
		"total_sales":           round2(totalSales),
		"total_orders":          totalOrders,
		"average_hourly_sales":  round2(totalSales / float64(len(rows))),
		"average_hourly_orders": round2(float64(totalOrders) / float64(len(rows))),
		"year_filter":           year,
	}
	analyticsPayload(c, "Retrieved sales data by hour"+yearSuffix(year), rows, insights, summary)
}

// Combos handles GET /orders/analytics/products/combos
func (h *AnalyticsHandler) Combos(c *gin.Context) {
	minComboSize, err := strconv.Atoi(c.DefaultQuery("min_combo_size", "2"))
	if err != nil {
		response.BadRequest(c, "Invalid min_combo_size")
		return
	}
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if err != nil {
		response.BadRequest(c, "Invalid limit")
		return
	}

	rows, err := h.engine.ProductCombos(c.Request.Context(), minComboSize, limit)
	if err != nil {
		response.Error(c, err)
		return
	}

	filters := gin.H{"min_combo_size": minComboSize, "limit": limit}
	if len(rows) == 0 {
		analyticsPayload(c,
			fmt.Sprintf("No product combinations found with minimum size %d", minComboSize),
			rows, nil, gin.H{"total_combinations_found": 0, "filters": filters})
		return
	}

	mostFrequent, mostValuable := rows[0], rows[0]
	totalRevenue := 0.0
	totalFrequency := 0
	type sizeAcc struct {
		count   int
		revenue float64
	}
	sizes := map[int]*sizeAcc{}
	for _, row := range rows {
		if row.Frequency > mostFrequent.Frequency {
			mostFrequent = row
		}
		if row.TotalRevenue > mostValuable.TotalRevenue {
			mostValuable = row
		}
		totalRevenue += row.TotalRevenue
		totalFrequency += row.Frequency

		acc, ok := sizes[row.ComboSize]
		if !ok {
			acc = &sizeAcc{}
			sizes[row.ComboSize] = acc
		}
		acc.count++
		acc.revenue += row.TotalRevenue
	}

	sizeBreakdown := gin.H{}
	for size, acc := range sizes {
		sizeBreakdown[strconv.Itoa(size)] = gin.H{
			"count":                 acc.count,
			"total_revenue":         round2(acc.revenue),
			"avg_revenue_per_combo": round2(acc.revenue / float64(acc.count)),
		}
	}

	insights := gin.H{
		"most_frequent_combo": gin.H{
			"products":      mostFrequent.ProductCombination,
			"frequency":     mostFrequent.Frequency,
			"total_revenue": mostFrequent.TotalRevenue,
			"combo_size":    mostFrequent.ComboSize,
		},
		"most_valuable_combo": gin.H{
			"products":      mostValuable.ProductCombination,
			"frequency":     mostValuable.Frequency,
			"total_revenue": mostValuable.TotalRevenue,
			"combo_size":    mostValuable.ComboSize,
		},
		"combo_size_breakdown": sizeBreakdown,
	}
	summary := gin.H{
		"total_combinations_found":  len(rows),
		"total_combo_revenue":       round2(totalRevenue),
		"total_combo_frequency":     totalFrequency,
		"average_revenue_per_combo": round2(totalRevenue / float64(len(rows))),
		"average_frequency":         round2(float64(totalFrequency) / float64(len(rows))),
		"filters":                   filters,
	}
	analyticsPayload(c, fmt.Sprintf("Retrieved top %d product combinations", len(rows)), rows, insights, summary)
}

// safeAverage divides total by count, returning 0 for an empty set
func safeAverage(total float64, count int) float64 {
	if count == 0 {
		return 0
	}
	return round2(total / float64(count))
}
