package analytics

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/workmate/commerce-api/internal/domain/entity"
)

// WeeklySalesRow reports order totals for one week-of-year bucket
type WeeklySalesRow struct {
	Year           int     `json:"year"`
	Week           int     `json:"week"`
	YearWeek       string  `json:"year_week"`
	TotalSales     float64 `json:"total_sales"`
	TotalRevenue   float64 `json:"total_revenue"`
	TotalTax       float64 `json:"total_tax"`
	TotalDiscounts float64 `json:"total_discounts"`
	OrderCount     int     `json:"order_count"`
	WeekStart      string  `json:"week_start"`
	WeekEnd        string  `json:"week_end"`
}

// MonthlySalesRow reports order totals for one calendar month bucket
type MonthlySalesRow struct {
	Year           int     `json:"year"`
	Month          int     `json:"month"`
	YearMonth      string  `json:"year_month"`
	MonthName      string  `json:"month_name"`
	TotalSales     float64 `json:"total_sales"`
	TotalRevenue   float64 `json:"total_revenue"`
	TotalTax       float64 `json:"total_tax"`
	TotalDiscounts float64 `json:"total_discounts"`
	OrderCount     int     `json:"order_count"`
	MonthStart     string  `json:"month_start"`
	MonthEnd       string  `json:"month_end"`
}

// DayOfWeekSalesRow reports order totals for one day-of-week bucket,
// 1=Sunday through 7=Saturday
type DayOfWeekSalesRow struct {
	DayOfWeek      int     `json:"day_of_week"`
	DayName        string  `json:"day_name"`
	TotalSales     float64 `json:"total_sales"`
	TotalRevenue   float64 `json:"total_revenue"`
	TotalTax       float64 `json:"total_tax"`
	TotalDiscounts float64 `json:"total_discounts"`
	OrderCount     int     `json:"order_count"`
}

// HourlySalesRow reports order totals for one hour-of-day bucket
type HourlySalesRow struct {
	Hour           int     `json:"hour"`
	FormattedTime  string  `json:"formatted_time"`
	TimePeriod     string  `json:"time_period"`
	TotalSales     float64 `json:"total_sales"`
	TotalRevenue   float64 `json:"total_revenue"`
	TotalTax       float64 `json:"total_tax"`
	TotalDiscounts float64 `json:"total_discounts"`
	OrderCount     int     `json:"order_count"`
}

// salesAcc holds the monetary sums shared by every temporal bucket
type salesAcc struct {
	sales     float64
	revenue   float64
	tax       float64
	discounts float64
	count     int
	earliest  time.Time
	latest    time.Time
}

func (a salesAcc) add(o *entity.Order) salesAcc {
	a.sales += o.TotalPrice
	a.revenue += o.SubtotalPrice
	a.tax += o.TotalTax
	a.discounts += o.TotalDiscounts
	a.count++
	if a.count == 1 || o.CreatedAt.Before(a.earliest) {
		a.earliest = o.CreatedAt
	}
	if a.count == 1 || o.CreatedAt.After(a.latest) {
		a.latest = o.CreatedAt
	}
	return a
}

// weekOfYear derives the week number with Sundays starting each week:
// week 1 begins on the year's first Sunday, days before it are week 0.
// Matches strftime %U, which is what the imported data was bucketed with
// historically.
func weekOfYear(t time.Time) int {
	return (t.YearDay() - 1 + 7 - int(t.Weekday())) / 7
}

type weekKey struct {
	year int
	week int
}

// SalesByWeek groups orders into week-of-year buckets, optionally
// restricted to a single year. Rows are ordered by year then week.
func (e *Engine) SalesByWeek(ctx context.Context, year *int) ([]WeeklySalesRow, error) {
	orders, err := e.fetch(ctx, year)
	if err != nil {
		return nil, err
	}

	g := newGroups[weekKey, salesAcc]()
	for i := range orders {
		o := &orders[i]
		key := weekKey{year: o.CreatedAt.Year(), week: weekOfYear(o.CreatedAt)}
		g.fold(key, func(acc salesAcc) salesAcc { return acc.add(o) })
	}

	rows := make([]WeeklySalesRow, 0, g.len())
	g.finalize(func(key weekKey, acc salesAcc) {
		rows = append(rows, WeeklySalesRow{
			Year:           key.year,
			Week:           key.week,
			YearWeek:       fmt.Sprintf("%d-W%02d", key.year, key.week),
			TotalSales:     round2(acc.sales),
			TotalRevenue:   round2(acc.revenue),
			TotalTax:       round2(acc.tax),
			TotalDiscounts: round2(acc.discounts),
			OrderCount:     acc.count,
			WeekStart:      acc.earliest.Format(dateLayout),
			WeekEnd:        acc.latest.Format(dateLayout),
		})
	})

	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].Year != rows[j].Year {
			return rows[i].Year < rows[j].Year
		}
		return rows[i].Week < rows[j].Week
	})
	return rows, nil
}

type monthKey struct {
	year  int
	month time.Month
}

// SalesByMonth groups orders into calendar month buckets, optionally
// restricted to a single year. Rows are ordered by year then month.
func (e *Engine) SalesByMonth(ctx context.Context, year *int) ([]MonthlySalesRow, error) {
	orders, err := e.fetch(ctx, year)
	if err != nil {
		return nil, err
	}

	g := newGroups[monthKey, salesAcc]()
	for i := range orders {
		o := &orders[i]
		key := monthKey{year: o.CreatedAt.Year(), month: o.CreatedAt.Month()}
		g.fold(key, func(acc salesAcc) salesAcc { return acc.add(o) })
	}

	rows := make([]MonthlySalesRow, 0, g.len())
	g.finalize(func(key monthKey, acc salesAcc) {
		rows = append(rows, MonthlySalesRow{
			Year:           key.year,
			Month:          int(key.month),
			YearMonth:      fmt.Sprintf("%d-%02d", key.year, int(key.month)),
			MonthName:      key.month.String(),
			TotalSales:     round2(acc.sales),
			TotalRevenue:   round2(acc.revenue),
			TotalTax:       round2(acc.tax),
			TotalDiscounts: round2(acc.discounts),
			OrderCount:     acc.count,
			MonthStart:     acc.earliest.Format(dateLayout),
			MonthEnd:       acc.latest.Format(dateLayout),
		})
	})

	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].Year != rows[j].Year {
			return rows[i].Year < rows[j].Year
		}
		return rows[i].Month < rows[j].Month
	})
	return rows, nil
}

// SalesByDayOfWeek groups orders by weekday (1=Sunday … 7=Saturday),
// optionally restricted to a single year. Rows are ordered Sunday first.
func (e *Engine) SalesByDayOfWeek(ctx context.Context, year *int) ([]DayOfWeekSalesRow, error) {
	orders, err := e.fetch(ctx, year)
	if err != nil {
		return nil, err
	}

	g := newGroups[time.Weekday, salesAcc]()
	for i := range orders {
		o := &orders[i]
		g.fold(o.CreatedAt.Weekday(), func(acc salesAcc) salesAcc { return acc.add(o) })
	}

	rows := make([]DayOfWeekSalesRow, 0, g.len())
	g.finalize(func(day time.Weekday, acc salesAcc) {
		rows = append(rows, DayOfWeekSalesRow{
			DayOfWeek:      int(day) + 1,
			DayName:        day.String(),
			TotalSales:     round2(acc.sales),
			TotalRevenue:   round2(acc.revenue),
			TotalTax:       round2(acc.tax),
			TotalDiscounts: round2(acc.discounts),
			OrderCount:     acc.count,
		})
	})

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].DayOfWeek < rows[j].DayOfWeek
	})
	return rows, nil
}

// SalesByHour groups orders by hour of day (0-23), optionally restricted
// to a single year. Rows are ordered by hour ascending.
func (e *Engine) SalesByHour(ctx context.Context, year *int) ([]HourlySalesRow, error) {
	orders, err := e.fetch(ctx, year)
	if err != nil {
		return nil, err
	}

	g := newGroups[int, salesAcc]()
	for i := range orders {
		o := &orders[i]
		g.fold(o.CreatedAt.Hour(), func(acc salesAcc) salesAcc { return acc.add(o) })
	}

	rows := make([]HourlySalesRow, 0, g.len())
	g.finalize(func(hour int, acc salesAcc) {
		rows = append(rows, HourlySalesRow{
			Hour:           hour,
			FormattedTime:  formatHour(hour),
			TimePeriod:     timePeriod(hour),
			TotalSales:     round2(acc.sales),
			TotalRevenue:   round2(acc.revenue),
			TotalTax:       round2(acc.tax),
			TotalDiscounts: round2(acc.discounts),
			OrderCount:     acc.count,
		})
	})

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Hour < rows[j].Hour
	})
	return rows, nil
}

// timePeriod maps an hour of day to its marketing label
func timePeriod(hour int) string {
	switch {
	case hour < 6:
		return "Late Night"
	case hour < 12:
		return "Morning"
	case hour < 18:
		return "Afternoon"
	default:
		return "Evening"
	}
}

// formatHour renders an hour of day on a 12-hour clock, e.g. "2 PM"
func formatHour(hour int) string {
	suffix := "AM"
	display := hour
	switch {
	case hour == 0:
		display = 12
	case hour == 12:
		suffix = "PM"
	case hour > 12:
		display = hour - 12
		suffix = "PM"
	}
	return fmt.Sprintf("%d %s", display, suffix)
}
