package analytics

import (
	"context"
	"sort"
	"strconv"
	"strings"

	"github.com/workmate/commerce-api/internal/domain/entity"
	"github.com/workmate/commerce-api/pkg/apperror"
)

const maxSampleOrders = 3

// ComboRow reports how often a set of products was purchased together
type ComboRow struct {
	ProductCombination []int64  `json:"product_combination"`
	ComboSize          int     `json:"combo_size"`
	Frequency          int     `json:"frequency"`
	TotalRevenue       float64 `json:"total_revenue"`
	AverageOrderValue  float64 `json:"average_order_value"`
	SampleOrders       []int64 `json:"sample_orders"`
}

type comboAcc struct {
	products []int64
	freq     int
	revenue  float64
	samples  []int64
}

// comboKey canonicalizes an order's product set: ids are deduplicated and
// sorted ascending, so "p2 then p1" and "p1 twice then p2" both land in
// the [p1 p2] bucket.
func comboKey(order *entity.Order) (string, []int64) {
	seen := make(map[int64]struct{}, len(order.LineItems))
	ids := make([]int64, 0, len(order.LineItems))
	for _, item := range order.LineItems {
		if _, ok := seen[item.ProductID]; ok {
			continue
		}
		seen[item.ProductID] = struct{}{}
		ids = append(ids, item.ProductID)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.FormatInt(id, 10)
	}
	return strings.Join(parts, ","), ids
}

// ProductCombos finds sets of distinct products frequently purchased in
// the same order. Orders with fewer than minComboSize distinct products
// are skipped. Results are sorted by frequency descending and truncated
// to limit rows (0 means no limit).
func (e *Engine) ProductCombos(ctx context.Context, minComboSize, limit int) ([]ComboRow, error) {
	if minComboSize < 1 {
		return nil, apperror.NewBadRequestError("min combo size must be at least 1")
	}
	if limit < 0 {
		return nil, apperror.NewBadRequestError("limit must not be negative")
	}

	orders, err := e.fetch(ctx, nil)
	if err != nil {
		return nil, err
	}

	g := newGroups[string, comboAcc]()
	for i := range orders {
		o := &orders[i]
		// cheap pre-filter on raw line item count before deduplication
		if len(o.LineItems) < minComboSize {
			continue
		}
		key, ids := comboKey(o)
		if len(ids) < minComboSize {
			continue
		}
		g.fold(key, func(acc comboAcc) comboAcc {
			if acc.products == nil {
				acc.products = ids
			}
			acc.freq++
			acc.revenue += o.TotalPrice
			if len(acc.samples) < maxSampleOrders {
				acc.samples = append(acc.samples, o.OrderID)
			}
			return acc
		})
	}

	rows := make([]ComboRow, 0, g.len())
	g.finalize(func(key string, acc comboAcc) {
		avg := 0.0
		if acc.freq > 0 {
			avg = acc.revenue / float64(acc.freq)
		}
		rows = append(rows, ComboRow{
			ProductCombination: acc.products,
			ComboSize:          len(acc.products),
			Frequency:          acc.freq,
			TotalRevenue:       round2(acc.revenue),
			AverageOrderValue:  round2(avg),
			SampleOrders:       acc.samples,
		})
	})

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Frequency > rows[j].Frequency
	})
	return truncate(rows, limit), nil
}
