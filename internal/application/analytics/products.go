package analytics

import (
	"context"
	"sort"

	"github.com/workmate/commerce-api/internal/domain/entity"
	"github.com/workmate/commerce-api/pkg/apperror"
)

// ProductUnitsRow reports units sold for one product. TotalRevenue here is
// the order-level proxy figure (quantity times the whole order's total
// price per line item) and deliberately does not reconcile with the
// attributed figure in ProductRevenueRow; callers depend on both exact
// formulas under their distinct endpoints.
type ProductUnitsRow struct {
	ProductID         int64   `json:"product_id"`
	TotalQuantitySold int     `json:"total_quantity_sold"`
	TotalOrders       int     `json:"total_orders"`
	TotalRevenue      float64 `json:"total_revenue"`
}

// ProductRevenueRow reports proportionally attributed revenue for one
// product: each order's subtotal is distributed across its line items by
// quantity share.
type ProductRevenueRow struct {
	ProductID           int64   `json:"product_id"`
	TotalRevenue        float64 `json:"total_revenue"`
	TotalQuantitySold   int     `json:"total_quantity_sold"`
	TotalOrders         int     `json:"total_orders"`
	AveragePricePerUnit float64 `json:"average_price_per_unit"`
}

type productUnitsAcc struct {
	quantity int
	orders   int
	revenue  float64
}

// UnitsSoldPerProduct groups all line items by product and sums quantities.
// Rows come back sorted by quantity descending; limit truncates post-sort,
// 0 meaning unrestricted.
func (e *Engine) UnitsSoldPerProduct(ctx context.Context, limit int) ([]ProductUnitsRow, error) {
	if limit < 0 {
		return nil, apperror.NewBadRequestError("limit must not be negative")
	}

	orders, err := e.fetch(ctx, nil)
	if err != nil {
		return nil, err
	}

	g := newGroups[int64, productUnitsAcc]()
	err = forEachLineItem(orders, func(order *entity.Order, item entity.LineItem) error {
		g.fold(item.ProductID, func(acc productUnitsAcc) productUnitsAcc {
			acc.quantity += item.Quantity
			acc.orders++
			acc.revenue += float64(item.Quantity) * order.TotalPrice
			return acc
		})
		return nil
	})
	if err != nil {
		return nil, err
	}

	rows := make([]ProductUnitsRow, 0, g.len())
	g.finalize(func(productID int64, acc productUnitsAcc) {
		rows = append(rows, ProductUnitsRow{
			ProductID:         productID,
			TotalQuantitySold: acc.quantity,
			TotalOrders:       acc.orders,
			TotalRevenue:      round2(acc.revenue),
		})
	})

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].TotalQuantitySold > rows[j].TotalQuantitySold
	})
	return truncate(rows, limit), nil
}

type productRevenueAcc struct {
	revenue  float64
	quantity int
	orders   int
}

// RevenuePerProduct distributes each order's subtotal across its line items
// proportionally by quantity share, then groups by product. An order whose
// line items sum to zero quantity attributes nothing.
func (e *Engine) RevenuePerProduct(ctx context.Context) ([]ProductRevenueRow, error) {
	orders, err := e.fetch(ctx, nil)
	if err != nil {
		return nil, err
	}

	g := newGroups[int64, productRevenueAcc]()
	err = forEachLineItem(orders, func(order *entity.Order, item entity.LineItem) error {
		orderQty := order.TotalQuantity()

		var lineRevenue float64
		if orderQty > 0 {
			lineRevenue = order.SubtotalPrice * (float64(item.Quantity) / float64(orderQty))
		}

		g.fold(item.ProductID, func(acc productRevenueAcc) productRevenueAcc {
			acc.revenue += lineRevenue
			acc.quantity += item.Quantity
			acc.orders++
			return acc
		})
		return nil
	})
	if err != nil {
		return nil, err
	}

	rows := make([]ProductRevenueRow, 0, g.len())
	g.finalize(func(productID int64, acc productRevenueAcc) {
		avg := 0.0
		if acc.quantity > 0 {
			avg = acc.revenue / float64(acc.quantity)
		}
		rows = append(rows, ProductRevenueRow{
			ProductID:           productID,
			TotalRevenue:        round2(acc.revenue),
			TotalQuantitySold:   acc.quantity,
			TotalOrders:         acc.orders,
			AveragePricePerUnit: round2(avg),
		})
	})

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].TotalRevenue > rows[j].TotalRevenue
	})
	return rows, nil
}
