package analytics

import (
	"fmt"

	"github.com/workmate/commerce-api/internal/domain/entity"
	"github.com/workmate/commerce-api/pkg/apperror"
)

// forEachLineItem visits every line item of every order, carrying the
// owning order alongside. Orders with no line items contribute nothing.
// A line item without a product id aborts the whole pass: skipping it
// would corrupt aggregate totals invisibly.
func forEachLineItem(orders []entity.Order, visit func(order *entity.Order, item entity.LineItem) error) error {
	for i := range orders {
		order := &orders[i]
		for _, item := range order.LineItems {
			if item.ProductID == 0 {
				return apperror.NewComputationError(
					fmt.Sprintf("line item without product id in order %d", order.OrderID))
			}
			if err := visit(order, item); err != nil {
				return err
			}
		}
	}
	return nil
}
