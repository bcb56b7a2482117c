package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/workmate/commerce-api/internal/domain/entity"
	"github.com/workmate/commerce-api/internal/domain/enum"
	"github.com/workmate/commerce-api/pkg/pagination"
)

// OrderRepository defines the interface for order data operations.
// ScanAll and ScanYear form the read-only scan surface the analytics
// engine is built on: both return orders with line items loaded, as a
// finite re-iterable snapshot.
type OrderRepository interface {
	Create(ctx context.Context, order *entity.Order) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)
	GetByOrderID(ctx context.Context, orderID int64) (*entity.Order, error)
	List(ctx context.Context, params *OrderFilterParams) ([]entity.Order, int64, error)
	ListByCustomer(ctx context.Context, customerID int64) ([]entity.Order, error)
	ListByStatus(ctx context.Context, status enum.FinancialStatus) ([]entity.Order, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status enum.FinancialStatus) (*entity.Order, error)
	Delete(ctx context.Context, id uuid.UUID) error

	// ScanAll returns every stored order with line items loaded.
	ScanAll(ctx context.Context) ([]entity.Order, error)
	// ScanYear returns orders with created_at in [year-01-01, (year+1)-01-01).
	ScanYear(ctx context.Context, year int) ([]entity.Order, error)
}

// OrderFilterParams contains filtering parameters for order list queries
type OrderFilterParams struct {
	Pagination *pagination.PaginationParams
	Status     *enum.FinancialStatus
	CustomerID *int64
}
