package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/workmate/commerce-api/internal/domain/entity"
	"github.com/workmate/commerce-api/internal/domain/enum"
	"github.com/workmate/commerce-api/internal/domain/repository"
	"github.com/workmate/commerce-api/pkg/apperror"
	"github.com/workmate/commerce-api/pkg/pagination"
)

// OrderService handles order-related operations
type OrderService struct {
	orderRepo repository.OrderRepository
}

// NewOrderService creates a new order service
func NewOrderService(orderRepo repository.OrderRepository) *OrderService {
	return &OrderService{orderRepo: orderRepo}
}

// CreateOrderInput represents the create order input
type CreateOrderInput struct {
	OrderID         int64
	OrderNumber     int
	Name            string
	CreatedAt       time.Time
	ProcessedAt     *time.Time
	FinancialStatus string
	Currency        string
	SubtotalPrice   float64
	TotalPrice      float64
	TotalTax        float64
	TotalDiscounts  float64
	LineItems       []CreateLineItemInput
	Customer        entity.CustomerInfo
	BillingAddress  *entity.Address
	ShippingAddress *entity.Address
	Tags            []string
	SourceName      *string
	Email           *string
}

// CreateLineItemInput represents one line item in a create order input
type CreateLineItemInput struct {
	ProductID        int64
	VariantID        int64
	Quantity         int
	TotalDiscount    float64
	RequiresShipping bool
}

// CreateOrder creates a new order. OrderID must be unique across the store.
func (s *OrderService) CreateOrder(ctx context.Context, input *CreateOrderInput) (*entity.Order, error) {
	status := enum.FinancialStatusPending
	if input.FinancialStatus != "" {
		parsed, err := enum.ParseFinancialStatus(input.FinancialStatus)
		if err != nil {
			return nil, apperror.NewBadRequestError("Invalid financial status: " + input.FinancialStatus)
		}
		status = parsed
	}

	existing, err := s.orderRepo.GetByOrderID(ctx, input.OrderID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflictError("Order already exists")
	}

	createdAt := input.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	currency := input.Currency
	if currency == "" {
		currency = "USD"
	}

	items := make([]entity.LineItem, 0, len(input.LineItems))
	for _, li := range input.LineItems {
		if li.Quantity < 0 {
			return nil, apperror.NewBadRequestError("Line item quantity must not be negative")
		}
		items = append(items, entity.LineItem{
			ProductID:        li.ProductID,
			VariantID:        li.VariantID,
			Quantity:         li.Quantity,
			TotalDiscount:    li.TotalDiscount,
			RequiresShipping: li.RequiresShipping,
		})
	}

	order := &entity.Order{
		OrderID:         input.OrderID,
		OrderNumber:     input.OrderNumber,
		Name:            input.Name,
		CreatedAt:       createdAt,
		ProcessedAt:     input.ProcessedAt,
		FinancialStatus: status,
		Currency:        currency,
		SubtotalPrice:   input.SubtotalPrice,
		TotalPrice:      input.TotalPrice,
		TotalTax:        input.TotalTax,
		TotalDiscounts:  input.TotalDiscounts,
		LineItems:       items,
		Customer:        input.Customer,
		BillingAddress:  input.BillingAddress,
		ShippingAddress: input.ShippingAddress,
		Tags:            input.Tags,
		SourceName:      input.SourceName,
		Email:           input.Email,
	}

	if err := s.orderRepo.Create(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

// GetOrder retrieves an order by ID
func (s *OrderService) GetOrder(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	order, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, apperror.NewNotFoundError("Order")
	}
	return order, nil
}

// GetOrderByPlatformID retrieves an order by its commerce-platform order id
func (s *OrderService) GetOrderByPlatformID(ctx context.Context, orderID int64) (*entity.Order, error) {
	order, err := s.orderRepo.GetByOrderID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, apperror.NewNotFoundError("Order")
	}
	return order, nil
}

// ListOrders lists orders with optional status and customer filters
func (s *OrderService) ListOrders(ctx context.Context, params *repository.OrderFilterParams) (*pagination.PaginatedResult[entity.Order], error) {
	if params == nil {
		params = &repository.OrderFilterParams{}
	}
	if params.Pagination == nil {
		params.Pagination = pagination.DefaultPagination()
	}
	params.Pagination.Validate()

	orders, total, err := s.orderRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(orders, pag), nil
}

// ListOrdersByCustomer lists all orders placed by one customer
func (s *OrderService) ListOrdersByCustomer(ctx context.Context, customerID int64) ([]entity.Order, error) {
	return s.orderRepo.ListByCustomer(ctx, customerID)
}

// ListOrdersByStatus lists all orders with the given financial status
func (s *OrderService) ListOrdersByStatus(ctx context.Context, status string) ([]entity.Order, error) {
	parsed, err := enum.ParseFinancialStatus(status)
	if err != nil {
		return nil, apperror.NewBadRequestError("Invalid financial status: " + status)
	}
	return s.orderRepo.ListByStatus(ctx, parsed)
}

// UpdateOrderStatus updates an order's financial status
func (s *OrderService) UpdateOrderStatus(ctx context.Context, id uuid.UUID, status string) (*entity.Order, error) {
	parsed, err := enum.ParseFinancialStatus(status)
	if err != nil {
		return nil, apperror.NewBadRequestError("Invalid financial status: " + status)
	}

	order, err := s.orderRepo.UpdateStatus(ctx, id, parsed)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, apperror.NewNotFoundError("Order")
	}
	return order, nil
}

// DeleteOrder deletes an order by ID
func (s *OrderService) DeleteOrder(ctx context.Context, id uuid.UUID) error {
	order, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if order == nil {
		return apperror.NewNotFoundError("Order")
	}
	return s.orderRepo.Delete(ctx, id)
}
