package request

import (
	"time"

	"github.com/workmate/commerce-api/internal/domain/entity"
)

// CreateOrderRequest represents an order creation request
type CreateOrderRequest struct {
	OrderID         int64                   `json:"order_id" binding:"required"`
	OrderNumber     int                     `json:"order_number" binding:"min=0"`
	Name            string                  `json:"name" binding:"required,max=100"`
	CreatedAt       *time.Time              `json:"created_at"`
	ProcessedAt     *time.Time              `json:"processed_at"`
	FinancialStatus string                  `json:"financial_status"`
	Currency        string                  `json:"currency" binding:"omitempty,max=10"`
	SubtotalPrice   float64                 `json:"subtotal_price" binding:"min=0"`
	TotalPrice      float64                 `json:"total_price" binding:"min=0"`
	TotalTax        float64                 `json:"total_tax" binding:"min=0"`
	TotalDiscounts  float64                 `json:"total_discounts" binding:"min=0"`
	LineItems       []CreateLineItemRequest `json:"line_items" binding:"required,min=1,dive"`
	Customer        entity.CustomerInfo     `json:"customer"`
	BillingAddress  *entity.Address         `json:"billing_address"`
	ShippingAddress *entity.Address         `json:"shipping_address"`
	Tags            []string                `json:"tags"`
	SourceName      *string                 `json:"source_name"`
	Email           *string                 `json:"email" binding:"omitempty,email"`
}

// CreateLineItemRequest represents one line item in an order creation request
type CreateLineItemRequest struct {
	ProductID        int64   `json:"product_id" binding:"required"`
	VariantID        int64   `json:"variant_id"`
	Quantity         int     `json:"quantity" binding:"min=0"`
	TotalDiscount    float64 `json:"total_discount" binding:"min=0"`
	RequiresShipping bool    `json:"requires_shipping"`
}

// UpdateOrderStatusRequest represents an order status update request
type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// OrderFilterRequest represents order list filter parameters
type OrderFilterRequest struct {
	Status     string `form:"status"`
	CustomerID int64  `form:"customer_id"`
	Page       int    `form:"page"`
	PerPage    int    `form:"per_page"`
}

// ImportOrdersRequest represents a platform order import request
type ImportOrdersRequest struct {
	Limit  int    `form:"limit" binding:"omitempty,min=1,max=250"`
	Status string `form:"status" binding:"omitempty,oneof=open closed cancelled any"`
}
