package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/workmate/commerce-api/internal/domain/enum"
	"gorm.io/gorm"
)

// Order represents one imported commerce-platform order. Monetary fields are
// decimals in the order's currency; CreatedAt is the platform's order
// creation time and is the temporal dimension for all sales analytics.
type Order struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	OrderID     int64     `gorm:"uniqueIndex;not null" json:"order_id"`
	OrderNumber int       `gorm:"not null" json:"order_number"`
	Name        string    `gorm:"size:100;not null" json:"name"`

	CreatedAt   time.Time  `gorm:"index;not null" json:"created_at"`
	ProcessedAt *time.Time `json:"processed_at,omitempty"`
	UpdatedAt   time.Time  `json:"updated_at"`

	FinancialStatus   enum.FinancialStatus `gorm:"size:50;default:'pending';index" json:"financial_status"`
	FulfillmentStatus *string              `gorm:"size:50" json:"fulfillment_status,omitempty"`
	Currency          string               `gorm:"size:10;default:'USD'" json:"currency"`

	SubtotalPrice  float64 `gorm:"default:0" json:"subtotal_price"`
	TotalPrice     float64 `gorm:"default:0" json:"total_price"`
	TotalTax       float64 `gorm:"default:0" json:"total_tax"`
	TotalDiscounts float64 `gorm:"default:0" json:"total_discounts"`

	LineItems []LineItem `gorm:"foreignKey:OrderRef;constraint:OnDelete:CASCADE" json:"line_items"`

	Customer        CustomerInfo `gorm:"embedded;embeddedPrefix:customer_" json:"customer"`
	BillingAddress  *Address     `gorm:"serializer:json" json:"billing_address,omitempty"`
	ShippingAddress *Address     `gorm:"serializer:json" json:"shipping_address,omitempty"`

	Tags       []string       `gorm:"serializer:json" json:"tags"`
	SourceName *string        `gorm:"size:100" json:"source_name,omitempty"`
	Email      *string        `gorm:"size:255" json:"email,omitempty"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`
}

// BeforeCreate generates a UUID before creating a new order
func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Order model
func (Order) TableName() string {
	return "shopify_orders"
}

// TotalQuantity sums quantities across the order's line items. Used as the
// denominator for proportional revenue attribution; 0 for empty orders.
func (o *Order) TotalQuantity() int {
	total := 0
	for _, item := range o.LineItems {
		total += item.Quantity
	}
	return total
}

// LineItem represents one product/variant/quantity entry within an order.
// Line items carry no line-level price; order-level totals are distributed
// across them when revenue is attributed per product.
type LineItem struct {
	ID               uuid.UUID `gorm:"type:uuid;primary_key" json:"-"`
	OrderRef         uuid.UUID `gorm:"type:uuid;not null;index" json:"-"`
	ProductID        int64     `gorm:"not null;index" json:"product_id"`
	VariantID        int64     `gorm:"not null" json:"variant_id"`
	Quantity         int       `gorm:"not null;check:quantity >= 0" json:"quantity"`
	TotalDiscount    float64   `gorm:"default:0" json:"total_discount"`
	RequiresShipping bool      `gorm:"default:false" json:"requires_shipping"`
}

// BeforeCreate generates a UUID before creating a new line item
func (li *LineItem) BeforeCreate(tx *gorm.DB) error {
	if li.ID == uuid.Nil {
		li.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the LineItem model
func (LineItem) TableName() string {
	return "shopify_order_line_items"
}

// CustomerInfo carries the customer snapshot embedded in an order document
type CustomerInfo struct {
	CustomerID    int64     `json:"customer_id"`
	FirstName     string    `gorm:"size:255" json:"first_name"`
	LastName      string    `gorm:"size:255" json:"last_name"`
	Email         string    `gorm:"size:255" json:"email"`
	Phone         *string   `gorm:"size:50" json:"phone,omitempty"`
	Tags          []string  `gorm:"serializer:json" json:"tags"`
	CreatedAt     time.Time `json:"created_at"`
	VerifiedEmail bool      `gorm:"default:true" json:"verified_email"`
}

// Address is a billing or shipping address snapshot, stored as JSON
type Address struct {
	FirstName   string   `json:"first_name"`
	LastName    string   `json:"last_name"`
	Address1    string   `json:"address1"`
	Address2    *string  `json:"address2,omitempty"`
	City        string   `json:"city"`
	Zip         string   `json:"zip"`
	Province    *string  `json:"province,omitempty"`
	Country     string   `json:"country"`
	CountryCode string   `json:"country_code"`
	Phone       *string  `json:"phone,omitempty"`
	Latitude    *float64 `json:"latitude,omitempty"`
	Longitude   *float64 `json:"longitude,omitempty"`
}
