package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Product represents a catalog product imported from the commerce platform
type Product struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	ProductID int64     `gorm:"uniqueIndex;not null" json:"product_id"`
	Title     string    `gorm:"size:255;not null" json:"title"`
	Vendor    string    `gorm:"size:255" json:"vendor"`
	Tags      []string  `gorm:"serializer:json" json:"tags"`

	Variants []ProductVariant `gorm:"foreignKey:ProductRef;constraint:OnDelete:CASCADE" json:"variants"`
	Images   []ProductImage   `gorm:"foreignKey:ProductRef;constraint:OnDelete:CASCADE" json:"images"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// BeforeCreate generates a UUID before creating a new product
func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Product model
func (Product) TableName() string {
	return "shopify_products"
}

// ProductVariant represents a purchasable variant of a product. Price is
// kept as the platform's decimal string; it is display data only and never
// enters analytics arithmetic.
type ProductVariant struct {
	ID                uuid.UUID `gorm:"type:uuid;primary_key" json:"-"`
	ProductRef        uuid.UUID `gorm:"type:uuid;not null;index" json:"-"`
	VariantID         int64     `gorm:"uniqueIndex;not null" json:"variant_id"`
	SKU               string    `gorm:"size:100" json:"sku"`
	Price             string    `gorm:"size:50" json:"price"`
	InventoryQuantity int       `gorm:"default:0;check:inventory_quantity >= 0" json:"inventory_quantity"`
}

// BeforeCreate generates a UUID before creating a new variant
func (v *ProductVariant) BeforeCreate(tx *gorm.DB) error {
	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the ProductVariant model
func (ProductVariant) TableName() string {
	return "shopify_product_variants"
}

// ProductImage represents one image attached to a product
type ProductImage struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key" json:"-"`
	ProductRef uuid.UUID `gorm:"type:uuid;not null;index" json:"-"`
	ImageURL   string    `gorm:"size:1024;not null" json:"image_url"`
	AltText    string    `gorm:"size:255" json:"image_alt_text"`
	ImageType  string    `gorm:"size:50;default:'main'" json:"image_type"`
	ImageOrder int       `gorm:"default:0" json:"image_order"`
	IsPrimary  bool      `gorm:"default:false" json:"is_primary"`
}

// BeforeCreate generates a UUID before creating a new image
func (i *ProductImage) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the ProductImage model
func (ProductImage) TableName() string {
	return "shopify_product_images"
}
