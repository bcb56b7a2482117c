package request

// CreateProductRequest represents a product creation request
type CreateProductRequest struct {
	ProductID int64                  `json:"product_id" binding:"required"`
	Title     string                 `json:"title" binding:"required,max=255"`
	Vendor    string                 `json:"vendor" binding:"omitempty,max=255"`
	Tags      []string               `json:"tags"`
	Variants  []CreateVariantRequest `json:"variants" binding:"dive"`
	Images    []CreateImageRequest   `json:"images" binding:"dive"`
}

// CreateVariantRequest represents one variant in a product creation request
type CreateVariantRequest struct {
	VariantID         int64  `json:"variant_id" binding:"required"`
	SKU               string `json:"sku" binding:"omitempty,max=100"`
	Price             string `json:"price"`
	InventoryQuantity int    `json:"inventory_quantity" binding:"min=0"`
}

// CreateImageRequest represents one image in a product creation request
type CreateImageRequest struct {
	ImageURL  string `json:"image_url" binding:"required,url"`
	AltText   string `json:"image_alt_text" binding:"omitempty,max=255"`
	ImageType string `json:"image_type" binding:"omitempty,oneof=main gallery thumbnail"`
	Order     int    `json:"image_order" binding:"min=0"`
	IsPrimary bool   `json:"is_primary"`
}

// UpdateProductRequest represents a product update request
type UpdateProductRequest struct {
	Title  *string  `json:"title" binding:"omitempty,min=1,max=255"`
	Vendor *string  `json:"vendor" binding:"omitempty,max=255"`
	Tags   []string `json:"tags"`
}
