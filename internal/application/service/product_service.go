package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/workmate/commerce-api/internal/domain/entity"
	"github.com/workmate/commerce-api/internal/domain/repository"
	"github.com/workmate/commerce-api/pkg/apperror"
	"github.com/workmate/commerce-api/pkg/pagination"
)

// ProductService handles catalog product operations
type ProductService struct {
	productRepo repository.ProductRepository
}

// NewProductService creates a new product service
func NewProductService(productRepo repository.ProductRepository) *ProductService {
	return &ProductService{productRepo: productRepo}
}

// CreateProductInput represents the create product input
type CreateProductInput struct {
	ProductID int64
	Title     string
	Vendor    string
	Tags      []string
	Variants  []CreateVariantInput
	Images    []CreateImageInput
}

// CreateVariantInput represents one variant in a create product input
type CreateVariantInput struct {
	VariantID         int64
	SKU               string
	Price             string
	InventoryQuantity int
}

// CreateImageInput represents one image in a create product input
type CreateImageInput struct {
	ImageURL  string
	AltText   string
	ImageType string
	Order     int
	IsPrimary bool
}

// CreateProduct creates a new product. ProductID must be unique.
func (s *ProductService) CreateProduct(ctx context.Context, input *CreateProductInput) (*entity.Product, error) {
	if input.Title == "" {
		return nil, apperror.NewBadRequestError("Product title is required")
	}

	existing, err := s.productRepo.GetByProductID(ctx, input.ProductID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflictError("Product already exists")
	}

	variants := make([]entity.ProductVariant, 0, len(input.Variants))
	for _, v := range input.Variants {
		variants = append(variants, entity.ProductVariant{
			VariantID:         v.VariantID,
			SKU:               v.SKU,
			Price:             v.Price,
			InventoryQuantity: v.InventoryQuantity,
		})
	}

	images := make([]entity.ProductImage, 0, len(input.Images))
	for _, img := range input.Images {
		images = append(images, entity.ProductImage{
			ImageURL:   img.ImageURL,
			AltText:    img.AltText,
			ImageType:  img.ImageType,
			ImageOrder: img.Order,
			IsPrimary:  img.IsPrimary,
		})
	}

	product := &entity.Product{
		ProductID: input.ProductID,
		Title:     input.Title,
		Vendor:    input.Vendor,
		Tags:      input.Tags,
		Variants:  variants,
		Images:    images,
	}

	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// GetProduct retrieves a product by ID
func (s *ProductService) GetProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.NewNotFoundError("Product")
	}
	return product, nil
}

// ListProducts lists products with pagination
func (s *ProductService) ListProducts(ctx context.Context, params *pagination.PaginationParams) (*pagination.PaginatedResult[entity.Product], error) {
	if params == nil {
		params = pagination.DefaultPagination()
	}
	params.Validate()

	products, total, err := s.productRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(products, pag), nil
}

// UpdateProductInput represents the update product input; nil fields
// are left unchanged
type UpdateProductInput struct {
	Title  *string
	Vendor *string
	Tags   []string
}

// UpdateProduct updates a product's mutable fields
func (s *ProductService) UpdateProduct(ctx context.Context, id uuid.UUID, input *UpdateProductInput) (*entity.Product, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.NewNotFoundError("Product")
	}

	if input.Title != nil {
		if *input.Title == "" {
			return nil, apperror.NewBadRequestError("Product title must not be empty")
		}
		product.Title = *input.Title
	}
	if input.Vendor != nil {
		product.Vendor = *input.Vendor
	}
	if input.Tags != nil {
		product.Tags = input.Tags
	}

	if err := s.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// DeleteProduct deletes a product by ID
func (s *ProductService) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if product == nil {
		return apperror.NewNotFoundError("Product")
	}
	return s.productRepo.Delete(ctx, id)
}
