package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/workmate/commerce-api/internal/application/service"
	"github.com/workmate/commerce-api/internal/presentation/http/dto/request"
	"github.com/workmate/commerce-api/internal/presentation/http/dto/response"
	"github.com/workmate/commerce-api/pkg/pagination"
)

// ProductHandler handles product-related HTTP requests
type ProductHandler struct {
	productService *service.ProductService
	syncService    *service.SyncService
}

// NewProductHandler creates a new product handler
func NewProductHandler(productService *service.ProductService, syncService *service.SyncService) *ProductHandler {
	return &ProductHandler{productService: productService, syncService: syncService}
}

// Create handles creating a product
func (h *ProductHandler) Create(c *gin.Context) {
	var req request.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	input := &service.CreateProductInput{
		ProductID: req.ProductID,
		Title:     req.Title,
		Vendor:    req.Vendor,
		Tags:      req.Tags,
	}
	for _, v := range req.Variants {
		input.Variants = append(input.Variants, service.CreateVariantInput{
			VariantID:         v.VariantID,
			SKU:               v.SKU,
			Price:             v.Price,
			InventoryQuantity: v.InventoryQuantity,
		})
	}
	for _, img := range req.Images {
		input.Images = append(input.Images, service.CreateImageInput{
			ImageURL:  img.ImageURL,
			AltText:   img.AltText,
			ImageType: img.ImageType,
			Order:     img.Order,
			IsPrimary: img.IsPrimary,
		})
	}

	product, err := h.productService.CreateProduct(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "Product created successfully", product)
}

// ImportFromShopify handles pulling products from the platform into storage
func (h *ProductHandler) ImportFromShopify(c *gin.Context) {
	result, err := h.syncService.ImportProducts(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Products imported successfully", result)
}

// List handles listing products with pagination
func (h *ProductHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "15"))

	result, err := h.productService.ListProducts(c.Request.Context(), &pagination.PaginationParams{
		Page:    page,
		PerPage: perPage,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.SuccessWithPagination(c, 200, "Products retrieved successfully", result)
}

// Get handles retrieving a product by ID
func (h *ProductHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("product_id"))
	if err != nil {
		response.BadRequest(c, "Invalid product ID")
		return
	}

	product, err := h.productService.GetProduct(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Product retrieved successfully", product)
}

// Update handles updating a product
func (h *ProductHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("product_id"))
	if err != nil {
		response.BadRequest(c, "Invalid product ID")
		return
	}

	var req request.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	product, err := h.productService.UpdateProduct(c.Request.Context(), id, &service.UpdateProductInput{
		Title:  req.Title,
		Vendor: req.Vendor,
		Tags:   req.Tags,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Product updated successfully", product)
}

// Delete handles deleting a product
func (h *ProductHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("product_id"))
	if err != nil {
		response.BadRequest(c, "Invalid product ID")
		return
	}

	if err := h.productService.DeleteProduct(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
