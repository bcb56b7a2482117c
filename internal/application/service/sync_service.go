package service

import (
	"context"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/workmate/commerce-api/internal/domain/entity"
	"github.com/workmate/commerce-api/internal/domain/enum"
	"github.com/workmate/commerce-api/internal/domain/repository"
	"github.com/workmate/commerce-api/pkg/apperror"
	"github.com/workmate/commerce-api/pkg/shopify"
)

// ShopifyGateway is the platform API surface the sync service depends on
type ShopifyGateway interface {
	ListOrders(ctx context.Context, limit int, status string) ([]shopify.Order, error)
	ListProducts(ctx context.Context) ([]shopify.Product, error)
}

// SyncService imports orders and products from the commerce platform
// into local storage
type SyncService struct {
	gateway     ShopifyGateway
	orderRepo   repository.OrderRepository
	productRepo repository.ProductRepository
	logger      *zap.Logger
}

// NewSyncService creates a new sync service
func NewSyncService(gateway ShopifyGateway, orderRepo repository.OrderRepository, productRepo repository.ProductRepository, logger *zap.Logger) *SyncService {
	return &SyncService{
		gateway:     gateway,
		orderRepo:   orderRepo,
		productRepo: productRepo,
		logger:      logger,
	}
}

// SyncResult summarizes one import run
type SyncResult struct {
	Fetched  int `json:"fetched"`
	Imported int `json:"imported"`
	Skipped  int `json:"skipped"`
}

// ImportOrders fetches up to limit orders from the platform and stores the
// ones not already present. Existing orders are matched by platform order
// id and skipped, so repeated runs are safe.
func (s *SyncService) ImportOrders(ctx context.Context, limit int, status string) (*SyncResult, error) {
	if s.gateway == nil {
		return nil, apperror.NewBadRequestError("Platform credentials not configured")
	}

	remote, err := s.gateway.ListOrders(ctx, limit, status)
	if err != nil {
		return nil, apperror.NewStorageError(err)
	}

	result := &SyncResult{Fetched: len(remote)}
	for _, raw := range remote {
		existing, err := s.orderRepo.GetByOrderID(ctx, raw.ID)
		if err != nil {
			return result, err
		}
		if existing != nil {
			result.Skipped++
			continue
		}

		order := translateOrder(raw)
		if err := s.orderRepo.Create(ctx, order); err != nil {
			return result, err
		}
		result.Imported++
		s.logger.Debug("imported order",
			zap.Int64("order_id", raw.ID),
			zap.String("name", raw.Name))
	}

	s.logger.Info("order import finished",
		zap.Int("fetched", result.Fetched),
		zap.Int("imported", result.Imported),
		zap.Int("skipped", result.Skipped))
	return result, nil
}

// ImportProducts fetches the platform's products and stores the ones not
// already present, matched by platform product id.
func (s *SyncService) ImportProducts(ctx context.Context) (*SyncResult, error) {
	if s.gateway == nil {
		return nil, apperror.NewBadRequestError("Platform credentials not configured")
	}

	remote, err := s.gateway.ListProducts(ctx)
	if err != nil {
		return nil, apperror.NewStorageError(err)
	}

	result := &SyncResult{Fetched: len(remote)}
	for _, raw := range remote {
		existing, err := s.productRepo.GetByProductID(ctx, raw.ID)
		if err != nil {
			return result, err
		}
		if existing != nil {
			result.Skipped++
			continue
		}

		if err := s.productRepo.Create(ctx, translateProduct(raw)); err != nil {
			return result, err
		}
		result.Imported++
	}

	s.logger.Info("product import finished",
		zap.Int("fetched", result.Fetched),
		zap.Int("imported", result.Imported),
		zap.Int("skipped", result.Skipped))
	return result, nil
}

// money parses a Shopify decimal string, treating empty or malformed
// values as zero the way the platform's own exports do
func money(raw string) float64 {
	if raw == "" {
		return 0
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0
	}
	return v
}

// splitTags converts Shopify's comma-separated tag string into a slice
func splitTags(raw string) []string {
	if raw == "" {
		return []string{}
	}
	parts := strings.Split(raw, ",")
	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}

func translateOrder(raw shopify.Order) *entity.Order {
	items := make([]entity.LineItem, 0, len(raw.LineItems))
	for _, li := range raw.LineItems {
		items = append(items, entity.LineItem{
			ProductID:        li.ProductID,
			VariantID:        li.VariantID,
			Quantity:         li.Quantity,
			TotalDiscount:    money(li.TotalDiscount),
			RequiresShipping: li.RequiresShipping,
		})
	}

	status := enum.FinancialStatus(raw.FinancialStatus)
	if !status.Valid() {
		status = enum.FinancialStatusPending
	}

	currency := raw.Currency
	if currency == "" {
		currency = "USD"
	}

	return &entity.Order{
		OrderID:           raw.ID,
		OrderNumber:       raw.OrderNumber,
		Name:              raw.Name,
		CreatedAt:         raw.CreatedAt,
		ProcessedAt:       raw.ProcessedAt,
		UpdatedAt:         raw.UpdatedAt,
		FinancialStatus:   status,
		FulfillmentStatus: raw.FulfillmentStatus,
		Currency:          currency,
		SubtotalPrice:     money(raw.SubtotalPrice),
		TotalPrice:        money(raw.TotalPrice),
		TotalTax:          money(raw.TotalTax),
		TotalDiscounts:    money(raw.TotalDiscounts),
		LineItems:         items,
		Customer:          translateCustomer(raw.Customer),
		BillingAddress:    translateAddress(raw.BillingAddress),
		ShippingAddress:   translateAddress(raw.ShippingAddress),
		Tags:              splitTags(raw.Tags),
		SourceName:        raw.SourceName,
		Email:             raw.Email,
	}
}

func translateCustomer(raw *shopify.Customer) entity.CustomerInfo {
	if raw == nil {
		return entity.CustomerInfo{Tags: []string{}, CreatedAt: time.Now().UTC()}
	}

	createdAt := time.Now().UTC()
	if raw.CreatedAt != nil {
		createdAt = *raw.CreatedAt
	}
	return entity.CustomerInfo{
		CustomerID:    raw.ID,
		FirstName:     raw.FirstName,
		LastName:      raw.LastName,
		Email:         raw.Email,
		Phone:         raw.Phone,
		Tags:          splitTags(raw.Tags),
		CreatedAt:     createdAt,
		VerifiedEmail: raw.VerifiedEmail,
	}
}

func translateAddress(raw *shopify.Address) *entity.Address {
	if raw == nil {
		return nil
	}
	return &entity.Address{
		FirstName:   raw.FirstName,
		LastName:    raw.LastName,
		Address1:    raw.Address1,
		Address2:    raw.Address2,
		City:        raw.City,
		Zip:         raw.Zip,
		Province:    raw.Province,
		Country:     raw.Country,
		CountryCode: raw.CountryCode,
		Phone:       raw.Phone,
		Latitude:    raw.Latitude,
		Longitude:   raw.Longitude,
	}
}

func translateProduct(raw shopify.Product) *entity.Product {
	variants := make([]entity.ProductVariant, 0, len(raw.Variants))
	for _, v := range raw.Variants {
		variants = append(variants, entity.ProductVariant{
			VariantID:         v.ID,
			SKU:               v.SKU,
			Price:             v.Price,
			InventoryQuantity: v.InventoryQuantity,
		})
	}

	images := make([]entity.ProductImage, 0, len(raw.Images))
	for i, img := range raw.Images {
		imageType := "gallery"
		if i == 0 {
			imageType = "main"
		}
		images = append(images, entity.ProductImage{
			ImageURL:   img.Src,
			AltText:    img.Alt,
			ImageType:  imageType,
			ImageOrder: i,
			IsPrimary:  i == 0,
		})
	}

	return &entity.Product{
		ProductID: raw.ID,
		Title:     raw.Title,
		Vendor:    raw.Vendor,
		Tags:      splitTags(raw.Tags),
		Variants:  variants,
		Images:    images,
	}
}
