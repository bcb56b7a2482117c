package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/workmate/commerce-api/internal/application/service"
	"github.com/workmate/commerce-api/internal/domain/entity"
	"github.com/workmate/commerce-api/internal/domain/enum"
	"github.com/workmate/commerce-api/pkg/shopify"
)

func shopifyOrder(id int64) shopify.Order {
	return shopify.Order{
		ID:              id,
		OrderNumber:     1,
		Name:            "#1001",
		CreatedAt:       time.Date(2024, 1, 5, 14, 30, 0, 0, time.UTC),
		UpdatedAt:       time.Date(2024, 1, 5, 14, 30, 0, 0, time.UTC),
		FinancialStatus: "paid",
		Currency:        "USD",
		SubtotalPrice:   "100.00",
		TotalPrice:      "110.00",
		TotalTax:        "8.00",
		TotalDiscounts:  "2.00",
		Tags:            "vip, wholesale",
		LineItems: []shopify.LineItem{
			{ProductID: 1, VariantID: 10, Quantity: 2, TotalDiscount: "0.00"},
			{ProductID: 2, VariantID: 20, Quantity: 1},
		},
		Customer: &shopify.Customer{ID: 77, FirstName: "Jane", Email: "jane@example.com", Tags: "repeat"},
	}
}

func TestSyncService_ImportOrders(t *testing.T) {
	orderRepo := &memOrderRepo{}
	gateway := &stubGateway{orders: []shopify.Order{shopifyOrder(9001)}}
	svc := service.NewSyncService(gateway, orderRepo, &memProductRepo{}, zap.NewNop())

	result, err := svc.ImportOrders(context.Background(), 50, "")
	require.NoError(t, err)
	assert.Equal(t, 1, result.Fetched)
	assert.Equal(t, 1, result.Imported)
	assert.Equal(t, 0, result.Skipped)

	require.Len(t, orderRepo.orders, 1)
	stored := orderRepo.orders[0]
	assert.Equal(t, int64(9001), stored.OrderID)
	assert.Equal(t, enum.FinancialStatusPaid, stored.FinancialStatus)
	assert.InDelta(t, 100.0, stored.SubtotalPrice, 1e-9)
	assert.InDelta(t, 110.0, stored.TotalPrice, 1e-9)
	assert.Equal(t, []string{"vip", "wholesale"}, stored.Tags)
	assert.Equal(t, int64(77), stored.Customer.CustomerID)
	assert.Equal(t, []string{"repeat"}, stored.Customer.Tags)
	require.Len(t, stored.LineItems, 2)
	assert.Equal(t, 2, stored.LineItems[0].Quantity)
}

func TestSyncService_ImportOrders_SkipsExisting(t *testing.T) {
	orderRepo := &memOrderRepo{orders: []entity.Order{{OrderID: 9001}}}
	gateway := &stubGateway{orders: []shopify.Order{shopifyOrder(9001), shopifyOrder(9002)}}
	svc := service.NewSyncService(gateway, orderRepo, &memProductRepo{}, zap.NewNop())

	result, err := svc.ImportOrders(context.Background(), 50, "")
	require.NoError(t, err)
	assert.Equal(t, 2, result.Fetched)
	assert.Equal(t, 1, result.Imported)
	assert.Equal(t, 1, result.Skipped)
	assert.Len(t, orderRepo.orders, 2)
}

func TestSyncService_ImportOrders_UnknownStatusDefaultsPending(t *testing.T) {
	orderRepo := &memOrderRepo{}
	raw := shopifyOrder(9001)
	raw.FinancialStatus = "mystery"
	gateway := &stubGateway{orders: []shopify.Order{raw}}
	svc := service.NewSyncService(gateway, orderRepo, &memProductRepo{}, zap.NewNop())

	_, err := svc.ImportOrders(context.Background(), 50, "")
	require.NoError(t, err)
	require.Len(t, orderRepo.orders, 1)
	assert.Equal(t, enum.FinancialStatusPending, orderRepo.orders[0].FinancialStatus)
}

func TestSyncService_ImportOrders_GatewayFailure(t *testing.T) {
	gateway := &stubGateway{err: errors.New("401 unauthorized")}
	svc := service.NewSyncService(gateway, &memOrderRepo{}, &memProductRepo{}, zap.NewNop())

	_, err := svc.ImportOrders(context.Background(), 50, "")
	require.Error(t, err)
}

func TestSyncService_ImportProducts(t *testing.T) {
	productRepo := &memProductRepo{}
	gateway := &stubGateway{products: []shopify.Product{
		{
			ID:     501,
			Title:  "Widget",
			Vendor: "Acme",
			Tags:   "gadgets,featured",
			Variants: []shopify.Variant{
				{ID: 5011, SKU: "W-1", Price: "19.99", InventoryQuantity: 4},
			},
			Images: []shopify.Image{
				{Src: "https://cdn.example.com/a.jpg", Alt: "front"},
				{Src: "https://cdn.example.com/b.jpg"},
			},
		},
	}}
	svc := service.NewSyncService(gateway, &memOrderRepo{}, productRepo, zap.NewNop())

	result, err := svc.ImportProducts(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, result.Imported)

	require.Len(t, productRepo.products, 1)
	stored := productRepo.products[0]
	assert.Equal(t, int64(501), stored.ProductID)
	assert.Equal(t, []string{"gadgets", "featured"}, stored.Tags)
	require.Len(t, stored.Variants, 1)
	assert.Equal(t, "19.99", stored.Variants[0].Price)
	require.Len(t, stored.Images, 2)
	assert.Equal(t, "main", stored.Images[0].ImageType)
	assert.True(t, stored.Images[0].IsPrimary)
	assert.Equal(t, "gallery", stored.Images[1].ImageType)
	assert.Equal(t, 1, stored.Images[1].ImageOrder)
}

func TestSyncService_ImportProducts_Idempotent(t *testing.T) {
	productRepo := &memProductRepo{}
	gateway := &stubGateway{products: []shopify.Product{{ID: 501, Title: "Widget"}}}
	svc := service.NewSyncService(gateway, &memOrderRepo{}, productRepo, zap.NewNop())

	_, err := svc.ImportProducts(context.Background())
	require.NoError(t, err)

	result, err := svc.ImportProducts(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, result.Imported)
	assert.Equal(t, 1, result.Skipped)
	assert.Len(t, productRepo.products, 1)
}
