package service_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/workmate/commerce-api/internal/application/service"
	"github.com/workmate/commerce-api/internal/domain/entity"
	"github.com/workmate/commerce-api/internal/domain/enum"
	"github.com/workmate/commerce-api/pkg/apperror"
)

func createInput(orderID int64) *service.CreateOrderInput {
	return &service.CreateOrderInput{
		OrderID:         orderID,
		OrderNumber:     1,
		Name:            "#1001",
		CreatedAt:       time.Date(2024, 1, 5, 14, 30, 0, 0, time.UTC),
		FinancialStatus: "paid",
		SubtotalPrice:   100,
		TotalPrice:      110,
		LineItems: []service.CreateLineItemInput{
			{ProductID: 1, VariantID: 10, Quantity: 2},
		},
	}
}

func TestOrderService_CreateOrder(t *testing.T) {
	repo := &memOrderRepo{}
	svc := service.NewOrderService(repo)

	order, err := svc.CreateOrder(context.Background(), createInput(1001))
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, order.ID)
	assert.Equal(t, int64(1001), order.OrderID)
	assert.Equal(t, enum.FinancialStatusPaid, order.FinancialStatus)
	assert.Equal(t, "USD", order.Currency)
	require.Len(t, order.LineItems, 1)
	assert.Equal(t, 2, order.LineItems[0].Quantity)
}

func TestOrderService_CreateOrder_Duplicate(t *testing.T) {
	repo := &memOrderRepo{}
	svc := service.NewOrderService(repo)

	_, err := svc.CreateOrder(context.Background(), createInput(1001))
	require.NoError(t, err)

	_, err = svc.CreateOrder(context.Background(), createInput(1001))
	require.Error(t, err)
	assert.Equal(t, http.StatusConflict, apperror.GetAppError(err).Code)
}

func TestOrderService_CreateOrder_InvalidStatus(t *testing.T) {
	svc := service.NewOrderService(&memOrderRepo{})

	input := createInput(1001)
	input.FinancialStatus = "shipped"
	_, err := svc.CreateOrder(context.Background(), input)
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, apperror.GetAppError(err).Code)
}

func TestOrderService_CreateOrder_NegativeQuantity(t *testing.T) {
	svc := service.NewOrderService(&memOrderRepo{})

	input := createInput(1001)
	input.LineItems[0].Quantity = -1
	_, err := svc.CreateOrder(context.Background(), input)
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, apperror.GetAppError(err).Code)
}

func TestOrderService_GetOrder_NotFound(t *testing.T) {
	svc := service.NewOrderService(&memOrderRepo{})

	_, err := svc.GetOrder(context.Background(), uuid.New())
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, apperror.GetAppError(err).Code)
}

func TestOrderService_UpdateOrderStatus(t *testing.T) {
	repo := &memOrderRepo{}
	svc := service.NewOrderService(repo)

	order, err := svc.CreateOrder(context.Background(), createInput(1001))
	require.NoError(t, err)

	updated, err := svc.UpdateOrderStatus(context.Background(), order.ID, "refunded")
	require.NoError(t, err)
	assert.Equal(t, enum.FinancialStatusRefunded, updated.FinancialStatus)

	_, err = svc.UpdateOrderStatus(context.Background(), order.ID, "bogus")
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, apperror.GetAppError(err).Code)

	_, err = svc.UpdateOrderStatus(context.Background(), uuid.New(), "paid")
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, apperror.GetAppError(err).Code)
}

func TestOrderService_ListOrdersByStatus_Invalid(t *testing.T) {
	svc := service.NewOrderService(&memOrderRepo{})

	_, err := svc.ListOrdersByStatus(context.Background(), "open")
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, apperror.GetAppError(err).Code)
}

func TestOrderService_DeleteOrder(t *testing.T) {
	repo := &memOrderRepo{}
	svc := service.NewOrderService(repo)

	order, err := svc.CreateOrder(context.Background(), createInput(1001))
	require.NoError(t, err)

	require.NoError(t, svc.DeleteOrder(context.Background(), order.ID))
	assert.Empty(t, repo.orders)

	err = svc.DeleteOrder(context.Background(), order.ID)
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, apperror.GetAppError(err).Code)
}

func TestOrderService_ListOrders_DefaultPagination(t *testing.T) {
	repo := &memOrderRepo{orders: []entity.Order{{OrderID: 1}, {OrderID: 2}}}
	svc := service.NewOrderService(repo)

	result, err := svc.ListOrders(context.Background(), nil)
	require.NoError(t, err)
	assert.Len(t, result.Items, 2)
	assert.Equal(t, int64(2), result.Pagination.Total)
	assert.Equal(t, 1, result.Pagination.CurrentPage)
}
