package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/workmate/commerce-api/internal/application/service"
	"github.com/workmate/commerce-api/internal/domain/enum"
	"github.com/workmate/commerce-api/internal/domain/repository"
	"github.com/workmate/commerce-api/internal/presentation/http/dto/request"
	"github.com/workmate/commerce-api/internal/presentation/http/dto/response"
	"github.com/workmate/commerce-api/pkg/apperror"
	"github.com/workmate/commerce-api/pkg/pagination"
)

// OrderHandler handles order-related HTTP requests
type OrderHandler struct {
	orderService *service.OrderService
	syncService  *service.SyncService
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(orderService *service.OrderService, syncService *service.SyncService) *OrderHandler {
	return &OrderHandler{orderService: orderService, syncService: syncService}
}

// Create handles creating an order
func (h *OrderHandler) Create(c *gin.Context) {
	var req request.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	input := &service.CreateOrderInput{
		OrderID:         req.OrderID,
		OrderNumber:     req.OrderNumber,
		Name:            req.Name,
		ProcessedAt:     req.ProcessedAt,
		FinancialStatus: req.FinancialStatus,
		Currency:        req.Currency,
		SubtotalPrice:   req.SubtotalPrice,
		TotalPrice:      req.TotalPrice,
		TotalTax:        req.TotalTax,
		TotalDiscounts:  req.TotalDiscounts,
		Customer:        req.Customer,
		BillingAddress:  req.BillingAddress,
		ShippingAddress: req.ShippingAddress,
		Tags:            req.Tags,
		SourceName:      req.SourceName,
		Email:           req.Email,
	}
	if req.CreatedAt != nil {
		input.CreatedAt = *req.CreatedAt
	}
	for _, li := range req.LineItems {
		input.LineItems = append(input.LineItems, service.CreateLineItemInput{
			ProductID:        li.ProductID,
			VariantID:        li.VariantID,
			Quantity:         li.Quantity,
			TotalDiscount:    li.TotalDiscount,
			RequiresShipping: li.RequiresShipping,
		})
	}

	order, err := h.orderService.CreateOrder(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "Order created successfully", order)
}

// ImportFromShopify handles pulling orders from the platform into storage
func (h *OrderHandler) ImportFromShopify(c *gin.Context) {
	var req request.ImportOrdersRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "Invalid query parameters: "+err.Error())
		return
	}
	if req.Limit == 0 {
		req.Limit = 50
	}

	result, err := h.syncService.ImportOrders(c.Request.Context(), req.Limit, req.Status)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Orders imported successfully", result)
}

// List handles listing orders with optional filters
func (h *OrderHandler) List(c *gin.Context) {
	var req request.OrderFilterRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "Invalid query parameters: "+err.Error())
		return
	}

	params := &repository.OrderFilterParams{
		Pagination: &pagination.PaginationParams{Page: req.Page, PerPage: req.PerPage},
	}
	if req.Status != "" {
		status, err := enum.ParseFinancialStatus(req.Status)
		if err != nil {
			response.BadRequest(c, "Invalid financial status: "+req.Status)
			return
		}
		params.Status = &status
	}
	if req.CustomerID != 0 {
		params.CustomerID = &req.CustomerID
	}

	result, err := h.orderService.ListOrders(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.SuccessWithPagination(c, 200, "Orders retrieved successfully", result)
}

// Get handles retrieving an order by internal id
func (h *OrderHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid order ID")
		return
	}

	order, err := h.orderService.GetOrder(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Order retrieved successfully", order)
}

// GetByPlatformID handles retrieving an order by its platform order id
func (h *OrderHandler) GetByPlatformID(c *gin.Context) {
	orderID, err := strconv.ParseInt(c.Param("order_id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "Invalid order ID")
		return
	}

	order, err := h.orderService.GetOrderByPlatformID(c.Request.Context(), orderID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Order retrieved successfully", order)
}

// ListByCustomer handles listing all orders for a customer
func (h *OrderHandler) ListByCustomer(c *gin.Context) {
	customerID, err := strconv.ParseInt(c.Param("customer_id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "Invalid customer ID")
		return
	}

	orders, err := h.orderService.ListOrdersByCustomer(c.Request.Context(), customerID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Orders retrieved successfully", orders)
}

// ListByStatus handles listing all orders with a financial status
func (h *OrderHandler) ListByStatus(c *gin.Context) {
	orders, err := h.orderService.ListOrdersByStatus(c.Request.Context(), c.Param("status"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Orders retrieved successfully", orders)
}

// UpdateStatus handles updating an order's financial status
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid order ID")
		return
	}

	var req request.UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	order, err := h.orderService.UpdateOrderStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Order status updated successfully", order)
}

// Update handles PUT /orders/:id. Full order updates are not supported;
// only the status transition endpoint mutates stored orders.
func (h *OrderHandler) Update(c *gin.Context) {
	response.Error(c, apperror.ErrNotImplemented)
}

// Delete handles deleting an order
func (h *OrderHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid order ID")
		return
	}

	if err := h.orderService.DeleteOrder(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
