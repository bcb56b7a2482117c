package service_test

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/workmate/commerce-api/internal/domain/entity"
	"github.com/workmate/commerce-api/internal/domain/enum"
	"github.com/workmate/commerce-api/internal/domain/repository"
	"github.com/workmate/commerce-api/pkg/pagination"
	"github.com/workmate/commerce-api/pkg/shopify"
)

// memOrderRepo is an in-memory OrderRepository for service tests
type memOrderRepo struct {
	orders []entity.Order
	err    error
}

func (r *memOrderRepo) Create(ctx context.Context, order *entity.Order) error {
	if r.err != nil {
		return r.err
	}
	if order.ID == uuid.Nil {
		order.ID = uuid.New()
	}
	r.orders = append(r.orders, *order)
	return nil
}

func (r *memOrderRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	if r.err != nil {
		return nil, r.err
	}
	for i := range r.orders {
		if r.orders[i].ID == id {
			o := r.orders[i]
			return &o, nil
		}
	}
	return nil, nil
}

func (r *memOrderRepo) GetByOrderID(ctx context.Context, orderID int64) (*entity.Order, error) {
	if r.err != nil {
		return nil, r.err
	}
	for i := range r.orders {
		if r.orders[i].OrderID == orderID {
			o := r.orders[i]
			return &o, nil
		}
	}
	return nil, nil
}

func (r *memOrderRepo) List(ctx context.Context, params *repository.OrderFilterParams) ([]entity.Order, int64, error) {
	if r.err != nil {
		return nil, 0, r.err
	}
	return r.orders, int64(len(r.orders)), nil
}

func (r *memOrderRepo) ListByCustomer(ctx context.Context, customerID int64) ([]entity.Order, error) {
	var out []entity.Order
	for _, o := range r.orders {
		if o.Customer.CustomerID == customerID {
			out = append(out, o)
		}
	}
	return out, nil
}

func (r *memOrderRepo) ListByStatus(ctx context.Context, status enum.FinancialStatus) ([]entity.Order, error) {
	var out []entity.Order
	for _, o := range r.orders {
		if o.FinancialStatus == status {
			out = append(out, o)
		}
	}
	return out, nil
}

func (r *memOrderRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status enum.FinancialStatus) (*entity.Order, error) {
	for i := range r.orders {
		if r.orders[i].ID == id {
			r.orders[i].FinancialStatus = status
			o := r.orders[i]
			return &o, nil
		}
	}
	return nil, nil
}

func (r *memOrderRepo) Delete(ctx context.Context, id uuid.UUID) error {
	for i := range r.orders {
		if r.orders[i].ID == id {
			r.orders = append(r.orders[:i], r.orders[i+1:]...)
			return nil
		}
	}
	return errors.New("not found")
}

func (r *memOrderRepo) ScanAll(ctx context.Context) ([]entity.Order, error) {
	return r.orders, r.err
}

func (r *memOrderRepo) ScanYear(ctx context.Context, year int) ([]entity.Order, error) {
	var out []entity.Order
	for _, o := range r.orders {
		if o.CreatedAt.Year() == year {
			out = append(out, o)
		}
	}
	return out, r.err
}

// memProductRepo is an in-memory ProductRepository for service tests
type memProductRepo struct {
	products []entity.Product
	err      error
}

func (r *memProductRepo) Create(ctx context.Context, product *entity.Product) error {
	if r.err != nil {
		return r.err
	}
	if product.ID == uuid.Nil {
		product.ID = uuid.New()
	}
	r.products = append(r.products, *product)
	return nil
}

func (r *memProductRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	for i := range r.products {
		if r.products[i].ID == id {
			p := r.products[i]
			return &p, nil
		}
	}
	return nil, nil
}

func (r *memProductRepo) GetByProductID(ctx context.Context, productID int64) (*entity.Product, error) {
	if r.err != nil {
		return nil, r.err
	}
	for i := range r.products {
		if r.products[i].ProductID == productID {
			p := r.products[i]
			return &p, nil
		}
	}
	return nil, nil
}

func (r *memProductRepo) List(ctx context.Context, params *pagination.PaginationParams) ([]entity.Product, int64, error) {
	return r.products, int64(len(r.products)), r.err
}

func (r *memProductRepo) Update(ctx context.Context, product *entity.Product) error {
	for i := range r.products {
		if r.products[i].ID == product.ID {
			r.products[i] = *product
			return nil
		}
	}
	return errors.New("not found")
}

func (r *memProductRepo) Delete(ctx context.Context, id uuid.UUID) error {
	for i := range r.products {
		if r.products[i].ID == id {
			r.products = append(r.products[:i], r.products[i+1:]...)
			return nil
		}
	}
	return errors.New("not found")
}

// stubGateway is a canned ShopifyGateway for sync tests
type stubGateway struct {
	orders   []shopify.Order
	products []shopify.Product
	err      error
}

func (g *stubGateway) ListOrders(ctx context.Context, limit int, status string) ([]shopify.Order, error) {
	if g.err != nil {
		return nil, g.err
	}
	if limit > 0 && limit < len(g.orders) {
		return g.orders[:limit], nil
	}
	return g.orders, nil
}

func (g *stubGateway) ListProducts(ctx context.Context) ([]shopify.Product, error) {
	if g.err != nil {
		return nil, g.err
	}
	return g.products, nil
}
