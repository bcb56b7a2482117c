// Package shopify is a minimal Shopify Admin REST client covering the
// order and product listing calls used by the import services.
package shopify

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

const defaultAPIVersion = "2023-10"

// Config holds the store credentials and API version for a client
type Config struct {
	StoreName   string
	AccessToken string
	APIVersion  string
	Timeout     time.Duration
}

// Client calls the Shopify Admin REST API for a single store
type Client struct {
	baseURL     string
	accessToken string
	httpClient  *http.Client
}

// NewClient creates a Shopify client from the given config. The HTTP
// client may be nil, in which case one with the configured timeout is used.
func NewClient(cfg Config, httpClient *http.Client) *Client {
	version := cfg.APIVersion
	if version == "" {
		version = defaultAPIVersion
	}
	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout == 0 {
			timeout = 30 * time.Second
		}
		httpClient = &http.Client{Timeout: timeout}
	}
	return &Client{
		baseURL:     fmt.Sprintf("https://%s/admin/api/%s", cfg.StoreName, version),
		accessToken: cfg.AccessToken,
		httpClient:  httpClient,
	}
}

// Order is the subset of Shopify's order payload the importer maps.
// Monetary amounts arrive as decimal strings; tags as a comma string.
type Order struct {
	ID                int64      `json:"id"`
	OrderNumber       int        `json:"order_number"`
	Name              string     `json:"name"`
	CreatedAt         time.Time  `json:"created_at"`
	ProcessedAt       *time.Time `json:"processed_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
	FinancialStatus   string     `json:"financial_status"`
	FulfillmentStatus *string    `json:"fulfillment_status"`
	Currency          string     `json:"currency"`
	SubtotalPrice     string     `json:"subtotal_price"`
	TotalPrice        string     `json:"total_price"`
	TotalTax          string     `json:"total_tax"`
	TotalDiscounts    string     `json:"total_discounts"`
	LineItems         []LineItem `json:"line_items"`
	Customer          *Customer  `json:"customer"`
	BillingAddress    *Address   `json:"billing_address"`
	ShippingAddress   *Address   `json:"shipping_address"`
	Tags              string     `json:"tags"`
	SourceName        *string    `json:"source_name"`
	Email             *string    `json:"email"`
}

// LineItem is one product entry within a Shopify order
type LineItem struct {
	ProductID        int64  `json:"product_id"`
	VariantID        int64  `json:"variant_id"`
	Quantity         int    `json:"quantity"`
	TotalDiscount    string `json:"total_discount"`
	RequiresShipping bool   `json:"requires_shipping"`
}

// Customer is the customer snapshot attached to a Shopify order
type Customer struct {
	ID            int64      `json:"id"`
	FirstName     string     `json:"first_name"`
	LastName      string     `json:"last_name"`
	Email         string     `json:"email"`
	Phone         *string    `json:"phone"`
	Tags          string     `json:"tags"`
	CreatedAt     *time.Time `json:"created_at"`
	VerifiedEmail bool       `json:"verified_email"`
}

// Address is a Shopify billing or shipping address
type Address struct {
	FirstName   string   `json:"first_name"`
	LastName    string   `json:"last_name"`
	Address1    string   `json:"address1"`
	Address2    *string  `json:"address2"`
	City        string   `json:"city"`
	Zip         string   `json:"zip"`
	Province    *string  `json:"province"`
	Country     string   `json:"country"`
	CountryCode string   `json:"country_code"`
	Phone       *string  `json:"phone"`
	Latitude    *float64 `json:"latitude"`
	Longitude   *float64 `json:"longitude"`
}

// Product is the subset of Shopify's product payload the importer maps
type Product struct {
	ID       int64     `json:"id"`
	Title    string    `json:"title"`
	Vendor   string    `json:"vendor"`
	Tags     string    `json:"tags"`
	Variants []Variant `json:"variants"`
	Images   []Image   `json:"images"`
}

// Variant is one purchasable variant of a Shopify product
type Variant struct {
	ID                int64  `json:"id"`
	SKU               string `json:"sku"`
	Price             string `json:"price"`
	InventoryQuantity int    `json:"inventory_quantity"`
}

// Image is one image attached to a Shopify product
type Image struct {
	Src string `json:"src"`
	Alt string `json:"alt"`
}

type ordersResponse struct {
	Orders []Order `json:"orders"`
}

type productsResponse struct {
	Products []Product `json:"products"`
}

// ListOrders fetches up to limit orders, optionally filtered by Shopify
// order status (open, closed, cancelled, any).
func (c *Client) ListOrders(ctx context.Context, limit int, status string) ([]Order, error) {
	params := url.Values{}
	if limit > 0 {
		params.Set("limit", strconv.Itoa(limit))
	}
	if status != "" {
		params.Set("status", status)
	}

	var out ordersResponse
	if err := c.get(ctx, "/orders.json", params, &out); err != nil {
		return nil, err
	}
	return out.Orders, nil
}

// ListProducts fetches the store's products
func (c *Client) ListProducts(ctx context.Context) ([]Product, error) {
	var out productsResponse
	if err := c.get(ctx, "/products.json", nil, &out); err != nil {
		return nil, err
	}
	return out.Products, nil
}

func (c *Client) get(ctx context.Context, path string, params url.Values, out interface{}) error {
	endpoint := c.baseURL + path
	if len(params) > 0 {
		endpoint += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}
	req.Header.Set("X-Shopify-Access-Token", c.accessToken)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("shopify request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("shopify returned %d: %s", resp.StatusCode, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding shopify response: %w", err)
	}
	return nil
}
