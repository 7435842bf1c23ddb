package client

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/shopspring/decimal"
)

// Products returns a page of the active catalog. Zero page or size values
// use the server defaults.
func (c *Client) Products(ctx context.Context, page, size int) (Page, error) {
	q := url.Values{}
	if page > 0 {
		q.Set("page", strconv.Itoa(page))
	}
	if size > 0 {
		q.Set("size", strconv.Itoa(size))
	}
	var out Page
	err := c.get(ctx, "/api/v1/products", q, &out)
	return out, err
}

// Product fetches a single product by ID.
func (c *Client) Product(ctx context.Context, id int64) (Product, error) {
	var out Product
	err := c.get(ctx, fmt.Sprintf("/api/v1/products/%d", id), nil, &out)
	return out, err
}

// CreateProduct adds a product to the catalog and syncs it into the
// embedding index.
func (c *Client) CreateProduct(ctx context.Context, in ProductInput) (WriteResult, error) {
	var out WriteResult
	err := c.post(ctx, "/api/v1/products", in, &out)
	return out, err
}

// UpdateProduct replaces the mutable fields of an existing product.
func (c *Client) UpdateProduct(ctx context.Context, id int64, in ProductInput) (WriteResult, error) {
	var out WriteResult
	err := c.do(ctx, "PUT", fmt.Sprintf("/api/v1/products/%d", id), nil, in, &out)
	return out, err
}

// DeleteProduct deactivates a product and removes it from the index.
func (c *Client) DeleteProduct(ctx context.Context, id int64) error {
	return c.do(ctx, "DELETE", fmt.Sprintf("/api/v1/products/%d", id), nil, nil, nil)
}

// SearchProducts does a keyword search over names and descriptions.
func (c *Client) SearchProducts(ctx context.Context, keyword string) ([]Product, error) {
	q := url.Values{"keyword": []string{keyword}}
	var out productList
	err := c.get(ctx, "/api/v1/products/search", q, &out)
	return out.Items, err
}

// ProductsByCategory returns a page of products in one category.
func (c *Client) ProductsByCategory(ctx context.Context, category string, page, size int) (Page, error) {
	q := url.Values{}
	if page > 0 {
		q.Set("page", strconv.Itoa(page))
	}
	if size > 0 {
		q.Set("size", strconv.Itoa(size))
	}
	var out Page
	err := c.get(ctx, "/api/v1/products/category/"+url.PathEscape(category), q, &out)
	return out, err
}

// ProductsByPriceRange returns active products priced within [min, max].
func (c *Client) ProductsByPriceRange(ctx context.Context, min, max decimal.Decimal) ([]Product, error) {
	q := url.Values{
		"min": []string{min.String()},
		"max": []string{max.String()},
	}
	var out productList
	err := c.get(ctx, "/api/v1/products/price-range", q, &out)
	return out.Items, err
}

// TopRated returns the highest rated active products.
func (c *Client) TopRated(ctx context.Context, limit int) ([]Product, error) {
	var out productList
	err := c.get(ctx, "/api/v1/products/top-rated", limitQuery(limit), &out)
	return out.Items, err
}

// Brands lists the distinct brands in the catalog.
func (c *Client) Brands(ctx context.Context) ([]string, error) {
	var out struct {
		Brands []string `json:"brands"`
	}
	err := c.get(ctx, "/api/v1/products/brands", nil, &out)
	return out.Brands, err
}

// Tags lists the distinct tags in the catalog.
func (c *Client) Tags(ctx context.Context) ([]string, error) {
	var out struct {
		Tags []string `json:"tags"`
	}
	err := c.get(ctx, "/api/v1/products/tags", nil, &out)
	return out.Tags, err
}

// CategoryCounts returns the number of active products per category.
func (c *Client) CategoryCounts(ctx context.Context) (map[string]int64, error) {
	var out struct {
		Counts map[string]int64 `json:"counts"`
	}
	err := c.get(ctx, "/api/v1/products/category-counts", nil, &out)
	return out.Counts, err
}

// Reindex re-embeds the whole active catalog into the vector index and
// returns the number of products synced.
func (c *Client) Reindex(ctx context.Context) (int, error) {
	var out struct {
		Reindexed int `json:"reindexed"`
	}
	err := c.post(ctx, "/api/v1/products/reindex", nil, &out)
	return out.Reindexed, err
}

// PersonalizedDescription generates a marketing description of a product
// tailored to the given preferences.
func (c *Client) PersonalizedDescription(ctx context.Context, id int64, preferences string) (string, error) {
	body := map[string]string{"preferences": preferences}
	var out struct {
		Description string `json:"description"`
	}
	err := c.post(ctx, fmt.Sprintf("/api/v1/products/%d/personalized-description", id), body, &out)
	return out.Description, err
}

func limitQuery(limit int) url.Values {
	q := url.Values{}
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}
	return q
}
