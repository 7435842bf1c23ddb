package client

import (
	"context"
	"fmt"
	"net/url"
)

// Similar returns products similar to the given one.
func (c *Client) Similar(ctx context.Context, productID int64, limit int) ([]Product, error) {
	var out productList
	err := c.get(ctx, fmt.Sprintf("/api/v1/recommendations/similar/%d", productID), limitQuery(limit), &out)
	return out.Items, err
}

// RecommendByQuery returns products matching a free-text query.
func (c *Client) RecommendByQuery(ctx context.Context, query string, limit int) ([]Product, error) {
	q := limitQuery(limit)
	q.Set("q", query)
	var out productList
	err := c.get(ctx, "/api/v1/recommendations/search", q, &out)
	return out.Items, err
}

// Personalized returns products matching the stated preferences.
func (c *Client) Personalized(ctx context.Context, preferences string, limit int) ([]Product, error) {
	q := limitQuery(limit)
	if preferences != "" {
		q.Set("preferences", preferences)
	}
	var out productList
	err := c.get(ctx, "/api/v1/recommendations/personalized", q, &out)
	return out.Items, err
}

// FromHistory recommends products based on recently viewed IDs, excluding
// everything already viewed.
func (c *Client) FromHistory(ctx context.Context, viewedIDs []int64, limit int) ([]Product, error) {
	body := map[string]any{"viewed_ids": viewedIDs, "limit": limit}
	var out productList
	err := c.post(ctx, "/api/v1/recommendations/history", body, &out)
	return out.Items, err
}

// Complementary returns accessories and related items for a product.
func (c *Client) Complementary(ctx context.Context, productID int64, limit int) ([]Product, error) {
	var out productList
	err := c.get(ctx, fmt.Sprintf("/api/v1/recommendations/complementary/%d", productID), limitQuery(limit), &out)
	return out.Items, err
}

// Trending returns the currently top rated products.
func (c *Client) Trending(ctx context.Context, limit int) ([]Product, error) {
	var out productList
	err := c.get(ctx, "/api/v1/recommendations/trending", limitQuery(limit), &out)
	return out.Items, err
}

// RecommendInCategory returns products from one category ranked against the
// user context.
func (c *Client) RecommendInCategory(ctx context.Context, category, userContext string, limit int) ([]Product, error) {
	q := limitQuery(limit)
	if userContext != "" {
		q.Set("context", userContext)
	}
	var out productList
	err := c.get(ctx, "/api/v1/recommendations/category/"+url.PathEscape(category), q, &out)
	return out.Items, err
}

// Diverse returns recommendations spread across categories for the given
// interests.
func (c *Client) Diverse(ctx context.Context, interests string, limit int) ([]Product, error) {
	q := limitQuery(limit)
	q.Set("interests", interests)
	var out productList
	err := c.get(ctx, "/api/v1/recommendations/diverse", q, &out)
	return out.Items, err
}

// BudgetAlternatives returns cheaper products similar to the given one,
// most expensive first.
func (c *Client) BudgetAlternatives(ctx context.Context, productID int64, limit int) ([]Product, error) {
	var out productList
	err := c.get(ctx, fmt.Sprintf("/api/v1/recommendations/budget/%d", productID), limitQuery(limit), &out)
	return out.Items, err
}

// PremiumAlternatives returns pricier products similar to the given one,
// cheapest first.
func (c *Client) PremiumAlternatives(ctx context.Context, productID int64, limit int) ([]Product, error) {
	var out productList
	err := c.get(ctx, fmt.Sprintf("/api/v1/recommendations/premium/%d", productID), limitQuery(limit), &out)
	return out.Items, err
}
