package client

import "github.com/shopspring/decimal"

// Product is a catalog product as returned by the API.
type Product struct {
	ID            int64           `json:"id"`
	Name          string          `json:"name"`
	Description   string          `json:"description"`
	Category      string          `json:"category"`
	Price         decimal.Decimal `json:"price"`
	Brand         string          `json:"brand,omitempty"`
	SKU           string          `json:"sku"`
	Tags          []string        `json:"tags,omitempty"`
	Features      []string        `json:"features,omitempty"`
	StockQuantity int             `json:"stock_quantity"`
	Rating        decimal.Decimal `json:"rating"`
	ReviewCount   int             `json:"review_count"`
	ImageURL      string          `json:"image_url,omitempty"`
	Active        bool            `json:"active"`
	CreatedAt     string          `json:"created_at,omitempty"`
	UpdatedAt     string          `json:"updated_at,omitempty"`
}

// ProductInput is the payload for creating or updating a product.
type ProductInput struct {
	Name          string          `json:"name"`
	Description   string          `json:"description"`
	Category      string          `json:"category"`
	Price         decimal.Decimal `json:"price"`
	Brand         string          `json:"brand"`
	SKU           string          `json:"sku"`
	Tags          []string        `json:"tags"`
	Features      []string        `json:"features"`
	StockQuantity int             `json:"stock_quantity"`
	Rating        decimal.Decimal `json:"rating"`
	ReviewCount   int             `json:"review_count"`
	ImageURL      string          `json:"image_url"`
}

// Page is a paginated product listing.
type Page struct {
	Items      []Product `json:"items"`
	Page       int       `json:"page"`
	Size       int       `json:"size"`
	Total      int64     `json:"total"`
	TotalPages int64     `json:"total_pages"`
}

// WriteResult is the response to a product create or update. VectorSync
// reports whether the embedding index was updated ("ok" or "failed").
type WriteResult struct {
	Product    Product `json:"product"`
	VectorSync string  `json:"vector_sync"`
}

// Health is the service health report.
type Health struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks,omitempty"`
}

type productList struct {
	Items []Product `json:"items"`
	Total int       `json:"total"`
}

type answerPayload struct {
	Answer string `json:"answer"`
}
