package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Product is a catalog item. Soft-deleted products keep Active=false and stay
// addressable by ID, but are excluded from listings and search.
type Product struct {
	ID            int64
	Name          string
	Description   string
	Category      Category
	Price         decimal.Decimal
	Brand         string
	SKU           string
	Tags          []string
	Features      []string
	StockQuantity int
	Rating        decimal.Decimal
	ReviewCount   int
	ImageURL      string
	Active        bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Validate checks the invariants enforced on catalog writes.
func (p *Product) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("product name is required: %w", ErrValidation)
	}
	if strings.TrimSpace(p.Description) == "" {
		return fmt.Errorf("product description is required: %w", ErrValidation)
	}
	if !p.Category.Valid() {
		return fmt.Errorf("unknown category %q: %w", p.Category, ErrValidation)
	}
	if !p.Price.IsPositive() {
		return fmt.Errorf("price must be greater than 0: %w", ErrValidation)
	}
	if p.StockQuantity < 0 {
		return fmt.Errorf("stock quantity cannot be negative: %w", ErrValidation)
	}
	if p.Rating.IsNegative() || p.Rating.GreaterThan(decimal.NewFromInt(5)) {
		return fmt.Errorf("rating must be between 0 and 5: %w", ErrValidation)
	}
	if p.ReviewCount < 0 {
		return fmt.Errorf("review count cannot be negative: %w", ErrValidation)
	}
	return nil
}

// EmbeddingText composes the canonical text the embedding vector is computed
// over. The field order is fixed: the external embedding model sees exactly
// this composition, so changing it invalidates every previously stored vector.
func (p *Product) EmbeddingText() string {
	var sb strings.Builder
	sb.WriteString("Product: ")
	sb.WriteString(p.Name)
	sb.WriteString(". Description: ")
	sb.WriteString(p.Description)
	sb.WriteString(". Category: ")
	sb.WriteString(p.Category.DisplayName())
	sb.WriteString(". ")

	if p.Brand != "" {
		sb.WriteString("Brand: ")
		sb.WriteString(p.Brand)
		sb.WriteString(". ")
	}
	if len(p.Features) > 0 {
		sb.WriteString("Features: ")
		sb.WriteString(strings.Join(p.Features, ", "))
		sb.WriteString(". ")
	}
	if len(p.Tags) > 0 {
		sb.WriteString("Tags: ")
		sb.WriteString(strings.Join(p.Tags, ", "))
		sb.WriteString(". ")
	}

	sb.WriteString("Price: $")
	sb.WriteString(p.Price.String())
	sb.WriteString(". ")

	if p.Rating.IsPositive() {
		sb.WriteString(fmt.Sprintf("Rating: %s stars (%d reviews).", p.Rating.String(), p.ReviewCount))
	}

	return sb.String()
}
