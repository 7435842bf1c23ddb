// Package product implements catalog operations. Every write mirrors into
// the embedding index as a best-effort side effect that never fails or rolls
// back the durable write.
package product

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/gemacjr/product-recommender-engine/internal/domain"
	"github.com/shopspring/decimal"
)

// Settings carries page sizing, injected at construction.
type Settings struct {
	DefaultPageSize int
	MaxPageSize     int
}

// Service manages the product catalog and its vector mirror.
type Service struct {
	catalog  Catalog
	sync     VectorSync
	gen      Generator
	settings Settings
	log      *zap.Logger
}

// New creates the service.
func New(catalog Catalog, sync VectorSync, gen Generator, settings Settings, log *zap.Logger) *Service {
	return &Service{catalog: catalog, sync: sync, gen: gen, settings: settings, log: log}
}

// clampPageSize applies the default for non-positive sizes and the
// server-side maximum for oversized ones. Callers must not assume their
// requested size is honored verbatim.
func (s *Service) clampPageSize(size int) int {
	if size <= 0 {
		return s.settings.DefaultPageSize
	}
	if size > s.settings.MaxPageSize {
		return s.settings.MaxPageSize
	}
	return size
}

// Get returns a product by ID, including soft-deleted ones.
func (s *Service) Get(ctx context.Context, id int64) (domain.Product, error) {
	return s.catalog.GetByID(ctx, id)
}

// List returns a page of active products.
func (s *Service) List(ctx context.Context, page, size int) (domain.Page, error) {
	if page < 0 {
		page = 0
	}
	return s.catalog.List(ctx, page, s.clampPageSize(size))
}

// ListByCategory returns active products in a category.
func (s *Service) ListByCategory(ctx context.Context, cat domain.Category) ([]domain.Product, error) {
	if !cat.Valid() {
		return nil, fmt.Errorf("unknown category %q: %w", cat, domain.ErrValidation)
	}
	return s.catalog.ListByCategory(ctx, cat)
}

// Search matches a keyword against product names and descriptions.
func (s *Service) Search(ctx context.Context, keyword string) ([]domain.Product, error) {
	if strings.TrimSpace(keyword) == "" {
		return nil, fmt.Errorf("keyword must not be blank: %w", domain.ErrValidation)
	}
	return s.catalog.SearchByKeyword(ctx, keyword)
}

// ListByPriceRange returns active products within [min, max].
func (s *Service) ListByPriceRange(ctx context.Context, min, max decimal.Decimal) ([]domain.Product, error) {
	if min.IsNegative() || max.LessThan(min) {
		return nil, fmt.Errorf("invalid price range [%s, %s]: %w", min, max, domain.ErrValidation)
	}
	return s.catalog.ListByPriceRange(ctx, min, max)
}

// TopRated returns the highest-rated active products.
func (s *Service) TopRated(ctx context.Context, limit int) ([]domain.Product, error) {
	return s.catalog.TopRated(ctx, s.clampPageSize(limit))
}

// Create validates and persists a new product, then mirrors it into the
// embedding index. The sync outcome is advisory: a failed sync leaves the
// index eventually consistent and is surfaced for logging, never as an error.
func (s *Service) Create(ctx context.Context, p *domain.Product) (domain.Product, domain.SyncOutcome, error) {
	p.Active = true
	if err := p.Validate(); err != nil {
		return domain.Product{}, domain.SyncOutcome{}, err
	}

	if err := s.catalog.Insert(ctx, p); err != nil {
		return domain.Product{}, domain.SyncOutcome{}, fmt.Errorf("insert product: %w", err)
	}

	outcome := s.trySync(ctx, "add", p.ID, func() error {
		return s.sync.AddProduct(ctx, p)
	})
	return *p, outcome, nil
}

// Update rewrites a product's mutable fields and refreshes its vector.
func (s *Service) Update(ctx context.Context, id int64, fields domain.Product) (domain.Product, domain.SyncOutcome, error) {
	existing, err := s.catalog.GetByID(ctx, id)
	if err != nil {
		return domain.Product{}, domain.SyncOutcome{}, err
	}

	existing.Name = fields.Name
	existing.Description = fields.Description
	existing.Category = fields.Category
	existing.Price = fields.Price
	existing.Brand = fields.Brand
	existing.SKU = fields.SKU
	existing.Tags = fields.Tags
	existing.Features = fields.Features
	existing.StockQuantity = fields.StockQuantity
	existing.Rating = fields.Rating
	existing.ReviewCount = fields.ReviewCount
	existing.ImageURL = fields.ImageURL

	if err := existing.Validate(); err != nil {
		return domain.Product{}, domain.SyncOutcome{}, err
	}
	if err := s.catalog.Update(ctx, &existing); err != nil {
		return domain.Product{}, domain.SyncOutcome{}, fmt.Errorf("update product: %w", err)
	}

	outcome := s.trySync(ctx, "update", id, func() error {
		return s.sync.UpdateProduct(ctx, &existing)
	})
	return existing, outcome, nil
}

// Delete soft-deletes a product and drops its vector.
func (s *Service) Delete(ctx context.Context, id int64) (domain.SyncOutcome, error) {
	if err := s.catalog.SoftDelete(ctx, id); err != nil {
		return domain.SyncOutcome{}, err
	}

	outcome := s.trySync(ctx, "remove", id, func() error {
		return s.sync.RemoveProduct(ctx, id)
	})
	return outcome, nil
}

// trySync runs an advisory index write and folds any failure into an
// outcome value instead of an error. The durable write has already happened
// by the time this runs.
func (s *Service) trySync(ctx context.Context, op string, id int64, fn func() error) domain.SyncOutcome {
	if err := fn(); err != nil {
		s.log.Error("vector sync failed",
			zap.String("op", op), zap.Int64("product_id", id), zap.Error(err))
		return domain.SyncFailed(err)
	}
	return domain.SyncOK()
}

// Reindex re-embeds the entire active catalog into the index. This is the
// recovery path for sync failures accumulated from earlier writes.
func (s *Service) Reindex(ctx context.Context) (int, error) {
	products, err := s.catalog.ListAllActive(ctx)
	if err != nil {
		return 0, fmt.Errorf("list active products: %w", err)
	}

	refs := make([]*domain.Product, len(products))
	for i := range products {
		refs[i] = &products[i]
	}
	if err := s.sync.AddProducts(ctx, refs); err != nil {
		return 0, fmt.Errorf("reindex products: %w", err)
	}

	s.log.Info("reindexed catalog", zap.Int("count", len(products)))
	return len(products), nil
}

const descriptionTemplate = `You are a helpful product marketing assistant. Generate a personalized product description
based on the following product information and user preferences.

Product Information:
Name: %s
Category: %s
Original Description: %s
Features: %s
Price: $%s
Rating: %s stars

User Preferences: %s

Create a compelling, personalized product description that highlights aspects most relevant
to the user's preferences. Keep it concise (2-3 sentences) and engaging.`

// PersonalizedDescription rewrites a product's description for the given
// preferences. Blank preferences default to a generic quality framing.
func (s *Service) PersonalizedDescription(ctx context.Context, id int64, preferences string) (string, error) {
	p, err := s.catalog.GetByID(ctx, id)
	if err != nil {
		return "", err
	}

	if strings.TrimSpace(preferences) == "" {
		preferences = "general quality and value"
	}

	prompt := fmt.Sprintf(descriptionTemplate,
		p.Name, p.Category.DisplayName(), p.Description,
		strings.Join(p.Features, ", "), p.Price.String(), p.Rating.String(),
		preferences,
	)

	description, err := s.gen.Generate(ctx, "", prompt)
	if err != nil {
		return "", fmt.Errorf("generate description: %w", err)
	}
	return description, nil
}

// Brands lists the distinct brands in the active catalog.
func (s *Service) Brands(ctx context.Context) ([]string, error) {
	return s.catalog.DistinctBrands(ctx)
}

// Tags lists the distinct tags in the active catalog.
func (s *Service) Tags(ctx context.Context) ([]string, error) {
	return s.catalog.DistinctTags(ctx)
}

// CountByCategory returns active product counts per category.
func (s *Service) CountByCategory(ctx context.Context) (map[domain.Category]int64, error) {
	return s.catalog.CountByCategory(ctx)
}
