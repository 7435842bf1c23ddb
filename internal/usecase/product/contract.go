package product

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/gemacjr/product-recommender-engine/internal/domain"
)

// Catalog is the durable product store.
type Catalog interface {
	GetByID(ctx context.Context, id int64) (domain.Product, error)
	List(ctx context.Context, page, size int) (domain.Page, error)
	ListByCategory(ctx context.Context, cat domain.Category) ([]domain.Product, error)
	SearchByKeyword(ctx context.Context, keyword string) ([]domain.Product, error)
	ListByPriceRange(ctx context.Context, min, max decimal.Decimal) ([]domain.Product, error)
	TopRated(ctx context.Context, limit int) ([]domain.Product, error)
	ListAllActive(ctx context.Context) ([]domain.Product, error)
	Insert(ctx context.Context, p *domain.Product) error
	Update(ctx context.Context, p *domain.Product) error
	SoftDelete(ctx context.Context, id int64) error
	CountByCategory(ctx context.Context) (map[domain.Category]int64, error)
	DistinctBrands(ctx context.Context) ([]string, error)
	DistinctTags(ctx context.Context) ([]string, error)
}

// VectorSync mirrors catalog writes into the embedding index.
type VectorSync interface {
	AddProduct(ctx context.Context, p *domain.Product) error
	AddProducts(ctx context.Context, products []*domain.Product) error
	UpdateProduct(ctx context.Context, p *domain.Product) error
	RemoveProduct(ctx context.Context, productID int64) error
}

// Generator produces free text from a system and user prompt.
type Generator interface {
	Generate(ctx context.Context, system, user string) (string, error)
}
