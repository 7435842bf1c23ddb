package recommend

import (
	"context"

	"github.com/gemacjr/product-recommender-engine/internal/domain"
)

// Searcher answers similarity queries against the embedding index.
type Searcher interface {
	SemanticSearch(ctx context.Context, query string, topK int) ([]domain.Hit, error)
	FindSimilar(ctx context.Context, p *domain.Product, topK int) ([]domain.Hit, error)
}

// Catalog resolves product records for reference lookups and the
// rating-ordered trending stand-in.
type Catalog interface {
	GetByID(ctx context.Context, id int64) (domain.Product, error)
	TopRated(ctx context.Context, limit int) ([]domain.Product, error)
}
