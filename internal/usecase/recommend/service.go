// Package recommend implements the ranking and filtering engine. Every
// operation composes embedding-index similarity search with deterministic
// post-filtering rules and owns no persistent state of its own.
package recommend

import (
	"context"
	"fmt"
	"sort"

	"go.uber.org/zap"

	"github.com/gemacjr/product-recommender-engine/internal/domain"
)

const (
	// historySeedMax bounds how many viewed items seed the history lookup.
	historySeedMax = 5
	// historyPerSeedLimit is the similar-item fetch size per seed.
	historyPerSeedLimit = 5
	// diverseOverfetch widens the candidate pool before diversification.
	diverseOverfetch = 3
	// alternativesHeadroom widens the similar set before price filtering.
	alternativesHeadroom = 2
)

// Settings carries the engine's configuration, injected once at construction
// instead of being read from ambient state.
type Settings struct {
	// MaxResults is the server-side ceiling on any requested limit.
	MaxResults int
}

// Service is the recommendation engine.
type Service struct {
	searcher Searcher
	catalog  Catalog
	settings Settings
	log      *zap.Logger
}

// New creates the engine.
func New(searcher Searcher, catalog Catalog, settings Settings, log *zap.Logger) *Service {
	return &Service{searcher: searcher, catalog: catalog, settings: settings, log: log}
}

// effectiveLimit validates and clamps the requested result count.
func (s *Service) effectiveLimit(requested int) (int, error) {
	if requested <= 0 {
		return 0, fmt.Errorf("limit must be positive, got %d: %w", requested, domain.ErrValidation)
	}
	if requested > s.settings.MaxResults {
		return s.settings.MaxResults, nil
	}
	return requested, nil
}

func productsFromHits(hits []domain.Hit) []domain.Product {
	products := make([]domain.Product, 0, len(hits))
	for _, h := range hits {
		products = append(products, h.Product)
	}
	return products
}

// Similar returns products most similar to the reference product, never
// including the reference itself. An unknown reference ID is fatal.
func (s *Service) Similar(ctx context.Context, productID int64, limit int) ([]domain.Product, error) {
	limit, err := s.effectiveLimit(limit)
	if err != nil {
		return nil, err
	}

	ref, err := s.catalog.GetByID(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("resolve reference product: %w", err)
	}

	hits, err := s.searcher.FindSimilar(ctx, &ref, limit)
	if err != nil {
		return nil, fmt.Errorf("find similar: %w", err)
	}
	return productsFromHits(hits), nil
}

// ByQuery runs a raw semantic search. The similarity threshold applied by the
// index is the only filter.
func (s *Service) ByQuery(ctx context.Context, query string, limit int) ([]domain.Product, error) {
	limit, err := s.effectiveLimit(limit)
	if err != nil {
		return nil, err
	}

	hits, err := s.searcher.SemanticSearch(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("semantic search: %w", err)
	}
	return productsFromHits(hits), nil
}

// Personalized enriches the raw preference string into a retrieval query and
// searches with it. Blank preferences fall back to a generic quality query.
func (s *Service) Personalized(ctx context.Context, preferences string, limit int) ([]domain.Product, error) {
	return s.ByQuery(ctx, enrichPreferences(preferences), limit)
}

// FromHistory recommends products similar to recently viewed ones, never
// repeating anything already viewed. Seeds that fail to resolve are skipped
// so partial history still yields results. A nil or empty history
// short-circuits to an empty result without touching the index.
func (s *Service) FromHistory(ctx context.Context, viewedIDs []int64, limit int) ([]domain.Product, error) {
	limit, err := s.effectiveLimit(limit)
	if err != nil {
		return nil, err
	}
	if len(viewedIDs) == 0 {
		return nil, nil
	}

	viewed := make(map[int64]struct{}, len(viewedIDs))
	for _, id := range viewedIDs {
		viewed[id] = struct{}{}
	}

	seeds := viewedIDs
	if len(seeds) > historySeedMax {
		seeds = seeds[:historySeedMax]
	}

	var accumulated []domain.Product
	seen := make(map[int64]struct{})
	for _, seedID := range seeds {
		ref, err := s.catalog.GetByID(ctx, seedID)
		if err != nil {
			s.log.Warn("skipping history seed",
				zap.Int64("product_id", seedID), zap.Error(err))
			continue
		}

		hits, err := s.searcher.FindSimilar(ctx, &ref, historyPerSeedLimit)
		if err != nil {
			s.log.Warn("skipping history seed",
				zap.Int64("product_id", seedID), zap.Error(err))
			continue
		}

		for _, h := range hits {
			if _, dup := seen[h.Product.ID]; dup {
				continue
			}
			seen[h.Product.ID] = struct{}{}
			accumulated = append(accumulated, h.Product)
		}
		if len(accumulated) >= limit {
			break
		}
	}

	filtered := accumulated[:0]
	for _, p := range accumulated {
		if _, wasViewed := viewed[p.ID]; wasViewed {
			continue
		}
		filtered = append(filtered, p)
	}
	if len(filtered) > limit {
		filtered = filtered[:limit]
	}
	return filtered, nil
}

// Complementary returns products that go together with the reference product
// (accessories, related items), never the reference itself.
func (s *Service) Complementary(ctx context.Context, productID int64, limit int) ([]domain.Product, error) {
	limit, err := s.effectiveLimit(limit)
	if err != nil {
		return nil, err
	}

	ref, err := s.catalog.GetByID(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("resolve reference product: %w", err)
	}

	hits, err := s.searcher.SemanticSearch(ctx, complementaryQuery(&ref), limit+1)
	if err != nil {
		return nil, fmt.Errorf("semantic search: %w", err)
	}

	products := make([]domain.Product, 0, len(hits))
	for _, h := range hits {
		if h.Product.ID == productID {
			continue
		}
		products = append(products, h.Product)
	}
	if len(products) > limit {
		products = products[:limit]
	}
	return products, nil
}

// Trending lists the top-rated active products. This is a catalog ordering,
// not an index operation, standing in for an analytics-driven signal.
func (s *Service) Trending(ctx context.Context, limit int) ([]domain.Product, error) {
	limit, err := s.effectiveLimit(limit)
	if err != nil {
		return nil, err
	}

	products, err := s.catalog.TopRated(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("list top rated: %w", err)
	}
	return products, nil
}

// ForCategory searches within a category using the caller's free-text
// context.
func (s *Service) ForCategory(ctx context.Context, cat domain.Category, userContext string, limit int) ([]domain.Product, error) {
	if !cat.Valid() {
		return nil, fmt.Errorf("unknown category %q: %w", cat, domain.ErrValidation)
	}
	return s.ByQuery(ctx, categoryContextQuery(cat, userContext), limit)
}

// Diverse returns products matching the interests string spread across as
// many categories as the candidate pool supports, instead of letting the
// closest category dominate.
func (s *Service) Diverse(ctx context.Context, interests string, limit int) ([]domain.Product, error) {
	limit, err := s.effectiveLimit(limit)
	if err != nil {
		return nil, err
	}

	hits, err := s.searcher.SemanticSearch(ctx, interests, limit*diverseOverfetch)
	if err != nil {
		return nil, fmt.Errorf("semantic search: %w", err)
	}
	return diversify(productsFromHits(hits), limit), nil
}

// BudgetAlternatives returns similar products strictly cheaper than the
// reference, closest to the reference price first. Empty output means no
// cheaper alternative exists.
func (s *Service) BudgetAlternatives(ctx context.Context, productID int64, limit int) ([]domain.Product, error) {
	return s.priceAlternatives(ctx, productID, limit, false)
}

// PremiumAlternatives returns similar products strictly costlier than the
// reference, closest to the reference price first.
func (s *Service) PremiumAlternatives(ctx context.Context, productID int64, limit int) ([]domain.Product, error) {
	return s.priceAlternatives(ctx, productID, limit, true)
}

func (s *Service) priceAlternatives(ctx context.Context, productID int64, limit int, premium bool) ([]domain.Product, error) {
	limit, err := s.effectiveLimit(limit)
	if err != nil {
		return nil, err
	}

	ref, err := s.catalog.GetByID(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("resolve reference product: %w", err)
	}

	hits, err := s.searcher.FindSimilar(ctx, &ref, limit*alternativesHeadroom)
	if err != nil {
		return nil, fmt.Errorf("find similar: %w", err)
	}

	var kept []domain.Product
	for _, h := range hits {
		if premium {
			if h.Product.Price.GreaterThan(ref.Price) {
				kept = append(kept, h.Product)
			}
		} else {
			if h.Product.Price.LessThan(ref.Price) {
				kept = append(kept, h.Product)
			}
		}
	}

	// Closest to the reference price first: descending for cheaper
	// alternatives, ascending for costlier ones.
	sort.SliceStable(kept, func(i, j int) bool {
		if premium {
			return kept[i].Price.LessThan(kept[j].Price)
		}
		return kept[i].Price.GreaterThan(kept[j].Price)
	})

	if len(kept) > limit {
		kept = kept[:limit]
	}
	return kept, nil
}
