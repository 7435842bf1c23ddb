// Package vectorstore keeps the embedding index in sync with catalog content
// and answers similarity queries over it.
package vectorstore

import (
	"context"
	"fmt"

	"github.com/gemacjr/product-recommender-engine/internal/domain"
)

// Service pairs an embedder with the vector index.
type Service struct {
	index     Index
	embed     Embedder
	threshold float32
}

// New creates a vector store service. threshold is the minimum cosine
// similarity a hit must reach to be returned.
func New(index Index, embed Embedder, threshold float64) *Service {
	return &Service{index: index, embed: embed, threshold: float32(threshold)}
}

// AddProduct embeds a product's canonical text and stores the vector keyed by
// product ID. Re-adding an existing ID replaces the previous entry.
func (s *Service) AddProduct(ctx context.Context, p *domain.Product) error {
	return s.AddProducts(ctx, []*domain.Product{p})
}

// AddProducts embeds and upserts a batch of products.
func (s *Service) AddProducts(ctx context.Context, products []*domain.Product) error {
	if len(products) == 0 {
		return nil
	}

	recs := make([]domain.EmbeddingRecord, 0, len(products))
	for _, p := range products {
		result, err := s.embed.Embed(ctx, p.EmbeddingText())
		if err != nil {
			return fmt.Errorf("embed product %d: %w", p.ID, err)
		}
		recs = append(recs, domain.EmbeddingRecord{
			ProductID: p.ID,
			Vector:    result.Embedding,
			Payload:   domain.NewProductPayload(p),
		})
	}

	if err := s.index.Upsert(ctx, recs); err != nil {
		return fmt.Errorf("upsert vectors: %w", err)
	}
	return nil
}

// UpdateProduct refreshes a product's vector after a field change. Any field
// that feeds the canonical embedding text invalidates the stored vector, so
// the safe move is always re-embed and replace.
func (s *Service) UpdateProduct(ctx context.Context, p *domain.Product) error {
	return s.AddProduct(ctx, p)
}

// RemoveProduct drops a product's vector. Removing an absent ID succeeds.
func (s *Service) RemoveProduct(ctx context.Context, productID int64) error {
	if err := s.index.Remove(ctx, productID); err != nil {
		return fmt.Errorf("remove vector %d: %w", productID, err)
	}
	return nil
}

// SemanticSearch embeds the free-text query and returns up to topK hits above
// the similarity threshold, best first.
func (s *Service) SemanticSearch(ctx context.Context, query string, topK int) ([]domain.Hit, error) {
	result, err := s.embed.Embed(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("embed query: %w", err)
	}

	hits, err := s.index.Search(ctx, result.Embedding, uint64(topK), s.threshold)
	if err != nil {
		return nil, fmt.Errorf("search index: %w", err)
	}
	return hits, nil
}

// RelevantContext retrieves up to topK documents for the query, used as
// grounding context for text generation. Zero documents is a valid outcome.
func (s *Service) RelevantContext(ctx context.Context, query string, topK int) ([]domain.Document, error) {
	result, err := s.embed.Embed(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("embed query: %w", err)
	}

	docs, err := s.index.SearchDocuments(ctx, result.Embedding, uint64(topK), s.threshold)
	if err != nil {
		return nil, fmt.Errorf("search documents: %w", err)
	}
	return docs, nil
}

// FindSimilar searches with the product's own canonical text as the query,
// requesting one extra hit of headroom and dropping the product itself from
// the results.
func (s *Service) FindSimilar(ctx context.Context, p *domain.Product, topK int) ([]domain.Hit, error) {
	result, err := s.embed.Embed(ctx, p.EmbeddingText())
	if err != nil {
		return nil, fmt.Errorf("embed product %d: %w", p.ID, err)
	}

	hits, err := s.index.Search(ctx, result.Embedding, uint64(topK+1), s.threshold)
	if err != nil {
		return nil, fmt.Errorf("search index: %w", err)
	}

	filtered := hits[:0]
	for _, h := range hits {
		if h.Product.ID == p.ID {
			continue
		}
		filtered = append(filtered, h)
	}
	if len(filtered) > topK {
		filtered = filtered[:topK]
	}
	return filtered, nil
}
