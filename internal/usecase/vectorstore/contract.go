package vectorstore

import (
	"context"

	"github.com/gemacjr/product-recommender-engine/internal/domain"
)

// Index defines the vector storage contract.
type Index interface {
	Upsert(ctx context.Context, recs []domain.EmbeddingRecord) error
	Remove(ctx context.Context, productID int64) error
	Search(ctx context.Context, vector []float32, topK uint64, threshold float32) ([]domain.Hit, error)
	SearchDocuments(ctx context.Context, vector []float32, topK uint64, threshold float32) ([]domain.Document, error)
}

// Embedder vectorizes text into embeddings.
type Embedder interface {
	Embed(ctx context.Context, text string) (domain.EmbeddingResult, error)
}
