package rag

import (
	"context"

	"github.com/gemacjr/product-recommender-engine/internal/domain"
)

// Retriever fetches grounding documents for a query.
type Retriever interface {
	RelevantContext(ctx context.Context, query string, topK int) ([]domain.Document, error)
}

// Generator produces free text from a system and user prompt.
type Generator interface {
	Generate(ctx context.Context, system, user string) (string, error)
}
