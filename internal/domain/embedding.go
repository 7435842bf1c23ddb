package domain

import "context"

// Embedder is the shared text vectorization contract between layers.
type Embedder interface {
	Embed(ctx context.Context, text string) (EmbeddingResult, error)
}

// EmbeddingResult carries the embedding vector and token usage through the
// decorator chain. A cache hit reports zero tokens.
type EmbeddingResult struct {
	Embedding    []float32
	PromptTokens int
	TotalTokens  int
}

// Generator produces free text from a prompt. Output is opaque: no structured
// contract is assumed beyond "non-empty string on success".
type Generator interface {
	Generate(ctx context.Context, system, user string) (string, error)
}
