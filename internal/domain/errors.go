package domain

import "errors"

var (
	// ErrNotFound signals a missing catalog record.
	ErrNotFound = errors.New("not found")
	// ErrValidation signals malformed input rejected before any collaborator call.
	ErrValidation = errors.New("validation failed")
	// ErrVectorStoreUnavailable signals a vector store transport failure.
	// Fatal for search paths; write paths treat it as a best-effort outcome.
	ErrVectorStoreUnavailable = errors.New("vector store unavailable")
	// ErrEmbeddingProviderError signals an embedding provider failure.
	ErrEmbeddingProviderError = errors.New("embedding provider error")
	// ErrGenerationUnavailable signals a text generator failure.
	ErrGenerationUnavailable = errors.New("text generation unavailable")
)
