package embcache

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/gemacjr/product-recommender-engine/internal/domain"
)

// --- Mocks ---

type mockEmbedder struct {
	result domain.EmbeddingResult
	err    error
	calls  int
}

func (m *mockEmbedder) Embed(_ context.Context, _ string) (domain.EmbeddingResult, error) {
	m.calls++
	if m.err != nil {
		return domain.EmbeddingResult{}, m.err
	}
	return m.result, nil
}

type mockStore struct {
	getFn func(ctx context.Context, key string) ([]byte, error)
	setFn func(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

func (m *mockStore) Get(ctx context.Context, key string) ([]byte, error) {
	return m.getFn(ctx, key)
}

func (m *mockStore) SetWithTTL(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if m.setFn != nil {
		return m.setFn(ctx, key, value, ttl)
	}
	return nil
}

func newTestCachedEmbedder(inner domain.Embedder) (*CachedEmbedder, *mockStore) {
	ms := &mockStore{}
	ce := New(inner, ms, "text-embedding-3-small", time.Hour, nil, zap.NewNop())
	return ce, ms
}

// --- Tests ---

func TestEmbed_CacheMiss(t *testing.T) {
	inner := &mockEmbedder{result: domain.EmbeddingResult{
		Embedding:    []float32{0.1, 0.2, 0.3},
		PromptTokens: 10,
		TotalTokens:  10,
	}}
	ce, ms := newTestCachedEmbedder(inner)
	ctx := context.Background()

	ms.getFn = func(_ context.Context, _ string) ([]byte, error) {
		return nil, ErrKeyNotFound
	}

	var setCalled bool
	ms.setFn = func(_ context.Context, _ string, _ []byte, _ time.Duration) error {
		setCalled = true
		return nil
	}

	result, err := ce.Embed(ctx, "test text")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Embedding) != 3 || result.Embedding[0] != 0.1 {
		t.Fatalf("unexpected vector: %v", result.Embedding)
	}
	if result.TotalTokens != 10 {
		t.Fatalf("expected TotalTokens=10, got %d", result.TotalTokens)
	}
	if !setCalled {
		t.Fatal("expected SET to be called for cache put")
	}
}

func TestEmbed_CacheHit(t *testing.T) {
	inner := &mockEmbedder{result: domain.EmbeddingResult{
		Embedding: []float32{0.1, 0.2, 0.3},
	}}
	ce, ms := newTestCachedEmbedder(inner)
	ctx := context.Background()

	cached := vectorToCacheBytes([]float32{0.4, 0.5, 0.6})
	ms.getFn = func(_ context.Context, _ string) ([]byte, error) {
		return cached, nil
	}

	result, err := ce.Embed(ctx, "test text")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Embedding) != 3 || result.Embedding[0] != 0.4 {
		t.Fatalf("expected cached vector, got: %v", result.Embedding)
	}
	if result.TotalTokens != 0 {
		t.Fatalf("expected TotalTokens=0 on cache hit, got %d", result.TotalTokens)
	}
	if inner.calls != 0 {
		t.Fatalf("inner embedder should not be called on cache hit, got %d calls", inner.calls)
	}
}

func TestEmbed_InnerError(t *testing.T) {
	inner := &mockEmbedder{err: errors.New("provider down")}
	ce, ms := newTestCachedEmbedder(inner)

	ms.getFn = func(_ context.Context, _ string) ([]byte, error) {
		return nil, ErrKeyNotFound
	}

	if _, err := ce.Embed(context.Background(), "test text"); err == nil {
		t.Fatal("expected error from inner embedder")
	}
}

func TestEmbed_StoreErrorFallsThrough(t *testing.T) {
	inner := &mockEmbedder{result: domain.EmbeddingResult{Embedding: []float32{1}}}
	ce, ms := newTestCachedEmbedder(inner)

	ms.getFn = func(_ context.Context, _ string) ([]byte, error) {
		return nil, errors.New("connection reset")
	}
	ms.setFn = func(_ context.Context, _ string, _ []byte, _ time.Duration) error {
		return errors.New("connection reset")
	}

	result, err := ce.Embed(context.Background(), "test text")
	if err != nil {
		t.Fatalf("cache failure must not be fatal: %v", err)
	}
	if len(result.Embedding) != 1 {
		t.Fatalf("expected inner result, got %v", result.Embedding)
	}
}

func TestCacheKey_DependsOnModel(t *testing.T) {
	inner := &mockEmbedder{}
	a := New(inner, &mockStore{}, "model-a", time.Hour, nil, zap.NewNop())
	b := New(inner, &mockStore{}, "model-b", time.Hour, nil, zap.NewNop())

	if a.cacheKey("same text") == b.cacheKey("same text") {
		t.Fatal("cache keys for different models must differ")
	}
}

func TestVectorRoundTrip(t *testing.T) {
	in := []float32{0.25, -1.5, 3.75}
	out, err := bytesToVector(vectorToCacheBytes(in))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out) != len(in) {
		t.Fatalf("length mismatch: %d vs %d", len(out), len(in))
	}
	for i := range in {
		if in[i] != out[i] {
			t.Errorf("element %d: %f != %f", i, in[i], out[i])
		}
	}

	if _, err := bytesToVector([]byte{1, 2, 3}); err == nil {
		t.Fatal("expected error for truncated data")
	}
}
