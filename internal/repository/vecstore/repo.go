// Package vecstore implements the embedding index over Qdrant.
package vecstore

import (
	"context"
	"fmt"

	"github.com/qdrant/go-client/qdrant"

	"github.com/gemacjr/product-recommender-engine/internal/domain"
)

// Repo stores and searches product vectors in a Qdrant collection.
type Repo struct {
	client     *qdrant.Client
	collection string
}

// Config holds Qdrant connection settings.
type Config struct {
	Host       string
	Port       int
	APIKey     string
	UseTLS     bool
	Collection string
}

// New connects to Qdrant and returns the repository.
func New(cfg Config) (*Repo, error) {
	client, err := qdrant.NewClient(&qdrant.Config{
		Host:   cfg.Host,
		Port:   cfg.Port,
		APIKey: cfg.APIKey,
		UseTLS: cfg.UseTLS,
	})
	if err != nil {
		return nil, fmt.Errorf("create qdrant client: %w", err)
	}

	return &Repo{client: client, collection: cfg.Collection}, nil
}

// EnsureCollection creates the product collection if it does not exist yet.
// Cosine distance matches the similarity threshold semantics of the engine.
func (r *Repo) EnsureCollection(ctx context.Context, vectorSize uint64) error {
	exists, err := r.client.CollectionExists(ctx, r.collection)
	if err != nil {
		return fmt.Errorf("check collection existence: %w", err)
	}
	if exists {
		return nil
	}

	if err := r.client.CreateCollection(ctx, &qdrant.CreateCollection{
		CollectionName: r.collection,
		VectorsConfig: qdrant.NewVectorsConfig(&qdrant.VectorParams{
			Size:     vectorSize,
			Distance: qdrant.Distance_Cosine,
		}),
	}); err != nil {
		return fmt.Errorf("create collection: %w", err)
	}
	return nil
}

// Upsert inserts or replaces vectors by product ID. Idempotent.
func (r *Repo) Upsert(ctx context.Context, recs []domain.EmbeddingRecord) error {
	if len(recs) == 0 {
		return nil
	}

	points := make([]*qdrant.PointStruct, 0, len(recs))
	for _, rec := range recs {
		points = append(points, &qdrant.PointStruct{
			Id:      qdrant.NewIDNum(uint64(rec.ProductID)),
			Vectors: qdrant.NewVectors(rec.Vector...),
			Payload: qdrant.NewValueMap(rec.Payload),
		})
	}

	_, err := r.client.Upsert(ctx, &qdrant.UpsertPoints{
		CollectionName: r.collection,
		Points:         points,
	})
	if err != nil {
		return fmt.Errorf("upsert points: %w: %w", err, domain.ErrVectorStoreUnavailable)
	}
	return nil
}

// Remove deletes a product's vector. Removing an absent ID is not an error.
func (r *Repo) Remove(ctx context.Context, productID int64) error {
	_, err := r.client.Delete(ctx, &qdrant.DeletePoints{
		CollectionName: r.collection,
		Points: qdrant.NewPointsSelector(
			qdrant.NewIDNum(uint64(productID)),
		),
	})
	if err != nil {
		return fmt.Errorf("delete point: %w: %w", err, domain.ErrVectorStoreUnavailable)
	}
	return nil
}

// Search returns at most topK hits with similarity >= threshold, ordered by
// descending score. Ties share the store's natural order, which is unstable
// across calls. An empty result is valid, not an error.
func (r *Repo) Search(ctx context.Context, vector []float32, topK uint64, threshold float32) ([]domain.Hit, error) {
	points, err := r.client.Query(ctx, &qdrant.QueryPoints{
		CollectionName: r.collection,
		Query:          qdrant.NewQuery(vector...),
		Limit:          qdrant.PtrOf(topK),
		ScoreThreshold: qdrant.PtrOf(threshold),
		WithPayload:    qdrant.NewWithPayload(true),
	})
	if err != nil {
		return nil, fmt.Errorf("query points: %w: %w", err, domain.ErrVectorStoreUnavailable)
	}

	hits := make([]domain.Hit, 0, len(points))
	for _, pt := range points {
		hits = append(hits, domain.Hit{
			Product: productFromPayload(pt.GetPayload()),
			Score:   float64(pt.GetScore()),
		})
	}
	return hits, nil
}

// SearchDocuments is Search with the payload rendered as retrieval documents
// instead of products. The stored content plus price and rating metadata is
// everything the generation layer needs.
func (r *Repo) SearchDocuments(ctx context.Context, vector []float32, topK uint64, threshold float32) ([]domain.Document, error) {
	points, err := r.client.Query(ctx, &qdrant.QueryPoints{
		CollectionName: r.collection,
		Query:          qdrant.NewQuery(vector...),
		Limit:          qdrant.PtrOf(topK),
		ScoreThreshold: qdrant.PtrOf(threshold),
		WithPayload:    qdrant.NewWithPayload(true),
	})
	if err != nil {
		return nil, fmt.Errorf("query points: %w: %w", err, domain.ErrVectorStoreUnavailable)
	}

	docs := make([]domain.Document, 0, len(points))
	for _, pt := range points {
		docs = append(docs, documentFromPayload(pt.GetId().GetNum(), pt.GetPayload()))
	}
	return docs, nil
}

// HealthCheck verifies the collection is reachable.
func (r *Repo) HealthCheck(ctx context.Context) error {
	if _, err := r.client.CollectionExists(ctx, r.collection); err != nil {
		return fmt.Errorf("qdrant health check: %w", err)
	}
	return nil
}

// Close releases the underlying gRPC connection.
func (r *Repo) Close() error {
	return r.client.Close()
}
