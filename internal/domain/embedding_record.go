package domain

// Payload is the metadata bag stored alongside a vector. It is a denormalized
// copy of the product fields a search hit needs to be self-describing, so no
// catalog join is required to render results.
type Payload map[string]any

// EmbeddingRecord is one vector store entry, keyed 1:1 by product ID.
type EmbeddingRecord struct {
	ProductID int64
	Vector    []float32
	Payload   Payload
}

// NewProductPayload builds the metadata bag for a product's vector.
func NewProductPayload(p *Product) Payload {
	return Payload{
		"product_id": p.ID,
		"name":       p.Name,
		"category":   string(p.Category),
		"price":      p.Price.String(),
		"rating":     p.Rating.String(),
		"brand":      p.Brand,
		"sku":        p.SKU,
		"content":    p.EmbeddingText(),
	}
}
