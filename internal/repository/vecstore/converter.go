package vecstore

import (
	"github.com/qdrant/go-client/qdrant"
	"github.com/shopspring/decimal"

	"github.com/gemacjr/product-recommender-engine/internal/domain"
)

// productFromPayload rebuilds the lightweight product view stored alongside
// the vector. Only the fields in domain.NewProductPayload survive the round
// trip; callers needing the full record fetch it from the catalog by ID.
func productFromPayload(payload map[string]*qdrant.Value) domain.Product {
	var p domain.Product

	if v, ok := payload["product_id"]; ok {
		p.ID = v.GetIntegerValue()
	}
	if v, ok := payload["name"]; ok {
		p.Name = v.GetStringValue()
	}
	if v, ok := payload["category"]; ok {
		p.Category = domain.Category(v.GetStringValue())
	}
	if v, ok := payload["brand"]; ok {
		p.Brand = v.GetStringValue()
	}
	if v, ok := payload["sku"]; ok {
		p.SKU = v.GetStringValue()
	}
	if v, ok := payload["price"]; ok {
		if d, err := decimal.NewFromString(v.GetStringValue()); err == nil {
			p.Price = d
		}
	}
	if v, ok := payload["rating"]; ok {
		if d, err := decimal.NewFromString(v.GetStringValue()); err == nil {
			p.Rating = d
		}
	}
	return p
}

// documentFromPayload turns a scored point into a retrieval document. The
// "content" payload field holds the exact text that was embedded.
func documentFromPayload(id uint64, payload map[string]*qdrant.Value) domain.Document {
	doc := domain.Document{
		ID:       int64(id),
		Metadata: make(map[string]string, 2),
	}
	if v, ok := payload["content"]; ok {
		doc.Content = v.GetStringValue()
	}
	if v, ok := payload["price"]; ok {
		doc.Metadata["price"] = v.GetStringValue()
	}
	if v, ok := payload["rating"]; ok {
		doc.Metadata["rating"] = v.GetStringValue()
	}
	return doc
}
