package domain

// Document is a retrieved context document fed into text generation.
// Metadata carries the self-describing subset stored alongside the vector
// (price, rating) so no catalog join is needed to render it.
type Document struct {
	ID       int64
	Content  string
	Metadata map[string]string
}

// Hit is a single similarity search result: a lightweight product
// reconstructed from the vector payload plus its relevance score.
type Hit struct {
	Product Product
	Score   float64
}
