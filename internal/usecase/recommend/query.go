package recommend

import (
	"fmt"
	"strings"

	"github.com/gemacjr/product-recommender-engine/internal/domain"
)

// fallbackPreferences is used when the caller supplies no preferences at all.
const fallbackPreferences = "popular high-quality products"

// enrichPreferences wraps raw user preferences in a fixed retrieval template.
// A blank input falls back to a generic quality-oriented query. Pure and
// deterministic.
func enrichPreferences(raw string) string {
	if strings.TrimSpace(raw) == "" {
		return fallbackPreferences
	}
	return fmt.Sprintf(
		"Products matching user preferences: %s. Looking for quality, value, and relevance.",
		raw,
	)
}

// complementaryQuery builds the retrieval query for items that go together
// with the given product.
func complementaryQuery(p *domain.Product) string {
	return fmt.Sprintf(
		"Products that complement %s in category %s, accessories and related items",
		p.Name, p.Category.DisplayName(),
	)
}

// categoryContextQuery builds the retrieval query for category browsing with
// a free-text user context.
func categoryContextQuery(cat domain.Category, userContext string) string {
	return fmt.Sprintf("%s products in %s category", userContext, cat.DisplayName())
}
