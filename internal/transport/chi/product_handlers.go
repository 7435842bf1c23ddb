package chi

import (
	"encoding/json"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/gemacjr/product-recommender-engine/internal/domain"
)

type productWriteResponse struct {
	Product    productResponse `json:"product"`
	VectorSync string          `json:"vector_sync"`
}

// listProducts handles GET /api/v1/products.
func (s *Server) listProducts(w http.ResponseWriter, r *http.Request) {
	page := queryInt(r, "page", 0)
	size := queryInt(r, "size", 0)

	result, err := s.products.List(r.Context(), page, size)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, pageToResponse(result))
}

// getProduct handles GET /api/v1/products/{id}.
func (s *Server) getProduct(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "invalid product id")
		return
	}

	p, err := s.products.Get(r.Context(), id)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, productToResponse(&p))
}

// createProduct handles POST /api/v1/products.
func (s *Server) createProduct(w http.ResponseWriter, r *http.Request) {
	var req productRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "invalid request body: "+err.Error())
		return
	}

	p := productFromRequest(req)
	created, outcome, err := s.products.Create(r.Context(), &p)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, productWriteResponse{
		Product:    productToResponse(&created),
		VectorSync: outcome.String(),
	})
}

// updateProduct handles PUT /api/v1/products/{id}.
func (s *Server) updateProduct(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "invalid product id")
		return
	}

	var req productRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "invalid request body: "+err.Error())
		return
	}

	updated, outcome, err := s.products.Update(r.Context(), id, productFromRequest(req))
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, productWriteResponse{
		Product:    productToResponse(&updated),
		VectorSync: outcome.String(),
	})
}

// deleteProduct handles DELETE /api/v1/products/{id}.
func (s *Server) deleteProduct(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "invalid product id")
		return
	}

	if _, err := s.products.Delete(r.Context(), id); err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// listByCategory handles GET /api/v1/products/category/{category}.
func (s *Server) listByCategory(w http.ResponseWriter, r *http.Request) {
	cat, err := domain.ParseCategory(categoryParam(r))
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}

	products, err := s.products.ListByCategory(r.Context(), cat)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, productsToList(products))
}

// searchProducts handles GET /api/v1/products/search.
func (s *Server) searchProducts(w http.ResponseWriter, r *http.Request) {
	products, err := s.products.Search(r.Context(), r.URL.Query().Get("keyword"))
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, productsToList(products))
}

// listByPriceRange handles GET /api/v1/products/price-range.
func (s *Server) listByPriceRange(w http.ResponseWriter, r *http.Request) {
	min, err := decimal.NewFromString(r.URL.Query().Get("min"))
	if err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "invalid min price")
		return
	}
	max, err := decimal.NewFromString(r.URL.Query().Get("max"))
	if err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "invalid max price")
		return
	}

	products, err := s.products.ListByPriceRange(r.Context(), min, max)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, productsToList(products))
}

// topRatedProducts handles GET /api/v1/products/top-rated.
func (s *Server) topRatedProducts(w http.ResponseWriter, r *http.Request) {
	products, err := s.products.TopRated(r.Context(), queryInt(r, "limit", 0))
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, productsToList(products))
}

// listBrands handles GET /api/v1/products/brands.
func (s *Server) listBrands(w http.ResponseWriter, r *http.Request) {
	brands, err := s.products.Brands(r.Context())
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string][]string{"brands": brands})
}

// listTags handles GET /api/v1/products/tags.
func (s *Server) listTags(w http.ResponseWriter, r *http.Request) {
	tags, err := s.products.Tags(r.Context())
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string][]string{"tags": tags})
}

// countByCategory handles GET /api/v1/products/category-counts.
func (s *Server) countByCategory(w http.ResponseWriter, r *http.Request) {
	counts, err := s.products.CountByCategory(r.Context())
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}

	out := make(map[string]int64, len(counts))
	for cat, n := range counts {
		out[string(cat)] = n
	}
	writeJSON(w, http.StatusOK, map[string]map[string]int64{"counts": out})
}

// reindexProducts handles POST /api/v1/products/reindex. This is the bulk
// recovery path for accumulated vector sync failures.
func (s *Server) reindexProducts(w http.ResponseWriter, r *http.Request) {
	count, err := s.products.Reindex(r.Context())
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int{"reindexed": count})
}

type descriptionRequest struct {
	Preferences string `json:"preferences"`
}

// personalizedDescription handles POST /api/v1/products/{id}/personalized-description.
func (s *Server) personalizedDescription(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "invalid product id")
		return
	}

	var req descriptionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "invalid request body: "+err.Error())
		return
	}

	description, err := s.products.PersonalizedDescription(r.Context(), id, req.Preferences)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"description": description})
}
