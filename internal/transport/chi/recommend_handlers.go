package chi

import (
	"encoding/json"
	"net/http"

	"github.com/gemacjr/product-recommender-engine/internal/domain"
)

// defaultRecommendLimit applies when the caller does not ask for a specific
// result count.
const defaultRecommendLimit = 10

// similarProducts handles GET /api/v1/recommendations/similar/{id}.
func (s *Server) similarProducts(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "invalid product id")
		return
	}

	products, err := s.recommend.Similar(r.Context(), id, queryInt(r, "limit", defaultRecommendLimit))
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, productsToList(products))
}

// recommendByQuery handles GET /api/v1/recommendations/search.
func (s *Server) recommendByQuery(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	if query == "" {
		writeError(w, http.StatusBadRequest, codeValidationFailed, "query parameter q is required")
		return
	}

	products, err := s.recommend.ByQuery(r.Context(), query, queryInt(r, "limit", defaultRecommendLimit))
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, productsToList(products))
}

// personalizedRecommendations handles GET /api/v1/recommendations/personalized.
func (s *Server) personalizedRecommendations(w http.ResponseWriter, r *http.Request) {
	products, err := s.recommend.Personalized(r.Context(),
		r.URL.Query().Get("preferences"), queryInt(r, "limit", defaultRecommendLimit))
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, productsToList(products))
}

type historyRequest struct {
	ViewedIDs []int64 `json:"viewed_ids"`
	Limit     int     `json:"limit"`
}

// historyRecommendations handles POST /api/v1/recommendations/history.
func (s *Server) historyRecommendations(w http.ResponseWriter, r *http.Request) {
	var req historyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "invalid request body: "+err.Error())
		return
	}
	if req.Limit == 0 {
		req.Limit = defaultRecommendLimit
	}

	products, err := s.recommend.FromHistory(r.Context(), req.ViewedIDs, req.Limit)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, productsToList(products))
}

// complementaryProducts handles GET /api/v1/recommendations/complementary/{id}.
func (s *Server) complementaryProducts(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "invalid product id")
		return
	}

	products, err := s.recommend.Complementary(r.Context(), id, queryInt(r, "limit", defaultRecommendLimit))
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, productsToList(products))
}

// trendingProducts handles GET /api/v1/recommendations/trending.
func (s *Server) trendingProducts(w http.ResponseWriter, r *http.Request) {
	products, err := s.recommend.Trending(r.Context(), queryInt(r, "limit", defaultRecommendLimit))
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, productsToList(products))
}

// categoryRecommendations handles GET /api/v1/recommendations/category/{category}.
func (s *Server) categoryRecommendations(w http.ResponseWriter, r *http.Request) {
	cat, err := domain.ParseCategory(categoryParam(r))
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}

	products, err := s.recommend.ForCategory(r.Context(), cat,
		r.URL.Query().Get("context"), queryInt(r, "limit", defaultRecommendLimit))
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, productsToList(products))
}

// diverseRecommendations handles GET /api/v1/recommendations/diverse.
func (s *Server) diverseRecommendations(w http.ResponseWriter, r *http.Request) {
	interests := r.URL.Query().Get("interests")
	if interests == "" {
		writeError(w, http.StatusBadRequest, codeValidationFailed, "query parameter interests is required")
		return
	}

	products, err := s.recommend.Diverse(r.Context(), interests, queryInt(r, "limit", defaultRecommendLimit))
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, productsToList(products))
}

// budgetAlternatives handles GET /api/v1/recommendations/budget/{id}.
func (s *Server) budgetAlternatives(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "invalid product id")
		return
	}

	products, err := s.recommend.BudgetAlternatives(r.Context(), id, queryInt(r, "limit", defaultRecommendLimit))
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, productsToList(products))
}

// premiumAlternatives handles GET /api/v1/recommendations/premium/{id}.
func (s *Server) premiumAlternatives(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "invalid product id")
		return
	}

	products, err := s.recommend.PremiumAlternatives(r.Context(), id, queryInt(r, "limit", defaultRecommendLimit))
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, productsToList(products))
}
