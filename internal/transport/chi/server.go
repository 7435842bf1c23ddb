// Package chi exposes the HTTP API over the chi router.
package chi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/gemacjr/product-recommender-engine/internal/domain"
	healthuc "github.com/gemacjr/product-recommender-engine/internal/usecase/health"
	productuc "github.com/gemacjr/product-recommender-engine/internal/usecase/product"
	raguc "github.com/gemacjr/product-recommender-engine/internal/usecase/rag"
	recommenduc "github.com/gemacjr/product-recommender-engine/internal/usecase/recommend"
)

// errorHandler tries to handle a domain error. Returns true if handled.
type errorHandler func(w http.ResponseWriter, err error, msg string) bool

// Server holds the use case services behind the HTTP handlers.
type Server struct {
	products      *productuc.Service
	recommend     *recommenduc.Service
	rag           *raguc.Service
	health        *healthuc.Service
	logger        *zap.Logger
	errorHandlers []errorHandler
}

// NewServer creates an HTTP API server.
func NewServer(
	products *productuc.Service,
	recommend *recommenduc.Service,
	rag *raguc.Service,
	health *healthuc.Service,
	logger *zap.Logger,
) *Server {
	s := &Server{
		products:  products,
		recommend: recommend,
		rag:       rag,
		health:    health,
		logger:    logger,
	}
	s.errorHandlers = []errorHandler{
		sentinelHandler(domain.ErrNotFound, http.StatusNotFound, codeNotFound),
		sentinelHandler(domain.ErrValidation, http.StatusBadRequest, codeValidationFailed),
		sentinelHandler(domain.ErrVectorStoreUnavailable, http.StatusBadGateway, codeVectorStoreError),
		sentinelHandler(domain.ErrEmbeddingProviderError, http.StatusBadGateway, codeEmbeddingProviderError),
		sentinelHandler(domain.ErrGenerationUnavailable, http.StatusBadGateway, codeGenerationError),
	}
	return s
}

// Routes mounts every handler on the given router.
func (s *Server) Routes(r chi.Router) {
	r.Get("/health", s.healthCheck)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/products", func(r chi.Router) {
			r.Get("/", s.listProducts)
			r.Post("/", s.createProduct)
			r.Get("/search", s.searchProducts)
			r.Get("/price-range", s.listByPriceRange)
			r.Get("/top-rated", s.topRatedProducts)
			r.Get("/brands", s.listBrands)
			r.Get("/tags", s.listTags)
			r.Get("/category-counts", s.countByCategory)
			r.Get("/category/{category}", s.listByCategory)
			r.Post("/reindex", s.reindexProducts)
			r.Get("/{id}", s.getProduct)
			r.Put("/{id}", s.updateProduct)
			r.Delete("/{id}", s.deleteProduct)
			r.Post("/{id}/personalized-description", s.personalizedDescription)
		})

		r.Route("/recommendations", func(r chi.Router) {
			r.Get("/similar/{id}", s.similarProducts)
			r.Get("/search", s.recommendByQuery)
			r.Get("/personalized", s.personalizedRecommendations)
			r.Post("/history", s.historyRecommendations)
			r.Get("/complementary/{id}", s.complementaryProducts)
			r.Get("/trending", s.trendingProducts)
			r.Get("/category/{category}", s.categoryRecommendations)
			r.Get("/diverse", s.diverseRecommendations)
			r.Get("/budget/{id}", s.budgetAlternatives)
			r.Get("/premium/{id}", s.premiumAlternatives)
		})

		r.Route("/assistant", func(r chi.Router) {
			r.Post("/query", s.answerQuery)
			r.Post("/recommend", s.recommendWithExplanation)
			r.Post("/compare", s.compareProducts)
			r.Post("/faq", s.answerProductFAQ)
			r.Post("/suggestions", s.personalizedSuggestions)
		})
	})
}

// healthCheck handles GET /health.
func (s *Server) healthCheck(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())

	httpStatus := http.StatusOK
	if report.Status != healthuc.Healthy {
		httpStatus = http.StatusServiceUnavailable
	}

	writeJSON(w, httpStatus, healthResponse{
		Status: string(report.Status),
		Checks: report.Checks,
	})
}

type healthResponse struct {
	Status string                          `json:"status"`
	Checks map[string]healthuc.CheckResult `json:"checks"`
}
