package chi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/gemacjr/product-recommender-engine/internal/domain"
	"github.com/gemacjr/product-recommender-engine/internal/logger"
)

// API error codes returned to clients.
const (
	codeBadRequest             = "bad_request"
	codeValidationFailed       = "validation_failed"
	codeNotFound               = "not_found"
	codeVectorStoreError       = "vector_store_error"
	codeEmbeddingProviderError = "embedding_provider_error"
	codeGenerationError        = "generation_error"
	codeInternalError          = "internal_error"
)

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, errorResponse{Code: code, Message: message})
}

// safeDomainMessage returns a sentinel error message for the client without
// exposing internals.
func safeDomainMessage(err error) string {
	sentinels := []error{
		domain.ErrNotFound,
		domain.ErrValidation,
		domain.ErrVectorStoreUnavailable,
		domain.ErrEmbeddingProviderError,
		domain.ErrGenerationUnavailable,
	}
	for _, s := range sentinels {
		if errors.Is(err, s) {
			return s.Error()
		}
	}
	return "internal error"
}

// sentinelHandler returns an errorHandler that matches a single sentinel error.
func sentinelHandler(sentinel error, status int, code string) errorHandler {
	return func(w http.ResponseWriter, err error, msg string) bool {
		if !errors.Is(err, sentinel) {
			return false
		}
		writeError(w, status, code, msg)
		return true
	}
}

// requestLogger resolves the request-scoped logger (carrying the request id)
// and falls back to the server logger outside the middleware chain.
func (s *Server) requestLogger(r *http.Request) *zap.Logger {
	return logger.FromContextOr(r.Context(), s.logger)
}

func (s *Server) handleDomainError(w http.ResponseWriter, r *http.Request, err error) {
	log := s.requestLogger(r)
	log.Warn("domain error", zap.Error(err))
	msg := safeDomainMessage(err)
	for _, h := range s.errorHandlers {
		if h(w, err, msg) {
			return
		}
	}
	log.Error("internal error", zap.Error(err))
	writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
}

// idParam parses the {id} URL parameter.
func idParam(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}

// categoryParam reads the {category} URL parameter.
func categoryParam(r *http.Request) string {
	return chi.URLParam(r, "category")
}

// queryInt reads an integer query parameter, falling back to def when absent
// or malformed.
func queryInt(r *http.Request, name string, def int) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return v
}
