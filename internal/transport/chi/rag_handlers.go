package chi

import (
	"encoding/json"
	"net/http"
)

type answerResponse struct {
	Answer string `json:"answer"`
}

type queryRequest struct {
	Question string `json:"question"`
}

// answerQuery handles POST /api/v1/assistant/query.
func (s *Server) answerQuery(w http.ResponseWriter, r *http.Request) {
	var req queryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "invalid request body: "+err.Error())
		return
	}
	if req.Question == "" {
		writeError(w, http.StatusBadRequest, codeValidationFailed, "question is required")
		return
	}

	answer, err := s.rag.AnswerQuery(r.Context(), req.Question)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, answerResponse{Answer: answer})
}

type recommendRequest struct {
	Query       string `json:"query"`
	Preferences string `json:"preferences"`
}

// recommendWithExplanation handles POST /api/v1/assistant/recommend.
func (s *Server) recommendWithExplanation(w http.ResponseWriter, r *http.Request) {
	var req recommendRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "invalid request body: "+err.Error())
		return
	}
	if req.Query == "" {
		writeError(w, http.StatusBadRequest, codeValidationFailed, "query is required")
		return
	}

	answer, err := s.rag.RecommendWithExplanation(r.Context(), req.Query, req.Preferences)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, answerResponse{Answer: answer})
}

type compareRequest struct {
	ProductIDs []int64 `json:"product_ids"`
}

// compareProducts handles POST /api/v1/assistant/compare.
func (s *Server) compareProducts(w http.ResponseWriter, r *http.Request) {
	var req compareRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "invalid request body: "+err.Error())
		return
	}

	answer, err := s.rag.CompareProducts(r.Context(), req.ProductIDs)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, answerResponse{Answer: answer})
}

type faqRequest struct {
	ProductID int64  `json:"product_id"`
	Question  string `json:"question"`
}

// answerProductFAQ handles POST /api/v1/assistant/faq.
func (s *Server) answerProductFAQ(w http.ResponseWriter, r *http.Request) {
	var req faqRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "invalid request body: "+err.Error())
		return
	}
	if req.ProductID == 0 || req.Question == "" {
		writeError(w, http.StatusBadRequest, codeValidationFailed, "product_id and question are required")
		return
	}

	answer, err := s.rag.AnswerProductFAQ(r.Context(), req.ProductID, req.Question)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, answerResponse{Answer: answer})
}

type suggestionsRequest struct {
	UserProfile string `json:"user_profile"`
	Occasion    string `json:"occasion"`
}

// personalizedSuggestions handles POST /api/v1/assistant/suggestions.
func (s *Server) personalizedSuggestions(w http.ResponseWriter, r *http.Request) {
	var req suggestionsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "invalid request body: "+err.Error())
		return
	}
	if req.UserProfile == "" || req.Occasion == "" {
		writeError(w, http.StatusBadRequest, codeValidationFailed, "user_profile and occasion are required")
		return
	}

	answer, err := s.rag.PersonalizedSuggestions(r.Context(), req.UserProfile, req.Occasion)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, answerResponse{Answer: answer})
}
