// Package rag assembles retrieved product context into task-specific prompts
// and turns generator output into customer-facing answers. It is a thin
// orchestrator over the retrieval pipeline, not a subsystem of its own.
package rag

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/gemacjr/product-recommender-engine/internal/domain"
)

// faqContextWindow bounds FAQ retrieval to the product itself plus one
// near-duplicate.
const faqContextWindow = 2

// Settings carries retrieval sizing, injected at construction.
type Settings struct {
	// ContextWindowSize is the default document count fed to the generator.
	ContextWindowSize int
}

// Service answers free-text questions grounded in retrieved product context.
type Service struct {
	retriever Retriever
	generator Generator
	settings  Settings
	log       *zap.Logger
}

// New creates the service.
func New(retriever Retriever, generator Generator, settings Settings, log *zap.Logger) *Service {
	return &Service{retriever: retriever, generator: generator, settings: settings, log: log}
}

// AnswerQuery answers a customer question grounded in retrieved products.
// Zero retrieved documents short-circuits to a fixed message without ever
// calling the generator.
func (s *Service) AnswerQuery(ctx context.Context, query string) (string, error) {
	docs, err := s.retriever.RelevantContext(ctx, query, s.settings.ContextWindowSize)
	if err != nil {
		return "", fmt.Errorf("retrieve context: %w", err)
	}
	if len(docs) == 0 {
		s.log.Info("no relevant context for query")
		return msgNoQueryMatch, nil
	}

	answer, err := s.generator.Generate(ctx,
		answerSystemPrompt,
		fmt.Sprintf(answerUserTemplate, buildContext(docs), query),
	)
	if err != nil {
		return "", fmt.Errorf("generate answer: %w", err)
	}
	return answer, nil
}

// RecommendWithExplanation recommends products for the query and explains why
// each one fits the stated preferences.
func (s *Service) RecommendWithExplanation(ctx context.Context, query, preferences string) (string, error) {
	retrievalQuery := query
	if preferences != "" {
		retrievalQuery = query + " " + preferences
	}

	docs, err := s.retriever.RelevantContext(ctx, retrievalQuery, s.settings.ContextWindowSize)
	if err != nil {
		return "", fmt.Errorf("retrieve context: %w", err)
	}
	if len(docs) == 0 {
		return msgNoRecommend, nil
	}

	shownPreferences := preferences
	if shownPreferences == "" {
		shownPreferences = "Not specified"
	}

	answer, err := s.generator.Generate(ctx, "",
		fmt.Sprintf(recommendTemplate, query, shownPreferences, buildContext(docs)),
	)
	if err != nil {
		return "", fmt.Errorf("generate recommendation: %w", err)
	}
	return answer, nil
}

// CompareProducts produces a side-by-side analysis of the given products.
func (s *Service) CompareProducts(ctx context.Context, productIDs []int64) (string, error) {
	if len(productIDs) == 0 {
		return msgNoCompareIDs, nil
	}

	parts := make([]string, 0, len(productIDs))
	for _, id := range productIDs {
		parts = append(parts, strconv.FormatInt(id, 10))
	}
	query := "product comparison " + strings.Join(parts, " ")

	docs, err := s.retriever.RelevantContext(ctx, query, len(productIDs)*2)
	if err != nil {
		return "", fmt.Errorf("retrieve context: %w", err)
	}
	if len(docs) == 0 {
		return msgNoCompare, nil
	}

	answer, err := s.generator.Generate(ctx, "",
		fmt.Sprintf(compareTemplate, buildContext(docs)),
	)
	if err != nil {
		return "", fmt.Errorf("generate comparison: %w", err)
	}
	return answer, nil
}

// AnswerProductFAQ answers a question about one specific product.
func (s *Service) AnswerProductFAQ(ctx context.Context, productID int64, question string) (string, error) {
	query := fmt.Sprintf("product %d %s", productID, question)

	docs, err := s.retriever.RelevantContext(ctx, query, faqContextWindow)
	if err != nil {
		return "", fmt.Errorf("retrieve context: %w", err)
	}
	if len(docs) == 0 {
		return msgNoFAQMatch, nil
	}

	answer, err := s.generator.Generate(ctx, "",
		fmt.Sprintf(faqTemplate, buildContext(docs), question),
	)
	if err != nil {
		return "", fmt.Errorf("generate FAQ answer: %w", err)
	}
	return answer, nil
}

// PersonalizedSuggestions produces shopping suggestions for a user profile
// and occasion. The context window is doubled so the generator can weigh a
// wider pool against the stated profile.
func (s *Service) PersonalizedSuggestions(ctx context.Context, userProfile, occasion string) (string, error) {
	query := fmt.Sprintf("%s %s shopping suggestions", userProfile, occasion)

	docs, err := s.retriever.RelevantContext(ctx, query, s.settings.ContextWindowSize*2)
	if err != nil {
		return "", fmt.Errorf("retrieve context: %w", err)
	}
	if len(docs) == 0 {
		return msgNoSuggest, nil
	}

	answer, err := s.generator.Generate(ctx, "",
		fmt.Sprintf(suggestionsTemplate, userProfile, occasion, buildContext(docs)),
	)
	if err != nil {
		return "", fmt.Errorf("generate suggestions: %w", err)
	}
	return answer, nil
}

// buildContext renders retrieved documents into the context block fed to the
// generator: a numbered entry per document followed by its price and rating
// line when metadata is present.
func buildContext(docs []domain.Document) string {
	var b strings.Builder
	for i, doc := range docs {
		fmt.Fprintf(&b, "Product %d:\n", i+1)
		b.WriteString(doc.Content)
		b.WriteString("\n")

		if len(doc.Metadata) > 0 {
			b.WriteString("Additional Info: ")
			b.WriteString("Price: $")
			b.WriteString(doc.Metadata["price"])
			b.WriteString(", Rating: ")
			b.WriteString(doc.Metadata["rating"])
			b.WriteString(" stars")
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}
	return b.String()
}
