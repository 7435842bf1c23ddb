package chi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/gemacjr/product-recommender-engine/internal/domain"
	"github.com/gemacjr/product-recommender-engine/internal/logger"
	healthuc "github.com/gemacjr/product-recommender-engine/internal/usecase/health"
	productuc "github.com/gemacjr/product-recommender-engine/internal/usecase/product"
	raguc "github.com/gemacjr/product-recommender-engine/internal/usecase/rag"
	recommenduc "github.com/gemacjr/product-recommender-engine/internal/usecase/recommend"
)

// --- Mocks ---

type mockCatalog struct {
	getFn func(ctx context.Context, id int64) (domain.Product, error)
}

func (m *mockCatalog) GetByID(ctx context.Context, id int64) (domain.Product, error) {
	if m.getFn != nil {
		return m.getFn(ctx, id)
	}
	return domain.Product{}, domain.ErrNotFound
}

func (m *mockCatalog) List(_ context.Context, page, size int) (domain.Page, error) {
	return domain.Page{Page: page, Size: size}, nil
}

func (m *mockCatalog) ListByCategory(context.Context, domain.Category) ([]domain.Product, error) {
	return nil, nil
}

func (m *mockCatalog) SearchByKeyword(context.Context, string) ([]domain.Product, error) {
	return nil, nil
}

func (m *mockCatalog) ListByPriceRange(context.Context, decimal.Decimal, decimal.Decimal) ([]domain.Product, error) {
	return nil, nil
}

func (m *mockCatalog) TopRated(context.Context, int) ([]domain.Product, error) { return nil, nil }
func (m *mockCatalog) ListAllActive(context.Context) ([]domain.Product, error) {
	return nil, nil
}
func (m *mockCatalog) Insert(_ context.Context, p *domain.Product) error {
	p.ID = 1
	return nil
}
func (m *mockCatalog) Update(context.Context, *domain.Product) error { return nil }
func (m *mockCatalog) SoftDelete(context.Context, int64) error       { return nil }
func (m *mockCatalog) CountByCategory(context.Context) (map[domain.Category]int64, error) {
	return nil, nil
}
func (m *mockCatalog) DistinctBrands(context.Context) ([]string, error) { return nil, nil }
func (m *mockCatalog) DistinctTags(context.Context) ([]string, error)   { return nil, nil }

type mockSync struct{}

func (m *mockSync) AddProduct(context.Context, *domain.Product) error    { return nil }
func (m *mockSync) AddProducts(context.Context, []*domain.Product) error { return nil }
func (m *mockSync) UpdateProduct(context.Context, *domain.Product) error { return nil }
func (m *mockSync) RemoveProduct(context.Context, int64) error           { return nil }

type mockSearcher struct {
	semanticFn func(ctx context.Context, query string, topK int) ([]domain.Hit, error)
	similarFn  func(ctx context.Context, p *domain.Product, topK int) ([]domain.Hit, error)
}

func (m *mockSearcher) SemanticSearch(ctx context.Context, query string, topK int) ([]domain.Hit, error) {
	if m.semanticFn != nil {
		return m.semanticFn(ctx, query, topK)
	}
	return nil, nil
}

func (m *mockSearcher) FindSimilar(ctx context.Context, p *domain.Product, topK int) ([]domain.Hit, error) {
	if m.similarFn != nil {
		return m.similarFn(ctx, p, topK)
	}
	return nil, nil
}

type mockRetriever struct {
	docs []domain.Document
}

func (m *mockRetriever) RelevantContext(context.Context, string, int) ([]domain.Document, error) {
	return m.docs, nil
}

type mockGenerator struct {
	out string
}

func (m *mockGenerator) Generate(context.Context, string, string) (string, error) {
	if m.out == "" {
		return "generated", nil
	}
	return m.out, nil
}

type mockPinger struct{ err error }

func (m *mockPinger) Ping(context.Context) error { return m.err }

type testDeps struct {
	catalog   *mockCatalog
	searcher  *mockSearcher
	retriever *mockRetriever
	pinger    *mockPinger
}

func newTestRouter(deps testDeps) http.Handler {
	if deps.catalog == nil {
		deps.catalog = &mockCatalog{}
	}
	if deps.searcher == nil {
		deps.searcher = &mockSearcher{}
	}
	if deps.retriever == nil {
		deps.retriever = &mockRetriever{}
	}
	if deps.pinger == nil {
		deps.pinger = &mockPinger{}
	}

	log := zap.NewNop()
	products := productuc.New(deps.catalog, &mockSync{}, &mockGenerator{},
		productuc.Settings{DefaultPageSize: 10, MaxPageSize: 100}, log)
	recommend := recommenduc.New(deps.searcher, deps.catalog,
		recommenduc.Settings{MaxResults: 20}, log)
	rag := raguc.New(deps.retriever, &mockGenerator{out: "helpful answer"},
		raguc.Settings{ContextWindowSize: 5}, log)
	health := healthuc.New(deps.pinger, nil, nil)

	server := NewServer(products, recommend, rag, health, log)
	r := chi.NewRouter()
	server.Routes(r)
	return r
}

func doRequest(t *testing.T, handler http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, http.NoBody)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	return rr
}

// --- Tests ---

func TestHealthEndpoint(t *testing.T) {
	rr := doRequest(t, newTestRouter(testDeps{}), "GET", "/health", "")

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rr.Code)
	}
	var resp healthResponse
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Status != "ok" {
		t.Errorf("status = %q", resp.Status)
	}
}

func TestHealthEndpoint_Degraded503(t *testing.T) {
	deps := testDeps{pinger: &mockPinger{err: context.DeadlineExceeded}}
	rr := doRequest(t, newTestRouter(deps), "GET", "/health", "")

	if rr.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want 503", rr.Code)
	}
}

func TestGetProduct_InvalidID400(t *testing.T) {
	rr := doRequest(t, newTestRouter(testDeps{}), "GET", "/api/v1/products/abc", "")

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rr.Code)
	}
}

func TestGetProduct_NotFound404(t *testing.T) {
	rr := doRequest(t, newTestRouter(testDeps{}), "GET", "/api/v1/products/99", "")

	if rr.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rr.Code)
	}
	var resp errorResponse
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Code != codeNotFound {
		t.Errorf("code = %q, want %q", resp.Code, codeNotFound)
	}
}

func TestGetProduct_OK(t *testing.T) {
	deps := testDeps{catalog: &mockCatalog{getFn: func(_ context.Context, id int64) (domain.Product, error) {
		return domain.Product{
			ID: id, Name: "Headphones", Category: domain.CategoryElectronics,
			Price: decimal.RequireFromString("199.99"), Active: true,
		}, nil
	}}}
	rr := doRequest(t, newTestRouter(deps), "GET", "/api/v1/products/7", "")

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rr.Code)
	}
	var resp productResponse
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.ID != 7 || resp.Name != "Headphones" {
		t.Errorf("resp = %+v", resp)
	}
}

func TestCreateProduct_ValidationError400(t *testing.T) {
	body := `{"name":"","description":"d","category":"ELECTRONICS","price":"10","sku":"X"}`
	rr := doRequest(t, newTestRouter(testDeps{}), "POST", "/api/v1/products", body)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rr.Code)
	}
}

func TestCreateProduct_201WithSyncStatus(t *testing.T) {
	body := `{"name":"Headphones","description":"great","category":"ELECTRONICS","price":"199.99","sku":"SM-1"}`
	rr := doRequest(t, newTestRouter(testDeps{}), "POST", "/api/v1/products", body)

	if rr.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201, body: %s", rr.Code, rr.Body.String())
	}
	var resp productWriteResponse
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Product.ID != 1 {
		t.Errorf("ID = %d, want 1", resp.Product.ID)
	}
	if resp.VectorSync != "ok" {
		t.Errorf("vector_sync = %q, want ok", resp.VectorSync)
	}
}

func TestRecommendByQuery_MissingQuery400(t *testing.T) {
	rr := doRequest(t, newTestRouter(testDeps{}), "GET", "/api/v1/recommendations/search", "")

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rr.Code)
	}
}

func TestRecommendByQuery_OK(t *testing.T) {
	deps := testDeps{searcher: &mockSearcher{semanticFn: func(_ context.Context, query string, _ int) ([]domain.Hit, error) {
		if query != "wireless audio" {
			t.Errorf("query = %q", query)
		}
		return []domain.Hit{{Product: domain.Product{ID: 3, Name: "Earbuds"}, Score: 0.9}}, nil
	}}}
	rr := doRequest(t, newTestRouter(deps), "GET", "/api/v1/recommendations/search?q=wireless+audio", "")

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rr.Code)
	}
	var resp productListResponse
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Total != 1 || resp.Items[0].ID != 3 {
		t.Errorf("resp = %+v", resp)
	}
}

func TestSimilar_ReferenceNotFound404(t *testing.T) {
	rr := doRequest(t, newTestRouter(testDeps{}), "GET", "/api/v1/recommendations/similar/12", "")

	if rr.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rr.Code)
	}
}

func TestHistoryRecommendations_EmptyBodyList200(t *testing.T) {
	rr := doRequest(t, newTestRouter(testDeps{}), "POST", "/api/v1/recommendations/history",
		`{"viewed_ids":[],"limit":5}`)

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rr.Code)
	}
	var resp productListResponse
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Total != 0 {
		t.Errorf("total = %d, want 0", resp.Total)
	}
}

func TestAssistantQuery_NoContextReturnsFallback(t *testing.T) {
	rr := doRequest(t, newTestRouter(testDeps{}), "POST", "/api/v1/assistant/query",
		`{"question":"anything waterproof?"}`)

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rr.Code)
	}
	var resp answerResponse
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !strings.Contains(resp.Answer, "couldn't find any products") {
		t.Errorf("answer = %q", resp.Answer)
	}
}

func TestAssistantQuery_WithContext(t *testing.T) {
	deps := testDeps{retriever: &mockRetriever{docs: []domain.Document{
		{ID: 1, Content: "Product: Headphones."},
	}}}
	rr := doRequest(t, newTestRouter(deps), "POST", "/api/v1/assistant/query",
		`{"question":"do they fold?"}`)

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rr.Code)
	}
	var resp answerResponse
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Answer != "helpful answer" {
		t.Errorf("answer = %q", resp.Answer)
	}
}

func TestAssistantQuery_MissingQuestion400(t *testing.T) {
	rr := doRequest(t, newTestRouter(testDeps{}), "POST", "/api/v1/assistant/query", `{}`)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rr.Code)
	}
}

func TestCategoryRecommendations_UnknownCategory400(t *testing.T) {
	rr := doRequest(t, newTestRouter(testDeps{}), "GET", "/api/v1/recommendations/category/GADGETS", "")

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rr.Code)
	}
}

func TestDomainError_LogsThroughRequestLogger(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	reqLogger := zap.New(core)

	catalog := &mockCatalog{getFn: func(context.Context, int64) (domain.Product, error) {
		return domain.Product{}, domain.ErrNotFound
	}}
	handler := newTestRouter(testDeps{catalog: catalog})

	req := httptest.NewRequest("GET", "/api/v1/products/9", http.NoBody)
	req = req.WithContext(logger.ContextWithLogger(req.Context(), reqLogger))
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rr.Code)
	}
	if got := logs.FilterMessage("domain error").Len(); got != 1 {
		t.Errorf("request logger captured %d domain error entries, want 1", got)
	}
}
