package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
)

func newTestClient(t *testing.T, handler http.HandlerFunc, opts ...Option) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c, err := New(srv.URL, opts...)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return c
}

func TestNewRequiresBaseURL(t *testing.T) {
	if _, err := New(""); err == nil {
		t.Fatal("expected error for empty base URL")
	}
}

func TestAuthAndUserAgentHeaders(t *testing.T) {
	var gotAuth, gotUA string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotUA = r.Header.Get("User-Agent")
		_, _ = w.Write([]byte(`{"items":[],"total":0}`))
	}, WithAPIKey("secret"), WithUserAgent("test-agent"))

	if _, err := c.Trending(context.Background(), 5); err != nil {
		t.Fatalf("Trending: %v", err)
	}
	if gotAuth != "Bearer secret" {
		t.Errorf("expected bearer auth header, got %q", gotAuth)
	}
	if gotUA != "test-agent" {
		t.Errorf("expected custom user agent, got %q", gotUA)
	}
}

func TestSimilarPathAndQuery(t *testing.T) {
	var gotPath, gotLimit string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotLimit = r.URL.Query().Get("limit")
		_, _ = w.Write([]byte(`{"items":[{"id":7,"name":"Widget","price":"19.99"}],"total":1}`))
	})

	products, err := c.Similar(context.Background(), 42, 10)
	if err != nil {
		t.Fatalf("Similar: %v", err)
	}
	if gotPath != "/api/v1/recommendations/similar/42" {
		t.Errorf("unexpected path %q", gotPath)
	}
	if gotLimit != "10" {
		t.Errorf("expected limit=10, got %q", gotLimit)
	}
	if len(products) != 1 || products[0].ID != 7 {
		t.Fatalf("unexpected products: %+v", products)
	}
	if !products[0].Price.Equal(decimal.RequireFromString("19.99")) {
		t.Errorf("expected price 19.99, got %s", products[0].Price)
	}
}

func TestNotFoundMapsToSentinel(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"code":"not_found","message":"product 99 not found"}`))
	})

	_, err := c.Product(context.Background(), 99)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *APIError, got %T", err)
	}
	if apiErr.Code != "not_found" {
		t.Errorf("expected code not_found, got %q", apiErr.Code)
	}
}

func TestNonJSONErrorBody(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("upstream exploded"))
	})

	_, err := c.Trending(context.Background(), 0)
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *APIError, got %v", err)
	}
	if apiErr.StatusCode != http.StatusBadGateway {
		t.Errorf("expected status 502, got %d", apiErr.StatusCode)
	}
	if apiErr.Message != "upstream exploded" {
		t.Errorf("unexpected message %q", apiErr.Message)
	}
}

func TestFromHistorySendsBody(t *testing.T) {
	var got struct {
		ViewedIDs []int64 `json:"viewed_ids"`
		Limit     int     `json:"limit"`
	}
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode request: %v", err)
		}
		_, _ = w.Write([]byte(`{"items":[],"total":0}`))
	})

	if _, err := c.FromHistory(context.Background(), []int64{1, 2, 3}, 5); err != nil {
		t.Fatalf("FromHistory: %v", err)
	}
	if len(got.ViewedIDs) != 3 || got.Limit != 5 {
		t.Errorf("unexpected request body: %+v", got)
	}
}

func TestCreateProductDecodesWriteResult(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"product":{"id":5,"name":"Lamp","price":"35.00"},"vector_sync":"ok"}`))
	})

	res, err := c.CreateProduct(context.Background(), ProductInput{Name: "Lamp"})
	if err != nil {
		t.Fatalf("CreateProduct: %v", err)
	}
	if res.Product.ID != 5 || res.VectorSync != "ok" {
		t.Errorf("unexpected result: %+v", res)
	}
}

func TestAskUnwrapsAnswer(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/assistant/query" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		_, _ = w.Write([]byte(`{"answer":"We stock three laptops under $1000."}`))
	})

	answer, err := c.Ask(context.Background(), "laptops under $1000?")
	if err != nil {
		t.Fatalf("Ask: %v", err)
	}
	if answer != "We stock three laptops under $1000." {
		t.Errorf("unexpected answer %q", answer)
	}
}

func TestHealthzDegraded(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte(`{"status":"degraded","checks":{"database":"error"}}`))
	})

	_, err := c.Healthz(context.Background())
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *APIError, got %v", err)
	}
	if apiErr.StatusCode != http.StatusServiceUnavailable {
		t.Errorf("expected 503, got %d", apiErr.StatusCode)
	}
}
