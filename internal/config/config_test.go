package config

import "testing"

func validConfig() Config {
	return Config{
		HTTP:     HTTPConfig{Port: 8080},
		Postgres: PostgresConfig{Host: "localhost", DBName: "catalog"},
		Qdrant:   QdrantConfig{Host: "localhost"},
	}
}

func TestValidate_InvalidPort(t *testing.T) {
	cfg := validConfig()
	cfg.HTTP.Port = 0

	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for invalid port")
	}
}

func TestValidate_MissingPostgresHost(t *testing.T) {
	cfg := validConfig()
	cfg.Postgres.Host = ""

	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for missing postgres host")
	}
}

func TestValidate_MissingQdrantHost(t *testing.T) {
	cfg := validConfig()
	cfg.Qdrant.Host = ""

	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for missing qdrant host")
	}
}

func TestValidate_ThresholdAboveOne(t *testing.T) {
	cfg := validConfig()
	cfg.Recommendation.SimilarityThreshold = 1.5

	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for similarity threshold above 1")
	}
}

func TestApplyDefaults(t *testing.T) {
	cfg := Config{}
	cfg.ApplyDefaults()

	if cfg.HTTP.ReadTimeoutSec != 10 {
		t.Errorf("expected ReadTimeoutSec=10, got %d", cfg.HTTP.ReadTimeoutSec)
	}
	if cfg.Postgres.Port != 5432 {
		t.Errorf("expected postgres port 5432, got %d", cfg.Postgres.Port)
	}
	if cfg.Qdrant.Collection != "products" {
		t.Errorf("expected collection 'products', got %q", cfg.Qdrant.Collection)
	}
	if cfg.Product.DefaultPageSize != 10 {
		t.Errorf("expected DefaultPageSize=10, got %d", cfg.Product.DefaultPageSize)
	}
	if cfg.Product.MaxPageSize != 100 {
		t.Errorf("expected MaxPageSize=100, got %d", cfg.Product.MaxPageSize)
	}
	if cfg.Recommendation.SimilarityThreshold != 0.7 {
		t.Errorf("expected SimilarityThreshold=0.7, got %f", cfg.Recommendation.SimilarityThreshold)
	}
	if cfg.Recommendation.MaxResults != 20 {
		t.Errorf("expected MaxResults=20, got %d", cfg.Recommendation.MaxResults)
	}
	if cfg.RAG.ContextWindowSize != 5 {
		t.Errorf("expected ContextWindowSize=5, got %d", cfg.RAG.ContextWindowSize)
	}
	if cfg.OpenAI.Temperature != 0.3 {
		t.Errorf("expected Temperature=0.3, got %f", cfg.OpenAI.Temperature)
	}
}

func TestApplyDefaults_NoOverride(t *testing.T) {
	cfg := Config{
		Product:        ProductConfig{DefaultPageSize: 25, MaxPageSize: 50},
		Recommendation: RecommendationConfig{SimilarityThreshold: 0.5, MaxResults: 10},
		RAG:            RAGConfig{ContextWindowSize: 8},
	}
	cfg.ApplyDefaults()

	if cfg.Product.DefaultPageSize != 25 {
		t.Errorf("expected DefaultPageSize=25, got %d", cfg.Product.DefaultPageSize)
	}
	if cfg.Recommendation.SimilarityThreshold != 0.5 {
		t.Errorf("expected SimilarityThreshold=0.5, got %f", cfg.Recommendation.SimilarityThreshold)
	}
	if cfg.Recommendation.MaxResults != 10 {
		t.Errorf("expected MaxResults=10, got %d", cfg.Recommendation.MaxResults)
	}
	if cfg.RAG.ContextWindowSize != 8 {
		t.Errorf("expected ContextWindowSize=8, got %d", cfg.RAG.ContextWindowSize)
	}
}

func TestExpandEnvVars(t *testing.T) {
	t.Setenv("RECO_TEST_KEY", "secret")

	got := string(expandEnvVars([]byte("api_key: ${RECO_TEST_KEY}\nmodel: ${RECO_TEST_MODEL:-gpt-4o-mini}")))
	want := "api_key: secret\nmodel: gpt-4o-mini"
	if got != want {
		t.Errorf("expandEnvVars:\ngot:  %q\nwant: %q", got, want)
	}
}
