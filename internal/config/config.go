package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"runtime"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds the recommender API configuration.
type Config struct {
	HTTP           HTTPConfig           `yaml:"http"`
	Postgres       PostgresConfig       `yaml:"postgres"`
	Qdrant         QdrantConfig         `yaml:"qdrant"`
	Redis          RedisConfig          `yaml:"redis"`
	OpenAI         OpenAIConfig         `yaml:"openai"`
	Auth           AuthConfig           `yaml:"auth"`
	Product        ProductConfig        `yaml:"product"`
	Recommendation RecommendationConfig `yaml:"recommendation"`
	RAG            RAGConfig            `yaml:"rag"`
	Logging        LoggingConfig        `yaml:"logging"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error (default: determined by env)
}

// AuthConfig holds API authentication settings.
type AuthConfig struct {
	APIKeys []string `yaml:"api_keys"`
}

// HTTPConfig holds HTTP server settings.
type HTTPConfig struct {
	Port            int `yaml:"port"`
	ReadTimeoutSec  int `yaml:"read_timeout_sec"`
	WriteTimeoutSec int `yaml:"write_timeout_sec"`
	ShutdownSec     int `yaml:"shutdown_timeout_sec"`
}

// PostgresConfig holds catalog database connection settings.
type PostgresConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	DBName   string `yaml:"dbname"`
	SSLMode  string `yaml:"sslmode"`
}

// QdrantConfig holds vector store connection settings.
type QdrantConfig struct {
	Host       string `yaml:"host"`
	Port       int    `yaml:"port"`
	APIKey     string `yaml:"api_key"`
	UseTLS     bool   `yaml:"use_tls"`
	Collection string `yaml:"collection"`
	VectorSize int    `yaml:"vector_size"`
}

// RedisConfig holds the embedding cache settings. Empty addrs disable the cache.
type RedisConfig struct {
	Addrs     []string `yaml:"addrs"`
	Password  string   `yaml:"password"`
	CacheTTLH int      `yaml:"cache_ttl_hours"`
}

// OpenAIConfig holds embedding and chat provider settings.
type OpenAIConfig struct {
	APIKey         string  `yaml:"api_key"`
	BaseURL        string  `yaml:"base_url"`
	EmbeddingModel string  `yaml:"embedding_model"`
	Dimensions     int     `yaml:"dimensions"`
	ChatModel      string  `yaml:"chat_model"`
	Temperature    float32 `yaml:"temperature"`
}

// ProductConfig holds catalog listing limits.
type ProductConfig struct {
	DefaultPageSize int `yaml:"default_page_size"`
	MaxPageSize     int `yaml:"max_page_size"`
}

// RecommendationConfig holds ranking engine settings. Values are read once at
// startup and injected into the engine; nothing reads them ambiently.
type RecommendationConfig struct {
	SimilarityThreshold float64 `yaml:"similarity_threshold"`
	MaxResults          int     `yaml:"max_results"`
}

// RAGConfig holds retrieval-augmented generation settings.
type RAGConfig struct {
	ContextWindowSize int `yaml:"context_window_size"`
}

// Load reads configuration from a YAML file by environment name (local, dev, prod).
func Load(env string) (Config, error) {
	configPath := findConfigPath(env)

	data, err := os.ReadFile(filepath.Clean(configPath))
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config %s: %w", configPath, err)
	}

	// Substitute env variables of the form ${VAR}
	data = expandEnvVars(data)

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.ApplyDefaults()

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// MustLoad loads configuration or panics.
func MustLoad(env string) Config {
	cfg, err := Load(env)
	if err != nil {
		panic(err)
	}
	return cfg
}

// GetEnv returns the current environment from the ENV variable, defaulting to "local".
func GetEnv() string {
	if env := os.Getenv("ENV"); env != "" {
		return env
	}
	return "local"
}

// ApplyDefaults fills empty fields with default values.
func (c *Config) ApplyDefaults() {
	if c.HTTP.ReadTimeoutSec <= 0 {
		c.HTTP.ReadTimeoutSec = 10
	}
	if c.HTTP.WriteTimeoutSec <= 0 {
		c.HTTP.WriteTimeoutSec = 30
	}
	if c.HTTP.ShutdownSec <= 0 {
		c.HTTP.ShutdownSec = 10
	}
	if c.Postgres.Port <= 0 {
		c.Postgres.Port = 5432
	}
	if c.Postgres.SSLMode == "" {
		c.Postgres.SSLMode = "disable"
	}
	if c.Qdrant.Port <= 0 {
		c.Qdrant.Port = 6334
	}
	if c.Qdrant.Collection == "" {
		c.Qdrant.Collection = "products"
	}
	if c.Qdrant.VectorSize <= 0 {
		c.Qdrant.VectorSize = 1536
	}
	if c.Redis.CacheTTLH <= 0 {
		c.Redis.CacheTTLH = 24 * 7
	}
	if c.OpenAI.EmbeddingModel == "" {
		c.OpenAI.EmbeddingModel = "text-embedding-3-small"
	}
	if c.OpenAI.ChatModel == "" {
		c.OpenAI.ChatModel = "gpt-4o-mini"
	}
	if c.OpenAI.Temperature <= 0 {
		c.OpenAI.Temperature = 0.3
	}
	if c.Product.DefaultPageSize <= 0 {
		c.Product.DefaultPageSize = 10
	}
	if c.Product.MaxPageSize <= 0 {
		c.Product.MaxPageSize = 100
	}
	if c.Recommendation.SimilarityThreshold <= 0 {
		c.Recommendation.SimilarityThreshold = 0.7
	}
	if c.Recommendation.MaxResults <= 0 {
		c.Recommendation.MaxResults = 20
	}
	if c.RAG.ContextWindowSize <= 0 {
		c.RAG.ContextWindowSize = 5
	}
}

// Validate checks the configuration for correctness.
func (c *Config) Validate() error {
	if c.HTTP.Port <= 0 || c.HTTP.Port > 65535 {
		return fmt.Errorf("http.port must be between 1 and 65535, got %d", c.HTTP.Port)
	}
	if c.Postgres.Host == "" {
		return fmt.Errorf("postgres.host is required")
	}
	if c.Postgres.DBName == "" {
		return fmt.Errorf("postgres.dbname is required")
	}
	if c.Qdrant.Host == "" {
		return fmt.Errorf("qdrant.host is required")
	}
	if c.Recommendation.SimilarityThreshold > 1 {
		return fmt.Errorf(
			"recommendation.similarity_threshold must be at most 1, got %f",
			c.Recommendation.SimilarityThreshold,
		)
	}
	return nil
}

// findConfigPath locates the config file.
func findConfigPath(env string) string {
	filename := fmt.Sprintf("%s.yaml", env)

	// 1. Check ./config/
	if path := filepath.Join("config", filename); fileExists(path) {
		return path
	}

	// 2. Check relative to the source file
	_, b, _, _ := runtime.Caller(0)
	projectRoot := filepath.Dir(filepath.Dir(filepath.Dir(b))) // internal/config -> project root
	if path := filepath.Join(projectRoot, "config", filename); fileExists(path) {
		return path
	}

	// 3. Fallback to ./config/
	return filepath.Join("config", filename)
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// expandEnvVars replaces ${VAR} and ${VAR:-default} with environment variable values.
var envVarRegex = regexp.MustCompile(`\$\{([^}]+)\}`)

func expandEnvVars(data []byte) []byte {
	return envVarRegex.ReplaceAllFunc(data, func(match []byte) []byte {
		expr := string(match[2 : len(match)-1]) // strip ${ and }
		varName, defaultVal, hasDefault := strings.Cut(expr, ":-")
		val := os.Getenv(varName)
		if val == "" && hasDefault {
			val = defaultVal
		}
		return []byte(val)
	})
}
