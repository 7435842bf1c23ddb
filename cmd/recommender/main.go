package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/gemacjr/product-recommender-engine/internal/config"
	logpkg "github.com/gemacjr/product-recommender-engine/internal/logger"
	"github.com/gemacjr/product-recommender-engine/internal/metrics"
	"github.com/gemacjr/product-recommender-engine/internal/postgres"
	"github.com/gemacjr/product-recommender-engine/internal/repository/catalog"
	"github.com/gemacjr/product-recommender-engine/internal/repository/embcache"
	"github.com/gemacjr/product-recommender-engine/internal/repository/vecstore"
	chiTransport "github.com/gemacjr/product-recommender-engine/internal/transport/chi"
	openaiTransport "github.com/gemacjr/product-recommender-engine/internal/transport/openai"
	healthuc "github.com/gemacjr/product-recommender-engine/internal/usecase/health"
	productuc "github.com/gemacjr/product-recommender-engine/internal/usecase/product"
	raguc "github.com/gemacjr/product-recommender-engine/internal/usecase/rag"
	recommenduc "github.com/gemacjr/product-recommender-engine/internal/usecase/recommend"
	vectorstoreuc "github.com/gemacjr/product-recommender-engine/internal/usecase/vectorstore"
	"github.com/gemacjr/product-recommender-engine/internal/version"
)

func main() {
	env := config.GetEnv()

	cfg, err := config.Load(env)
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	logger, err := logpkg.NewLogger(env, cfg.Logging.Level)
	if err != nil {
		panic("failed to create logger: " + err.Error())
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Starting recommender API server",
		zap.String("version", version.Version),
		zap.String("commit", version.Commit),
		zap.String("env", env),
		zap.Int("http_port", cfg.HTTP.Port),
		zap.String("postgres_host", cfg.Postgres.Host),
		zap.String("qdrant_host", cfg.Qdrant.Host),
	)

	ctx := context.Background()

	// Catalog database
	db, err := postgres.Connect(ctx, postgres.Config{
		Host:     cfg.Postgres.Host,
		Port:     cfg.Postgres.Port,
		User:     cfg.Postgres.User,
		Password: cfg.Postgres.Password,
		DBName:   cfg.Postgres.DBName,
		SSLMode:  cfg.Postgres.SSLMode,
	})
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	if err := db.RunMigrations(logger); err != nil {
		logger.Fatal("Failed to run migrations", zap.Error(err))
	}
	logger.Info("Connected to database")

	// Vector index
	index, err := vecstore.New(vecstore.Config{
		Host:       cfg.Qdrant.Host,
		Port:       cfg.Qdrant.Port,
		APIKey:     cfg.Qdrant.APIKey,
		UseTLS:     cfg.Qdrant.UseTLS,
		Collection: cfg.Qdrant.Collection,
	})
	if err != nil {
		logger.Fatal("Failed to create vector index", zap.Error(err))
	}
	defer func() { _ = index.Close() }()

	if err := index.EnsureCollection(ctx, uint64(cfg.Qdrant.VectorSize)); err != nil {
		logger.Fatal("Failed to ensure vector collection", zap.Error(err))
	}
	logger.Info("Vector collection ready", zap.String("collection", cfg.Qdrant.Collection))

	metrics.RegisterAIMetrics()

	// Embedder chain: OpenAI provider, optionally wrapped by a Redis cache.
	providerCfg := &openaiTransport.Config{
		APIKey:      cfg.OpenAI.APIKey,
		BaseURL:     cfg.OpenAI.BaseURL,
		Model:       cfg.OpenAI.EmbeddingModel,
		Dimensions:  cfg.OpenAI.Dimensions,
		ChatModel:   cfg.OpenAI.ChatModel,
		Temperature: cfg.OpenAI.Temperature,
		Logger:      logger,
	}
	client := openaiTransport.NewClient(providerCfg)
	baseEmbedder := openaiTransport.NewEmbedder(client, providerCfg)
	generator := openaiTransport.NewGenerator(client, providerCfg)

	embedder := vectorstoreuc.Embedder(baseEmbedder)
	if len(cfg.Redis.Addrs) > 0 {
		cache, err := embcache.NewRedisStore(cfg.Redis.Addrs, cfg.Redis.Password)
		if err != nil {
			logger.Fatal("Failed to connect to embedding cache", zap.Error(err))
		}
		defer cache.Close()

		embedder = embcache.New(
			baseEmbedder, cache, cfg.OpenAI.EmbeddingModel,
			time.Duration(cfg.Redis.CacheTTLH)*time.Hour,
			metrics.EmbeddingCacheTotal, logger,
		)
		logger.Info("Embedding cache enabled", zap.Strings("addrs", cfg.Redis.Addrs))
	}

	// Repositories and use case services
	catalogRepo := catalog.NewRepo(db.Pool)

	vectorSvc := vectorstoreuc.New(index, embedder, cfg.Recommendation.SimilarityThreshold)
	productSvc := productuc.New(catalogRepo, vectorSvc, generator, productuc.Settings{
		DefaultPageSize: cfg.Product.DefaultPageSize,
		MaxPageSize:     cfg.Product.MaxPageSize,
	}, logger)
	recommendSvc := recommenduc.New(vectorSvc, catalogRepo, recommenduc.Settings{
		MaxResults: cfg.Recommendation.MaxResults,
	}, logger)
	ragSvc := raguc.New(vectorSvc, generator, raguc.Settings{
		ContextWindowSize: cfg.RAG.ContextWindowSize,
	}, logger)
	healthSvc := healthuc.New(catalogRepo, index, baseEmbedder)

	server := chiTransport.NewServer(productSvc, recommendSvc, ragSvc, healthSvc, logger)

	r := chi.NewRouter()
	r.Use(jsonRecoverer(logger))
	r.Use(chiMiddleware.RequestID)
	r.Use(wideEventMiddleware(logger))
	r.Use(chiTransport.BearerAuthMiddleware(cfg.Auth.APIKeys))
	r.Use(metrics.Middleware())
	server.Routes(r)

	addr := fmt.Sprintf(":%d", cfg.HTTP.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.HTTP.ReadTimeoutSec) * time.Second,
		WriteTimeout: time.Duration(cfg.HTTP.WriteTimeoutSec) * time.Second,
	}

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Info("Starting HTTP server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	<-quit
	logger.Info("Received shutdown signal")

	shutdownCtx, cancel := context.WithTimeout(context.Background(),
		time.Duration(cfg.HTTP.ShutdownSec)*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Error during shutdown", zap.Error(err))
	}

	logger.Info("Server stopped gracefully")
}

// jsonRecoverer is a recovery middleware that returns JSON instead of a plain text stacktrace.
func jsonRecoverer(logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rvr := recover(); rvr != nil {
					logger.Error("panic recovered",
						zap.Any("panic", rvr),
						zap.Stack("stacktrace"),
					)
					w.Header().Set("Content-Type", "application/json")
					w.WriteHeader(http.StatusInternalServerError)
					_ = json.NewEncoder(w).Encode(map[string]string{
						"code":    "internal_error",
						"message": "internal error",
					})
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

// wideEventMiddleware emits a canonical log line per request and propagates X-Request-ID.
func wideEventMiddleware(logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			requestID := chiMiddleware.GetReqID(r.Context())
			if requestID != "" {
				w.Header().Set("X-Request-ID", requestID)
			}

			reqLogger := logger.With(zap.String("request_id", requestID))
			ctx := logpkg.ContextWithLogger(r.Context(), reqLogger)

			ww := chiMiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r.WithContext(ctx))

			reqLogger.Info("http_request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Duration("latency", time.Since(start)),
				zap.String("ip", r.RemoteAddr),
				zap.Int64("content_length", r.ContentLength),
				zap.String("user_agent", r.UserAgent()),
				zap.Int("response_bytes", ww.BytesWritten()),
			)
		})
	}
}
