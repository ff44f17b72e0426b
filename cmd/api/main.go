package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"booksapi/db"
	"booksapi/internal/book"
	"booksapi/internal/config"
	"booksapi/internal/httpx"
	"booksapi/internal/platform/gutendex"
	"booksapi/internal/review"
)

func main() {
	_ = godotenv.Load(".env.local")
	cfg := config.Load()

	logger := mustBuildLogger(cfg.Environment)
	defer func() { _ = logger.Sync() }()

	pool := mustOpenDB(cfg.DatabaseDSN, logger)
	defer pool.Close()

	// Schema is applied idempotently on every start.
	migrationDB := stdlib.OpenDBFromPool(pool)
	if err := db.Up(migrationDB); err != nil {
		logger.Fatal("migrations failed", zap.Error(err))
	}
	_ = migrationDB.Close()

	catalog := gutendex.NewClient(cfg.ExternalAPIURL, cfg.ProjectURL, "booksapi/1.0", 5)
	reviews := review.NewPostgresRepo(pool)
	bookHandler := book.NewHTTPHandler(book.NewService(catalog, reviews))

	var cache *httpx.ResponseCache
	if !cfg.CacheDisabled {
		cache = httpx.NewResponseCache(cfg.CacheTTL)
	}

	mux := newRouter(bookHandler, cache, pool, cfg)
	handler := httpx.RequestIDMiddleware(
		httpx.AccessLogMiddleware(logger)(
			httpx.RecoveryMiddleware(logger)(mux),
		),
	)

	server := &http.Server{
		Addr:         cfg.Addr,
		Handler:      handler,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("starting server",
			zap.String("addr", cfg.Addr),
			zap.String("environment", cfg.Environment),
		)
		serverErr <- server.ListenAndServe()
	}()

	select {
	case err := <-serverErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server error", zap.Error(err))
		}
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("shutdown error", zap.Error(err))
		}
		logger.Info("server stopped")
	}
}

func mustBuildLogger(environment string) *zap.Logger {
	var (
		logger *zap.Logger
		err    error
	)
	if environment == "local" {
		logger, err = zap.NewDevelopment()
	} else {
		logger, err = zap.NewProduction()
	}
	if err != nil {
		panic(err)
	}
	return logger
}

func mustOpenDB(dsn string, logger *zap.Logger) *pgxpool.Pool {
	ctx := context.Background()
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		logger.Fatal("cannot create db pool", zap.Error(err))
	}
	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		logger.Fatal("cannot ping database", zap.Error(err))
	}
	logger.Info("database connection OK")
	return pool
}
