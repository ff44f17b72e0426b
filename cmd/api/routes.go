package main

import (
	"context"
	"net/http"
	"time"

	"booksapi/internal/book"
	"booksapi/internal/config"
	"booksapi/internal/httpx"
)

type pinger interface {
	Ping(ctx context.Context) error
}

// newRouter registers the API routes. The response cache fronts the two
// read-through catalog endpoints only; passing a nil cache disables it,
// which is how tests run.
func newRouter(bookHandler *book.HTTPHandler, cache *httpx.ResponseCache, dbPing pinger, cfg config.Config) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	mux.HandleFunc("/readyz", func(w http.ResponseWriter, r *http.Request) {
		if dbPing == nil {
			http.Error(w, "db not configured", http.StatusServiceUnavailable)
			return
		}
		ctx, cancel := context.WithTimeout(r.Context(), 500*time.Millisecond)
		defer cancel()
		if err := dbPing.Ping(ctx); err != nil {
			http.Error(w, "db not ready", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ready"))
	})

	cached := func(h http.Handler) http.Handler {
		if cache == nil {
			return h
		}
		return cache.Middleware(h)
	}

	mux.Handle("GET /books", cached(http.HandlerFunc(bookHandler.Search)))
	mux.HandleFunc("GET /books/top-rated", bookHandler.TopRated)
	mux.Handle("GET /books/{book_id}", cached(http.HandlerFunc(bookHandler.GetBook)))
	mux.HandleFunc("GET /books/{book_id}/monthly-rating", bookHandler.MonthlyRating)
	mux.HandleFunc("POST /books/{book_id}/review", bookHandler.CreateReview)

	if cfg.ShowDocs() {
		registerDocs(mux)
	}

	return mux
}
