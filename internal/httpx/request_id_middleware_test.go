package httpx

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRequestIDMiddleware(t *testing.T) {
	t.Run("mints an id and exposes it to the handler", func(t *testing.T) {
		var seen string
		wrapped := RequestIDMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			seen = RequestIDFrom(r)
		}))

		w := httptest.NewRecorder()
		wrapped.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/books?search=ghosts", nil))

		assert.NotEmpty(t, seen)
		assert.Equal(t, seen, w.Header().Get("X-Request-Id"))
	})

	t.Run("keeps a client-supplied id", func(t *testing.T) {
		wrapped := RequestIDMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

		r := httptest.NewRequest(http.MethodGet, "/books?search=ghosts", nil)
		r.Header.Set("X-Request-Id", "caller-id-1")
		w := httptest.NewRecorder()
		wrapped.ServeHTTP(w, r)

		assert.Equal(t, "caller-id-1", w.Header().Get("X-Request-Id"))
	})
}
