package httpx

import (
	"bytes"
	"net/http"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// ResponseCache memoizes successful GET responses for a fixed TTL. It fronts
// the read-through endpoints that proxy the external catalog; everything else
// bypasses it. Construct one per server and wrap only the routes that want it.
type ResponseCache struct {
	store *gocache.Cache
}

type cachedResponse struct {
	status      int
	contentType string
	body        []byte
}

func NewResponseCache(ttl time.Duration) *ResponseCache {
	return &ResponseCache{store: gocache.New(ttl, 2*ttl)}
}

func (c *ResponseCache) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			next.ServeHTTP(w, r)
			return
		}

		key := r.URL.RequestURI()
		if v, ok := c.store.Get(key); ok {
			cached := v.(cachedResponse)
			w.Header().Set("Content-Type", cached.contentType)
			w.Header().Set("X-Cache", "HIT")
			w.WriteHeader(cached.status)
			_, _ = w.Write(cached.body)
			return
		}

		rec := &cacheRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)

		// Only successful responses are worth replaying; errors stay live.
		if rec.status == http.StatusOK {
			c.store.Set(key, cachedResponse{
				status:      rec.status,
				contentType: rec.Header().Get("Content-Type"),
				body:        rec.buf.Bytes(),
			}, gocache.DefaultExpiration)
		}
	})
}

// cacheRecorder tees the response body into a buffer while writing through
// to the client.
type cacheRecorder struct {
	http.ResponseWriter
	status        int
	headerWritten bool
	buf           bytes.Buffer
}

func (rec *cacheRecorder) WriteHeader(code int) {
	if !rec.headerWritten {
		rec.status = code
		rec.headerWritten = true
		rec.ResponseWriter.WriteHeader(code)
	}
}

func (rec *cacheRecorder) Write(b []byte) (int, error) {
	if !rec.headerWritten {
		rec.WriteHeader(http.StatusOK)
	}
	rec.buf.Write(b)
	return rec.ResponseWriter.Write(b)
}
