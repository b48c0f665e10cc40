package middleware

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/killallgit/podcaster-api/internal/services/cache"
)

const cacheKeyPrefix = "http:"

// CacheConfig holds configuration for cache middleware
type CacheConfig struct {
	Cache      cache.Cache
	DefaultTTL time.Duration
	TTLByPath  map[string]time.Duration // Path-prefix TTLs
	Enabled    bool
}

// CachedResponse represents a cached HTTP response
type CachedResponse struct {
	Status      int         `json:"status"`
	Headers     http.Header `json:"headers"`
	Body        []byte      `json:"body"`
	ContentType string      `json:"content_type"`
	CachedAt    time.Time   `json:"cached_at"`
	ETag        string      `json:"etag"`
}

// responseWriter captures response for caching
type responseWriter struct {
	gin.ResponseWriter
	body   *bytes.Buffer
	status int
}

func (w *responseWriter) Write(data []byte) (int, error) {
	w.body.Write(data)
	return w.ResponseWriter.Write(data)
}

func (w *responseWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}

// CacheMiddleware serves repeated GET requests from the cache. Only 200
// responses are stored.
func CacheMiddleware(config CacheConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !config.Enabled || config.Cache == nil || c.Request.Method != http.MethodGet {
			c.Next()
			return
		}

		if shouldBypassCache(c.Request) {
			c.Header("X-Cache", "BYPASS")
			c.Next()
			return
		}

		ctx := c.Request.Context()
		key := GenerateCacheKey(c.Request)

		if data, found := config.Cache.Get(ctx, key); found {
			var cached CachedResponse
			if err := json.Unmarshal(data, &cached); err == nil {
				if match := c.GetHeader("If-None-Match"); match != "" && match == cached.ETag {
					c.Header("ETag", cached.ETag)
					c.AbortWithStatus(http.StatusNotModified)
					return
				}
				for name, values := range cached.Headers {
					for _, value := range values {
						c.Writer.Header().Add(name, value)
					}
				}
				c.Header("X-Cache", "HIT")
				c.Header("ETag", cached.ETag)
				c.Header("Age", fmt.Sprintf("%d", int(time.Since(cached.CachedAt).Seconds())))
				c.Data(cached.Status, cached.ContentType, cached.Body)
				c.Abort()
				return
			}
			log.Printf("[WARN] Dropping unreadable cache entry %s", key)
			_ = config.Cache.Delete(ctx, key)
		}

		c.Header("X-Cache", "MISS")
		w := &responseWriter{
			ResponseWriter: c.Writer,
			body:           bytes.NewBuffer(nil),
			status:         http.StatusOK,
		}
		c.Writer = w

		c.Next()

		if w.status != http.StatusOK || w.body.Len() == 0 {
			return
		}

		cached := CachedResponse{
			Status:      w.status,
			Headers:     storedHeaders(w.Header()),
			Body:        w.body.Bytes(),
			ContentType: w.Header().Get("Content-Type"),
			CachedAt:    time.Now(),
			ETag:        generateETag(w.body.Bytes()),
		}
		data, err := json.Marshal(cached)
		if err != nil {
			return
		}
		if err := config.Cache.Set(ctx, key, data, ttlFor(config, c.Request.URL.Path)); err != nil {
			log.Printf("[WARN] Failed to cache %s: %v", key, err)
		}
	}
}

// InvalidateCache clears cached responses after any successful write so
// lists never outlive the podcasts they show
func InvalidateCache(store cache.Cache) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if store == nil || c.Request.Method == http.MethodGet || c.Request.Method == http.MethodHead {
			return
		}
		if status := c.Writer.Status(); status < 200 || status >= 300 {
			return
		}
		if err := store.Clear(c.Request.Context()); err != nil {
			log.Printf("[WARN] Failed to clear response cache: %v", err)
		}
	}
}

func ttlFor(config CacheConfig, path string) time.Duration {
	if ttl, ok := config.TTLByPath[path]; ok {
		return ttl
	}
	// Longest matching prefix wins
	best, ttl := -1, config.DefaultTTL
	for prefix, prefixTTL := range config.TTLByPath {
		if strings.HasPrefix(path, prefix) && len(prefix) > best {
			best, ttl = len(prefix), prefixTTL
		}
	}
	return ttl
}

// storedHeaders drops the per-response headers the middleware sets itself
func storedHeaders(h http.Header) http.Header {
	out := h.Clone()
	for _, name := range []string{"X-Cache", "Age", "Content-Length", "Set-Cookie"} {
		out.Del(name)
	}
	return out
}

// shouldBypassCache checks if cache should be bypassed based on request headers
func shouldBypassCache(req *http.Request) bool {
	if req.Header.Get("Pragma") == "no-cache" {
		return true
	}
	for _, directive := range strings.Split(strings.ToLower(req.Header.Get("Cache-Control")), ",") {
		switch strings.TrimSpace(directive) {
		case "no-cache", "no-store", "max-age=0":
			return true
		}
	}
	return false
}

// GenerateCacheKey builds a key from the path and the sorted query
func GenerateCacheKey(req *http.Request) string {
	parts := []string{req.URL.Path}

	params := req.URL.Query()
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		for _, v := range params[k] {
			parts = append(parts, k+"="+v)
		}
	}

	return cacheKeyPrefix + strings.Join(parts, ":")
}

func generateETag(body []byte) string {
	hash := sha256.Sum256(body)
	return fmt.Sprintf(`"%s"`, hex.EncodeToString(hash[:16]))
}
