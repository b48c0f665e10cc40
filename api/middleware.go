package api

import (
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/killallgit/podcaster-api/api/types"
	"golang.org/x/time/rate"
)

const (
	// DefaultRequestSize caps non-multipart request bodies
	DefaultRequestSize int64 = 1 << 20

	limiterIdleTimeout = 10 * time.Minute
	limiterSweepEvery  = 5 * time.Minute
)

// clientLimiter holds a rate limiter and its last accessed time
type clientLimiter struct {
	limiter *rate.Limiter

	mu       sync.Mutex
	lastSeen time.Time
}

func (cl *clientLimiter) touch(now time.Time) {
	cl.mu.Lock()
	cl.lastSeen = now
	cl.mu.Unlock()
}

func (cl *clientLimiter) idleSince(now time.Time) time.Duration {
	cl.mu.Lock()
	defer cl.mu.Unlock()
	return now.Sub(cl.lastSeen)
}

// CORS allows the configured browser origins to call the API with cookies.
// A "*" entry echoes any origin back.
func CORS(origins []string) gin.HandlerFunc {
	config := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "X-Cache"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}

	var allowed []string
	for _, origin := range origins {
		origin = strings.TrimRight(strings.TrimSpace(origin), "/")
		if origin == "*" {
			config.AllowOriginFunc = func(string) bool { return true }
			allowed = nil
			break
		}
		if origin != "" {
			allowed = append(allowed, origin)
		}
	}
	if config.AllowOriginFunc == nil {
		if len(allowed) == 0 {
			allowed = []string{"http://localhost:5173"}
		}
		config.AllowOrigins = allowed
	}

	return cors.New(config)
}

// RequestSizeLimit caps write bodies at DefaultRequestSize
func RequestSizeLimit() gin.HandlerFunc {
	return RequestSizeLimitWithSize(DefaultRequestSize)
}

// RequestSizeLimitWithSize caps write bodies at maxBytes. Multipart bodies
// are left to the upload middleware, which has its own limit.
func RequestSizeLimitWithSize(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		switch c.Request.Method {
		case http.MethodPost, http.MethodPut, http.MethodPatch:
		default:
			c.Next()
			return
		}
		if strings.HasPrefix(c.ContentType(), "multipart/") {
			c.Next()
			return
		}

		if c.Request.ContentLength > maxBytes {
			c.AbortWithStatusJSON(http.StatusRequestEntityTooLarge, types.ErrorResponse{
				Status:  types.StatusError,
				Message: "Request body too large",
			})
			return
		}
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		c.Next()
	}
}

// PerClientRateLimit limits each client IP to rps requests per second within
// scope. Limiters of different scopes share the map but never a bucket.
func PerClientRateLimit(rateLimiters *sync.Map, cleanupStop chan struct{}, cleanupInitialized *sync.Once, scope string, rps int, burst int) gin.HandlerFunc {
	cleanupInitialized.Do(func() {
		go cleanupOldRateLimiters(rateLimiters, cleanupStop, limiterSweepEvery, limiterIdleTimeout)
	})
	if rps <= 0 {
		rps = 1
	}
	if burst <= 0 {
		burst = 1
	}

	return func(c *gin.Context) {
		now := time.Now()
		value, _ := rateLimiters.LoadOrStore(scope+"|"+c.ClientIP(), &clientLimiter{
			limiter:  rate.NewLimiter(rate.Every(time.Second/time.Duration(rps)), burst),
			lastSeen: now,
		})

		cl := value.(*clientLimiter)
		cl.touch(now)

		if !cl.limiter.Allow() {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, types.ErrorResponse{
				Status:  types.StatusError,
				Message: "Rate limit exceeded. Please slow down your requests.",
			})
			return
		}
		c.Next()
	}
}

func cleanupOldRateLimiters(rateLimiters *sync.Map, cleanupStop chan struct{}, every, maxIdle time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			sweepRateLimiters(rateLimiters, time.Now(), maxIdle)
		case <-cleanupStop:
			return
		}
	}
}

func sweepRateLimiters(rateLimiters *sync.Map, now time.Time, maxIdle time.Duration) {
	rateLimiters.Range(func(key, value interface{}) bool {
		if cl, ok := value.(*clientLimiter); !ok || cl.idleSince(now) > maxIdle {
			rateLimiters.Delete(key)
		}
		return true
	})
}
