// ABOUTME: Rate limiting middleware for site pages and API endpoints
// ABOUTME: Implements per-IP token bucket limiting with golang.org/x/time/rate

package middleware

import (
	"net"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// visitor is the limiter state for one client
type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter tracks a token bucket per client IP. Each client may burst up
// to limit requests and refills at limit per window.
type RateLimiter struct {
	mu       sync.Mutex
	visitors map[string]*visitor
	limit    int
	window   time.Duration
	every    rate.Limit
	stop     chan struct{}
	once     sync.Once

	// trustProxy keys clients by forwarding headers instead of the peer address
	trustProxy bool
}

// RateLimiterOption configures a RateLimiter
type RateLimiterOption func(*RateLimiter)

// WithTrustedProxy keys clients by X-Forwarded-For / X-Real-IP. Only enable it
// when a reverse proxy in front of the server sets those headers.
func WithTrustedProxy(trusted bool) RateLimiterOption {
	return func(rl *RateLimiter) {
		rl.trustProxy = trusted
	}
}

// NewRateLimiter creates a new rate limiter. Non-positive arguments are
// raised to one request per second. Clients are keyed by the peer address
// unless WithTrustedProxy is set.
func NewRateLimiter(limit int, window time.Duration, opts ...RateLimiterOption) *RateLimiter {
	if limit <= 0 {
		limit = 1
	}
	if window <= 0 {
		window = time.Second
	}

	rl := &RateLimiter{
		visitors: make(map[string]*visitor),
		limit:    limit,
		window:   window,
		every:    rate.Every(window / time.Duration(limit)),
		stop:     make(chan struct{}),
	}
	for _, opt := range opts {
		opt(rl)
	}

	go rl.cleanup()

	return rl
}

// cleanup forgets clients idle for more than a window
func (rl *RateLimiter) cleanup() {
	ticker := time.NewTicker(rl.window)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			rl.mu.Lock()
			for key, v := range rl.visitors {
				if time.Since(v.lastSeen) > rl.window {
					delete(rl.visitors, key)
				}
			}
			rl.mu.Unlock()
		case <-rl.stop:
			return
		}
	}
}

// Stop ends the cleanup goroutine
func (rl *RateLimiter) Stop() {
	rl.once.Do(func() { close(rl.stop) })
}

// Allow checks if a request from the given key is allowed
func (rl *RateLimiter) Allow(key string) bool {
	rl.mu.Lock()
	v, exists := rl.visitors[key]
	if !exists {
		v = &visitor{limiter: rate.NewLimiter(rl.every, rl.limit)}
		rl.visitors[key] = v
	}
	v.lastSeen = time.Now()
	rl.mu.Unlock()

	return v.limiter.Allow()
}

// extractIP gets the client IP from the request. Forwarding headers are
// client-controlled, so they are read only when trustProxy is set.
func extractIP(r *http.Request, trustProxy bool) string {
	if trustProxy {
		// The first X-Forwarded-For entry is the original client
		if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
			first, _, _ := strings.Cut(xff, ",")
			if ip := strings.TrimSpace(first); ip != "" {
				return ip
			}
		}

		if xri := strings.TrimSpace(r.Header.Get("X-Real-IP")); xri != "" {
			return xri
		}
	}

	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		return host
	}
	return r.RemoteAddr
}

// RateLimitMiddleware creates a middleware that enforces rate limits
func RateLimitMiddleware(limiter *RateLimiter) func(http.Handler) http.Handler {
	limit := strconv.Itoa(limiter.limit)
	retryAfter := strconv.Itoa(int(limiter.window.Seconds()))

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("X-RateLimit-Limit", limit)
			w.Header().Set("X-RateLimit-Window", limiter.window.String())

			if !limiter.Allow(extractIP(r, limiter.trustProxy)) {
				w.Header().Set("Retry-After", retryAfter)
				http.Error(w, "Too many requests. Please try again later.", http.StatusTooManyRequests)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
