// ABOUTME: Request logging middleware for site pages and API endpoints
// ABOUTME: Tags each request with an ID and logs status and timing information

package middleware

import (
	"context"
	"net/http"
	"time"

	"catcare-web/core/interfaces"

	"github.com/google/uuid"
)

// RequestIDHeader carries the request ID on requests and responses
const RequestIDHeader = "X-Request-ID"

// slowRequestThreshold marks requests logged as slow
const slowRequestThreshold = 5 * time.Second

// responseWriter wraps http.ResponseWriter to capture status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	written    bool
}

func (rw *responseWriter) WriteHeader(code int) {
	if !rw.written {
		rw.statusCode = code
		rw.ResponseWriter.WriteHeader(code)
		rw.written = true
	}
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	if !rw.written {
		rw.WriteHeader(http.StatusOK)
	}
	return rw.ResponseWriter.Write(b)
}

// requestIDKey is the context key for the request ID
type requestIDKey struct{}

// WithRequestID returns a context carrying the request ID
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// GetRequestID retrieves the request ID from the context, or ""
func GetRequestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

// RequestLoggingMiddleware creates a middleware that logs all requests.
// An incoming X-Request-ID is reused, otherwise a new one is generated.
func RequestLoggingMiddleware(logger interfaces.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requestID := r.Header.Get(RequestIDHeader)
			if requestID == "" {
				requestID = uuid.New().String()
			}

			w.Header().Set(RequestIDHeader, requestID)
			r = r.WithContext(WithRequestID(r.Context(), requestID))

			start := time.Now()
			wrapped := &responseWriter{
				ResponseWriter: w,
				statusCode:     http.StatusOK,
			}

			logger.Debug("Request started", map[string]interface{}{
				"request_id": requestID,
				"method":     r.Method,
				"path":       r.URL.Path,
				"remote_ip":  extractIP(r, false),
				"user_agent": r.UserAgent(),
			})

			next.ServeHTTP(wrapped, r)

			duration := time.Since(start)
			fields := map[string]interface{}{
				"request_id":  requestID,
				"method":      r.Method,
				"path":        r.URL.Path,
				"status":      wrapped.statusCode,
				"duration_ms": duration.Milliseconds(),
			}

			switch {
			case wrapped.statusCode >= 500:
				logger.Error("Request failed with server error", fields)
			case duration > slowRequestThreshold:
				logger.Warn("Slow request detected", fields)
			default:
				logger.Info("Request completed", fields)
			}
		})
	}
}

// LoggingRoundTripper implements http.RoundTripper with logging of
// outgoing content store calls
type LoggingRoundTripper struct {
	Transport http.RoundTripper
	Logger    interfaces.Logger
}

// RoundTrip logs outgoing HTTP requests. Only the URL is logged, never headers,
// so access tokens stay out of the logs.
func (t *LoggingRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	transport := t.Transport
	if transport == nil {
		transport = http.DefaultTransport
	}

	start := time.Now()
	fields := map[string]interface{}{
		"method": req.Method,
		"url":    req.URL.String(),
	}
	if requestID := GetRequestID(req.Context()); requestID != "" {
		fields["request_id"] = requestID
	}

	resp, err := transport.RoundTrip(req)
	fields["duration_ms"] = time.Since(start).Milliseconds()

	if err != nil {
		fields["error"] = err.Error()
		t.Logger.Warn("Outgoing HTTP request failed", fields)
		return nil, err
	}

	fields["status"] = resp.StatusCode
	t.Logger.Debug("Outgoing HTTP request", fields)

	return resp, nil
}
