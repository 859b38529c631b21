package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/rs/cors"

	"versekids/internal/security"
)

// ContextKey is a custom type for context keys to avoid collisions
type ContextKey string

const AccountContextKey ContextKey = "account"

// Middleware holds dependencies for middleware functions
type Middleware struct {
	tokens       *security.TokenIssuer
	adminKeyHash string
	limiter      *security.RateLimiter
	logger       *slog.Logger
}

// NewMiddleware creates a new middleware instance
func NewMiddleware(tokens *security.TokenIssuer, adminKeyHash string, limiter *security.RateLimiter, logger *slog.Logger) *Middleware {
	return &Middleware{
		tokens:       tokens,
		adminKeyHash: adminKeyHash,
		limiter:      limiter,
		logger:       logger,
	}
}

// RequireAccount is middleware that requires a valid bearer token
func (m *Middleware) RequireAccount(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token, err := security.BearerToken(r)
		if err != nil {
			respondWithError(w, m.logger, http.StatusUnauthorized, ErrUnauthorized, "missing token", err)
			return
		}

		claims, err := m.tokens.Verify(token)
		if err != nil {
			respondWithError(w, m.logger, http.StatusUnauthorized, ErrUnauthorized, "invalid token", err)
			return
		}

		ctx := context.WithValue(r.Context(), AccountContextKey, claims.Subject)
		next(w, r.WithContext(ctx))
	}
}

// RequireAdmin is middleware that requires the administrator key
func (m *Middleware) RequireAdmin(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !security.CheckAdminKey(m.adminKeyHash, r.Header.Get(AdminKeyHeader)) {
			m.logger.Warn("rejected admin request", "path", r.URL.Path, "ip", security.GetClientIP(r))
			respondWithError(w, m.logger, http.StatusUnauthorized, ErrUnauthorized, "", nil)
			return
		}
		next(w, r)
	}
}

// RateLimit limits requests per account, or per client IP when the request
// is anonymous
func (m *Middleware) RateLimit(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		key := GetAccountIDFromContext(r.Context())
		if key == "" {
			key = security.GetClientIP(r)
		}
		if !m.limiter.Allow(key) {
			w.Header().Set("Retry-After", "60")
			respondWithError(w, m.logger, http.StatusTooManyRequests, ErrTooManyRequests, "", nil)
			return
		}
		next(w, r)
	}
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// Logging middleware logs HTTP requests
func Logging(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(rec, r)

			logger.Info("request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", rec.status,
				"duration", time.Since(start),
			)
		})
	}
}

// CORS allows the browser front end to call the API
func CORS(origins []string) func(http.Handler) http.Handler {
	c := cors.New(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete},
		AllowedHeaders: []string{"Authorization", "Content-Type", AdminKeyHeader},
		MaxAge:         600,
	})
	return c.Handler
}

// GetAccountIDFromContext retrieves the account ID from the request context
func GetAccountIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(AccountContextKey).(string)
	return id
}
