package middlewares

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/ivmatveev/car-rental-api/internal/jwt"
	"github.com/ivmatveev/car-rental-api/internal/logger"
)

// Tokener defines the minimal interface needed by the middleware.
type Tokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// unauthorizedResponse is the envelope written for every rejected request.
// A single shape for all failure reasons keeps the middleware from acting
// as a token oracle.
type unauthorizedResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// AuthMiddleware returns a middleware that verifies the bearer token and
// attaches its claims to the request context. It is the single
// authorization choke point for every protected route.
func AuthMiddleware(tokener Tokener) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			tokenString, err := tokener.GetTokenFromRequest(ctx, r)
			if err != nil {
				logger.Log.Errorw("authorization failed", "err", err)
				writeUnauthorized(w)
				return
			}

			claims, err := tokener.GetClaims(ctx, tokenString)
			if err != nil {
				logger.Log.Errorw("authorization failed", "err", err)
				writeUnauthorized(w)
				return
			}

			next.ServeHTTP(w, r.WithContext(NewContextWithClaims(ctx, claims)))
		})
	}
}

func writeUnauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(unauthorizedResponse{Success: false, Error: "Unauthorized"})
}

// claimsContextKey is an unexported type for keys in context.
type claimsContextKey struct{}

var claimsKey = claimsContextKey{}

// NewContextWithClaims returns a context carrying the verified claims.
func NewContextWithClaims(ctx context.Context, claims *jwt.Claims) context.Context {
	return context.WithValue(ctx, claimsKey, claims)
}

// ClaimsFromContext retrieves the verified claims from the context.
// Returns nil if the request did not pass the auth middleware.
func ClaimsFromContext(ctx context.Context) *jwt.Claims {
	claims, _ := ctx.Value(claimsKey).(*jwt.Claims)
	return claims
}
