// Package middleware provides HTTP middleware for authentication and authorization.
package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strings"
)

// ContextKey is a typed key for context values to avoid collisions.
type ContextKey string

// reviewerEmailKey is the context key for storing the authenticated reviewer email.
const reviewerEmailKey ContextKey = "reviewerEmail"

// TokenValidator is an interface for validating JWT tokens.
// This allows the middleware to work with any JWT service implementation.
type TokenValidator interface {
	ValidateToken(tokenString string) (EmailGetter, error)
}

// EmailGetter is an interface for extracting the reviewer email from token claims.
type EmailGetter interface {
	GetEmail() string
}

// AuthMiddleware creates middleware that validates JWT tokens and adds the
// reviewer email to the request context.
func AuthMiddleware(jwtService TokenValidator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// Extract Authorization header
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}

			// Parse Bearer token
			// Handle case-insensitive "Bearer" prefix
			parts := strings.Fields(authHeader)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}

			tokenString := strings.TrimSpace(parts[1])
			if tokenString == "" {
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}

			// Validate token
			claims, err := jwtService.ValidateToken(tokenString)
			if err != nil {
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}

			// Extract reviewer email from claims
			email := claims.GetEmail()

			// Add reviewer email to request context
			ctx := context.WithValue(r.Context(), reviewerEmailKey, email)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetReviewerEmail extracts the authenticated reviewer email from the request context.
func GetReviewerEmail(r *http.Request) (string, error) {
	email, ok := r.Context().Value(reviewerEmailKey).(string)
	if !ok {
		return "", fmt.Errorf("reviewer email not found in request context")
	}
	return email, nil
}

// ReviewerEmailKey returns the context key for the reviewer email (for testing purposes).
func ReviewerEmailKey() ContextKey {
	return reviewerEmailKey
}
