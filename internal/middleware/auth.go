package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
)

type contextKey string

const (
	userIDKey  contextKey = "user_id"
	storeIDKey contextKey = "store_id"
	emailKey   contextKey = "email"
)

// JWTAuth validates a Bearer token signed with the shared HMAC secret and
// places its identity claims on the request context. A missing token is 401,
// an invalid one 403.
func JWTAuth(secret string, logger zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			token, found := strings.CutPrefix(authHeader, "Bearer ")
			if !found || token == "" {
				logger.Warn().Str("path", r.URL.Path).Msg("missing bearer token")
				http.Error(w, `{"error": "UNAUTHORIZED", "message": "Token missing"}`, http.StatusUnauthorized)
				return
			}

			claims, err := parseClaims(token, secret)
			if err != nil {
				logger.Warn().
					Err(err).
					Str("path", r.URL.Path).
					Msg("invalid bearer token")
				http.Error(w, `{"error": "FORBIDDEN", "message": "Invalid token"}`, http.StatusForbidden)
				return
			}

			ctx := r.Context()
			if userID, ok := claimAsInt64(claims, "user_id"); ok {
				ctx = context.WithValue(ctx, userIDKey, userID)
			}
			if storeID, ok := claimAsInt64(claims, "store_id"); ok {
				ctx = context.WithValue(ctx, storeIDKey, storeID)
			}
			if email, ok := claims["email"].(string); ok {
				ctx = context.WithValue(ctx, emailKey, email)
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// parseClaims verifies the token signature and returns its claims.
func parseClaims(tokenStr, secret string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token claims")
	}

	return claims, nil
}

// claimAsInt64 reads a numeric claim. JSON numbers decode as float64.
func claimAsInt64(claims jwt.MapClaims, key string) (int64, bool) {
	switch v := claims[key].(type) {
	case float64:
		return int64(v), true
	case int64:
		return v, true
	default:
		return 0, false
	}
}

// WithStoreID returns a context carrying the given store scope.
func WithStoreID(ctx context.Context, storeID int64) context.Context {
	return context.WithValue(ctx, storeIDKey, storeID)
}

// StoreIDFromContext returns the authenticated store scope, if any.
func StoreIDFromContext(ctx context.Context) (int64, bool) {
	storeID, ok := ctx.Value(storeIDKey).(int64)
	return storeID, ok
}

// UserIDFromContext returns the authenticated user, if any.
func UserIDFromContext(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(userIDKey).(int64)
	return userID, ok
}

// EmailFromContext returns the authenticated user's email, if any.
func EmailFromContext(ctx context.Context) (string, bool) {
	email, ok := ctx.Value(emailKey).(string)
	return email, ok
}
