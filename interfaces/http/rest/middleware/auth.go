package middleware

import (
	"encoding/json"
	"net/http"
	"strings"

	"designaudit/infrastructure/config"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
)

// Authenticate creates an authentication middleware gating the audit API.
// When auth is disabled in configuration (the development default), every
// request passes through.
func Authenticate(cfg *config.Config, logger *zap.Logger) func(next http.Handler) http.Handler {
	if !cfg.AuthEnabled {
		return func(next http.Handler) http.Handler {
			return next
		}
	}

	keyFunc := func(token *jwt.Token) (interface{}, error) {
		return []byte(cfg.JWTSecret), nil
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := extractToken(r)
			if token == "" {
				respondUnauthorized(w, "Missing authorization header")
				return
			}

			parsed, err := jwt.Parse(token, keyFunc,
				jwt.WithValidMethods([]string{"HS256"}),
				jwt.WithIssuer(cfg.JWTIssuer),
				jwt.WithExpirationRequired(),
			)
			if err != nil || !parsed.Valid {
				logger.Warn("Invalid token",
					zap.Error(err),
					zap.String("path", r.URL.Path),
				)
				respondUnauthorized(w, "Invalid token")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// extractToken extracts the bearer token from the Authorization header
func extractToken(r *http.Request) string {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return ""
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) == 2 && strings.ToLower(parts[0]) == "bearer" {
		return parts[1]
	}
	return authHeader
}

// respondUnauthorized sends an unauthorized response
func respondUnauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"error":   true,
		"message": message,
		"code":    http.StatusUnauthorized,
	})
}
