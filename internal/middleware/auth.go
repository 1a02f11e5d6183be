package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"api-template/internal/domain"
	"api-template/internal/service"
	"api-template/pkg/errors"
	"api-template/pkg/logger"

	"github.com/google/uuid"
)

// ContextKey represents keys used in request context
type ContextKey string

const (
	// TokenInfoContextKey is the key for the authenticated token record in context
	TokenInfoContextKey ContextKey = "token_info"
	// RequestIDContextKey is the key for request ID in context
	RequestIDContextKey ContextKey = "request_id"
)

// TokenInfoFromContext retrieves the authenticated token record stored by
// the Auth middleware
func TokenInfoFromContext(ctx context.Context) (*domain.UserAndTokenInfo, bool) {
	info, ok := ctx.Value(TokenInfoContextKey).(*domain.UserAndTokenInfo)
	return info, ok
}

// Auth creates an authentication middleware
func Auth(authService service.AuthService, logger *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				writeErrorResponse(w, errors.NewAuthenticationError("Authorization header is required"), logger)
				return
			}

			if !strings.HasPrefix(authHeader, "Bearer ") {
				writeErrorResponse(w, errors.NewAuthenticationError("Invalid authorization header format"), logger)
				return
			}

			token := strings.TrimPrefix(authHeader, "Bearer ")
			if token == "" {
				writeErrorResponse(w, errors.NewAuthenticationError("Token is required"), logger)
				return
			}

			ctx := r.Context()
			tokenInfo, err := authService.Authenticate(ctx, token)
			if err != nil {
				logger.WithError(err).Error("Token authentication failed")
				if appErr, ok := err.(*errors.AppError); ok {
					writeErrorResponse(w, appErr, logger)
				} else {
					writeErrorResponse(w, errors.NewAuthenticationError("Invalid token"), logger)
				}
				return
			}

			ctx = context.WithValue(ctx, TokenInfoContextKey, tokenInfo)
			r = r.WithContext(ctx)

			logger.WithField("sub", tokenInfo.TokenData.Sub).Debug("Request authenticated")

			next.ServeHTTP(w, r)
		})
	}
}

// RequestID creates a middleware that adds a unique request ID to each request
func RequestID(logger *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requestID := uuid.NewString()

			ctx := context.WithValue(r.Context(), RequestIDContextKey, requestID)
			r = r.WithContext(ctx)

			w.Header().Set("X-Request-ID", requestID)

			next.ServeHTTP(w, r)
		})
	}
}

// writeErrorResponse writes an error response to the client
func writeErrorResponse(w http.ResponseWriter, appErr *errors.AppError, logger *logger.Logger) {
	logger.WithError(appErr).Error("Request error")

	response := &errors.ErrorResponse{}
	response.Error.Type = appErr.Type
	response.Error.Message = appErr.Message
	response.Error.Details = appErr.Details
	response.Error.Timestamp = time.Now().UTC().Format(time.RFC3339)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(appErr.StatusCode)

	if err := json.NewEncoder(w).Encode(response); err != nil {
		logger.WithError(err).Error("Failed to encode error response")
	}
}
