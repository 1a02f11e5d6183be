package handler

import (
	"encoding/json"
	"net/http"

	"api-template/internal/container"
	"api-template/internal/middleware"
	"api-template/pkg/errors"
)

// TokenHandler serves the decoded token record for the calling identity
type TokenHandler struct {
	container *container.Container
}

// NewTokenHandler creates a new token handler
func NewTokenHandler(container *container.Container) *TokenHandler {
	return &TokenHandler{
		container: container,
	}
}

// GetTokenInfo handles GET /api/token_info. The auth middleware has already
// decoded the bearer token and attached the resolved identity; this handler
// echoes the record back with absent fields omitted.
func (h *TokenHandler) GetTokenInfo(w http.ResponseWriter, r *http.Request) {
	logger := h.container.GetLogger()

	tokenInfo, ok := middleware.TokenInfoFromContext(r.Context())
	if !ok {
		logger.Error("Token record not found in context")
		h.writeErrorResponse(w, errors.NewAuthenticationError("Request is not authenticated"))
		return
	}

	logger.WithField("sub", tokenInfo.TokenData.Sub).Debug("Serving token info")

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)

	if err := json.NewEncoder(w).Encode(tokenInfo); err != nil {
		logger.WithError(err).Error("Failed to encode token info response")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}

// writeErrorResponse writes an error response to the client
func (h *TokenHandler) writeErrorResponse(w http.ResponseWriter, appErr *errors.AppError) {
	logger := h.container.GetLogger()
	logger.WithError(appErr).Error("Request error")

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(appErr.StatusCode)

	response := map[string]interface{}{
		"success": false,
		"error": map[string]interface{}{
			"type":    string(appErr.Type),
			"message": appErr.Message,
		},
	}

	if err := json.NewEncoder(w).Encode(response); err != nil {
		logger.WithError(err).Error("Failed to encode error response")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}
