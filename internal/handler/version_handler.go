package handler

import (
	"encoding/json"
	"net/http"

	"api-template/internal/container"
	"api-template/pkg/version"
)

// VersionHandler reports the service name and version
type VersionHandler struct {
	container *container.Container
}

// NewVersionHandler creates a new version handler
func NewVersionHandler(container *container.Container) *VersionHandler {
	return &VersionHandler{
		container: container,
	}
}

// VersionResponse represents the version response
type VersionResponse struct {
	APIName    string `json:"api_name"`
	APIVersion string `json:"api_version"`
}

// Get handles GET /api/version
func (h *VersionHandler) Get(w http.ResponseWriter, r *http.Request) {
	logger := h.container.GetLogger()

	response := VersionResponse{
		APIName:    version.Name,
		APIVersion: version.Version,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)

	if err := json.NewEncoder(w).Encode(response); err != nil {
		logger.WithError(err).Error("Failed to encode version response")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}
