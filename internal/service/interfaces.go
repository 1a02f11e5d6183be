package service

import (
	"context"

	"api-template/internal/domain"
)

// AuthService resolves a raw bearer token into the token record served to
// handlers
type AuthService interface {
	Authenticate(ctx context.Context, token string) (*domain.UserAndTokenInfo, error)
}

// Services holds all service instances
type Services struct {
	Auth AuthService
}
