package container

import (
	"api-template/internal/config"
	"api-template/internal/service"
	"api-template/internal/service/auth"
	"api-template/pkg/logger"
)

// Container holds all application dependencies
type Container struct {
	Config   *config.Config
	Logger   *logger.Logger
	Services *service.Services
}

// New creates a new dependency injection container
func New(cfg *config.Config, logger *logger.Logger) (*Container, error) {
	authService := auth.NewService(logger)

	services := &service.Services{
		Auth: authService,
	}

	return &Container{
		Config:   cfg,
		Logger:   logger,
		Services: services,
	}, nil
}

// GetAuthService returns the auth service
func (c *Container) GetAuthService() service.AuthService {
	return c.Services.Auth
}

// GetLogger returns the logger
func (c *Container) GetLogger() *logger.Logger {
	return c.Logger
}

// GetConfig returns the configuration
func (c *Container) GetConfig() *config.Config {
	return c.Config
}
