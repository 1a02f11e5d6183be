package auth

import (
	"context"
	"encoding/json"

	"api-template/internal/domain"
	"api-template/internal/service"
	"api-template/pkg/errors"
	"api-template/pkg/logger"

	"github.com/golang-jwt/jwt/v5"
)

// Service implements the AuthService interface. It decodes bearer tokens
// whose signatures were already verified by the fronting gateway; signature
// verification and identity provider calls are deliberately not performed
// here.
type Service struct {
	parser *jwt.Parser
	logger *logger.Logger
}

// NewService creates a new auth service
func NewService(logger *logger.Logger) service.AuthService {
	return &Service{
		parser: jwt.NewParser(),
		logger: logger,
	}
}

// Authenticate decodes a bearer token into its claims and attaches the
// identity the token describes: the application identity for client
// credentials tokens, the user profile for user tokens. Tokens carrying
// neither produce a record with no identity attached.
func (s *Service) Authenticate(ctx context.Context, token string) (*domain.UserAndTokenInfo, error) {
	s.logger.Debug("Decoding bearer token")

	mapClaims := jwt.MapClaims{}
	if _, _, err := s.parser.ParseUnverified(token, mapClaims); err != nil {
		s.logger.WithError(err).Error("Failed to parse bearer token")
		return nil, errors.NewAuthenticationError("Invalid token format")
	}

	payload, err := json.Marshal(mapClaims)
	if err != nil {
		return nil, errors.NewInternalError("Failed to re-encode token claims", err)
	}

	claims, err := domain.DecodeAccessTokenClaims(payload)
	if err != nil {
		s.logger.WithError(err).Error("Token claims failed validation")
		return nil, err
	}

	info := &domain.UserAndTokenInfo{
		TokenInfo: domain.TokenInfo{
			Token:     token,
			TokenData: *claims,
		},
	}

	switch {
	case claims.ApplicationName != nil:
		appInfo := &domain.AppInfo{
			Service: *claims.ApplicationName,
			Sub:     claims.Sub,
		}
		if err := appInfo.Validate(); err != nil {
			return nil, err
		}
		info.AppData = appInfo
		s.logger.WithField("service", appInfo.Service).Debug("Service token authenticated")

	case claims.IdentityType != nil:
		userInfo, err := domain.DecodeUserInfo(payload)
		if err != nil {
			s.logger.WithError(err).Error("User claims failed validation")
			return nil, err
		}
		info.UserData = userInfo
		s.logger.WithField("user_id", userInfo.Sub).Debug("User token authenticated")

	default:
		// Claims-only token: neither identity projection applies
		s.logger.WithField("sub", claims.Sub).Debug("Token authenticated without identity projection")
	}

	return info, nil
}
