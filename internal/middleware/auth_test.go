package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"api-template/internal/domain"
	"api-template/pkg/errors"
	"api-template/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubAuthService struct {
	info *domain.UserAndTokenInfo
	err  error
}

func (s *stubAuthService) Authenticate(ctx context.Context, token string) (*domain.UserAndTokenInfo, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.info, nil
}

func tokenRecord() *domain.UserAndTokenInfo {
	return &domain.UserAndTokenInfo{
		TokenInfo: domain.TokenInfo{
			Token: "raw-token",
			TokenData: domain.AccessTokenClaims{
				Iss:    "https://idp",
				Exp:    1700000000,
				Nbf:    1699999000,
				Iat:    1699999000,
				Jti:    "abc123",
				JwtVer: 2,
				Sub:    "user-1",
				Aud:    []string{"api1"},
			},
		},
	}
}

func TestAuthMiddleware(t *testing.T) {
	tests := []struct {
		name       string
		authHeader string
		service    *stubAuthService
		wantStatus int
		wantNext   bool
	}{
		{
			name:       "missing authorization header",
			authHeader: "",
			service:    &stubAuthService{info: tokenRecord()},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "wrong scheme",
			authHeader: "Basic dXNlcjpwYXNz",
			service:    &stubAuthService{info: tokenRecord()},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "empty bearer token",
			authHeader: "Bearer ",
			service:    &stubAuthService{info: tokenRecord()},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "authentication failure",
			authHeader: "Bearer bad-token",
			service:    &stubAuthService{err: errors.NewAuthenticationError("Invalid token format")},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "validation failure keeps its status",
			authHeader: "Bearer short-claims",
			service:    &stubAuthService{err: errors.NewValidationError("access token claims are missing required fields", nil)},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "valid token",
			authHeader: "Bearer good-token",
			service:    &stubAuthService{info: tokenRecord()},
			wantStatus: http.StatusOK,
			wantNext:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nextCalled := false
			var seen *domain.UserAndTokenInfo
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				seen, _ = TokenInfoFromContext(r.Context())
				w.WriteHeader(http.StatusOK)
			})

			mw := Auth(tt.service, logger.NewNop())
			req := httptest.NewRequest(http.MethodGet, "/api/token_info", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			rec := httptest.NewRecorder()

			mw(next).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantNext, nextCalled)

			if tt.wantNext {
				require.NotNil(t, seen)
				assert.Equal(t, "user-1", seen.TokenData.Sub)
			} else {
				var resp errors.ErrorResponse
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
				assert.NotEmpty(t, resp.Error.Type)
				assert.NotEmpty(t, resp.Error.Message)
			}
		})
	}
}

func TestRequestIDMiddleware(t *testing.T) {
	var ctxRequestID string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctxRequestID, _ = r.Context().Value(RequestIDContextKey).(string)
		w.WriteHeader(http.StatusOK)
	})

	mw := RequestID(logger.NewNop())
	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	rec := httptest.NewRecorder()

	mw(next).ServeHTTP(rec, req)

	headerID := rec.Header().Get("X-Request-ID")
	assert.NotEmpty(t, headerID)
	assert.Equal(t, headerID, ctxRequestID)
}
