package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"transaction-reports/internal/config"
	"transaction-reports/internal/errors"
	"transaction-reports/internal/handlers"
	"transaction-reports/internal/services"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

func TestAuthMiddleware(t *testing.T) {
	suite.Run(t, new(AuthMiddlewareSuite))
}

type AuthMiddlewareSuite struct {
	suite.Suite
	tokenService services.TokenServiceInterface
	e            *echo.Echo
}

func (s *AuthMiddlewareSuite) SetupTest() {
	s.tokenService = s.createTokenService(24 * time.Hour)
	s.e = echo.New()
}

func (s *AuthMiddlewareSuite) createTokenService(duration time.Duration) services.TokenServiceInterface {
	return services.NewTokenService(&config.AuthConfig{
		Enabled:             true,
		Secret:              "test-secret-with-enough-entropy-0123456789",
		Issuer:              "test-issuer",
		AccessTokenDuration: duration,
	})
}

// serve runs the middleware and returns the recorder and the context seen by the handler
func (s *AuthMiddlewareSuite) serve(cfg ClientAuthConfig, authHeader string) (*httptest.ResponseRecorder, echo.Context) {
	req := httptest.NewRequest(http.MethodGet, "/api/transaction/get-transactions", nil)
	if authHeader != "" {
		req.Header.Set(echo.HeaderAuthorization, authHeader)
	}
	rec := httptest.NewRecorder()
	c := s.e.NewContext(req, rec)

	var seen echo.Context
	handler := ClientAuth(s.tokenService, cfg)(func(c echo.Context) error {
		seen = c
		return c.NoContent(http.StatusOK)
	})

	s.Require().NoError(handler(c))
	return rec, seen
}

func (s *AuthMiddlewareSuite) errorCode(rec *httptest.ResponseRecorder) string {
	var response errors.ErrorResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	return response.Error.Code
}

func (s *AuthMiddlewareSuite) TestClientAuth_DisabledUsesDefaultClient() {
	rec, seen := s.serve(ClientAuthConfig{Enabled: false, DefaultClientID: 1001}, "")

	s.Equal(http.StatusOK, rec.Code)
	s.Require().NotNil(seen)
	s.Equal(int64(1001), seen.Get(handlers.ClientIDContextKey))
	s.Nil(seen.Get(handlers.ClientNameContextKey))
}

func (s *AuthMiddlewareSuite) TestClientAuth_ValidToken() {
	token, _, err := s.tokenService.GenerateAccessToken(2002, "Farmacia Central")
	s.Require().NoError(err)

	rec, seen := s.serve(ClientAuthConfig{Enabled: true, DefaultClientID: 1001}, "Bearer "+token)

	s.Equal(http.StatusOK, rec.Code)
	s.Require().NotNil(seen)
	s.Equal(int64(2002), seen.Get(handlers.ClientIDContextKey))
	s.Equal("Farmacia Central", seen.Get(handlers.ClientNameContextKey))
	s.NotEmpty(seen.Get("token_jti"))
}

func (s *AuthMiddlewareSuite) TestClientAuth_Rejections() {
	expired := s.createTokenService(-time.Minute)
	expiredToken, _, err := expired.GenerateAccessToken(1001, "Test Client")
	s.Require().NoError(err)

	foreign := services.NewTokenService(&config.AuthConfig{
		Secret:              "another-secret-entirely-9876543210",
		Issuer:              "test-issuer",
		AccessTokenDuration: time.Hour,
	})
	foreignToken, _, err := foreign.GenerateAccessToken(1001, "Test Client")
	s.Require().NoError(err)

	testCases := []struct {
		name   string
		header string
		code   string
	}{
		{name: "missing header", header: "", code: "AUTH_001"},
		{name: "wrong scheme", header: "Basic dXNlcjpwYXNz", code: "AUTH_003"},
		{name: "garbage token", header: "Bearer not.a.jwt", code: "AUTH_003"},
		{name: "expired token", header: "Bearer " + expiredToken, code: "AUTH_002"},
		{name: "foreign signature", header: "Bearer " + foreignToken, code: "AUTH_003"},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			rec, seen := s.serve(ClientAuthConfig{Enabled: true, DefaultClientID: 1001}, tc.header)

			s.Nil(seen)
			s.Equal(http.StatusUnauthorized, rec.Code)
			s.Equal(tc.code, s.errorCode(rec))
		})
	}
}
