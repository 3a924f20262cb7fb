package middlewarectx_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/mkravelev/maas-platform/internal/http/middlewarectx"
	libjwt "github.com/mkravelev/maas-platform/internal/lib/jwt"

	"io"
	"log/slog"
)

// Mock for TokenParser
type TokenParserMock struct {
	mock.Mock
}

func (m *TokenParserMock) ParseToken(tokenStr string) (*libjwt.CustomClaims, error) {
	args := m.Called(tokenStr)
	claims, _ := args.Get(0).(*libjwt.CustomClaims)
	return claims, args.Error(1)
}

func newNoopLogger() *slog.Logger {
	h := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{})
	return slog.New(h)
}

func TestAuthMiddleware(t *testing.T) {
	parserMock := new(TokenParserMock)
	logger := newNoopLogger()

	handlerCalled := false

	// Test handler which checks context values
	nextHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		handlerCalled = true
		username := r.Context().Value(middlewarectx.User)
		role := r.Context().Value(middlewarectx.Role)
		assert.Equal(t, "manager1", username)
		assert.Equal(t, "manager", role)
		w.WriteHeader(http.StatusOK)
	})

	middleware := middlewarectx.AuthMiddleware(parserMock, logger)(nextHandler)

	tests := []struct {
		name           string
		authHeader     string
		mockClaims     *libjwt.CustomClaims
		mockErr        error
		wantStatusCode int
		wantCalled     bool
	}{
		{
			name:           "missing Authorization header",
			authHeader:     "",
			wantStatusCode: http.StatusUnauthorized,
			wantCalled:     false,
		},
		{
			name:           "invalid Authorization header prefix",
			authHeader:     "Basic sometoken",
			wantStatusCode: http.StatusUnauthorized,
			wantCalled:     false,
		},
		{
			name:           "token parse error",
			authHeader:     "Bearer badtoken",
			mockClaims:     nil,
			mockErr:        errors.New("token is expired"),
			wantStatusCode: http.StatusUnauthorized,
			wantCalled:     false,
		},
		{
			name:           "valid token",
			authHeader:     "Bearer validtoken",
			mockClaims:     &libjwt.CustomClaims{Username: "manager1", Role: "manager"},
			mockErr:        nil,
			wantStatusCode: http.StatusOK,
			wantCalled:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handlerCalled = false
			parserMock.ExpectedCalls = nil // reset calls
			parserMock.Calls = nil
			if tt.mockClaims != nil || tt.mockErr != nil {
				parserMock.On("ParseToken", strings.TrimPrefix(tt.authHeader, "Bearer ")).
					Return(tt.mockClaims, tt.mockErr).Once()
			}

			req := httptest.NewRequest(http.MethodGet, "/somepath", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}

			rec := httptest.NewRecorder()

			middleware.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatusCode, rec.Code)
			assert.Equal(t, tt.wantCalled, handlerCalled)
			parserMock.AssertExpectations(t)
		})
	}
}
