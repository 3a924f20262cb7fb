package usagereport

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/go-chi/chi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/mkravelev/maas-platform/internal/http/middlewarectx"
	"github.com/mkravelev/maas-platform/internal/usage"
)

// MockService реализует интерфейс usagereport.Service
type MockService struct {
	mock.Mock
}

func (m *MockService) Usage(ctx context.Context, id int64) (usage.Report, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(usage.Report), args.Error(1)
}

func TestUsageReportHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	tests := []struct {
		name           string
		urlID          string
		username       string
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:     "оптимальная загрузка",
			urlID:    "42",
			username: "manager1",
			setupMock: func(m *MockService) {
				m.On("Usage", mock.Anything, int64(42)).Return(usage.Report{
					UsedHours:  16,
					TotalHours: 20,
					Percentage: 80,
					FreeHours:  4,
					Status:     usage.StatusOptimal,
				}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"status":"optimal"`,
		},
		{
			name:     "перегруженный пакет со срезанным процентом",
			urlID:    "7",
			username: "manager1",
			setupMock: func(m *MockService) {
				m.On("Usage", mock.Anything, int64(7)).Return(usage.Report{
					UsedHours:  25,
					TotalHours: 20,
					Percentage: 100,
					FreeHours:  0,
					Status:     usage.StatusOverloaded,
				}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"percentage":100`,
		},
		{
			name:           "некорректный id в URL",
			urlID:          "abc",
			username:       "manager1",
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `invalid package id`,
		},
		{
			name:           "нет пользователя в контексте",
			urlID:          "42",
			username:       "",
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `unauthorized`,
		},
		{
			name:     "ошибка сервиса",
			urlID:    "42",
			username: "manager1",
			setupMock: func(m *MockService) {
				m.On("Usage", mock.Anything, int64(42)).Return(usage.Report{}, errors.New("db error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `could not build usage report`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockService)
			tt.setupMock(mockService)

			handler := New(logger, mockService)

			req := httptest.NewRequest(http.MethodGet, "/packages/"+tt.urlID+"/usage", nil)
			rctx := chi.NewRouteContext()
			rctx.URLParams.Add("id", tt.urlID)
			ctx := context.WithValue(req.Context(), chi.RouteCtxKey, rctx)
			if tt.username != "" {
				ctx = context.WithValue(ctx, middlewarectx.User, tt.username)
			}
			req = req.WithContext(ctx)

			w := httptest.NewRecorder()
			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.True(t, strings.Contains(w.Body.String(), tt.expectedBody),
				"response body should contain %s, got %s", tt.expectedBody, w.Body.String())

			mockService.AssertExpectations(t)
		})
	}
}
