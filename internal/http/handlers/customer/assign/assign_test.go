package assign

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
	"github.com/mkravelev/maas-platform/internal/models"
	"github.com/mkravelev/maas-platform/internal/storage/repository"
)

// MockService реализует интерфейс assign.Service
type MockService struct {
	mock.Mock
}

func (m *MockService) AssignPackage(ctx context.Context, customerID int64, req models.DummyAssignPackage) (int64, error) {
	args := m.Called(ctx, customerID, req)
	return args.Get(0).(int64), args.Error(1)
}

func TestAssignPackageHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	tests := []struct {
		name           string
		urlID          string
		body           string
		username       string
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:     "успешное подключение пакета",
			urlID:    "5",
			body:     `{"package_id":3,"start_date":"01-09-2026"}`,
			username: "manager1",
			setupMock: func(m *MockService) {
				m.On("AssignPackage", mock.Anything, int64(5), mock.Anything).Return(int64(17), nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"customer_package_id":17`,
		},
		{
			name:           "некорректный id клиента",
			urlID:          "abc",
			body:           `{"package_id":3,"start_date":"01-09-2026"}`,
			username:       "manager1",
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `invalid customer id`,
		},
		{
			name:           "нет package_id в запросе",
			urlID:          "5",
			body:           `{"start_date":"01-09-2026"}`,
			username:       "manager1",
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedBody:   `PackageID`,
		},
		{
			name:     "повторное подключение активного пакета",
			urlID:    "5",
			body:     `{"package_id":3,"start_date":"01-09-2026"}`,
			username: "manager1",
			setupMock: func(m *MockService) {
				m.On("AssignPackage", mock.Anything, int64(5), mock.Anything).
					Return(int64(0), repository.ErrDuplicateAssignment)
			},
			expectedStatus: http.StatusConflict,
			expectedBody:   `package already assigned`,
		},
		{
			name:     "ошибка сервиса",
			urlID:    "5",
			body:     `{"package_id":3,"start_date":"01-09-2026"}`,
			username: "manager1",
			setupMock: func(m *MockService) {
				m.On("AssignPackage", mock.Anything, int64(5), mock.Anything).
					Return(int64(0), errors.New("db error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `could not assign package`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockService)
			tt.setupMock(mockService)

			handler := New(logger, mockService)

			req := httptest.NewRequest(http.MethodPost, "/customers/"+tt.urlID+"/packages", strings.NewReader(tt.body))
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
