package create

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/mkravelev/maas-platform/internal/http/middlewarectx"
	"github.com/mkravelev/maas-platform/internal/models"
)

// MockService реализует интерфейс create.Service
type MockService struct {
	mock.Mock
}

func (m *MockService) Create(ctx context.Context, req models.DummyActivity) (int64, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(int64), args.Error(1)
}

func TestCreateActivityHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	tests := []struct {
		name           string
		body           string
		username       string
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:     "успешная запись о работе",
			body:     `{"customer_package_id":3,"employee_id":2,"description":"Настройка рекламной кампании","hours":3.5,"date":"15-08-2026"}`,
			username: "specialist1",
			setupMock: func(m *MockService) {
				m.On("Create", mock.Anything, mock.Anything).Return(int64(44), nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"last_added_id":44`,
		},
		{
			name:           "нулевые часы не проходят валидацию",
			body:           `{"customer_package_id":3,"employee_id":2,"description":"Работа","hours":0,"date":"15-08-2026"}`,
			username:       "specialist1",
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedBody:   `Hours`,
		},
		{
			name:           "недопустимый статус",
			body:           `{"customer_package_id":3,"employee_id":2,"description":"Работа","hours":2,"date":"15-08-2026","status":"DONE"}`,
			username:       "specialist1",
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedBody:   `Status`,
		},
		{
			name:           "нет пользователя в контексте",
			body:           `{"customer_package_id":3,"employee_id":2,"description":"Работа","hours":2,"date":"15-08-2026"}`,
			username:       "",
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `unauthorized`,
		},
		{
			name:     "ошибка сервиса",
			body:     `{"customer_package_id":3,"employee_id":2,"description":"Работа","hours":2,"date":"15-08-2026"}`,
			username: "specialist1",
			setupMock: func(m *MockService) {
				m.On("Create", mock.Anything, mock.Anything).Return(int64(0), errors.New("db error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `could not create activity`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockService)
			tt.setupMock(mockService)

			handler := New(logger, mockService)

			req := httptest.NewRequest(http.MethodPost, "/activities", strings.NewReader(tt.body))
			if tt.username != "" {
				ctx := context.WithValue(req.Context(), middlewarectx.User, tt.username)
				req = req.WithContext(ctx)
			}

			w := httptest.NewRecorder()
			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.True(t, strings.Contains(w.Body.String(), tt.expectedBody),
				"response body should contain %s, got %s", tt.expectedBody, w.Body.String())

			mockService.AssertExpectations(t)
		})
	}
}
