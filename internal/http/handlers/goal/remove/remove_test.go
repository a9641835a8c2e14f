package remove

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/go-chi/chi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/achievify/goal-tracker/internal/http/middlewarectx"
	"github.com/achievify/goal-tracker/internal/lib/apperr"
)

// MockService реализует интерфейс remove.Service
type MockService struct {
	mock.Mock
}

func (m *MockService) Delete(ctx context.Context, userUID, id string) error {
	args := m.Called(ctx, userUID, id)
	return args.Error(0)
}

func TestRemoveHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	tests := []struct {
		name           string
		goalID         string
		userUID        string
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:    "успешное удаление цели",
			goalID:  "goal-1",
			userUID: "uid-1",
			setupMock: func(m *MockService) {
				m.On("Delete", mock.Anything, "uid-1", "goal-1").Return(nil)
			},
			expectedStatus: http.StatusNoContent,
			expectedBody:   "",
		},
		{
			name:           "отсутствует авторизация",
			goalID:         "goal-1",
			userUID:        "",
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `{"status":"Error","error":"unauthorized"}`,
		},
		{
			name:    "цель не найдена",
			goalID:  "missing",
			userUID: "uid-1",
			setupMock: func(m *MockService) {
				m.On("Delete", mock.Anything, "uid-1", "missing").Return(apperr.ErrNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"status":"Error","error":"goal not found"}`,
		},
		{
			name:    "чужая цель",
			goalID:  "goal-1",
			userUID: "uid-2",
			setupMock: func(m *MockService) {
				m.On("Delete", mock.Anything, "uid-2", "goal-1").Return(apperr.ErrForbidden)
			},
			expectedStatus: http.StatusForbidden,
			expectedBody:   `{"status":"Error","error":"access denied"}`,
		},
		{
			name:    "хранилище недоступно",
			goalID:  "goal-1",
			userUID: "uid-1",
			setupMock: func(m *MockService) {
				m.On("Delete", mock.Anything, "uid-1", "goal-1").Return(apperr.ErrStoreUnavailable)
			},
			expectedStatus: http.StatusServiceUnavailable,
			expectedBody:   `{"status":"Error","error":"storage unavailable"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockService)
			tt.setupMock(mockService)

			handler := New(logger, mockService)

			req := httptest.NewRequest(http.MethodDelete, "/api/goals/"+tt.goalID, nil)

			ctx := context.WithValue(req.Context(), middlewarectx.UserUID, tt.userUID)
			req = req.WithContext(ctx)

			// Устанавливаем URL параметр id для chi
			rctx := chi.NewRouteContext()
			rctx.URLParams.Add("id", tt.goalID)
			req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))

			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedBody != "" {
				assert.Contains(t, w.Body.String(), tt.expectedBody)
			} else {
				assert.Empty(t, w.Body.String())
			}

			mockService.AssertExpectations(t)
		})
	}
}
