package remove

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

	"github.com/magabrotheeeer/marketplace-hub/internal/http/middlewarectx"
	"github.com/magabrotheeeer/marketplace-hub/internal/services/product"
)

// MockService реализует интерфейс remove.Service
type MockService struct {
	mock.Mock
}

func (m *MockService) Remove(ctx context.Context, sellerUID, id string) error {
	args := m.Called(ctx, sellerUID, id)
	return args.Error(0)
}

func TestRemoveHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	tests := []struct {
		name           string
		id             string
		withUser       bool
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:     "успешное удаление",
			id:       "p1",
			withUser: true,
			setupMock: func(m *MockService) {
				m.On("Remove", mock.Anything, "seller-1", "p1").Return(nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"id":"p1"`,
		},
		{
			name:           "пользователь не авторизован",
			id:             "p1",
			withUser:       false,
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `"unauthorized"`,
		},
		{
			name:     "чужой товар",
			id:       "p2",
			withUser: true,
			setupMock: func(m *MockService) {
				m.On("Remove", mock.Anything, "seller-1", "p2").Return(product.ErrNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `"product not found"`,
		},
		{
			name:     "ошибка сервиса",
			id:       "p3",
			withUser: true,
			setupMock: func(m *MockService) {
				m.On("Remove", mock.Anything, "seller-1", "p3").Return(errors.New("db error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `"could not remove product"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockService)
			tt.setupMock(mockService)

			handler := New(logger, mockService)

			req := httptest.NewRequest(http.MethodDelete, "/products/"+tt.id, nil)
			rctx := chi.NewRouteContext()
			rctx.URLParams.Add("id", tt.id)
			req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
			if tt.withUser {
				req = req.WithContext(context.WithValue(req.Context(), middlewarectx.UserUID, "seller-1"))
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
