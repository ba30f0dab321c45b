package middlewarectx_test

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/magabrotheeeer/marketplace-hub/internal/http/middlewarectx"
	"github.com/magabrotheeeer/marketplace-hub/internal/lib/jwt"
	"github.com/magabrotheeeer/marketplace-hub/internal/models"
)

func newNoopLogger() *slog.Logger {
	h := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{})
	return slog.New(h)
}

func TestJWTMiddleware(t *testing.T) {
	maker := jwt.NewJWTMaker("test_secret_key_1234567890", 15*time.Minute)
	logger := newNoopLogger()

	validToken, err := maker.GenerateToken("a@b.com", models.RoleSeller, "uid-1")
	assert.NoError(t, err)

	strangerToken, err := jwt.NewJWTMaker("another_secret_key", 15*time.Minute).
		GenerateToken("a@b.com", models.RoleSeller, "uid-1")
	assert.NoError(t, err)

	tests := []struct {
		name           string
		authHeader     string
		wantStatusCode int
		wantCalled     bool
	}{
		{
			name:           "нет заголовка Authorization",
			authHeader:     "",
			wantStatusCode: http.StatusUnauthorized,
			wantCalled:     false,
		},
		{
			name:           "неверный префикс заголовка",
			authHeader:     "Basic sometoken",
			wantStatusCode: http.StatusUnauthorized,
			wantCalled:     false,
		},
		{
			name:           "токен подписан чужим ключом",
			authHeader:     "Bearer " + strangerToken,
			wantStatusCode: http.StatusUnauthorized,
			wantCalled:     false,
		},
		{
			name:           "валидный токен",
			authHeader:     "Bearer " + validToken,
			wantStatusCode: http.StatusOK,
			wantCalled:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handlerCalled := false
			nextHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				handlerCalled = true
				assert.Equal(t, "uid-1", r.Context().Value(middlewarectx.UserUID))
				assert.Equal(t, "a@b.com", r.Context().Value(middlewarectx.Email))
				assert.Equal(t, models.RoleSeller, r.Context().Value(middlewarectx.Role))
				w.WriteHeader(http.StatusOK)
			})

			mw := middlewarectx.JWTMiddleware(maker, logger)(nextHandler)

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			rec := httptest.NewRecorder()

			mw.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatusCode, rec.Code)
			assert.Equal(t, tt.wantCalled, handlerCalled)
		})
	}
}

func TestSellerOnlyMiddleware(t *testing.T) {
	tests := []struct {
		name           string
		role           any
		wantStatusCode int
		wantCalled     bool
	}{
		{
			name:           "продавец проходит",
			role:           models.RoleSeller,
			wantStatusCode: http.StatusOK,
			wantCalled:     true,
		},
		{
			name:           "покупателю запрещено",
			role:           models.RoleBuyer,
			wantStatusCode: http.StatusForbidden,
			wantCalled:     false,
		},
		{
			name:           "роль отсутствует в контексте",
			role:           nil,
			wantStatusCode: http.StatusForbidden,
			wantCalled:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handlerCalled := false
			nextHandler := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				handlerCalled = true
				w.WriteHeader(http.StatusOK)
			})

			mw := middlewarectx.SellerOnlyMiddleware(newNoopLogger())(nextHandler)

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.role != nil {
				req = req.WithContext(context.WithValue(req.Context(), middlewarectx.Role, tt.role))
			}
			rec := httptest.NewRecorder()

			mw.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatusCode, rec.Code)
			assert.Equal(t, tt.wantCalled, handlerCalled)
		})
	}
}
