package middlewarectx

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"github.com/magabrotheeeer/marketplace-hub/internal/http/response"
	"github.com/magabrotheeeer/marketplace-hub/internal/models"
)

// SellerOnlyMiddleware создает middleware для проверки роли продавца.
// Операции кабинета доступны только учётной записи с ролью seller,
// иначе возвращается HTTP 403 Forbidden.
func SellerOnlyMiddleware(log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			role, ok := r.Context().Value(Role).(string)
			if !ok || role != models.RoleSeller {
				log.Error("seller role required", slog.String("role", role))
				render.Status(r, http.StatusForbidden)
				render.JSON(w, r, response.Error("seller role required"))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
