// Package sellermode реализует HTTP-обработчик переключения роли продавца.
//
// Handler извлекает идентификатор пользователя из контекста, переключает
// долговременную роль buyer<->seller и возвращает новую роль со свежим JWT,
// чтобы клиент не продолжал работать со старой ролью в токене.
package sellermode

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/marketplace-hub/internal/http/middlewarectx"
	"github.com/magabrotheeeer/marketplace-hub/internal/http/response"
	"github.com/magabrotheeeer/marketplace-hub/internal/lib/sl"
)

// Handler обрабатывает запросы на переключение роли продавца.
type Handler struct {
	log     *slog.Logger // Логгер для записи информации и ошибок
	service Service      // Сервис бизнес-логики переключения роли
}

// Service описывает интерфейс бизнес-логики переключения роли.
type Service interface {
	ToggleSellerMode(ctx context.Context, uid string) (string, string, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Переключить режим продавца
// @Description Переключает долговременную роль пользователя buyer<->seller. Возвращает новую роль и свежий JWT.
// @Tags Profile
// @Produce  json
// @Success 200 {object} map[string]any "Роль переключена"
// @Failure 401 {object} response.ErrorResponse "Пользователь не авторизован"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Security BearerAuth
// @Router /profile/seller-mode [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.profile.sellermode"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	uid, ok := r.Context().Value(middlewarectx.UserUID).(string)
	if !ok || uid == "" {
		log.Error("user identification missing")
		w.WriteHeader(http.StatusUnauthorized)
		render.JSON(w, r, response.Error("unauthorized"))
		return
	}

	role, token, err := h.service.ToggleSellerMode(r.Context(), uid)
	if err != nil {
		log.Error("failed to toggle seller mode", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not toggle seller mode"))
		return
	}

	log.Info("seller mode toggled", slog.String("uid", uid), slog.String("role", role))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"role":  role,
		"token": token,
	}))
}
