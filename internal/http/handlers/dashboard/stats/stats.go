// Package stats реализует HTTP-обработчик статистики кабинета продавца.
//
// Handler извлекает идентификатор продавца из контекста, собирает агрегаты
// по его товарам и возвращает их в JSON-формате.
package stats

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/marketplace-hub/internal/http/middlewarectx"
	"github.com/magabrotheeeer/marketplace-hub/internal/http/response"
	"github.com/magabrotheeeer/marketplace-hub/internal/lib/sl"
	"github.com/magabrotheeeer/marketplace-hub/internal/models"
)

// Handler обрабатывает запросы статистики кабинета продавца.
type Handler struct {
	log     *slog.Logger // Логгер для записи информации и ошибок
	service Service      // Сервис бизнес-логики статистики
}

// Service описывает интерфейс бизнес-логики статистики продавца.
type Service interface {
	Stats(ctx context.Context, sellerUID string) (*models.SellerStats, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Получить статистику продавца
// @Description Возвращает количество товаров, сумму цен, просмотры и активные заказы текущего продавца.
// @Tags Dashboard
// @Produce  json
// @Success 200 {object} map[string]any "Статистика кабинета"
// @Failure 401 {object} response.ErrorResponse "Пользователь не авторизован"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера при подсчете статистики"
// @Security BearerAuth
// @Router /dashboard/stats [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.dashboard.stats"

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

	stats, err := h.service.Stats(r.Context(), uid)
	if err != nil {
		log.Error("failed to count seller stats", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not count seller stats"))
		return
	}

	log.Info("success to count seller stats", slog.String("uid", uid))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"stats": stats,
	}))
}
