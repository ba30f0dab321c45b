// Package remove реализует HTTP-обработчик для снятия товара с публикации.
//
// Handler извлекает ID из URL-параметров и удаляет товар текущего продавца.
// Чужой или несуществующий ID возвращает 404.
package remove

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/marketplace-hub/internal/http/middlewarectx"
	"github.com/magabrotheeeer/marketplace-hub/internal/http/response"
	"github.com/magabrotheeeer/marketplace-hub/internal/lib/sl"
	"github.com/magabrotheeeer/marketplace-hub/internal/services/product"
)

// Handler управляет HTTP-запросами на удаление товаров.
type Handler struct {
	log     *slog.Logger // Логгер для записи информации и ошибок
	service Service      // Сервис бизнес-логики товаров
}

// Service описывает интерфейс бизнес-логики удаления товара.
type Service interface {
	Remove(ctx context.Context, sellerUID, id string) error
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Удалить товар
// @Description Удаляет товар текущего продавца и публикует событие product.removed.
// @Tags Products
// @Produce  json
// @Param id path string true "ID товара"
// @Success 200 {object} map[string]any "Товар удален"
// @Failure 401 {object} response.ErrorResponse "Пользователь не авторизован"
// @Failure 404 {object} response.ErrorResponse "Товар не найден или принадлежит другому продавцу"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера при удалении товара"
// @Security BearerAuth
// @Router /products/{id} [delete]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.product.remove"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	id := chi.URLParam(r, "id")

	uid, ok := r.Context().Value(middlewarectx.UserUID).(string)
	if !ok || uid == "" {
		log.Error("user identification missing")
		w.WriteHeader(http.StatusUnauthorized)
		render.JSON(w, r, response.Error("unauthorized"))
		return
	}

	if err := h.service.Remove(r.Context(), uid, id); err != nil {
		if errors.Is(err, product.ErrNotFound) {
			log.Error("product not found", slog.String("id", id))
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error("product not found"))
			return
		}
		log.Error("failed to remove product", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not remove product"))
		return
	}

	log.Info("success to remove product", slog.String("id", id))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"id": id,
	}))
}
