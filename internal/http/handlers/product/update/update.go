// Package update реализует HTTP-обработчик для редактирования товара продавца.
//
// Handler принимает JSON-запрос с черновиком товара, проверяет его по тем же
// правилам, что и публикация, и обновляет запись. Продавец может менять только
// собственные товары: чужой или несуществующий ID возвращает 404.
package update

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/marketplace-hub/internal/http/middlewarectx"
	"github.com/magabrotheeeer/marketplace-hub/internal/http/response"
	"github.com/magabrotheeeer/marketplace-hub/internal/lib/sl"
	"github.com/magabrotheeeer/marketplace-hub/internal/models"
	"github.com/magabrotheeeer/marketplace-hub/internal/services/product"
)

// Handler управляет HTTP-запросами на редактирование товаров.
type Handler struct {
	log     *slog.Logger // Логгер для записи информации и ошибок
	service Service      // Сервис бизнес-логики товаров
}

// Service описывает интерфейс бизнес-логики редактирования товара.
type Service interface {
	Update(ctx context.Context, sellerUID, id string, req models.DummyProduct) error
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Обновить товар
// @Description Проверяет черновик и обновляет товар текущего продавца.
// @Tags Products
// @Accept  json
// @Produce  json
// @Param id path string true "ID товара"
// @Param request body models.DummyProduct true "Черновик товара"
// @Success 200 {object} map[string]any "Товар обновлен"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON"
// @Failure 401 {object} response.ErrorResponse "Пользователь не авторизован"
// @Failure 404 {object} response.ErrorResponse "Товар не найден или принадлежит другому продавцу"
// @Failure 422 {object} response.ErrorResponse "Первое нарушенное правило проверки"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера при обновлении товара"
// @Security BearerAuth
// @Router /products/{id} [put]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.product.update"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	id := chi.URLParam(r, "id")

	var req models.DummyProduct
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}
	log.Info("request body decoded", slog.String("id", id))

	uid, ok := r.Context().Value(middlewarectx.UserUID).(string)
	if !ok || uid == "" {
		log.Error("user identification missing")
		w.WriteHeader(http.StatusUnauthorized)
		render.JSON(w, r, response.Error("unauthorized"))
		return
	}

	if err := h.service.Update(r.Context(), uid, id, req); err != nil {
		var vErr *product.ValidationError
		switch {
		case errors.As(err, &vErr):
			log.Error("draft validation failed", sl.Err(err))
			w.WriteHeader(http.StatusUnprocessableEntity)
			render.JSON(w, r, response.Error(vErr.Msg))
		case errors.Is(err, product.ErrNotFound):
			log.Error("product not found", slog.String("id", id))
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error("product not found"))
		default:
			log.Error("failed to update product", sl.Err(err))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, response.Error("could not update product"))
		}
		return
	}

	log.Info("success to update product", slog.String("id", id))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"id": id,
	}))
}
