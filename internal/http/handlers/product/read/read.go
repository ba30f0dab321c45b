// Package read реализует HTTP-обработчик для получения карточки товара по ID.
//
// Handler извлекает ID из URL-параметров, вызывает бизнес-логику чтения
// и возвращает данные товара в JSON-формате. Каждое успешное чтение
// засчитывается как просмотр товара.
package read

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/marketplace-hub/internal/http/response"
	"github.com/magabrotheeeer/marketplace-hub/internal/lib/sl"
	"github.com/magabrotheeeer/marketplace-hub/internal/models"
	"github.com/magabrotheeeer/marketplace-hub/internal/services/product"
)

// Handler обрабатывает запросы на получение товара по уникальному идентификатору.
type Handler struct {
	log     *slog.Logger // Логгер для записи информации и ошибок
	service Service      // Сервис бизнес-логики чтения товара
}

// Service описывает интерфейс бизнес-логики чтения товара.
type Service interface {
	Read(ctx context.Context, id string) (*models.Product, error)
}

// New создает новый Handler с переданным логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Получить товар по ID
// @Description Возвращает карточку товара. Успешное чтение увеличивает счетчик просмотров.
// @Tags Products
// @Produce  json
// @Param id path string true "ID товара"
// @Success 200 {object} map[string]any "Карточка товара"
// @Failure 404 {object} response.ErrorResponse "Товар не найден"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера при чтении товара"
// @Security BearerAuth
// @Router /products/{id} [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.product.read"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	id := chi.URLParam(r, "id")

	res, err := h.service.Read(r.Context(), id)
	if err != nil {
		if errors.Is(err, product.ErrNotFound) {
			log.Error("product not found", slog.String("id", id))
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error("product not found"))
			return
		}
		log.Error("failed to read product", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not read product"))
		return
	}

	log.Info("success to read product", slog.String("id", id))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"product": res,
	}))
}
