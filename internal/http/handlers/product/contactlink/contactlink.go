// Package contactlink реализует HTTP-обработчик перехода в мессенджер.
//
// Handler строит для товара ссылку wa.me с предзаполненным сообщением
// покупателя. Переход по ссылке не засчитывается как просмотр товара.
package contactlink

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
	"github.com/magabrotheeeer/marketplace-hub/internal/lib/whatsapp"
	"github.com/magabrotheeeer/marketplace-hub/internal/services/product"
)

// Handler обрабатывает запросы на построение ссылки в мессенджер.
type Handler struct {
	log     *slog.Logger // Логгер для записи информации и ошибок
	service Service      // Сервис бизнес-логики товаров
}

// Service описывает интерфейс бизнес-логики построения ссылки.
type Service interface {
	ContactLink(ctx context.Context, id string) (string, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Получить ссылку для связи с продавцом
// @Description Возвращает ссылку wa.me с предзаполненным сообщением о товаре.
// @Tags Products
// @Produce  json
// @Param id path string true "ID товара"
// @Success 200 {object} map[string]any "Ссылка в мессенджер"
// @Failure 404 {object} response.ErrorResponse "Товар не найден"
// @Failure 422 {object} response.ErrorResponse "У продавца не указан телефон"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Security BearerAuth
// @Router /products/{id}/contact-link [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.product.contactlink"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	id := chi.URLParam(r, "id")

	link, err := h.service.ContactLink(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, product.ErrNotFound):
			log.Error("product not found", slog.String("id", id))
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error("product not found"))
		case errors.Is(err, whatsapp.ErrNoPhone):
			log.Error("seller has no phone", slog.String("id", id))
			w.WriteHeader(http.StatusUnprocessableEntity)
			render.JSON(w, r, response.Error("seller has no phone"))
		default:
			log.Error("failed to build contact link", sl.Err(err))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, response.Error("could not build contact link"))
		}
		return
	}

	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"link": link,
	}))
}
