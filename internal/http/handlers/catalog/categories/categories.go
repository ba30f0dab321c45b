// Package categories реализует HTTP-обработчик выдачи справочника категорий.
package categories

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/marketplace-hub/internal/http/response"
	"github.com/magabrotheeeer/marketplace-hub/internal/lib/sl"
	"github.com/magabrotheeeer/marketplace-hub/internal/models"
)

// Handler обрабатывает запросы на получение справочника категорий.
type Handler struct {
	log     *slog.Logger // Логгер для записи информации и ошибок
	service Service      // Сервис бизнес-логики справочника
}

// Service описывает интерфейс бизнес-логики справочника категорий.
type Service interface {
	Categories(ctx context.Context) ([]*models.Category, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Получить справочник категорий
// @Description Возвращает список категорий каталога с именами иконок.
// @Tags Catalog
// @Produce  json
// @Success 200 {object} map[string]any "Список категорий"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера при выборке категорий"
// @Security BearerAuth
// @Router /categories [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.catalog.categories"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	categories, err := h.service.Categories(r.Context())
	if err != nil {
		log.Error("failed to list categories", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not list categories"))
		return
	}

	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"categories": categories,
	}))
}
