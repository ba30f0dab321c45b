// Package list реализует HTTP-обработчик выдачи каталога товаров.
//
// Handler читает параметры выборки из query-строки (поиск, категория, сортировка,
// пагинация), вызывает бизнес-логику каталога и возвращает видимую
// последовательность товаров вместе с их количеством.
package list

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/marketplace-hub/internal/http/response"
	"github.com/magabrotheeeer/marketplace-hub/internal/lib/sl"
	"github.com/magabrotheeeer/marketplace-hub/internal/models"
)

// Рабочий набор каталога по умолчанию.
const (
	defaultLimit  = 100
	defaultOffset = 0
)

// Handler обрабатывает запросы на получение каталога.
type Handler struct {
	log     *slog.Logger // Логгер для записи информации и ошибок
	service Service      // Сервис бизнес-логики каталога
}

// Service описывает интерфейс бизнес-логики выборки каталога.
type Service interface {
	Catalog(ctx context.Context, q models.CatalogQuery, limit, offset int) ([]*models.Product, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Получить каталог товаров
// @Description Возвращает товары каталога с учетом поиска, фильтра по категории и сортировки.
// @Tags Catalog
// @Produce  json
// @Param search query string false "Подстрока поиска по названию, описанию и категории"
// @Param category query string false "Название категории"
// @Param sort query string false "Ключ сортировки: price-low, price-high, newest, featured"
// @Param limit query int false "Размер рабочего набора"
// @Param offset query int false "Смещение рабочего набора"
// @Success 200 {object} map[string]any "Список товаров"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера при выборке каталога"
// @Security BearerAuth
// @Router /catalog [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.catalog.list"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	q := models.CatalogQuery{
		Search:   r.URL.Query().Get("search"),
		Category: r.URL.Query().Get("category"),
		Sort:     r.URL.Query().Get("sort"),
	}

	limit := defaultLimit
	if v := r.URL.Query().Get("limit"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			limit = parsed
		}
	}
	offset := defaultOffset
	if v := r.URL.Query().Get("offset"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			offset = parsed
		}
	}

	products, err := h.service.Catalog(r.Context(), q, limit, offset)
	if err != nil {
		log.Error("failed to list catalog", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not list catalog"))
		return
	}

	log.Info("success to list catalog", slog.Int("count", len(products)))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"list_count": len(products),
		"products":   products,
	}))
}
