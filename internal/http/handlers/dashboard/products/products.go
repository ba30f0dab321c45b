// Package products реализует HTTP-обработчик списка товаров кабинета продавца.
package products

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/marketplace-hub/internal/http/middlewarectx"
	"github.com/magabrotheeeer/marketplace-hub/internal/http/response"
	"github.com/magabrotheeeer/marketplace-hub/internal/lib/sl"
	"github.com/magabrotheeeer/marketplace-hub/internal/models"
)

// Размер страницы кабинета по умолчанию.
const (
	defaultLimit  = 100
	defaultOffset = 0
)

// Handler обрабатывает запросы списка товаров текущего продавца.
type Handler struct {
	log     *slog.Logger // Логгер для записи информации и ошибок
	service Service      // Сервис бизнес-логики товаров
}

// Service описывает интерфейс бизнес-логики списка товаров продавца.
type Service interface {
	SellerProducts(ctx context.Context, sellerUID string, limit, offset int) ([]*models.Product, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Получить товары продавца
// @Description Возвращает список товаров текущего продавца с пагинацией.
// @Tags Dashboard
// @Produce  json
// @Param limit query int false "Размер страницы"
// @Param offset query int false "Смещение страницы"
// @Success 200 {object} map[string]any "Список товаров продавца"
// @Failure 401 {object} response.ErrorResponse "Пользователь не авторизован"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера при выборке товаров"
// @Security BearerAuth
// @Router /dashboard/products [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.dashboard.products"

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

	products, err := h.service.SellerProducts(r.Context(), uid, limit, offset)
	if err != nil {
		log.Error("failed to list seller products", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not list seller products"))
		return
	}

	log.Info("success to list seller products", slog.Int("count", len(products)))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"list_count": len(products),
		"products":   products,
	}))
}
