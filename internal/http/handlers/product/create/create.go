// Package create реализует HTTP-обработчик для публикации новых товаров продавца.
//
// Handler принимает JSON-запрос с черновиком товара, извлекает идентификатор
// продавца из контекста, вызывает бизнес-логику сохранения и возвращает ID
// созданной записи в JSON-формате.
//
// Ошибки проверки черновика возвращаются со статусом 422 и ровно одним
// сообщением — первым нарушенным правилом.
package create

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/marketplace-hub/internal/http/middlewarectx"
	"github.com/magabrotheeeer/marketplace-hub/internal/http/response"
	"github.com/magabrotheeeer/marketplace-hub/internal/lib/sl"
	"github.com/magabrotheeeer/marketplace-hub/internal/models"
	"github.com/magabrotheeeer/marketplace-hub/internal/services/product"
)

// Handler управляет HTTP-запросами на публикацию новых товаров.
type Handler struct {
	log     *slog.Logger // Логгер для записи информации и ошибок
	service Service      // Сервис бизнес-логики товаров
}

// Service описывает интерфейс бизнес-логики публикации товара.
type Service interface {
	Create(ctx context.Context, sellerUID string, req models.DummyProduct) (string, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Опубликовать новый товар
// @Description Проверяет черновик товара и сохраняет его от имени текущего продавца. Возвращает ID записи.
// @Tags Products
// @Accept  json
// @Produce  json
// @Param request body models.DummyProduct true "Черновик товара"
// @Success 200 {object} map[string]any "Успешная публикация товара"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON"
// @Failure 401 {object} response.ErrorResponse "Пользователь не авторизован"
// @Failure 422 {object} response.ErrorResponse "Первое нарушенное правило проверки"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера при сохранении товара"
// @Security BearerAuth
// @Router /products [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.product.create"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req models.DummyProduct
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}
	log.Info("request body decoded", slog.String("title", req.Title))

	uid, ok := r.Context().Value(middlewarectx.UserUID).(string)
	if !ok || uid == "" {
		log.Error("user identification missing")
		w.WriteHeader(http.StatusUnauthorized)
		render.JSON(w, r, response.Error("unauthorized"))
		return
	}

	id, err := h.service.Create(r.Context(), uid, req)
	if err != nil {
		var vErr *product.ValidationError
		if errors.As(err, &vErr) {
			log.Error("draft validation failed", sl.Err(err))
			w.WriteHeader(http.StatusUnprocessableEntity)
			render.JSON(w, r, response.Error(vErr.Msg))
			return
		}
		log.Error("failed to create product", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not create product"))
		return
	}

	log.Info("success to create product", slog.String("id", id))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"id": id,
	}))
}
