// Package register реализует HTTP-обработчик для регистрации новых пользователей.
//
// Handler принимает JSON-запрос с данными профиля и паролем, валидирует их,
// вызывает бизнес-логику регистрации и возвращает профиль с JWT в JSON-формате:
// после регистрации клиент попадает в систему без отдельного входа.
//
// В случае ошибок формируются соответствующие HTTP-ответы с описанием проблемы.
package register

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/marketplace-hub/internal/http/response"
	"github.com/magabrotheeeer/marketplace-hub/internal/lib/sl"
	"github.com/magabrotheeeer/marketplace-hub/internal/models"
)

// Handler обрабатывает HTTP-запросы на регистрацию.
type Handler struct {
	log      *slog.Logger        // Логгер для записи операций и ошибок
	service  Service             // Сервис бизнес-логики регистрации
	validate *validator.Validate // Валидатор для проверки входных данных
}

// Service описывает интерфейс бизнес-логики регистрации пользователя.
type Service interface {
	Register(ctx context.Context, req models.DummyRegister) (*models.User, string, error)
}

// New создает новый экземпляр Handler с указанными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		validate: validator.New(),
	}
}

// ServeHTTP godoc
// @Summary Регистрация пользователя
// @Description Создает нового пользователя с ролью buyer или seller. Возвращает профиль и JWT.
// @Tags Auth
// @Accept  json
// @Produce  json
// @Param request body models.DummyRegister true "Данные нового пользователя"
// @Success 200 {object} map[string]any "Успешная регистрация"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON"
// @Failure 422 {object} response.ErrorResponse "Ошибка валидации"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /register [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.register"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req models.DummyRegister
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request body", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}
	log.Info("request body decoded", slog.String("email", req.Email))

	if err := h.validate.Struct(req); err != nil {
		log.Error("validation failed", sl.Err(err))
		w.WriteHeader(http.StatusUnprocessableEntity)
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors)))
		return
	}
	log.Info("all fields are validated")

	user, token, err := h.service.Register(r.Context(), req)
	if err != nil {
		log.Error("failed to register user", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not register user"))
		return
	}

	log.Info("register success", slog.String("uid", user.UUID))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"token": token,
		"user": map[string]any{
			"uid":   user.UUID,
			"name":  user.Name,
			"email": user.Email,
			"phone": user.Phone,
			"role":  user.Role,
		},
	}))
}
