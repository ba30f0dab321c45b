// Package upload реализует HTTP-обработчик загрузки изображений товара.
//
// Handler принимает multipart-форму с полем images, передает файлы в порядке
// выбора в сервис загрузки и возвращает публичные URL успешных загрузок вместе
// со списком неудач, чтобы клиент мог повторить отдельные файлы.
package upload

import (
	"context"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/marketplace-hub/internal/http/response"
	"github.com/magabrotheeeer/marketplace-hub/internal/lib/sl"
	uploadservice "github.com/magabrotheeeer/marketplace-hub/internal/services/upload"
)

// Предел размера multipart-формы, 32 МБ.
const maxUploadMemory = 32 << 20

// Handler управляет HTTP-запросами на загрузку изображений.
type Handler struct {
	log     *slog.Logger // Логгер для записи информации и ошибок
	service Service      // Сервис загрузки файлов
}

// Service описывает интерфейс сервиса загрузки файлов.
type Service interface {
	UploadAll(ctx context.Context, files []uploadservice.File) ([]string, []uploadservice.Failure)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Загрузить изображения товара
// @Description Принимает multipart-форму с полем images. Возвращает URL успешных загрузок и список неудач.
// @Tags Products
// @Accept  multipart/form-data
// @Produce  json
// @Param images formData file true "Файлы изображений"
// @Success 200 {object} map[string]any "URL загруженных изображений"
// @Failure 400 {object} response.ErrorResponse "Некорректная multipart-форма"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера при загрузке"
// @Security BearerAuth
// @Router /products/images [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.product.upload"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		log.Error("failed to parse multipart form", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid multipart form"))
		return
	}

	headers := r.MultipartForm.File["images"]
	if len(headers) == 0 {
		log.Error("no files in form")
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("no files in form"))
		return
	}

	files := make([]uploadservice.File, 0, len(headers))
	for _, fh := range headers {
		f, err := fh.Open()
		if err != nil {
			log.Error("failed to open uploaded file", slog.String("name", fh.Filename), sl.Err(err))
			continue
		}
		data, err := io.ReadAll(f)
		_ = f.Close()
		if err != nil {
			log.Error("failed to read uploaded file", slog.String("name", fh.Filename), sl.Err(err))
			continue
		}
		files = append(files, uploadservice.File{
			Name:        fh.Filename,
			ContentType: fh.Header.Get("Content-Type"),
			Data:        data,
		})
	}

	urls, failures := h.service.UploadAll(r.Context(), files)

	log.Info("upload finished",
		slog.Int("uploaded", len(urls)),
		slog.Int("failed", len(failures)))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"urls":     urls,
		"failures": failures,
	}))
}
