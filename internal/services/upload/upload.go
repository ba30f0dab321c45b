// Package upload содержит логику загрузки изображений товара в объектное
// хранилище. Файлы обрабатываются последовательно в порядке выбора,
// ошибка одного файла не прерывает загрузку остальных.
package upload

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/magabrotheeeer/marketplace-hub/internal/lib/sl"
)

// ObjectStorage описывает контракт для сохранения файлов.
type ObjectStorage interface {
	// Put сохраняет объект и возвращает его публичный URL.
	Put(ctx context.Context, key string, data []byte, contentType string) (string, error)
}

// File входной файл загрузки.
type File struct {
	Name        string
	ContentType string
	Data        []byte
}

// Failure описывает файл, который не удалось загрузить.
type Failure struct {
	Name string `json:"name"`
	Err  string `json:"error"`
}

// Service загружает изображения в объектное хранилище.
type Service struct {
	storage ObjectStorage
	log     *slog.Logger
}

// NewService создает новый экземпляр Service.
func NewService(storage ObjectStorage, log *slog.Logger) *Service {
	return &Service{
		storage: storage,
		log:     log,
	}
}

// UploadAll загружает файлы по одному в исходном порядке и возвращает
// публичные URL успешных загрузок вместе со списком неудач.
// Отмена контекста прерывает оставшиеся файлы.
func (s *Service) UploadAll(ctx context.Context, files []File) ([]string, []Failure) {
	urls := make([]string, 0, len(files))
	var failures []Failure

	for _, f := range files {
		select {
		case <-ctx.Done():
			failures = append(failures, Failure{Name: f.Name, Err: ctx.Err().Error()})
			continue
		default:
		}

		key := fmt.Sprintf("%d_%s", time.Now().UnixMilli(), f.Name)
		url, err := s.storage.Put(ctx, key, f.Data, f.ContentType)
		if err != nil {
			s.log.Error("failed to upload file", slog.String("name", f.Name), sl.Err(err))
			failures = append(failures, Failure{Name: f.Name, Err: err.Error()})
			continue
		}
		urls = append(urls, url)
	}
	return urls, failures
}
