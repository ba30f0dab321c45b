// Package objectstorage реализует клиент внешнего объектного хранилища,
// в которое загружаются изображения товаров.
//
// Контракт хранилища: PUT байтов файла под уникальным ключом, в ответ —
// долговременный URL для чтения. Ошибка загрузки одного файла не влияет
// на остальные: клиент работает с одним ключом за вызов.
package objectstorage

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/url"
	"strings"

	"github.com/magabrotheeeer/marketplace-hub/internal/config"
)

// Client клиент объектного хранилища.
type Client struct {
	endpoint      string
	bucket        string
	accessToken   string
	publicBaseURL string
	httpClient    *http.Client
}

// NewClient создаёт новый клиент хранилища из конфигурации.
func NewClient(cfg config.ObjectStorage) *Client {
	return &Client{
		endpoint:      strings.TrimSuffix(cfg.Endpoint, "/"),
		bucket:        cfg.Bucket,
		accessToken:   cfg.AccessToken,
		publicBaseURL: strings.TrimSuffix(cfg.PublicBaseURL, "/"),
		httpClient:    &http.Client{Timeout: cfg.TimeoutStorage},
	}
}

// Put сохраняет данные под ключом key и возвращает долговременный URL файла.
func (c *Client) Put(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	objectPath := "/" + c.bucket + "/" + url.PathEscape(key)

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, c.endpoint+objectPath, bytes.NewReader(data))
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+c.accessToken)
	req.Header.Set("Content-Type", contentType)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return "", errors.New("unexpected status: " + resp.Status)
	}

	return c.publicBaseURL + objectPath, nil
}
