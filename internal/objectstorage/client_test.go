package objectstorage

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/marketplace-hub/internal/config"
)

func newTestClient(endpoint string) *Client {
	return NewClient(config.ObjectStorage{
		Endpoint:       endpoint,
		Bucket:         "products",
		AccessToken:    "test-token",
		PublicBaseURL:  "https://cdn.example.com",
		TimeoutStorage: 5 * time.Second,
	})
}

func TestPut_Success(t *testing.T) {
	var gotPath, gotAuth, gotContentType string
	var gotBody []byte

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPut, r.Method)
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		gotContentType = r.Header.Get("Content-Type")
		gotBody, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	client := newTestClient(srv.URL)

	url, err := client.Put(context.Background(), "1700000000000_photo.jpg", []byte("image-bytes"), "image/jpeg")
	require.NoError(t, err)

	assert.Equal(t, "https://cdn.example.com/products/1700000000000_photo.jpg", url)
	assert.Equal(t, "/products/1700000000000_photo.jpg", gotPath)
	assert.Equal(t, "Bearer test-token", gotAuth)
	assert.Equal(t, "image/jpeg", gotContentType)
	assert.Equal(t, []byte("image-bytes"), gotBody)
}

func TestPut_UnexpectedStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := newTestClient(srv.URL)

	_, err := client.Put(context.Background(), "key", []byte("data"), "image/png")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected status")
}

func TestPut_ContextCanceled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	client := newTestClient(srv.URL)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.Put(ctx, "key", []byte("data"), "image/png")
	require.Error(t, err)
}
