// Package marketplacehub собирает HTTP-приложение торговой площадки:
// хранилище, миграции, кеш, брокер событий, сервисы и маршруты.
package marketplacehub

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi"
	"github.com/streadway/amqp"

	"github.com/magabrotheeeer/marketplace-hub/internal/cache"
	"github.com/magabrotheeeer/marketplace-hub/internal/config"
	"github.com/magabrotheeeer/marketplace-hub/internal/lib/jwt"
	"github.com/magabrotheeeer/marketplace-hub/internal/lib/rabbitmq"
	"github.com/magabrotheeeer/marketplace-hub/internal/migrations"
	"github.com/magabrotheeeer/marketplace-hub/internal/objectstorage"
	authservice "github.com/magabrotheeeer/marketplace-hub/internal/services/auth"
	productservice "github.com/magabrotheeeer/marketplace-hub/internal/services/product"
	uploadservice "github.com/magabrotheeeer/marketplace-hub/internal/services/upload"
	"github.com/magabrotheeeer/marketplace-hub/internal/storage/repository"
)

type App struct {
	server *http.Server
	logger *slog.Logger
	db     *repository.Storage
	conn   *amqp.Connection
	ch     *amqp.Channel
}

func waitForDB(db *repository.Storage) error {
	var err error
	for range 10 {
		err = repository.CheckDatabaseReady(db)
		if err == nil {
			return nil
		}
		time.Sleep(3 * time.Second)
	}
	return err
}

func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	db, err := repository.New(cfg.StorageConnectionString)
	if err != nil {
		return nil, err
	}
	if err = migrations.Run(db.DB, "./migrations"); err != nil {
		return nil, err
	}
	if err = waitForDB(db); err != nil {
		return nil, err
	}

	cacheRedis, err := cache.InitServer(ctx, cfg.RedisConnection)
	if err != nil {
		return nil, err
	}

	conn, err := rabbitmq.Connect(cfg.RabbitMQ.URL, cfg.RabbitMQ.Retries, cfg.RabbitMQ.RetryDelay)
	if err != nil {
		return nil, err
	}
	ch, err := rabbitmq.SetupChannel(conn, rabbitmq.DefaultQueues)
	if err != nil {
		closeResources(nil, conn, logger)
		return nil, err
	}
	publisher := rabbitmq.NewPublisher(ch)

	jwtMaker := jwt.NewJWTMaker(cfg.JWTSecretKey, cfg.TokenTTL)
	storageClient := objectstorage.NewClient(cfg.ObjectStorage)

	authService := authservice.NewAuthService(db, jwtMaker)
	productService := productservice.NewService(db, db, cacheRedis, publisher, logger)
	uploadService := uploadservice.NewService(storageClient, logger)

	router := chi.NewRouter()
	RegisterRoutes(router, logger, jwtMaker, authService, productService, uploadService)

	srv := &http.Server{
		Addr:         cfg.AddressHTTP,
		Handler:      router,
		ReadTimeout:  cfg.TimeoutHTTP,
		WriteTimeout: cfg.TimeoutHTTP,
		IdleTimeout:  cfg.IdleTimeout,
	}

	return &App{
		server: srv,
		logger: logger,
		db:     db,
		conn:   conn,
		ch:     ch,
	}, nil
}

func closeResources(ch *amqp.Channel, conn *amqp.Connection, logger *slog.Logger) {
	if ch != nil {
		if err := ch.Close(); err != nil {
			logger.Error("failed to close channel", slog.Any("err", err))
		}
	}
	if conn != nil {
		if err := conn.Close(); err != nil {
			logger.Error("failed to close connection", slog.Any("err", err))
		}
	}
}

func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("HTTP server starting on", slog.String("address", a.server.Addr))
		err := a.server.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			errCh <- nil
		} else {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		a.logger.Info("shutting down marketplace-hub")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := a.server.Shutdown(shutdownCtx); err != nil {
			a.logger.Error("failed to shutdown http server", slog.Any("err", err))
		}
		closeResources(a.ch, a.conn, a.logger)
		if err := a.db.DB.Close(); err != nil {
			a.logger.Error("failed to close storage", slog.Any("err", err))
		}
		return nil
	case err := <-errCh:
		closeResources(a.ch, a.conn, a.logger)
		return err
	}
}
