// Package product содержит бизнес-логику каталога и кабинета продавца:
// проверку и сохранение черновиков товаров, выборку каталога, агрегаты
// статистики и переход в мессенджер.
package product

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/magabrotheeeer/marketplace-hub/internal/catalog"
	"github.com/magabrotheeeer/marketplace-hub/internal/lib/whatsapp"
	"github.com/magabrotheeeer/marketplace-hub/internal/models"
)

// Repository определяет методы для работы с товарами и справочником в хранилище.
type Repository interface {
	// CreateProduct добавляет новый товар.
	CreateProduct(ctx context.Context, p models.Product) error
	// ReadProduct возвращает товар по ID, nil — если товара нет.
	ReadProduct(ctx context.Context, id string) (*models.Product, error)
	// UpdateProduct обновляет товар продавца, возвращает количество изменённых строк.
	UpdateProduct(ctx context.Context, p models.Product, id, sellerID string) (int, error)
	// RemoveProduct удаляет товар продавца, возвращает количество удалённых строк.
	RemoveProduct(ctx context.Context, id, sellerID string) (int, error)
	// ListProducts возвращает рабочий набор каталога с пагинацией.
	ListProducts(ctx context.Context, limit, offset int) ([]*models.Product, error)
	// ListProductsBySeller возвращает товары одного продавца.
	ListProductsBySeller(ctx context.Context, sellerID string, limit, offset int) ([]*models.Product, error)
	// CountSellerStats подсчитывает количество товаров продавца и сумму цен.
	CountSellerStats(ctx context.Context, sellerID string) (int, float64, error)
	// ListCategories возвращает справочник категорий.
	ListCategories(ctx context.Context) ([]*models.Category, error)
	// CategoryExists проверяет категорию по названию.
	CategoryExists(ctx context.Context, name string) (bool, error)
}

// UserDirectory отдает данные продавца для денормализации на товар.
type UserDirectory interface {
	GetUserByUUID(ctx context.Context, uid string) (*models.User, error)
}

// Cache описывает методы для кэширования данных и счетчиков просмотров.
type Cache interface {
	// Get пытается получить значение из кеша по ключу.
	Get(key string, result any) (bool, error)
	// Set сохраняет значение в кеш с временем жизни.
	Set(key string, value any, expiration time.Duration) error
	// Invalidate удаляет значение из кеша по ключу.
	Invalidate(key string) error
	// IncrCounter увеличивает счетчик просмотров.
	IncrCounter(key string) (int64, error)
	// GetCounter возвращает счетчик просмотров, 0 — если ключа нет.
	GetCounter(key string) (int64, error)
}

// EventPublisher публикует события каталога для внешних потребителей.
type EventPublisher interface {
	Publish(routingKey string, message any) error
}

// Лимит выборки товаров продавца для подсчета просмотров в статистике.
const sellerProductsLimit = 1000

// Service реализует бизнес-логику работы с товарами, включая кеширование
// и публикацию событий.
type Service struct {
	repo   Repository
	users  UserDirectory
	cache  Cache
	events EventPublisher
	log    *slog.Logger
}

// NewService создает новый экземпляр Service.
func NewService(repo Repository, users UserDirectory, cache Cache, events EventPublisher, log *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		users:  users,
		cache:  cache,
		events: events,
		log:    log,
	}
}

// validateDraft проверяет черновик по порядку, первая ошибка прерывает проверку.
func (s *Service) validateDraft(ctx context.Context, req models.DummyProduct) error {
	if strings.TrimSpace(req.Title) == "" {
		return &ValidationError{Msg: "title is required"}
	}
	if strings.TrimSpace(req.Description) == "" {
		return &ValidationError{Msg: "description is required"}
	}
	if req.Price <= 0 {
		return &ValidationError{Msg: "price must be greater than 0"}
	}
	if req.Category == "" {
		return &ValidationError{Msg: "category is required"}
	}
	exists, err := s.repo.CategoryExists(ctx, req.Category)
	if err != nil {
		return err
	}
	if !exists {
		return &ValidationError{Msg: "unknown category"}
	}
	if len(req.Images) == 0 {
		return &ValidationError{Msg: "at least one image is required"}
	}
	return nil
}

// Create проверяет черновик, прикрепляет данные продавца и сохраняет товар.
// Возвращает ID созданной записи.
func (s *Service) Create(ctx context.Context, sellerUID string, req models.DummyProduct) (string, error) {
	if err := s.validateDraft(ctx, req); err != nil {
		return "", err
	}

	seller, err := s.users.GetUserByUUID(ctx, sellerUID)
	if err != nil {
		return "", fmt.Errorf("failed to resolve seller: %w", err)
	}

	p := models.Product{
		ID:          uuid.New().String(),
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		Images:      req.Images,
		Category:    req.Category,
		Stock:       req.Stock,
		SellerID:    seller.UUID,
		SellerName:  seller.Name,
		SellerPhone: seller.Phone,
		Location:    req.Location,
		CreatedAt:   time.Now().UTC(),
		Featured:    req.Featured,
	}

	if err := s.repo.CreateProduct(ctx, p); err != nil {
		return "", err
	}
	s.log.Info("created new product", slog.String("id", p.ID))

	cacheKey := "product:" + p.ID
	if err := s.cache.Set(cacheKey, p, time.Hour); err != nil {
		s.log.Warn("failed to cache product", slog.String("key", cacheKey), slog.Any("err", err))
	}
	if err := s.events.Publish("product.created", p); err != nil {
		s.log.Warn("failed to publish product.created", slog.String("id", p.ID), slog.Any("err", err))
	}

	return p.ID, nil
}

// Read возвращает товар по ID, используя кеш или репозиторий,
// и увеличивает счетчик просмотров.
func (s *Service) Read(ctx context.Context, id string) (*models.Product, error) {
	var result *models.Product
	cacheKey := "product:" + id
	found, err := s.cache.Get(cacheKey, &result)
	if err != nil {
		return nil, err
	}
	if !found {
		result, err = s.repo.ReadProduct(ctx, id)
		if err != nil {
			return nil, err
		}
		if result == nil {
			return nil, ErrNotFound
		}
		if err := s.cache.Set(cacheKey, result, time.Hour); err != nil {
			s.log.Warn("failed to add to cache", slog.String("key", cacheKey), slog.Any("err", err))
		}
	}

	if _, err := s.cache.IncrCounter("product:views:" + id); err != nil {
		s.log.Warn("failed to count view", slog.String("id", id), slog.Any("err", err))
	}
	return result, nil
}

// Update проверяет черновик и обновляет товар продавца.
func (s *Service) Update(ctx context.Context, sellerUID, id string, req models.DummyProduct) error {
	if err := s.validateDraft(ctx, req); err != nil {
		return err
	}

	p := models.Product{
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		Images:      req.Images,
		Category:    req.Category,
		Stock:       req.Stock,
		Location:    req.Location,
		Featured:    req.Featured,
	}

	rows, err := s.repo.UpdateProduct(ctx, p, id, sellerUID)
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrNotFound
	}
	s.log.Info("updated product", slog.String("id", id))

	// Кеш проще сбросить: следующий Read перечитает полную запись
	if err := s.cache.Invalidate("product:" + id); err != nil {
		s.log.Warn("failed to invalidate cache", slog.String("id", id), slog.Any("err", err))
	}
	return nil
}

// Remove удаляет товар продавца и инвалидирует кеш.
func (s *Service) Remove(ctx context.Context, sellerUID, id string) error {
	if err := s.cache.Invalidate("product:" + id); err != nil {
		s.log.Warn("failed to remove from cache", slog.String("id", id), slog.Any("err", err))
	}

	rows, err := s.repo.RemoveProduct(ctx, id, sellerUID)
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrNotFound
	}

	if err := s.events.Publish("product.removed", map[string]string{"id": id}); err != nil {
		s.log.Warn("failed to publish product.removed", slog.String("id", id), slog.Any("err", err))
	}
	return nil
}

// Catalog возвращает видимую последовательность каталога: рабочий набор
// из хранилища, пропущенный через движок выборки.
func (s *Service) Catalog(ctx context.Context, q models.CatalogQuery, limit, offset int) ([]*models.Product, error) {
	products, err := s.repo.ListProducts(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	return catalog.Apply(products, q), nil
}

// SellerProducts возвращает товары текущего продавца.
func (s *Service) SellerProducts(ctx context.Context, sellerUID string, limit, offset int) ([]*models.Product, error) {
	return s.repo.ListProductsBySeller(ctx, sellerUID, limit, offset)
}

// Categories возвращает справочник категорий.
func (s *Service) Categories(ctx context.Context) ([]*models.Category, error) {
	return s.repo.ListCategories(ctx)
}

// Stats собирает показатели кабинета продавца. Количество и выручка
// считаются по хранилищу, просмотры — по счетчикам в кеше.
// ActiveOrders остается нулевым до подключения сервиса заказов.
func (s *Service) Stats(ctx context.Context, sellerUID string) (*models.SellerStats, error) {
	count, revenue, err := s.repo.CountSellerStats(ctx, sellerUID)
	if err != nil {
		return nil, err
	}

	var views int64
	products, err := s.repo.ListProductsBySeller(ctx, sellerUID, sellerProductsLimit, 0)
	if err != nil {
		return nil, err
	}
	for _, p := range products {
		v, err := s.cache.GetCounter("product:views:" + p.ID)
		if err != nil {
			s.log.Warn("failed to read view counter", slog.String("id", p.ID), slog.Any("err", err))
			continue
		}
		views += v
	}

	return &models.SellerStats{
		TotalProducts: count,
		TotalRevenue:  revenue,
		TotalViews:    views,
		ActiveOrders:  0,
	}, nil
}

// ContactLink строит ссылку в мессенджер для связи с продавцом товара.
// Просмотр ссылки не считается просмотром товара.
func (s *Service) ContactLink(ctx context.Context, id string) (string, error) {
	p, err := s.repo.ReadProduct(ctx, id)
	if err != nil {
		return "", err
	}
	if p == nil {
		return "", ErrNotFound
	}
	return whatsapp.ContactLink(p)
}
