package repository

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/marketplace-hub/internal/models"
)

func testProduct(sellerID, title, category string, price float64, createdAt time.Time) models.Product {
	return models.Product{
		ID:          uuid.New().String(),
		Title:       title,
		Description: "description of " + title,
		Price:       price,
		Images:      []string{"https://cdn.example.com/" + title + ".jpg"},
		Category:    category,
		Stock:       1,
		SellerID:    sellerID,
		SellerName:  "Test Seller",
		SellerPhone: "+243 900 000 000",
		Location:    "Kinshasa",
		CreatedAt:   createdAt,
	}
}

func TestStorage_CreateAndReadProduct(t *testing.T) {
	storage, cleanup := setupTestDatabase(t)
	defer cleanup()

	factory := NewTestDataFactory(storage)
	sellerID := uuid.New().String()
	factory.CreateUser(t, sellerID, "Test Seller", "seller@example.com", "+243 900 000 000", "hash", "seller")
	factory.CreateCategory(t, "Électronique", "Smartphone")

	p := testProduct(sellerID, "iPhone", "Électronique", 950, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	factory.CreateProduct(t, p)

	got, err := storage.ReadProduct(context.Background(), p.ID)
	require.NoError(t, err)
	require.NotNil(t, got)

	assert.Equal(t, p.ID, got.ID)
	assert.Equal(t, p.Title, got.Title)
	assert.Equal(t, p.Price, got.Price)
	assert.Equal(t, p.Images, got.Images)
	assert.Equal(t, p.Category, got.Category)
	assert.Equal(t, p.SellerID, got.SellerID)
	assert.Equal(t, p.SellerName, got.SellerName)
	assert.Equal(t, p.SellerPhone, got.SellerPhone)
	assert.Equal(t, p.Location, got.Location)
}

func TestStorage_ReadProduct_NotFound(t *testing.T) {
	storage, cleanup := setupTestDatabase(t)
	defer cleanup()

	got, err := storage.ReadProduct(context.Background(), uuid.New().String())
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestStorage_UpdateProduct_Ownership(t *testing.T) {
	storage, cleanup := setupTestDatabase(t)
	defer cleanup()

	factory := NewTestDataFactory(storage)
	ownerID := uuid.New().String()
	strangerID := uuid.New().String()
	factory.CreateUser(t, ownerID, "Owner", "owner@example.com", "+243 900 000 001", "hash", "seller")
	factory.CreateCategory(t, "Mode", "Shirt")

	p := testProduct(ownerID, "Chemise", "Mode", 25, time.Now().UTC())
	factory.CreateProduct(t, p)

	updated := p
	updated.Price = 30

	// Чужой продавец не меняет товар
	rows, err := storage.UpdateProduct(context.Background(), updated, p.ID, strangerID)
	require.NoError(t, err)
	assert.Equal(t, 0, rows)

	// Владелец меняет
	rows, err = storage.UpdateProduct(context.Background(), updated, p.ID, ownerID)
	require.NoError(t, err)
	assert.Equal(t, 1, rows)

	got, err := storage.ReadProduct(context.Background(), p.ID)
	require.NoError(t, err)
	assert.Equal(t, 30.0, got.Price)
}

func TestStorage_RemoveProduct_Ownership(t *testing.T) {
	storage, cleanup := setupTestDatabase(t)
	defer cleanup()

	factory := NewTestDataFactory(storage)
	ownerID := uuid.New().String()
	factory.CreateUser(t, ownerID, "Owner", "owner@example.com", "+243 900 000 001", "hash", "seller")
	factory.CreateCategory(t, "Sports", "Dumbbell")

	p := testProduct(ownerID, "Vélo", "Sports", 150, time.Now().UTC())
	factory.CreateProduct(t, p)

	rows, err := storage.RemoveProduct(context.Background(), p.ID, uuid.New().String())
	require.NoError(t, err)
	assert.Equal(t, 0, rows)

	rows, err = storage.RemoveProduct(context.Background(), p.ID, ownerID)
	require.NoError(t, err)
	assert.Equal(t, 1, rows)

	got, err := storage.ReadProduct(context.Background(), p.ID)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestStorage_ListProducts_Order(t *testing.T) {
	storage, cleanup := setupTestDatabase(t)
	defer cleanup()

	factory := NewTestDataFactory(storage)
	sellerID := uuid.New().String()
	factory.CreateUser(t, sellerID, "Seller", "seller@example.com", "+243 900 000 000", "hash", "seller")
	factory.CreateCategory(t, "Électronique", "Smartphone")

	older := testProduct(sellerID, "Older", "Électronique", 100,
		time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	newer := testProduct(sellerID, "Newer", "Électronique", 200,
		time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC))
	factory.CreateProduct(t, newer)
	factory.CreateProduct(t, older)

	got, err := storage.ListProducts(context.Background(), 10, 0)
	require.NoError(t, err)
	require.Len(t, got, 2)

	// Базовый порядок — по дате публикации
	assert.Equal(t, "Older", got[0].Title)
	assert.Equal(t, "Newer", got[1].Title)
}

func TestStorage_ListProductsBySeller(t *testing.T) {
	storage, cleanup := setupTestDatabase(t)
	defer cleanup()

	factory := NewTestDataFactory(storage)
	seller1 := uuid.New().String()
	seller2 := uuid.New().String()
	factory.CreateUser(t, seller1, "Seller One", "one@example.com", "+243 900 000 001", "hash", "seller")
	factory.CreateUser(t, seller2, "Seller Two", "two@example.com", "+243 900 000 002", "hash", "seller")
	factory.CreateCategory(t, "Maison", "Home")

	factory.CreateProduct(t, testProduct(seller1, "Table", "Maison", 80, time.Now().UTC()))
	factory.CreateProduct(t, testProduct(seller1, "Chaise", "Maison", 40, time.Now().UTC()))
	factory.CreateProduct(t, testProduct(seller2, "Lampe", "Maison", 20, time.Now().UTC()))

	got, err := storage.ListProductsBySeller(context.Background(), seller1, 10, 0)
	require.NoError(t, err)
	assert.Len(t, got, 2)

	got, err = storage.ListProductsBySeller(context.Background(), uuid.New().String(), 10, 0)
	require.NoError(t, err)
	assert.Len(t, got, 0)
}

func TestStorage_CountSellerStats(t *testing.T) {
	storage, cleanup := setupTestDatabase(t)
	defer cleanup()

	factory := NewTestDataFactory(storage)
	sellerID := uuid.New().String()
	factory.CreateUser(t, sellerID, "Seller", "seller@example.com", "+243 900 000 000", "hash", "seller")
	factory.CreateCategory(t, "Véhicules", "Car")

	factory.CreateProduct(t, testProduct(sellerID, "Moto", "Véhicules", 1200, time.Now().UTC()))
	factory.CreateProduct(t, testProduct(sellerID, "Casque", "Véhicules", 50, time.Now().UTC()))

	count, revenue, err := storage.CountSellerStats(context.Background(), sellerID)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
	assert.Equal(t, 1250.0, revenue)

	// Продавец без товаров получает нули
	count, revenue, err = storage.CountSellerStats(context.Background(), uuid.New().String())
	require.NoError(t, err)
	assert.Equal(t, 0, count)
	assert.Equal(t, 0.0, revenue)
}

func TestStorage_Users(t *testing.T) {
	storage, cleanup := setupTestDatabase(t)
	defer cleanup()

	user := models.User{
		UUID:         uuid.New().String(),
		Name:         "John Doe",
		Email:        "john@example.com",
		Phone:        "+243 900 000 000",
		PasswordHash: "hashedpassword",
		Role:         models.RoleBuyer,
	}

	uid, err := storage.RegisterUser(context.Background(), user)
	require.NoError(t, err)
	assert.Equal(t, user.UUID, uid)

	byEmail, err := storage.GetUserByEmail(context.Background(), "john@example.com")
	require.NoError(t, err)
	assert.Equal(t, user.UUID, byEmail.UUID)
	assert.Equal(t, user.PasswordHash, byEmail.PasswordHash)

	_, err = storage.GetUserByEmail(context.Background(), "ghost@example.com")
	require.ErrorIs(t, err, ErrUserNotFound)

	rows, err := storage.UpdateUserRole(context.Background(), uid, models.RoleSeller)
	require.NoError(t, err)
	assert.Equal(t, 1, rows)

	byUID, err := storage.GetUserByUUID(context.Background(), uid)
	require.NoError(t, err)
	assert.Equal(t, models.RoleSeller, byUID.Role)
}

func TestStorage_Categories(t *testing.T) {
	storage, cleanup := setupTestDatabase(t)
	defer cleanup()

	factory := NewTestDataFactory(storage)
	factory.CreateCategory(t, "Électronique", "Smartphone")
	factory.CreateCategory(t, "Mode", "Shirt")

	categories, err := storage.ListCategories(context.Background())
	require.NoError(t, err)
	assert.Len(t, categories, 2)

	exists, err := storage.CategoryExists(context.Background(), "Mode")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = storage.CategoryExists(context.Background(), "Exotique")
	require.NoError(t, err)
	assert.False(t, exists)
}
