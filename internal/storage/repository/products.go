package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/magabrotheeeer/marketplace-hub/internal/models"
)

// Список изображений хранится одной JSONB-колонкой: порядок URL значим,
// а по отдельным элементам запросов не бывает.

// CreateProduct вставляет новый товар.
func (s *Storage) CreateProduct(ctx context.Context, p models.Product) error {
	const op = "storage.CreateProduct"
	select {
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	images, err := json.Marshal(p.Images)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	query := `INSERT INTO products (id, title, description, price, images, category, stock,
			      seller_id, seller_name, seller_phone, location, created_at, featured)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err = s.DB.ExecContext(ctx, query,
		p.ID, p.Title, p.Description, p.Price, images, p.Category, p.Stock,
		p.SellerID, p.SellerName, p.SellerPhone, p.Location, p.CreatedAt, p.Featured)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// ReadProduct возвращает товар по его ID, nil — если товара нет.
func (s *Storage) ReadProduct(ctx context.Context, id string) (*models.Product, error) {
	const op = "storage.ReadProduct"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, title, description, price, images, category, stock,
				seller_id, seller_name, seller_phone, location, created_at, featured
			  FROM products WHERE id = $1`
	row := s.DB.QueryRowContext(ctx, query, id)

	result, err := scanProduct(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// UpdateProduct обновляет товар продавца и возвращает количество изменённых строк.
// Фильтр по seller_id не дает продавцу менять чужие товары.
func (s *Storage) UpdateProduct(ctx context.Context, p models.Product, id, sellerID string) (int, error) {
	const op = "storage.UpdateProduct"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	images, err := json.Marshal(p.Images)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	query := `UPDATE products
			  SET title = $1, description = $2, price = $3, images = $4, category = $5,
			      stock = $6, location = $7, featured = $8
			  WHERE id = $9 AND seller_id = $10`
	result, err := s.DB.ExecContext(ctx, query,
		p.Title, p.Description, p.Price, images, p.Category,
		p.Stock, p.Location, p.Featured, id, sellerID)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return int(rowsAffected), nil
}

// RemoveProduct удаляет товар продавца и возвращает количество удалённых строк.
func (s *Storage) RemoveProduct(ctx context.Context, id, sellerID string) (int, error) {
	const op = "storage.RemoveProduct"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `DELETE FROM products WHERE id = $1 AND seller_id = $2`
	result, err := s.DB.ExecContext(ctx, query, id, sellerID)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return int(rowsAffected), nil
}

// ListProducts возвращает рабочий набор каталога с пагинацией.
// Базовый порядок — по дате публикации и id, он же порядок "как есть"
// для движка выборки.
func (s *Storage) ListProducts(ctx context.Context, limit, offset int) ([]*models.Product, error) {
	const op = "storage.ListProducts"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, title, description, price, images, category, stock,
				seller_id, seller_name, seller_phone, location, created_at, featured
			  FROM products
			  ORDER BY created_at, id
			  LIMIT $1 OFFSET $2`
	rows, err := s.DB.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	return collectProducts(op, rows)
}

// ListProductsBySeller возвращает товары одного продавца с пагинацией.
func (s *Storage) ListProductsBySeller(ctx context.Context, sellerID string, limit, offset int) ([]*models.Product, error) {
	const op = "storage.ListProductsBySeller"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, title, description, price, images, category, stock,
				seller_id, seller_name, seller_phone, location, created_at, featured
			  FROM products
			  WHERE seller_id = $1
			  ORDER BY created_at, id
			  LIMIT $2 OFFSET $3`
	rows, err := s.DB.QueryContext(ctx, query, sellerID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	return collectProducts(op, rows)
}

// CountSellerStats подсчитывает количество товаров продавца и сумму их цен.
func (s *Storage) CountSellerStats(ctx context.Context, sellerID string) (int, float64, error) {
	const op = "storage.CountSellerStats"
	select {
	case <-ctx.Done():
		return 0, 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT COUNT(*), COALESCE(SUM(price), 0)
			  FROM products WHERE seller_id = $1`
	var count int
	var revenue float64
	if err := s.DB.QueryRowContext(ctx, query, sellerID).Scan(&count, &revenue); err != nil {
		return 0, 0, fmt.Errorf("%s: %w", op, err)
	}
	return count, revenue, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProduct(row rowScanner) (*models.Product, error) {
	var p models.Product
	var images []byte
	if err := row.Scan(&p.ID, &p.Title, &p.Description, &p.Price, &images, &p.Category, &p.Stock,
		&p.SellerID, &p.SellerName, &p.SellerPhone, &p.Location, &p.CreatedAt, &p.Featured); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(images, &p.Images); err != nil {
		return nil, err
	}
	return &p, nil
}

func collectProducts(op string, rows *sql.Rows) ([]*models.Product, error) {
	var result []*models.Product
	for rows.Next() {
		item, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}
