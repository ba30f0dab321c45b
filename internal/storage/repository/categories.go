package repository

import (
	"context"
	"fmt"

	"github.com/magabrotheeeer/marketplace-hub/internal/models"
)

// ListCategories возвращает справочник категорий.
func (s *Storage) ListCategories(ctx context.Context) ([]*models.Category, error) {
	const op = "storage.ListCategories"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, name, icon FROM categories ORDER BY id`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var result []*models.Category
	for rows.Next() {
		var item models.Category
		if err := rows.Scan(&item.ID, &item.Name, &item.Icon); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// CategoryExists проверяет, есть ли категория с таким названием в справочнике.
func (s *Storage) CategoryExists(ctx context.Context, name string) (bool, error) {
	const op = "storage.CategoryExists"
	select {
	case <-ctx.Done():
		return false, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT EXISTS (SELECT 1 FROM categories WHERE name = $1)`
	var exists bool
	if err := s.DB.QueryRowContext(ctx, query, name).Scan(&exists); err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}
	return exists, nil
}
