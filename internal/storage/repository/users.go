package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/magabrotheeeer/marketplace-hub/internal/models"
)

// ErrUserNotFound возвращается, когда пользователь с таким email или uid не найден.
var ErrUserNotFound = errors.New("user not found")

// RegisterUser сохраняет нового пользователя и возвращает его uid.
func (s *Storage) RegisterUser(ctx context.Context, user models.User) (string, error) {
	const op = "storage.RegisterUser"
	select {
	case <-ctx.Done():
		return "", fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `INSERT INTO users (uid, name, email, phone, password_hash, role)
			  VALUES ($1, $2, $3, $4, $5, $6)
			  RETURNING uid`
	var uid string
	err := s.DB.QueryRowContext(ctx, query,
		user.UUID, user.Name, user.Email, user.Phone, user.PasswordHash, user.Role).Scan(&uid)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return uid, nil
}

// GetUserByEmail возвращает пользователя по email.
func (s *Storage) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	const op = "storage.GetUserByEmail"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT uid, name, email, phone, password_hash, role
			  FROM users WHERE email = $1`
	row := s.DB.QueryRowContext(ctx, query, email)

	var user models.User
	err := row.Scan(&user.UUID, &user.Name, &user.Email, &user.Phone, &user.PasswordHash, &user.Role)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%s: %w", op, ErrUserNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &user, nil
}

// GetUserByUUID возвращает пользователя по его uid.
func (s *Storage) GetUserByUUID(ctx context.Context, uid string) (*models.User, error) {
	const op = "storage.GetUserByUUID"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT uid, name, email, phone, password_hash, role
			  FROM users WHERE uid = $1`
	row := s.DB.QueryRowContext(ctx, query, uid)

	var user models.User
	err := row.Scan(&user.UUID, &user.Name, &user.Email, &user.Phone, &user.PasswordHash, &user.Role)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%s: %w", op, ErrUserNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &user, nil
}

// UpdateUserRole меняет роль пользователя и возвращает количество изменённых строк.
func (s *Storage) UpdateUserRole(ctx context.Context, uid, role string) (int, error) {
	const op = "storage.UpdateUserRole"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `UPDATE users SET role = $1 WHERE uid = $2`
	result, err := s.DB.ExecContext(ctx, query, role, uid)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return int(rowsAffected), nil
}
