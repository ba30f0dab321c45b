// Package auth содержит логику бизнес-уровня для работы с пользователями и аутентификацией.
package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/magabrotheeeer/marketplace-hub/internal/lib/jwt"
	"github.com/magabrotheeeer/marketplace-hub/internal/lib/password"
	"github.com/magabrotheeeer/marketplace-hub/internal/models"
)

// ErrInvalidCredentials возвращается при неверном email или пароле.
// Причина не уточняется, чтобы не раскрывать существование учётной записи.
var ErrInvalidCredentials = errors.New("invalid credentials")

// UserRepository описывает контракт для работы с пользователями в базе данных.
type UserRepository interface {
	// RegisterUser сохраняет нового пользователя и возвращает его uid.
	RegisterUser(ctx context.Context, user models.User) (string, error)

	// GetUserByEmail возвращает пользователя по email или ошибку, если не найден.
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)

	// GetUserByUUID возвращает пользователя по uid.
	GetUserByUUID(ctx context.Context, uid string) (*models.User, error)

	// UpdateUserRole меняет роль пользователя.
	UpdateUserRole(ctx context.Context, uid, role string) (int, error)
}

// AuthService отвечает за регистрацию, авторизацию и переключение роли продавца.
type AuthService struct {
	users    UserRepository
	jwtMaker jwt.Maker
}

// NewAuthService создает новый экземпляр AuthService.
func NewAuthService(users UserRepository, jwtMaker jwt.Maker) *AuthService {
	return &AuthService{
		users:    users,
		jwtMaker: jwtMaker,
	}
}

// Register создает нового пользователя с хэшированием пароля и сразу выдает токен:
// после регистрации клиент попадает в систему без отдельного входа.
func (s *AuthService) Register(ctx context.Context, req models.DummyRegister) (*models.User, string, error) {
	hashed, err := password.GetHash(req.Password)
	if err != nil {
		return nil, "", err
	}

	role := models.RoleBuyer
	if req.IsSeller {
		role = models.RoleSeller
	}
	user := models.User{
		UUID:         uuid.New().String(),
		Name:         req.Name,
		Email:        req.Email,
		Phone:        req.Phone,
		PasswordHash: hashed,
		Role:         role,
	}

	uid, err := s.users.RegisterUser(ctx, user)
	if err != nil {
		return nil, "", err
	}
	user.UUID = uid

	token, err := s.jwtMaker.GenerateToken(user.Email, user.Role, user.UUID)
	if err != nil {
		return nil, "", err
	}
	return &user, token, nil
}

// Login проверяет пароль пользователя и генерирует JWT.
func (s *AuthService) Login(ctx context.Context, email, rawPassword string) (*models.User, string, error) {
	user, err := s.users.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, "", ErrInvalidCredentials
	}
	if err := password.CompareHash(user.PasswordHash, rawPassword); err != nil {
		return nil, "", ErrInvalidCredentials
	}
	token, err := s.jwtMaker.GenerateToken(user.Email, user.Role, user.UUID)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// ToggleSellerMode переключает долговременную роль пользователя buyer<->seller
// и возвращает новую роль со свежим токеном, чтобы клиент не держал устаревшую роль.
func (s *AuthService) ToggleSellerMode(ctx context.Context, uid string) (string, string, error) {
	const op = "auth.ToggleSellerMode"

	user, err := s.users.GetUserByUUID(ctx, uid)
	if err != nil {
		return "", "", fmt.Errorf("%s: %w", op, err)
	}

	newRole := models.RoleSeller
	if user.Role == models.RoleSeller {
		newRole = models.RoleBuyer
	}

	if _, err := s.users.UpdateUserRole(ctx, uid, newRole); err != nil {
		return "", "", fmt.Errorf("%s: %w", op, err)
	}

	token, err := s.jwtMaker.GenerateToken(user.Email, newRole, user.UUID)
	if err != nil {
		return "", "", fmt.Errorf("%s: %w", op, err)
	}
	return newRole, token, nil
}
