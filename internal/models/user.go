// Package models содержит доменную модель пользователя торговой площадки,
// включающую данные учётной записи, хэш пароля и роль.
// Структура используется в бизнес‑логике и при работе с хранилищем.
package models

// Роли пользователя. Роль определяет доступ к кабинету продавца,
// активное представление (каталог или кабинет) выбирает клиент.
const (
	RoleBuyer  = "buyer"
	RoleSeller = "seller"
)

// User представляет зарегистрированного пользователя системы.
type User struct {
	UUID         string // Уникальный идентификатор пользователя
	Name         string // Отображаемое имя
	Email        string // Электронная почта (уникальная, используется для входа)
	Phone        string // Контактный телефон, попадает в карточку товара
	PasswordHash string // Хэш пароля пользователя
	Role         string // Роль пользователя, buyer или seller
}

// DummyRegister используется для приёма данных регистрации из JSON-запроса.
type DummyRegister struct {
	Name     string `json:"name" validate:"required"`               // Отображаемое имя
	Email    string `json:"email" validate:"required,email"`        // Электронная почта
	Phone    string `json:"phone" validate:"required"`              // Телефон
	Password string `json:"password" validate:"required,min=6"`     // Пароль (не короче 6 символов)
	IsSeller bool   `json:"is_seller"`                              // Регистрация сразу как продавец
}

// DummyLogin используется для приёма данных входа из JSON-запроса.
type DummyLogin struct {
	Email    string `json:"email" validate:"required,email"`    // Электронная почта
	Password string `json:"password" validate:"required,min=6"` // Пароль (не короче 6 символов)
}
