// Package models содержит доменные структуры, описывающие товар каталога,
// а также вспомогательные типы для работы с данными из внешних источников (например, JSON-запросы).
package models

import "time"

// Product представляет собой основную модель товара,
// используемую в бизнес-логике и хранилище.
// Поля продавца денормализованы на товар: карточка товара и переход
// в мессенджер не должны требовать живой сессии продавца.
type Product struct {
	ID          string    `json:"id"`           // Уникальный идентификатор товара
	Title       string    `json:"title"`        // Название товара
	Description string    `json:"description"`  // Описание
	Price       float64   `json:"price"`        // Цена в долларах, > 0
	Images      []string  `json:"images"`       // Упорядоченный список URL изображений
	Category    string    `json:"category"`     // Название категории из справочника
	Stock       int       `json:"stock"`        // Остаток на складе, >= 0
	SellerID    string    `json:"seller_id"`    // Идентификатор продавца (невладеющая ссылка)
	SellerName  string    `json:"seller_name"`  // Имя продавца на момент публикации
	SellerPhone string    `json:"seller_phone"` // Телефон продавца для связи
	Location    string    `json:"location"`     // Местоположение товара
	CreatedAt   time.Time `json:"created_at"`   // Дата публикации
	Featured    bool      `json:"featured"`     // Товар продвигается в выдаче
}

// DummyProduct используется для приёма черновика товара из JSON-запроса,
// прежде чем конвертировать его в Product при сохранении.
// Поля проверяются по порядку в бизнес-логике: первая ошибка прерывает
// сохранение и возвращается пользователю одним сообщением.
type DummyProduct struct {
	Title       string   `json:"title"`       // Название
	Description string   `json:"description"` // Описание
	Price       float64  `json:"price"`       // Цена (>0)
	Category    string   `json:"category"`    // Название категории
	Stock       int      `json:"stock"`       // Остаток
	Location    string   `json:"location"`    // Местоположение
	Images      []string `json:"images"`      // URL загруженных изображений, минимум один
	Featured    bool     `json:"featured"`    // Продвижение
}
