package models

// Category статичная запись справочника категорий.
// Справочник заполняется миграцией и доступен остальной системе только на чтение.
type Category struct {
	ID   int    `json:"id"`   // Идентификатор категории
	Name string `json:"name"` // Название, на него ссылается Product.Category
	Icon string `json:"icon"` // Имя иконки для клиента
}
