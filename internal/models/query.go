// Package models содержит параметры запроса каталога: строку поиска,
// фильтр по категории и ключ сортировки видимой последовательности товаров.
package models

// Ключи сортировки каталога. Любое другое значение сохраняет исходный порядок.
const (
	SortPriceLow  = "price-low"  // По возрастанию цены
	SortPriceHigh = "price-high" // По убыванию цены
	SortNewest    = "newest"     // Сначала новые
	SortFeatured  = "featured"   // Сначала продвигаемые
)

// CatalogQuery представляет параметры фильтрации и сортировки каталога,
// которые передаются в движок выборки.
type CatalogQuery struct {
	Search   string // Подстрока для поиска по названию, описанию и категории, без учета регистра
	Category string // Название категории, пустая строка — все категории
	Sort     string // Ключ сортировки
}
