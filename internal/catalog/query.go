// Package catalog реализует движок выборки каталога: фильтрацию по категории,
// поиск по подстроке и сортировку видимой последовательности товаров.
//
// Apply — чистая функция: входной срез не изменяется, сортировка выполняется
// над копией и стабильна, при равенстве ключей сохраняется исходный порядок.
package catalog

import (
	"sort"
	"strings"

	"github.com/magabrotheeeer/marketplace-hub/internal/models"
)

// Apply возвращает видимую последовательность товаров для заданных параметров.
//
// Товар попадает в выборку, если его категория совпадает с q.Category
// (пустая строка — любая категория) и хотя бы одно из полей title,
// description, category содержит q.Search без учета регистра
// (пустая строка поиска пропускает все). После фильтрации выборка
// сортируется по q.Sort, неизвестный ключ оставляет порядок как есть.
func Apply(products []*models.Product, q models.CatalogQuery) []*models.Product {
	search := strings.ToLower(q.Search)

	result := make([]*models.Product, 0, len(products))
	for _, p := range products {
		if q.Category != "" && p.Category != q.Category {
			continue
		}
		if search != "" && !matchesSearch(p, search) {
			continue
		}
		result = append(result, p)
	}

	switch q.Sort {
	case models.SortPriceLow:
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].Price < result[j].Price
		})
	case models.SortPriceHigh:
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].Price > result[j].Price
		})
	case models.SortNewest:
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].CreatedAt.After(result[j].CreatedAt)
		})
	case models.SortFeatured:
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].Featured && !result[j].Featured
		})
	default:
	}

	return result
}

func matchesSearch(p *models.Product, search string) bool {
	return strings.Contains(strings.ToLower(p.Title), search) ||
		strings.Contains(strings.ToLower(p.Description), search) ||
		strings.Contains(strings.ToLower(p.Category), search)
}
