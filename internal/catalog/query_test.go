package catalog

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/marketplace-hub/internal/models"
)

func testProducts() []*models.Product {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	return []*models.Product{
		{ID: "p1", Title: "iPhone 14 Pro", Description: "Смартфон Apple", Category: "Électronique", Price: 950, CreatedAt: base.AddDate(0, 0, 1)},
		{ID: "p2", Title: "Canapé trois places", Description: "Canapé en cuir", Category: "Maison", Price: 400, CreatedAt: base.AddDate(0, 0, 3), Featured: true},
		{ID: "p3", Title: "Samsung Galaxy S23", Description: "Téléphone Android", Category: "Électronique", Price: 700, CreatedAt: base.AddDate(0, 0, 2)},
		{ID: "p4", Title: "Vélo de ville", Description: "Très bon état", Category: "Sports", Price: 150, CreatedAt: base},
		{ID: "p5", Title: "Chargeur iPhone", Description: "Câble et adaptateur", Category: "Électronique", Price: 25, CreatedAt: base.AddDate(0, 0, 4)},
	}
}

func ids(products []*models.Product) []string {
	res := make([]string, 0, len(products))
	for _, p := range products {
		res = append(res, p.ID)
	}
	return res
}

func TestApply_Filter(t *testing.T) {
	products := testProducts()

	tests := []struct {
		name    string
		query   models.CatalogQuery
		wantIDs []string
	}{
		{
			name:    "пустые фильтры возвращают все товары",
			query:   models.CatalogQuery{},
			wantIDs: []string{"p1", "p2", "p3", "p4", "p5"},
		},
		{
			name:    "фильтр по категории",
			query:   models.CatalogQuery{Category: "Électronique"},
			wantIDs: []string{"p1", "p3", "p5"},
		},
		{
			name:    "поиск без учета регистра по названию",
			query:   models.CatalogQuery{Search: "iphone"},
			wantIDs: []string{"p1", "p5"},
		},
		{
			name:    "поиск по описанию",
			query:   models.CatalogQuery{Search: "android"},
			wantIDs: []string{"p3"},
		},
		{
			name:    "поиск по названию категории",
			query:   models.CatalogQuery{Search: "sports"},
			wantIDs: []string{"p4"},
		},
		{
			name:    "категория и поиск вместе",
			query:   models.CatalogQuery{Category: "Électronique", Search: "samsung"},
			wantIDs: []string{"p3"},
		},
		{
			name:    "ничего не найдено",
			query:   models.CatalogQuery{Search: "велосипед"},
			wantIDs: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Apply(products, tt.query)
			assert.Equal(t, tt.wantIDs, ids(got))
		})
	}
}

func TestApply_SearchResultIsSubset(t *testing.T) {
	products := testProducts()
	got := Apply(products, models.CatalogQuery{Search: "ip"})

	require.NotEmpty(t, got)
	for _, p := range got {
		matches := strings.Contains(strings.ToLower(p.Title), "ip") ||
			strings.Contains(strings.ToLower(p.Description), "ip") ||
			strings.Contains(strings.ToLower(p.Category), "ip")
		assert.True(t, matches, "товар %s не соответствует поиску", p.ID)
	}
}

func TestApply_Sort(t *testing.T) {
	products := testProducts()

	tests := []struct {
		name    string
		query   models.CatalogQuery
		wantIDs []string
	}{
		{
			name:    "по возрастанию цены",
			query:   models.CatalogQuery{Sort: models.SortPriceLow},
			wantIDs: []string{"p5", "p4", "p2", "p3", "p1"},
		},
		{
			name:    "по убыванию цены",
			query:   models.CatalogQuery{Sort: models.SortPriceHigh},
			wantIDs: []string{"p1", "p3", "p2", "p4", "p5"},
		},
		{
			name:    "сначала новые",
			query:   models.CatalogQuery{Sort: models.SortNewest},
			wantIDs: []string{"p5", "p2", "p3", "p1", "p4"},
		},
		{
			name:    "сначала продвигаемые",
			query:   models.CatalogQuery{Sort: models.SortFeatured},
			wantIDs: []string{"p2", "p1", "p3", "p4", "p5"},
		},
		{
			name:    "неизвестный ключ сохраняет порядок",
			query:   models.CatalogQuery{Sort: "alphabetical"},
			wantIDs: []string{"p1", "p2", "p3", "p4", "p5"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Apply(products, tt.query)
			assert.Equal(t, tt.wantIDs, ids(got))
		})
	}
}

func TestApply_PriceSortsAreReversed(t *testing.T) {
	// Без равных цен сортировки price-low и price-high зеркальны
	products := testProducts()

	low := Apply(products, models.CatalogQuery{Sort: models.SortPriceLow})
	high := Apply(products, models.CatalogQuery{Sort: models.SortPriceHigh})

	require.Equal(t, len(low), len(high))
	for i := range low {
		assert.Equal(t, low[i].ID, high[len(high)-1-i].ID)
	}
}

func TestApply_StableOnEqualKeys(t *testing.T) {
	created := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	products := []*models.Product{
		{ID: "a", Price: 100, CreatedAt: created},
		{ID: "b", Price: 100, CreatedAt: created},
		{ID: "c", Price: 100, CreatedAt: created},
	}

	got := Apply(products, models.CatalogQuery{Sort: models.SortPriceLow})
	assert.Equal(t, []string{"a", "b", "c"}, ids(got))

	got = Apply(products, models.CatalogQuery{Sort: models.SortNewest})
	assert.Equal(t, []string{"a", "b", "c"}, ids(got))
}

func TestApply_DoesNotMutateInput(t *testing.T) {
	products := testProducts()
	original := ids(products)

	_ = Apply(products, models.CatalogQuery{Sort: models.SortPriceLow})
	_ = Apply(products, models.CatalogQuery{Sort: models.SortNewest, Search: "iphone"})

	assert.Equal(t, original, ids(products))
}
