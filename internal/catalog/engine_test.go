// internal/catalog/engine_test.go
package catalog

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minshop/storefront-api/internal/models"
)

func floatPtr(v float64) *float64 { return &v }
func boolPtr(v bool) *bool        { return &v }

var fixtureTime = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func fixtureProducts() []models.Product {
	return []models.Product{
		{
			ID: "product-1", Name: "Wireless Mouse", Description: "A precise wireless mouse",
			Price: 25, Category: "electronics", InStock: true, Stock: 10, Rating: 4.5,
			CreatedAt: fixtureTime.Add(-1 * time.Hour),
		},
		{
			ID: "product-2", Name: "Mechanical Keyboard", Description: "Clicky mechanical keyboard",
			Price: 80, Category: "electronics", InStock: true, Stock: 5, Rating: 4.8,
			CreatedAt: fixtureTime.Add(-2 * time.Hour),
		},
		{
			ID: "product-3", Name: "Cotton Shirt", Description: "Soft cotton shirt",
			Price: 25, Category: "clothing", InStock: false, Stock: 0, Rating: 3.9,
			CreatedAt: fixtureTime.Add(-3 * time.Hour),
		},
		{
			ID: "product-4", Name: "Sci-Fi Novel", Description: "A wireless future awaits",
			Price: 15, Category: "books", InStock: true, Stock: 3, Rating: 4.2,
			CreatedAt: fixtureTime.Add(-4 * time.Hour),
		},
		{
			ID: "product-5", Name: "USB Hub", Description: "Compact USB hub",
			Price: 25, Category: "electronics", InStock: false, Stock: 0, Rating: 4.0,
			CreatedAt: fixtureTime.Add(-5 * time.Hour),
		},
	}
}

func TestQueryDefaults(t *testing.T) {
	repo := NewRepository(fixtureProducts())

	items, pagination := repo.Query(models.ProductQuery{})

	assert.Equal(t, 1, pagination.Page)
	assert.Equal(t, DefaultPageSize, pagination.Limit)
	assert.Equal(t, 5, pagination.Total)
	assert.Equal(t, 1, pagination.TotalPages)
	assert.False(t, pagination.HasNext)
	assert.False(t, pagination.HasPrev)

	// Default sort is createdAt descending: newest first.
	require.Len(t, items, 5)
	assert.Equal(t, "product-1", items[0].ID)
	assert.Equal(t, "product-5", items[4].ID)
}

func TestQueryFiltersAreConjunctive(t *testing.T) {
	repo := NewRepository(fixtureProducts())

	items, pagination := repo.Query(models.ProductQuery{
		Filters: models.ProductFilters{
			Category: "electronics",
			MinPrice: floatPtr(20),
			MaxPrice: floatPtr(50),
			InStock:  boolPtr(true),
		},
	})

	// Soundness: every returned item satisfies every active predicate.
	require.Len(t, items, 1)
	assert.Equal(t, "product-1", items[0].ID)
	assert.Equal(t, 1, pagination.Total)

	// Completeness: nothing that satisfies all predicates was dropped.
	for _, p := range fixtureProducts() {
		matches := p.Category == "electronics" && p.Price >= 20 && p.Price <= 50 && p.InStock
		if matches {
			assert.Equal(t, "product-1", p.ID)
		}
	}
}

func TestQuerySearchIsCaseInsensitiveOverNameAndDescription(t *testing.T) {
	repo := NewRepository(fixtureProducts())

	items, _ := repo.Query(models.ProductQuery{
		Filters: models.ProductFilters{Search: "WIRELESS"},
	})

	// Matches "Wireless Mouse" by name and the novel by description.
	require.Len(t, items, 2)
	ids := []string{items[0].ID, items[1].ID}
	assert.Contains(t, ids, "product-1")
	assert.Contains(t, ids, "product-4")
}

func TestQueryInvertedPriceRangeYieldsEmptyResult(t *testing.T) {
	repo := NewRepository(fixtureProducts())

	items, pagination := repo.Query(models.ProductQuery{
		Filters: models.ProductFilters{
			MinPrice: floatPtr(100),
			MaxPrice: floatPtr(10),
		},
	})

	assert.Empty(t, items)
	assert.Equal(t, 0, pagination.Total)
	assert.Equal(t, 0, pagination.TotalPages)
	assert.False(t, pagination.HasNext)
	assert.False(t, pagination.HasPrev)
}

func TestQueryPaginationMeta(t *testing.T) {
	repo := NewRepository(fixtureProducts())

	items, pagination := repo.Query(models.ProductQuery{Page: 2, Limit: 2})

	assert.Len(t, items, 2)
	assert.Equal(t, 5, pagination.Total)
	assert.Equal(t, 3, pagination.TotalPages)
	assert.True(t, pagination.HasNext)
	assert.True(t, pagination.HasPrev)

	items, pagination = repo.Query(models.ProductQuery{Page: 3, Limit: 2})
	assert.Len(t, items, 1)
	assert.False(t, pagination.HasNext)

	// A page past the end is empty, not an error.
	items, pagination = repo.Query(models.ProductQuery{Page: 9, Limit: 2})
	assert.Empty(t, items)
	assert.Equal(t, 9, pagination.Page)
	assert.False(t, pagination.HasNext)
}

func TestQueryNormalizesPageAndLimit(t *testing.T) {
	repo := NewRepository(fixtureProducts())

	_, pagination := repo.Query(models.ProductQuery{Page: -3, Limit: -1})
	assert.Equal(t, 1, pagination.Page)
	assert.Equal(t, DefaultPageSize, pagination.Limit)

	_, pagination = repo.Query(models.ProductQuery{Limit: 500})
	assert.Equal(t, MaxPageSize, pagination.Limit)
}

func TestQuerySortByPrice(t *testing.T) {
	repo := NewRepository(fixtureProducts())

	items, _ := repo.Query(models.ProductQuery{
		SortBy:    models.SortByPrice,
		SortOrder: models.SortAsc,
	})
	require.Len(t, items, 5)
	for i := 1; i < len(items); i++ {
		assert.LessOrEqual(t, items[i-1].Price, items[i].Price)
	}

	items, _ = repo.Query(models.ProductQuery{
		SortBy:    models.SortByPrice,
		SortOrder: models.SortDesc,
	})
	for i := 1; i < len(items); i++ {
		assert.GreaterOrEqual(t, items[i-1].Price, items[i].Price)
	}
}

func TestQuerySortIsStableOnTies(t *testing.T) {
	repo := NewRepository(fixtureProducts())

	// product-1, product-3 and product-5 all cost 25; they must keep their
	// catalog order in both directions.
	items, _ := repo.Query(models.ProductQuery{
		SortBy:    models.SortByPrice,
		SortOrder: models.SortAsc,
	})
	var tied []string
	for _, p := range items {
		if p.Price == 25 {
			tied = append(tied, p.ID)
		}
	}
	assert.Equal(t, []string{"product-1", "product-3", "product-5"}, tied)

	items, _ = repo.Query(models.ProductQuery{
		SortBy:    models.SortByPrice,
		SortOrder: models.SortDesc,
	})
	tied = tied[:0]
	for _, p := range items {
		if p.Price == 25 {
			tied = append(tied, p.ID)
		}
	}
	assert.Equal(t, []string{"product-1", "product-3", "product-5"}, tied)
}

func TestQuerySortByNameIsCaseInsensitive(t *testing.T) {
	repo := NewRepository([]models.Product{
		{ID: "a", Name: "zebra print", Price: 1},
		{ID: "b", Name: "Apple Case", Price: 2},
		{ID: "c", Name: "banana stand", Price: 3},
	})

	items, _ := repo.Query(models.ProductQuery{
		SortBy:    models.SortByName,
		SortOrder: models.SortAsc,
	})
	require.Len(t, items, 3)
	assert.Equal(t, "b", items[0].ID)
	assert.Equal(t, "c", items[1].ID)
	assert.Equal(t, "a", items[2].ID)
}

// The full storefront scenario: 100 generated products, electronics over 50,
// cheapest first.
func TestQueryGeneratedCatalogScenario(t *testing.T) {
	products := Generate(42, 100, fixtureTime)
	repo := NewRepository(products)

	items, pagination := repo.Query(models.ProductQuery{
		Page:      1,
		Limit:     12,
		Filters:   models.ProductFilters{Category: "electronics", MinPrice: floatPtr(50)},
		SortBy:    models.SortByPrice,
		SortOrder: models.SortAsc,
	})

	expected := 0
	for _, p := range products {
		if p.Category == "electronics" && p.Price >= 50 {
			expected++
		}
	}

	assert.Equal(t, expected, pagination.Total)
	assert.LessOrEqual(t, len(items), 12)
	for i, p := range items {
		assert.Equal(t, "electronics", p.Category)
		assert.GreaterOrEqual(t, p.Price, 50.0)
		if i > 0 {
			assert.LessOrEqual(t, items[i-1].Price, p.Price)
		}
	}
}
