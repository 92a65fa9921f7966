// internal/catalog/engine.go
package catalog

import (
	"sort"
	"strings"

	"github.com/minshop/storefront-api/internal/models"
)

const (
	DefaultPageSize = 12
	MaxPageSize     = 50
)

// Query filters, sorts and paginates the catalog. It is a pure function of the
// catalog snapshot and the parameters: out-of-range pages simply yield an
// empty slice, and an inverted price range yields an empty result rather than
// an error.
func (r *Repository) Query(q models.ProductQuery) ([]models.Product, models.Pagination) {
	q = normalize(q)

	filtered := filterProducts(r.products, q.Filters)
	sortProducts(filtered, q.SortBy, q.SortOrder)

	total := len(filtered)
	totalPages := (total + q.Limit - 1) / q.Limit

	start := (q.Page - 1) * q.Limit
	end := start + q.Limit
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	return filtered[start:end], models.Pagination{
		Page:       q.Page,
		Limit:      q.Limit,
		Total:      total,
		TotalPages: totalPages,
		HasNext:    q.Page < totalPages,
		HasPrev:    q.Page > 1,
	}
}

// normalize applies the documented defaults: page=1, limit=12 (capped at 50),
// sort by createdAt descending.
func normalize(q models.ProductQuery) models.ProductQuery {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.Limit < 1 {
		q.Limit = DefaultPageSize
	}
	if q.Limit > MaxPageSize {
		q.Limit = MaxPageSize
	}
	switch q.SortBy {
	case models.SortByName, models.SortByPrice, models.SortByRating, models.SortByCreatedAt:
	default:
		q.SortBy = models.SortByCreatedAt
	}
	switch q.SortOrder {
	case models.SortAsc, models.SortDesc:
	default:
		q.SortOrder = models.SortDesc
	}
	return q
}

func filterProducts(products []models.Product, f models.ProductFilters) []models.Product {
	search := strings.ToLower(f.Search)
	out := make([]models.Product, 0, len(products))

	for _, p := range products {
		if search != "" &&
			!strings.Contains(strings.ToLower(p.Name), search) &&
			!strings.Contains(strings.ToLower(p.Description), search) {
			continue
		}
		if f.Category != "" && p.Category != f.Category {
			continue
		}
		if f.MinPrice != nil && p.Price < *f.MinPrice {
			continue
		}
		if f.MaxPrice != nil && p.Price > *f.MaxPrice {
			continue
		}
		if f.InStock != nil && p.InStock != *f.InStock {
			continue
		}
		out = append(out, p)
	}

	return out
}

// sortProducts orders the slice in place. The sort is stable so products with
// equal keys keep their catalog order.
func sortProducts(products []models.Product, by models.SortOption, order models.SortOrder) {
	less := func(a, b models.Product) bool {
		switch by {
		case models.SortByName:
			return strings.ToLower(a.Name) < strings.ToLower(b.Name)
		case models.SortByPrice:
			return a.Price < b.Price
		case models.SortByRating:
			return a.Rating < b.Rating
		default:
			return a.CreatedAt.Before(b.CreatedAt)
		}
	}

	sort.SliceStable(products, func(i, j int) bool {
		if order == models.SortDesc {
			return less(products[j], products[i])
		}
		return less(products[i], products[j])
	})
}
