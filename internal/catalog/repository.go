// internal/catalog/repository.go
package catalog

import (
	"errors"
	"sort"

	"github.com/minshop/storefront-api/internal/models"
)

// ErrProductNotFound is returned when no product matches a requested id.
var ErrProductNotFound = errors.New("product not found")

// Repository holds the in-memory product catalog. Products are immutable once
// loaded, so reads need no locking.
type Repository struct {
	products []models.Product
	byID     map[string]models.Product
}

func NewRepository(products []models.Product) *Repository {
	byID := make(map[string]models.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}
	return &Repository{products: products, byID: byID}
}

// GetProduct returns the product with the given id or ErrProductNotFound.
func (r *Repository) GetProduct(id string) (models.Product, error) {
	p, ok := r.byID[id]
	if !ok {
		return models.Product{}, ErrProductNotFound
	}
	return p, nil
}

// GetCategories returns the sorted set of distinct category names.
func (r *Repository) GetCategories() []string {
	seen := make(map[string]struct{})
	var categories []string
	for _, p := range r.products {
		if _, ok := seen[p.Category]; ok {
			continue
		}
		seen[p.Category] = struct{}{}
		categories = append(categories, p.Category)
	}
	sort.Strings(categories)
	return categories
}

// Size reports how many products the catalog holds.
func (r *Repository) Size() int {
	return len(r.products)
}
