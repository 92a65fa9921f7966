// internal/models/product.go
package models

import (
	"time"
)

// Product is an immutable catalog record. The repository owns the full set for
// the lifetime of the process.
type Product struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Image       string    `json:"image"`
	Category    string    `json:"category"`
	InStock     bool      `json:"inStock"`
	Stock       int       `json:"stock"`
	Rating      float64   `json:"rating"`
	ReviewCount int       `json:"reviewCount"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// ProductFilters is an optional predicate set; a zero/nil field means "no
// constraint". Active filters combine as a logical AND.
type ProductFilters struct {
	Search   string   `json:"search,omitempty"`
	Category string   `json:"category,omitempty"`
	MinPrice *float64 `json:"minPrice,omitempty"`
	MaxPrice *float64 `json:"maxPrice,omitempty"`
	InStock  *bool    `json:"inStock,omitempty"`
}

type SortOption string

const (
	SortByName      SortOption = "name"
	SortByPrice     SortOption = "price"
	SortByRating    SortOption = "rating"
	SortByCreatedAt SortOption = "createdAt"
)

type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// ProductQuery carries everything a catalog query needs. Zero values are
// normalized to the documented defaults by the query engine.
type ProductQuery struct {
	Page      int            `json:"page"`
	Limit     int            `json:"limit"`
	Filters   ProductFilters `json:"filters"`
	SortBy    SortOption     `json:"sortBy"`
	SortOrder SortOrder      `json:"sortOrder"`
}

// Pagination describes the window a query result was cut from.
type Pagination struct {
	Page       int  `json:"page"`
	Limit      int  `json:"limit"`
	Total      int  `json:"total"`
	TotalPages int  `json:"totalPages"`
	HasNext    bool `json:"hasNext"`
	HasPrev    bool `json:"hasPrev"`
}
