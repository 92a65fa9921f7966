// internal/utils/pagination.go
package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/minshop/storefront-api/internal/models"
)

// GetProductQuery parses the catalog query parameters. Every parameter is
// optional and malformed values are treated as absent, never rejected; the
// engine applies the page/limit/sort defaults.
func GetProductQuery(c *gin.Context) models.ProductQuery {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))

	query := models.ProductQuery{
		Page:      page,
		Limit:     limit,
		SortBy:    models.SortOption(c.Query("sortBy")),
		SortOrder: models.SortOrder(c.Query("sortOrder")),
	}

	query.Filters.Search = c.Query("search")
	query.Filters.Category = c.Query("category")

	if minPriceStr := c.Query("minPrice"); minPriceStr != "" {
		if minPrice, err := strconv.ParseFloat(minPriceStr, 64); err == nil {
			query.Filters.MinPrice = &minPrice
		}
	}

	if maxPriceStr := c.Query("maxPrice"); maxPriceStr != "" {
		if maxPrice, err := strconv.ParseFloat(maxPriceStr, 64); err == nil {
			query.Filters.MaxPrice = &maxPrice
		}
	}

	if inStockStr := c.Query("inStock"); inStockStr != "" {
		if inStock, err := strconv.ParseBool(inStockStr); err == nil {
			query.Filters.InStock = &inStock
		}
	}

	return query
}

func SetPaginationHeaders(c *gin.Context, pagination models.Pagination) {
	c.Header("X-Total-Count", strconv.Itoa(pagination.Total))
	c.Header("X-Page", strconv.Itoa(pagination.Page))
	c.Header("X-Per-Page", strconv.Itoa(pagination.Limit))
	c.Header("X-Total-Pages", strconv.Itoa(pagination.TotalPages))
}
