// internal/handlers/product.go
package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/minshop/storefront-api/internal/catalog"
	"github.com/minshop/storefront-api/internal/services"
	"github.com/minshop/storefront-api/internal/utils"
)

type ProductHandler struct {
	catalogService *services.CatalogService
}

func NewProductHandler(catalogService *services.CatalogService) *ProductHandler {
	return &ProductHandler{catalogService: catalogService}
}

// GET /products
func (h *ProductHandler) GetProducts(c *gin.Context) {
	query := utils.GetProductQuery(c)

	products, pagination, err := h.catalogService.GetProducts(c.Request.Context(), query)
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.PaginatedResponse(c, products, pagination)
}

// GET /products/:id
func (h *ProductHandler) GetProduct(c *gin.Context) {
	id := c.Param("id")

	product, err := h.catalogService.GetProduct(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, catalog.ErrProductNotFound) {
			utils.NotFoundResponse(c, "Product")
			return
		}
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.SuccessResponse(c, gin.H{
		"product": product,
	})
}

// GET /categories
func (h *ProductHandler) GetCategories(c *gin.Context) {
	categories, err := h.catalogService.GetCategories(c.Request.Context())
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.SuccessResponse(c, gin.H{
		"categories": categories,
	})
}
