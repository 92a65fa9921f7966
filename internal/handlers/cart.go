// internal/handlers/cart.go
package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/minshop/storefront-api/internal/catalog"
	"github.com/minshop/storefront-api/internal/services"
	"github.com/minshop/storefront-api/internal/utils"
)

type CartHandler struct {
	cartService *services.CartService
}

type AddCartItemRequest struct {
	ProductID string `json:"productId" validate:"required,product_id"`
	Quantity  int    `json:"quantity" validate:"omitempty,min=1"`
}

type UpdateCartItemRequest struct {
	// Zero removes the line, mirroring the store contract.
	Quantity int `json:"quantity" validate:"min=0"`
}

func NewCartHandler(cartService *services.CartService) *CartHandler {
	return &CartHandler{cartService: cartService}
}

// GET /cart
func (h *CartHandler) GetCart(c *gin.Context) {
	sessionID, exists := utils.GetSessionIDFromContext(c)
	if !exists {
		utils.InternalErrorResponse(c, "missing session")
		return
	}

	utils.SuccessResponse(c, h.cartService.GetCart(c.Request.Context(), sessionID))
}

// POST /cart/items
func (h *CartHandler) AddItem(c *gin.Context) {
	sessionID, exists := utils.GetSessionIDFromContext(c)
	if !exists {
		utils.InternalErrorResponse(c, "missing session")
		return
	}

	var req AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body", err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	if req.Quantity == 0 {
		req.Quantity = 1
	}

	cart, err := h.cartService.AddItem(c.Request.Context(), sessionID, req.ProductID, req.Quantity)
	if err != nil {
		if errors.Is(err, catalog.ErrProductNotFound) {
			utils.NotFoundResponse(c, "Product")
			return
		}
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.SuccessResponse(c, cart)
}

// PUT /cart/items/:productId
func (h *CartHandler) UpdateItem(c *gin.Context) {
	sessionID, exists := utils.GetSessionIDFromContext(c)
	if !exists {
		utils.InternalErrorResponse(c, "missing session")
		return
	}

	var req UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body", err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	cart := h.cartService.UpdateQuantity(c.Request.Context(), sessionID, c.Param("productId"), req.Quantity)
	utils.SuccessResponse(c, cart)
}

// DELETE /cart/items/:productId
func (h *CartHandler) RemoveItem(c *gin.Context) {
	sessionID, exists := utils.GetSessionIDFromContext(c)
	if !exists {
		utils.InternalErrorResponse(c, "missing session")
		return
	}

	cart := h.cartService.RemoveItem(c.Request.Context(), sessionID, c.Param("productId"))
	utils.SuccessResponse(c, cart)
}

// DELETE /cart
func (h *CartHandler) ClearCart(c *gin.Context) {
	sessionID, exists := utils.GetSessionIDFromContext(c)
	if !exists {
		utils.InternalErrorResponse(c, "missing session")
		return
	}

	utils.SuccessResponse(c, h.cartService.ClearCart(c.Request.Context(), sessionID))
}
