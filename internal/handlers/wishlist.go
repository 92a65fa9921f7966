// internal/handlers/wishlist.go
package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/minshop/storefront-api/internal/catalog"
	"github.com/minshop/storefront-api/internal/services"
	"github.com/minshop/storefront-api/internal/utils"
)

type WishlistHandler struct {
	wishlistService *services.WishlistService
}

type AddWishlistItemRequest struct {
	ProductID string `json:"productId" validate:"required,product_id"`
}

func NewWishlistHandler(wishlistService *services.WishlistService) *WishlistHandler {
	return &WishlistHandler{wishlistService: wishlistService}
}

// GET /wishlist
func (h *WishlistHandler) GetWishlist(c *gin.Context) {
	sessionID, exists := utils.GetSessionIDFromContext(c)
	if !exists {
		utils.InternalErrorResponse(c, "missing session")
		return
	}

	utils.SuccessResponse(c, h.wishlistService.GetWishlist(c.Request.Context(), sessionID))
}

// POST /wishlist/items
func (h *WishlistHandler) AddItem(c *gin.Context) {
	sessionID, exists := utils.GetSessionIDFromContext(c)
	if !exists {
		utils.InternalErrorResponse(c, "missing session")
		return
	}

	var req AddWishlistItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body", err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	wishlist, err := h.wishlistService.AddItem(c.Request.Context(), sessionID, req.ProductID)
	if err != nil {
		if errors.Is(err, catalog.ErrProductNotFound) {
			utils.NotFoundResponse(c, "Product")
			return
		}
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.SuccessResponse(c, wishlist)
}

// DELETE /wishlist/items/:productId
func (h *WishlistHandler) RemoveItem(c *gin.Context) {
	sessionID, exists := utils.GetSessionIDFromContext(c)
	if !exists {
		utils.InternalErrorResponse(c, "missing session")
		return
	}

	wishlist := h.wishlistService.RemoveItem(c.Request.Context(), sessionID, c.Param("productId"))
	utils.SuccessResponse(c, wishlist)
}

// GET /wishlist/contains/:productId
func (h *WishlistHandler) Contains(c *gin.Context) {
	sessionID, exists := utils.GetSessionIDFromContext(c)
	if !exists {
		utils.InternalErrorResponse(c, "missing session")
		return
	}

	utils.SuccessResponse(c, gin.H{
		"productId":  c.Param("productId"),
		"inWishlist": h.wishlistService.IsInWishlist(c.Request.Context(), sessionID, c.Param("productId")),
	})
}
