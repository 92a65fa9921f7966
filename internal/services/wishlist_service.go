// internal/services/wishlist_service.go
package services

import (
	"context"
	"fmt"

	"github.com/minshop/storefront-api/internal/catalog"
	"github.com/minshop/storefront-api/internal/models"
	"github.com/minshop/storefront-api/internal/stores"
)

// WishlistService mirrors CartService for the saved-products aggregate.
type WishlistService struct {
	repo   *catalog.Repository
	stores *stores.Manager
}

func NewWishlistService(repo *catalog.Repository, storeManager *stores.Manager) *WishlistService {
	return &WishlistService{repo: repo, stores: storeManager}
}

func (s *WishlistService) GetWishlist(ctx context.Context, sessionID string) models.WishlistView {
	return s.stores.Wishlist(ctx, sessionID).View()
}

func (s *WishlistService) AddItem(ctx context.Context, sessionID, productID string) (models.WishlistView, error) {
	product, err := s.repo.GetProduct(productID)
	if err != nil {
		return models.WishlistView{}, fmt.Errorf("failed to add wishlist item: %w", err)
	}
	return s.stores.Wishlist(ctx, sessionID).AddItem(ctx, product), nil
}

func (s *WishlistService) RemoveItem(ctx context.Context, sessionID, productID string) models.WishlistView {
	return s.stores.Wishlist(ctx, sessionID).RemoveItem(ctx, productID)
}

func (s *WishlistService) IsInWishlist(ctx context.Context, sessionID, productID string) bool {
	return s.stores.Wishlist(ctx, sessionID).IsInWishlist(productID)
}
