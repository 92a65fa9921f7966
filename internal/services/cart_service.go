// internal/services/cart_service.go
package services

import (
	"context"
	"fmt"

	"github.com/minshop/storefront-api/internal/catalog"
	"github.com/minshop/storefront-api/internal/models"
	"github.com/minshop/storefront-api/internal/stores"
)

// CartService resolves products against the catalog and applies cart
// operations to the caller's session store.
type CartService struct {
	repo   *catalog.Repository
	stores *stores.Manager
}

func NewCartService(repo *catalog.Repository, storeManager *stores.Manager) *CartService {
	return &CartService{repo: repo, stores: storeManager}
}

func (s *CartService) GetCart(ctx context.Context, sessionID string) models.CartView {
	return s.stores.Cart(ctx, sessionID).View()
}

// AddItem looks the product up first so the cart embeds a catalog-backed
// snapshot; an unknown product id surfaces catalog.ErrProductNotFound.
func (s *CartService) AddItem(ctx context.Context, sessionID, productID string, quantity int) (models.CartView, error) {
	product, err := s.repo.GetProduct(productID)
	if err != nil {
		return models.CartView{}, fmt.Errorf("failed to add cart item: %w", err)
	}
	return s.stores.Cart(ctx, sessionID).AddItem(ctx, product, quantity), nil
}

func (s *CartService) RemoveItem(ctx context.Context, sessionID, productID string) models.CartView {
	return s.stores.Cart(ctx, sessionID).RemoveItem(ctx, productID)
}

func (s *CartService) UpdateQuantity(ctx context.Context, sessionID, productID string, quantity int) models.CartView {
	return s.stores.Cart(ctx, sessionID).UpdateQuantity(ctx, productID, quantity)
}

func (s *CartService) ClearCart(ctx context.Context, sessionID string) models.CartView {
	return s.stores.Cart(ctx, sessionID).Clear(ctx)
}
