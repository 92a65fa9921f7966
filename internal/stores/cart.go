// internal/stores/cart.go

// Package stores implements the cart and wishlist aggregates. State
// transitions are pure functions over the aggregate value; the store wraps
// them with locking and a best-effort persist-after-mutate pipeline so the
// core logic stays independently testable.
package stores

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/minshop/storefront-api/internal/models"
	"github.com/minshop/storefront-api/internal/stores/snapshot"
)

// CartStore owns one session's cart aggregate.
type CartStore struct {
	baseStore
	cart models.Cart

	// maxQuantity caps a line's quantity when > 0; 0 leaves quantities
	// unbounded, matching the storefront's observed behavior.
	maxQuantity int
}

func NewCartStore(snap snapshot.Store, key string, maxQuantity int, log *logrus.Entry) *CartStore {
	return &CartStore{
		baseStore:   baseStore{snap: snap, key: key, log: log},
		maxQuantity: maxQuantity,
	}
}

// Hydrate loads the persisted snapshot. A missing or corrupt snapshot resets
// to an empty cart; a storage failure degrades to in-memory-only operation.
// Safe to call more than once; only the first call reads storage.
func (s *CartStore) Hydrate(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.hydrated {
		return
	}
	s.hydrated = true

	data, err := s.load(ctx)
	if err != nil || data == nil {
		return
	}
	var cart models.Cart
	if err := json.Unmarshal(data, &cart); err != nil {
		s.log.WithError(err).Warn("Discarding corrupt cart snapshot")
		return
	}
	s.cart = recalcCart(cart.Items)
}

// AddItem merges the product into an existing line or appends a new one, then
// persists the aggregate.
func (s *CartStore) AddItem(ctx context.Context, product models.Product, quantity int) models.CartView {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cart = addCartItem(s.cart, product, quantity, s.maxQuantity)
	s.persist(ctx, s.cart)
	return s.viewLocked()
}

// RemoveItem deletes the line for productID; unknown ids are a no-op.
func (s *CartStore) RemoveItem(ctx context.Context, productID string) models.CartView {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cart = removeCartItem(s.cart, productID)
	s.persist(ctx, s.cart)
	return s.viewLocked()
}

// UpdateQuantity sets a line's quantity outright. A quantity of zero or less
// removes the line; unknown ids are a no-op.
func (s *CartStore) UpdateQuantity(ctx context.Context, productID string, quantity int) models.CartView {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cart = setCartQuantity(s.cart, productID, quantity, s.maxQuantity)
	s.persist(ctx, s.cart)
	return s.viewLocked()
}

// Clear empties the cart and resets totals.
func (s *CartStore) Clear(ctx context.Context) models.CartView {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cart = models.Cart{}
	s.persist(ctx, s.cart)
	return s.viewLocked()
}

// View returns a copy of the current aggregate.
func (s *CartStore) View() models.CartView {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.viewLocked()
}

func (s *CartStore) viewLocked() models.CartView {
	cart := s.cart
	cart.Items = append([]models.CartItem(nil), s.cart.Items...)
	return models.CartView{Cart: cart, HasHydrated: s.hydrated}
}

// --- pure state transitions ---

func addCartItem(cart models.Cart, product models.Product, quantity, maxQuantity int) models.Cart {
	if quantity < 1 {
		quantity = 1
	}

	items := append([]models.CartItem(nil), cart.Items...)
	merged := false
	for i, item := range items {
		if item.ProductID == product.ID {
			items[i].Quantity = clampQuantity(item.Quantity+quantity, maxQuantity)
			merged = true
			break
		}
	}
	if !merged {
		items = append(items, models.CartItem{
			ID:        uuid.NewString(),
			ProductID: product.ID,
			Quantity:  clampQuantity(quantity, maxQuantity),
			Product:   product,
		})
	}

	return recalcCart(items)
}

func removeCartItem(cart models.Cart, productID string) models.Cart {
	items := make([]models.CartItem, 0, len(cart.Items))
	for _, item := range cart.Items {
		if item.ProductID != productID {
			items = append(items, item)
		}
	}
	return recalcCart(items)
}

func setCartQuantity(cart models.Cart, productID string, quantity, maxQuantity int) models.Cart {
	if quantity <= 0 {
		return removeCartItem(cart, productID)
	}

	items := append([]models.CartItem(nil), cart.Items...)
	for i, item := range items {
		if item.ProductID == productID {
			items[i].Quantity = clampQuantity(quantity, maxQuantity)
			break
		}
	}
	return recalcCart(items)
}

// recalcCart rebuilds the derived totals from the line items.
func recalcCart(items []models.CartItem) models.Cart {
	cart := models.Cart{Items: items}
	for _, item := range items {
		cart.TotalItems += item.Quantity
		cart.TotalPrice += item.Product.Price * float64(item.Quantity)
	}
	return cart
}

func clampQuantity(quantity, maxQuantity int) int {
	if maxQuantity > 0 && quantity > maxQuantity {
		return maxQuantity
	}
	return quantity
}
