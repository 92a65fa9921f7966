// internal/stores/wishlist.go
package stores

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/minshop/storefront-api/internal/models"
	"github.com/minshop/storefront-api/internal/stores/snapshot"
)

// WishlistStore owns one session's wishlist aggregate.
type WishlistStore struct {
	baseStore
	wishlist models.Wishlist
	now      func() time.Time
}

func NewWishlistStore(snap snapshot.Store, key string, log *logrus.Entry) *WishlistStore {
	return &WishlistStore{
		baseStore: baseStore{snap: snap, key: key, log: log},
		now:       time.Now,
	}
}

// Hydrate loads the persisted snapshot; same degradation rules as the cart.
func (s *WishlistStore) Hydrate(ctx context.Context) {
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
	var wishlist models.Wishlist
	if err := json.Unmarshal(data, &wishlist); err != nil {
		s.log.WithError(err).Warn("Discarding corrupt wishlist snapshot")
		return
	}
	wishlist.TotalItems = len(wishlist.Items)
	s.wishlist = wishlist
}

// AddItem appends the product unless it is already saved. Adding an existing
// product is a no-op, which makes the operation idempotent.
func (s *WishlistStore) AddItem(ctx context.Context, product models.Product) models.WishlistView {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, item := range s.wishlist.Items {
		if item.ProductID == product.ID {
			return s.viewLocked()
		}
	}

	s.wishlist.Items = append(s.wishlist.Items, models.WishlistItem{
		ID:        uuid.NewString(),
		ProductID: product.ID,
		Product:   product,
		AddedAt:   s.now().UTC(),
	})
	s.wishlist.TotalItems = len(s.wishlist.Items)
	s.persist(ctx, s.wishlist)
	return s.viewLocked()
}

// RemoveItem deletes the saved product if present; unknown ids are a no-op.
func (s *WishlistStore) RemoveItem(ctx context.Context, productID string) models.WishlistView {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := make([]models.WishlistItem, 0, len(s.wishlist.Items))
	for _, item := range s.wishlist.Items {
		if item.ProductID != productID {
			items = append(items, item)
		}
	}
	s.wishlist = models.Wishlist{Items: items, TotalItems: len(items)}
	s.persist(ctx, s.wishlist)
	return s.viewLocked()
}

// IsInWishlist reports membership without mutating anything.
func (s *WishlistStore) IsInWishlist(productID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, item := range s.wishlist.Items {
		if item.ProductID == productID {
			return true
		}
	}
	return false
}

func (s *WishlistStore) View() models.WishlistView {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.viewLocked()
}

func (s *WishlistStore) viewLocked() models.WishlistView {
	wishlist := s.wishlist
	wishlist.Items = append([]models.WishlistItem(nil), s.wishlist.Items...)
	return models.WishlistView{Wishlist: wishlist, HasHydrated: s.hydrated}
}
