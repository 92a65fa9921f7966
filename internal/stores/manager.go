// internal/stores/manager.go
package stores

import (
	"context"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/minshop/storefront-api/internal/stores/snapshot"
)

// Storage key prefixes. They mirror the storefront's persisted-state layout,
// suffixed with the session id that scopes each aggregate.
const (
	CartStorageKey     = "cart-storage"
	WishlistStorageKey = "wishlist-storage"
)

// Manager hands out per-session cart and wishlist stores. Each session gets
// exactly one store instance, hydrated from its snapshot on first access, so
// state survives in memory even when the snapshot backend is down.
type Manager struct {
	maxCartQuantity int
	snap            snapshot.Store
	log             *logrus.Logger

	mu        sync.Mutex
	carts     map[string]*CartStore
	wishlists map[string]*WishlistStore
}

func NewManager(snap snapshot.Store, maxCartQuantity int, log *logrus.Logger) *Manager {
	return &Manager{
		maxCartQuantity: maxCartQuantity,
		snap:            snap,
		log:             log,
		carts:           make(map[string]*CartStore),
		wishlists:       make(map[string]*WishlistStore),
	}
}

// Cart returns the hydrated cart store for the session.
func (m *Manager) Cart(ctx context.Context, sessionID string) *CartStore {
	m.mu.Lock()
	store, ok := m.carts[sessionID]
	if !ok {
		store = NewCartStore(
			m.snap,
			CartStorageKey+":"+sessionID,
			m.maxCartQuantity,
			m.log.WithField("session", sessionID),
		)
		m.carts[sessionID] = store
	}
	m.mu.Unlock()

	store.Hydrate(ctx)
	return store
}

// Wishlist returns the hydrated wishlist store for the session.
func (m *Manager) Wishlist(ctx context.Context, sessionID string) *WishlistStore {
	m.mu.Lock()
	store, ok := m.wishlists[sessionID]
	if !ok {
		store = NewWishlistStore(
			m.snap,
			WishlistStorageKey+":"+sessionID,
			m.log.WithField("session", sessionID),
		)
		m.wishlists[sessionID] = store
	}
	m.mu.Unlock()

	store.Hydrate(ctx)
	return store
}
