// internal/models/wishlist.go
package models

import "time"

// WishlistItem is a saved product with its add-time snapshot.
type WishlistItem struct {
	ID        string    `json:"id"`
	ProductID string    `json:"productId"`
	Product   Product   `json:"product"`
	AddedAt   time.Time `json:"addedAt"`
}

// Wishlist is the persisted aggregate. At most one item per distinct productId.
type Wishlist struct {
	Items      []WishlistItem `json:"items"`
	TotalItems int            `json:"totalItems"`
}

type WishlistView struct {
	Wishlist
	HasHydrated bool `json:"hasHydrated"`
}
