// internal/models/cart.go
package models

// CartItem is a single cart line. It embeds a snapshot of the product taken at
// add-time so the cart keeps rendering even if the catalog is reseeded.
type CartItem struct {
	ID        string  `json:"id"`
	ProductID string  `json:"productId"`
	Quantity  int     `json:"quantity"`
	Product   Product `json:"product"`
}

// Cart is the persisted aggregate: line items in insertion order plus derived
// totals. At most one item exists per distinct productId.
type Cart struct {
	Items      []CartItem `json:"items"`
	TotalItems int        `json:"totalItems"`
	TotalPrice float64    `json:"totalPrice"`
}

// CartView is the cart as handed to consumers, with the hydration flag so an
// empty cart can be told apart from one that has not been loaded yet.
type CartView struct {
	Cart
	HasHydrated bool `json:"hasHydrated"`
}
