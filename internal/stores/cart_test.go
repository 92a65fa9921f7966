// internal/stores/cart_test.go
package stores

import (
	"context"
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minshop/storefront-api/internal/models"
	"github.com/minshop/storefront-api/internal/stores/snapshot"
)

func testLogger() *logrus.Entry {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logrus.NewEntry(logger)
}

func testProduct(id string, price float64) models.Product {
	return models.Product{
		ID:      id,
		Name:    "Test " + id,
		Price:   price,
		InStock: true,
		Stock:   10,
	}
}

func newTestCart(t *testing.T) (*CartStore, snapshot.Store) {
	t.Helper()
	snap := snapshot.NewMemoryStore()
	store := NewCartStore(snap, "cart-storage:test", 0, testLogger())
	store.Hydrate(context.Background())
	return store, snap
}

func TestCartAddItemMergesByProduct(t *testing.T) {
	store, _ := newTestCart(t)
	ctx := context.Background()
	product := testProduct("product-1", 20)

	store.AddItem(ctx, product, 1)
	cart := store.AddItem(ctx, product, 2)

	require.Len(t, cart.Items, 1)
	assert.Equal(t, 3, cart.Items[0].Quantity)
	assert.Equal(t, 3, cart.TotalItems)
	assert.Equal(t, 60.0, cart.TotalPrice)
}

func TestCartAddItemKeepsInsertionOrder(t *testing.T) {
	store, _ := newTestCart(t)
	ctx := context.Background()

	store.AddItem(ctx, testProduct("product-1", 10), 1)
	store.AddItem(ctx, testProduct("product-2", 20), 1)
	cart := store.AddItem(ctx, testProduct("product-1", 10), 1)

	require.Len(t, cart.Items, 2)
	assert.Equal(t, "product-1", cart.Items[0].ProductID)
	assert.Equal(t, "product-2", cart.Items[1].ProductID)
	assert.Equal(t, 3, cart.TotalItems)
	assert.Equal(t, 40.0, cart.TotalPrice)
}

func TestCartUpdateQuantitySetsAbsoluteValue(t *testing.T) {
	store, _ := newTestCart(t)
	ctx := context.Background()

	store.AddItem(ctx, testProduct("product-1", 10), 5)
	cart := store.UpdateQuantity(ctx, "product-1", 2)

	require.Len(t, cart.Items, 1)
	assert.Equal(t, 2, cart.Items[0].Quantity)
	assert.Equal(t, 20.0, cart.TotalPrice)
}

func TestCartUpdateQuantityZeroRemovesItem(t *testing.T) {
	store, _ := newTestCart(t)
	ctx := context.Background()

	store.AddItem(ctx, testProduct("product-1", 10), 2)
	cart := store.UpdateQuantity(ctx, "product-1", 0)

	assert.Empty(t, cart.Items)
	assert.Equal(t, 0, cart.TotalItems)
	assert.Equal(t, 0.0, cart.TotalPrice)
}

func TestCartUpdateQuantityUnknownProductIsNoop(t *testing.T) {
	store, _ := newTestCart(t)
	ctx := context.Background()

	store.AddItem(ctx, testProduct("product-1", 10), 1)
	cart := store.UpdateQuantity(ctx, "product-404", 3)

	require.Len(t, cart.Items, 1)
	assert.Equal(t, 1, cart.TotalItems)
}

func TestCartRemoveItemUnknownProductIsNoop(t *testing.T) {
	store, _ := newTestCart(t)
	ctx := context.Background()

	store.AddItem(ctx, testProduct("product-1", 10), 1)
	cart := store.RemoveItem(ctx, "product-404")

	require.Len(t, cart.Items, 1)
}

func TestCartClear(t *testing.T) {
	store, _ := newTestCart(t)
	ctx := context.Background()

	store.AddItem(ctx, testProduct("product-1", 10), 2)
	store.AddItem(ctx, testProduct("product-2", 5), 1)
	cart := store.Clear(ctx)

	assert.Empty(t, cart.Items)
	assert.Equal(t, 0, cart.TotalItems)
	assert.Equal(t, 0.0, cart.TotalPrice)
}

func TestCartMaxQuantityCeiling(t *testing.T) {
	snap := snapshot.NewMemoryStore()
	store := NewCartStore(snap, "cart-storage:test", 5, testLogger())
	store.Hydrate(context.Background())
	ctx := context.Background()

	cart := store.AddItem(ctx, testProduct("product-1", 10), 9)
	assert.Equal(t, 5, cart.Items[0].Quantity)

	cart = store.UpdateQuantity(ctx, "product-1", 100)
	assert.Equal(t, 5, cart.Items[0].Quantity)
}

func TestCartSnapshotRoundTrip(t *testing.T) {
	ctx := context.Background()
	snap := snapshot.NewMemoryStore()

	store := NewCartStore(snap, "cart-storage:abc", 0, testLogger())
	store.Hydrate(ctx)
	store.AddItem(ctx, testProduct("product-1", 12.5), 2)
	persisted := store.AddItem(ctx, testProduct("product-2", 30), 1)

	// A fresh store over the same key reproduces the aggregate wholesale.
	reloaded := NewCartStore(snap, "cart-storage:abc", 0, testLogger())
	reloaded.Hydrate(ctx)
	view := reloaded.View()

	assert.True(t, view.HasHydrated)
	assert.Equal(t, persisted.Items, view.Items)
	assert.Equal(t, persisted.TotalItems, view.TotalItems)
	assert.Equal(t, persisted.TotalPrice, view.TotalPrice)
}

func TestCartCorruptSnapshotResetsEmpty(t *testing.T) {
	ctx := context.Background()
	snap := snapshot.NewMemoryStore()
	require.NoError(t, snap.Set(ctx, "cart-storage:bad", []byte("{not json")))

	store := NewCartStore(snap, "cart-storage:bad", 0, testLogger())
	store.Hydrate(ctx)
	view := store.View()

	assert.True(t, view.HasHydrated)
	assert.Empty(t, view.Items)
	assert.Equal(t, 0, view.TotalItems)
}

func TestCartHydrationFlag(t *testing.T) {
	snap := snapshot.NewMemoryStore()
	store := NewCartStore(snap, "cart-storage:test", 0, testLogger())

	assert.False(t, store.View().HasHydrated)
	store.Hydrate(context.Background())
	assert.True(t, store.View().HasHydrated)
}
