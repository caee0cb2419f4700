package services

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tastyeats/entity"
	"tastyeats/pkg/kv"
)

type stubCatalog struct {
	items []entity.MenuItem
	err   error
}

func (s *stubCatalog) FetchAll() ([]entity.MenuItem, error) { return s.items, s.err }

func testSnapshot(t *testing.T, items ...entity.MenuItem) Snapshot {
	t.Helper()
	svc := NewCatalogService(&stubCatalog{items: items})
	require.NoError(t, svc.Refresh())
	return svc.Snapshot()
}

func menuItem(id, name string, price float64) entity.MenuItem {
	return entity.MenuItem{ItemID: id, Name: name, Price: price, Category: entity.CategoryMains}
}

func newFileCart(t *testing.T, dir string) *CartService {
	t.Helper()
	store, err := kv.NewFileStore(dir)
	require.NoError(t, err)
	return NewCartService(store)
}

func TestSetQuantityKeepsOneEntryPerItem(t *testing.T) {
	cart := newFileCart(t, t.TempDir())
	ctx := context.Background()

	cart.SetQuantity(ctx, "dev", "X", 3)
	cart.SetQuantity(ctx, "dev", "X", 3) // idempotent re-set
	cart.SetQuantity(ctx, "dev", "X", 5) // overwrite
	assert.Equal(t, 5, cart.GetQuantity(ctx, "dev", "X"))

	totals := cart.Totals(ctx, "dev", testSnapshot(t))
	assert.Equal(t, 5, totals.TotalItems)
}

func TestSetQuantityZeroRemoves(t *testing.T) {
	cart := newFileCart(t, t.TempDir())
	ctx := context.Background()
	snap := testSnapshot(t, menuItem("X", "Dosa", 100))

	cart.SetQuantity(ctx, "dev", "X", 2)
	cart.SetQuantity(ctx, "dev", "X", 0)
	assert.Equal(t, 0, cart.GetQuantity(ctx, "dev", "X"))
	assert.Empty(t, cart.View(ctx, "dev", snap))

	// removing an absent entry is a no-op
	cart.SetQuantity(ctx, "dev", "X", -1)
	assert.Equal(t, 0, cart.GetQuantity(ctx, "dev", "X"))
}

func TestViewOrderIsInsertionStable(t *testing.T) {
	cart := newFileCart(t, t.TempDir())
	ctx := context.Background()
	snap := testSnapshot(t,
		menuItem("A", "Dosa", 100),
		menuItem("B", "Biryani", 150),
		menuItem("C", "Chai", 40),
	)

	cart.SetQuantity(ctx, "dev", "B", 1)
	cart.SetQuantity(ctx, "dev", "A", 2)
	cart.SetQuantity(ctx, "dev", "C", 1)
	cart.SetQuantity(ctx, "dev", "B", 4) // mutation keeps position

	view := cart.View(ctx, "dev", snap)
	require.Len(t, view, 3)
	assert.Equal(t, []string{"B", "A", "C"}, []string{view[0].Item.ItemID, view[1].Item.ItemID, view[2].Item.ItemID})
	assert.Equal(t, 4, view[0].Quantity)
}

func TestTotalsWhileCatalogLoading(t *testing.T) {
	cart := newFileCart(t, t.TempDir())
	ctx := context.Background()

	cart.SetQuantity(ctx, "dev", "A", 2)
	cart.SetQuantity(ctx, "dev", "B", 1)

	// totalItems is catalog-independent; totalAmount is 0 while empty
	empty := cart.Totals(ctx, "dev", testSnapshot(t))
	assert.Equal(t, 3, empty.TotalItems)
	assert.Zero(t, empty.TotalAmount)
	assert.Empty(t, cart.View(ctx, "dev", testSnapshot(t)))

	// catalog arrives: same cart, priced view
	snap := testSnapshot(t, menuItem("A", "Dosa", 100), menuItem("B", "Biryani", 150))
	loaded := cart.Totals(ctx, "dev", snap)
	assert.Equal(t, 3, loaded.TotalItems)
	assert.Equal(t, 350.0, loaded.TotalAmount)
}

func TestViewDropsUnknownItemsButKeepsThemStored(t *testing.T) {
	cart := newFileCart(t, t.TempDir())
	ctx := context.Background()

	cart.SetQuantity(ctx, "dev", "gone", 2)
	cart.SetQuantity(ctx, "dev", "A", 1)

	snap := testSnapshot(t, menuItem("A", "Dosa", 100))
	view := cart.View(ctx, "dev", snap)
	require.Len(t, view, 1)
	assert.Equal(t, "A", view[0].Item.ItemID)

	// the dropped entry still counts and still persists
	assert.Equal(t, 2, cart.GetQuantity(ctx, "dev", "gone"))
	assert.Equal(t, 3, cart.Totals(ctx, "dev", snap).TotalItems)
}

func TestCartPersistsAcrossRestart(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	first := newFileCart(t, dir)
	first.SetQuantity(ctx, "dev", "A", 2)
	first.SetQuantity(ctx, "dev", "B", 1)
	first.SetQuantity(ctx, "dev", "B", 0)
	first.SetQuantity(ctx, "dev", "C", 7)

	// fresh service over the same storage simulates a session restart
	second := newFileCart(t, dir)
	assert.Equal(t, 2, second.GetQuantity(ctx, "dev", "A"))
	assert.Equal(t, 0, second.GetQuantity(ctx, "dev", "B"))
	assert.Equal(t, 7, second.GetQuantity(ctx, "dev", "C"))
	assert.Equal(t, 9, second.Totals(ctx, "dev", testSnapshot(t)).TotalItems)
}

func TestCorruptStorageDegradesToEmptyCart(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	// garbage where the persisted cart should be
	require.NoError(t, os.WriteFile(filepath.Join(dir, "tastyeats-cart_dev.json"), []byte("{not json"), 0o644))

	cart := newFileCart(t, dir)
	assert.Equal(t, 0, cart.GetQuantity(ctx, "dev", "A"))
	assert.Zero(t, cart.Totals(ctx, "dev", testSnapshot(t)).TotalItems)

	// and the cart is usable afterwards
	cart.SetQuantity(ctx, "dev", "A", 1)
	assert.Equal(t, 1, cart.GetQuantity(ctx, "dev", "A"))
}

func TestClearPersistsEmptyState(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	cart := newFileCart(t, dir)
	cart.SetQuantity(ctx, "dev", "A", 2)
	cart.Clear(ctx, "dev")

	assert.Zero(t, cart.Totals(ctx, "dev", testSnapshot(t)).TotalItems)

	reloaded := newFileCart(t, dir)
	assert.Zero(t, reloaded.Totals(ctx, "dev", testSnapshot(t)).TotalItems)
}

func TestCartsAreIsolatedPerDevice(t *testing.T) {
	cart := newFileCart(t, t.TempDir())
	ctx := context.Background()

	cart.SetQuantity(ctx, "dev-1", "A", 2)
	cart.SetQuantity(ctx, "dev-2", "A", 5)

	assert.Equal(t, 2, cart.GetQuantity(ctx, "dev-1", "A"))
	assert.Equal(t, 5, cart.GetQuantity(ctx, "dev-2", "A"))
}
