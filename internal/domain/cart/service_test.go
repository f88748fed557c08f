// internal/domain/cart/service_test.go
package cart

import (
	"context"
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func TestAddToCartMergesByName(t *testing.T) {
	svc := NewService(NewMemoryRepository(), testLogger())
	ctx := context.Background()

	resp, err := svc.AddToCart(ctx, "s1", LineItem{Name: "Iced Latte", Price: 125, Quantity: 2})
	require.NoError(t, err)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, 2, resp.Items[0].Quantity)

	resp, err = svc.AddToCart(ctx, "s1", LineItem{Name: "Iced Latte", Price: 125, Quantity: 3})
	require.NoError(t, err)
	require.Len(t, resp.Items, 1, "same name must never produce two line items")
	assert.Equal(t, 5, resp.Items[0].Quantity)
	assert.Equal(t, 5, resp.Totals.TotalQuantity)
}

func TestAddToCartPreservesInsertionOrder(t *testing.T) {
	svc := NewService(NewMemoryRepository(), testLogger())
	ctx := context.Background()

	_, err := svc.AddToCart(ctx, "s1", LineItem{Name: "Americano", Price: 95, Quantity: 1})
	require.NoError(t, err)
	_, err = svc.AddToCart(ctx, "s1", LineItem{Name: "Ham Croissant", Price: 150, Quantity: 1})
	require.NoError(t, err)

	// Merging into the first item must not move it to the back.
	resp, err := svc.AddToCart(ctx, "s1", LineItem{Name: "Americano", Price: 95, Quantity: 2})
	require.NoError(t, err)
	require.Len(t, resp.Items, 2)
	assert.Equal(t, "Americano", resp.Items[0].Name)
	assert.Equal(t, "Ham Croissant", resp.Items[1].Name)
}

func TestTotalQuantityAccumulates(t *testing.T) {
	svc := NewService(NewMemoryRepository(), testLogger())
	ctx := context.Background()

	names := []string{"Mocha", "Mocha", "Carbonara", "Brownie"}
	quantities := []int{1, 4, 2, 3}
	want := 0
	for i, q := range quantities {
		_, err := svc.AddToCart(ctx, "s1", LineItem{Name: names[i], Price: 100, Quantity: q})
		require.NoError(t, err)
		want += q
	}

	got, err := svc.TotalQuantity(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestRemoveItemAdjustsTotal(t *testing.T) {
	svc := NewService(NewMemoryRepository(), testLogger())
	ctx := context.Background()

	_, err := svc.AddToCart(ctx, "s1", LineItem{Name: "Latte", Price: 120, Quantity: 2})
	require.NoError(t, err)
	_, err = svc.AddToCart(ctx, "s1", LineItem{Name: "Bagel", Price: 80.5, Quantity: 3})
	require.NoError(t, err)

	before, err := svc.CartTotal(ctx, "s1")
	require.NoError(t, err)

	resp, err := svc.RemoveItem(ctx, "s1", 1)
	require.NoError(t, err)
	require.Len(t, resp.Items, 1)

	after, err := svc.CartTotal(ctx, "s1")
	require.NoError(t, err)
	assert.InDelta(t, before-80.5*3, after, 1e-9)
}

func TestRemoveItemOutOfRangeIsNoOp(t *testing.T) {
	svc := NewService(NewMemoryRepository(), testLogger())
	ctx := context.Background()

	_, err := svc.AddToCart(ctx, "s1", LineItem{Name: "Latte", Price: 120, Quantity: 1})
	require.NoError(t, err)

	for _, index := range []int{-1, 1, 99} {
		resp, err := svc.RemoveItem(ctx, "s1", index)
		require.NoError(t, err)
		assert.Len(t, resp.Items, 1, "index %d must not mutate the cart", index)
	}
}

func TestClearCartPersistsEmptySequence(t *testing.T) {
	repo := NewMemoryRepository()
	svc := NewService(repo, testLogger())
	ctx := context.Background()

	_, err := svc.AddToCart(ctx, "s1", LineItem{Name: "Latte", Price: 120, Quantity: 2})
	require.NoError(t, err)

	require.NoError(t, svc.ClearCart(ctx, "s1"))

	got, err := svc.TotalQuantity(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, 0, got)

	// The persisted state must reflect the empty sequence, not a
	// deleted key.
	assert.JSONEq(t, "[]", string(repo.Raw("s1")))
}

func TestMalformedPersistedCartFailsSoft(t *testing.T) {
	repo := NewMemoryRepository()
	repo.Put("s1", []byte("{definitely not json"))
	svc := NewService(repo, testLogger())

	resp, err := svc.GetCart(context.Background(), "s1")
	require.NoError(t, err)
	assert.Empty(t, resp.Items)
	assert.Equal(t, 0, resp.Totals.TotalQuantity)
}

func TestDecodeItems(t *testing.T) {
	items, ok := decodeItems([]byte("{not json"))
	assert.False(t, ok)
	assert.Empty(t, items)

	items, ok = decodeItems([]byte("null"))
	assert.True(t, ok)
	assert.NotNil(t, items)
	assert.Empty(t, items)

	items, ok = decodeItems([]byte(`[{"name":"Latte","price":120,"quantity":2}]`))
	assert.True(t, ok)
	require.Len(t, items, 1)
	assert.Equal(t, LineItem{Name: "Latte", Price: 120, Quantity: 2}, items[0])
}
