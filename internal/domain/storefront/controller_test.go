// internal/domain/storefront/controller_test.go
package storefront

import (
	"context"
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brisknbrew/cafe-backend/internal/domain/cart"
)

func newTestController() (*Controller, *Recorder) {
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	carts := cart.NewService(cart.NewMemoryRepository(), logger)
	recorder := NewRecorder()
	return NewController(carts, NewDrafts(), recorder, "P", logger), recorder
}

func TestOpenItemPopupParsesPriceText(t *testing.T) {
	ctrl, recorder := newTestController()

	ctrl.OpenItemPopup("s1", "Iced Latte", "P125.00")

	state := recorder.State()
	require.NotNil(t, state.Popup)
	assert.Equal(t, "Iced Latte", state.Popup.Name)
	assert.Equal(t, "P125.00", state.Popup.PriceText, "popup shows the original price text")
	assert.Equal(t, 1, state.Popup.Quantity)

	draft, ok := ctrl.drafts.get("s1")
	require.True(t, ok)
	assert.InDelta(t, 125.0, draft.Price, 1e-9)
}

func TestChangeQuantityClampsAtOne(t *testing.T) {
	ctrl, recorder := newTestController()
	ctrl.OpenItemPopup("s1", "Mocha", "P110.00")

	assert.Equal(t, 4, ctrl.ChangeQuantity("s1", 3))
	assert.Equal(t, 1, ctrl.ChangeQuantity("s1", -100), "floor is 1 no matter how negative the delta")
	assert.Equal(t, 2, ctrl.ChangeQuantity("s1", 1))
	assert.Equal(t, 2, recorder.State().Popup.Quantity)
}

func TestChangeQuantityWithoutPopupIsIgnored(t *testing.T) {
	ctrl, recorder := newTestController()

	assert.Equal(t, 0, ctrl.ChangeQuantity("s1", 2))
	assert.Nil(t, recorder.State().Popup)
}

func TestConfirmAddToCartHidesPopupAndRefreshesBadge(t *testing.T) {
	ctrl, recorder := newTestController()
	ctx := context.Background()

	ctrl.OpenItemPopup("s1", "Iced Latte", "P125.00")
	ctrl.ChangeQuantity("s1", 1)
	require.NoError(t, ctrl.ConfirmAddToCart(ctx, "s1"))

	state := recorder.State()
	assert.Nil(t, state.Popup)
	assert.Equal(t, "🛒 See My Cart (2)", state.BadgeLabel)

	// Confirming again without a fresh popup is an error.
	assert.Error(t, ctrl.ConfirmAddToCart(ctx, "s1"))
}

func TestOpenCartModalRendersLinesAndTotal(t *testing.T) {
	ctrl, recorder := newTestController()
	ctx := context.Background()

	ctrl.OpenItemPopup("s1", "Latte", "P120.00")
	ctrl.ChangeQuantity("s1", 1)
	require.NoError(t, ctrl.ConfirmAddToCart(ctx, "s1"))

	ctrl.OpenItemPopup("s1", "Bagel", "P80.50")
	require.NoError(t, ctrl.ConfirmAddToCart(ctx, "s1"))

	require.NoError(t, ctrl.OpenCartModal(ctx, "s1"))

	state := recorder.State()
	require.NotNil(t, state.CartModal)
	require.Len(t, state.CartModal.Lines, 2)
	assert.Equal(t, "Latte x 2 = P240", state.CartModal.Lines[0].Label)
	assert.Equal(t, "Bagel x 1 = P80.5", state.CartModal.Lines[1].Label)
	assert.Equal(t, "Total: P320.5", state.CartModal.TotalText)
}

func TestRemoveItemRerendersModalAndBadge(t *testing.T) {
	ctrl, recorder := newTestController()
	ctx := context.Background()

	ctrl.OpenItemPopup("s1", "Latte", "P120.00")
	require.NoError(t, ctrl.ConfirmAddToCart(ctx, "s1"))
	ctrl.OpenItemPopup("s1", "Bagel", "P80.00")
	require.NoError(t, ctrl.ConfirmAddToCart(ctx, "s1"))

	require.NoError(t, ctrl.RemoveItem(ctx, "s1", 0))

	state := recorder.State()
	assert.Equal(t, "🛒 See My Cart (1)", state.BadgeLabel)
	require.NotNil(t, state.CartModal)
	require.Len(t, state.CartModal.Lines, 1)
	assert.Equal(t, "Bagel x 1 = P80", state.CartModal.Lines[0].Label)
}

func TestClearCartEmptiesModal(t *testing.T) {
	ctrl, recorder := newTestController()
	ctx := context.Background()

	ctrl.OpenItemPopup("s1", "Latte", "P120.00")
	require.NoError(t, ctrl.ConfirmAddToCart(ctx, "s1"))

	require.NoError(t, ctrl.ClearCart(ctx, "s1"))

	state := recorder.State()
	assert.Equal(t, "🛒 See My Cart (0)", state.BadgeLabel)
	require.NotNil(t, state.CartModal)
	assert.Empty(t, state.CartModal.Lines)
	assert.Equal(t, "Total: P0", state.CartModal.TotalText)
}

func TestNilRecorderSwallowsCalls(t *testing.T) {
	var recorder *Recorder

	assert.NotPanics(t, func() {
		recorder.ShowItemPopup(ItemPopupView{})
		recorder.SetQuantityDisplay(3)
		recorder.SetBadgeLabel("🛒 See My Cart (1)")
		recorder.HideItemPopup()
		recorder.Notify("hello")
	})
	assert.Equal(t, ViewState{}, recorder.State())
}
