// internal/domain/storefront/controller.go
package storefront

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/brisknbrew/cafe-backend/internal/domain/cart"
	"github.com/brisknbrew/cafe-backend/internal/domain/catalog"
)

// Controller drives the item popup and cart modal flows. It holds no
// view state of its own: everything visible goes through the Surface
// port, everything durable through the cart service.
type Controller struct {
	carts          *cart.Service
	drafts         *Drafts
	surface        Surface
	logger         *logrus.Logger
	currencySymbol string
}

// NewController creates a storefront controller bound to a surface
func NewController(carts *cart.Service, drafts *Drafts, surface Surface, currencySymbol string, logger *logrus.Logger) *Controller {
	return &Controller{
		carts:          carts,
		drafts:         drafts,
		surface:        surface,
		logger:         logger,
		currencySymbol: currencySymbol,
	}
}

// OpenItemPopup starts a pending selection for the clicked catalog
// entry. The price text is parsed leniently; text with no numeric
// content at all is treated as a zero price and logged.
func (c *Controller) OpenItemPopup(sessionID, name, priceText string) {
	price, err := catalog.ParsePrice(priceText)
	if err != nil {
		c.logger.WithFields(logrus.Fields{
			"session_id": sessionID,
			"name":       name,
			"price_text": priceText,
		}).Warn("Unparseable price text, treating as zero")
		price = 0
	}

	c.drafts.put(sessionID, &PendingSelection{Name: name, Price: price, Quantity: 1})
	c.surface.ShowItemPopup(ItemPopupView{Name: name, PriceText: priceText, Quantity: 1})
}

// CloseItemPopup hides the popup. The draft is logically discarded but
// not erased, matching the popup's cancel semantics.
func (c *Controller) CloseItemPopup(sessionID string) {
	c.surface.HideItemPopup()
}

// ChangeQuantity adjusts the pending selection by delta, clamped to a
// floor of 1 with no ceiling. Returns the resulting quantity.
func (c *Controller) ChangeQuantity(sessionID string, delta int) int {
	draft, ok := c.drafts.get(sessionID)
	if !ok {
		c.logger.WithField("session_id", sessionID).
			Warn("Quantity change with no open item popup, ignoring")
		return 0
	}

	draft.Quantity += delta
	if draft.Quantity < 1 {
		draft.Quantity = 1
	}

	c.surface.SetQuantityDisplay(draft.Quantity)
	return draft.Quantity
}

// ConfirmAddToCart copies the pending selection into the cart, hides
// the popup and refreshes the badge.
func (c *Controller) ConfirmAddToCart(ctx context.Context, sessionID string) error {
	draft, ok := c.drafts.get(sessionID)
	if !ok {
		return fmt.Errorf("no pending selection for session")
	}

	_, err := c.carts.AddToCart(ctx, sessionID, cart.LineItem{
		Name:     draft.Name,
		Price:    draft.Price,
		Quantity: draft.Quantity,
	})
	if err != nil {
		return err
	}

	c.drafts.remove(sessionID)
	c.surface.HideItemPopup()
	return c.RefreshCartBadge(ctx, sessionID)
}

// RefreshCartBadge updates the cart button label with the current
// total quantity.
func (c *Controller) RefreshCartBadge(ctx context.Context, sessionID string) error {
	quantity, err := c.carts.TotalQuantity(ctx, sessionID)
	if err != nil {
		return err
	}
	c.surface.SetBadgeLabel(fmt.Sprintf("🛒 See My Cart (%d)", quantity))
	return nil
}

// OpenCartModal renders the cart modal, rebuilding the whole list from
// the current cart.
func (c *Controller) OpenCartModal(ctx context.Context, sessionID string) error {
	resp, err := c.carts.GetCart(ctx, sessionID)
	if err != nil {
		return err
	}
	c.surface.ShowCartModal(c.renderCartModal(resp.Items))
	return nil
}

// CloseCartModal hides the cart modal.
func (c *Controller) CloseCartModal(sessionID string) {
	c.surface.HideCartModal()
}

// RemoveItem removes the line at the given position, then refreshes
// the badge and re-renders the modal. An out-of-range index leaves the
// cart as it was and still re-renders.
func (c *Controller) RemoveItem(ctx context.Context, sessionID string, index int) error {
	if _, err := c.carts.RemoveItem(ctx, sessionID, index); err != nil {
		return err
	}
	if err := c.RefreshCartBadge(ctx, sessionID); err != nil {
		return err
	}
	return c.OpenCartModal(ctx, sessionID)
}

// ClearCart empties the cart, refreshes the badge and re-renders the
// modal.
func (c *Controller) ClearCart(ctx context.Context, sessionID string) error {
	if err := c.carts.ClearCart(ctx, sessionID); err != nil {
		return err
	}
	if err := c.RefreshCartBadge(ctx, sessionID); err != nil {
		return err
	}
	return c.OpenCartModal(ctx, sessionID)
}

func (c *Controller) renderCartModal(items []cart.LineItem) CartModalView {
	lines := make([]CartLineView, len(items))
	var total float64

	for i, item := range items {
		lineTotal := item.Price * float64(item.Quantity)
		total += lineTotal
		lines[i] = CartLineView{
			Index: i,
			Label: fmt.Sprintf("%s x %d = %s%s",
				item.Name, item.Quantity, c.currencySymbol, catalog.FormatAmount(lineTotal)),
		}
	}

	return CartModalView{
		Lines:     lines,
		TotalText: fmt.Sprintf("Total: %s%s", c.currencySymbol, catalog.FormatAmount(total)),
	}
}
