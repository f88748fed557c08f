// internal/domain/cart/service.go
package cart

import (
	"context"

	"github.com/sirupsen/logrus"
)

// Service handles cart business logic
type Service struct {
	repo   Repository
	logger *logrus.Logger
}

// NewService creates a new cart service
func NewService(repo Repository, logger *logrus.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// CartResponse represents a shopping cart with items and summary
type CartResponse struct {
	SessionID string     `json:"session_id"`
	Items     []LineItem `json:"items"`
	Totals    Totals     `json:"totals"`
}

// AddToCartRequest represents add to cart request
type AddToCartRequest struct {
	Name     string  `json:"name" binding:"required"`
	Price    float64 `json:"price" binding:"min=0"`
	Quantity int     `json:"quantity" binding:"required,min=1"`
}

// GetCart retrieves the cart for a session
func (s *Service) GetCart(ctx context.Context, sessionID string) (*CartResponse, error) {
	c, err := s.repo.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return s.toResponse(c), nil
}

// AddToCart merges the item into the session's cart and persists the
// whole sequence. Quantity and price are assumed valid by the caller.
func (s *Service) AddToCart(ctx context.Context, sessionID string, item LineItem) (*CartResponse, error) {
	c, err := s.repo.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	c.Add(item)

	if err := s.repo.Save(ctx, sessionID, c); err != nil {
		return nil, err
	}
	return s.toResponse(c), nil
}

// RemoveItem removes the line item at the given zero-based position.
// An out-of-range index is treated as a no-op; the violated
// precondition is logged so it does not disappear silently.
func (s *Service) RemoveItem(ctx context.Context, sessionID string, index int) (*CartResponse, error) {
	c, err := s.repo.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if !c.RemoveAt(index) {
		s.logger.WithFields(logrus.Fields{
			"session_id": sessionID,
			"index":      index,
			"item_count": len(c.Items),
		}).Warn("Cart item removal index out of range, ignoring")
		return s.toResponse(c), nil
	}

	if err := s.repo.Save(ctx, sessionID, c); err != nil {
		return nil, err
	}
	return s.toResponse(c), nil
}

// ClearCart replaces the cart with an empty sequence and persists it.
func (s *Service) ClearCart(ctx context.Context, sessionID string) error {
	c, err := s.repo.Load(ctx, sessionID)
	if err != nil {
		return err
	}

	c.Clear()
	return s.repo.Save(ctx, sessionID, c)
}

// CartTotal returns the sum of price * quantity over the session's cart.
func (s *Service) CartTotal(ctx context.Context, sessionID string) (float64, error) {
	c, err := s.repo.Load(ctx, sessionID)
	if err != nil {
		return 0, err
	}
	return c.Total(), nil
}

// TotalQuantity returns the sum of quantities over the session's cart.
func (s *Service) TotalQuantity(ctx context.Context, sessionID string) (int, error) {
	c, err := s.repo.Load(ctx, sessionID)
	if err != nil {
		return 0, err
	}
	return c.TotalQuantity(), nil
}

func (s *Service) toResponse(c *Cart) *CartResponse {
	return &CartResponse{
		SessionID: c.SessionID,
		Items:     c.Items,
		Totals:    c.CalculateTotals(),
	}
}
