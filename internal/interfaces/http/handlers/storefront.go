// internal/interfaces/http/handlers/storefront.go
package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/brisknbrew/cafe-backend/internal/domain/cart"
	"github.com/brisknbrew/cafe-backend/internal/domain/storefront"
)

// StorefrontHandler exposes the popup and cart modal flows. Each
// request gets a fresh view-state recorder as the controller's
// surface; the recorded state is returned to the SPA, which applies it
// to the page.
type StorefrontHandler struct {
	cartService    *cart.Service
	drafts         *storefront.Drafts
	currencySymbol string
	logger         *logrus.Logger
}

// NewStorefrontHandler creates a new storefront handler
func NewStorefrontHandler(cartService *cart.Service, drafts *storefront.Drafts, currencySymbol string, logger *logrus.Logger) *StorefrontHandler {
	return &StorefrontHandler{
		cartService:    cartService,
		drafts:         drafts,
		currencySymbol: currencySymbol,
		logger:         logger,
	}
}

func (h *StorefrontHandler) controller() (*storefront.Controller, *storefront.Recorder) {
	recorder := storefront.NewRecorder()
	return storefront.NewController(h.cartService, h.drafts, recorder, h.currencySymbol, h.logger), recorder
}

// OpenPopupRequest represents an item popup open request
type OpenPopupRequest struct {
	Name      string `json:"name" binding:"required"`
	PriceText string `json:"price_text" binding:"required"`
}

// OpenPopup handles POST /storefront/popup
func (h *StorefrontHandler) OpenPopup(c *gin.Context) {
	sessionID := getOrCreateSessionID(c)

	var req OpenPopupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	ctrl, recorder := h.controller()
	ctrl.OpenItemPopup(sessionID, req.Name, req.PriceText)

	c.JSON(http.StatusOK, gin.H{
		"message": "Item popup opened",
		"data":    recorder.State(),
	})
}

// ClosePopup handles DELETE /storefront/popup
func (h *StorefrontHandler) ClosePopup(c *gin.Context) {
	sessionID := getOrCreateSessionID(c)

	ctrl, recorder := h.controller()
	ctrl.CloseItemPopup(sessionID)

	c.JSON(http.StatusOK, gin.H{
		"message": "Item popup closed",
		"data":    recorder.State(),
	})
}

// ChangeQuantityRequest represents a popup quantity adjustment
type ChangeQuantityRequest struct {
	Delta int `json:"delta" binding:"required"`
}

// ChangeQuantity handles POST /storefront/popup/quantity
func (h *StorefrontHandler) ChangeQuantity(c *gin.Context) {
	sessionID := getOrCreateSessionID(c)

	var req ChangeQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	ctrl, _ := h.controller()
	quantity := ctrl.ChangeQuantity(sessionID, req.Delta)
	if quantity == 0 {
		c.JSON(http.StatusConflict, gin.H{
			"error": "No item popup is open",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Quantity updated",
		"data": gin.H{
			"quantity": quantity,
		},
	})
}

// ConfirmAdd handles POST /storefront/popup/confirm
func (h *StorefrontHandler) ConfirmAdd(c *gin.Context) {
	sessionID := getOrCreateSessionID(c)

	ctrl, recorder := h.controller()
	if err := ctrl.ConfirmAddToCart(c.Request.Context(), sessionID); err != nil {
		c.JSON(http.StatusConflict, gin.H{
			"error": "No pending selection to add",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Item added to cart successfully",
		"data":    recorder.State(),
	})
}

// GetBadge handles GET /storefront/badge, the page-ready badge refresh.
func (h *StorefrontHandler) GetBadge(c *gin.Context) {
	sessionID := getOrCreateSessionID(c)

	ctrl, recorder := h.controller()
	if err := ctrl.RefreshCartBadge(c.Request.Context(), sessionID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to refresh cart badge",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Cart badge refreshed",
		"data":    recorder.State(),
	})
}

// OpenCartModal handles GET /storefront/cart-modal
func (h *StorefrontHandler) OpenCartModal(c *gin.Context) {
	sessionID := getOrCreateSessionID(c)

	ctrl, recorder := h.controller()
	if err := ctrl.OpenCartModal(c.Request.Context(), sessionID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to render cart",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Cart modal rendered",
		"data":    recorder.State(),
	})
}

// CloseCartModal handles DELETE /storefront/cart-modal
func (h *StorefrontHandler) CloseCartModal(c *gin.Context) {
	sessionID := getOrCreateSessionID(c)

	ctrl, recorder := h.controller()
	ctrl.CloseCartModal(sessionID)

	c.JSON(http.StatusOK, gin.H{
		"message": "Cart modal closed",
		"data":    recorder.State(),
	})
}

// RemoveItem handles DELETE /storefront/cart-modal/items/:index
func (h *StorefrontHandler) RemoveItem(c *gin.Context) {
	sessionID := getOrCreateSessionID(c)

	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid item index",
		})
		return
	}

	ctrl, recorder := h.controller()
	if err := ctrl.RemoveItem(c.Request.Context(), sessionID, index); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to remove item",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Item removed",
		"data":    recorder.State(),
	})
}

// ClearCart handles POST /storefront/cart-modal/clear
func (h *StorefrontHandler) ClearCart(c *gin.Context) {
	sessionID := getOrCreateSessionID(c)

	ctrl, recorder := h.controller()
	if err := ctrl.ClearCart(c.Request.Context(), sessionID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to clear cart",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Cart cleared",
		"data":    recorder.State(),
	})
}
