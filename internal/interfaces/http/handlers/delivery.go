// internal/interfaces/http/handlers/delivery.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/brisknbrew/cafe-backend/internal/domain/delivery"
)

// DeliveryHandler handles delivery distance endpoints
type DeliveryHandler struct {
	checker *delivery.Checker
}

// NewDeliveryHandler creates a new delivery handler
func NewDeliveryHandler(checker *delivery.Checker) *DeliveryHandler {
	return &DeliveryHandler{
		checker: checker,
	}
}

// CheckDistanceRequest represents a delivery distance check request
type CheckDistanceRequest struct {
	Address string `json:"address" binding:"required"`
}

// CheckDistance handles POST /delivery/check. An unresolvable address
// is a 404 the shopper can act on; an upstream failure is a 502 and
// deliberately indistinguishable beyond that.
func (h *DeliveryHandler) CheckDistance(c *gin.Context) {
	var req CheckDistanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	result, err := h.checker.CheckDeliveryDistance(c.Request.Context(), req.Address)
	if err != nil {
		if errors.Is(err, delivery.ErrAddressNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Address not found. Please check spelling.",
			})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{
			"error": "Delivery check failed, please try again",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Delivery distance computed successfully",
		"data":    result,
	})
}

// GetPolicy handles GET /delivery/policy
func (h *DeliveryHandler) GetPolicy(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Delivery policy retrieved successfully",
		"data":    h.checker.Policy(),
	})
}
