// internal/interfaces/http/handlers/menu.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/brisknbrew/cafe-backend/internal/domain/catalog"
)

// MenuHandler handles menu catalog endpoints
type MenuHandler struct {
	catalogService *catalog.Service
}

// NewMenuHandler creates a new menu handler
func NewMenuHandler(catalogService *catalog.Service) *MenuHandler {
	return &MenuHandler{
		catalogService: catalogService,
	}
}

// GetMenu handles GET /menu. Entries carry the currency-formatted
// price text and the current availability of their category.
func (h *MenuHandler) GetMenu(c *gin.Context) {
	entries, err := h.catalogService.Menu()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to retrieve menu",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Menu retrieved successfully",
		"data":    entries,
	})
}
