// internal/interfaces/http/routes/routes.go
package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/brisknbrew/cafe-backend/internal/config"
	"github.com/brisknbrew/cafe-backend/internal/domain/cart"
	"github.com/brisknbrew/cafe-backend/internal/domain/catalog"
	"github.com/brisknbrew/cafe-backend/internal/domain/delivery"
	"github.com/brisknbrew/cafe-backend/internal/domain/storefront"
	"github.com/brisknbrew/cafe-backend/internal/interfaces/http/handlers"
)

// SetupRoutes wires all storefront routes
func SetupRoutes(rg *gin.RouterGroup, db *gorm.DB, redisClient *redis.Client, cfg *config.Config, logger *logrus.Logger) {
	// Domain services. The catalog service is shared: the menu handler
	// reads availability that the delivery checker writes.
	cartRepo := cart.NewRedisRepository(redisClient, cfg.Store.CartTTL, logger)
	cartService := cart.NewService(cartRepo, logger)
	catalogService := catalog.NewService(db, cfg.Store.CurrencySymbol, logger)
	geocoder := delivery.NewNominatimClient(cfg.Geocoding, logger)
	checker := delivery.NewChecker(geocoder, catalogService, cfg, logger)
	drafts := storefront.NewDrafts()

	cartHandler := handlers.NewCartHandler(cartService)
	menuHandler := handlers.NewMenuHandler(catalogService)
	deliveryHandler := handlers.NewDeliveryHandler(checker)
	storefrontHandler := handlers.NewStorefrontHandler(cartService, drafts, cfg.Store.CurrencySymbol, logger)

	// Menu catalog
	menu := rg.Group("/menu")
	{
		menu.GET("", menuHandler.GetMenu)
	}

	// Cart (guest sessions, keyed by the session cookie)
	cartGroup := rg.Group("/cart")
	{
		cartGroup.GET("", cartHandler.GetCart)
		cartGroup.POST("/items", cartHandler.AddToCart)
		cartGroup.DELETE("/items/:index", cartHandler.RemoveItem)
		cartGroup.DELETE("", cartHandler.ClearCart)
		cartGroup.GET("/count", cartHandler.GetCartCount)
	}

	// Storefront popup and cart modal flows
	sf := rg.Group("/storefront")
	{
		sf.POST("/popup", storefrontHandler.OpenPopup)
		sf.DELETE("/popup", storefrontHandler.ClosePopup)
		sf.POST("/popup/quantity", storefrontHandler.ChangeQuantity)
		sf.POST("/popup/confirm", storefrontHandler.ConfirmAdd)
		sf.GET("/badge", storefrontHandler.GetBadge)
		sf.GET("/cart-modal", storefrontHandler.OpenCartModal)
		sf.DELETE("/cart-modal", storefrontHandler.CloseCartModal)
		sf.DELETE("/cart-modal/items/:index", storefrontHandler.RemoveItem)
		sf.POST("/cart-modal/clear", storefrontHandler.ClearCart)
	}

	// Delivery distance gate
	deliveryGroup := rg.Group("/delivery")
	{
		deliveryGroup.POST("/check", deliveryHandler.CheckDistance)
		deliveryGroup.GET("/policy", deliveryHandler.GetPolicy)
	}
}
