// internal/infrastructure/database/postgres/migration.go
package postgres

import (
	"fmt"
	"log"

	"gorm.io/gorm"

	"github.com/brisknbrew/cafe-backend/internal/domain/catalog"
)

// Migration handles database migrations
type Migration struct {
	db *gorm.DB
}

// NewMigration creates a new migration instance
func NewMigration(db *gorm.DB) *Migration {
	return &Migration{
		db: db,
	}
}

// RunAutoMigrations runs GORM auto-migrations for all models
func (m *Migration) RunAutoMigrations() error {
	log.Println("🔄 Running database auto-migrations...")

	models := []interface{}{
		&catalog.MenuItem{},
	}

	for _, model := range models {
		log.Printf("Migrating model: %T", model)
		if err := m.db.AutoMigrate(model); err != nil {
			return fmt.Errorf("failed to migrate %T: %w", model, err)
		}
	}

	log.Println("✅ Database migrations completed")
	return nil
}

// SeedInitialData seeds the café menu in development environments.
// Seeding is idempotent: it only runs against an empty menu table.
func (m *Migration) SeedInitialData() error {
	var count int64
	if err := m.db.Model(&catalog.MenuItem{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to inspect menu table: %w", err)
	}
	if count > 0 {
		log.Println("Menu already seeded, skipping")
		return nil
	}

	log.Println("🌱 Seeding café menu...")

	menu := []catalog.MenuItem{
		{Name: "Americano", Description: "Double shot over hot water", Price: 95, Category: "beverage", SortOrder: 1},
		{Name: "Iced Latte", Description: "Espresso with cold milk over ice", Price: 125, Category: "beverage", SortOrder: 2},
		{Name: "Caramel Macchiato", Description: "Vanilla, steamed milk, caramel drizzle", Price: 145, Category: "beverage", SortOrder: 3},
		{Name: "Spanish Latte", Description: "Espresso with condensed milk", Price: 135, Category: "beverage", SortOrder: 4},
		{Name: "Mocha Frappe", Description: "Blended coffee with chocolate", Price: 155, Category: "beverage", SortOrder: 5},
		{Name: "Ham Croissant", Description: "Buttery croissant with ham and cheese", Price: 150, Category: "food", SortOrder: 10},
		{Name: "Carbonara", Description: "Creamy pasta with bacon bits", Price: 185, Category: "food", SortOrder: 11},
		{Name: "Clubhouse Sandwich", Description: "Triple decker with fries", Price: 195, Category: "food", SortOrder: 12},
		{Name: "Chocolate Brownie", Description: "Fudgy, baked in-house", Price: 85, Category: "food", SortOrder: 13},
	}

	for i := range menu {
		menu[i].IsActive = true
	}

	if err := m.db.Create(&menu).Error; err != nil {
		return fmt.Errorf("failed to seed menu: %w", err)
	}

	log.Printf("✅ Seeded %d menu items", len(menu))
	return nil
}
