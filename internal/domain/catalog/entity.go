// internal/domain/catalog/entity.go
package catalog

import (
	"time"

	"gorm.io/gorm"
)

// MenuItem represents one entry on the café menu
type MenuItem struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	Name        string         `gorm:"uniqueIndex;not null;size:255" json:"name"`
	Description string         `gorm:"size:500" json:"description"`
	Price       float64        `gorm:"not null" json:"price"`
	Category    string         `gorm:"not null;index;size:100" json:"category"` // e.g. "beverage", "food"
	SortOrder   int            `gorm:"default:0" json:"sort_order"`
	IsActive    bool           `gorm:"default:true" json:"is_active"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName overrides the table name
func (MenuItem) TableName() string {
	return "menu_items"
}

// Availability describes whether a category of menu items can currently
// be ordered, with an optional shopper-facing note when it cannot.
type Availability struct {
	Available bool   `json:"available"`
	Note      string `json:"note,omitempty"`
}
