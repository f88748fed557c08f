// internal/domain/catalog/service.go
package catalog

import (
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Service handles menu catalog business logic. Besides listing the
// menu it tracks per-category availability, which the delivery checker
// toggles when a shopper's address falls outside the delivery radius.
type Service struct {
	db             *gorm.DB
	logger         *logrus.Logger
	currencySymbol string

	mu           sync.RWMutex
	availability map[string]Availability
}

// NewService creates a new catalog service
func NewService(db *gorm.DB, currencySymbol string, logger *logrus.Logger) *Service {
	return &Service{
		db:             db,
		logger:         logger,
		currencySymbol: currencySymbol,
		availability:   map[string]Availability{},
	}
}

// MenuEntry is a menu item as presented to the storefront: the price is
// already currency-formatted and category availability is merged in.
type MenuEntry struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	PriceText   string `json:"price_text"`
	Category    string `json:"category"`
	Available   bool   `json:"available"`
	Note        string `json:"note,omitempty"`
}

// Menu lists all active menu items in display order.
func (s *Service) Menu() ([]MenuEntry, error) {
	var items []MenuItem
	err := s.db.Where("is_active = ?", true).
		Order("sort_order asc, name asc").
		Find(&items).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list menu: %w", err)
	}

	entries := make([]MenuEntry, len(items))
	for i, item := range items {
		availability := s.CategoryAvailability(item.Category)
		entries[i] = MenuEntry{
			ID:          item.ID,
			Name:        item.Name,
			Description: item.Description,
			PriceText:   s.DisplayPrice(item.Price),
			Category:    item.Category,
			Available:   availability.Available,
			Note:        availability.Note,
		}
	}
	return entries, nil
}

// FindByName looks up an active menu item by its display name.
func (s *Service) FindByName(name string) (*MenuItem, error) {
	var item MenuItem
	err := s.db.Where("name = ? AND is_active = ?", name, true).First(&item).Error
	if err != nil {
		return nil, fmt.Errorf("menu item %q not found", name)
	}
	return &item, nil
}

// SetCategoryAvailability marks a whole category as orderable or not.
// The note is shown to shoppers while the category is unavailable and
// cleared when it becomes orderable again.
func (s *Service) SetCategoryAvailability(category string, available bool, note string) {
	if available {
		note = ""
	}

	s.mu.Lock()
	s.availability[category] = Availability{Available: available, Note: note}
	s.mu.Unlock()

	s.logger.WithFields(logrus.Fields{
		"category":  category,
		"available": available,
	}).Info("Category availability updated")
}

// CategoryAvailability reports the current availability of a category.
// Categories never touched by the delivery checker are orderable.
func (s *Service) CategoryAvailability(category string) Availability {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if a, ok := s.availability[category]; ok {
		return a
	}
	return Availability{Available: true}
}

// DisplayPrice renders a price the way catalog entries show it,
// e.g. "P125.00".
func (s *Service) DisplayPrice(price float64) string {
	return fmt.Sprintf("%s%.2f", s.currencySymbol, price)
}
