// internal/domain/delivery/service.go
package delivery

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/brisknbrew/cafe-backend/internal/config"
)

// AvailabilitySink receives category availability changes decided by
// the delivery checker. The catalog service satisfies this.
type AvailabilitySink interface {
	SetCategoryAvailability(category string, available bool, note string)
}

// Checker decides whether a shopper's address is within the delivery
// radius and gates the restricted menu category accordingly.
type Checker struct {
	geocoder           Geocoder
	catalog            AvailabilitySink
	logger             *logrus.Logger
	store              Coordinates
	storeName          string
	radiusKm           float64
	restrictedCategory string
	trigger            string
}

// NewChecker creates a delivery distance checker
func NewChecker(geocoder Geocoder, catalog AvailabilitySink, cfg *config.Config, logger *logrus.Logger) *Checker {
	return &Checker{
		geocoder:           geocoder,
		catalog:            catalog,
		logger:             logger,
		store:              Coordinates{Lat: cfg.Store.Latitude, Lon: cfg.Store.Longitude},
		storeName:          cfg.Store.Name,
		radiusKm:           cfg.Store.DeliveryRadiusKm,
		restrictedCategory: cfg.Store.RestrictedCategory,
		trigger:            cfg.Geocoding.Trigger,
	}
}

// Result is the outcome of a delivery distance check
type Result struct {
	DistanceKm float64 `json:"distance_km"`
	Restricted bool    `json:"restricted"`
	Advisory   string  `json:"advisory,omitempty"`
}

// Policy tells the SPA how and when to run the delivery check
type Policy struct {
	Trigger            string  `json:"trigger"`
	RadiusKm           float64 `json:"radius_km"`
	RestrictedCategory string  `json:"restricted_category"`
}

// CheckDeliveryDistance geocodes the address, computes the
// great-circle distance from the store and toggles availability of the
// restricted category. An unresolvable address aborts the check
// without touching the catalog.
func (c *Checker) CheckDeliveryDistance(ctx context.Context, address string) (*Result, error) {
	coords, err := c.geocoder.Geocode(ctx, address)
	if err != nil {
		if errors.Is(err, ErrAddressNotFound) {
			return nil, err
		}
		c.logger.WithFields(logrus.Fields{
			"address": address,
			"error":   err.Error(),
		}).Error("Geocoding lookup failed")
		return nil, fmt.Errorf("delivery distance check failed: %w", err)
	}

	distance := Haversine(c.store.Lat, c.store.Lon, coords.Lat, coords.Lon)

	c.logger.WithFields(logrus.Fields{
		"address":     address,
		"distance_km": fmt.Sprintf("%.2f", distance),
	}).Info("Delivery distance computed")

	return c.apply(distance), nil
}

// apply gates the restricted category. The threshold is strict: a
// shopper exactly on the radius is still deliverable.
func (c *Checker) apply(distance float64) *Result {
	result := &Result{DistanceKm: distance}

	if distance > c.radiusKm {
		result.Restricted = true
		result.Advisory = fmt.Sprintf(
			"Friendly Reminder from %s: to ensure the best quality of our products, some items like beverages may not be available for delivery to locations more than %v kilometers from our store.",
			c.storeName, c.radiusKm,
		)
		c.catalog.SetCategoryAvailability(c.restrictedCategory, false,
			fmt.Sprintf("Not available for delivery beyond %vkm", c.radiusKm))
	} else {
		c.catalog.SetCategoryAvailability(c.restrictedCategory, true, "")
	}

	return result
}

// Policy reports the configured trigger policy and radius.
func (c *Checker) Policy() Policy {
	return Policy{
		Trigger:            c.trigger,
		RadiusKm:           c.radiusKm,
		RestrictedCategory: c.restrictedCategory,
	}
}
