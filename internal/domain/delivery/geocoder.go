// internal/domain/delivery/geocoder.go
package delivery

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/go-resty/resty/v2"
	"github.com/sirupsen/logrus"

	"github.com/brisknbrew/cafe-backend/internal/config"
)

// ErrAddressNotFound is returned when the lookup succeeds but matches
// no location. Callers must treat it differently from a transport
// failure: the shopper can fix a typo, not a network outage.
var ErrAddressNotFound = errors.New("address not found")

// Geocoder resolves a free-text address to coordinates
type Geocoder interface {
	Geocode(ctx context.Context, address string) (Coordinates, error)
}

// NominatimClient geocodes addresses against the OpenStreetMap
// Nominatim search API.
type NominatimClient struct {
	http   *resty.Client
	logger *logrus.Logger
}

// NewNominatimClient creates a Nominatim geocoding client
func NewNominatimClient(cfg config.GeocodingConfig, logger *logrus.Logger) *NominatimClient {
	httpClient := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetHeader("User-Agent", cfg.UserAgent).
		SetTimeout(cfg.Timeout)

	return &NominatimClient{
		http:   httpClient,
		logger: logger,
	}
}

// nominatim returns lat/lon as decimal strings
type nominatimResult struct {
	Lat string `json:"lat"`
	Lon string `json:"lon"`
}

// Geocode resolves the address via GET /search?format=json&q=<address>
// and takes the first match.
func (c *NominatimClient) Geocode(ctx context.Context, address string) (Coordinates, error) {
	var results []nominatimResult

	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParam("format", "json").
		SetQueryParam("q", address).
		SetResult(&results).
		Get("/search")
	if err != nil {
		return Coordinates{}, fmt.Errorf("geocoding request failed: %w", err)
	}
	if resp.IsError() {
		return Coordinates{}, fmt.Errorf("geocoding request failed: %s", resp.Status())
	}

	if len(results) == 0 {
		return Coordinates{}, ErrAddressNotFound
	}

	lat, err := strconv.ParseFloat(results[0].Lat, 64)
	if err != nil {
		return Coordinates{}, fmt.Errorf("geocoding returned invalid latitude %q: %w", results[0].Lat, err)
	}
	lon, err := strconv.ParseFloat(results[0].Lon, 64)
	if err != nil {
		return Coordinates{}, fmt.Errorf("geocoding returned invalid longitude %q: %w", results[0].Lon, err)
	}

	return Coordinates{Lat: lat, Lon: lon}, nil
}
