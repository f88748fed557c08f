// internal/domain/catalog/service_test.go
package catalog

import (
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func newTestService() *Service {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return NewService(nil, "P", logger)
}

func TestCategoryAvailabilityDefaultsToOrderable(t *testing.T) {
	svc := newTestService()

	a := svc.CategoryAvailability("beverage")
	assert.True(t, a.Available)
	assert.Empty(t, a.Note)
}

func TestSetCategoryAvailabilityRoundTrip(t *testing.T) {
	svc := newTestService()

	svc.SetCategoryAvailability("beverage", false, "Not available for delivery beyond 5km")
	a := svc.CategoryAvailability("beverage")
	assert.False(t, a.Available)
	assert.Equal(t, "Not available for delivery beyond 5km", a.Note)

	// Other categories are untouched.
	assert.True(t, svc.CategoryAvailability("food").Available)

	// Restoring availability clears the note.
	svc.SetCategoryAvailability("beverage", true, "stale note")
	a = svc.CategoryAvailability("beverage")
	assert.True(t, a.Available)
	assert.Empty(t, a.Note)
}

func TestDisplayPrice(t *testing.T) {
	svc := newTestService()

	assert.Equal(t, "P125.00", svc.DisplayPrice(125))
	assert.Equal(t, "P12.50", svc.DisplayPrice(12.5))
}
