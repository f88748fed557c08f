// internal/domain/catalog/price_test.go
package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePrice(t *testing.T) {
	tests := []struct {
		name string
		text string
		want float64
	}{
		{name: "peso prefix with decimals", text: "P125.00", want: 125},
		{name: "peso sign with thousands separator", text: "₱1,250", want: 1250},
		{name: "bare number", text: "99", want: 99},
		{name: "suffix currency", text: "12.5 PHP", want: 12.5},
		{name: "zero", text: "P0", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParsePrice(tt.text)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestParsePriceRejectsNonNumeric(t *testing.T) {
	_, err := ParsePrice("free!")
	assert.Error(t, err)

	_, err = ParsePrice("")
	assert.Error(t, err)

	_, err = ParsePrice("1.2.3")
	assert.Error(t, err)
}

func TestFormatAmountKeepsRawPrecision(t *testing.T) {
	assert.Equal(t, "12.5", FormatAmount(12.5))
	assert.Equal(t, "125", FormatAmount(125))
	assert.Equal(t, "1250", FormatAmount(1250))
	assert.Equal(t, "0", FormatAmount(0))
}
