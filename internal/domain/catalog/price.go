// internal/domain/catalog/price.go
package catalog

import (
	"fmt"
	"strconv"
	"strings"
)

// ParsePrice converts a currency-formatted price string into a decimal
// amount. The rules are deliberately permissive: every rune except
// digits and the decimal point is stripped, so any currency symbol,
// thousands separator or surrounding text is dropped. "P125.00" parses
// to 125, "₱1,250" to 1250.
func ParsePrice(text string) (float64, error) {
	var b strings.Builder
	for _, r := range text {
		if (r >= '0' && r <= '9') || r == '.' {
			b.WriteRune(r)
		}
	}

	cleaned := b.String()
	if cleaned == "" {
		return 0, fmt.Errorf("no numeric content in price %q", text)
	}

	value, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid price %q: %w", text, err)
	}
	return value, nil
}

// FormatAmount renders a decimal amount the way the storefront displays
// it: no fixed decimal places, so 12.5 stays "12.5" and 125 stays
// "125".
func FormatAmount(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}
