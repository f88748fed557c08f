// internal/domain/cart/entity.go
package cart

// LineItem represents one menu item's entry in the cart. Name is the
// unique key within a cart; Price is the unit price captured when the
// item was first added. The JSON field names are the persisted wire
// format and must not change without a storage migration.
type LineItem struct {
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

// Cart is an ordered sequence of line items for one storefront session.
// Insertion order is add order; merging quantity into an existing item
// updates it in place and never reorders.
type Cart struct {
	SessionID string     `json:"-"`
	Items     []LineItem `json:"items"`
}

// Totals represents calculated cart totals
type Totals struct {
	ItemCount     int     `json:"item_count"`     // Number of unique items
	TotalQuantity int     `json:"total_quantity"` // Sum of all quantities
	TotalAmount   float64 `json:"total_amount"`   // Sum of price * quantity
}

// Add merges the given item into the cart: if a line with the same name
// exists its quantity is incremented, otherwise the item is appended.
func (c *Cart) Add(item LineItem) {
	for i := range c.Items {
		if c.Items[i].Name == item.Name {
			c.Items[i].Quantity += item.Quantity
			return
		}
	}
	c.Items = append(c.Items, item)
}

// RemoveAt removes the line item at the given zero-based position.
// Returns false when the index is out of range, leaving the cart
// untouched.
func (c *Cart) RemoveAt(index int) bool {
	if index < 0 || index >= len(c.Items) {
		return false
	}
	c.Items = append(c.Items[:index], c.Items[index+1:]...)
	return true
}

// Clear replaces the item sequence with an empty one.
func (c *Cart) Clear() {
	c.Items = []LineItem{}
}

// Total returns the sum of price * quantity over all line items.
func (c *Cart) Total() float64 {
	var total float64
	for _, item := range c.Items {
		total += item.Price * float64(item.Quantity)
	}
	return total
}

// TotalQuantity returns the sum of quantities over all line items.
func (c *Cart) TotalQuantity() int {
	total := 0
	for _, item := range c.Items {
		total += item.Quantity
	}
	return total
}

// CalculateTotals computes the totals summary for the cart.
func (c *Cart) CalculateTotals() Totals {
	return Totals{
		ItemCount:     len(c.Items),
		TotalQuantity: c.TotalQuantity(),
		TotalAmount:   c.Total(),
	}
}
