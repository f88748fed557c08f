// internal/domain/storefront/surface.go
package storefront

// ItemPopupView is what the item popup displays: the clicked entry's
// name, its original currency-formatted price text and the draft
// quantity.
type ItemPopupView struct {
	Name      string `json:"name"`
	PriceText string `json:"price_text"`
	Quantity  int    `json:"quantity"`
}

// CartLineView is one rendered cart modal row
type CartLineView struct {
	Index int    `json:"index"`
	Label string `json:"label"`
}

// CartModalView is the fully rendered cart modal: the list is rebuilt
// from scratch on every open.
type CartModalView struct {
	Lines     []CartLineView `json:"lines"`
	TotalText string         `json:"total_text"`
}

// Surface is the UI port the controller drives. The browser adapter
// mutates the page; the HTTP adapter records view state to return as
// JSON; tests assert on the calls.
type Surface interface {
	ShowItemPopup(view ItemPopupView)
	SetQuantityDisplay(quantity int)
	HideItemPopup()
	ShowCartModal(view CartModalView)
	HideCartModal()
	SetBadgeLabel(label string)
	Notify(message string)
}

// ViewState is what a Recorder surface currently shows
type ViewState struct {
	Popup      *ItemPopupView `json:"popup,omitempty"`
	CartModal  *CartModalView `json:"cart_modal,omitempty"`
	BadgeLabel string         `json:"badge_label,omitempty"`
	Notices    []string       `json:"notices,omitempty"`
}

// Recorder is a Surface that records the resulting view state instead
// of touching a real UI. A nil Recorder swallows every call, the same
// way the original storefront tolerates a missing cart button.
type Recorder struct {
	state ViewState
}

// NewRecorder creates an empty view state recorder
func NewRecorder() *Recorder {
	return &Recorder{}
}

// ShowItemPopup records the popup view
func (r *Recorder) ShowItemPopup(view ItemPopupView) {
	if r == nil {
		return
	}
	r.state.Popup = &view
}

// SetQuantityDisplay updates the recorded popup quantity
func (r *Recorder) SetQuantityDisplay(quantity int) {
	if r == nil || r.state.Popup == nil {
		return
	}
	r.state.Popup.Quantity = quantity
}

// HideItemPopup clears the recorded popup
func (r *Recorder) HideItemPopup() {
	if r == nil {
		return
	}
	r.state.Popup = nil
}

// ShowCartModal records the cart modal view
func (r *Recorder) ShowCartModal(view CartModalView) {
	if r == nil {
		return
	}
	r.state.CartModal = &view
}

// HideCartModal clears the recorded cart modal
func (r *Recorder) HideCartModal() {
	if r == nil {
		return
	}
	r.state.CartModal = nil
}

// SetBadgeLabel records the cart badge label
func (r *Recorder) SetBadgeLabel(label string) {
	if r == nil {
		return
	}
	r.state.BadgeLabel = label
}

// Notify records a shopper-facing notice
func (r *Recorder) Notify(message string) {
	if r == nil {
		return
	}
	r.state.Notices = append(r.state.Notices, message)
}

// State returns the recorded view state
func (r *Recorder) State() ViewState {
	if r == nil {
		return ViewState{}
	}
	return r.state
}
