// internal/domain/storefront/drafts.go
package storefront

import "sync"

// PendingSelection is the transient draft built while the item popup
// is open. It lives in memory only and is never persisted.
type PendingSelection struct {
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

// Drafts holds each session's pending selection
type Drafts struct {
	mu        sync.Mutex
	bySession map[string]*PendingSelection
}

// NewDrafts creates an empty draft store
func NewDrafts() *Drafts {
	return &Drafts{bySession: map[string]*PendingSelection{}}
}

func (d *Drafts) put(sessionID string, draft *PendingSelection) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.bySession[sessionID] = draft
}

func (d *Drafts) get(sessionID string) (*PendingSelection, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	draft, ok := d.bySession[sessionID]
	return draft, ok
}

func (d *Drafts) remove(sessionID string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	delete(d.bySession, sessionID)
}
