// internal/domain/cart/memory.go
package cart

import (
	"context"
	"encoding/json"
	"sync"
)

// MemoryRepository keeps carts in process memory. It round-trips the
// item sequence through JSON so it exercises the same wire format as
// the Redis repository; useful for tests and local development without
// a storage backend.
type MemoryRepository struct {
	mu    sync.Mutex
	blobs map[string][]byte
}

// NewMemoryRepository creates an empty in-memory cart repository
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{blobs: map[string][]byte{}}
}

// Load retrieves the cart for a session, empty if none was saved.
func (m *MemoryRepository) Load(_ context.Context, sessionID string) (*Cart, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	data, ok := m.blobs[sessionID]
	if !ok {
		return &Cart{SessionID: sessionID, Items: []LineItem{}}, nil
	}

	items, _ := decodeItems(data)
	return &Cart{SessionID: sessionID, Items: items}, nil
}

// Save overwrites the serialized item sequence for a session.
func (m *MemoryRepository) Save(_ context.Context, sessionID string, c *Cart) error {
	data, err := json.Marshal(c.Items)
	if err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.blobs[sessionID] = data
	return nil
}

// Delete removes the stored cart for a session.
func (m *MemoryRepository) Delete(_ context.Context, sessionID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.blobs, sessionID)
	return nil
}

// Raw returns the stored blob for a session, for tests that assert on
// the persisted wire format.
func (m *MemoryRepository) Raw(sessionID string) []byte {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.blobs[sessionID]
}

// Put stores a raw blob for a session, for tests that need to inject
// malformed persisted state.
func (m *MemoryRepository) Put(sessionID string, data []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.blobs[sessionID] = data
}
