// internal/domain/cart/repository.go
package cart

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// Repository is the persistence port for carts. Every save is a full
// overwrite of the serialized item sequence, not an incremental update.
type Repository interface {
	Load(ctx context.Context, sessionID string) (*Cart, error)
	Save(ctx context.Context, sessionID string, c *Cart) error
	Delete(ctx context.Context, sessionID string) error
}

// RedisRepository persists carts as JSON blobs in Redis
type RedisRepository struct {
	client *redis.Client
	ttl    time.Duration
	logger *logrus.Logger
}

// NewRedisRepository creates a Redis-backed cart repository
func NewRedisRepository(client *redis.Client, ttl time.Duration, logger *logrus.Logger) *RedisRepository {
	return &RedisRepository{
		client: client,
		ttl:    ttl,
		logger: logger,
	}
}

func cartKey(sessionID string) string {
	return fmt.Sprintf("cart:session:%s", sessionID)
}

// Load retrieves the cart for a session. A missing key yields an empty
// cart. A stored blob that no longer parses also yields an empty cart:
// a corrupt cart must never take the storefront down.
func (r *RedisRepository) Load(ctx context.Context, sessionID string) (*Cart, error) {
	if sessionID == "" {
		return nil, fmt.Errorf("session ID required to load cart")
	}

	data, err := r.client.Get(ctx, cartKey(sessionID)).Result()
	if err == redis.Nil {
		return &Cart{SessionID: sessionID, Items: []LineItem{}}, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to load cart: %w", err)
	}

	items, ok := decodeItems([]byte(data))
	if !ok {
		r.logger.WithFields(logrus.Fields{
			"session_id": sessionID,
			"key":        cartKey(sessionID),
		}).Warn("Stored cart is malformed, starting with an empty cart")
	}

	return &Cart{SessionID: sessionID, Items: items}, nil
}

// decodeItems parses a stored cart blob. A blob that no longer parses
// yields an empty sequence instead of an error.
func decodeItems(data []byte) ([]LineItem, bool) {
	var items []LineItem
	if err := json.Unmarshal(data, &items); err != nil {
		return []LineItem{}, false
	}
	if items == nil {
		items = []LineItem{}
	}
	return items, true
}

// Save overwrites the whole serialized item sequence for a session.
func (r *RedisRepository) Save(ctx context.Context, sessionID string, c *Cart) error {
	if sessionID == "" {
		return fmt.Errorf("session ID required to save cart")
	}

	data, err := json.Marshal(c.Items)
	if err != nil {
		return fmt.Errorf("failed to serialize cart: %w", err)
	}

	if err := r.client.Set(ctx, cartKey(sessionID), data, r.ttl).Err(); err != nil {
		return fmt.Errorf("failed to save cart: %w", err)
	}
	return nil
}

// Delete removes the persisted cart for a session.
func (r *RedisRepository) Delete(ctx context.Context, sessionID string) error {
	if err := r.client.Del(ctx, cartKey(sessionID)).Err(); err != nil {
		return fmt.Errorf("failed to delete cart: %w", err)
	}
	return nil
}
