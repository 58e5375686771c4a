package cache

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	// alertKeyPrefix is the prefix for all alert deduplication keys
	alertKeyPrefix = "art_alert:"
)

// AlertType represents different alert types for deduplication
type AlertType string

const (
	AlertTypeLowStock AlertType = "low_stock"
)

// AlertDeduplicator provides Redis-based alert deduplication
type AlertDeduplicator struct {
	client *redis.Client
}

// NewAlertDeduplicator creates a new AlertDeduplicator instance
func NewAlertDeduplicator(client *redis.Client) *AlertDeduplicator {
	return &AlertDeduplicator{client: client}
}

// buildKey builds the Redis key for alert deduplication
// Format: art_alert:{type}:{resource_id}
func buildKey(alertType AlertType, resourceID uint) string {
	return fmt.Sprintf("%s%s:%d", alertKeyPrefix, alertType, resourceID)
}

// TryAcquireAlertLock atomically checks and acquires an alert lock using SetNX.
// Returns true if the lock was acquired (alert should be sent), false if already in cooldown.
func (d *AlertDeduplicator) TryAcquireAlertLock(ctx context.Context, alertType AlertType, resourceID uint, ttl time.Duration) (bool, error) {
	acquired, err := d.client.SetNX(ctx, buildKey(alertType, resourceID), "1", ttl).Result()
	if err != nil {
		return false, fmt.Errorf("failed to acquire alert lock: %w", err)
	}
	return acquired, nil
}

// ClearAlert ends the cooldown, e.g. once stock is replenished.
func (d *AlertDeduplicator) ClearAlert(ctx context.Context, alertType AlertType, resourceID uint) error {
	if err := d.client.Del(ctx, buildKey(alertType, resourceID)).Err(); err != nil {
		return fmt.Errorf("failed to clear alert: %w", err)
	}
	return nil
}

// MemoryAlertDeduplicator keeps cooldowns in process memory. It is used when
// Redis is disabled and only deduplicates within one instance.
type MemoryAlertDeduplicator struct {
	mu      sync.Mutex
	expires map[string]time.Time
	now     func() time.Time
}

func NewMemoryAlertDeduplicator() *MemoryAlertDeduplicator {
	return &MemoryAlertDeduplicator{expires: make(map[string]time.Time), now: time.Now}
}

func (d *MemoryAlertDeduplicator) TryAcquireAlertLock(_ context.Context, alertType AlertType, resourceID uint, ttl time.Duration) (bool, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	key := buildKey(alertType, resourceID)
	now := d.now()
	if until, ok := d.expires[key]; ok && now.Before(until) {
		return false, nil
	}
	d.expires[key] = now.Add(ttl)
	return true, nil
}

func (d *MemoryAlertDeduplicator) ClearAlert(_ context.Context, alertType AlertType, resourceID uint) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	delete(d.expires, buildKey(alertType, resourceID))
	return nil
}
