package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// NotificationDeduper suppresses repeat notifications for the same
// request/donor pair, backed by Redis.
// Key format: notify:<request_fingerprint>:<donor_email>
type NotificationDeduper struct {
	client *redis.Client
	ttl    time.Duration
}

// NewNotificationDeduper wraps the given Redis client. A non-positive
// ttl falls back to 24 hours.
func NewNotificationDeduper(client *redis.Client, ttl time.Duration) *NotificationDeduper {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &NotificationDeduper{client: client, ttl: ttl}
}

// IsDuplicate reports whether this donor was already notified for this
// request within the dedup window.
func (d *NotificationDeduper) IsDuplicate(ctx context.Context, fingerprint, email string) (bool, error) {
	n, err := d.client.Exists(ctx, d.key(fingerprint, email)).Result()
	if err != nil {
		return false, fmt.Errorf("dedup check: %w", err)
	}
	return n > 0, nil
}

// Mark records that this donor has been notified (expires after the
// configured TTL).
func (d *NotificationDeduper) Mark(ctx context.Context, fingerprint, email string) error {
	return d.client.Set(ctx, d.key(fingerprint, email), "1", d.ttl).Err()
}

func (d *NotificationDeduper) key(fingerprint, email string) string {
	return fmt.Sprintf("notify:%s:%s", fingerprint, email)
}
