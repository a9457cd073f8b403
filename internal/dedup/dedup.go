package dedup

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/XavierBriggs/fortuna/services/pick-standardizer/pkg/models"
)

// Deduplicator suppresses re-publishing the same pick within a TTL window
type Deduplicator struct {
	client redis.Cmdable
	ttl    time.Duration
}

// NewDeduplicator creates a new deduplicator
func NewDeduplicator(client redis.Cmdable, ttlMinutes int) *Deduplicator {
	if ttlMinutes <= 0 {
		ttlMinutes = 60
	}
	return &Deduplicator{
		client: client,
		ttl:    time.Duration(ttlMinutes) * time.Minute,
	}
}

// ShouldPublish returns true the first time a pick is seen within the TTL.
// The check and the claim are a single SETNX so concurrent publishers agree.
func (d *Deduplicator) ShouldPublish(ctx context.Context, pick models.Pick) (bool, error) {
	ok, err := d.client.SetNX(ctx, Key(pick), "1", d.ttl).Result()
	if err != nil {
		return false, fmt.Errorf("failed to set dedup key: %w", err)
	}
	return ok, nil
}

// Release drops the claims on picks that were never delivered, so the next
// attempt may publish them
func (d *Deduplicator) Release(ctx context.Context, picks ...models.Pick) error {
	if len(picks) == 0 {
		return nil
	}

	keys := make([]string, len(picks))
	for i, pick := range picks {
		keys[i] = Key(pick)
	}
	if err := d.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("failed to release dedup keys: %w", err)
	}
	return nil
}

// Key returns the dedup key for a pick
// Key format: picks:dedup:{identity key}
func Key(pick models.Pick) string {
	return "picks:dedup:" + pick.IdentityKey()
}
