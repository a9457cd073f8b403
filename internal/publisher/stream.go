package publisher

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/redis/go-redis/v9"

	"github.com/XavierBriggs/fortuna/services/pick-standardizer/pkg/models"
)

// Deduplicator decides whether a pick was already published recently.
// Release gives back claims for picks that failed to publish.
type Deduplicator interface {
	ShouldPublish(ctx context.Context, pick models.Pick) (bool, error)
	Release(ctx context.Context, picks ...models.Pick) error
}

// StreamPublisher publishes standardized picks to Redis Streams
type StreamPublisher struct {
	redis  redis.Cmdable
	dedup  Deduplicator
	logger *slog.Logger
}

// NewStreamPublisher creates a new stream publisher. dedup may be nil.
func NewStreamPublisher(redisClient redis.Cmdable, dedup Deduplicator, logger *slog.Logger) *StreamPublisher {
	if logger == nil {
		logger = slog.Default()
	}
	return &StreamPublisher{
		redis:  redisClient,
		dedup:  dedup,
		logger: logger,
	}
}

// StreamKey returns the stream a pick is published to
// Stream key format: picks.standardized.{sport}
func StreamKey(sport string) string {
	sport = strings.ToLower(strings.TrimSpace(sport))
	if sport == "" {
		sport = "unknown"
	}
	return fmt.Sprintf("picks.standardized.%s", sport)
}

// PublishBatch publishes picks not seen within the dedup window in a single
// pipeline and returns how many were sent
func (p *StreamPublisher) PublishBatch(ctx context.Context, picks []models.Pick) (int, error) {
	if len(picks) == 0 {
		return 0, nil
	}

	pipe := p.redis.Pipeline()
	queued := 0
	var claimed []models.Pick

	for _, pick := range picks {
		if p.dedup != nil {
			ok, err := p.dedup.ShouldPublish(ctx, pick)
			switch {
			case err != nil:
				// a dedup outage should not stop the feed
				p.logger.Warn("dedup check failed", "pick", pick.IdentityKey(), "error", err)
			case !ok:
				continue
			default:
				claimed = append(claimed, pick)
			}
		}

		data, err := json.Marshal(pick)
		if err != nil {
			p.logger.Warn("error marshaling pick", "error", err)
			continue
		}

		pipe.XAdd(ctx, xaddArgs(StreamKey(pick.Sport), pick, data))
		queued++
	}

	if queued == 0 {
		return 0, nil
	}

	if _, err := pipe.Exec(ctx); err != nil {
		if len(claimed) > 0 {
			if relErr := p.dedup.Release(ctx, claimed...); relErr != nil {
				p.logger.Warn("failed to release dedup claims", "count", len(claimed), "error", relErr)
			}
		}
		return 0, fmt.Errorf("error executing publish pipeline: %w", err)
	}
	return queued, nil
}

func xaddArgs(stream string, pick models.Pick, data []byte) *redis.XAddArgs {
	return &redis.XAddArgs{
		Stream: stream,
		Values: map[string]interface{}{
			"id":   pick.IdentityKey(),
			"data": string(data),
		},
	}
}
