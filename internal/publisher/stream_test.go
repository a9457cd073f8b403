package publisher_test

import (
	"context"
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/XavierBriggs/fortuna/services/pick-standardizer/internal/publisher"
	"github.com/XavierBriggs/fortuna/services/pick-standardizer/internal/testutil"
	"github.com/XavierBriggs/fortuna/services/pick-standardizer/pkg/models"
)

func TestStreamKey(t *testing.T) {
	tests := map[string]string{
		"NBA":   "picks.standardized.nba",
		" nfl ": "picks.standardized.nfl",
		"":      "picks.standardized.unknown",
	}

	for in, want := range tests {
		if got := publisher.StreamKey(in); got != want {
			t.Errorf("StreamKey(%q) = %s, want %s", in, got, want)
		}
	}
}

// seenOnce reports each identity key as new exactly once
type seenOnce struct {
	seen     map[string]bool
	released int
}

func (s *seenOnce) ShouldPublish(_ context.Context, pick models.Pick) (bool, error) {
	key := pick.IdentityKey()
	if s.seen[key] {
		return false, nil
	}
	s.seen[key] = true
	return true, nil
}

func (s *seenOnce) Release(_ context.Context, picks ...models.Pick) error {
	for _, pick := range picks {
		delete(s.seen, pick.IdentityKey())
	}
	s.released += len(picks)
	return nil
}

func TestPublishBatch_Redis(t *testing.T) {
	url := os.Getenv("REDIS_URL")
	if url == "" {
		t.Skip("REDIS_URL not set")
	}

	opts, err := redis.ParseURL(url)
	if err != nil {
		t.Fatalf("invalid REDIS_URL: %v", err)
	}
	client := redis.NewClient(opts)
	defer client.Close()

	ctx := context.Background()
	sport := "TESTSPORT"
	stream := publisher.StreamKey(sport)
	client.Del(ctx, stream)
	defer client.Del(ctx, stream)

	pub := publisher.NewStreamPublisher(client, &seenOnce{seen: map[string]bool{}}, testutil.DiscardLogger())

	pick := testutil.PickFixture(func(p *models.Pick) { p.Sport = sport })
	other := testutil.PickFixture(func(p *models.Pick) { p.Sport = sport; p.Line = "-7" })

	n, err := pub.PublishBatch(ctx, []models.Pick{pick, other, pick})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != 2 {
		t.Errorf("published %d picks, want 2", n)
	}

	entries, err := client.XRange(ctx, stream, "-", "+").Result()
	if err != nil {
		t.Fatalf("XRange failed: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 stream entries, got %d", len(entries))
	}

	var got models.Pick
	if err := json.Unmarshal([]byte(entries[0].Values["data"].(string)), &got); err != nil {
		t.Fatalf("stream entry is not a pick: %v", err)
	}
	if got.PickTeam != pick.PickTeam || got.Line != pick.Line {
		t.Errorf("unexpected published pick: %+v", got)
	}
}

func TestPublishBatch_Empty(t *testing.T) {
	pub := publisher.NewStreamPublisher(nil, nil, testutil.DiscardLogger())

	n, err := pub.PublishBatch(context.Background(), nil)
	if err != nil || n != 0 {
		t.Errorf("PublishBatch(nil) = %d, %v", n, err)
	}
}

func TestPublishBatch_ReleasesClaimsWhenPipelineFails(t *testing.T) {
	// nothing listens on port 1, so the pipeline fails on dial
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 200 * time.Millisecond,
		MaxRetries:  -1,
	})
	defer client.Close()

	dedup := &seenOnce{seen: map[string]bool{}}
	pub := publisher.NewStreamPublisher(client, dedup, testutil.DiscardLogger())

	pick := testutil.PickFixture()
	other := testutil.PickFixture(func(p *models.Pick) { p.Line = "-7" })

	n, err := pub.PublishBatch(context.Background(), []models.Pick{pick, other})
	if err == nil {
		t.Fatal("expected a pipeline error")
	}
	if n != 0 {
		t.Errorf("published %d picks, want 0", n)
	}
	if dedup.released != 2 || len(dedup.seen) != 0 {
		t.Errorf("released %d claims with %d still held, want 2 and 0", dedup.released, len(dedup.seen))
	}

	ok, _ := dedup.ShouldPublish(context.Background(), pick)
	if !ok {
		t.Error("expected the failed pick to be publishable on the next attempt")
	}
}
