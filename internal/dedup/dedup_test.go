package dedup_test

import (
	"context"
	"os"
	"testing"

	"github.com/redis/go-redis/v9"

	"github.com/XavierBriggs/fortuna/services/pick-standardizer/internal/dedup"
	"github.com/XavierBriggs/fortuna/services/pick-standardizer/internal/testutil"
	"github.com/XavierBriggs/fortuna/services/pick-standardizer/pkg/models"
)

func TestKey_StableAndDistinct(t *testing.T) {
	a := testutil.PickFixture()
	b := testutil.PickFixture()
	if dedup.Key(a) != dedup.Key(b) {
		t.Error("identical picks should share a dedup key")
	}

	c := testutil.PickFixture(func(p *models.Pick) { p.Line = "-4" })
	if dedup.Key(a) == dedup.Key(c) {
		t.Error("different lines should not share a dedup key")
	}
}

func TestShouldPublish_Redis(t *testing.T) {
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
	d := dedup.NewDeduplicator(client, 1)
	pick := testutil.PickFixture(func(p *models.Pick) { p.PickTeam = "Dedup Test Team" })
	defer d.Release(ctx, pick)

	first, err := d.ShouldPublish(ctx, pick)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := d.ShouldPublish(ctx, pick)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !first || second {
		t.Errorf("ShouldPublish = %v then %v, want true then false", first, second)
	}

	if err := d.Release(ctx, pick); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	again, err := d.ShouldPublish(ctx, pick)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !again {
		t.Error("expected a released pick to be publishable again")
	}
}
