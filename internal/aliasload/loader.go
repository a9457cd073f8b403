package aliasload

import (
	"context"
	"log/slog"
	"time"

	"github.com/XavierBriggs/fortuna/services/pick-standardizer/pkg/aliases"
	"github.com/XavierBriggs/fortuna/services/pick-standardizer/pkg/contracts"
)

// sourceTimeout bounds each source's Load
const sourceTimeout = 15 * time.Second

// LoadAsync merges every source into table in the background, in order. The
// returned channel is closed once all sources have been tried. Parsing may
// run concurrently; it sees built-in coverage until each merge lands.
func LoadAsync(ctx context.Context, table *aliases.Table, sources []contracts.AliasSource, logger *slog.Logger) <-chan struct{} {
	if logger == nil {
		logger = slog.Default()
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		Load(ctx, table, sources, logger)
	}()
	return done
}

// Load merges every source into table and returns how many keys were added.
// A failing source is logged and skipped.
func Load(ctx context.Context, table *aliases.Table, sources []contracts.AliasSource, logger *slog.Logger) int {
	if logger == nil {
		logger = slog.Default()
	}

	total := 0
	for _, src := range sources {
		if ctx.Err() != nil {
			return total
		}

		loadCtx, cancel := context.WithTimeout(ctx, sourceTimeout)
		entries, err := src.Load(loadCtx)
		cancel()

		if err != nil {
			logger.Warn("alias source failed, continuing with built-in aliases", "source", src.Name(), "error", err)
			continue
		}

		added := table.Merge(entries)
		total += added
		logger.Info("alias source merged", "source", src.Name(), "entries", len(entries), "added", added)
	}
	return total
}
