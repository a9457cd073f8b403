package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"

	"github.com/XavierBriggs/fortuna/services/pick-standardizer/internal/aliasload"
	"github.com/XavierBriggs/fortuna/services/pick-standardizer/internal/config"
	"github.com/XavierBriggs/fortuna/services/pick-standardizer/internal/dedup"
	"github.com/XavierBriggs/fortuna/services/pick-standardizer/internal/handlers"
	"github.com/XavierBriggs/fortuna/services/pick-standardizer/internal/hub"
	"github.com/XavierBriggs/fortuna/services/pick-standardizer/internal/logging"
	"github.com/XavierBriggs/fortuna/services/pick-standardizer/internal/publisher"
	"github.com/XavierBriggs/fortuna/services/pick-standardizer/internal/registry"
	"github.com/XavierBriggs/fortuna/services/pick-standardizer/pkg/contracts"
	"github.com/XavierBriggs/fortuna/services/pick-standardizer/pkg/standardize"
)

func main() {
	fmt.Println("=== Fortuna Pick Standardizer v0 ===")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("❌ Failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger := logging.SetupLogger(cfg.Logging, "pick-standardizer")

	// Risk and win go out as JSON numbers
	decimal.MarshalJSONWithoutQuotes = true

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Built-in leagues
	leagues := registry.Default()
	table := leagues.BuildAliasTable()
	fmt.Printf("✓ Registered %d leagues (%d built-in aliases)\n", leagues.Count(), table.Len())

	// Redis is needed for publishing and the Redis alias source
	var redisClient *redis.Client
	if cfg.Publish.Enabled || cfg.Aliases.RedisEnabled {
		redisClient, err = connectRedis(ctx, cfg.Redis)
		if err != nil {
			if cfg.Publish.Enabled {
				fmt.Printf("❌ Failed to connect to Redis: %v\n", err)
				os.Exit(1)
			}
			fmt.Printf("⚠️  Redis unavailable, skipping Redis aliases: %v\n", err)
		} else {
			fmt.Println("✓ Connected to Redis")
			defer redisClient.Close()
		}
	}

	// Alias table extensions load in the background; parsing starts with the built-ins
	sources := aliasSources(ctx, cfg.Aliases, redisClient)
	aliasesLoaded := aliasload.LoadAsync(ctx, table, sources, logger)
	fmt.Printf("✓ Loading %d alias sources in background\n", len(sources))

	engineCfg := standardize.DefaultConfig()
	engineCfg.UnitMultiplier = cfg.UnitMultiplier()
	engineCfg.DefaultSport = cfg.Engine.DefaultSport
	engineCfg.Logger = logger
	engine := standardize.NewEngine(table, leagues, engineCfg)
	fmt.Printf("✓ Engine ready (unit=%s, default sport=%s)\n", engineCfg.UnitMultiplier, engineCfg.DefaultSport)

	// Publishing
	var pub handlers.Publisher
	if cfg.Publish.Enabled && redisClient != nil {
		deduplicator := dedup.NewDeduplicator(redisClient, cfg.Publish.DedupTTLMinutes)
		pub = publisher.NewStreamPublisher(redisClient, deduplicator, logger)
		fmt.Printf("✓ Publishing to picks.standardized.* (dedup TTL %d minutes)\n", cfg.Publish.DedupTTLMinutes)
	}

	// Live feed
	feed := hub.NewHub(logger)
	go feed.Run(ctx)

	handler := handlers.NewHandler(engine, pub, feed, logger)
	wsHandler := handlers.NewWSHandler(ctx, feed, cfg.Server.CORSOrigins, logger)

	srv := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      handlers.NewRouter(handler, wsHandler, cfg.Server.CORSOrigins),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 35 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	serverErrors := make(chan error, 1)
	go func() {
		fmt.Printf("✓ Pick Standardizer listening on %s\n", cfg.Server.Addr)
		fmt.Println("  Endpoints:")
		fmt.Println("    GET  /health")
		fmt.Println("    POST /api/v1/standardize")
		fmt.Println("    POST /api/v1/detect")
		fmt.Println("    GET  /api/v1/teams/resolve")
		fmt.Println("    GET  /ws")
		fmt.Println("    GET  /metrics")

		serverErrors <- srv.ListenAndServe()
	}()

	go func() {
		<-aliasesLoaded
		fmt.Printf("✓ Alias table ready (%d aliases)\n", table.Len())
	}()

	// Wait for interrupt signal
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		fmt.Printf("❌ Server error: %v\n", err)
		os.Exit(1)

	case sig := <-shutdown:
		fmt.Printf("\n⚠️  Received signal: %v\n", sig)
		cancel()

		// Give outstanding requests a deadline for completion
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			fmt.Printf("⚠️  Graceful shutdown failed: %v\n", err)
			if err := srv.Close(); err != nil {
				fmt.Printf("❌ Could not stop server: %v\n", err)
			}
		}
	}

	fmt.Println("✓ Shutdown complete")
}

// connectRedis parses the URL and pings the server
func connectRedis(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}
	if cfg.Password != "" {
		opts.Password = cfg.Password
	}

	client := redis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to ping Redis: %w", err)
	}
	return client, nil
}

// aliasSources builds the configured alias table extensions, file first
func aliasSources(ctx context.Context, cfg config.AliasConfig, redisClient *redis.Client) []contracts.AliasSource {
	var sources []contracts.AliasSource

	if cfg.File != "" {
		sources = append(sources, aliasload.FileSource{Path: cfg.File})
	}
	if cfg.URL != "" {
		sources = append(sources, aliasload.HTTPSource{URL: cfg.URL})
	}
	if cfg.RedisEnabled && redisClient != nil {
		sources = append(sources, aliasload.RedisSource{Client: redisClient})
	}
	if cfg.DSN != "" {
		db, err := aliasload.OpenPostgres(ctx, cfg.DSN)
		if err != nil {
			fmt.Printf("⚠️  Alias database unavailable, skipping: %v\n", err)
		} else {
			fmt.Println("✓ Connected to alias database")
			sources = append(sources, aliasload.PostgresSource{DB: db, Table: cfg.Table})
		}
	}

	return sources
}
