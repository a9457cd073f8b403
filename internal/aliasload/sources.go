package aliasload

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/lib/pq"
	"github.com/redis/go-redis/v9"

	"github.com/XavierBriggs/fortuna/services/pick-standardizer/pkg/models"
)

// maxRegistryBytes caps remote registry bodies
const maxRegistryBytes = 8 << 20

// FileSource reads a YAML or JSON alias registry from disk
type FileSource struct {
	Path string
}

// Name identifies the source in logs
func (s FileSource) Name() string { return "file:" + s.Path }

// Load reads and decodes the file
func (s FileSource) Load(_ context.Context) ([]models.AliasEntry, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to read alias file: %w", err)
	}
	return Decode(data)
}

// HTTPSource fetches an alias registry document from a URL
type HTTPSource struct {
	URL    string
	Client *http.Client
}

// Name identifies the source in logs
func (s HTTPSource) Name() string { return "http:" + s.URL }

// Load fetches and decodes the registry
func (s HTTPSource) Load(ctx context.Context) ([]models.AliasEntry, error) {
	client := s.Client
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json, application/yaml")

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch alias registry: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("alias registry returned status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxRegistryBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to read alias registry: %w", err)
	}
	return Decode(data)
}

// RedisSource reads hashes named aliases:{LEAGUE} mapping alias to canonical name
type RedisSource struct {
	Client redis.Cmdable
	Prefix string // defaults to "aliases:"
}

// Name identifies the source in logs
func (s RedisSource) Name() string { return "redis:" + s.prefix() + "*" }

func (s RedisSource) prefix() string {
	if s.Prefix == "" {
		return "aliases:"
	}
	return s.Prefix
}

// Load scans the alias hashes
func (s RedisSource) Load(ctx context.Context) ([]models.AliasEntry, error) {
	var (
		entries []models.AliasEntry
		cursor  uint64
	)

	for {
		keys, next, err := s.Client.Scan(ctx, cursor, s.prefix()+"*", 100).Result()
		if err != nil {
			return nil, fmt.Errorf("failed to scan alias keys: %w", err)
		}

		for _, key := range keys {
			fields, err := s.Client.HGetAll(ctx, key).Result()
			if err != nil {
				return nil, fmt.Errorf("failed to read %s: %w", key, err)
			}

			league := strings.ToUpper(strings.TrimPrefix(key, s.prefix()))
			for alias, canonical := range fields {
				entries = append(entries, models.AliasEntry{Alias: alias, Canonical: canonical, League: league})
			}
		}

		cursor = next
		if cursor == 0 {
			break
		}
	}

	return clean(entries), nil
}

// PostgresSource reads (alias, canonical, league) rows from a table
type PostgresSource struct {
	DB    *sql.DB
	Table string // defaults to team_aliases
}

// Name identifies the source in logs
func (s PostgresSource) Name() string { return "postgres:" + s.table() }

func (s PostgresSource) table() string {
	if s.Table == "" {
		return "team_aliases"
	}
	return s.Table
}

// Load queries every alias row
func (s PostgresSource) Load(ctx context.Context) ([]models.AliasEntry, error) {
	query := fmt.Sprintf(`
		SELECT alias, canonical, COALESCE(league, '')
		FROM %s
		ORDER BY league, canonical, alias
	`, pq.QuoteIdentifier(s.table()))

	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query aliases: %w", err)
	}
	defer rows.Close()

	var entries []models.AliasEntry
	for rows.Next() {
		var e models.AliasEntry
		if err := rows.Scan(&e.Alias, &e.Canonical, &e.League); err != nil {
			return nil, fmt.Errorf("failed to scan alias row: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating alias rows: %w", err)
	}

	return clean(entries), nil
}

// OpenPostgres opens and pings a Postgres connection pool
func OpenPostgres(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(5)
	db.SetMaxIdleConns(2)
	db.SetConnMaxLifetime(5 * time.Minute)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := db.PingContext(pingCtx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}
