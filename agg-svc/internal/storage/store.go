package storage

import (
	"context"
	"database/sql"
	"time"

	"menu-storefront/agg-svc/internal/domain"

	"github.com/redis/go-redis/v9"
)

const (
	PopularSetKey = "popular:items"
	dailyKeyTTL   = 7 * 24 * time.Hour
)

type PostgresStore struct {
	DB *sql.DB
}

func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{DB: db}
}

func (s *PostgresStore) EnsureSchema(ctx context.Context) error {
	_, err := s.DB.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS item_views (
			slug           TEXT PRIMARY KEY,
			item_id        INTEGER NOT NULL,
			views          BIGINT NOT NULL DEFAULT 0,
			last_viewed_at TIMESTAMPTZ NOT NULL
		)
	`)
	return err
}

func (s *PostgresStore) RecordView(ctx context.Context, event domain.ViewEvent) error {
	_, err := s.DB.ExecContext(ctx, `
		INSERT INTO item_views (slug, item_id, views, last_viewed_at)
		VALUES ($1, $2, 1, $3)
		ON CONFLICT (slug) DO UPDATE
		SET views = item_views.views + 1,
			item_id = EXCLUDED.item_id,
			last_viewed_at = GREATEST(item_views.last_viewed_at, EXCLUDED.last_viewed_at)
	`, event.Slug, event.ItemID, event.Timestamp)
	return err
}

func (s *PostgresStore) TopViewed(ctx context.Context, limit int) (map[string]int64, error) {
	rows, err := s.DB.QueryContext(ctx, `
		SELECT slug, views
		FROM item_views
		ORDER BY views DESC, slug
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[string]int64)
	for rows.Next() {
		var slug string
		var views int64
		if err := rows.Scan(&slug, &views); err != nil {
			return nil, err
		}
		out[slug] = views
	}
	return out, rows.Err()
}

type RedisRanking struct {
	Client *redis.Client
}

func NewRedisRanking(client *redis.Client) *RedisRanking {
	return &RedisRanking{Client: client}
}

func (r *RedisRanking) DailyKey(day time.Time) string {
	return "views:daily:" + day.UTC().Format("2006-01-02")
}

func (r *RedisRanking) IncrementView(ctx context.Context, event domain.ViewEvent) error {
	dailyKey := r.DailyKey(event.Timestamp)

	pipe := r.Client.TxPipeline()
	pipe.ZIncrBy(ctx, PopularSetKey, 1, event.Slug)
	pipe.ZIncrBy(ctx, dailyKey, 1, event.Slug)
	pipe.Expire(ctx, dailyKey, dailyKeyTTL)
	_, err := pipe.Exec(ctx)
	return err
}

// Seed sets each member's score to its persisted view count.
func (r *RedisRanking) Seed(ctx context.Context, counts map[string]int64) error {
	if len(counts) == 0 {
		return nil
	}
	members := make([]redis.Z, 0, len(counts))
	for slug, views := range counts {
		members = append(members, redis.Z{Score: float64(views), Member: slug})
	}
	return r.Client.ZAdd(ctx, PopularSetKey, members...).Err()
}
