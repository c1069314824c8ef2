package tests

import (
	"context"
	"errors"
	"testing"
	"time"

	"menu-storefront/agg-svc/internal/storage"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostgresStore_EnsureSchema(t *testing.T) {
	db, sqlMock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	sqlMock.ExpectExec("CREATE TABLE IF NOT EXISTS item_views").
		WillReturnResult(sqlmock.NewResult(0, 0))

	store := storage.NewPostgresStore(db)
	assert.NoError(t, store.EnsureSchema(context.Background()))
	assert.NoError(t, sqlMock.ExpectationsWereMet())
}

func TestPostgresStore_RecordView(t *testing.T) {
	event := viewEvent("big-mac")

	tests := []struct {
		name      string
		execErr   error
		expectErr bool
	}{
		{name: "success"},
		{name: "db_error", execErr: errors.New("connection reset"), expectErr: true},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			db, sqlMock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			exec := sqlMock.ExpectExec("INSERT INTO item_views").
				WithArgs(event.Slug, event.ItemID, event.Timestamp)
			if testCase.execErr != nil {
				exec.WillReturnError(testCase.execErr)
			} else {
				exec.WillReturnResult(sqlmock.NewResult(1, 1))
			}

			err = storage.NewPostgresStore(db).RecordView(context.Background(), event)
			if testCase.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, sqlMock.ExpectationsWereMet())
		})
	}
}

func TestPostgresStore_TopViewed(t *testing.T) {
	db, sqlMock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"slug", "views"}).
		AddRow("big-mac", 12).
		AddRow("fries", 7)
	sqlMock.ExpectQuery("SELECT slug, views").WithArgs(10).WillReturnRows(rows)

	counts, err := storage.NewPostgresStore(db).TopViewed(context.Background(), 10)
	require.NoError(t, err)
	assert.Equal(t, map[string]int64{"big-mac": 12, "fries": 7}, counts)
	assert.NoError(t, sqlMock.ExpectationsWereMet())
}

func TestPostgresStore_TopViewed_QueryError(t *testing.T) {
	db, sqlMock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	sqlMock.ExpectQuery("SELECT slug, views").WillReturnError(errors.New("relation does not exist"))

	counts, err := storage.NewPostgresStore(db).TopViewed(context.Background(), 10)
	assert.Error(t, err)
	assert.Nil(t, counts)
}

func TestPostgresStore_TopViewed_ScanError(t *testing.T) {
	db, sqlMock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"slug", "views"}).
		AddRow("big-mac", 12).
		AddRow("fries", "lots")
	sqlMock.ExpectQuery("SELECT slug, views").WithArgs(1000).WillReturnRows(rows)

	counts, err := storage.NewPostgresStore(db).TopViewed(context.Background(), 1000)
	assert.Error(t, err)
	assert.Nil(t, counts)
}

func TestRedisRanking_DailyKey(t *testing.T) {
	ranking := storage.NewRedisRanking(nil)
	day := time.Date(2026, 10, 17, 23, 30, 0, 0, time.FixedZone("EST", -5*3600))

	assert.Equal(t, "views:daily:2026-10-18", ranking.DailyKey(day))
}

func setupRanking(t *testing.T) (*miniredis.Miniredis, *storage.RedisRanking) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })
	return mr, storage.NewRedisRanking(rdb)
}

func TestRedisRanking_IncrementView(t *testing.T) {
	ctx := context.Background()
	mr, ranking := setupRanking(t)

	require.NoError(t, ranking.IncrementView(ctx, viewEvent("big-mac")))
	require.NoError(t, ranking.IncrementView(ctx, viewEvent("big-mac")))
	require.NoError(t, ranking.IncrementView(ctx, viewEvent("fries")))

	score, err := mr.ZScore(storage.PopularSetKey, "big-mac")
	require.NoError(t, err)
	assert.Equal(t, float64(2), score)

	score, err = mr.ZScore(storage.PopularSetKey, "fries")
	require.NoError(t, err)
	assert.Equal(t, float64(1), score)

	dailyKey := "views:daily:2026-10-17"
	assert.Equal(t, dailyKey, ranking.DailyKey(viewEvent("big-mac").Timestamp))
	score, err = mr.ZScore(dailyKey, "big-mac")
	require.NoError(t, err)
	assert.Equal(t, float64(2), score)
	assert.Equal(t, 7*24*time.Hour, mr.TTL(dailyKey))
	assert.Equal(t, time.Duration(0), mr.TTL(storage.PopularSetKey))
}

func TestRedisRanking_IncrementView_SplitsDays(t *testing.T) {
	ctx := context.Background()
	mr, ranking := setupRanking(t)

	nextDay := viewEvent("big-mac")
	nextDay.Timestamp = nextDay.Timestamp.Add(24 * time.Hour)

	require.NoError(t, ranking.IncrementView(ctx, viewEvent("big-mac")))
	require.NoError(t, ranking.IncrementView(ctx, nextDay))

	assert.True(t, mr.Exists("views:daily:2026-10-17"))
	assert.True(t, mr.Exists("views:daily:2026-10-18"))

	score, err := mr.ZScore(storage.PopularSetKey, "big-mac")
	require.NoError(t, err)
	assert.Equal(t, float64(2), score)
}

func TestRedisRanking_Seed(t *testing.T) {
	ctx := context.Background()
	mr, ranking := setupRanking(t)

	mr.ZAdd(storage.PopularSetKey, 1, "big-mac")
	require.NoError(t, ranking.Seed(ctx, map[string]int64{"big-mac": 12, "fries": 7}))

	score, err := mr.ZScore(storage.PopularSetKey, "big-mac")
	require.NoError(t, err)
	assert.Equal(t, float64(12), score)

	score, err = mr.ZScore(storage.PopularSetKey, "fries")
	require.NoError(t, err)
	assert.Equal(t, float64(7), score)
}

func TestRedisRanking_SeedEmpty(t *testing.T) {
	mr, ranking := setupRanking(t)

	require.NoError(t, ranking.Seed(context.Background(), nil))
	assert.False(t, mr.Exists(storage.PopularSetKey))
}
