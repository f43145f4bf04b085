package storage_test

import (
	"context"
	"testing"
	"time"

	"github.com/Ganga-777/Cloud-Kitchen/agg-svc/internal/domain"
	"github.com/Ganga-777/Cloud-Kitchen/agg-svc/internal/storage"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStore(t *testing.T) (*storage.Store, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return storage.NewStore(client), mr
}

func TestStore_RatingLifecycle(t *testing.T) {
	ctx := context.Background()
	store, mr := newStore(t)

	applied, err := store.AddRating(ctx, "dish", "101", "r1", 5)
	require.NoError(t, err)
	assert.True(t, applied)
	applied, err = store.AddRating(ctx, "dish", "101", "r2", 3)
	require.NoError(t, err)
	assert.True(t, applied)

	applied, err = store.ChangeRating(ctx, "dish", "101", "r1", 4)
	require.NoError(t, err)
	assert.True(t, applied)

	applied, err = store.RemoveRating(ctx, "dish", "101", "r2")
	require.NoError(t, err)
	assert.True(t, applied)

	assert.Equal(t, "4", mr.HGet("rating:dish:101", "sum"))
	assert.Equal(t, "1", mr.HGet("rating:dish:101", "count"))
	assert.Equal(t, "4", mr.HGet("rating:dish:101:reviews", "r1"))
	assert.Empty(t, mr.HGet("rating:dish:101:reviews", "r2"))
}

func TestStore_AddRatingIsIdempotent(t *testing.T) {
	ctx := context.Background()
	store, mr := newStore(t)

	_, err := store.AddRating(ctx, "kitchen", "1", "r1", 5)
	require.NoError(t, err)
	applied, err := store.AddRating(ctx, "kitchen", "1", "r1", 5)
	require.NoError(t, err)

	assert.False(t, applied)
	assert.Equal(t, "5", mr.HGet("rating:kitchen:1", "sum"))
	assert.Equal(t, "1", mr.HGet("rating:kitchen:1", "count"))
}

func TestStore_UnknownReviewLeavesTotals(t *testing.T) {
	ctx := context.Background()
	store, mr := newStore(t)
	_, err := store.AddRating(ctx, "kitchen", "1", "r1", 5)
	require.NoError(t, err)

	removed, err := store.RemoveRating(ctx, "kitchen", "1", "seed-2")
	require.NoError(t, err)
	changed, err := store.ChangeRating(ctx, "kitchen", "1", "seed-3", 1)
	require.NoError(t, err)

	assert.False(t, removed)
	assert.False(t, changed)
	assert.Equal(t, "5", mr.HGet("rating:kitchen:1", "sum"))
	assert.Equal(t, "1", mr.HGet("rating:kitchen:1", "count"))
}

func TestStore_DeleteBeforeCreateOnEmptyTarget(t *testing.T) {
	ctx := context.Background()
	store, mr := newStore(t)

	removed, err := store.RemoveRating(ctx, "kitchen", "2", "seed-4")
	require.NoError(t, err)

	assert.False(t, removed)
	assert.False(t, mr.Exists("rating:kitchen:2"))
}

func TestStore_RecordOrder(t *testing.T) {
	ctx := context.Background()
	store, mr := newStore(t)
	day := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	items := []domain.EventItem{{DishID: "101", Quantity: 2}, {DishID: "104", Quantity: 1}}
	require.NoError(t, store.RecordOrder(ctx, "1", day, items))
	require.NoError(t, store.RecordOrder(ctx, "1", day, []domain.EventItem{{DishID: "104", Quantity: 3}}))

	score, err := mr.ZScore("analytics:daily:2024-06-01:1", "104")
	require.NoError(t, err)
	assert.Equal(t, 4.0, score)

	score, err = mr.ZScore("analytics:alltime:1", "101")
	require.NoError(t, err)
	assert.Equal(t, 2.0, score)

	assert.Equal(t, storage.DailyTTL, mr.TTL("analytics:daily:2024-06-01:1"))
	assert.Zero(t, mr.TTL("analytics:alltime:1"))
}
