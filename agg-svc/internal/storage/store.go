package storage

import (
	"context"
	"time"

	"github.com/Ganga-777/Cloud-Kitchen/agg-svc/internal/domain"

	"github.com/redis/go-redis/v9"
)

const DailyTTL = 7 * 24 * time.Hour

// Each rating script keeps KEYS[1] (sum and count) in step with KEYS[2], the
// review id -> rating hash, so replays and unknown reviews leave totals alone.
var (
	addRatingScript = redis.NewScript(`
if redis.call('HSETNX', KEYS[2], ARGV[1], ARGV[2]) == 0 then
	return 0
end
redis.call('HINCRBY', KEYS[1], 'sum', ARGV[2])
redis.call('HINCRBY', KEYS[1], 'count', 1)
return 1
`)

	changeRatingScript = redis.NewScript(`
local previous = redis.call('HGET', KEYS[2], ARGV[1])
if not previous then
	return 0
end
redis.call('HSET', KEYS[2], ARGV[1], ARGV[2])
redis.call('HINCRBY', KEYS[1], 'sum', tostring(tonumber(ARGV[2]) - tonumber(previous)))
return 1
`)

	removeRatingScript = redis.NewScript(`
local previous = redis.call('HGET', KEYS[2], ARGV[1])
if not previous then
	return 0
end
redis.call('HDEL', KEYS[2], ARGV[1])
redis.call('HINCRBY', KEYS[1], 'sum', tostring(-tonumber(previous)))
redis.call('HINCRBY', KEYS[1], 'count', -1)
return 1
`)
)

type Store struct {
	rdb *redis.Client
}

func NewStore(rdb *redis.Client) *Store {
	return &Store{rdb: rdb}
}

// AddRating counts a review once. It reports false when the review was
// already counted.
func (s *Store) AddRating(ctx context.Context, targetType, targetID, reviewID string, rating int) (bool, error) {
	return s.runRating(ctx, addRatingScript, targetType, targetID, reviewID, rating)
}

// ChangeRating moves the sum by the difference from the recorded rating. It
// reports false for reviews that were never counted.
func (s *Store) ChangeRating(ctx context.Context, targetType, targetID, reviewID string, rating int) (bool, error) {
	return s.runRating(ctx, changeRatingScript, targetType, targetID, reviewID, rating)
}

// RemoveRating subtracts a counted review. It reports false for reviews that
// were never counted.
func (s *Store) RemoveRating(ctx context.Context, targetType, targetID, reviewID string) (bool, error) {
	return s.runRating(ctx, removeRatingScript, targetType, targetID, reviewID)
}

func (s *Store) runRating(ctx context.Context, script *redis.Script, targetType, targetID, reviewID string, args ...interface{}) (bool, error) {
	keys := []string{domain.RatingKey(targetType, targetID), domain.RatingMembersKey(targetType, targetID)}
	applied, err := script.Run(ctx, s.rdb, keys, append([]interface{}{reviewID}, args...)...).Int()
	if err != nil {
		return false, err
	}
	return applied == 1, nil
}

// RecordOrder adds ordered quantities to the kitchen's daily and all-time
// dish leaderboards.
func (s *Store) RecordOrder(ctx context.Context, kitchenID string, day time.Time, items []domain.EventItem) error {
	dailyKey := domain.DailyKey(day, kitchenID)
	allTimeKey := domain.AllTimeKey(kitchenID)

	_, err := s.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		for _, item := range items {
			pipe.ZIncrBy(ctx, dailyKey, float64(item.Quantity), item.DishID)
			pipe.ZIncrBy(ctx, allTimeKey, float64(item.Quantity), item.DishID)
		}
		pipe.Expire(ctx, dailyKey, DailyTTL)
		return nil
	})
	return err
}
