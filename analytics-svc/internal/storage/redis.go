package storage

import (
	"context"
	"fmt"
	"strconv"

	"github.com/Ganga-777/Cloud-Kitchen/analytics-svc/internal/domain"

	"github.com/redis/go-redis/v9"
)

type Reader struct {
	rdb *redis.Client
}

func NewReader(rdb *redis.Client) *Reader {
	return &Reader{rdb: rdb}
}

// RatingTotals returns the running sum and count for a review target.
// Missing targets report zeros.
func (r *Reader) RatingTotals(ctx context.Context, targetType, targetID string) (int64, int64, error) {
	fields, err := r.rdb.HGetAll(ctx, domain.RatingKey(targetType, targetID)).Result()
	if err != nil {
		return 0, 0, err
	}
	sum, err := parseField(fields, "sum")
	if err != nil {
		return 0, 0, err
	}
	count, err := parseField(fields, "count")
	if err != nil {
		return 0, 0, err
	}
	return sum, count, nil
}

// TopScores returns up to limit members of a leaderboard, highest score first.
func (r *Reader) TopScores(ctx context.Context, key string, limit int) ([]domain.DishScore, error) {
	result, err := r.rdb.ZRevRangeWithScores(ctx, key, 0, int64(limit-1)).Result()
	if err != nil {
		return nil, err
	}
	scores := make([]domain.DishScore, 0, len(result))
	for _, z := range result {
		member, ok := z.Member.(string)
		if !ok {
			continue
		}
		scores = append(scores, domain.DishScore{DishID: member, Score: z.Score})
	}
	return scores, nil
}

func parseField(fields map[string]string, name string) (int64, error) {
	raw, ok := fields[name]
	if !ok {
		return 0, nil
	}
	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", name, err)
	}
	return value, nil
}
