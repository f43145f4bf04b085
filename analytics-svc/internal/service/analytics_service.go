package service

import (
	"context"
	"errors"
	"math"
	"time"

	"github.com/Ganga-777/Cloud-Kitchen/analytics-svc/internal/domain"
)

const (
	DefaultTopLimit = 10
	MaxTopLimit     = 50
)

var (
	ErrInvalidPeriod     = errors.New("period must be today or all")
	ErrInvalidTargetType = errors.New("target type must be kitchen or dish")
)

type AnalyticsService struct {
	store StoreInterface
	now   func() time.Time
}

func NewAnalyticsService(store StoreInterface) *AnalyticsService {
	return &AnalyticsService{store: store, now: time.Now}
}

// SetClock replaces the clock used to pick today's leaderboard.
func (s *AnalyticsService) SetClock(now func() time.Time) {
	s.now = now
}

// Rating returns the average star rating of a kitchen or dish rounded to one
// decimal place. Targets without reviews average 0.
func (s *AnalyticsService) Rating(ctx context.Context, targetType, targetID string) (domain.Rating, error) {
	if targetType != "kitchen" && targetType != "dish" {
		return domain.Rating{}, ErrInvalidTargetType
	}
	sum, count, err := s.store.RatingTotals(ctx, targetType, targetID)
	if err != nil {
		return domain.Rating{}, err
	}

	rating := domain.Rating{TargetID: targetID, TargetType: targetType}
	if count <= 0 {
		return rating, nil
	}
	rating.Count = count
	rating.Average = math.Round(float64(sum)/float64(count)*10) / 10
	return rating, nil
}

func (s *AnalyticsService) TopDishes(ctx context.Context, kitchenID, period string, limit int) (domain.TopDishes, error) {
	if period == "" {
		period = domain.PeriodToday
	}

	var key string
	switch period {
	case domain.PeriodToday:
		key = domain.DailyKey(s.now().UTC(), kitchenID)
	case domain.PeriodAll:
		key = domain.AllTimeKey(kitchenID)
	default:
		return domain.TopDishes{}, ErrInvalidPeriod
	}

	if limit <= 0 {
		limit = DefaultTopLimit
	}
	if limit > MaxTopLimit {
		limit = MaxTopLimit
	}

	scores, err := s.store.TopScores(ctx, key, limit)
	if err != nil {
		return domain.TopDishes{}, err
	}
	if scores == nil {
		scores = []domain.DishScore{}
	}
	return domain.TopDishes{KitchenID: kitchenID, Period: period, Dishes: scores}, nil
}
