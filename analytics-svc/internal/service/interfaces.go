package service

import (
	"context"

	"github.com/Ganga-777/Cloud-Kitchen/analytics-svc/internal/domain"
	"github.com/Ganga-777/Cloud-Kitchen/analytics-svc/internal/storage"
)

type StoreInterface interface {
	RatingTotals(ctx context.Context, targetType, targetID string) (sum int64, count int64, err error)
	TopScores(ctx context.Context, key string, limit int) ([]domain.DishScore, error)
}

type AnalyticsInterface interface {
	Rating(ctx context.Context, targetType, targetID string) (domain.Rating, error)
	TopDishes(ctx context.Context, kitchenID, period string, limit int) (domain.TopDishes, error)
}

var (
	_ StoreInterface     = (*storage.Reader)(nil)
	_ AnalyticsInterface = (*AnalyticsService)(nil)
)
