package service

import (
	"context"
	"time"

	"github.com/Ganga-777/Cloud-Kitchen/agg-svc/internal/domain"
	"github.com/Ganga-777/Cloud-Kitchen/agg-svc/internal/storage"

	"github.com/segmentio/kafka-go"
)

type StoreInterface interface {
	AddRating(ctx context.Context, targetType, targetID, reviewID string, rating int) (bool, error)
	ChangeRating(ctx context.Context, targetType, targetID, reviewID string, rating int) (bool, error)
	RemoveRating(ctx context.Context, targetType, targetID, reviewID string) (bool, error)
	RecordOrder(ctx context.Context, kitchenID string, day time.Time, items []domain.EventItem) error
}

type MessageReader interface {
	ReadMessage(ctx context.Context) (kafka.Message, error)
}

type ConsumerInterface interface {
	Start(ctx context.Context)
	Handle(ctx context.Context, event domain.Event) error
}

var (
	_ StoreInterface    = (*storage.Store)(nil)
	_ MessageReader     = (*kafka.Reader)(nil)
	_ ConsumerInterface = (*Consumer)(nil)
)
