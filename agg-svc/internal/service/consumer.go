package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/Ganga-777/Cloud-Kitchen/agg-svc/internal/domain"

	"github.com/sirupsen/logrus"
)

type Consumer struct {
	Reader MessageReader
	Store  StoreInterface
	Logger logrus.FieldLogger
}

func NewConsumer(reader MessageReader, store StoreInterface, logger logrus.FieldLogger) *Consumer {
	return &Consumer{
		Reader: reader,
		Store:  store,
		Logger: logger,
	}
}

// Start reads events until ctx is done. Bad messages are logged and skipped.
func (c *Consumer) Start(ctx context.Context) {
	c.Logger.Info("Starting Aggregation Service consumer...")
	for {
		message, err := c.Reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, context.Canceled) {
				c.Logger.Info("consumer stopped")
				return
			}
			c.Logger.WithError(err).Warn("Error reading message")
			continue
		}

		var event domain.Event
		if err := json.Unmarshal(message.Value, &event); err != nil {
			c.Logger.WithError(err).WithField("offset", message.Offset).Warn("Error unmarshaling message")
			continue
		}

		if err := c.Handle(ctx, event); err != nil {
			c.Logger.WithError(err).WithField("type", event.Type).Error("Error processing event")
		}
	}
}

func (c *Consumer) Handle(ctx context.Context, event domain.Event) error {
	switch event.Type {
	case domain.EventReviewCreated, domain.EventReviewUpdated, domain.EventReviewDeleted:
		return c.handleReview(ctx, event)
	case domain.EventOrderPlaced:
		if len(event.Items) == 0 {
			return nil
		}
		day := event.Timestamp
		if day.IsZero() {
			day = time.Now()
		}
		return c.Store.RecordOrder(ctx, event.KitchenID, day.UTC(), event.Items)
	default:
		c.Logger.WithField("type", event.Type).Debug("ignoring event")
		return nil
	}
}

func (c *Consumer) handleReview(ctx context.Context, event domain.Event) error {
	log := c.Logger.WithFields(logrus.Fields{
		"type":      event.Type,
		"review_id": event.ReviewID,
		"target":    domain.RatingKey(event.TargetType, event.TargetID),
	})
	if event.ReviewID == "" {
		log.Warn("Warning: review event without review id, skipping")
		return nil
	}

	var (
		applied bool
		err     error
	)
	switch event.Type {
	case domain.EventReviewCreated:
		applied, err = c.Store.AddRating(ctx, event.TargetType, event.TargetID, event.ReviewID, event.Rating)
	case domain.EventReviewUpdated:
		applied, err = c.Store.ChangeRating(ctx, event.TargetType, event.TargetID, event.ReviewID, event.Rating)
	case domain.EventReviewDeleted:
		applied, err = c.Store.RemoveRating(ctx, event.TargetType, event.TargetID, event.ReviewID)
	}
	if err != nil {
		return err
	}
	if !applied {
		log.Debug("rating totals unchanged")
	}
	return nil
}
