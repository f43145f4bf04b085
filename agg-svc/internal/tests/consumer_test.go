package tests

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Ganga-777/Cloud-Kitchen/agg-svc/internal/domain"
	"github.com/Ganga-777/Cloud-Kitchen/agg-svc/internal/mocks"
	"github.com/Ganga-777/Cloud-Kitchen/agg-svc/internal/service"

	"github.com/segmentio/kafka-go"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
)

func TestConsumer_Handle(t *testing.T) {
	ctx := context.Background()
	placedAt := time.Date(2024, 6, 1, 23, 30, 0, 0, time.UTC)
	items := []domain.EventItem{{DishID: "101", Quantity: 2}, {DishID: "104", Quantity: 1}}

	tests := []struct {
		name           string
		event          domain.Event
		setupMockStore func(*mocks.StoreInterface)
		wantErr        bool
	}{
		{
			name:  "review created",
			event: domain.Event{Type: domain.EventReviewCreated, ReviewID: "r1", TargetType: "dish", TargetID: "101", Rating: 4},
			setupMockStore: func(mockStore *mocks.StoreInterface) {
				mockStore.On("AddRating", ctx, "dish", "101", "r1", 4).Return(true, nil).Once()
			},
		},
		{
			name:  "review created twice",
			event: domain.Event{Type: domain.EventReviewCreated, ReviewID: "r1", TargetType: "dish", TargetID: "101", Rating: 4},
			setupMockStore: func(mockStore *mocks.StoreInterface) {
				mockStore.On("AddRating", ctx, "dish", "101", "r1", 4).Return(false, nil).Once()
			},
		},
		{
			name:  "review updated",
			event: domain.Event{Type: domain.EventReviewUpdated, ReviewID: "r2", TargetType: "kitchen", TargetID: "1", Rating: 5},
			setupMockStore: func(mockStore *mocks.StoreInterface) {
				mockStore.On("ChangeRating", ctx, "kitchen", "1", "r2", 5).Return(true, nil).Once()
			},
		},
		{
			name:  "review deleted",
			event: domain.Event{Type: domain.EventReviewDeleted, ReviewID: "r3", TargetType: "dish", TargetID: "101", Rating: 3},
			setupMockStore: func(mockStore *mocks.StoreInterface) {
				mockStore.On("RemoveRating", ctx, "dish", "101", "r3").Return(true, nil).Once()
			},
		},
		{
			name:  "review deleted before it was counted",
			event: domain.Event{Type: domain.EventReviewDeleted, ReviewID: "seed-4", TargetType: "kitchen", TargetID: "1", Rating: 4},
			setupMockStore: func(mockStore *mocks.StoreInterface) {
				mockStore.On("RemoveRating", ctx, "kitchen", "1", "seed-4").Return(false, nil).Once()
			},
		},
		{
			name:           "review event without id",
			event:          domain.Event{Type: domain.EventReviewDeleted, TargetType: "dish", TargetID: "101", Rating: 3},
			setupMockStore: func(mockStore *mocks.StoreInterface) {},
		},
		{
			name:  "order placed",
			event: domain.Event{Type: domain.EventOrderPlaced, KitchenID: "1", Items: items, Timestamp: placedAt},
			setupMockStore: func(mockStore *mocks.StoreInterface) {
				mockStore.On("RecordOrder", ctx, "1", placedAt, items).Return(nil).Once()
			},
		},
		{
			name:  "store error",
			event: domain.Event{Type: domain.EventReviewCreated, ReviewID: "r1", TargetType: "dish", TargetID: "101", Rating: 4},
			setupMockStore: func(mockStore *mocks.StoreInterface) {
				mockStore.On("AddRating", ctx, "dish", "101", "r1", 4).Return(false, errors.New("redis error")).Once()
			},
			wantErr: true,
		},
		{
			name:           "unknown type",
			event:          domain.Event{Type: "review_liked", TargetType: "dish", TargetID: "101"},
			setupMockStore: func(mockStore *mocks.StoreInterface) {},
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			mockStore := mocks.NewStoreInterface(t)
			testCase.setupMockStore(mockStore)
			logger, _ := test.NewNullLogger()

			consumer := service.NewConsumer(nil, mockStore, logger)
			err := consumer.Handle(ctx, testCase.event)

			if testCase.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

type fakeReader struct {
	messages []kafka.Message
	cancel   context.CancelFunc
}

func (r *fakeReader) ReadMessage(ctx context.Context) (kafka.Message, error) {
	if len(r.messages) == 0 {
		r.cancel()
		return kafka.Message{}, ctx.Err()
	}
	message := r.messages[0]
	r.messages = r.messages[1:]
	return message, nil
}

func TestConsumer_Start(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	reader := &fakeReader{
		cancel: cancel,
		messages: []kafka.Message{
			{Value: []byte(`{"type":"review_created","review_id":"r9","target_type":"dish","target_id":"101","rating":5}`)},
			{Value: []byte(`not json`)},
			{Value: []byte(`{"type":"review_liked","target_type":"dish","target_id":"101"}`)},
		},
	}

	mockStore := mocks.NewStoreInterface(t)
	mockStore.On("AddRating", ctx, "dish", "101", "r9", 5).Return(true, nil).Once()

	logger, hook := test.NewNullLogger()
	consumer := service.NewConsumer(reader, mockStore, logger)

	done := make(chan struct{})
	go func() {
		consumer.Start(ctx)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("consumer did not stop after cancellation")
	}

	var warned bool
	for _, entry := range hook.AllEntries() {
		if entry.Message == "Error unmarshaling message" {
			warned = true
		}
	}
	assert.True(t, warned)
}
