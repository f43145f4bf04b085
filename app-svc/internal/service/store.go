package service

import (
	"context"
	"sync"
	"time"

	"github.com/Ganga-777/Cloud-Kitchen/app-svc/internal/domain"

	"github.com/sirupsen/logrus"
)

// store holds what every state holder shares: the lock, the snapshot
// collaborator, an optional event publisher, a logger and a clock.
type store struct {
	mu        sync.Mutex
	snapshots SnapshotStore
	publisher EventPublisher
	logger    logrus.FieldLogger
	now       func() time.Time
}

func (s *store) init(snapshots SnapshotStore, publisher EventPublisher, logger logrus.FieldLogger) {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	s.snapshots = snapshots
	s.publisher = publisher
	s.logger = logger
	s.now = time.Now
}

// SetClock replaces the time source used for order and review timestamps.
func (s *store) SetClock(now func() time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.now = now
}

// save writes the record while the caller holds the lock. A failed save is
// logged and the in-memory state stays as it is.
func (s *store) save(ctx context.Context, key string, record any) {
	if s.snapshots == nil {
		return
	}
	if err := s.snapshots.Save(ctx, key, record); err != nil {
		s.logger.WithError(err).WithField("key", key).Warn("Warning: failed to persist snapshot")
	}
}

func (s *store) load(ctx context.Context, key string, dst any) (bool, error) {
	if s.snapshots == nil {
		return false, nil
	}
	return s.snapshots.Load(ctx, key, dst)
}

// publish is called after the lock is released.
func (s *store) publish(ctx context.Context, event domain.Event) {
	if s.publisher == nil {
		s.logger.WithField("type", event.Type).Warn("Warning: no event publisher configured, skipping event")
		return
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.logger.WithError(err).WithField("type", event.Type).Warn("Warning: failed to publish event")
	}
}
