package mocks

import (
	"context"
	"time"

	"github.com/Ganga-777/Cloud-Kitchen/agg-svc/internal/domain"

	"github.com/stretchr/testify/mock"
)

type StoreInterface struct {
	mock.Mock
}

func (m *StoreInterface) AddRating(ctx context.Context, targetType, targetID, reviewID string, rating int) (bool, error) {
	args := m.Called(ctx, targetType, targetID, reviewID, rating)
	return args.Bool(0), args.Error(1)
}

func (m *StoreInterface) ChangeRating(ctx context.Context, targetType, targetID, reviewID string, rating int) (bool, error) {
	args := m.Called(ctx, targetType, targetID, reviewID, rating)
	return args.Bool(0), args.Error(1)
}

func (m *StoreInterface) RemoveRating(ctx context.Context, targetType, targetID, reviewID string) (bool, error) {
	args := m.Called(ctx, targetType, targetID, reviewID)
	return args.Bool(0), args.Error(1)
}

func (m *StoreInterface) RecordOrder(ctx context.Context, kitchenID string, day time.Time, items []domain.EventItem) error {
	args := m.Called(ctx, kitchenID, day, items)
	return args.Error(0)
}

func NewStoreInterface(t interface {
	mock.TestingT
	Cleanup(func())
}) *StoreInterface {
	m := &StoreInterface{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
