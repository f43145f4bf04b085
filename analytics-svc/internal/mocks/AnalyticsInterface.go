package mocks

import (
	"context"

	"github.com/Ganga-777/Cloud-Kitchen/analytics-svc/internal/domain"

	"github.com/stretchr/testify/mock"
)

type AnalyticsInterface struct {
	mock.Mock
}

func (m *AnalyticsInterface) Rating(ctx context.Context, targetType, targetID string) (domain.Rating, error) {
	args := m.Called(ctx, targetType, targetID)
	return args.Get(0).(domain.Rating), args.Error(1)
}

func (m *AnalyticsInterface) TopDishes(ctx context.Context, kitchenID, period string, limit int) (domain.TopDishes, error) {
	args := m.Called(ctx, kitchenID, period, limit)
	return args.Get(0).(domain.TopDishes), args.Error(1)
}

func NewAnalyticsInterface(t interface {
	mock.TestingT
	Cleanup(func())
}) *AnalyticsInterface {
	m := &AnalyticsInterface{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
