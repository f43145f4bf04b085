package mocks

import (
	"context"

	"github.com/Ganga-777/Cloud-Kitchen/analytics-svc/internal/domain"

	"github.com/stretchr/testify/mock"
)

type StoreInterface struct {
	mock.Mock
}

func (m *StoreInterface) RatingTotals(ctx context.Context, targetType, targetID string) (int64, int64, error) {
	args := m.Called(ctx, targetType, targetID)
	return args.Get(0).(int64), args.Get(1).(int64), args.Error(2)
}

func (m *StoreInterface) TopScores(ctx context.Context, key string, limit int) ([]domain.DishScore, error) {
	args := m.Called(ctx, key, limit)
	var scores []domain.DishScore
	if v := args.Get(0); v != nil {
		scores = v.([]domain.DishScore)
	}
	return scores, args.Error(1)
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
