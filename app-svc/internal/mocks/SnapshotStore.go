package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type SnapshotStore struct {
	mock.Mock
}

func (m *SnapshotStore) Load(ctx context.Context, key string, dst any) (bool, error) {
	args := m.Called(ctx, key, dst)
	return args.Bool(0), args.Error(1)
}

func (m *SnapshotStore) Save(ctx context.Context, key string, v any) error {
	args := m.Called(ctx, key, v)
	return args.Error(0)
}

func NewSnapshotStore(t interface {
	mock.TestingT
	Cleanup(func())
}) *SnapshotStore {
	m := &SnapshotStore{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
