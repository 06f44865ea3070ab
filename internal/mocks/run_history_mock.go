// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/guttosm/cargo-pack-service/internal/domain/model"
	"github.com/stretchr/testify/mock"
)

type MockRunHistory struct {
	mock.Mock
}

func (m *MockRunHistory) Record(ctx context.Context, run *model.RunRecord) error {
	args := m.Called(ctx, run)
	return args.Error(0)
}

func (m *MockRunHistory) Recent(ctx context.Context, opts model.RunQueryOptions) ([]*model.RunRecord, int64, error) {
	args := m.Called(ctx, opts)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]*model.RunRecord), args.Get(1).(int64), args.Error(2)
}

func (m *MockRunHistory) Summary(ctx context.Context, opts model.RunQueryOptions) ([]model.AlgorithmUsage, error) {
	args := m.Called(ctx, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.AlgorithmUsage), args.Error(1)
}
