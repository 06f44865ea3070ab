// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/guttosm/cargo-pack-service/internal/domain/model"
	"github.com/stretchr/testify/mock"
)

type MockRunsRepositoryInterface struct {
	mock.Mock
}

func (m *MockRunsRepositoryInterface) Create(ctx context.Context, run *model.RunRecord) error {
	args := m.Called(ctx, run)
	return args.Error(0)
}

func (m *MockRunsRepositoryInterface) CreateMany(ctx context.Context, runs []*model.RunRecord) error {
	args := m.Called(ctx, runs)
	return args.Error(0)
}

func (m *MockRunsRepositoryInterface) Query(ctx context.Context, opts model.RunQueryOptions) ([]*model.RunRecord, error) {
	args := m.Called(ctx, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.RunRecord), args.Error(1)
}

func (m *MockRunsRepositoryInterface) Count(ctx context.Context, opts model.RunQueryOptions) (int64, error) {
	args := m.Called(ctx, opts)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRunsRepositoryInterface) Summary(ctx context.Context, opts model.RunQueryOptions) ([]model.AlgorithmUsage, error) {
	args := m.Called(ctx, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.AlgorithmUsage), args.Error(1)
}
