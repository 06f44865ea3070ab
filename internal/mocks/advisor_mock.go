// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/guttosm/cargo-pack-service/internal/advisor"
	"github.com/guttosm/cargo-pack-service/internal/domain/model"
	"github.com/stretchr/testify/mock"
)

type MockAdvisor struct {
	mock.Mock
}

func (m *MockAdvisor) Recommend(ctx context.Context, items []model.Item, container model.Container) (advisor.Recommendation, error) {
	args := m.Called(ctx, items, container)
	return args.Get(0).(advisor.Recommendation), args.Error(1)
}
