package mocks

import (
	"context"

	"obradiary/internal/model"

	"github.com/stretchr/testify/mock"
)

type MockNotificationService struct {
	mock.Mock
}

func (m *MockNotificationService) ListByObra(ctx context.Context, obraID string) ([]model.Notification, error) {
	args := m.Called(ctx, obraID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Notification), args.Error(1)
}

func (m *MockNotificationService) MarkRead(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockDashboardService struct {
	mock.Mock
}

func (m *MockDashboardService) Stats(ctx context.Context, obraID string) (*model.DashboardStats, error) {
	args := m.Called(ctx, obraID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.DashboardStats), args.Error(1)
}

type MockSeedService struct {
	mock.Mock
}

func (m *MockSeedService) Initialize(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
