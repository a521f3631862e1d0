package mocks

import (
	"context"

	"obradiary/internal/model"

	"github.com/stretchr/testify/mock"
)

type MockServiceMeasurementRepository struct {
	mock.Mock
}

func (m *MockServiceMeasurementRepository) Create(ctx context.Context, s *model.ServiceMeasurement) (*model.ServiceMeasurement, error) {
	args := m.Called(ctx, s)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ServiceMeasurement), args.Error(1)
}

func (m *MockServiceMeasurementRepository) ListByObra(ctx context.Context, obraID string, limit int) ([]model.ServiceMeasurement, error) {
	args := m.Called(ctx, obraID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ServiceMeasurement), args.Error(1)
}

func (m *MockServiceMeasurementRepository) CountByObra(ctx context.Context, obraID string) (int, error) {
	args := m.Called(ctx, obraID)
	return args.Int(0), args.Error(1)
}

func (m *MockServiceMeasurementRepository) DeleteAll(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
