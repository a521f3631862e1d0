package mocks

import (
	"context"

	"obradiary/internal/model"

	"github.com/stretchr/testify/mock"
)

type MockMaterialRequestRepository struct {
	mock.Mock
}

func (m *MockMaterialRequestRepository) Create(ctx context.Context, r *model.MaterialRequest) (*model.MaterialRequest, error) {
	args := m.Called(ctx, r)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.MaterialRequest), args.Error(1)
}

func (m *MockMaterialRequestRepository) ListByObra(ctx context.Context, obraID string, limit int) ([]model.MaterialRequest, error) {
	args := m.Called(ctx, obraID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.MaterialRequest), args.Error(1)
}

func (m *MockMaterialRequestRepository) UpdateStatus(ctx context.Context, id, status string) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *MockMaterialRequestRepository) CountByObra(ctx context.Context, obraID string) (int, error) {
	args := m.Called(ctx, obraID)
	return args.Int(0), args.Error(1)
}

func (m *MockMaterialRequestRepository) CountByObraAndStatus(ctx context.Context, obraID, status string) (int, error) {
	args := m.Called(ctx, obraID, status)
	return args.Int(0), args.Error(1)
}

func (m *MockMaterialRequestRepository) DeleteAll(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
