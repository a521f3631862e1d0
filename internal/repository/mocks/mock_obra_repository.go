package mocks

import (
	"context"

	"obradiary/internal/model"

	"github.com/stretchr/testify/mock"
)

type MockObraRepository struct {
	mock.Mock
}

func (m *MockObraRepository) Create(ctx context.Context, o *model.Obra) (*model.Obra, error) {
	args := m.Called(ctx, o)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Obra), args.Error(1)
}

func (m *MockObraRepository) FindByID(ctx context.Context, id string) (*model.Obra, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Obra), args.Error(1)
}

func (m *MockObraRepository) List(ctx context.Context, limit int) ([]model.Obra, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Obra), args.Error(1)
}

func (m *MockObraRepository) DeleteAll(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
