package mocks

import (
	"context"

	"obradiary/internal/model"

	"github.com/stretchr/testify/mock"
)

type MockDiaryEntryRepository struct {
	mock.Mock
}

func (m *MockDiaryEntryRepository) Create(ctx context.Context, e *model.DiaryEntry) (*model.DiaryEntry, error) {
	args := m.Called(ctx, e)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.DiaryEntry), args.Error(1)
}

func (m *MockDiaryEntryRepository) ListByObra(ctx context.Context, obraID string, limit int) ([]model.DiaryEntry, error) {
	args := m.Called(ctx, obraID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.DiaryEntry), args.Error(1)
}

func (m *MockDiaryEntryRepository) CountByObra(ctx context.Context, obraID string) (int, error) {
	args := m.Called(ctx, obraID)
	return args.Int(0), args.Error(1)
}

func (m *MockDiaryEntryRepository) DeleteAll(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
