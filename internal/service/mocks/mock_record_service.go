package mocks

import (
	"context"

	"obradiary/internal/model"

	"github.com/stretchr/testify/mock"
)

type MockRecordService struct {
	mock.Mock
}

func (m *MockRecordService) CreateDiaryEntry(ctx context.Context, credential string, in *model.DiaryEntryCreate) (*model.DiaryEntry, error) {
	args := m.Called(ctx, credential, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.DiaryEntry), args.Error(1)
}

func (m *MockRecordService) ListDiaryEntries(ctx context.Context, obraID string) ([]model.DiaryEntry, error) {
	args := m.Called(ctx, obraID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.DiaryEntry), args.Error(1)
}

func (m *MockRecordService) CreatePhoto(ctx context.Context, credential string, in *model.PhotoCreate) (*model.Photo, error) {
	args := m.Called(ctx, credential, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Photo), args.Error(1)
}

func (m *MockRecordService) ListPhotos(ctx context.Context, obraID string) ([]model.Photo, error) {
	args := m.Called(ctx, obraID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Photo), args.Error(1)
}

func (m *MockRecordService) CreateMaterialRequest(ctx context.Context, credential string, in *model.MaterialRequestCreate) (*model.MaterialRequest, error) {
	args := m.Called(ctx, credential, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.MaterialRequest), args.Error(1)
}

func (m *MockRecordService) ListMaterialRequests(ctx context.Context, obraID string) ([]model.MaterialRequest, error) {
	args := m.Called(ctx, obraID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.MaterialRequest), args.Error(1)
}

func (m *MockRecordService) UpdateMaterialRequestStatus(ctx context.Context, id, status string) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *MockRecordService) CreateMeasurement(ctx context.Context, credential string, in *model.ServiceMeasurementCreate) (*model.ServiceMeasurement, error) {
	args := m.Called(ctx, credential, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ServiceMeasurement), args.Error(1)
}

func (m *MockRecordService) ListMeasurements(ctx context.Context, obraID string) ([]model.ServiceMeasurement, error) {
	args := m.Called(ctx, obraID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ServiceMeasurement), args.Error(1)
}
