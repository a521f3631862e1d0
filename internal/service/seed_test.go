package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"obradiary/internal/model"
	repoMocks "obradiary/internal/repository/mocks"
	storageMocks "obradiary/internal/storage/mocks"
)

type seedFixture struct {
	users         *repoMocks.MockUserRepository
	obras         *repoMocks.MockObraRepository
	diaries       *repoMocks.MockDiaryEntryRepository
	photos        *repoMocks.MockPhotoRepository
	materials     *repoMocks.MockMaterialRequestRepository
	measurements  *repoMocks.MockServiceMeasurementRepository
	notifications *repoMocks.MockNotificationRepository
	store         *storageMocks.MockStorage
	svc           SeedService
}

func newSeedFixture() *seedFixture {
	f := &seedFixture{
		users:         new(repoMocks.MockUserRepository),
		obras:         new(repoMocks.MockObraRepository),
		diaries:       new(repoMocks.MockDiaryEntryRepository),
		photos:        new(repoMocks.MockPhotoRepository),
		materials:     new(repoMocks.MockMaterialRequestRepository),
		measurements:  new(repoMocks.MockServiceMeasurementRepository),
		notifications: new(repoMocks.MockNotificationRepository),
	}
	f.svc = NewSeedService(f.users, f.obras, f.diaries, f.photos, f.materials, f.measurements, f.notifications, nil)
	return f
}

func newSeedFixtureWithStore() *seedFixture {
	f := newSeedFixture()
	f.store = new(storageMocks.MockStorage)
	f.svc = NewSeedService(f.users, f.obras, f.diaries, f.photos, f.materials, f.measurements, f.notifications, f.store)
	return f
}

func (f *seedFixture) expectWipes() {
	f.users.On("DeleteAll", mock.Anything).Return(nil).Once()
	f.obras.On("DeleteAll", mock.Anything).Return(nil).Once()
	f.diaries.On("DeleteAll", mock.Anything).Return(nil).Once()
	f.photos.On("DeleteAll", mock.Anything).Return(nil).Once()
	f.materials.On("DeleteAll", mock.Anything).Return(nil).Once()
	f.measurements.On("DeleteAll", mock.Anything).Return(nil).Once()
	f.notifications.On("DeleteAll", mock.Anything).Return(nil).Once()
}

func (f *seedFixture) expectSeeds() {
	f.obras.On("Create", mock.Anything, mock.Anything).Return(&model.Obra{}, nil)
	f.users.On("Create", mock.Anything, mock.Anything).Return(&model.User{}, nil)
	f.diaries.On("Create", mock.Anything, mock.Anything).Return(&model.DiaryEntry{}, nil)
	f.materials.On("Create", mock.Anything, mock.Anything).Return(&model.MaterialRequest{}, nil)
}

func TestSeedInitialize(t *testing.T) {
	f := newSeedFixture()
	f.expectWipes()

	seededObras := map[string]bool{}
	f.obras.On("Create", mock.Anything, mock.MatchedBy(func(o *model.Obra) bool {
		seededObras[o.ID] = true
		return o.Status == model.ObraStatusActive
	})).Return(&model.Obra{}, nil).Twice()

	seededUsers := map[string]bool{}
	f.users.On("Create", mock.Anything, mock.MatchedBy(func(u *model.User) bool {
		seededUsers[u.ID] = true
		return u.Role.Valid()
	})).Return(&model.User{}, nil).Times(4)

	f.diaries.On("Create", mock.Anything, mock.Anything).Return(&model.DiaryEntry{}, nil).Twice()
	f.materials.On("Create", mock.Anything, mock.MatchedBy(func(m *model.MaterialRequest) bool {
		return m.Priority.Valid()
	})).Return(&model.MaterialRequest{}, nil).Twice()

	err := f.svc.Initialize(context.Background())
	require.NoError(t, err)

	assert.True(t, seededObras["obra_001"])
	assert.True(t, seededObras["obra_002"])
	assert.True(t, seededUsers["user_001"])
	assert.True(t, seededUsers["user_004"])

	f.users.AssertExpectations(t)
	f.obras.AssertExpectations(t)
	f.diaries.AssertExpectations(t)
	f.materials.AssertExpectations(t)

	// No storage backend, so no archived payloads to purge.
	f.photos.AssertNotCalled(t, "AllIDs", mock.Anything)
}

func TestSeedInitializePurgesArchivedPhotos(t *testing.T) {
	f := newSeedFixtureWithStore()
	f.expectWipes()
	f.expectSeeds()

	f.photos.On("AllIDs", mock.Anything).Return([]string{"photo_001", "photo_002"}, nil).Once()
	f.store.On("Delete", mock.Anything, "photos/photo_001").Return(nil).Once()
	f.store.On("Delete", mock.Anything, "photos/photo_002").Return(nil).Once()

	err := f.svc.Initialize(context.Background())
	require.NoError(t, err)

	f.photos.AssertExpectations(t)
	f.store.AssertExpectations(t)
}

func TestSeedInitializePurgeFailureDoesNotAbort(t *testing.T) {
	f := newSeedFixtureWithStore()
	f.expectWipes()
	f.expectSeeds()

	f.photos.On("AllIDs", mock.Anything).Return(nil, errors.New("query failed")).Once()

	err := f.svc.Initialize(context.Background())
	require.NoError(t, err)
	f.store.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestSeedInitializeDeleteFailureDoesNotAbort(t *testing.T) {
	f := newSeedFixtureWithStore()
	f.expectWipes()
	f.expectSeeds()

	f.photos.On("AllIDs", mock.Anything).Return([]string{"photo_001", "photo_002"}, nil).Once()
	f.store.On("Delete", mock.Anything, "photos/photo_001").Return(errors.New("object locked")).Once()
	f.store.On("Delete", mock.Anything, "photos/photo_002").Return(nil).Once()

	err := f.svc.Initialize(context.Background())
	require.NoError(t, err)
	f.store.AssertExpectations(t)
}

func TestSeedInitializeWipeFailureAborts(t *testing.T) {
	f := newSeedFixture()

	f.users.On("DeleteAll", mock.Anything).Return(errors.New("locked")).Once()

	err := f.svc.Initialize(context.Background())
	assert.Error(t, err)
	f.obras.AssertNotCalled(t, "DeleteAll", mock.Anything)
	f.obras.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestSeedInitializeSeedFailureAborts(t *testing.T) {
	f := newSeedFixture()
	f.expectWipes()

	f.obras.On("Create", mock.Anything, mock.Anything).Return(nil, errors.New("insert failed")).Once()

	err := f.svc.Initialize(context.Background())
	assert.Error(t, err)
	f.users.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}
