package service

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/base64"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"obradiary/internal/auth"
	"obradiary/internal/model"
	"obradiary/internal/repository"
	"obradiary/internal/storage"
)

// RecordService defines the use cases for the four authored record kinds.
// Every creation resolves the caller credential, stamps identity and
// timestamps, persists the document, and writes one derived notification.
// The notification write is a second, independent operation: when it fails
// the record is still created and the miss is only logged.
type RecordService interface {
	CreateDiaryEntry(ctx context.Context, credential string, in *model.DiaryEntryCreate) (*model.DiaryEntry, error)
	ListDiaryEntries(ctx context.Context, obraID string) ([]model.DiaryEntry, error)

	CreatePhoto(ctx context.Context, credential string, in *model.PhotoCreate) (*model.Photo, error)
	ListPhotos(ctx context.Context, obraID string) ([]model.Photo, error)

	CreateMaterialRequest(ctx context.Context, credential string, in *model.MaterialRequestCreate) (*model.MaterialRequest, error)
	ListMaterialRequests(ctx context.Context, obraID string) ([]model.MaterialRequest, error)

	// UpdateMaterialRequestStatus accepts any non-empty status string; the
	// field only looks like an enum. Idempotent, and unknown ids succeed.
	UpdateMaterialRequestStatus(ctx context.Context, id, status string) error

	CreateMeasurement(ctx context.Context, credential string, in *model.ServiceMeasurementCreate) (*model.ServiceMeasurement, error)
	ListMeasurements(ctx context.Context, obraID string) ([]model.ServiceMeasurement, error)
}

type recordService struct {
	resolver      auth.CredentialResolver
	users         repository.UserRepository
	diaries       repository.DiaryEntryRepository
	photos        repository.PhotoRepository
	materials     repository.MaterialRequestRepository
	measurements  repository.ServiceMeasurementRepository
	notifications repository.NotificationRepository
	store         storage.Storage // nil when archival is not configured
}

// NewRecordService constructs a new RecordService. store may be nil, in
// which case photo payloads are not archived to object storage.
func NewRecordService(
	resolver auth.CredentialResolver,
	users repository.UserRepository,
	diaries repository.DiaryEntryRepository,
	photos repository.PhotoRepository,
	materials repository.MaterialRequestRepository,
	measurements repository.ServiceMeasurementRepository,
	notifications repository.NotificationRepository,
	store storage.Storage,
) RecordService {
	return &recordService{
		resolver:      resolver,
		users:         users,
		diaries:       diaries,
		photos:        photos,
		materials:     materials,
		measurements:  measurements,
		notifications: notifications,
		store:         store,
	}
}

// resolveActor maps the credential to (user id, display name). The name is
// captured from the users collection at creation time; a missing user
// document substitutes the placeholder rather than failing the request.
func (s *recordService) resolveActor(ctx context.Context, credential string) (string, string, error) {
	userID, err := s.resolver.Resolve(ctx, credential)
	if err != nil {
		return "", "", err
	}
	u, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return userID, PlaceholderUserName, nil
		}
		return "", "", err
	}
	return userID, u.Name, nil
}

// notify writes the derived notification. Failures are logged and
// swallowed: the primary record is already persisted and there is no
// compensating rollback.
func (s *recordService) notify(ctx context.Context, obraID, userID, title, message string, typ model.NotificationType) {
	n := &model.Notification{
		ID:        uuid.New().String(),
		ObraID:    obraID,
		UserID:    userID,
		Title:     title,
		Message:   message,
		Type:      typ,
		IsRead:    false,
		CreatedAt: time.Now().UTC(),
	}
	if _, err := s.notifications.Create(ctx, n); err != nil {
		logJSON(map[string]any{
			"level":     "warn",
			"component": "service",
			"event":     "notification_write_failed",
			"obra_id":   obraID,
			"user_id":   userID,
			"type":      string(typ),
			"error":     err.Error(),
		})
	}
}

func (s *recordService) CreateDiaryEntry(ctx context.Context, credential string, in *model.DiaryEntryCreate) (*model.DiaryEntry, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	userID, userName, err := s.resolveActor(ctx, credential)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	entry := &model.DiaryEntry{
		ID:            uuid.New().String(),
		ObraID:        in.ObraID,
		UserID:        userID,
		UserName:      userName,
		Date:          now, // server-stamped regardless of client input
		Weather:       in.Weather,
		Temperature:   in.Temperature,
		WorkersCount:  in.WorkersCount,
		Activities:    in.Activities,
		MaterialsUsed: in.MaterialsUsed,
		EquipmentUsed: in.EquipmentUsed,
		Incidents:     in.Incidents,
		Observations:  in.Observations,
		CreatedAt:     now,
	}
	stored, err := s.diaries.Create(ctx, entry)
	if err != nil {
		return nil, err
	}

	s.notify(ctx, in.ObraID, userID,
		"New Diary Entry",
		fmt.Sprintf("Diary entry logged by %s", userName),
		model.NotificationDiary,
	)
	return stored, nil
}

func (s *recordService) ListDiaryEntries(ctx context.Context, obraID string) ([]model.DiaryEntry, error) {
	if obraID == "" {
		return nil, ErrIDRequired
	}
	items, err := s.diaries.ListByObra(ctx, obraID, RecordListCap)
	if err != nil {
		return nil, err
	}
	if len(items) == RecordListCap {
		warnTruncated("diary_entries", obraID, RecordListCap)
	}
	return items, nil
}

func (s *recordService) CreatePhoto(ctx context.Context, credential string, in *model.PhotoCreate) (*model.Photo, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	userID, userName, err := s.resolveActor(ctx, credential)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	photo := &model.Photo{
		ID:          uuid.New().String(),
		ObraID:      in.ObraID,
		UserID:      userID,
		UserName:    userName,
		Title:       in.Title,
		Description: in.Description,
		ImageData:   in.ImageData,
		Latitude:    in.Latitude,
		Longitude:   in.Longitude,
		Timestamp:   now,
		CreatedAt:   now,
	}
	stored, err := s.photos.Create(ctx, photo)
	if err != nil {
		return nil, err
	}

	s.archivePhoto(ctx, stored)

	s.notify(ctx, in.ObraID, userID,
		"New Photo Uploaded",
		fmt.Sprintf("Photo '%s' uploaded by %s", in.Title, userName),
		model.NotificationPhoto,
	)
	return stored, nil
}

// photoObjectKey is the storage key for a photo's archived payload.
func photoObjectKey(id string) string {
	return "photos/" + id
}

// archivePhoto mirrors the decoded image payload to object storage when a
// backend is configured. Best-effort only; the canonical payload stays in
// the document.
func (s *recordService) archivePhoto(ctx context.Context, p *model.Photo) {
	if s.store == nil {
		return
	}
	raw, err := base64.StdEncoding.DecodeString(p.ImageData)
	if err != nil {
		logJSON(map[string]any{
			"level":     "warn",
			"component": "service",
			"event":     "photo_archive_skipped",
			"photo_id":  p.ID,
			"error":     err.Error(),
		})
		return
	}
	_, err = s.store.Put(ctx, photoObjectKey(p.ID), bytes.NewReader(raw), storage.PutObjectOptions{
		Size:        int64(len(raw)),
		ContentType: "application/octet-stream",
		Metadata: map[string]string{
			"obra-id": p.ObraID,
			"title":   p.Title,
		},
	})
	if err != nil {
		logJSON(map[string]any{
			"level":     "warn",
			"component": "service",
			"event":     "photo_archive_failed",
			"photo_id":  p.ID,
			"error":     err.Error(),
		})
	}
}

func (s *recordService) ListPhotos(ctx context.Context, obraID string) ([]model.Photo, error) {
	if obraID == "" {
		return nil, ErrIDRequired
	}
	items, err := s.photos.ListByObra(ctx, obraID, RecordListCap)
	if err != nil {
		return nil, err
	}
	if len(items) == RecordListCap {
		warnTruncated("photos", obraID, RecordListCap)
	}
	return items, nil
}

func (s *recordService) CreateMaterialRequest(ctx context.Context, credential string, in *model.MaterialRequestCreate) (*model.MaterialRequest, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	userID, userName, err := s.resolveActor(ctx, credential)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	req := &model.MaterialRequest{
		ID:            uuid.New().String(),
		ObraID:        in.ObraID,
		UserID:        userID,
		UserName:      userName,
		MaterialName:  in.MaterialName,
		Quantity:      in.Quantity,
		Unit:          in.Unit,
		Priority:      in.Priority,
		Justification: in.Justification,
		Status:        model.MaterialRequestStatusPending,
		RequestedDate: now,
		NeededDate:    in.NeededDate,
		CreatedAt:     now,
	}
	stored, err := s.materials.Create(ctx, req)
	if err != nil {
		return nil, err
	}

	s.notify(ctx, in.ObraID, userID,
		"New Material Request",
		fmt.Sprintf("Request for %s by %s", in.MaterialName, userName),
		model.NotificationMaterial,
	)
	return stored, nil
}

func (s *recordService) ListMaterialRequests(ctx context.Context, obraID string) ([]model.MaterialRequest, error) {
	if obraID == "" {
		return nil, ErrIDRequired
	}
	items, err := s.materials.ListByObra(ctx, obraID, RecordListCap)
	if err != nil {
		return nil, err
	}
	if len(items) == RecordListCap {
		warnTruncated("material_requests", obraID, RecordListCap)
	}
	return items, nil
}

func (s *recordService) UpdateMaterialRequestStatus(ctx context.Context, id, status string) error {
	if id == "" {
		return ErrIDRequired
	}
	if status == "" {
		return &model.ValidationError{Fields: []string{"status"}}
	}
	return s.materials.UpdateStatus(ctx, id, status)
}

func (s *recordService) CreateMeasurement(ctx context.Context, credential string, in *model.ServiceMeasurementCreate) (*model.ServiceMeasurement, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	userID, userName, err := s.resolveActor(ctx, credential)
	if err != nil {
		return nil, err
	}

	photos := in.Photos
	if photos == nil {
		photos = []string{}
	}
	m := &model.ServiceMeasurement{
		ID:            uuid.New().String(),
		ObraID:        in.ObraID,
		UserID:        userID,
		UserName:      userName,
		ServiceName:   in.ServiceName,
		Description:   in.Description,
		Quantity:      in.Quantity,
		Unit:          in.Unit,
		Status:        in.Status,
		StartDate:     in.StartDate,
		EndDate:       in.EndDate,
		Photos:        photos,
		SignatureData: in.SignatureData,
		Observations:  in.Observations,
		CreatedAt:     time.Now().UTC(),
	}
	stored, err := s.measurements.Create(ctx, m)
	if err != nil {
		return nil, err
	}

	s.notify(ctx, in.ObraID, userID,
		"New Service Measurement",
		fmt.Sprintf("Measurement of %s by %s", in.ServiceName, userName),
		model.NotificationMeasurement,
	)
	return stored, nil
}

func (s *recordService) ListMeasurements(ctx context.Context, obraID string) ([]model.ServiceMeasurement, error) {
	if obraID == "" {
		return nil, ErrIDRequired
	}
	items, err := s.measurements.ListByObra(ctx, obraID, RecordListCap)
	if err != nil {
		return nil, err
	}
	if len(items) == RecordListCap {
		warnTruncated("service_measurements", obraID, RecordListCap)
	}
	return items, nil
}
