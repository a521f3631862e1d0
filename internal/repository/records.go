package repository

import (
	"context"

	"obradiary/internal/model"
)

// DiaryEntryRepository defines data access for diary entry documents.
// Listings are per-site, newest created_at first, capped by limit.
type DiaryEntryRepository interface {
	Create(ctx context.Context, e *model.DiaryEntry) (*model.DiaryEntry, error)
	ListByObra(ctx context.Context, obraID string, limit int) ([]model.DiaryEntry, error)
	CountByObra(ctx context.Context, obraID string) (int, error)
	DeleteAll(ctx context.Context) error
}

// PhotoRepository defines data access for photo documents.
type PhotoRepository interface {
	Create(ctx context.Context, p *model.Photo) (*model.Photo, error)
	ListByObra(ctx context.Context, obraID string, limit int) ([]model.Photo, error)
	CountByObra(ctx context.Context, obraID string) (int, error)

	// AllIDs returns every photo id in the collection. Used to purge
	// archived payloads from object storage before a wipe.
	AllIDs(ctx context.Context) ([]string, error)

	DeleteAll(ctx context.Context) error
}

// MaterialRequestRepository defines data access for material request documents.
type MaterialRequestRepository interface {
	Create(ctx context.Context, r *model.MaterialRequest) (*model.MaterialRequest, error)
	ListByObra(ctx context.Context, obraID string, limit int) ([]model.MaterialRequest, error)

	// UpdateStatus sets the free-text status. Missing ids are not an
	// error; reapplying the same value succeeds.
	UpdateStatus(ctx context.Context, id, status string) error

	CountByObra(ctx context.Context, obraID string) (int, error)
	CountByObraAndStatus(ctx context.Context, obraID, status string) (int, error)
	DeleteAll(ctx context.Context) error
}

// ServiceMeasurementRepository defines data access for measurement documents.
type ServiceMeasurementRepository interface {
	Create(ctx context.Context, m *model.ServiceMeasurement) (*model.ServiceMeasurement, error)
	ListByObra(ctx context.Context, obraID string, limit int) ([]model.ServiceMeasurement, error)
	CountByObra(ctx context.Context, obraID string) (int, error)
	DeleteAll(ctx context.Context) error
}

// NotificationRepository defines data access for notification documents.
type NotificationRepository interface {
	Create(ctx context.Context, n *model.Notification) (*model.Notification, error)
	ListByObra(ctx context.Context, obraID string, limit int) ([]model.Notification, error)

	// MarkRead flips is_read to true. Missing ids are not an error;
	// marking an already-read notification succeeds.
	MarkRead(ctx context.Context, id string) error

	CountUnreadByObra(ctx context.Context, obraID string) (int, error)
	DeleteAll(ctx context.Context) error
}
