package service

import (
	"context"

	"obradiary/internal/model"
	"obradiary/internal/repository"
)

// DashboardService computes the per-site count summary.
type DashboardService interface {
	// Stats returns six independent counts. They are a best-effort
	// snapshot, not a transactionally consistent point-in-time view:
	// concurrent writes may make them mutually inconsistent.
	Stats(ctx context.Context, obraID string) (*model.DashboardStats, error)
}

type dashboardService struct {
	diaries       repository.DiaryEntryRepository
	photos        repository.PhotoRepository
	materials     repository.MaterialRequestRepository
	measurements  repository.ServiceMeasurementRepository
	notifications repository.NotificationRepository
}

// NewDashboardService constructs a new DashboardService.
func NewDashboardService(
	diaries repository.DiaryEntryRepository,
	photos repository.PhotoRepository,
	materials repository.MaterialRequestRepository,
	measurements repository.ServiceMeasurementRepository,
	notifications repository.NotificationRepository,
) DashboardService {
	return &dashboardService{
		diaries:       diaries,
		photos:        photos,
		materials:     materials,
		measurements:  measurements,
		notifications: notifications,
	}
}

func (s *dashboardService) Stats(ctx context.Context, obraID string) (*model.DashboardStats, error) {
	if obraID == "" {
		return nil, ErrIDRequired
	}

	stats := &model.DashboardStats{}
	var err error

	if stats.DiaryEntries, err = s.diaries.CountByObra(ctx, obraID); err != nil {
		return nil, err
	}
	if stats.Photos, err = s.photos.CountByObra(ctx, obraID); err != nil {
		return nil, err
	}
	if stats.MaterialRequests, err = s.materials.CountByObra(ctx, obraID); err != nil {
		return nil, err
	}
	if stats.PendingRequests, err = s.materials.CountByObraAndStatus(ctx, obraID, model.MaterialRequestStatusPending); err != nil {
		return nil, err
	}
	if stats.ServiceMeasurements, err = s.measurements.CountByObra(ctx, obraID); err != nil {
		return nil, err
	}
	if stats.UnreadNotifications, err = s.notifications.CountUnreadByObra(ctx, obraID); err != nil {
		return nil, err
	}

	return stats, nil
}
