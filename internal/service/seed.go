package service

import (
	"context"
	"fmt"
	"time"

	"obradiary/internal/model"
	"obradiary/internal/repository"
	"obradiary/internal/storage"
)

// SeedService wipes all seven collections and installs a fixed set of
// demonstration data. Destructive; deployments gate the endpoint behind
// configuration. Two consecutive runs leave the identical data set because
// the wipe precedes every insert and fixture ids are deterministic.
type SeedService interface {
	Initialize(ctx context.Context) error
}

type seedService struct {
	users         repository.UserRepository
	obras         repository.ObraRepository
	diaries       repository.DiaryEntryRepository
	photos        repository.PhotoRepository
	materials     repository.MaterialRequestRepository
	measurements  repository.ServiceMeasurementRepository
	notifications repository.NotificationRepository
	store         storage.Storage
}

// NewSeedService constructs a new SeedService. store may be nil when no
// object storage backend is configured.
func NewSeedService(
	users repository.UserRepository,
	obras repository.ObraRepository,
	diaries repository.DiaryEntryRepository,
	photos repository.PhotoRepository,
	materials repository.MaterialRequestRepository,
	measurements repository.ServiceMeasurementRepository,
	notifications repository.NotificationRepository,
	store storage.Storage,
) SeedService {
	return &seedService{
		users:         users,
		obras:         obras,
		diaries:       diaries,
		photos:        photos,
		materials:     materials,
		measurements:  measurements,
		notifications: notifications,
		store:         store,
	}
}

func (s *seedService) Initialize(ctx context.Context) error {
	start := time.Now()

	s.purgeArchivedPhotos(ctx)

	wipes := []struct {
		name string
		fn   func(context.Context) error
	}{
		{"users", s.users.DeleteAll},
		{"obras", s.obras.DeleteAll},
		{"diary_entries", s.diaries.DeleteAll},
		{"photos", s.photos.DeleteAll},
		{"material_requests", s.materials.DeleteAll},
		{"service_measurements", s.measurements.DeleteAll},
		{"notifications", s.notifications.DeleteAll},
	}
	for _, w := range wipes {
		if err := w.fn(ctx); err != nil {
			return fmt.Errorf("wipe %s: %w", w.name, err)
		}
	}

	for _, o := range sampleObras() {
		if _, err := s.obras.Create(ctx, &o); err != nil {
			return fmt.Errorf("seed obra %s: %w", o.ID, err)
		}
	}
	for _, u := range sampleUsers() {
		if _, err := s.users.Create(ctx, &u); err != nil {
			return fmt.Errorf("seed user %s: %w", u.ID, err)
		}
	}
	for _, e := range sampleDiaryEntries() {
		if _, err := s.diaries.Create(ctx, &e); err != nil {
			return fmt.Errorf("seed diary entry %s: %w", e.ID, err)
		}
	}
	for _, m := range sampleMaterialRequests() {
		if _, err := s.materials.Create(ctx, &m); err != nil {
			return fmt.Errorf("seed material request %s: %w", m.ID, err)
		}
	}

	logJSON(map[string]any{
		"component":   "service",
		"event":       "sample_data_initialized",
		"duration_ms": time.Since(start).Milliseconds(),
	})
	return nil
}

// purgeArchivedPhotos removes the archived payload objects for every photo
// about to be wiped. Archival is best-effort on write, so the purge is too;
// failures are logged and the wipe proceeds.
func (s *seedService) purgeArchivedPhotos(ctx context.Context) {
	if s.store == nil {
		return
	}
	ids, err := s.photos.AllIDs(ctx)
	if err != nil {
		logJSON(map[string]any{
			"level":     "warn",
			"component": "service",
			"event":     "photo_purge_skipped",
			"error":     err.Error(),
		})
		return
	}
	for _, id := range ids {
		if err := s.store.Delete(ctx, photoObjectKey(id)); err != nil {
			logJSON(map[string]any{
				"level":     "warn",
				"component": "service",
				"event":     "photo_purge_failed",
				"photo_id":  id,
				"error":     err.Error(),
			})
		}
	}
}

func sampleObras() []model.Obra {
	now := time.Now().UTC()
	return []model.Obra{
		{
			ID:              "obra_001",
			Name:            "Vista Verde Residences",
			Location:        "Jardim das Flores district, Sao Paulo - SP",
			Description:     "Residential complex with 120 apartments across 4 towers",
			StartDate:       time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
			ExpectedEndDate: time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC),
			Status:          model.ObraStatusActive,
			CreatedAt:       now,
		},
		{
			ID:              "obra_002",
			Name:            "Plaza Shopping Center",
			Location:        "1500 Main Avenue - Rio de Janeiro - RJ",
			Description:     "Shopping center with 80 stores over 3 floors",
			StartDate:       time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
			ExpectedEndDate: time.Date(2025, 12, 15, 0, 0, 0, 0, time.UTC),
			Status:          model.ObraStatusActive,
			CreatedAt:       now,
		},
	}
}

func sampleUsers() []model.User {
	now := time.Now().UTC()
	return []model.User{
		{ID: "user_001", Name: "Joao Silva", Email: "joao@rpg.com", Role: model.RoleSiteForeman, ObraIDs: []string{"obra_001"}, CreatedAt: now},
		{ID: "user_002", Name: "Maria Santos", Email: "maria@rpg.com", Role: model.RoleEngineer, ObraIDs: []string{"obra_001", "obra_002"}, CreatedAt: now},
		{ID: "user_003", Name: "Carlos Oliveira", Email: "carlos@rpg.com", Role: model.RolePlanningTechnician, ObraIDs: []string{"obra_001", "obra_002"}, CreatedAt: now},
		{ID: "user_004", Name: "Ana Costa", Email: "ana@rpg.com", Role: model.RoleSiteForeman, ObraIDs: []string{"obra_002"}, CreatedAt: now},
	}
}

func sampleDiaryEntries() []model.DiaryEntry {
	now := time.Now().UTC()
	return []model.DiaryEntry{
		{
			ID:            "entry_001",
			ObraID:        "obra_001",
			UserID:        "user_001",
			UserName:      "Joao Silva",
			Date:          now.Add(-24 * time.Hour),
			Weather:       "Sunny",
			Temperature:   "28C",
			WorkersCount:  25,
			Activities:    "Poured the 3rd floor slab of Tower A. Installed plumbing runs.",
			MaterialsUsed: "Concrete: 15m3, Rebar: 2 tons, PVC pipe: 200m",
			EquipmentUsed: "Concrete mixer, Hoist, Drill",
			Incidents:     "",
			Observations:  "Work completed within the planned schedule.",
			CreatedAt:     now,
		},
		{
			ID:            "entry_002",
			ObraID:        "obra_002",
			UserID:        "user_004",
			UserName:      "Ana Costa",
			Date:          now,
			Weather:       "Partly cloudy",
			Temperature:   "24C",
			WorkersCount:  18,
			Activities:    "Masonry on the 1st floor. Started electrical rough-in.",
			MaterialsUsed: "Bricks: 2000 units, Cement: 50 bags, Electrical wire: 500m",
			EquipmentUsed: "Drill, Demolition hammer, Square",
			Incidents:     "Minor delay due to morning rain",
			Observations:  "Need to pick up the pace to recover the schedule.",
			CreatedAt:     now,
		},
	}
}

func sampleMaterialRequests() []model.MaterialRequest {
	now := time.Now().UTC()
	return []model.MaterialRequest{
		{
			ID:            "request_001",
			ObraID:        "obra_001",
			UserID:        "user_001",
			UserName:      "Joao Silva",
			MaterialName:  "Portland Cement",
			Quantity:      100,
			Unit:          "bags",
			Priority:      model.PriorityHigh,
			Justification: "Needed for the next slab pour",
			Status:        model.MaterialRequestStatusPending,
			RequestedDate: now,
			NeededDate:    now.Add(3 * 24 * time.Hour),
			CreatedAt:     now,
		},
		{
			ID:            "request_002",
			ObraID:        "obra_001",
			UserID:        "user_001",
			UserName:      "Joao Silva",
			MaterialName:  "10mm Rebar",
			Quantity:      500,
			Unit:          "meters",
			Priority:      model.PriorityMedium,
			Justification: "Reinforcement for the 4th floor structure",
			Status:        "approved",
			RequestedDate: now,
			NeededDate:    now.Add(7 * 24 * time.Hour),
			CreatedAt:     now,
		},
	}
}
