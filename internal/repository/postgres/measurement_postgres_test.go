package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"

	"obradiary/internal/model"
)

func measurementColumns() []string {
	return []string{"id", "obra_id", "user_id", "user_name", "service_name", "description",
		"quantity", "unit", "status", "start_date", "end_date", "photos", "signature_data", "observations", "created_at"}
}

func TestServiceMeasurementPostgres_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewServiceMeasurementPostgres(db)
	ctx := context.Background()

	now := time.Now().UTC()
	m := &model.ServiceMeasurement{
		ID:          "measurement_001",
		ObraID:      "obra_001",
		UserID:      "user_123",
		UserName:    "Maria Santos",
		ServiceName: "Masonry",
		Description: "Second floor internal walls",
		Quantity:    350,
		Unit:        "m2",
		Status:      model.MeasurementInProgress,
		StartDate:   now,
		Photos:      []string{"photo_001"},
		CreatedAt:   now,
	}

	rows := sqlmock.NewRows(measurementColumns()).
		AddRow(m.ID, m.ObraID, m.UserID, m.UserName, m.ServiceName, m.Description,
			m.Quantity, m.Unit, string(m.Status), m.StartDate, nil, []byte(`["photo_001"]`), nil, m.Observations, m.CreatedAt)

	mock.ExpectQuery("INSERT INTO service_measurements").
		WithArgs(m.ID, m.ObraID, m.UserID, m.UserName, m.ServiceName, m.Description,
			m.Quantity, m.Unit, m.Status, m.StartDate, m.EndDate, []byte(`["photo_001"]`), m.SignatureData, m.Observations, m.CreatedAt).
		WillReturnRows(rows)

	result, err := repo.Create(ctx, m)

	assert.NoError(t, err)
	assert.Equal(t, []string{"photo_001"}, result.Photos)
	assert.Nil(t, result.EndDate)
	assert.Nil(t, result.SignatureData)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestServiceMeasurementPostgres_ListByObra(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewServiceMeasurementPostgres(db)

	now := time.Now().UTC()
	end := now.Add(time.Hour)
	rows := sqlmock.NewRows(measurementColumns()).
		AddRow("measurement_002", "obra_001", "user_123", "Maria Santos", "Painting", "Facade",
			120.0, "m2", "completed", now, end, []byte(`[]`), "c2ln", "", now).
		AddRow("measurement_001", "obra_001", "user_123", "Maria Santos", "Masonry", "Walls",
			350.0, "m2", "in-progress", now, nil, nil, nil, "", now.Add(-time.Hour))

	mock.ExpectQuery("FROM service_measurements").
		WithArgs("obra_001", 1000).
		WillReturnRows(rows)

	items, err := repo.ListByObra(context.Background(), "obra_001", 1000)

	assert.NoError(t, err)
	assert.Len(t, items, 2)
	assert.NotNil(t, items[0].EndDate)
	assert.NotNil(t, items[0].SignatureData)
	assert.Equal(t, "c2ln", *items[0].SignatureData)
	// NULL photos column decodes to an empty, non-nil slice
	assert.NotNil(t, items[1].Photos)
	assert.Empty(t, items[1].Photos)
	assert.NoError(t, mock.ExpectationsWereMet())
}
