package postgres

import (
	"context"
	"database/sql"

	"obradiary/internal/model"
	"obradiary/internal/repository"
)

// ServiceMeasurementPostgres is a PostgreSQL implementation of
// repository.ServiceMeasurementRepository.
type ServiceMeasurementPostgres struct {
	db *sql.DB
}

// NewServiceMeasurementPostgres creates a new ServiceMeasurementPostgres repository.
func NewServiceMeasurementPostgres(db *sql.DB) *ServiceMeasurementPostgres {
	return &ServiceMeasurementPostgres{db: db}
}

var _ repository.ServiceMeasurementRepository = (*ServiceMeasurementPostgres)(nil)

// Create inserts a new measurement row and returns the stored record.
func (r *ServiceMeasurementPostgres) Create(ctx context.Context, m *model.ServiceMeasurement) (*model.ServiceMeasurement, error) {
	const q = `
		INSERT INTO service_measurements (id, obra_id, user_id, user_name, service_name, description,
			quantity, unit, status, start_date, end_date, photos, signature_data, observations, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		RETURNING id, obra_id, user_id, user_name, service_name, description,
			quantity, unit, status, start_date, end_date, photos, signature_data, observations, created_at
	`
	photos, err := marshalStrings(m.Photos)
	if err != nil {
		return nil, err
	}
	row := r.db.QueryRowContext(ctx, q,
		m.ID,
		m.ObraID,
		m.UserID,
		m.UserName,
		m.ServiceName,
		m.Description,
		m.Quantity,
		m.Unit,
		m.Status,
		m.StartDate,
		m.EndDate,
		photos,
		m.SignatureData,
		m.Observations,
		m.CreatedAt,
	)
	var out model.ServiceMeasurement
	if err := scanMeasurement(row.Scan, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListByObra returns the site's measurements, newest created_at first, capped at limit.
func (r *ServiceMeasurementPostgres) ListByObra(ctx context.Context, obraID string, limit int) ([]model.ServiceMeasurement, error) {
	const q = `
		SELECT id, obra_id, user_id, user_name, service_name, description,
			quantity, unit, status, start_date, end_date, photos, signature_data, observations, created_at
		FROM service_measurements
		WHERE obra_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2
	`
	rows, err := r.db.QueryContext(ctx, q, obraID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.ServiceMeasurement, 0)
	for rows.Next() {
		var m model.ServiceMeasurement
		if err := scanMeasurement(rows.Scan, &m); err != nil {
			return nil, err
		}
		items = append(items, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// CountByObra returns the number of measurements belonging to the site.
func (r *ServiceMeasurementPostgres) CountByObra(ctx context.Context, obraID string) (int, error) {
	const q = `SELECT COUNT(*) FROM service_measurements WHERE obra_id = $1`
	var n int
	if err := r.db.QueryRowContext(ctx, q, obraID).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

// DeleteAll wipes the service measurements collection.
func (r *ServiceMeasurementPostgres) DeleteAll(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM service_measurements`)
	return err
}

func scanMeasurement(scan func(dest ...any) error, m *model.ServiceMeasurement) error {
	var photos []byte
	if err := scan(
		&m.ID,
		&m.ObraID,
		&m.UserID,
		&m.UserName,
		&m.ServiceName,
		&m.Description,
		&m.Quantity,
		&m.Unit,
		&m.Status,
		&m.StartDate,
		&m.EndDate,
		&photos,
		&m.SignatureData,
		&m.Observations,
		&m.CreatedAt,
	); err != nil {
		return err
	}
	var err error
	m.Photos, err = unmarshalStrings(photos)
	return err
}
