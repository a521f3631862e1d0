package postgres

import (
	"context"
	"database/sql"

	"obradiary/internal/model"
	"obradiary/internal/repository"
)

// MaterialRequestPostgres is a PostgreSQL implementation of
// repository.MaterialRequestRepository.
type MaterialRequestPostgres struct {
	db *sql.DB
}

// NewMaterialRequestPostgres creates a new MaterialRequestPostgres repository.
func NewMaterialRequestPostgres(db *sql.DB) *MaterialRequestPostgres {
	return &MaterialRequestPostgres{db: db}
}

var _ repository.MaterialRequestRepository = (*MaterialRequestPostgres)(nil)

// Create inserts a new material request row and returns the stored record.
func (r *MaterialRequestPostgres) Create(ctx context.Context, m *model.MaterialRequest) (*model.MaterialRequest, error) {
	const q = `
		INSERT INTO material_requests (id, obra_id, user_id, user_name, material_name, quantity,
			unit, priority, justification, status, requested_date, needed_date, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING id, obra_id, user_id, user_name, material_name, quantity,
			unit, priority, justification, status, requested_date, needed_date, created_at
	`
	row := r.db.QueryRowContext(ctx, q,
		m.ID,
		m.ObraID,
		m.UserID,
		m.UserName,
		m.MaterialName,
		m.Quantity,
		m.Unit,
		m.Priority,
		m.Justification,
		m.Status,
		m.RequestedDate,
		m.NeededDate,
		m.CreatedAt,
	)
	var out model.MaterialRequest
	if err := scanMaterialRequest(row.Scan, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListByObra returns the site's requests, newest created_at first, capped at limit.
func (r *MaterialRequestPostgres) ListByObra(ctx context.Context, obraID string, limit int) ([]model.MaterialRequest, error) {
	const q = `
		SELECT id, obra_id, user_id, user_name, material_name, quantity,
			unit, priority, justification, status, requested_date, needed_date, created_at
		FROM material_requests
		WHERE obra_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2
	`
	rows, err := r.db.QueryContext(ctx, q, obraID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.MaterialRequest, 0)
	for rows.Next() {
		var m model.MaterialRequest
		if err := scanMaterialRequest(rows.Scan, &m); err != nil {
			return nil, err
		}
		items = append(items, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// UpdateStatus sets the status column. Rows affected is deliberately
// ignored: updating a missing id or reapplying the same value succeeds.
func (r *MaterialRequestPostgres) UpdateStatus(ctx context.Context, id, status string) error {
	const q = `UPDATE material_requests SET status = $2 WHERE id = $1`
	res, err := r.db.ExecContext(ctx, q, id, status)
	if err != nil {
		return err
	}
	_, _ = res.RowsAffected()
	return nil
}

// CountByObra returns the number of requests belonging to the site.
func (r *MaterialRequestPostgres) CountByObra(ctx context.Context, obraID string) (int, error) {
	const q = `SELECT COUNT(*) FROM material_requests WHERE obra_id = $1`
	var n int
	if err := r.db.QueryRowContext(ctx, q, obraID).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

// CountByObraAndStatus returns the number of the site's requests with an
// exact status match.
func (r *MaterialRequestPostgres) CountByObraAndStatus(ctx context.Context, obraID, status string) (int, error) {
	const q = `SELECT COUNT(*) FROM material_requests WHERE obra_id = $1 AND status = $2`
	var n int
	if err := r.db.QueryRowContext(ctx, q, obraID, status).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

// DeleteAll wipes the material requests collection.
func (r *MaterialRequestPostgres) DeleteAll(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM material_requests`)
	return err
}

func scanMaterialRequest(scan func(dest ...any) error, m *model.MaterialRequest) error {
	return scan(
		&m.ID,
		&m.ObraID,
		&m.UserID,
		&m.UserName,
		&m.MaterialName,
		&m.Quantity,
		&m.Unit,
		&m.Priority,
		&m.Justification,
		&m.Status,
		&m.RequestedDate,
		&m.NeededDate,
		&m.CreatedAt,
	)
}
