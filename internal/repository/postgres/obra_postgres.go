package postgres

import (
	"context"
	"database/sql"

	"obradiary/internal/model"
	"obradiary/internal/repository"
)

// ObraPostgres is a PostgreSQL implementation of repository.ObraRepository.
type ObraPostgres struct {
	db *sql.DB
}

// NewObraPostgres creates a new ObraPostgres repository.
func NewObraPostgres(db *sql.DB) *ObraPostgres {
	return &ObraPostgres{db: db}
}

var _ repository.ObraRepository = (*ObraPostgres)(nil)

// Create inserts a new obra row and returns the stored record.
func (r *ObraPostgres) Create(ctx context.Context, o *model.Obra) (*model.Obra, error) {
	const q = `
		INSERT INTO obras (id, name, location, description, start_date, expected_end_date, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, name, location, description, start_date, expected_end_date, status, created_at
	`
	row := r.db.QueryRowContext(ctx, q,
		o.ID,
		o.Name,
		o.Location,
		o.Description,
		o.StartDate,
		o.ExpectedEndDate,
		o.Status,
		o.CreatedAt,
	)
	var out model.Obra
	if err := row.Scan(
		&out.ID,
		&out.Name,
		&out.Location,
		&out.Description,
		&out.StartDate,
		&out.ExpectedEndDate,
		&out.Status,
		&out.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &out, nil
}

// FindByID fetches a single obra by its ID.
func (r *ObraPostgres) FindByID(ctx context.Context, id string) (*model.Obra, error) {
	const q = `
		SELECT id, name, location, description, start_date, expected_end_date, status, created_at
		FROM obras
		WHERE id = $1
	`
	row := r.db.QueryRowContext(ctx, q, id)
	var o model.Obra
	if err := row.Scan(
		&o.ID,
		&o.Name,
		&o.Location,
		&o.Description,
		&o.StartDate,
		&o.ExpectedEndDate,
		&o.Status,
		&o.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &o, nil
}

// List returns up to limit obras.
func (r *ObraPostgres) List(ctx context.Context, limit int) ([]model.Obra, error) {
	const q = `
		SELECT id, name, location, description, start_date, expected_end_date, status, created_at
		FROM obras
		ORDER BY created_at DESC, id DESC
		LIMIT $1
	`
	rows, err := r.db.QueryContext(ctx, q, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Obra, 0)
	for rows.Next() {
		var o model.Obra
		if err := rows.Scan(
			&o.ID,
			&o.Name,
			&o.Location,
			&o.Description,
			&o.StartDate,
			&o.ExpectedEndDate,
			&o.Status,
			&o.CreatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// DeleteAll wipes the obras collection.
func (r *ObraPostgres) DeleteAll(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM obras`)
	return err
}
