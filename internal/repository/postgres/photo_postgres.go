package postgres

import (
	"context"
	"database/sql"

	"obradiary/internal/model"
	"obradiary/internal/repository"
)

// PhotoPostgres is a PostgreSQL implementation of repository.PhotoRepository.
type PhotoPostgres struct {
	db *sql.DB
}

// NewPhotoPostgres creates a new PhotoPostgres repository.
func NewPhotoPostgres(db *sql.DB) *PhotoPostgres {
	return &PhotoPostgres{db: db}
}

var _ repository.PhotoRepository = (*PhotoPostgres)(nil)

// Create inserts a new photo row and returns the stored record.
func (r *PhotoPostgres) Create(ctx context.Context, p *model.Photo) (*model.Photo, error) {
	const q = `
		INSERT INTO photos (id, obra_id, user_id, user_name, title, description, image_data,
			latitude, longitude, timestamp, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id, obra_id, user_id, user_name, title, description, image_data,
			latitude, longitude, timestamp, created_at
	`
	row := r.db.QueryRowContext(ctx, q,
		p.ID,
		p.ObraID,
		p.UserID,
		p.UserName,
		p.Title,
		p.Description,
		p.ImageData,
		p.Latitude,
		p.Longitude,
		p.Timestamp,
		p.CreatedAt,
	)
	var out model.Photo
	if err := scanPhoto(row.Scan, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListByObra returns the site's photos, newest created_at first, capped at limit.
func (r *PhotoPostgres) ListByObra(ctx context.Context, obraID string, limit int) ([]model.Photo, error) {
	const q = `
		SELECT id, obra_id, user_id, user_name, title, description, image_data,
			latitude, longitude, timestamp, created_at
		FROM photos
		WHERE obra_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2
	`
	rows, err := r.db.QueryContext(ctx, q, obraID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Photo, 0)
	for rows.Next() {
		var p model.Photo
		if err := scanPhoto(rows.Scan, &p); err != nil {
			return nil, err
		}
		items = append(items, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// CountByObra returns the number of photos belonging to the site.
func (r *PhotoPostgres) CountByObra(ctx context.Context, obraID string) (int, error) {
	const q = `SELECT COUNT(*) FROM photos WHERE obra_id = $1`
	var n int
	if err := r.db.QueryRowContext(ctx, q, obraID).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

// AllIDs returns every photo id in the collection.
func (r *PhotoPostgres) AllIDs(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id FROM photos`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ids := make([]string, 0)
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return ids, nil
}

// DeleteAll wipes the photos collection.
func (r *PhotoPostgres) DeleteAll(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM photos`)
	return err
}

func scanPhoto(scan func(dest ...any) error, p *model.Photo) error {
	return scan(
		&p.ID,
		&p.ObraID,
		&p.UserID,
		&p.UserName,
		&p.Title,
		&p.Description,
		&p.ImageData,
		&p.Latitude,
		&p.Longitude,
		&p.Timestamp,
		&p.CreatedAt,
	)
}
