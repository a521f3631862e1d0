package postgres

import (
	"context"
	"database/sql"

	"obradiary/internal/model"
	"obradiary/internal/repository"
)

// DiaryEntryPostgres is a PostgreSQL implementation of repository.DiaryEntryRepository.
type DiaryEntryPostgres struct {
	db *sql.DB
}

// NewDiaryEntryPostgres creates a new DiaryEntryPostgres repository.
func NewDiaryEntryPostgres(db *sql.DB) *DiaryEntryPostgres {
	return &DiaryEntryPostgres{db: db}
}

var _ repository.DiaryEntryRepository = (*DiaryEntryPostgres)(nil)

// Create inserts a new diary entry row and returns the stored record.
func (r *DiaryEntryPostgres) Create(ctx context.Context, e *model.DiaryEntry) (*model.DiaryEntry, error) {
	const q = `
		INSERT INTO diary_entries (id, obra_id, user_id, user_name, date, weather, temperature,
			workers_count, activities, materials_used, equipment_used, incidents, observations, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING id, obra_id, user_id, user_name, date, weather, temperature,
			workers_count, activities, materials_used, equipment_used, incidents, observations, created_at
	`
	row := r.db.QueryRowContext(ctx, q,
		e.ID,
		e.ObraID,
		e.UserID,
		e.UserName,
		e.Date,
		e.Weather,
		e.Temperature,
		e.WorkersCount,
		e.Activities,
		e.MaterialsUsed,
		e.EquipmentUsed,
		e.Incidents,
		e.Observations,
		e.CreatedAt,
	)
	var out model.DiaryEntry
	if err := scanDiaryEntry(row.Scan, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListByObra returns the site's entries, newest created_at first, capped at limit.
func (r *DiaryEntryPostgres) ListByObra(ctx context.Context, obraID string, limit int) ([]model.DiaryEntry, error) {
	const q = `
		SELECT id, obra_id, user_id, user_name, date, weather, temperature,
			workers_count, activities, materials_used, equipment_used, incidents, observations, created_at
		FROM diary_entries
		WHERE obra_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2
	`
	rows, err := r.db.QueryContext(ctx, q, obraID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.DiaryEntry, 0)
	for rows.Next() {
		var e model.DiaryEntry
		if err := scanDiaryEntry(rows.Scan, &e); err != nil {
			return nil, err
		}
		items = append(items, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// CountByObra returns the number of entries belonging to the site.
func (r *DiaryEntryPostgres) CountByObra(ctx context.Context, obraID string) (int, error) {
	const q = `SELECT COUNT(*) FROM diary_entries WHERE obra_id = $1`
	var n int
	if err := r.db.QueryRowContext(ctx, q, obraID).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

// DeleteAll wipes the diary entries collection.
func (r *DiaryEntryPostgres) DeleteAll(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM diary_entries`)
	return err
}

func scanDiaryEntry(scan func(dest ...any) error, e *model.DiaryEntry) error {
	return scan(
		&e.ID,
		&e.ObraID,
		&e.UserID,
		&e.UserName,
		&e.Date,
		&e.Weather,
		&e.Temperature,
		&e.WorkersCount,
		&e.Activities,
		&e.MaterialsUsed,
		&e.EquipmentUsed,
		&e.Incidents,
		&e.Observations,
		&e.CreatedAt,
	)
}
