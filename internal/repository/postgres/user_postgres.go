package postgres

import (
	"context"
	"database/sql"

	"obradiary/internal/model"
	"obradiary/internal/repository"
)

// UserPostgres is a PostgreSQL implementation of repository.UserRepository.
type UserPostgres struct {
	db *sql.DB
}

// NewUserPostgres creates a new UserPostgres repository.
func NewUserPostgres(db *sql.DB) *UserPostgres {
	return &UserPostgres{db: db}
}

var _ repository.UserRepository = (*UserPostgres)(nil)

// Create inserts a new user row and returns the stored record.
func (r *UserPostgres) Create(ctx context.Context, u *model.User) (*model.User, error) {
	const q = `
		INSERT INTO users (id, name, email, role, obra_ids, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, name, email, role, obra_ids, created_at
	`
	obraIDs, err := marshalStrings(u.ObraIDs)
	if err != nil {
		return nil, err
	}
	row := r.db.QueryRowContext(ctx, q,
		u.ID,
		u.Name,
		u.Email,
		u.Role,
		obraIDs,
		u.CreatedAt,
	)
	return scanUser(row)
}

// FindByID fetches a single user by its ID.
func (r *UserPostgres) FindByID(ctx context.Context, id string) (*model.User, error) {
	const q = `
		SELECT id, name, email, role, obra_ids, created_at
		FROM users
		WHERE id = $1
	`
	return scanUser(r.db.QueryRowContext(ctx, q, id))
}

// List returns up to limit users.
func (r *UserPostgres) List(ctx context.Context, limit int) ([]model.User, error) {
	const q = `
		SELECT id, name, email, role, obra_ids, created_at
		FROM users
		ORDER BY created_at DESC, id DESC
		LIMIT $1
	`
	rows, err := r.db.QueryContext(ctx, q, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.User, 0)
	for rows.Next() {
		var (
			u       model.User
			obraIDs []byte
		)
		if err := rows.Scan(&u.ID, &u.Name, &u.Email, &u.Role, &obraIDs, &u.CreatedAt); err != nil {
			return nil, err
		}
		if u.ObraIDs, err = unmarshalStrings(obraIDs); err != nil {
			return nil, err
		}
		items = append(items, u)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// DeleteAll wipes the users collection.
func (r *UserPostgres) DeleteAll(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM users`)
	return err
}

func scanUser(row *sql.Row) (*model.User, error) {
	var (
		u       model.User
		obraIDs []byte
	)
	if err := row.Scan(&u.ID, &u.Name, &u.Email, &u.Role, &obraIDs, &u.CreatedAt); err != nil {
		return nil, err
	}
	var err error
	if u.ObraIDs, err = unmarshalStrings(obraIDs); err != nil {
		return nil, err
	}
	return &u, nil
}
