package repository

import (
	"context"

	"obradiary/internal/model"
)

// UserRepository defines data access for user documents.
type UserRepository interface {
	// Create inserts a new user record and returns the stored document.
	Create(ctx context.Context, u *model.User) (*model.User, error)

	// FindByID returns a user by its ID.
	FindByID(ctx context.Context, id string) (*model.User, error)

	// List returns up to limit users.
	List(ctx context.Context, limit int) ([]model.User, error)

	// DeleteAll wipes the collection. Used only by sample-data seeding.
	DeleteAll(ctx context.Context) error
}

// ObraRepository defines data access for site documents.
type ObraRepository interface {
	Create(ctx context.Context, o *model.Obra) (*model.Obra, error)
	FindByID(ctx context.Context, id string) (*model.Obra, error)
	List(ctx context.Context, limit int) ([]model.Obra, error)
	DeleteAll(ctx context.Context) error
}
