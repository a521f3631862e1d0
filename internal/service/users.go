package service

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"

	"obradiary/internal/model"
	"obradiary/internal/repository"
)

// UserService defines the use cases for user records. Users are created
// once and never updated or deleted.
type UserService interface {
	Create(ctx context.Context, in *model.UserCreate) (*model.User, error)
	List(ctx context.Context) ([]model.User, error)
	Get(ctx context.Context, id string) (*model.User, error)
}

type userService struct {
	repo repository.UserRepository
}

// NewUserService constructs a new UserService.
func NewUserService(repo repository.UserRepository) UserService {
	return &userService{repo: repo}
}

func (s *userService) Create(ctx context.Context, in *model.UserCreate) (*model.User, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	obraIDs := in.ObraIDs
	if obraIDs == nil {
		obraIDs = []string{}
	}
	u := &model.User{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Email:     in.Email,
		Role:      in.Role,
		ObraIDs:   obraIDs,
		CreatedAt: time.Now().UTC(),
	}
	return s.repo.Create(ctx, u)
}

func (s *userService) List(ctx context.Context) ([]model.User, error) {
	return s.repo.List(ctx, UserListCap)
}

func (s *userService) Get(ctx context.Context, id string) (*model.User, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return u, nil
}
