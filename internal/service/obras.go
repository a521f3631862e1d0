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

// ObraService defines the use cases for site records.
type ObraService interface {
	Create(ctx context.Context, in *model.ObraCreate) (*model.Obra, error)
	List(ctx context.Context) ([]model.Obra, error)
	Get(ctx context.Context, id string) (*model.Obra, error)
}

type obraService struct {
	repo repository.ObraRepository
}

// NewObraService constructs a new ObraService.
func NewObraService(repo repository.ObraRepository) ObraService {
	return &obraService{repo: repo}
}

func (s *obraService) Create(ctx context.Context, in *model.ObraCreate) (*model.Obra, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	o := &model.Obra{
		ID:              uuid.New().String(),
		Name:            in.Name,
		Location:        in.Location,
		Description:     in.Description,
		StartDate:       in.StartDate,
		ExpectedEndDate: in.ExpectedEndDate,
		Status:          model.ObraStatusActive,
		CreatedAt:       time.Now().UTC(),
	}
	return s.repo.Create(ctx, o)
}

func (s *obraService) List(ctx context.Context) ([]model.Obra, error) {
	return s.repo.List(ctx, UserListCap)
}

func (s *obraService) Get(ctx context.Context, id string) (*model.Obra, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	o, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return o, nil
}
