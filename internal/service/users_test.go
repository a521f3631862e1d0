package service

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"obradiary/internal/model"
	repoMocks "obradiary/internal/repository/mocks"
)

func TestUserServiceCreate(t *testing.T) {
	repo := new(repoMocks.MockUserRepository)
	svc := NewUserService(repo)

	t.Run("stamps id and timestamp", func(t *testing.T) {
		repo.On("Create", mock.Anything, mock.MatchedBy(func(u *model.User) bool {
			return u.ID != "" && !u.CreatedAt.IsZero() && u.ObraIDs != nil
		})).Return(&model.User{ID: "user_x"}, nil).Once()

		got, err := svc.Create(context.Background(), &model.UserCreate{
			Name:  "Joao Silva",
			Email: "joao@obra.test",
			Role:  model.RoleSiteForeman,
		})
		require.NoError(t, err)
		assert.Equal(t, "user_x", got.ID)
		repo.AssertExpectations(t)
	})

	t.Run("rejects unknown role", func(t *testing.T) {
		_, err := svc.Create(context.Background(), &model.UserCreate{
			Name:  "Joao Silva",
			Email: "joao@obra.test",
			Role:  "director",
		})

		var vErr *model.ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Equal(t, []string{"role"}, vErr.Fields)
	})
}

func TestUserServiceGet(t *testing.T) {
	repo := new(repoMocks.MockUserRepository)
	svc := NewUserService(repo)

	t.Run("found", func(t *testing.T) {
		repo.On("FindByID", mock.Anything, "user_001").
			Return(&model.User{ID: "user_001"}, nil).Once()

		got, err := svc.Get(context.Background(), "user_001")
		require.NoError(t, err)
		assert.Equal(t, "user_001", got.ID)
	})

	t.Run("miss maps to ErrNotFound", func(t *testing.T) {
		repo.On("FindByID", mock.Anything, "missing").Return(nil, sql.ErrNoRows).Once()

		_, err := svc.Get(context.Background(), "missing")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("other errors pass through", func(t *testing.T) {
		repo.On("FindByID", mock.Anything, "user_001").
			Return(nil, errors.New("connection reset")).Once()

		_, err := svc.Get(context.Background(), "user_001")
		assert.NotErrorIs(t, err, ErrNotFound)
	})

	t.Run("empty id", func(t *testing.T) {
		_, err := svc.Get(context.Background(), "")
		assert.ErrorIs(t, err, ErrIDRequired)
	})
}

func TestUserServiceList(t *testing.T) {
	repo := new(repoMocks.MockUserRepository)
	svc := NewUserService(repo)

	repo.On("List", mock.Anything, UserListCap).
		Return([]model.User{{ID: "user_002"}, {ID: "user_001"}}, nil).Once()

	users, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, users, 2)
	repo.AssertExpectations(t)
}

func TestObraServiceCreate(t *testing.T) {
	repo := new(repoMocks.MockObraRepository)
	svc := NewObraService(repo)

	t.Run("defaults status to active", func(t *testing.T) {
		repo.On("Create", mock.Anything, mock.MatchedBy(func(o *model.Obra) bool {
			return o.Status == model.ObraStatusActive && o.ID != ""
		})).Return(&model.Obra{ID: "obra_x", Status: model.ObraStatusActive}, nil).Once()

		got, err := svc.Create(context.Background(), &model.ObraCreate{
			Name:            "Vista Verde Residences",
			Location:        "Sao Paulo - SP",
			Description:     "Residential complex",
			StartDate:       time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
			ExpectedEndDate: time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC),
		})
		require.NoError(t, err)
		assert.Equal(t, model.ObraStatusActive, got.Status)
		repo.AssertExpectations(t)
	})

	t.Run("requires dates", func(t *testing.T) {
		_, err := svc.Create(context.Background(), &model.ObraCreate{
			Name:        "Vista Verde Residences",
			Location:    "Sao Paulo - SP",
			Description: "Residential complex",
		})

		var vErr *model.ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Contains(t, vErr.Fields, "start_date")
		assert.Contains(t, vErr.Fields, "expected_end_date")
	})
}

func TestObraServiceGet(t *testing.T) {
	repo := new(repoMocks.MockObraRepository)
	svc := NewObraService(repo)

	repo.On("FindByID", mock.Anything, "missing").Return(nil, sql.ErrNoRows).Once()

	_, err := svc.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}
