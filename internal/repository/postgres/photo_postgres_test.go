package postgres

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestPhotoPostgres_AllIDs(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewPhotoPostgres(db)

	rows := sqlmock.NewRows([]string{"id"}).
		AddRow("photo_001").
		AddRow("photo_002")

	mock.ExpectQuery("SELECT id FROM photos").WillReturnRows(rows)

	ids, err := repo.AllIDs(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, []string{"photo_001", "photo_002"}, ids)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPhotoPostgres_AllIDsEmpty(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewPhotoPostgres(db)

	mock.ExpectQuery("SELECT id FROM photos").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	ids, err := repo.AllIDs(context.Background())

	assert.NoError(t, err)
	assert.NotNil(t, ids)
	assert.Empty(t, ids)
	assert.NoError(t, mock.ExpectationsWereMet())
}
