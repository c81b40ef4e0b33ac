package decoratorrepo

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"

	"github.com/sakibulla/AS-11-Server/internal/domain"
)

var decoratorCols = []string{"id", "name", "email", "status", "earnings", "created_at"}

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()
	return repo, mockDB
}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)

	rows := pgxmock.NewRows([]string{"id", "created_at"}).AddRow("dec1", time.Now())
	mock.ExpectQuery("INSERT INTO decorators").
		WithArgs("Alice", "alice@example.com", "pending", 0.0).
		WillReturnRows(rows)

	created, err := repo.Create(context.Background(), &domain.Decorator{
		Name: "Alice", Email: "alice@example.com", Status: "pending", Earnings: 0,
	})
	assert.NoError(t, err)
	assert.Equal(t, "dec1", created.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_FindByID(t *testing.T) {
	repo, mock := NewMock(t)

	rows := pgxmock.NewRows(decoratorCols).
		AddRow("dec1", "Alice", "alice@example.com", "approved", 320.5, time.Now())
	mock.ExpectQuery("FROM decorators").WithArgs("dec1").WillReturnRows(rows)

	decorator, err := repo.FindByID(context.Background(), "dec1")
	assert.NoError(t, err)
	assert.Equal(t, 320.5, decorator.Earnings)

	mock.ExpectQuery("FROM decorators").WithArgs("nope").WillReturnError(pgx.ErrNoRows)
	decorator, err = repo.FindByID(context.Background(), "nope")
	assert.NoError(t, err)
	assert.Nil(t, decorator)
}

func TestRepository_FindAll(t *testing.T) {
	repo, mock := NewMock(t)

	rows := pgxmock.NewRows(decoratorCols).
		AddRow("dec1", "Alice", "alice@example.com", "pending", 0.0, time.Now()).
		AddRow("dec2", "Bob", "bob@example.com", "pending", 0.0, time.Now())
	mock.ExpectQuery("FROM decorators").WithArgs("pending").WillReturnRows(rows)

	decorators, err := repo.FindAll(context.Background(), "pending")
	assert.NoError(t, err)
	assert.Len(t, decorators, 2)
}

func TestRepository_UpdateStatus(t *testing.T) {
	repo, mock := NewMock(t)

	mock.ExpectExec("UPDATE decorators").WithArgs("approved", "dec1").
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	modified, err := repo.UpdateStatus(context.Background(), "dec1", "approved")
	assert.NoError(t, err)
	assert.True(t, modified)
}

func TestRepository_AddEarnings(t *testing.T) {
	repo, mock := NewMock(t)

	mock.ExpectExec("UPDATE decorators").WithArgs(150.0, "dec1").
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	assert.NoError(t, repo.AddEarnings(context.Background(), "dec1", 150.0))

	mock.ExpectExec("UPDATE decorators").WithArgs(150.0, "ghost").
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))
	assert.ErrorIs(t, repo.AddEarnings(context.Background(), "ghost", 150.0), pgx.ErrNoRows)

	mock.ExpectExec("UPDATE decorators").WithArgs(150.0, "dec1").
		WillReturnError(errors.New("db down"))
	assert.Error(t, repo.AddEarnings(context.Background(), "dec1", 150.0))
}

func TestRepository_Delete(t *testing.T) {
	repo, mock := NewMock(t)

	mock.ExpectExec("DELETE FROM decorators").WithArgs("dec1").
		WillReturnResult(pgxmock.NewResult("DELETE", 1))
	deleted, err := repo.Delete(context.Background(), "dec1")
	assert.NoError(t, err)
	assert.True(t, deleted)

	mock.ExpectExec("DELETE FROM decorators").WithArgs("nope").
		WillReturnResult(pgxmock.NewResult("DELETE", 0))
	deleted, err = repo.Delete(context.Background(), "nope")
	assert.NoError(t, err)
	assert.False(t, deleted)
}
