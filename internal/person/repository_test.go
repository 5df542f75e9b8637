package person

import (
	"context"
	"database/sql/driver"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mikededo/hubbl-sub000/internal/auth"
)

var personRowColumns = []string{"id", "first_name", "last_name", "email", "password_hash", "gender", "created_at"}

func setupMock(t *testing.T) (Repository, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	sqlxDB := sqlx.NewDb(db, "sqlmock")
	return NewRepository(sqlxDB), mock, func() { sqlxDB.Close() }
}

func TestFindByEmail(t *testing.T) {
	repo, mock, close := setupMock(t)
	defer close()
	ctx := context.Background()
	now := time.Now()

	mock.ExpectQuery("FROM persons p WHERE p.email = \\$1").
		WithArgs("ana@hubbl.app").
		WillReturnRows(sqlmock.NewRows(personRowColumns).AddRow(1, "Ana", "Puig", "ana@hubbl.app", "hash", "woman", now))

	p, err := repo.FindByEmail(ctx, "ana@hubbl.app")
	require.NoError(t, err)
	assert.Equal(t, 1, p.ID)
	assert.Equal(t, "Ana Puig", p.FullName())

	mock.ExpectQuery("FROM persons p WHERE p.email = \\$1").
		WithArgs("nobody@hubbl.app").
		WillReturnRows(sqlmock.NewRows(personRowColumns))

	_, err = repo.FindByEmail(ctx, "nobody@hubbl.app")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCountOwners(t *testing.T) {
	repo, mock, close := setupMock(t)
	defer close()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM owners WHERE person_id = $1")).
		WithArgs(4).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	count, err := repo.CountOwners(context.Background(), 4)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestRoleOf(t *testing.T) {
	repo, mock, close := setupMock(t)
	defer close()
	ctx := context.Background()

	mock.ExpectQuery("SELECT CASE").WithArgs(2).
		WillReturnRows(sqlmock.NewRows([]string{"case"}).AddRow("worker"))
	role, err := repo.RoleOf(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, auth.RoleWorker, role)

	mock.ExpectQuery("SELECT CASE").WithArgs(3).
		WillReturnRows(sqlmock.NewRows([]string{"case"}).AddRow(""))
	_, err = repo.RoleOf(ctx, 3)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCreateClient(t *testing.T) {
	repo, mock, close := setupMock(t)
	defer close()
	now := time.Now()

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO persons").
		WithArgs("Joan", "Serra", "joan@hubbl.app", "hash", "man").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(10, now))
	mock.ExpectExec("INSERT INTO clients").
		WithArgs(10, 2, true).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	c, err := repo.CreateClient(context.Background(), Client{
		Person:        Person{FirstName: "Joan", LastName: "Serra", Email: "joan@hubbl.app", PasswordHash: "hash", Gender: "man"},
		GymID:         2,
		CovidPassport: true,
	})
	require.NoError(t, err)
	assert.Equal(t, 10, c.ID)
	assert.Equal(t, now, c.CreatedAt)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateClient_RollsBack(t *testing.T) {
	repo, mock, close := setupMock(t)
	defer close()

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO persons").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(11, time.Now()))
	mock.ExpectExec("INSERT INTO clients").WillReturnError(errors.New("fk violation"))
	mock.ExpectRollback()

	_, err := repo.CreateClient(context.Background(), Client{GymID: 99})
	assert.Error(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestFindWorker_ScansPermissions(t *testing.T) {
	repo, mock, close := setupMock(t)
	defer close()

	cols := append(append([]string{}, personRowColumns...), "gym_id")
	cols = append(cols, permissionColumns...)

	values := []any{5, "Marc", "Vila", "marc@hubbl.app", "hash", "man", time.Now(), 3}
	perms := Permissions{CreateEvents: true, UpdateClients: true}
	values = append(values, perms.values()...)

	mock.ExpectQuery("FROM persons p JOIN workers w").
		WithArgs(5).
		WillReturnRows(sqlmock.NewRows(cols).AddRow(toDriver(values)...))

	w, err := repo.FindWorker(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, 3, w.GymID)
	assert.True(t, w.Can(CreateEvents))
	assert.True(t, w.Can(UpdateClients))
	assert.False(t, w.Can(DeleteEvents))
}

func TestUpdateWorker(t *testing.T) {
	repo, mock, close := setupMock(t)
	defer close()

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE persons SET").
		WithArgs("Marc", "Vila", "marc@hubbl.app", "man", 5).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE workers SET update_virtual_gyms = \\$2").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.UpdateWorker(context.Background(), Worker{
		Person:      Person{ID: 5, FirstName: "Marc", LastName: "Vila", Email: "marc@hubbl.app", Gender: "man"},
		Permissions: Permissions{CreateEvents: true},
	})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateClient_MissingPerson(t *testing.T) {
	repo, mock, close := setupMock(t)
	defer close()

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE persons SET").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	err := repo.UpdateClient(context.Background(), Client{Person: Person{ID: 77}})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDelete(t *testing.T) {
	repo, mock, close := setupMock(t)
	defer close()

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM persons WHERE id = $1")).
		WithArgs(8).
		WillReturnResult(sqlmock.NewResult(0, 1))
	require.NoError(t, repo.Delete(context.Background(), 8))

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM persons WHERE id = $1")).
		WithArgs(9).
		WillReturnResult(sqlmock.NewResult(0, 0))
	assert.ErrorIs(t, repo.Delete(context.Background(), 9), ErrNotFound)
}

func TestCountClients_ScopedToGym(t *testing.T) {
	repo, mock, close := setupMock(t)
	defer close()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM clients WHERE person_id = $1 AND ($2 = 0 OR gym_id = $2)")).
		WithArgs(6, 2).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	count, err := repo.CountClients(context.Background(), 6, 2)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func toDriver(values []any) []driver.Value {
	out := make([]driver.Value, len(values))
	for i, v := range values {
		out[i] = v
	}
	return out
}
