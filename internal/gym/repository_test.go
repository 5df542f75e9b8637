package gym

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var zoneColumns = []string{"id", "virtual_gym_id", "calendar_id", "name", "description", "is_class_type", "capacity",
	"mask_required", "covid_passport", "open_time", "close_time", "created_at"}

func setupMock(t *testing.T) (Repository, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	sqlxDB := sqlx.NewDb(db, "sqlmock")
	return NewRepository(sqlxDB), mock, func() { sqlxDB.Close() }
}

func TestCreateGymZone_CreatesCalendar(t *testing.T) {
	repo, mock, close := setupMock(t)
	defer close()
	now := time.Now()

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO calendars DEFAULT VALUES RETURNING id")).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(30))
	mock.ExpectQuery("INSERT INTO gym_zones").
		WithArgs(2, 30, "Spinning room", "", true, 20, false, true, "06:00:00", "23:00:00").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(5, now))
	mock.ExpectCommit()

	z, err := repo.CreateGymZone(context.Background(), GymZone{
		VirtualGymID:  2,
		Name:          "Spinning room",
		IsClassType:   true,
		Capacity:      20,
		CovidPassport: true,
		OpenTime:      "06:00:00",
		CloseTime:     "23:00:00",
	})
	require.NoError(t, err)
	assert.Equal(t, 5, z.ID)
	assert.Equal(t, 30, z.CalendarID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateGymZone_RollsBack(t *testing.T) {
	repo, mock, close := setupMock(t)
	defer close()

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO calendars").WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(31))
	mock.ExpectQuery("INSERT INTO gym_zones").WillReturnError(errors.New("check constraint"))
	mock.ExpectRollback()

	_, err := repo.CreateGymZone(context.Background(), GymZone{VirtualGymID: 2})
	assert.Error(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestFindGymZoneByCalendar(t *testing.T) {
	repo, mock, close := setupMock(t)
	defer close()

	mock.ExpectQuery("FROM gym_zones z WHERE z.calendar_id = \\$1").
		WithArgs(30).
		WillReturnRows(sqlmock.NewRows(zoneColumns).
			AddRow(5, 2, 30, "Spinning room", "", true, 20, false, true, "06:00:00", "23:00:00", time.Now()))

	z, err := repo.FindGymZoneByCalendar(context.Background(), 30)
	require.NoError(t, err)
	assert.Equal(t, 5, z.ID)
	assert.Equal(t, "06:00:00", z.OpenTime.String())
	assert.True(t, z.CovidPassport)

	mock.ExpectQuery("FROM gym_zones z WHERE z.calendar_id = \\$1").
		WithArgs(99).
		WillReturnRows(sqlmock.NewRows(zoneColumns))

	_, err = repo.FindGymZoneByCalendar(context.Background(), 99)
	assert.ErrorIs(t, err, ErrGymZoneNotFound)
}

func TestCountVirtualGyms(t *testing.T) {
	repo, mock, close := setupMock(t)
	defer close()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM virtual_gyms WHERE id = $1 AND gym_id = $2")).
		WithArgs(3, 1).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	count, err := repo.CountVirtualGyms(context.Background(), 3, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestUpdateVirtualGym_NotFound(t *testing.T) {
	repo, mock, close := setupMock(t)
	defer close()

	mock.ExpectExec("UPDATE virtual_gyms").WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateVirtualGym(context.Background(), VirtualGym{ID: 3, OpenTime: "07:00:00", CloseTime: "22:00:00"})
	assert.ErrorIs(t, err, ErrVirtualGymNotFound)
}

func TestDeleteGymZone_DropsCalendar(t *testing.T) {
	repo, mock, close := setupMock(t)
	defer close()

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM calendars WHERE id IN (SELECT calendar_id FROM gym_zones WHERE id = $1)")).
		WithArgs(5).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.DeleteGymZone(context.Background(), 5))
}

func TestListVirtualGyms_Empty(t *testing.T) {
	repo, mock, close := setupMock(t)
	defer close()

	mock.ExpectQuery("FROM virtual_gyms WHERE gym_id = \\$1").
		WithArgs(1).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	gyms, err := repo.ListVirtualGyms(context.Background(), 1)
	require.NoError(t, err)
	assert.NotNil(t, gyms)
	assert.Empty(t, gyms)
}
