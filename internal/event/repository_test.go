package event

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mikededo/hubbl-sub000/internal/calendar"
)

var eventColumns = []string{"id", "calendar_id", "trainer_id", "name", "description", "capacity", "covid_passport",
	"mask_required", "difficulty", "date", "start_time", "end_time", "created_at", "appointment_count"}

func setupMock(t *testing.T) (Repository, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	sqlxDB := sqlx.NewDb(db, "sqlmock")
	return NewRepository(sqlxDB), mock, func() { sqlxDB.Close() }
}

func TestCreate(t *testing.T) {
	repo, mock, close := setupMock(t)
	defer close()
	now := time.Now()
	trainer := 7

	mock.ExpectQuery("INSERT INTO events").
		WithArgs(30, 7, "Spinning", "", 15, true, false, 3, "2030-01-15", "10:00:00", "11:00:00").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(12, now))

	e, err := repo.Create(context.Background(), Event{
		CalendarID:    30,
		TrainerID:     &trainer,
		Name:          "Spinning",
		Capacity:      15,
		CovidPassport: true,
		Difficulty:    3,
		Date:          calendar.Date{Year: 2030, Month: 1, Day: 15},
		StartTime:     "10:00:00",
		EndTime:       "11:00:00",
	})
	require.NoError(t, err)
	assert.Equal(t, 12, e.ID)
	assert.Equal(t, now, e.CreatedAt)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestFindByID(t *testing.T) {
	repo, mock, close := setupMock(t)
	defer close()

	t.Run("found", func(t *testing.T) {
		rows := sqlmock.NewRows(eventColumns).AddRow(12, 30, nil, "Yoga", "", 10, false, true, 1,
			time.Date(2030, 1, 15, 0, 0, 0, 0, time.UTC), "10:00:00", "11:00:00", time.Now(), 4)
		mock.ExpectQuery(regexp.QuoteMeta("FROM events e WHERE e.id = $1")).WithArgs(12).WillReturnRows(rows)

		e, err := repo.FindByID(context.Background(), 12)
		require.NoError(t, err)
		assert.Nil(t, e.TrainerID)
		assert.Equal(t, calendar.Date{Year: 2030, Month: 1, Day: 15}, e.Date)
		assert.Equal(t, 4, e.AppointmentCount)
	})

	t.Run("missing", func(t *testing.T) {
		mock.ExpectQuery("FROM events e").WithArgs(99).WillReturnRows(sqlmock.NewRows(eventColumns))

		_, err := repo.FindByID(context.Background(), 99)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdate_NotFound(t *testing.T) {
	repo, mock, close := setupMock(t)
	defer close()

	mock.ExpectExec("UPDATE events").WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Update(context.Background(), Event{ID: 5, Date: calendar.Date{Year: 2030, Month: 1, Day: 1}})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDelete(t *testing.T) {
	repo, mock, close := setupMock(t)
	defer close()

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM events WHERE id = $1")).WithArgs(5).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Delete(context.Background(), 5))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestListByCalendar(t *testing.T) {
	repo, mock, close := setupMock(t)
	defer close()

	mock.ExpectQuery(regexp.QuoteMeta("WHERE e.calendar_id = $1 ORDER BY")).WithArgs(30).
		WillReturnRows(sqlmock.NewRows(eventColumns))

	events, err := repo.ListByCalendar(context.Background(), 30, nil)
	require.NoError(t, err)
	assert.Empty(t, events)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE e.calendar_id = $1 AND e.date = $2")).WithArgs(30, "2030-01-15").
		WillReturnRows(sqlmock.NewRows(eventColumns))

	_, err = repo.ListByCalendar(context.Background(), 30, &calendar.Date{Year: 2030, Month: 1, Day: 15})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCountOverlapping(t *testing.T) {
	repo, mock, close := setupMock(t)
	defer close()

	mock.ExpectQuery(regexp.QuoteMeta("start_time < $4 AND end_time > $3 AND id <> $5")).
		WithArgs(30, "2030-01-15", "10:00:00", "11:00:00", 0).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	n, err := repo.CountOverlapping(context.Background(), 30, calendar.Date{Year: 2030, Month: 1, Day: 15}, "10:00:00", "11:00:00", 0)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	require.NoError(t, mock.ExpectationsWereMet())
}
