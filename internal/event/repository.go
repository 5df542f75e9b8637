package event

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/mikededo/hubbl-sub000/internal/calendar"
)

var ErrNotFound = errors.New("event not found")

const eventSelect = `
	SELECT e.id, e.calendar_id, e.trainer_id, e.name, e.description, e.capacity, e.covid_passport,
		e.mask_required, e.difficulty, e.date, e.start_time, e.end_time, e.created_at,
		(SELECT COUNT(*) FROM event_appointments a WHERE a.event_id = e.id AND NOT a.cancelled) AS appointment_count
	FROM events e`

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, e Event) (*Event, error) {
	query := `
		INSERT INTO events (calendar_id, trainer_id, name, description, capacity, covid_passport,
			mask_required, difficulty, date, start_time, end_time)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id, created_at`

	err := r.db.QueryRowxContext(ctx, query,
		e.CalendarID, e.TrainerID, e.Name, e.Description, e.Capacity, e.CovidPassport,
		e.MaskRequired, e.Difficulty, e.Date, e.StartTime, e.EndTime,
	).Scan(&e.ID, &e.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *repository) FindByID(ctx context.Context, id int) (*Event, error) {
	var e Event
	err := r.db.GetContext(ctx, &e, eventSelect+` WHERE e.id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *repository) Count(ctx context.Context, id int) (int, error) {
	var count int
	err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM events WHERE id = $1`, id)
	return count, err
}

func (r *repository) Update(ctx context.Context, e Event) error {
	query := `
		UPDATE events
		SET calendar_id = $1, trainer_id = $2, name = $3, description = $4, capacity = $5, covid_passport = $6,
			mask_required = $7, difficulty = $8, date = $9, start_time = $10, end_time = $11
		WHERE id = $12`

	res, err := r.db.ExecContext(ctx, query,
		e.CalendarID, e.TrainerID, e.Name, e.Description, e.Capacity, e.CovidPassport,
		e.MaskRequired, e.Difficulty, e.Date, e.StartTime, e.EndTime, e.ID)
	if err != nil {
		return err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *repository) Delete(ctx context.Context, id int) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM events WHERE id = $1`, id)
	if err != nil {
		return err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *repository) ListByCalendar(ctx context.Context, calendarID int, date *calendar.Date) ([]Event, error) {
	events := []Event{}
	if date == nil {
		err := r.db.SelectContext(ctx, &events, eventSelect+` WHERE e.calendar_id = $1 ORDER BY e.date, e.start_time`, calendarID)
		return events, err
	}
	err := r.db.SelectContext(ctx, &events,
		eventSelect+` WHERE e.calendar_id = $1 AND e.date = $2 ORDER BY e.start_time`, calendarID, *date)
	return events, err
}

func (r *repository) CountOverlapping(ctx context.Context, calendarID int, date calendar.Date, start, end calendar.TimeOfDay, excludeID int) (int, error) {
	query := `
		SELECT COUNT(*) FROM events
		WHERE calendar_id = $1 AND date = $2 AND start_time < $4 AND end_time > $3 AND id <> $5`

	var count int
	err := r.db.GetContext(ctx, &count, query, calendarID, date, start, end, excludeID)
	return count, err
}
