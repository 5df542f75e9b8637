package booking

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/mikededo/hubbl-sub000/internal/calendar"
)

var (
	ErrAppointmentNotFound            = errors.New("appointment not found")
	ErrAppointmentNotFoundOrCancelled = errors.New("appointment not found or already cancelled")
)

const (
	eventAppointmentColumns    = `id, event_id, client_id, start_time, end_time, cancelled, created_at`
	calendarAppointmentColumns = `id, calendar_id, client_id, date, start_time, end_time, cancelled, created_at`
)

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) CreateEventAppointment(ctx context.Context, a EventAppointment) (*EventAppointment, error) {
	query := `
		INSERT INTO event_appointments (event_id, client_id, start_time, end_time)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + eventAppointmentColumns

	var created EventAppointment
	if err := r.db.GetContext(ctx, &created, query, a.EventID, a.ClientID, a.StartTime, a.EndTime); err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *repository) FindEventAppointment(ctx context.Context, id, eventID int) (*EventAppointment, error) {
	query := `SELECT ` + eventAppointmentColumns + ` FROM event_appointments WHERE id = $1 AND event_id = $2`

	var a EventAppointment
	err := r.db.GetContext(ctx, &a, query, id, eventID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrAppointmentNotFound
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *repository) CountEventAppointment(ctx context.Context, id, eventID int) (int, error) {
	var count int
	err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM event_appointments WHERE id = $1 AND event_id = $2`, id, eventID)
	return count, err
}

func (r *repository) CountActiveEventAppointments(ctx context.Context, eventID int) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM event_appointments
		WHERE event_id = $1 AND cancelled = false`

	var count int
	err := r.db.GetContext(ctx, &count, query, eventID)
	return count, err
}

func (r *repository) EventAppointmentExists(ctx context.Context, clientID, eventID int) (bool, error) {
	query := `
		SELECT EXISTS(
			SELECT 1 FROM event_appointments
			WHERE client_id = $1 AND event_id = $2 AND cancelled = false
		)`

	var exists bool
	err := r.db.GetContext(ctx, &exists, query, clientID, eventID)
	return exists, err
}

func (r *repository) CancelEventAppointment(ctx context.Context, id int) error {
	return r.cancel(ctx, `UPDATE event_appointments SET cancelled = true WHERE id = $1 AND cancelled = false`, id)
}

func (r *repository) DeleteEventAppointment(ctx context.Context, id int) error {
	return r.delete(ctx, `DELETE FROM event_appointments WHERE id = $1`, id)
}

func (r *repository) ListEventAppointments(ctx context.Context, eventID, clientID int) ([]EventAppointment, error) {
	query := `
		SELECT ` + eventAppointmentColumns + `
		FROM event_appointments
		WHERE event_id = $1 AND ($2 = 0 OR client_id = $2)
		ORDER BY created_at`

	appointments := []EventAppointment{}
	err := r.db.SelectContext(ctx, &appointments, query, eventID, clientID)
	return appointments, err
}

func (r *repository) ListEventAppointmentsByClient(ctx context.Context, clientID int) ([]EventAppointment, error) {
	query := `
		SELECT a.id, a.event_id, a.client_id, a.start_time, a.end_time, a.cancelled, a.created_at
		FROM event_appointments a
		JOIN events e ON e.id = a.event_id
		WHERE a.client_id = $1
		ORDER BY e.date DESC, a.start_time DESC`

	appointments := []EventAppointment{}
	err := r.db.SelectContext(ctx, &appointments, query, clientID)
	return appointments, err
}

func (r *repository) CreateCalendarAppointment(ctx context.Context, a CalendarAppointment) (*CalendarAppointment, error) {
	query := `
		INSERT INTO calendar_appointments (calendar_id, client_id, date, start_time, end_time)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + calendarAppointmentColumns

	var created CalendarAppointment
	if err := r.db.GetContext(ctx, &created, query, a.CalendarID, a.ClientID, a.Date, a.StartTime, a.EndTime); err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *repository) FindCalendarAppointment(ctx context.Context, id, calendarID int) (*CalendarAppointment, error) {
	query := `SELECT ` + calendarAppointmentColumns + ` FROM calendar_appointments WHERE id = $1 AND calendar_id = $2`

	var a CalendarAppointment
	err := r.db.GetContext(ctx, &a, query, id, calendarID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrAppointmentNotFound
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *repository) CountCalendarAppointment(ctx context.Context, id, calendarID int) (int, error) {
	var count int
	err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM calendar_appointments WHERE id = $1 AND calendar_id = $2`, id, calendarID)
	return count, err
}

// MaxConcurrentCalendarAppointments returns the peak number of overlapping
// non-cancelled appointments inside [start, end). The peak is reached either
// at start or at the start of an appointment beginning inside the window.
func (r *repository) MaxConcurrentCalendarAppointments(ctx context.Context, calendarID int, date calendar.Date, start, end calendar.TimeOfDay) (int, error) {
	query := `
		SELECT COALESCE(MAX(concurrent), 0) FROM (
			SELECT (
				SELECT COUNT(*) FROM calendar_appointments a
				WHERE a.calendar_id = $1 AND a.date = $2 AND a.cancelled = false
					AND a.start_time <= p.at AND a.end_time > p.at
			) AS concurrent
			FROM (
				SELECT CAST($3 AS TIME) AS at
				UNION
				SELECT start_time FROM calendar_appointments
				WHERE calendar_id = $1 AND date = $2 AND cancelled = false
					AND start_time > $3 AND start_time < $4
			) p
		) peaks`

	var peak int
	err := r.db.GetContext(ctx, &peak, query, calendarID, date, start, end)
	return peak, err
}

func (r *repository) CalendarAppointmentExists(ctx context.Context, clientID int, date calendar.Date, start, end calendar.TimeOfDay) (bool, error) {
	query := `
		SELECT EXISTS(
			SELECT 1 FROM calendar_appointments
			WHERE client_id = $1 AND date = $2 AND start_time = $3 AND end_time = $4 AND cancelled = false
		)`

	var exists bool
	err := r.db.GetContext(ctx, &exists, query, clientID, date, start, end)
	return exists, err
}

func (r *repository) CancelCalendarAppointment(ctx context.Context, id int) error {
	return r.cancel(ctx, `UPDATE calendar_appointments SET cancelled = true WHERE id = $1 AND cancelled = false`, id)
}

func (r *repository) DeleteCalendarAppointment(ctx context.Context, id int) error {
	return r.delete(ctx, `DELETE FROM calendar_appointments WHERE id = $1`, id)
}

func (r *repository) ListCalendarAppointments(ctx context.Context, calendarID int, date *calendar.Date, clientID int) ([]CalendarAppointment, error) {
	appointments := []CalendarAppointment{}
	if date == nil {
		query := `
			SELECT ` + calendarAppointmentColumns + `
			FROM calendar_appointments
			WHERE calendar_id = $1 AND ($2 = 0 OR client_id = $2)
			ORDER BY date, start_time`
		err := r.db.SelectContext(ctx, &appointments, query, calendarID, clientID)
		return appointments, err
	}

	query := `
		SELECT ` + calendarAppointmentColumns + `
		FROM calendar_appointments
		WHERE calendar_id = $1 AND ($2 = 0 OR client_id = $2) AND date = $3
		ORDER BY start_time`
	err := r.db.SelectContext(ctx, &appointments, query, calendarID, clientID, *date)
	return appointments, err
}

func (r *repository) ListCalendarAppointmentsByClient(ctx context.Context, clientID int) ([]CalendarAppointment, error) {
	query := `
		SELECT ` + calendarAppointmentColumns + `
		FROM calendar_appointments
		WHERE client_id = $1
		ORDER BY date DESC, start_time DESC`

	appointments := []CalendarAppointment{}
	err := r.db.SelectContext(ctx, &appointments, query, clientID)
	return appointments, err
}

func (r *repository) cancel(ctx context.Context, query string, id int) error {
	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrAppointmentNotFoundOrCancelled
	}
	return nil
}

func (r *repository) delete(ctx context.Context, query string, id int) error {
	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrAppointmentNotFound
	}
	return nil
}
