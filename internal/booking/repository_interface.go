package booking

import (
	"context"

	"github.com/mikededo/hubbl-sub000/internal/calendar"
)

// Repository stores both appointment kinds. A clientID of 0 in the list
// methods means every client.
type Repository interface {
	CreateEventAppointment(ctx context.Context, a EventAppointment) (*EventAppointment, error)
	FindEventAppointment(ctx context.Context, id, eventID int) (*EventAppointment, error)
	CountEventAppointment(ctx context.Context, id, eventID int) (int, error)
	CountActiveEventAppointments(ctx context.Context, eventID int) (int, error)
	EventAppointmentExists(ctx context.Context, clientID, eventID int) (bool, error)
	CancelEventAppointment(ctx context.Context, id int) error
	DeleteEventAppointment(ctx context.Context, id int) error
	ListEventAppointments(ctx context.Context, eventID, clientID int) ([]EventAppointment, error)
	ListEventAppointmentsByClient(ctx context.Context, clientID int) ([]EventAppointment, error)

	CreateCalendarAppointment(ctx context.Context, a CalendarAppointment) (*CalendarAppointment, error)
	FindCalendarAppointment(ctx context.Context, id, calendarID int) (*CalendarAppointment, error)
	CountCalendarAppointment(ctx context.Context, id, calendarID int) (int, error)
	MaxConcurrentCalendarAppointments(ctx context.Context, calendarID int, date calendar.Date, start, end calendar.TimeOfDay) (int, error)
	CalendarAppointmentExists(ctx context.Context, clientID int, date calendar.Date, start, end calendar.TimeOfDay) (bool, error)
	CancelCalendarAppointment(ctx context.Context, id int) error
	DeleteCalendarAppointment(ctx context.Context, id int) error
	ListCalendarAppointments(ctx context.Context, calendarID int, date *calendar.Date, clientID int) ([]CalendarAppointment, error)
	ListCalendarAppointmentsByClient(ctx context.Context, clientID int) ([]CalendarAppointment, error)
}
