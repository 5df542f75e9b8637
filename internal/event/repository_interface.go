package event

import (
	"context"

	"github.com/mikededo/hubbl-sub000/internal/calendar"
)

type Repository interface {
	Create(ctx context.Context, e Event) (*Event, error)
	FindByID(ctx context.Context, id int) (*Event, error)
	Count(ctx context.Context, id int) (int, error)
	Update(ctx context.Context, e Event) error
	Delete(ctx context.Context, id int) error
	ListByCalendar(ctx context.Context, calendarID int, date *calendar.Date) ([]Event, error)
	// CountOverlapping counts events of the calendar on date whose time window
	// intersects [start, end), ignoring excludeID.
	CountOverlapping(ctx context.Context, calendarID int, date calendar.Date, start, end calendar.TimeOfDay, excludeID int) (int, error)
}
