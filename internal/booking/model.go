package booking

import (
	"time"

	"github.com/mikededo/hubbl-sub000/internal/calendar"
)

const (
	KindEvent    = "event"
	KindCalendar = "calendar"
)

type EventAppointment struct {
	ID        int                `db:"id" json:"id"`
	EventID   int                `db:"event_id" json:"event"`
	ClientID  int                `db:"client_id" json:"client"`
	StartTime calendar.TimeOfDay `db:"start_time" json:"startTime"`
	EndTime   calendar.TimeOfDay `db:"end_time" json:"endTime"`
	Cancelled bool               `db:"cancelled" json:"cancelled"`
	CreatedAt time.Time          `db:"created_at" json:"createdAt"`
}

type CalendarAppointment struct {
	ID         int                `db:"id" json:"id"`
	CalendarID int                `db:"calendar_id" json:"calendar"`
	ClientID   int                `db:"client_id" json:"client"`
	Date       calendar.Date      `db:"date" json:"date"`
	StartTime  calendar.TimeOfDay `db:"start_time" json:"startTime"`
	EndTime    calendar.TimeOfDay `db:"end_time" json:"endTime"`
	Cancelled  bool               `db:"cancelled" json:"cancelled"`
	CreatedAt  time.Time          `db:"created_at" json:"createdAt"`
}

// EventAppointmentRequest books a place in an event. The times, when sent,
// are ignored: the appointment always takes the event's own times.
type EventAppointmentRequest struct {
	Client    int                `json:"client" validate:"required,gt=0"`
	StartTime calendar.TimeOfDay `json:"startTime,omitempty" validate:"omitempty,timeofday"`
	EndTime   calendar.TimeOfDay `json:"endTime,omitempty" validate:"omitempty,timeofday"`
}

type CalendarAppointmentRequest struct {
	Client    int                `json:"client" validate:"required,gt=0"`
	Date      calendar.Date      `json:"date" validate:"required"`
	StartTime calendar.TimeOfDay `json:"startTime" validate:"required,timeofday"`
	EndTime   calendar.TimeOfDay `json:"endTime" validate:"required,timeofday"`
}

func (r CalendarAppointmentRequest) ToEntity(calendarID int) CalendarAppointment {
	return CalendarAppointment{
		CalendarID: calendarID,
		ClientID:   r.Client,
		Date:       r.Date,
		StartTime:  r.StartTime,
		EndTime:    r.EndTime,
	}
}

// ClientAppointments groups every appointment held by one client.
type ClientAppointments struct {
	Events    []EventAppointment    `json:"events"`
	Calendars []CalendarAppointment `json:"calendars"`
}

// Message is the payload published for appointment domain events.
type Message struct {
	Kind          string             `json:"kind"`
	AppointmentID int                `json:"appointmentId"`
	ClientID      int                `json:"clientId"`
	EventID       int                `json:"eventId,omitempty"`
	CalendarID    int                `json:"calendarId,omitempty"`
	Date          calendar.Date      `json:"date"`
	StartTime     calendar.TimeOfDay `json:"startTime"`
	EndTime       calendar.TimeOfDay `json:"endTime"`
	OccurredAt    time.Time          `json:"occurredAt"`
}
