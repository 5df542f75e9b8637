package booking

import (
	"context"
	"errors"

	"github.com/mikededo/hubbl-sub000/internal/apperr"
	"github.com/mikededo/hubbl-sub000/internal/calendar"
	"github.com/mikededo/hubbl-sub000/internal/event"
	"github.com/mikededo/hubbl-sub000/internal/gym"
	"github.com/mikededo/hubbl-sub000/internal/metrics"
	"github.com/mikededo/hubbl-sub000/internal/person"
)

const (
	opCreate = "create"
	opCancel = "cancel"
	opDelete = "delete"
)

// EventBooking is an event-bound appointment that passed validation together
// with what it was checked against.
type EventBooking struct {
	Appointment EventAppointment
	Event       *event.Event
	Client      *person.Client
}

type CalendarBooking struct {
	Appointment CalendarAppointment
	Zone        *gym.GymZone
	Client      *person.Client
}

// Validator runs the booking rules in order and stops at the first
// rejection. Rejections come back as Forbidden errors, lookup failures as
// Internal ones.
type Validator struct {
	repo     Repository
	events   event.Repository
	zones    gym.Repository
	resolver person.Resolver
	clock    calendar.Clock
}

func NewValidator(repo Repository, events event.Repository, zones gym.Repository, resolver person.Resolver, clock calendar.Clock) *Validator {
	return &Validator{repo: repo, events: events, zones: zones, resolver: resolver, clock: clock}
}

func reject(kind string, r *Rejection) error {
	metrics.RecordBookingRejection(kind, string(r.Rule))
	metrics.RecordAppointment(kind, "rejected")
	return apperr.Forbidden(r.Message)
}

func (v *Validator) lookupEvent(ctx context.Context, op string, eventID int) (*event.Event, error) {
	ev, err := v.events.FindByID(ctx, eventID)
	if errors.Is(err, event.ErrNotFound) {
		return nil, apperr.Forbidden("Event to " + op + " the appointment does not exist")
	}
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return ev, nil
}

func (v *Validator) lookupZone(ctx context.Context, op string, calendarID int) (*gym.GymZone, error) {
	zone, err := v.zones.FindGymZoneByCalendar(ctx, calendarID)
	if errors.Is(err, gym.ErrGymZoneNotFound) {
		return nil, apperr.Forbidden("Calendar to " + op + " the appointment does not exist")
	}
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return zone, nil
}

func (v *Validator) notPast(kind, op string, date calendar.Date, start calendar.TimeOfDay) error {
	r, err := NotPast(v.clock, date, start, op)
	if err != nil {
		return apperr.Internal(err)
	}
	if r != nil {
		return reject(kind, r)
	}
	return nil
}

// client resolves the booking client and runs the client rules.
func (v *Validator) client(ctx context.Context, kind string, clientID int, covidRequired bool, duplicate func(context.Context) (bool, error)) (*person.Client, error) {
	c, err := v.resolver.FindClient(ctx, clientID)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if r := PersonExists(c); r != nil {
		return nil, reject(kind, r)
	}
	if r := CovidPassport(covidRequired, c); r != nil {
		return nil, reject(kind, r)
	}

	exists, err := duplicate(ctx)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if r := Duplicate(kind, exists); r != nil {
		return nil, reject(kind, r)
	}
	return c, nil
}

func (v *Validator) ValidateEventCreate(ctx context.Context, eventID int, req EventAppointmentRequest) (*EventBooking, error) {
	ev, err := v.lookupEvent(ctx, opCreate, eventID)
	if err != nil {
		return nil, err
	}

	if r := TimeOrder(ev.StartTime, ev.EndTime); r != nil {
		return nil, reject(KindEvent, r)
	}
	if err := v.notPast(KindEvent, opCreate, ev.Date, ev.StartTime); err != nil {
		return nil, err
	}

	booked, err := v.repo.CountActiveEventAppointments(ctx, eventID)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if r := EventCapacity(booked, ev.Capacity); r != nil {
		return nil, reject(KindEvent, r)
	}

	c, err := v.client(ctx, KindEvent, req.Client, ev.CovidPassport, func(ctx context.Context) (bool, error) {
		return v.repo.EventAppointmentExists(ctx, req.Client, eventID)
	})
	if err != nil {
		return nil, err
	}

	return &EventBooking{
		Appointment: EventAppointment{
			EventID:   eventID,
			ClientID:  req.Client,
			StartTime: ev.StartTime,
			EndTime:   ev.EndTime,
		},
		Event:  ev,
		Client: c,
	}, nil
}

// ValidateEventChange checks that the appointment can still be cancelled or
// deleted. Event-bound changes are judged on the event's own date and time.
func (v *Validator) ValidateEventChange(ctx context.Context, op string, eventID, id int) (*EventBooking, error) {
	ev, err := v.lookupEvent(ctx, op, eventID)
	if err != nil {
		return nil, err
	}
	if err := v.notPast(KindEvent, op, ev.Date, ev.StartTime); err != nil {
		return nil, err
	}

	a, err := v.repo.FindEventAppointment(ctx, id, eventID)
	if errors.Is(err, ErrAppointmentNotFound) {
		return nil, apperr.NotFound("Event appointment to " + op + " not found.")
	}
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if op == opCancel && a.Cancelled {
		return nil, apperr.Forbidden(MessageAlreadyCancelled)
	}

	return &EventBooking{Appointment: *a, Event: ev}, nil
}

func (v *Validator) ValidateCalendarCreate(ctx context.Context, calendarID int, req CalendarAppointmentRequest) (*CalendarBooking, error) {
	zone, err := v.lookupZone(ctx, opCreate, calendarID)
	if err != nil {
		return nil, err
	}

	if r := TimeOrder(req.StartTime, req.EndTime); r != nil {
		return nil, reject(KindCalendar, r)
	}
	if err := v.notPast(KindCalendar, opCreate, req.Date, req.StartTime); err != nil {
		return nil, err
	}
	if r := BusinessHours(zone, req.StartTime, req.EndTime); r != nil {
		return nil, reject(KindCalendar, r)
	}

	concurrent, err := v.repo.MaxConcurrentCalendarAppointments(ctx, calendarID, req.Date, req.StartTime, req.EndTime)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if r := ZoneCapacity(concurrent, zone.Capacity); r != nil {
		return nil, reject(KindCalendar, r)
	}

	c, err := v.client(ctx, KindCalendar, req.Client, zone.CovidPassport, func(ctx context.Context) (bool, error) {
		return v.repo.CalendarAppointmentExists(ctx, req.Client, req.Date, req.StartTime, req.EndTime)
	})
	if err != nil {
		return nil, err
	}

	return &CalendarBooking{Appointment: req.ToEntity(calendarID), Zone: zone, Client: c}, nil
}

// ValidateCalendarChange checks that the appointment can still be cancelled
// or deleted, judged on the appointment's own date and time.
func (v *Validator) ValidateCalendarChange(ctx context.Context, op string, calendarID, id int) (*CalendarBooking, error) {
	zone, err := v.lookupZone(ctx, op, calendarID)
	if err != nil {
		return nil, err
	}

	a, err := v.repo.FindCalendarAppointment(ctx, id, calendarID)
	if errors.Is(err, ErrAppointmentNotFound) {
		return nil, apperr.NotFound("Calendar appointment to " + op + " not found.")
	}
	if err != nil {
		return nil, apperr.Internal(err)
	}

	if err := v.notPast(KindCalendar, op, a.Date, a.StartTime); err != nil {
		return nil, err
	}
	if op == opCancel && a.Cancelled {
		return nil, apperr.Forbidden(MessageAlreadyCancelled)
	}

	return &CalendarBooking{Appointment: *a, Zone: zone}, nil
}
