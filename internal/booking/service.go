package booking

import (
	"context"
	"errors"
	"time"

	"github.com/mikededo/hubbl-sub000/internal/apperr"
	"github.com/mikededo/hubbl-sub000/internal/auth"
	"github.com/mikededo/hubbl-sub000/internal/authz"
	"github.com/mikededo/hubbl-sub000/internal/calendar"
	"github.com/mikededo/hubbl-sub000/internal/event"
	"github.com/mikededo/hubbl-sub000/internal/gym"
	"github.com/mikededo/hubbl-sub000/internal/logger"
	"github.com/mikededo/hubbl-sub000/internal/metrics"
	"github.com/mikededo/hubbl-sub000/internal/mq"
	"github.com/mikededo/hubbl-sub000/internal/notify"
	"github.com/mikededo/hubbl-sub000/internal/person"
)

const (
	RoutingCreated   = "appointment.created"
	RoutingCancelled = "appointment.cancelled"
	RoutingDeleted   = "appointment.deleted"

	MessageEventNotFound    = "Event does not exist."
	MessageCalendarNotFound = "Calendar does not exist."
)

var (
	opCreateEventAppointment = authz.Operation{Controller: "EventAppointmentController", Action: opCreate, Entity: "event appointment", Permission: person.CreateEventAppointments}
	opCancelEventAppointment = authz.Operation{Controller: "EventAppointmentController", Action: opCancel, Entity: "event appointment", Permission: person.UpdateEventAppointments}
	opDeleteEventAppointment = authz.Operation{Controller: "EventAppointmentController", Action: opDelete, Entity: "event appointment", Permission: person.DeleteEventAppointments}

	opCreateCalendarAppointment = authz.Operation{Controller: "CalendarAppointmentController", Action: opCreate, Entity: "calendar appointment", Permission: person.CreateCalendarAppointments}
	opCancelCalendarAppointment = authz.Operation{Controller: "CalendarAppointmentController", Action: opCancel, Entity: "calendar appointment", Permission: person.UpdateCalendarAppointments}
	opDeleteCalendarAppointment = authz.Operation{Controller: "CalendarAppointmentController", Action: opDelete, Entity: "calendar appointment", Permission: person.DeleteCalendarAppointments}
)

// Notifier tells clients about their appointments.
type Notifier interface {
	AppointmentConfirmed(ctx context.Context, a notify.Appointment) error
	AppointmentCancelled(ctx context.Context, a notify.Appointment) error
}

type Service interface {
	CreateEventAppointment(ctx context.Context, actor authz.Actor, eventID int, req EventAppointmentRequest) (*EventAppointment, error)
	CancelEventAppointment(ctx context.Context, actor authz.Actor, eventID, id int) error
	DeleteEventAppointment(ctx context.Context, actor authz.Actor, eventID, id int) error
	ListEventAppointments(ctx context.Context, actor authz.Actor, eventID int) ([]EventAppointment, error)

	CreateCalendarAppointment(ctx context.Context, actor authz.Actor, calendarID int, req CalendarAppointmentRequest) (*CalendarAppointment, error)
	CancelCalendarAppointment(ctx context.Context, actor authz.Actor, calendarID, id int) error
	DeleteCalendarAppointment(ctx context.Context, actor authz.Actor, calendarID, id int) error
	ListCalendarAppointments(ctx context.Context, actor authz.Actor, calendarID int, date *calendar.Date) ([]CalendarAppointment, error)

	ClientAppointments(ctx context.Context, actor authz.Actor) (*ClientAppointments, error)
}

type service struct {
	repo      Repository
	validator *Validator
	events    event.Repository
	zones     gym.Repository
	resolver  person.Resolver
	notifier  Notifier
	publisher mq.Publisher
}

func NewService(
	repo Repository,
	validator *Validator,
	events event.Repository,
	zones gym.Repository,
	resolver person.Resolver,
	notifier Notifier,
	publisher mq.Publisher,
) Service {
	return &service{
		repo:      repo,
		validator: validator,
		events:    events,
		zones:     zones,
		resolver:  resolver,
		notifier:  notifier,
		publisher: publisher,
	}
}

// The acting role picks the authorizer variant. Clients may only touch
// appointments of their own.

func create[T any](ctx context.Context, r person.Resolver, actor authz.Actor, op authz.Operation, clientID int, save func(context.Context) (T, error)) (T, error) {
	if actor.Role == auth.RoleClient {
		return authz.CreatedByClient(ctx, r, actor, op, clientID, save)
	}
	return authz.CreatedByOwnerOrWorker(ctx, r, actor, op, save)
}

func update(ctx context.Context, r person.Resolver, actor authz.Actor, op authz.Operation, clientID int, m authz.Mutation) error {
	if actor.Role == auth.RoleClient {
		return authz.UpdatedByClient(ctx, r, actor, op, clientID, m)
	}
	return authz.UpdatedByOwnerOrWorker(ctx, r, actor, op, m)
}

func remove(ctx context.Context, r person.Resolver, actor authz.Actor, op authz.Operation, clientID int, m authz.Mutation) error {
	if actor.Role == auth.RoleClient {
		return authz.DeletedByClient(ctx, r, actor, op, clientID, m)
	}
	return authz.DeletedByOwnerOrWorker(ctx, r, actor, op, m)
}

func cancelled(err error) error {
	if errors.Is(err, ErrAppointmentNotFoundOrCancelled) {
		return apperr.Forbidden(MessageAlreadyCancelled)
	}
	return err
}

func (s *service) CreateEventAppointment(ctx context.Context, actor authz.Actor, eventID int, req EventAppointmentRequest) (*EventAppointment, error) {
	b, err := s.validator.ValidateEventCreate(ctx, eventID, req)
	if err != nil {
		return nil, err
	}

	a, err := create(ctx, s.resolver, actor, opCreateEventAppointment, b.Appointment.ClientID, func(ctx context.Context) (*EventAppointment, error) {
		return s.repo.CreateEventAppointment(ctx, b.Appointment)
	})
	if err != nil {
		return nil, err
	}

	metrics.RecordAppointment(KindEvent, "created")
	s.confirm(ctx, b.Client, b.Event.Name, b.Event.Date, a.StartTime, a.EndTime)
	s.publish(ctx, RoutingCreated, Message{
		Kind: KindEvent, AppointmentID: a.ID, ClientID: a.ClientID, EventID: eventID,
		Date: b.Event.Date, StartTime: a.StartTime, EndTime: a.EndTime,
	})
	return a, nil
}

func (s *service) CancelEventAppointment(ctx context.Context, actor authz.Actor, eventID, id int) error {
	b, err := s.validator.ValidateEventChange(ctx, opCancel, eventID, id)
	if err != nil {
		return err
	}

	err = update(ctx, s.resolver, actor, opCancelEventAppointment, b.Appointment.ClientID, authz.Mutation{
		Count: func(ctx context.Context) (int, error) { return s.repo.CountEventAppointment(ctx, id, eventID) },
		Apply: func(ctx context.Context) error { return cancelled(s.repo.CancelEventAppointment(ctx, id)) },
	})
	if err != nil {
		return err
	}

	a := b.Appointment
	metrics.RecordAppointment(KindEvent, "cancelled")
	s.notifyCancelled(ctx, a.ClientID, b.Event.Name, b.Event.Date, a.StartTime, a.EndTime)
	s.publish(ctx, RoutingCancelled, Message{
		Kind: KindEvent, AppointmentID: id, ClientID: a.ClientID, EventID: eventID,
		Date: b.Event.Date, StartTime: a.StartTime, EndTime: a.EndTime,
	})
	return nil
}

func (s *service) DeleteEventAppointment(ctx context.Context, actor authz.Actor, eventID, id int) error {
	b, err := s.validator.ValidateEventChange(ctx, opDelete, eventID, id)
	if err != nil {
		return err
	}

	err = remove(ctx, s.resolver, actor, opDeleteEventAppointment, b.Appointment.ClientID, authz.Mutation{
		Count: func(ctx context.Context) (int, error) { return s.repo.CountEventAppointment(ctx, id, eventID) },
		Apply: func(ctx context.Context) error { return s.repo.DeleteEventAppointment(ctx, id) },
	})
	if err != nil {
		return err
	}

	a := b.Appointment
	metrics.RecordAppointment(KindEvent, "deleted")
	s.publish(ctx, RoutingDeleted, Message{
		Kind: KindEvent, AppointmentID: id, ClientID: a.ClientID, EventID: eventID,
		Date: b.Event.Date, StartTime: a.StartTime, EndTime: a.EndTime,
	})
	return nil
}

func (s *service) ListEventAppointments(ctx context.Context, actor authz.Actor, eventID int) ([]EventAppointment, error) {
	_, err := s.events.FindByID(ctx, eventID)
	if errors.Is(err, event.ErrNotFound) {
		return nil, apperr.NotFound(MessageEventNotFound)
	}
	if err != nil {
		return nil, apperr.Internal(err)
	}

	appointments, err := s.repo.ListEventAppointments(ctx, eventID, ownScope(actor))
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return appointments, nil
}

func (s *service) CreateCalendarAppointment(ctx context.Context, actor authz.Actor, calendarID int, req CalendarAppointmentRequest) (*CalendarAppointment, error) {
	b, err := s.validator.ValidateCalendarCreate(ctx, calendarID, req)
	if err != nil {
		return nil, err
	}

	a, err := create(ctx, s.resolver, actor, opCreateCalendarAppointment, b.Appointment.ClientID, func(ctx context.Context) (*CalendarAppointment, error) {
		return s.repo.CreateCalendarAppointment(ctx, b.Appointment)
	})
	if err != nil {
		return nil, err
	}

	metrics.RecordAppointment(KindCalendar, "created")
	s.confirm(ctx, b.Client, b.Zone.Name, a.Date, a.StartTime, a.EndTime)
	s.publish(ctx, RoutingCreated, Message{
		Kind: KindCalendar, AppointmentID: a.ID, ClientID: a.ClientID, CalendarID: calendarID,
		Date: a.Date, StartTime: a.StartTime, EndTime: a.EndTime,
	})
	return a, nil
}

func (s *service) CancelCalendarAppointment(ctx context.Context, actor authz.Actor, calendarID, id int) error {
	b, err := s.validator.ValidateCalendarChange(ctx, opCancel, calendarID, id)
	if err != nil {
		return err
	}

	err = update(ctx, s.resolver, actor, opCancelCalendarAppointment, b.Appointment.ClientID, authz.Mutation{
		Count: func(ctx context.Context) (int, error) { return s.repo.CountCalendarAppointment(ctx, id, calendarID) },
		Apply: func(ctx context.Context) error { return cancelled(s.repo.CancelCalendarAppointment(ctx, id)) },
	})
	if err != nil {
		return err
	}

	a := b.Appointment
	metrics.RecordAppointment(KindCalendar, "cancelled")
	s.notifyCancelled(ctx, a.ClientID, b.Zone.Name, a.Date, a.StartTime, a.EndTime)
	s.publish(ctx, RoutingCancelled, Message{
		Kind: KindCalendar, AppointmentID: id, ClientID: a.ClientID, CalendarID: calendarID,
		Date: a.Date, StartTime: a.StartTime, EndTime: a.EndTime,
	})
	return nil
}

func (s *service) DeleteCalendarAppointment(ctx context.Context, actor authz.Actor, calendarID, id int) error {
	b, err := s.validator.ValidateCalendarChange(ctx, opDelete, calendarID, id)
	if err != nil {
		return err
	}

	err = remove(ctx, s.resolver, actor, opDeleteCalendarAppointment, b.Appointment.ClientID, authz.Mutation{
		Count: func(ctx context.Context) (int, error) { return s.repo.CountCalendarAppointment(ctx, id, calendarID) },
		Apply: func(ctx context.Context) error { return s.repo.DeleteCalendarAppointment(ctx, id) },
	})
	if err != nil {
		return err
	}

	a := b.Appointment
	metrics.RecordAppointment(KindCalendar, "deleted")
	s.publish(ctx, RoutingDeleted, Message{
		Kind: KindCalendar, AppointmentID: id, ClientID: a.ClientID, CalendarID: calendarID,
		Date: a.Date, StartTime: a.StartTime, EndTime: a.EndTime,
	})
	return nil
}

func (s *service) ListCalendarAppointments(ctx context.Context, actor authz.Actor, calendarID int, date *calendar.Date) ([]CalendarAppointment, error) {
	_, err := s.zones.FindGymZoneByCalendar(ctx, calendarID)
	if errors.Is(err, gym.ErrGymZoneNotFound) {
		return nil, apperr.NotFound(MessageCalendarNotFound)
	}
	if err != nil {
		return nil, apperr.Internal(err)
	}

	appointments, err := s.repo.ListCalendarAppointments(ctx, calendarID, date, ownScope(actor))
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return appointments, nil
}

func (s *service) ClientAppointments(ctx context.Context, actor authz.Actor) (*ClientAppointments, error) {
	if actor.Role != auth.RoleClient {
		return nil, apperr.Unauthorized("Only clients hold appointments.")
	}

	events, err := s.repo.ListEventAppointmentsByClient(ctx, actor.PersonID)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	calendars, err := s.repo.ListCalendarAppointmentsByClient(ctx, actor.PersonID)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return &ClientAppointments{Events: events, Calendars: calendars}, nil
}

// ownScope limits listings to the caller's appointments when the caller is
// a client.
func ownScope(actor authz.Actor) int {
	if actor.Role == auth.RoleClient {
		return actor.PersonID
	}
	return 0
}

// Notifications and domain events are best effort: the appointment is
// already stored when they run.

func (s *service) confirm(ctx context.Context, c *person.Client, title string, date calendar.Date, start, end calendar.TimeOfDay) {
	if c == nil {
		return
	}
	err := s.notifier.AppointmentConfirmed(ctx, notify.Appointment{
		Email: c.Email, Name: c.FullName(), Title: title, Date: date, StartTime: start, EndTime: end,
	})
	if err != nil {
		logger.Warn("appointment confirmation not queued", "client", c.ID, "error", err.Error())
	}
}

func (s *service) notifyCancelled(ctx context.Context, clientID int, title string, date calendar.Date, start, end calendar.TimeOfDay) {
	c, err := s.resolver.FindClient(ctx, clientID)
	if err != nil || c == nil {
		return
	}
	err = s.notifier.AppointmentCancelled(ctx, notify.Appointment{
		Email: c.Email, Name: c.FullName(), Title: title, Date: date, StartTime: start, EndTime: end,
	})
	if err != nil {
		logger.Warn("appointment cancellation not queued", "client", clientID, "error", err.Error())
	}
}

func (s *service) publish(ctx context.Context, key string, m Message) {
	m.OccurredAt = time.Now()
	if err := s.publisher.PublishJSON(ctx, key, m); err != nil {
		logger.Warn("appointment event not published", "routing_key", key, "error", err.Error())
	}
}
