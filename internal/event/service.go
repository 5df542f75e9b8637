package event

import (
	"context"
	"errors"

	"github.com/mikededo/hubbl-sub000/internal/apperr"
	"github.com/mikededo/hubbl-sub000/internal/authz"
	"github.com/mikededo/hubbl-sub000/internal/calendar"
	"github.com/mikededo/hubbl-sub000/internal/gym"
	"github.com/mikededo/hubbl-sub000/internal/person"
)

const (
	MessageTimeOrder         = "startTime must be before endTime."
	MessageNotClassZone      = "Events can only be created in class gym zones."
	MessageZoneClosed        = "Can not create an event if gym zone is closed."
	MessagePast              = "Can not create an event in the past."
	MessageCapacityExceeded  = "Event capacity can not exceed the gym zone capacity."
	MessageCapacityBelowUsed = "Event capacity can not be lower than its appointments."
	MessageOverlap           = "Another event is already scheduled at that time."
	MessageTrainerNotFound   = "Trainer does not exist."
	MessageCalendarNotFound  = "Calendar does not exist."
)

var (
	opCreate = authz.Operation{Controller: "EventController", Action: "create", Entity: "event", Permission: person.CreateEvents}
	opUpdate = authz.Operation{Controller: "EventController", Action: "update", Entity: "event", Permission: person.UpdateEvents}
	opDelete = authz.Operation{Controller: "EventController", Action: "delete", Entity: "event", Permission: person.DeleteEvents}
)

type Service interface {
	Create(ctx context.Context, actor authz.Actor, req EventRequest) (*Event, error)
	Update(ctx context.Context, actor authz.Actor, id int, req EventRequest) error
	Delete(ctx context.Context, actor authz.Actor, id int) error
	ListByCalendar(ctx context.Context, calendarID int, date *calendar.Date) ([]Event, error)
}

type service struct {
	repo     Repository
	zones    gym.Repository
	people   person.Repository
	resolver person.Resolver
	clock    calendar.Clock
}

func NewService(repo Repository, zones gym.Repository, people person.Repository, resolver person.Resolver, clock calendar.Clock) Service {
	return &service{repo: repo, zones: zones, people: people, resolver: resolver, clock: clock}
}

func (s *service) Create(ctx context.Context, actor authz.Actor, req EventRequest) (*Event, error) {
	if !req.StartTime.Before(req.EndTime) {
		return nil, apperr.ClientError(MessageTimeOrder, nil)
	}

	return authz.CreatedByOwnerOrWorker(ctx, s.resolver, actor, opCreate, func(ctx context.Context) (*Event, error) {
		e := req.ToEntity()
		if err := s.checkSchedule(ctx, "create", e, 0); err != nil {
			return nil, err
		}
		return s.repo.Create(ctx, e)
	})
}

func (s *service) Update(ctx context.Context, actor authz.Actor, id int, req EventRequest) error {
	if !req.StartTime.Before(req.EndTime) {
		return apperr.ClientError(MessageTimeOrder, nil)
	}

	return authz.UpdatedByOwnerOrWorker(ctx, s.resolver, actor, opUpdate, authz.Mutation{
		Count: func(ctx context.Context) (int, error) { return s.repo.Count(ctx, id) },
		Apply: func(ctx context.Context) error {
			current, err := s.repo.FindByID(ctx, id)
			if err != nil {
				return err
			}

			e := req.ToEntity()
			e.ID = id
			if e.Capacity < current.AppointmentCount {
				return apperr.ClientError(MessageCapacityBelowUsed, nil)
			}
			if err := s.checkSchedule(ctx, "update", e, id); err != nil {
				return err
			}
			return s.repo.Update(ctx, e)
		},
	})
}

func (s *service) Delete(ctx context.Context, actor authz.Actor, id int) error {
	return authz.DeletedByOwnerOrWorker(ctx, s.resolver, actor, opDelete, authz.Mutation{
		Count: func(ctx context.Context) (int, error) { return s.repo.Count(ctx, id) },
		Apply: func(ctx context.Context) error { return s.repo.Delete(ctx, id) },
	})
}

func (s *service) ListByCalendar(ctx context.Context, calendarID int, date *calendar.Date) ([]Event, error) {
	_, err := s.zones.FindGymZoneByCalendar(ctx, calendarID)
	if errors.Is(err, gym.ErrGymZoneNotFound) {
		return nil, apperr.NotFound(MessageCalendarNotFound)
	}
	if err != nil {
		return nil, apperr.Internal(err)
	}

	events, err := s.repo.ListByCalendar(ctx, calendarID, date)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return events, nil
}

// checkSchedule validates e against the zone owning its calendar, the clock,
// the other events of the calendar and its trainer. excludeID skips the
// event being updated in the overlap check.
func (s *service) checkSchedule(ctx context.Context, op string, e Event, excludeID int) error {
	zone, err := s.zones.FindGymZoneByCalendar(ctx, e.CalendarID)
	if errors.Is(err, gym.ErrGymZoneNotFound) {
		return apperr.Forbidden("Calendar to " + op + " the event does not exist")
	}
	if err != nil {
		return err
	}

	if !zone.IsClassType {
		return apperr.ClientError(MessageNotClassZone, nil)
	}
	if !zone.Covers(e.StartTime, e.EndTime) {
		return apperr.ClientError(MessageZoneClosed, nil)
	}

	past, err := s.clock.IsPast(e.Date, e.StartTime)
	if err != nil {
		return apperr.ClientError(err.Error(), nil)
	}
	if past {
		return apperr.ClientError(MessagePast, nil)
	}

	if e.Capacity > zone.Capacity {
		return apperr.ClientError(MessageCapacityExceeded, nil)
	}

	overlapping, err := s.repo.CountOverlapping(ctx, e.CalendarID, e.Date, e.StartTime, e.EndTime, excludeID)
	if err != nil {
		return err
	}
	if overlapping > 0 {
		return apperr.ClientError(MessageOverlap, nil)
	}

	if e.TrainerID != nil {
		_, err := s.people.FindTrainer(ctx, *e.TrainerID)
		if errors.Is(err, person.ErrNotFound) {
			return apperr.ClientError(MessageTrainerNotFound, nil)
		}
		if err != nil {
			return err
		}
	}
	return nil
}
