package event_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mikededo/hubbl-sub000/internal/apperr"
	"github.com/mikededo/hubbl-sub000/internal/auth"
	"github.com/mikededo/hubbl-sub000/internal/authz"
	"github.com/mikededo/hubbl-sub000/internal/calendar"
	"github.com/mikededo/hubbl-sub000/internal/event"
	"github.com/mikededo/hubbl-sub000/internal/event/eventtest"
	"github.com/mikededo/hubbl-sub000/internal/gym"
	"github.com/mikededo/hubbl-sub000/internal/gym/gymtest"
	"github.com/mikededo/hubbl-sub000/internal/person"
	"github.com/mikededo/hubbl-sub000/internal/person/persontest"
)

var (
	owner  = authz.Actor{PersonID: 1, Role: auth.RoleOwner}
	worker = authz.Actor{PersonID: 2, Role: auth.RoleWorker}
	now    = time.Date(2030, 1, 10, 9, 0, 0, 0, time.UTC)
)

type fixture struct {
	repo     *eventtest.MockRepository
	zones    *gymtest.MockRepository
	people   *persontest.MockRepository
	resolver *persontest.MockResolver
	svc      event.Service
}

func newFixture() *fixture {
	f := &fixture{
		repo:     new(eventtest.MockRepository),
		zones:    new(gymtest.MockRepository),
		people:   new(persontest.MockRepository),
		resolver: new(persontest.MockResolver),
	}
	f.svc = event.NewService(f.repo, f.zones, f.people, f.resolver, calendar.FixedClock(now))
	return f
}

func classZone() *gym.GymZone {
	return &gym.GymZone{ID: 5, CalendarID: 30, IsClassType: true, Capacity: 20, OpenTime: "06:00:00", CloseTime: "23:00:00"}
}

func request() event.EventRequest {
	return event.EventRequest{
		Calendar:  30,
		Name:      "Spinning",
		Capacity:  15,
		Date:      calendar.Date{Year: 2030, Month: 1, Day: 15},
		StartTime: "10:00:00",
		EndTime:   "11:00:00",
	}
}

func TestCreate_Owner(t *testing.T) {
	f := newFixture()
	req := request()
	f.resolver.On("OwnerExists", mock.Anything, 1).Return(true, nil)
	f.zones.On("FindGymZoneByCalendar", mock.Anything, 30).Return(classZone(), nil)
	f.repo.On("CountOverlapping", mock.Anything, 30, req.Date, req.StartTime, req.EndTime, 0).Return(0, nil)
	f.repo.On("Create", mock.Anything, req.ToEntity()).Return(&event.Event{ID: 12}, nil)

	e, err := f.svc.Create(context.Background(), owner, req)
	require.NoError(t, err)
	assert.Equal(t, 12, e.ID)
}

func TestCreate_DefaultsDifficulty(t *testing.T) {
	assert.Equal(t, 1, request().ToEntity().Difficulty)
}

func TestCreate_WorkerWithoutCreateEvents(t *testing.T) {
	f := newFixture()
	f.resolver.On("FindWorker", mock.Anything, 2).Return(&person.Worker{Permissions: person.Permissions{UpdateEvents: true}}, nil)

	_, err := f.svc.Create(context.Background(), worker, request())

	require.Error(t, err)
	assert.Equal(t, authz.MessageNotEnoughPermissions, apperr.From(err).Message)
	f.repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreate_TimeOrder(t *testing.T) {
	f := newFixture()
	req := request()
	req.StartTime, req.EndTime = "11:00:00", "10:00:00"

	_, err := f.svc.Create(context.Background(), owner, req)

	assert.Equal(t, event.MessageTimeOrder, apperr.From(err).Message)
	f.resolver.AssertNotCalled(t, "OwnerExists", mock.Anything, mock.Anything)
}

func TestCreate_ScheduleRejections(t *testing.T) {
	tests := []struct {
		name    string
		zone    *gym.GymZone
		zoneErr error
		modify  func(r *event.EventRequest)
		kind    apperr.Kind
		message string
	}{
		{
			name:    "calendar without zone",
			zoneErr: gym.ErrGymZoneNotFound,
			kind:    apperr.KindForbidden,
			message: "Calendar to create the event does not exist",
		},
		{
			name:    "non class zone",
			zone:    &gym.GymZone{CalendarID: 30, Capacity: 20, OpenTime: "06:00:00", CloseTime: "23:00:00"},
			kind:    apperr.KindClientError,
			message: event.MessageNotClassZone,
		},
		{
			name:    "outside zone hours",
			zone:    classZone(),
			modify:  func(r *event.EventRequest) { r.StartTime = "05:00:00" },
			kind:    apperr.KindClientError,
			message: event.MessageZoneClosed,
		},
		{
			name: "in the past",
			zone: classZone(),
			modify: func(r *event.EventRequest) {
				r.Date = calendar.Date{Year: 2030, Month: 1, Day: 10}
				r.StartTime = "08:00:00"
			},
			kind:    apperr.KindClientError,
			message: event.MessagePast,
		},
		{
			name:    "capacity over the zone",
			zone:    classZone(),
			modify:  func(r *event.EventRequest) { r.Capacity = 21 },
			kind:    apperr.KindClientError,
			message: event.MessageCapacityExceeded,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()
			req := request()
			if tt.modify != nil {
				tt.modify(&req)
			}
			f.resolver.On("OwnerExists", mock.Anything, 1).Return(true, nil)
			f.zones.On("FindGymZoneByCalendar", mock.Anything, 30).Return(tt.zone, tt.zoneErr)

			_, err := f.svc.Create(context.Background(), owner, req)

			e := apperr.From(err)
			assert.Equal(t, tt.kind, e.Kind)
			assert.Equal(t, tt.message, e.Message)
			f.repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		})
	}
}

func TestCreate_Overlap(t *testing.T) {
	f := newFixture()
	req := request()
	f.resolver.On("OwnerExists", mock.Anything, 1).Return(true, nil)
	f.zones.On("FindGymZoneByCalendar", mock.Anything, 30).Return(classZone(), nil)
	f.repo.On("CountOverlapping", mock.Anything, 30, req.Date, req.StartTime, req.EndTime, 0).Return(1, nil)

	_, err := f.svc.Create(context.Background(), owner, req)

	assert.Equal(t, event.MessageOverlap, apperr.From(err).Message)
}

func TestCreate_UnknownTrainer(t *testing.T) {
	f := newFixture()
	req := request()
	trainer := 44
	req.Trainer = &trainer
	f.resolver.On("OwnerExists", mock.Anything, 1).Return(true, nil)
	f.zones.On("FindGymZoneByCalendar", mock.Anything, 30).Return(classZone(), nil)
	f.repo.On("CountOverlapping", mock.Anything, 30, req.Date, req.StartTime, req.EndTime, 0).Return(0, nil)
	f.people.On("FindTrainer", mock.Anything, 44).Return(nil, person.ErrNotFound)

	_, err := f.svc.Create(context.Background(), owner, req)

	assert.Equal(t, event.MessageTrainerNotFound, apperr.From(err).Message)
}

func TestCreate_RepositoryFailureIsHidden(t *testing.T) {
	f := newFixture()
	f.resolver.On("OwnerExists", mock.Anything, 1).Return(true, nil)
	f.zones.On("FindGymZoneByCalendar", mock.Anything, 30).Return(nil, errors.New("connection reset"))

	_, err := f.svc.Create(context.Background(), owner, request())

	e := apperr.From(err)
	assert.Equal(t, apperr.KindInternal, e.Kind)
	assert.NotContains(t, e.Message, "connection reset")
}

func TestUpdate(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		f := newFixture()
		f.resolver.On("OwnerExists", mock.Anything, 1).Return(true, nil)
		f.repo.On("Count", mock.Anything, 12).Return(0, nil)

		err := f.svc.Update(context.Background(), owner, 12, request())

		e := apperr.From(err)
		assert.Equal(t, apperr.KindNotFound, e.Kind)
		assert.Equal(t, "Event to update not found.", e.Message)
	})

	t.Run("capacity below booked places", func(t *testing.T) {
		f := newFixture()
		f.resolver.On("OwnerExists", mock.Anything, 1).Return(true, nil)
		f.repo.On("Count", mock.Anything, 12).Return(1, nil)
		f.repo.On("FindByID", mock.Anything, 12).Return(&event.Event{ID: 12, AppointmentCount: 16}, nil)

		err := f.svc.Update(context.Background(), owner, 12, request())

		assert.Equal(t, event.MessageCapacityBelowUsed, apperr.From(err).Message)
	})

	t.Run("worker with permission", func(t *testing.T) {
		f := newFixture()
		req := request()
		f.resolver.On("FindWorker", mock.Anything, 2).Return(&person.Worker{Permissions: person.Permissions{UpdateEvents: true}}, nil)
		f.repo.On("Count", mock.Anything, 12).Return(1, nil)
		f.repo.On("FindByID", mock.Anything, 12).Return(&event.Event{ID: 12, AppointmentCount: 3}, nil)
		f.zones.On("FindGymZoneByCalendar", mock.Anything, 30).Return(classZone(), nil)
		f.repo.On("CountOverlapping", mock.Anything, 30, req.Date, req.StartTime, req.EndTime, 12).Return(0, nil)
		expected := req.ToEntity()
		expected.ID = 12
		f.repo.On("Update", mock.Anything, expected).Return(nil)

		require.NoError(t, f.svc.Update(context.Background(), worker, 12, req))
		f.repo.AssertExpectations(t)
	})
}

func TestDelete(t *testing.T) {
	f := newFixture()
	f.resolver.On("OwnerExists", mock.Anything, 1).Return(true, nil)
	f.repo.On("Count", mock.Anything, 12).Return(1, nil)
	f.repo.On("Delete", mock.Anything, 12).Return(nil)

	require.NoError(t, f.svc.Delete(context.Background(), owner, 12))
	f.repo.AssertExpectations(t)
}

func TestListByCalendar(t *testing.T) {
	f := newFixture()
	date := &calendar.Date{Year: 2030, Month: 1, Day: 15}
	f.zones.On("FindGymZoneByCalendar", mock.Anything, 30).Return(classZone(), nil)
	f.zones.On("FindGymZoneByCalendar", mock.Anything, 31).Return(nil, gym.ErrGymZoneNotFound)
	f.repo.On("ListByCalendar", mock.Anything, 30, date).Return([]event.Event{{ID: 1}, {ID: 2}}, nil)

	events, err := f.svc.ListByCalendar(context.Background(), 30, date)
	require.NoError(t, err)
	assert.Len(t, events, 2)

	_, err = f.svc.ListByCalendar(context.Background(), 31, nil)
	assert.Equal(t, apperr.KindNotFound, apperr.From(err).Kind)
}
