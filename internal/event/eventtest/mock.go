// Package eventtest provides testify mocks of the event collaborators.
package eventtest

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/mikededo/hubbl-sub000/internal/authz"
	"github.com/mikededo/hubbl-sub000/internal/calendar"
	"github.com/mikededo/hubbl-sub000/internal/event"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Create(ctx context.Context, e event.Event) (*event.Event, error) {
	args := m.Called(ctx, e)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*event.Event), args.Error(1)
}

func (m *MockRepository) FindByID(ctx context.Context, id int) (*event.Event, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*event.Event), args.Error(1)
}

func (m *MockRepository) Count(ctx context.Context, id int) (int, error) {
	args := m.Called(ctx, id)
	return args.Int(0), args.Error(1)
}

func (m *MockRepository) Update(ctx context.Context, e event.Event) error {
	return m.Called(ctx, e).Error(0)
}

func (m *MockRepository) Delete(ctx context.Context, id int) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockRepository) ListByCalendar(ctx context.Context, calendarID int, date *calendar.Date) ([]event.Event, error) {
	args := m.Called(ctx, calendarID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]event.Event), args.Error(1)
}

func (m *MockRepository) CountOverlapping(ctx context.Context, calendarID int, date calendar.Date, start, end calendar.TimeOfDay, excludeID int) (int, error) {
	args := m.Called(ctx, calendarID, date, start, end, excludeID)
	return args.Int(0), args.Error(1)
}

type MockService struct {
	mock.Mock
}

func (m *MockService) Create(ctx context.Context, actor authz.Actor, req event.EventRequest) (*event.Event, error) {
	args := m.Called(ctx, actor, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*event.Event), args.Error(1)
}

func (m *MockService) Update(ctx context.Context, actor authz.Actor, id int, req event.EventRequest) error {
	return m.Called(ctx, actor, id, req).Error(0)
}

func (m *MockService) Delete(ctx context.Context, actor authz.Actor, id int) error {
	return m.Called(ctx, actor, id).Error(0)
}

func (m *MockService) ListByCalendar(ctx context.Context, calendarID int, date *calendar.Date) ([]event.Event, error) {
	args := m.Called(ctx, calendarID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]event.Event), args.Error(1)
}
