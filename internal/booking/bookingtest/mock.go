// Package bookingtest provides testify mocks of the booking collaborators.
package bookingtest

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/mikededo/hubbl-sub000/internal/authz"
	"github.com/mikededo/hubbl-sub000/internal/booking"
	"github.com/mikededo/hubbl-sub000/internal/calendar"
	"github.com/mikededo/hubbl-sub000/internal/notify"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) CreateEventAppointment(ctx context.Context, a booking.EventAppointment) (*booking.EventAppointment, error) {
	args := m.Called(ctx, a)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*booking.EventAppointment), args.Error(1)
}

func (m *MockRepository) FindEventAppointment(ctx context.Context, id, eventID int) (*booking.EventAppointment, error) {
	args := m.Called(ctx, id, eventID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*booking.EventAppointment), args.Error(1)
}

func (m *MockRepository) CountEventAppointment(ctx context.Context, id, eventID int) (int, error) {
	args := m.Called(ctx, id, eventID)
	return args.Int(0), args.Error(1)
}

func (m *MockRepository) CountActiveEventAppointments(ctx context.Context, eventID int) (int, error) {
	args := m.Called(ctx, eventID)
	return args.Int(0), args.Error(1)
}

func (m *MockRepository) EventAppointmentExists(ctx context.Context, clientID, eventID int) (bool, error) {
	args := m.Called(ctx, clientID, eventID)
	return args.Bool(0), args.Error(1)
}

func (m *MockRepository) CancelEventAppointment(ctx context.Context, id int) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockRepository) DeleteEventAppointment(ctx context.Context, id int) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockRepository) ListEventAppointments(ctx context.Context, eventID, clientID int) ([]booking.EventAppointment, error) {
	args := m.Called(ctx, eventID, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]booking.EventAppointment), args.Error(1)
}

func (m *MockRepository) ListEventAppointmentsByClient(ctx context.Context, clientID int) ([]booking.EventAppointment, error) {
	args := m.Called(ctx, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]booking.EventAppointment), args.Error(1)
}

func (m *MockRepository) CreateCalendarAppointment(ctx context.Context, a booking.CalendarAppointment) (*booking.CalendarAppointment, error) {
	args := m.Called(ctx, a)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*booking.CalendarAppointment), args.Error(1)
}

func (m *MockRepository) FindCalendarAppointment(ctx context.Context, id, calendarID int) (*booking.CalendarAppointment, error) {
	args := m.Called(ctx, id, calendarID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*booking.CalendarAppointment), args.Error(1)
}

func (m *MockRepository) CountCalendarAppointment(ctx context.Context, id, calendarID int) (int, error) {
	args := m.Called(ctx, id, calendarID)
	return args.Int(0), args.Error(1)
}

func (m *MockRepository) MaxConcurrentCalendarAppointments(ctx context.Context, calendarID int, date calendar.Date, start, end calendar.TimeOfDay) (int, error) {
	args := m.Called(ctx, calendarID, date, start, end)
	return args.Int(0), args.Error(1)
}

func (m *MockRepository) CalendarAppointmentExists(ctx context.Context, clientID int, date calendar.Date, start, end calendar.TimeOfDay) (bool, error) {
	args := m.Called(ctx, clientID, date, start, end)
	return args.Bool(0), args.Error(1)
}

func (m *MockRepository) CancelCalendarAppointment(ctx context.Context, id int) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockRepository) DeleteCalendarAppointment(ctx context.Context, id int) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockRepository) ListCalendarAppointments(ctx context.Context, calendarID int, date *calendar.Date, clientID int) ([]booking.CalendarAppointment, error) {
	args := m.Called(ctx, calendarID, date, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]booking.CalendarAppointment), args.Error(1)
}

func (m *MockRepository) ListCalendarAppointmentsByClient(ctx context.Context, clientID int) ([]booking.CalendarAppointment, error) {
	args := m.Called(ctx, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]booking.CalendarAppointment), args.Error(1)
}

type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) AppointmentConfirmed(ctx context.Context, a notify.Appointment) error {
	return m.Called(ctx, a).Error(0)
}

func (m *MockNotifier) AppointmentCancelled(ctx context.Context, a notify.Appointment) error {
	return m.Called(ctx, a).Error(0)
}

type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) PublishJSON(ctx context.Context, key string, v any) error {
	return m.Called(ctx, key, v).Error(0)
}

func (m *MockPublisher) Close() error {
	return m.Called().Error(0)
}

type MockService struct {
	mock.Mock
}

func (m *MockService) CreateEventAppointment(ctx context.Context, actor authz.Actor, eventID int, req booking.EventAppointmentRequest) (*booking.EventAppointment, error) {
	args := m.Called(ctx, actor, eventID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*booking.EventAppointment), args.Error(1)
}

func (m *MockService) CancelEventAppointment(ctx context.Context, actor authz.Actor, eventID, id int) error {
	return m.Called(ctx, actor, eventID, id).Error(0)
}

func (m *MockService) DeleteEventAppointment(ctx context.Context, actor authz.Actor, eventID, id int) error {
	return m.Called(ctx, actor, eventID, id).Error(0)
}

func (m *MockService) ListEventAppointments(ctx context.Context, actor authz.Actor, eventID int) ([]booking.EventAppointment, error) {
	args := m.Called(ctx, actor, eventID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]booking.EventAppointment), args.Error(1)
}

func (m *MockService) CreateCalendarAppointment(ctx context.Context, actor authz.Actor, calendarID int, req booking.CalendarAppointmentRequest) (*booking.CalendarAppointment, error) {
	args := m.Called(ctx, actor, calendarID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*booking.CalendarAppointment), args.Error(1)
}

func (m *MockService) CancelCalendarAppointment(ctx context.Context, actor authz.Actor, calendarID, id int) error {
	return m.Called(ctx, actor, calendarID, id).Error(0)
}

func (m *MockService) DeleteCalendarAppointment(ctx context.Context, actor authz.Actor, calendarID, id int) error {
	return m.Called(ctx, actor, calendarID, id).Error(0)
}

func (m *MockService) ListCalendarAppointments(ctx context.Context, actor authz.Actor, calendarID int, date *calendar.Date) ([]booking.CalendarAppointment, error) {
	args := m.Called(ctx, actor, calendarID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]booking.CalendarAppointment), args.Error(1)
}

func (m *MockService) ClientAppointments(ctx context.Context, actor authz.Actor) (*booking.ClientAppointments, error) {
	args := m.Called(ctx, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*booking.ClientAppointments), args.Error(1)
}
