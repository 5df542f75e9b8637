// Package gymtest provides a testify mock of gym.Repository.
package gymtest

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/mikededo/hubbl-sub000/internal/gym"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) CreateVirtualGym(ctx context.Context, vg gym.VirtualGym) (*gym.VirtualGym, error) {
	args := m.Called(ctx, vg)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*gym.VirtualGym), args.Error(1)
}

func (m *MockRepository) FindVirtualGym(ctx context.Context, id int) (*gym.VirtualGym, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*gym.VirtualGym), args.Error(1)
}

func (m *MockRepository) CountVirtualGyms(ctx context.Context, id, gymID int) (int, error) {
	args := m.Called(ctx, id, gymID)
	return args.Int(0), args.Error(1)
}

func (m *MockRepository) UpdateVirtualGym(ctx context.Context, vg gym.VirtualGym) error {
	return m.Called(ctx, vg).Error(0)
}

func (m *MockRepository) DeleteVirtualGym(ctx context.Context, id int) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockRepository) ListVirtualGyms(ctx context.Context, gymID int) ([]gym.VirtualGym, error) {
	args := m.Called(ctx, gymID)
	return args.Get(0).([]gym.VirtualGym), args.Error(1)
}

func (m *MockRepository) CreateGymZone(ctx context.Context, z gym.GymZone) (*gym.GymZone, error) {
	args := m.Called(ctx, z)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*gym.GymZone), args.Error(1)
}

func (m *MockRepository) FindGymZone(ctx context.Context, id int) (*gym.GymZone, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*gym.GymZone), args.Error(1)
}

func (m *MockRepository) FindGymZoneByCalendar(ctx context.Context, calendarID int) (*gym.GymZone, error) {
	args := m.Called(ctx, calendarID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*gym.GymZone), args.Error(1)
}

func (m *MockRepository) CountGymZones(ctx context.Context, id, gymID int) (int, error) {
	args := m.Called(ctx, id, gymID)
	return args.Int(0), args.Error(1)
}

func (m *MockRepository) UpdateGymZone(ctx context.Context, z gym.GymZone) error {
	return m.Called(ctx, z).Error(0)
}

func (m *MockRepository) DeleteGymZone(ctx context.Context, id int) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockRepository) ListGymZones(ctx context.Context, virtualGymID int) ([]gym.GymZone, error) {
	args := m.Called(ctx, virtualGymID)
	return args.Get(0).([]gym.GymZone), args.Error(1)
}
