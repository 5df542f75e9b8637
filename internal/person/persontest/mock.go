// Package persontest provides testify mocks of the person collaborators.
package persontest

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/mikededo/hubbl-sub000/internal/auth"
	"github.com/mikededo/hubbl-sub000/internal/person"
)

type MockResolver struct {
	mock.Mock
}

func (m *MockResolver) OwnerExists(ctx context.Context, personID int) (bool, error) {
	args := m.Called(ctx, personID)
	return args.Bool(0), args.Error(1)
}

func (m *MockResolver) FindWorker(ctx context.Context, personID int) (*person.Worker, error) {
	args := m.Called(ctx, personID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*person.Worker), args.Error(1)
}

func (m *MockResolver) FindClient(ctx context.Context, personID int) (*person.Client, error) {
	args := m.Called(ctx, personID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*person.Client), args.Error(1)
}

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func (m *MockRepository) GymExists(ctx context.Context, gymID int) (bool, error) {
	args := m.Called(ctx, gymID)
	return args.Bool(0), args.Error(1)
}

func (m *MockRepository) FindByEmail(ctx context.Context, email string) (*person.Person, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*person.Person), args.Error(1)
}

func (m *MockRepository) FindByID(ctx context.Context, id int) (*person.Person, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*person.Person), args.Error(1)
}

func (m *MockRepository) RoleOf(ctx context.Context, personID int) (auth.Role, error) {
	args := m.Called(ctx, personID)
	return args.Get(0).(auth.Role), args.Error(1)
}

func (m *MockRepository) GymOf(ctx context.Context, personID int) (int, error) {
	args := m.Called(ctx, personID)
	return args.Int(0), args.Error(1)
}

func (m *MockRepository) Delete(ctx context.Context, personID int) error {
	return m.Called(ctx, personID).Error(0)
}

func (m *MockRepository) CreateOwner(ctx context.Context, p person.Person, g person.Gym) (*person.Owner, error) {
	args := m.Called(ctx, p, g)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*person.Owner), args.Error(1)
}

func (m *MockRepository) FindOwner(ctx context.Context, personID int) (*person.Owner, error) {
	args := m.Called(ctx, personID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*person.Owner), args.Error(1)
}

func (m *MockRepository) CountOwners(ctx context.Context, personID int) (int, error) {
	args := m.Called(ctx, personID)
	return args.Int(0), args.Error(1)
}

func (m *MockRepository) CreateWorker(ctx context.Context, w person.Worker) (*person.Worker, error) {
	args := m.Called(ctx, w)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*person.Worker), args.Error(1)
}

func (m *MockRepository) FindWorker(ctx context.Context, personID int) (*person.Worker, error) {
	args := m.Called(ctx, personID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*person.Worker), args.Error(1)
}

func (m *MockRepository) CountWorkers(ctx context.Context, personID, gymID int) (int, error) {
	args := m.Called(ctx, personID, gymID)
	return args.Int(0), args.Error(1)
}

func (m *MockRepository) UpdateWorker(ctx context.Context, w person.Worker) error {
	return m.Called(ctx, w).Error(0)
}

func (m *MockRepository) ListWorkers(ctx context.Context, gymID int) ([]person.Worker, error) {
	args := m.Called(ctx, gymID)
	return args.Get(0).([]person.Worker), args.Error(1)
}

func (m *MockRepository) CreateClient(ctx context.Context, c person.Client) (*person.Client, error) {
	args := m.Called(ctx, c)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*person.Client), args.Error(1)
}

func (m *MockRepository) FindClient(ctx context.Context, personID int) (*person.Client, error) {
	args := m.Called(ctx, personID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*person.Client), args.Error(1)
}

func (m *MockRepository) CountClients(ctx context.Context, personID, gymID int) (int, error) {
	args := m.Called(ctx, personID, gymID)
	return args.Int(0), args.Error(1)
}

func (m *MockRepository) UpdateClient(ctx context.Context, c person.Client) error {
	return m.Called(ctx, c).Error(0)
}

func (m *MockRepository) ListClients(ctx context.Context, gymID int) ([]person.Client, error) {
	args := m.Called(ctx, gymID)
	return args.Get(0).([]person.Client), args.Error(1)
}

func (m *MockRepository) CreateTrainer(ctx context.Context, t person.Trainer) (*person.Trainer, error) {
	args := m.Called(ctx, t)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*person.Trainer), args.Error(1)
}

func (m *MockRepository) FindTrainer(ctx context.Context, personID int) (*person.Trainer, error) {
	args := m.Called(ctx, personID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*person.Trainer), args.Error(1)
}

func (m *MockRepository) CountTrainers(ctx context.Context, personID, gymID int) (int, error) {
	args := m.Called(ctx, personID, gymID)
	return args.Int(0), args.Error(1)
}

func (m *MockRepository) UpdateTrainer(ctx context.Context, t person.Trainer) error {
	return m.Called(ctx, t).Error(0)
}

func (m *MockRepository) ListTrainers(ctx context.Context, gymID int) ([]person.Trainer, error) {
	args := m.Called(ctx, gymID)
	return args.Get(0).([]person.Trainer), args.Error(1)
}
