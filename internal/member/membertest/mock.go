// Package membertest provides a testify mock of member.Service.
package membertest

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/mikededo/hubbl-sub000/internal/authz"
	"github.com/mikededo/hubbl-sub000/internal/member"
	"github.com/mikededo/hubbl-sub000/internal/person"
)

type MockService struct {
	mock.Mock
}

func (m *MockService) CreateWorker(ctx context.Context, actor authz.Actor, req member.CreateWorkerRequest) (*person.Worker, error) {
	args := m.Called(ctx, actor, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*person.Worker), args.Error(1)
}

func (m *MockService) UpdateWorker(ctx context.Context, actor authz.Actor, id int, req member.UpdateWorkerRequest) error {
	return m.Called(ctx, actor, id, req).Error(0)
}

func (m *MockService) DeleteWorker(ctx context.Context, actor authz.Actor, id int) error {
	return m.Called(ctx, actor, id).Error(0)
}

func (m *MockService) ListWorkers(ctx context.Context, actor authz.Actor) ([]person.Worker, error) {
	args := m.Called(ctx, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]person.Worker), args.Error(1)
}

func (m *MockService) CreateTrainer(ctx context.Context, actor authz.Actor, req member.TrainerRequest) (*person.Trainer, error) {
	args := m.Called(ctx, actor, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*person.Trainer), args.Error(1)
}

func (m *MockService) UpdateTrainer(ctx context.Context, actor authz.Actor, id int, req member.TrainerRequest) error {
	return m.Called(ctx, actor, id, req).Error(0)
}

func (m *MockService) DeleteTrainer(ctx context.Context, actor authz.Actor, id int) error {
	return m.Called(ctx, actor, id).Error(0)
}

func (m *MockService) ListTrainers(ctx context.Context, actor authz.Actor) ([]person.Trainer, error) {
	args := m.Called(ctx, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]person.Trainer), args.Error(1)
}

func (m *MockService) UpdateClient(ctx context.Context, actor authz.Actor, id int, req member.ClientRequest) error {
	return m.Called(ctx, actor, id, req).Error(0)
}

func (m *MockService) DeleteClient(ctx context.Context, actor authz.Actor, id int) error {
	return m.Called(ctx, actor, id).Error(0)
}

func (m *MockService) ListClients(ctx context.Context, actor authz.Actor) ([]person.Client, error) {
	args := m.Called(ctx, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]person.Client), args.Error(1)
}
