// Package member manages the people of a gym other than its owner: workers,
// trainers and clients.
package member

import (
	"context"
	"errors"
	"strings"

	"github.com/mikededo/hubbl-sub000/internal/apperr"
	"github.com/mikededo/hubbl-sub000/internal/auth"
	"github.com/mikededo/hubbl-sub000/internal/authz"
	"github.com/mikededo/hubbl-sub000/internal/logger"
	"github.com/mikededo/hubbl-sub000/internal/person"
)

const (
	MessageEmailExists = "Email already registered."
	MessageStaffOnly   = "Only owners and workers can list the people of a gym."
)

var (
	opCreateWorker  = authz.Operation{Controller: "WorkerController", Action: "create", Entity: "worker"}
	opUpdateWorker  = authz.Operation{Controller: "WorkerController", Action: "update", Entity: "worker"}
	opDeleteWorker  = authz.Operation{Controller: "WorkerController", Action: "delete", Entity: "worker"}
	opCreateTrainer = authz.Operation{Controller: "TrainerController", Action: "create", Entity: "trainer", Permission: person.CreateTrainers}
	opUpdateTrainer = authz.Operation{Controller: "TrainerController", Action: "update", Entity: "trainer", Permission: person.UpdateTrainers}
	opDeleteTrainer = authz.Operation{Controller: "TrainerController", Action: "delete", Entity: "trainer", Permission: person.DeleteTrainers}
	opUpdateClient  = authz.Operation{Controller: "ClientController", Action: "update", Entity: "client", Permission: person.UpdateClients}
	opDeleteClient  = authz.Operation{Controller: "ClientController", Action: "delete", Entity: "client", Permission: person.DeleteClients}
)

type Service interface {
	CreateWorker(ctx context.Context, actor authz.Actor, req CreateWorkerRequest) (*person.Worker, error)
	UpdateWorker(ctx context.Context, actor authz.Actor, id int, req UpdateWorkerRequest) error
	DeleteWorker(ctx context.Context, actor authz.Actor, id int) error
	ListWorkers(ctx context.Context, actor authz.Actor) ([]person.Worker, error)

	CreateTrainer(ctx context.Context, actor authz.Actor, req TrainerRequest) (*person.Trainer, error)
	UpdateTrainer(ctx context.Context, actor authz.Actor, id int, req TrainerRequest) error
	DeleteTrainer(ctx context.Context, actor authz.Actor, id int) error
	ListTrainers(ctx context.Context, actor authz.Actor) ([]person.Trainer, error)

	UpdateClient(ctx context.Context, actor authz.Actor, id int, req ClientRequest) error
	DeleteClient(ctx context.Context, actor authz.Actor, id int) error
	ListClients(ctx context.Context, actor authz.Actor) ([]person.Client, error)
}

type service struct {
	people   person.Repository
	resolver person.Resolver
}

func NewService(people person.Repository, resolver person.Resolver) Service {
	return &service{people: people, resolver: resolver}
}

// emailTaken reports whether email belongs to someone other than id.
func (s *service) emailTaken(ctx context.Context, email string, id int) (bool, error) {
	p, err := s.people.FindByEmail(ctx, email)
	if errors.Is(err, person.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return p.ID != id, nil
}

// newPerson builds the person row of a new member inside the actor's gym.
func (s *service) newPerson(ctx context.Context, actor authz.Actor, fields person.PersonFields, password string) (person.Person, int, error) {
	p := fields.ToEntity()

	taken, err := s.emailTaken(ctx, p.Email, 0)
	if err != nil {
		return p, 0, err
	}
	if taken {
		return p, 0, apperr.ClientError(MessageEmailExists, nil)
	}

	if password != "" {
		if p.PasswordHash, err = auth.HashPassword(password); err != nil {
			return p, 0, err
		}
	}

	gymID, err := s.people.GymOf(ctx, actor.PersonID)
	return p, gymID, err
}

// counter builds the existence check of a member of the actor's gym.
func (s *service) counter(actor authz.Actor, id int, count func(context.Context, int, int) (int, error)) func(context.Context) (int, error) {
	return func(ctx context.Context) (int, error) {
		gymID, err := s.people.GymOf(ctx, actor.PersonID)
		if err != nil {
			return 0, err
		}
		return count(ctx, id, gymID)
	}
}

// updated runs update once the new email of id is known to be free.
func (s *service) updated(id int, email string, update func(context.Context) error) func(context.Context) error {
	return func(ctx context.Context) error {
		taken, err := s.emailTaken(ctx, strings.ToLower(email), id)
		if err != nil {
			return err
		}
		if taken {
			return apperr.ClientError(MessageEmailExists, nil)
		}
		return update(ctx)
	}
}

func (s *service) staffGym(ctx context.Context, actor authz.Actor) (int, error) {
	if actor.Role != auth.RoleOwner && actor.Role != auth.RoleWorker {
		return 0, apperr.Unauthorized(MessageStaffOnly)
	}
	gymID, err := s.people.GymOf(ctx, actor.PersonID)
	if err != nil {
		return 0, apperr.Internal(err)
	}
	return gymID, nil
}

func (s *service) CreateWorker(ctx context.Context, actor authz.Actor, req CreateWorkerRequest) (*person.Worker, error) {
	w, err := authz.CreatedByOwner(ctx, s.resolver, actor, opCreateWorker, func(ctx context.Context) (*person.Worker, error) {
		p, gymID, err := s.newPerson(ctx, actor, req.PersonFields, req.Password)
		if err != nil {
			return nil, err
		}
		return s.people.CreateWorker(ctx, person.Worker{Person: p, GymID: gymID, Permissions: req.Permissions})
	})
	if err != nil {
		return nil, err
	}

	logger.Info("worker created", "person_id", w.ID, "gym_id", w.GymID)
	return w, nil
}

func (s *service) UpdateWorker(ctx context.Context, actor authz.Actor, id int, req UpdateWorkerRequest) error {
	return authz.UpdatedByOwner(ctx, s.resolver, actor, opUpdateWorker, authz.Mutation{
		Count: s.counter(actor, id, s.people.CountWorkers),
		Apply: s.updated(id, req.Email, func(ctx context.Context) error {
			return s.people.UpdateWorker(ctx, req.ToEntity(id))
		}),
	})
}

func (s *service) DeleteWorker(ctx context.Context, actor authz.Actor, id int) error {
	return authz.DeletedByOwner(ctx, s.resolver, actor, opDeleteWorker, authz.Mutation{
		Count: s.counter(actor, id, s.people.CountWorkers),
		Apply: func(ctx context.Context) error { return s.people.Delete(ctx, id) },
	})
}

func (s *service) ListWorkers(ctx context.Context, actor authz.Actor) ([]person.Worker, error) {
	gymID, err := s.staffGym(ctx, actor)
	if err != nil {
		return nil, err
	}
	workers, err := s.people.ListWorkers(ctx, gymID)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return workers, nil
}

func (s *service) CreateTrainer(ctx context.Context, actor authz.Actor, req TrainerRequest) (*person.Trainer, error) {
	return authz.CreatedByOwnerOrWorker(ctx, s.resolver, actor, opCreateTrainer, func(ctx context.Context) (*person.Trainer, error) {
		p, gymID, err := s.newPerson(ctx, actor, req.PersonFields, "")
		if err != nil {
			return nil, err
		}
		return s.people.CreateTrainer(ctx, person.Trainer{Person: p, GymID: gymID, WorkerCode: req.WorkerCode})
	})
}

func (s *service) UpdateTrainer(ctx context.Context, actor authz.Actor, id int, req TrainerRequest) error {
	return authz.UpdatedByOwnerOrWorker(ctx, s.resolver, actor, opUpdateTrainer, authz.Mutation{
		Count: s.counter(actor, id, s.people.CountTrainers),
		Apply: s.updated(id, req.Email, func(ctx context.Context) error {
			return s.people.UpdateTrainer(ctx, req.ToEntity(id))
		}),
	})
}

func (s *service) DeleteTrainer(ctx context.Context, actor authz.Actor, id int) error {
	return authz.DeletedByOwnerOrWorker(ctx, s.resolver, actor, opDeleteTrainer, authz.Mutation{
		Count: s.counter(actor, id, s.people.CountTrainers),
		Apply: func(ctx context.Context) error { return s.people.Delete(ctx, id) },
	})
}

func (s *service) ListTrainers(ctx context.Context, actor authz.Actor) ([]person.Trainer, error) {
	gymID, err := s.staffGym(ctx, actor)
	if err != nil {
		return nil, err
	}
	trainers, err := s.people.ListTrainers(ctx, gymID)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return trainers, nil
}

// UpdateClient lets a client edit their own profile and staff edit any
// client of their gym.
func (s *service) UpdateClient(ctx context.Context, actor authz.Actor, id int, req ClientRequest) error {
	m := authz.Mutation{
		Count: s.counter(actor, id, s.people.CountClients),
		Apply: s.updated(id, req.Email, func(ctx context.Context) error {
			return s.people.UpdateClient(ctx, req.ToEntity(id))
		}),
	}
	if actor.Role == auth.RoleClient {
		return authz.UpdatedByClient(ctx, s.resolver, actor, opUpdateClient, id, m)
	}
	return authz.UpdatedByOwnerOrWorker(ctx, s.resolver, actor, opUpdateClient, m)
}

func (s *service) DeleteClient(ctx context.Context, actor authz.Actor, id int) error {
	return authz.DeletedByOwnerOrWorker(ctx, s.resolver, actor, opDeleteClient, authz.Mutation{
		Count: s.counter(actor, id, s.people.CountClients),
		Apply: func(ctx context.Context) error { return s.people.Delete(ctx, id) },
	})
}

func (s *service) ListClients(ctx context.Context, actor authz.Actor) ([]person.Client, error) {
	gymID, err := s.staffGym(ctx, actor)
	if err != nil {
		return nil, err
	}
	clients, err := s.people.ListClients(ctx, gymID)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return clients, nil
}
