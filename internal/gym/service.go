package gym

import (
	"context"
	"errors"

	"github.com/mikededo/hubbl-sub000/internal/apperr"
	"github.com/mikededo/hubbl-sub000/internal/authz"
	"github.com/mikededo/hubbl-sub000/internal/calendar"
	"github.com/mikededo/hubbl-sub000/internal/person"
)

const (
	MessageTimeOrder          = "openTime must be before closeTime."
	MessageZoneOutsideHours   = "Gym zone hours must be within the virtual gym hours."
	MessageVirtualGymNotFound = "Virtual gym does not exist."
)

var (
	opCreateVirtualGym = authz.Operation{Controller: "VirtualGymController", Action: "create", Entity: "virtual gym"}
	opUpdateVirtualGym = authz.Operation{Controller: "VirtualGymController", Action: "update", Entity: "virtual gym", Permission: person.UpdateVirtualGyms}
	opDeleteVirtualGym = authz.Operation{Controller: "VirtualGymController", Action: "delete", Entity: "virtual gym"}
	opCreateGymZone    = authz.Operation{Controller: "GymZoneController", Action: "create", Entity: "gym zone", Permission: person.CreateGymZones}
	opUpdateGymZone    = authz.Operation{Controller: "GymZoneController", Action: "update", Entity: "gym zone", Permission: person.UpdateGymZones}
	opDeleteGymZone    = authz.Operation{Controller: "GymZoneController", Action: "delete", Entity: "gym zone", Permission: person.DeleteGymZones}
)

type Service interface {
	CreateVirtualGym(ctx context.Context, actor authz.Actor, req VirtualGymRequest) (*VirtualGym, error)
	UpdateVirtualGym(ctx context.Context, actor authz.Actor, id int, req VirtualGymRequest) error
	DeleteVirtualGym(ctx context.Context, actor authz.Actor, id int) error
	ListVirtualGyms(ctx context.Context, actor authz.Actor) ([]VirtualGym, error)

	CreateGymZone(ctx context.Context, actor authz.Actor, virtualGymID int, req GymZoneRequest) (*GymZone, error)
	UpdateGymZone(ctx context.Context, actor authz.Actor, id int, req GymZoneRequest) error
	DeleteGymZone(ctx context.Context, actor authz.Actor, id int) error
	ListGymZones(ctx context.Context, actor authz.Actor, virtualGymID int) ([]GymZone, error)
}

type service struct {
	repo     Repository
	people   person.Repository
	resolver person.Resolver
}

func NewService(repo Repository, people person.Repository, resolver person.Resolver) Service {
	return &service{repo: repo, people: people, resolver: resolver}
}

func checkHours(opening, closing calendar.TimeOfDay) error {
	if !opening.Before(closing) {
		return apperr.ClientError(MessageTimeOrder, nil)
	}
	return nil
}

func (s *service) CreateVirtualGym(ctx context.Context, actor authz.Actor, req VirtualGymRequest) (*VirtualGym, error) {
	if err := checkHours(req.OpenTime, req.CloseTime); err != nil {
		return nil, err
	}

	return authz.CreatedByOwner(ctx, s.resolver, actor, opCreateVirtualGym, func(ctx context.Context) (*VirtualGym, error) {
		gymID, err := s.people.GymOf(ctx, actor.PersonID)
		if err != nil {
			return nil, err
		}
		return s.repo.CreateVirtualGym(ctx, req.ToEntity(gymID))
	})
}

func (s *service) countVirtualGym(actor authz.Actor, id int) func(context.Context) (int, error) {
	return func(ctx context.Context) (int, error) {
		gymID, err := s.people.GymOf(ctx, actor.PersonID)
		if err != nil {
			return 0, err
		}
		return s.repo.CountVirtualGyms(ctx, id, gymID)
	}
}

func (s *service) UpdateVirtualGym(ctx context.Context, actor authz.Actor, id int, req VirtualGymRequest) error {
	if err := checkHours(req.OpenTime, req.CloseTime); err != nil {
		return err
	}

	return authz.UpdatedByOwnerOrWorker(ctx, s.resolver, actor, opUpdateVirtualGym, authz.Mutation{
		Count: s.countVirtualGym(actor, id),
		Apply: func(ctx context.Context) error {
			vg := req.ToEntity(0)
			vg.ID = id
			return s.repo.UpdateVirtualGym(ctx, vg)
		},
	})
}

func (s *service) DeleteVirtualGym(ctx context.Context, actor authz.Actor, id int) error {
	return authz.DeletedByOwner(ctx, s.resolver, actor, opDeleteVirtualGym, authz.Mutation{
		Count: s.countVirtualGym(actor, id),
		Apply: func(ctx context.Context) error { return s.repo.DeleteVirtualGym(ctx, id) },
	})
}

func (s *service) ListVirtualGyms(ctx context.Context, actor authz.Actor) ([]VirtualGym, error) {
	gymID, err := s.people.GymOf(ctx, actor.PersonID)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	gyms, err := s.repo.ListVirtualGyms(ctx, gymID)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return gyms, nil
}

// virtualGymInGym loads the virtual gym only when it belongs to the actor's
// gym.
func (s *service) virtualGymInGym(ctx context.Context, actor authz.Actor, id int) (*VirtualGym, error) {
	gymID, err := s.people.GymOf(ctx, actor.PersonID)
	if err != nil {
		return nil, err
	}
	vg, err := s.repo.FindVirtualGym(ctx, id)
	if errors.Is(err, ErrVirtualGymNotFound) || (err == nil && vg.GymID != gymID) {
		return nil, apperr.NotFound(MessageVirtualGymNotFound)
	}
	return vg, err
}

func (s *service) CreateGymZone(ctx context.Context, actor authz.Actor, virtualGymID int, req GymZoneRequest) (*GymZone, error) {
	if err := checkHours(req.OpenTime, req.CloseTime); err != nil {
		return nil, err
	}

	return authz.CreatedByOwnerOrWorker(ctx, s.resolver, actor, opCreateGymZone, func(ctx context.Context) (*GymZone, error) {
		vg, err := s.virtualGymInGym(ctx, actor, virtualGymID)
		if err != nil {
			return nil, err
		}
		if req.OpenTime.Before(vg.OpenTime) || req.CloseTime.After(vg.CloseTime) {
			return nil, apperr.ClientError(MessageZoneOutsideHours, nil)
		}
		return s.repo.CreateGymZone(ctx, req.ToEntity(virtualGymID))
	})
}

func (s *service) countGymZone(actor authz.Actor, id int) func(context.Context) (int, error) {
	return func(ctx context.Context) (int, error) {
		gymID, err := s.people.GymOf(ctx, actor.PersonID)
		if err != nil {
			return 0, err
		}
		return s.repo.CountGymZones(ctx, id, gymID)
	}
}

func (s *service) UpdateGymZone(ctx context.Context, actor authz.Actor, id int, req GymZoneRequest) error {
	if err := checkHours(req.OpenTime, req.CloseTime); err != nil {
		return err
	}

	return authz.UpdatedByOwnerOrWorker(ctx, s.resolver, actor, opUpdateGymZone, authz.Mutation{
		Count: s.countGymZone(actor, id),
		Apply: func(ctx context.Context) error {
			z := req.ToEntity(0)
			z.ID = id
			return s.repo.UpdateGymZone(ctx, z)
		},
	})
}

func (s *service) DeleteGymZone(ctx context.Context, actor authz.Actor, id int) error {
	return authz.DeletedByOwnerOrWorker(ctx, s.resolver, actor, opDeleteGymZone, authz.Mutation{
		Count: s.countGymZone(actor, id),
		Apply: func(ctx context.Context) error { return s.repo.DeleteGymZone(ctx, id) },
	})
}

func (s *service) ListGymZones(ctx context.Context, actor authz.Actor, virtualGymID int) ([]GymZone, error) {
	if _, err := s.virtualGymInGym(ctx, actor, virtualGymID); err != nil {
		return nil, apperr.From(err)
	}
	zones, err := s.repo.ListGymZones(ctx, virtualGymID)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return zones, nil
}
