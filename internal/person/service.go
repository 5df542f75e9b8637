package person

import (
	"context"
	"errors"

	"github.com/mikededo/hubbl-sub000/internal/apperr"
	"github.com/mikededo/hubbl-sub000/internal/auth"
	"github.com/mikededo/hubbl-sub000/internal/logger"
)

const (
	MessageEmailExists        = "Email already registered."
	MessageGymNotFound        = "Gym does not exist."
	MessageInvalidCredentials = "Invalid email or password"
	MessageInvalidRefresh     = "Invalid refresh token"
	MessagePersonNotFound     = "Person not found."
)

// Service covers account operations: registration, login, token refresh
// and the profile of the caller.
type Service interface {
	RegisterClient(ctx context.Context, req RegisterClientRequest) (*AuthResponse, error)
	RegisterOwner(ctx context.Context, req RegisterOwnerRequest) (*AuthResponse, error)
	Login(ctx context.Context, req LoginRequest) (*AuthResponse, error)
	Refresh(ctx context.Context, req RefreshRequest) (*AuthResponse, error)
	Me(ctx context.Context, p auth.Principal) (any, error)
}

type service struct {
	repo      Repository
	jwtSecret string
}

func NewService(repo Repository, jwtSecret string) Service {
	return &service{repo: repo, jwtSecret: jwtSecret}
}

func (s *service) newPerson(ctx context.Context, fields PersonFields, password string) (Person, error) {
	var p Person
	fields.apply(&p)

	exists, err := s.repo.EmailExists(ctx, p.Email)
	if err != nil {
		return p, apperr.Internal(err)
	}
	if exists {
		return p, apperr.ClientError(MessageEmailExists, nil)
	}

	p.PasswordHash, err = auth.HashPassword(password)
	if err != nil {
		return p, apperr.Internal(err)
	}
	return p, nil
}

func (s *service) issue(p Person, role auth.Role, profile any) (*AuthResponse, error) {
	access, refresh, err := auth.GenerateTokens(p.ID, p.Email, role, s.jwtSecret)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return &AuthResponse{AccessToken: access, RefreshToken: refresh, Role: role, Person: profile}, nil
}

func (s *service) RegisterClient(ctx context.Context, req RegisterClientRequest) (*AuthResponse, error) {
	exists, err := s.repo.GymExists(ctx, req.Gym)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if !exists {
		return nil, apperr.ClientError(MessageGymNotFound, nil)
	}

	p, err := s.newPerson(ctx, req.PersonFields, req.Password)
	if err != nil {
		return nil, err
	}

	client, err := s.repo.CreateClient(ctx, Client{Person: p, GymID: req.Gym, CovidPassport: req.CovidPassport})
	if err != nil {
		return nil, apperr.Internal(err)
	}

	logger.Info("client registered", "person_id", client.ID, "gym_id", client.GymID)
	return s.issue(client.Person, auth.RoleClient, client)
}

func (s *service) RegisterOwner(ctx context.Context, req RegisterOwnerRequest) (*AuthResponse, error) {
	p, err := s.newPerson(ctx, req.PersonFields, req.Password)
	if err != nil {
		return nil, err
	}

	owner, err := s.repo.CreateOwner(ctx, p, Gym{Name: req.Gym.Name, Email: req.Gym.Email, Phone: req.Gym.Phone})
	if err != nil {
		return nil, apperr.Internal(err)
	}

	logger.Info("owner registered", "person_id", owner.ID, "gym_id", owner.GymID)
	return s.issue(owner.Person, auth.RoleOwner, owner)
}

func (s *service) Login(ctx context.Context, req LoginRequest) (*AuthResponse, error) {
	p, err := s.repo.FindByEmail(ctx, req.Email)
	if errors.Is(err, ErrNotFound) {
		return nil, apperr.Unauthorized(MessageInvalidCredentials)
	}
	if err != nil {
		return nil, apperr.Internal(err)
	}

	if !auth.CheckPassword(p.PasswordHash, req.Password) {
		return nil, apperr.Unauthorized(MessageInvalidCredentials)
	}

	role, err := s.repo.RoleOf(ctx, p.ID)
	if errors.Is(err, ErrNotFound) {
		return nil, apperr.Unauthorized(MessageInvalidCredentials)
	}
	if err != nil {
		return nil, apperr.Internal(err)
	}

	return s.issue(*p, role, p)
}

func (s *service) Refresh(_ context.Context, req RefreshRequest) (*AuthResponse, error) {
	access, claims, err := auth.RefreshAccessToken(req.RefreshToken, s.jwtSecret)
	if err != nil {
		return nil, apperr.Unauthorized(MessageInvalidRefresh)
	}
	return &AuthResponse{AccessToken: access, Role: claims.Role}, nil
}

func (s *service) Me(ctx context.Context, p auth.Principal) (any, error) {
	var (
		profile any
		err     error
	)
	switch p.Role {
	case auth.RoleOwner:
		profile, err = s.repo.FindOwner(ctx, p.PersonID)
	case auth.RoleWorker:
		profile, err = s.repo.FindWorker(ctx, p.PersonID)
	case auth.RoleClient:
		profile, err = s.repo.FindClient(ctx, p.PersonID)
	default:
		return nil, apperr.Unauthorized("")
	}
	if errors.Is(err, ErrNotFound) {
		return nil, apperr.NotFound(MessagePersonNotFound)
	}
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return profile, nil
}
