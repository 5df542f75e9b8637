package person

import (
	"context"
	"errors"
)

// Resolver answers whether the principal behind a token still exists and,
// for workers and clients, hands back the record carrying its flags.
// A missing record is reported as nil with a nil error.
type Resolver interface {
	OwnerExists(ctx context.Context, personID int) (bool, error)
	FindWorker(ctx context.Context, personID int) (*Worker, error)
	FindClient(ctx context.Context, personID int) (*Client, error)
}

type resolver struct {
	repo Repository
}

func NewResolver(repo Repository) Resolver {
	return &resolver{repo: repo}
}

func (r *resolver) OwnerExists(ctx context.Context, personID int) (bool, error) {
	count, err := r.repo.CountOwners(ctx, personID)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *resolver) FindWorker(ctx context.Context, personID int) (*Worker, error) {
	w, err := r.repo.FindWorker(ctx, personID)
	if errors.Is(err, ErrNotFound) {
		return nil, nil
	}
	return w, err
}

func (r *resolver) FindClient(ctx context.Context, personID int) (*Client, error) {
	c, err := r.repo.FindClient(ctx, personID)
	if errors.Is(err, ErrNotFound) {
		return nil, nil
	}
	return c, err
}
