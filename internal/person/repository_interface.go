package person

import (
	"context"

	"github.com/mikededo/hubbl-sub000/internal/auth"
)

type Repository interface {
	EmailExists(ctx context.Context, email string) (bool, error)
	GymExists(ctx context.Context, gymID int) (bool, error)
	FindByEmail(ctx context.Context, email string) (*Person, error)
	FindByID(ctx context.Context, id int) (*Person, error)
	RoleOf(ctx context.Context, personID int) (auth.Role, error)
	GymOf(ctx context.Context, personID int) (int, error)
	Delete(ctx context.Context, personID int) error

	CreateOwner(ctx context.Context, p Person, g Gym) (*Owner, error)
	FindOwner(ctx context.Context, personID int) (*Owner, error)
	CountOwners(ctx context.Context, personID int) (int, error)

	CreateWorker(ctx context.Context, w Worker) (*Worker, error)
	FindWorker(ctx context.Context, personID int) (*Worker, error)
	CountWorkers(ctx context.Context, personID, gymID int) (int, error)
	UpdateWorker(ctx context.Context, w Worker) error
	ListWorkers(ctx context.Context, gymID int) ([]Worker, error)

	CreateClient(ctx context.Context, c Client) (*Client, error)
	FindClient(ctx context.Context, personID int) (*Client, error)
	CountClients(ctx context.Context, personID, gymID int) (int, error)
	UpdateClient(ctx context.Context, c Client) error
	ListClients(ctx context.Context, gymID int) ([]Client, error)

	CreateTrainer(ctx context.Context, t Trainer) (*Trainer, error)
	FindTrainer(ctx context.Context, personID int) (*Trainer, error)
	CountTrainers(ctx context.Context, personID, gymID int) (int, error)
	UpdateTrainer(ctx context.Context, t Trainer) error
	ListTrainers(ctx context.Context, gymID int) ([]Trainer, error)
}
