package gym

import "context"

type Repository interface {
	CreateVirtualGym(ctx context.Context, vg VirtualGym) (*VirtualGym, error)
	FindVirtualGym(ctx context.Context, id int) (*VirtualGym, error)
	CountVirtualGyms(ctx context.Context, id, gymID int) (int, error)
	UpdateVirtualGym(ctx context.Context, vg VirtualGym) error
	DeleteVirtualGym(ctx context.Context, id int) error
	ListVirtualGyms(ctx context.Context, gymID int) ([]VirtualGym, error)

	CreateGymZone(ctx context.Context, z GymZone) (*GymZone, error)
	FindGymZone(ctx context.Context, id int) (*GymZone, error)
	FindGymZoneByCalendar(ctx context.Context, calendarID int) (*GymZone, error)
	CountGymZones(ctx context.Context, id, gymID int) (int, error)
	UpdateGymZone(ctx context.Context, z GymZone) error
	DeleteGymZone(ctx context.Context, id int) error
	ListGymZones(ctx context.Context, virtualGymID int) ([]GymZone, error)
}
