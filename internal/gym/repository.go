package gym

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
)

var (
	ErrVirtualGymNotFound = errors.New("virtual gym not found")
	ErrGymZoneNotFound    = errors.New("gym zone not found")
)

const (
	virtualGymColumns = `id, gym_id, name, description, location, capacity, phone, open_time, close_time, created_at`
	gymZoneColumns    = `z.id, z.virtual_gym_id, z.calendar_id, z.name, z.description, z.is_class_type, z.capacity,
		z.mask_required, z.covid_passport, z.open_time, z.close_time, z.created_at`
)

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func affected(res sql.Result, notFound error) error {
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return notFound
	}
	return nil
}

func (r *repository) CreateVirtualGym(ctx context.Context, vg VirtualGym) (*VirtualGym, error) {
	query := `
		INSERT INTO virtual_gyms (gym_id, name, description, location, capacity, phone, open_time, close_time)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + virtualGymColumns

	var out VirtualGym
	err := r.db.GetContext(ctx, &out, query,
		vg.GymID, vg.Name, vg.Description, vg.Location, vg.Capacity, vg.Phone, vg.OpenTime, vg.CloseTime)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *repository) FindVirtualGym(ctx context.Context, id int) (*VirtualGym, error) {
	var vg VirtualGym
	err := r.db.GetContext(ctx, &vg, `SELECT `+virtualGymColumns+` FROM virtual_gyms WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrVirtualGymNotFound
	}
	if err != nil {
		return nil, err
	}
	return &vg, nil
}

func (r *repository) CountVirtualGyms(ctx context.Context, id, gymID int) (int, error) {
	var count int
	err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM virtual_gyms WHERE id = $1 AND gym_id = $2`, id, gymID)
	return count, err
}

func (r *repository) UpdateVirtualGym(ctx context.Context, vg VirtualGym) error {
	query := `
		UPDATE virtual_gyms
		SET name = $1, description = $2, location = $3, capacity = $4, phone = $5, open_time = $6, close_time = $7
		WHERE id = $8`

	res, err := r.db.ExecContext(ctx, query,
		vg.Name, vg.Description, vg.Location, vg.Capacity, vg.Phone, vg.OpenTime, vg.CloseTime, vg.ID)
	if err != nil {
		return err
	}
	return affected(res, ErrVirtualGymNotFound)
}

func (r *repository) DeleteVirtualGym(ctx context.Context, id int) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM virtual_gyms WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return affected(res, ErrVirtualGymNotFound)
}

func (r *repository) ListVirtualGyms(ctx context.Context, gymID int) ([]VirtualGym, error) {
	gyms := []VirtualGym{}
	err := r.db.SelectContext(ctx, &gyms, `SELECT `+virtualGymColumns+` FROM virtual_gyms WHERE gym_id = $1 ORDER BY id`, gymID)
	return gyms, err
}

// CreateGymZone creates the zone together with its calendar.
func (r *repository) CreateGymZone(ctx context.Context, z GymZone) (*GymZone, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback() }()

	if err := tx.GetContext(ctx, &z.CalendarID, `INSERT INTO calendars DEFAULT VALUES RETURNING id`); err != nil {
		return nil, err
	}

	query := `
		INSERT INTO gym_zones (virtual_gym_id, calendar_id, name, description, is_class_type, capacity,
			mask_required, covid_passport, open_time, close_time)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, created_at`

	err = tx.QueryRowxContext(ctx, query,
		z.VirtualGymID, z.CalendarID, z.Name, z.Description, z.IsClassType, z.Capacity,
		z.MaskRequired, z.CovidPassport, z.OpenTime, z.CloseTime,
	).Scan(&z.ID, &z.CreatedAt)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return &z, nil
}

func (r *repository) findZone(ctx context.Context, where string, arg int) (*GymZone, error) {
	var z GymZone
	err := r.db.GetContext(ctx, &z, `SELECT `+gymZoneColumns+` FROM gym_zones z WHERE `+where, arg)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrGymZoneNotFound
	}
	if err != nil {
		return nil, err
	}
	return &z, nil
}

func (r *repository) FindGymZone(ctx context.Context, id int) (*GymZone, error) {
	return r.findZone(ctx, `z.id = $1`, id)
}

func (r *repository) FindGymZoneByCalendar(ctx context.Context, calendarID int) (*GymZone, error) {
	return r.findZone(ctx, `z.calendar_id = $1`, calendarID)
}

func (r *repository) CountGymZones(ctx context.Context, id, gymID int) (int, error) {
	query := `
		SELECT COUNT(*) FROM gym_zones z
		JOIN virtual_gyms vg ON vg.id = z.virtual_gym_id
		WHERE z.id = $1 AND vg.gym_id = $2`

	var count int
	err := r.db.GetContext(ctx, &count, query, id, gymID)
	return count, err
}

func (r *repository) UpdateGymZone(ctx context.Context, z GymZone) error {
	query := `
		UPDATE gym_zones
		SET name = $1, description = $2, is_class_type = $3, capacity = $4, mask_required = $5,
			covid_passport = $6, open_time = $7, close_time = $8
		WHERE id = $9`

	res, err := r.db.ExecContext(ctx, query,
		z.Name, z.Description, z.IsClassType, z.Capacity, z.MaskRequired, z.CovidPassport, z.OpenTime, z.CloseTime, z.ID)
	if err != nil {
		return err
	}
	return affected(res, ErrGymZoneNotFound)
}

// DeleteGymZone drops the zone's calendar; the zone, its events and every
// appointment follow through the cascade.
func (r *repository) DeleteGymZone(ctx context.Context, id int) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM calendars WHERE id IN (SELECT calendar_id FROM gym_zones WHERE id = $1)`, id)
	if err != nil {
		return err
	}
	return affected(res, ErrGymZoneNotFound)
}

func (r *repository) ListGymZones(ctx context.Context, virtualGymID int) ([]GymZone, error) {
	zones := []GymZone{}
	err := r.db.SelectContext(ctx, &zones,
		`SELECT `+gymZoneColumns+` FROM gym_zones z WHERE z.virtual_gym_id = $1 ORDER BY z.id`, virtualGymID)
	return zones, err
}
