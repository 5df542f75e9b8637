package person

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/mikededo/hubbl-sub000/internal/auth"
)

var (
	ErrNotFound    = errors.New("person not found")
	ErrEmailExists = errors.New("email already registered")
)

const personColumns = "p.id, p.first_name, p.last_name, p.email, p.password_hash, p.gender, p.created_at"

var permissionColumns = []string{
	"update_virtual_gyms",
	"create_gym_zones", "update_gym_zones", "delete_gym_zones",
	"create_trainers", "update_trainers", "delete_trainers",
	"create_clients", "update_clients", "delete_clients",
	"create_events", "update_events", "delete_events",
	"create_event_appointments", "update_event_appointments", "delete_event_appointments",
	"create_calendar_appointments", "update_calendar_appointments", "delete_calendar_appointments",
}

// values follows the order of permissionColumns.
func (p Permissions) values() []any {
	return []any{
		p.UpdateVirtualGyms,
		p.CreateGymZones, p.UpdateGymZones, p.DeleteGymZones,
		p.CreateTrainers, p.UpdateTrainers, p.DeleteTrainers,
		p.CreateClients, p.UpdateClients, p.DeleteClients,
		p.CreateEvents, p.UpdateEvents, p.DeleteEvents,
		p.CreateEventAppointments, p.UpdateEventAppointments, p.DeleteEventAppointments,
		p.CreateCalendarAppointments, p.UpdateCalendarAppointments, p.DeleteCalendarAppointments,
	}
}

var (
	workerSelect = "SELECT " + personColumns + ", w.gym_id, w." + strings.Join(permissionColumns, ", w.") +
		" FROM persons p JOIN workers w ON w.person_id = p.id"
	workerInsert = func() string {
		marks := make([]string, 0, len(permissionColumns)+2)
		for i := 1; i <= len(permissionColumns)+2; i++ {
			marks = append(marks, fmt.Sprintf("$%d", i))
		}
		return "INSERT INTO workers (person_id, gym_id, " + strings.Join(permissionColumns, ", ") +
			") VALUES (" + strings.Join(marks, ", ") + ")"
	}()
	workerUpdate = func() string {
		sets := make([]string, 0, len(permissionColumns))
		for i, col := range permissionColumns {
			sets = append(sets, fmt.Sprintf("%s = $%d", col, i+2))
		}
		return "UPDATE workers SET " + strings.Join(sets, ", ") + " WHERE person_id = $1"
	}()
)

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) withTx(ctx context.Context, fn func(tx *sqlx.Tx) error) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}

func insertPerson(ctx context.Context, tx *sqlx.Tx, p *Person) error {
	query := `INSERT INTO persons (first_name, last_name, email, password_hash, gender)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at`
	return tx.QueryRowxContext(ctx, query, p.FirstName, p.LastName, p.Email, p.PasswordHash, p.Gender).
		Scan(&p.ID, &p.CreatedAt)
}

func updatePerson(ctx context.Context, tx *sqlx.Tx, p Person) error {
	query := `UPDATE persons SET first_name = $1, last_name = $2, email = $3, gender = $4 WHERE id = $5`
	res, err := tx.ExecContext(ctx, query, p.FirstName, p.LastName, p.Email, p.Gender, p.ID)
	if err != nil {
		return err
	}
	return expectRow(res)
}

func expectRow(res sql.Result) error {
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}

func notFound(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	return err
}

func (r *repository) EmailExists(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.db.GetContext(ctx, &exists, `SELECT EXISTS(SELECT 1 FROM persons WHERE email = $1)`, email)
	return exists, err
}

func (r *repository) GymExists(ctx context.Context, gymID int) (bool, error) {
	var exists bool
	err := r.db.GetContext(ctx, &exists, `SELECT EXISTS(SELECT 1 FROM gyms WHERE id = $1)`, gymID)
	return exists, err
}

func (r *repository) FindByEmail(ctx context.Context, email string) (*Person, error) {
	var p Person
	query := `SELECT ` + personColumns + ` FROM persons p WHERE p.email = $1`
	if err := r.db.GetContext(ctx, &p, query, email); err != nil {
		return nil, notFound(err)
	}
	return &p, nil
}

func (r *repository) FindByID(ctx context.Context, id int) (*Person, error) {
	var p Person
	query := `SELECT ` + personColumns + ` FROM persons p WHERE p.id = $1`
	if err := r.db.GetContext(ctx, &p, query, id); err != nil {
		return nil, notFound(err)
	}
	return &p, nil
}

// RoleOf reports which principal table the person belongs to. Trainers are
// not principals and come back as ErrNotFound.
func (r *repository) RoleOf(ctx context.Context, personID int) (auth.Role, error) {
	query := `SELECT CASE
			WHEN EXISTS(SELECT 1 FROM owners WHERE person_id = $1) THEN 'owner'
			WHEN EXISTS(SELECT 1 FROM workers WHERE person_id = $1) THEN 'worker'
			WHEN EXISTS(SELECT 1 FROM clients WHERE person_id = $1) THEN 'client'
			ELSE '' END`

	var role string
	if err := r.db.GetContext(ctx, &role, query, personID); err != nil {
		return "", err
	}
	if role == "" {
		return "", ErrNotFound
	}
	return auth.Role(role), nil
}

func (r *repository) GymOf(ctx context.Context, personID int) (int, error) {
	query := `SELECT gym_id FROM owners WHERE person_id = $1
		UNION ALL SELECT gym_id FROM workers WHERE person_id = $1
		UNION ALL SELECT gym_id FROM clients WHERE person_id = $1
		LIMIT 1`

	var gymID int
	if err := r.db.GetContext(ctx, &gymID, query, personID); err != nil {
		return 0, notFound(err)
	}
	return gymID, nil
}

// Delete removes the person; the role row goes with it through the cascade.
func (r *repository) Delete(ctx context.Context, personID int) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM persons WHERE id = $1`, personID)
	if err != nil {
		return err
	}
	return expectRow(res)
}

func (r *repository) CreateOwner(ctx context.Context, p Person, g Gym) (*Owner, error) {
	owner := Owner{Person: p}
	err := r.withTx(ctx, func(tx *sqlx.Tx) error {
		err := tx.QueryRowxContext(ctx,
			`INSERT INTO gyms (name, email, phone) VALUES ($1, $2, $3) RETURNING id`,
			g.Name, g.Email, g.Phone,
		).Scan(&owner.GymID)
		if err != nil {
			return err
		}
		if err := insertPerson(ctx, tx, &owner.Person); err != nil {
			return err
		}
		_, err = tx.ExecContext(ctx, `INSERT INTO owners (person_id, gym_id) VALUES ($1, $2)`, owner.ID, owner.GymID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return &owner, nil
}

func (r *repository) FindOwner(ctx context.Context, personID int) (*Owner, error) {
	var o Owner
	query := `SELECT ` + personColumns + `, o.gym_id FROM persons p JOIN owners o ON o.person_id = p.id WHERE p.id = $1`
	if err := r.db.GetContext(ctx, &o, query, personID); err != nil {
		return nil, notFound(err)
	}
	return &o, nil
}

func (r *repository) CountOwners(ctx context.Context, personID int) (int, error) {
	var count int
	err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM owners WHERE person_id = $1`, personID)
	return count, err
}

func (r *repository) CreateWorker(ctx context.Context, w Worker) (*Worker, error) {
	err := r.withTx(ctx, func(tx *sqlx.Tx) error {
		if err := insertPerson(ctx, tx, &w.Person); err != nil {
			return err
		}
		args := append([]any{w.ID, w.GymID}, w.Permissions.values()...)
		_, err := tx.ExecContext(ctx, workerInsert, args...)
		return err
	})
	if err != nil {
		return nil, err
	}
	return &w, nil
}

func (r *repository) FindWorker(ctx context.Context, personID int) (*Worker, error) {
	var w Worker
	if err := r.db.GetContext(ctx, &w, workerSelect+` WHERE p.id = $1`, personID); err != nil {
		return nil, notFound(err)
	}
	return &w, nil
}

// CountWorkers counts the worker inside gymID. A zero gymID counts in any
// gym.
func (r *repository) CountWorkers(ctx context.Context, personID, gymID int) (int, error) {
	return r.countRole(ctx, "workers", personID, gymID)
}

func (r *repository) countRole(ctx context.Context, table string, personID, gymID int) (int, error) {
	var count int
	query := `SELECT COUNT(*) FROM ` + table + ` WHERE person_id = $1 AND ($2 = 0 OR gym_id = $2)`
	err := r.db.GetContext(ctx, &count, query, personID, gymID)
	return count, err
}

func (r *repository) UpdateWorker(ctx context.Context, w Worker) error {
	return r.withTx(ctx, func(tx *sqlx.Tx) error {
		if err := updatePerson(ctx, tx, w.Person); err != nil {
			return err
		}
		args := append([]any{w.ID}, w.Permissions.values()...)
		_, err := tx.ExecContext(ctx, workerUpdate, args...)
		return err
	})
}

func (r *repository) ListWorkers(ctx context.Context, gymID int) ([]Worker, error) {
	workers := []Worker{}
	err := r.db.SelectContext(ctx, &workers, workerSelect+` WHERE w.gym_id = $1 ORDER BY p.id`, gymID)
	return workers, err
}

func (r *repository) CreateClient(ctx context.Context, c Client) (*Client, error) {
	err := r.withTx(ctx, func(tx *sqlx.Tx) error {
		if err := insertPerson(ctx, tx, &c.Person); err != nil {
			return err
		}
		_, err := tx.ExecContext(ctx,
			`INSERT INTO clients (person_id, gym_id, covid_passport) VALUES ($1, $2, $3)`,
			c.ID, c.GymID, c.CovidPassport,
		)
		return err
	})
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *repository) FindClient(ctx context.Context, personID int) (*Client, error) {
	var c Client
	query := `SELECT ` + personColumns + `, c.gym_id, c.covid_passport FROM persons p JOIN clients c ON c.person_id = p.id WHERE p.id = $1`
	if err := r.db.GetContext(ctx, &c, query, personID); err != nil {
		return nil, notFound(err)
	}
	return &c, nil
}

func (r *repository) CountClients(ctx context.Context, personID, gymID int) (int, error) {
	return r.countRole(ctx, "clients", personID, gymID)
}

func (r *repository) UpdateClient(ctx context.Context, c Client) error {
	return r.withTx(ctx, func(tx *sqlx.Tx) error {
		if err := updatePerson(ctx, tx, c.Person); err != nil {
			return err
		}
		_, err := tx.ExecContext(ctx, `UPDATE clients SET covid_passport = $1 WHERE person_id = $2`, c.CovidPassport, c.ID)
		return err
	})
}

func (r *repository) ListClients(ctx context.Context, gymID int) ([]Client, error) {
	clients := []Client{}
	query := `SELECT ` + personColumns + `, c.gym_id, c.covid_passport FROM persons p JOIN clients c ON c.person_id = p.id WHERE c.gym_id = $1 ORDER BY p.id`
	err := r.db.SelectContext(ctx, &clients, query, gymID)
	return clients, err
}

func (r *repository) CreateTrainer(ctx context.Context, t Trainer) (*Trainer, error) {
	err := r.withTx(ctx, func(tx *sqlx.Tx) error {
		if err := insertPerson(ctx, tx, &t.Person); err != nil {
			return err
		}
		_, err := tx.ExecContext(ctx,
			`INSERT INTO trainers (person_id, gym_id, worker_code) VALUES ($1, $2, $3)`,
			t.ID, t.GymID, t.WorkerCode,
		)
		return err
	})
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *repository) FindTrainer(ctx context.Context, personID int) (*Trainer, error) {
	var t Trainer
	query := `SELECT ` + personColumns + `, t.gym_id, t.worker_code FROM persons p JOIN trainers t ON t.person_id = p.id WHERE p.id = $1`
	if err := r.db.GetContext(ctx, &t, query, personID); err != nil {
		return nil, notFound(err)
	}
	return &t, nil
}

func (r *repository) CountTrainers(ctx context.Context, personID, gymID int) (int, error) {
	return r.countRole(ctx, "trainers", personID, gymID)
}

func (r *repository) UpdateTrainer(ctx context.Context, t Trainer) error {
	return r.withTx(ctx, func(tx *sqlx.Tx) error {
		if err := updatePerson(ctx, tx, t.Person); err != nil {
			return err
		}
		_, err := tx.ExecContext(ctx, `UPDATE trainers SET worker_code = $1 WHERE person_id = $2`, t.WorkerCode, t.ID)
		return err
	})
}

func (r *repository) ListTrainers(ctx context.Context, gymID int) ([]Trainer, error) {
	trainers := []Trainer{}
	query := `SELECT ` + personColumns + `, t.gym_id, t.worker_code FROM persons p JOIN trainers t ON t.person_id = p.id WHERE t.gym_id = $1 ORDER BY p.id`
	err := r.db.SelectContext(ctx, &trainers, query, gymID)
	return trainers, err
}
