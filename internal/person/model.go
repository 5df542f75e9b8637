package person

import (
	"strings"
	"time"

	"github.com/mikededo/hubbl-sub000/internal/auth"
)

type Person struct {
	ID           int       `db:"id" json:"id"`
	FirstName    string    `db:"first_name" json:"firstName"`
	LastName     string    `db:"last_name" json:"lastName"`
	Email        string    `db:"email" json:"email"`
	PasswordHash string    `db:"password_hash" json:"-"`
	Gender       string    `db:"gender" json:"gender"`
	CreatedAt    time.Time `db:"created_at" json:"createdAt"`
}

func (p Person) FullName() string {
	return strings.TrimSpace(p.FirstName + " " + p.LastName)
}

// Gym is the organisation an owner registers. Every other person belongs to
// exactly one.
type Gym struct {
	ID        int       `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	Email     string    `db:"email" json:"email"`
	Phone     string    `db:"phone" json:"phone"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
}

type Owner struct {
	Person
	GymID int `db:"gym_id" json:"gym"`
}

type Worker struct {
	Person
	GymID int `db:"gym_id" json:"gym"`
	Permissions
}

type Client struct {
	Person
	GymID         int  `db:"gym_id" json:"gym"`
	CovidPassport bool `db:"covid_passport" json:"covidPassport"`
}

type Trainer struct {
	Person
	GymID      int    `db:"gym_id" json:"gym"`
	WorkerCode string `db:"worker_code" json:"workerCode"`
}

type PersonFields struct {
	FirstName string `json:"firstName" validate:"required,max=255"`
	LastName  string `json:"lastName" validate:"required,max=255"`
	Email     string `json:"email" validate:"required,email"`
	Gender    string `json:"gender" validate:"omitempty,oneof=man woman other"`
}

func (f PersonFields) apply(p *Person) {
	p.FirstName = f.FirstName
	p.LastName = f.LastName
	p.Email = strings.ToLower(f.Email)
	p.Gender = f.Gender
	if p.Gender == "" {
		p.Gender = "other"
	}
}

func (f PersonFields) ToEntity() Person {
	var p Person
	f.apply(&p)
	return p
}

type RegisterClientRequest struct {
	PersonFields
	Password      string `json:"password" validate:"required,min=6"`
	Gym           int    `json:"gym" validate:"required,gt=0"`
	CovidPassport bool   `json:"covidPassport"`
}

type GymFields struct {
	Name  string `json:"name" validate:"required,max=255"`
	Email string `json:"email" validate:"omitempty,email"`
	Phone string `json:"phone" validate:"omitempty,max=64"`
}

type RegisterOwnerRequest struct {
	PersonFields
	Password string    `json:"password" validate:"required,min=6"`
	Gym      GymFields `json:"gym" validate:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refreshToken" validate:"required"`
}

type AuthResponse struct {
	AccessToken  string    `json:"accessToken"`
	RefreshToken string    `json:"refreshToken,omitempty"`
	Role         auth.Role `json:"role"`
	Person       any       `json:"person,omitempty"`
}
