package gym

import (
	"time"

	"github.com/mikededo/hubbl-sub000/internal/calendar"
)

type VirtualGym struct {
	ID          int                `db:"id" json:"id"`
	GymID       int                `db:"gym_id" json:"gym"`
	Name        string             `db:"name" json:"name"`
	Description string             `db:"description" json:"description"`
	Location    string             `db:"location" json:"location"`
	Capacity    int                `db:"capacity" json:"capacity"`
	Phone       string             `db:"phone" json:"phone"`
	OpenTime    calendar.TimeOfDay `db:"open_time" json:"openTime"`
	CloseTime   calendar.TimeOfDay `db:"close_time" json:"closeTime"`
	CreatedAt   time.Time          `db:"created_at" json:"createdAt"`
}

// GymZone is a bookable area of a virtual gym. Its calendar holds both the
// events run in the zone and the free-slot appointments.
type GymZone struct {
	ID            int                `db:"id" json:"id"`
	VirtualGymID  int                `db:"virtual_gym_id" json:"virtualGym"`
	CalendarID    int                `db:"calendar_id" json:"calendar"`
	Name          string             `db:"name" json:"name"`
	Description   string             `db:"description" json:"description"`
	IsClassType   bool               `db:"is_class_type" json:"isClassType"`
	Capacity      int                `db:"capacity" json:"capacity"`
	MaskRequired  bool               `db:"mask_required" json:"maskRequired"`
	CovidPassport bool               `db:"covid_passport" json:"covidPassport"`
	OpenTime      calendar.TimeOfDay `db:"open_time" json:"openTime"`
	CloseTime     calendar.TimeOfDay `db:"close_time" json:"closeTime"`
	CreatedAt     time.Time          `db:"created_at" json:"createdAt"`
}

// Covers reports whether [start, end] lies inside the zone's opening hours.
func (z GymZone) Covers(start, end calendar.TimeOfDay) bool {
	return !start.Before(z.OpenTime) && !end.After(z.CloseTime)
}

type VirtualGymRequest struct {
	Name        string             `json:"name" validate:"required,max=255"`
	Description string             `json:"description"`
	Location    string             `json:"location" validate:"required,max=255"`
	Capacity    int                `json:"capacity" validate:"required,gt=0"`
	Phone       string             `json:"phone" validate:"omitempty,max=64"`
	OpenTime    calendar.TimeOfDay `json:"openTime" validate:"required,timeofday"`
	CloseTime   calendar.TimeOfDay `json:"closeTime" validate:"required,timeofday"`
}

func (r VirtualGymRequest) ToEntity(gymID int) VirtualGym {
	return VirtualGym{
		GymID:       gymID,
		Name:        r.Name,
		Description: r.Description,
		Location:    r.Location,
		Capacity:    r.Capacity,
		Phone:       r.Phone,
		OpenTime:    r.OpenTime,
		CloseTime:   r.CloseTime,
	}
}

type GymZoneRequest struct {
	Name          string             `json:"name" validate:"required,max=255"`
	Description   string             `json:"description"`
	IsClassType   bool               `json:"isClassType"`
	Capacity      int                `json:"capacity" validate:"required,gt=0"`
	MaskRequired  bool               `json:"maskRequired"`
	CovidPassport bool               `json:"covidPassport"`
	OpenTime      calendar.TimeOfDay `json:"openTime" validate:"required,timeofday"`
	CloseTime     calendar.TimeOfDay `json:"closeTime" validate:"required,timeofday"`
}

func (r GymZoneRequest) ToEntity(virtualGymID int) GymZone {
	return GymZone{
		VirtualGymID:  virtualGymID,
		Name:          r.Name,
		Description:   r.Description,
		IsClassType:   r.IsClassType,
		Capacity:      r.Capacity,
		MaskRequired:  r.MaskRequired,
		CovidPassport: r.CovidPassport,
		OpenTime:      r.OpenTime,
		CloseTime:     r.CloseTime,
	}
}
