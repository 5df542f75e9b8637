package event

import (
	"time"

	"github.com/mikededo/hubbl-sub000/internal/calendar"
)

type Event struct {
	ID               int                `db:"id" json:"id"`
	CalendarID       int                `db:"calendar_id" json:"calendar"`
	TrainerID        *int               `db:"trainer_id" json:"trainer"`
	Name             string             `db:"name" json:"name"`
	Description      string             `db:"description" json:"description"`
	Capacity         int                `db:"capacity" json:"capacity"`
	CovidPassport    bool               `db:"covid_passport" json:"covidPassport"`
	MaskRequired     bool               `db:"mask_required" json:"maskRequired"`
	Difficulty       int                `db:"difficulty" json:"difficulty"`
	Date             calendar.Date      `db:"date" json:"date"`
	StartTime        calendar.TimeOfDay `db:"start_time" json:"startTime"`
	EndTime          calendar.TimeOfDay `db:"end_time" json:"endTime"`
	AppointmentCount int                `db:"appointment_count" json:"appointmentCount"`
	CreatedAt        time.Time          `db:"created_at" json:"createdAt"`
}

type EventRequest struct {
	Calendar      int                `json:"calendar" validate:"required,gt=0"`
	Trainer       *int               `json:"trainer" validate:"omitempty,gt=0"`
	Name          string             `json:"name" validate:"required,max=255"`
	Description   string             `json:"description"`
	Capacity      int                `json:"capacity" validate:"required,gt=0"`
	CovidPassport bool               `json:"covidPassport"`
	MaskRequired  bool               `json:"maskRequired"`
	Difficulty    int                `json:"difficulty" validate:"omitempty,gte=1,lte=5"`
	Date          calendar.Date      `json:"date" validate:"required"`
	StartTime     calendar.TimeOfDay `json:"startTime" validate:"required,timeofday"`
	EndTime       calendar.TimeOfDay `json:"endTime" validate:"required,timeofday"`
}

func (r EventRequest) ToEntity() Event {
	difficulty := r.Difficulty
	if difficulty == 0 {
		difficulty = 1
	}
	return Event{
		CalendarID:    r.Calendar,
		TrainerID:     r.Trainer,
		Name:          r.Name,
		Description:   r.Description,
		Capacity:      r.Capacity,
		CovidPassport: r.CovidPassport,
		MaskRequired:  r.MaskRequired,
		Difficulty:    difficulty,
		Date:          r.Date,
		StartTime:     r.StartTime,
		EndTime:       r.EndTime,
	}
}
