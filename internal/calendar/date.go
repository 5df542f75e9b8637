package calendar

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"time"
)

var ErrInvalidDate = errors.New("invalid calendar date")

const dateLayout = "2006-01-02"

// Date is a day on the calendar, independent of any time zone.
type Date struct {
	Year  int `json:"year" validate:"required,gte=1970"`
	Month int `json:"month" validate:"required,gte=1,lte=12"`
	Day   int `json:"day" validate:"required,gte=1,lte=31"`
}

func NewDate(year, month, day int) (Date, error) {
	d := Date{Year: year, Month: month, Day: day}
	if !d.Valid() {
		return Date{}, ErrInvalidDate
	}
	return d, nil
}

func DateOf(t time.Time) Date {
	return Date{Year: t.Year(), Month: int(t.Month()), Day: t.Day()}
}

// Valid reports whether the date exists (no Feb 30th, no month 13).
func (d Date) Valid() bool {
	if d.Month < 1 || d.Month > 12 || d.Day < 1 {
		return false
	}
	t := time.Date(d.Year, time.Month(d.Month), d.Day, 0, 0, 0, 0, time.UTC)
	return t.Year() == d.Year && int(t.Month()) == d.Month && t.Day() == d.Day
}

// Midnight returns the start of the day in loc.
func (d Date) Midnight(loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	return time.Date(d.Year, time.Month(d.Month), d.Day, 0, 0, 0, 0, loc)
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

func (d Date) Value() (driver.Value, error) {
	if !d.Valid() {
		return nil, ErrInvalidDate
	}
	return d.String(), nil
}

func (d *Date) Scan(src any) error {
	switch v := src.(type) {
	case time.Time:
		*d = DateOf(v)
		return nil
	case []byte:
		return d.parse(string(v))
	case string:
		return d.parse(v)
	case nil:
		*d = Date{}
		return nil
	default:
		return fmt.Errorf("calendar: cannot scan %T into Date", src)
	}
}

func (d *Date) parse(s string) error {
	if len(s) > len(dateLayout) {
		s = s[:len(dateLayout)]
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return fmt.Errorf("calendar: %w", err)
	}
	*d = DateOf(t)
	return nil
}
