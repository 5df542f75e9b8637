package calendar

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"time"
)

var ErrInvalidTimeOfDay = errors.New("invalid time of day, expected HH:MM:SS")

var timeOfDayPattern = regexp.MustCompile(`^([01]\d|2[0-3]):([0-5]\d):([0-5]\d)$`)

// TimeOfDay is a wall clock time formatted as HH:MM:SS. Zero padding makes
// lexical order equal chronological order.
type TimeOfDay string

func ParseTimeOfDay(s string) (TimeOfDay, error) {
	if !timeOfDayPattern.MatchString(s) {
		return "", ErrInvalidTimeOfDay
	}
	return TimeOfDay(s), nil
}

func (t TimeOfDay) Valid() bool {
	return timeOfDayPattern.MatchString(string(t))
}

// Offset is the duration elapsed since midnight.
func (t TimeOfDay) Offset() (time.Duration, error) {
	m := timeOfDayPattern.FindStringSubmatch(string(t))
	if m == nil {
		return 0, ErrInvalidTimeOfDay
	}
	h, _ := strconv.Atoi(m[1])
	mins, _ := strconv.Atoi(m[2])
	sec, _ := strconv.Atoi(m[3])
	return time.Duration(h)*time.Hour + time.Duration(mins)*time.Minute + time.Duration(sec)*time.Second, nil
}

func (t TimeOfDay) Before(o TimeOfDay) bool { return t < o }

func (t TimeOfDay) After(o TimeOfDay) bool { return t > o }

func (t TimeOfDay) String() string { return string(t) }

// Scan normalises the TIME column values lib/pq hands back.
func (t *TimeOfDay) Scan(src any) error {
	var s string
	switch v := src.(type) {
	case []byte:
		s = string(v)
	case string:
		s = v
	case time.Time:
		s = v.Format("15:04:05")
	default:
		return fmt.Errorf("calendar: cannot scan %T into TimeOfDay", src)
	}
	if len(s) > 8 {
		s = s[:8]
	}
	parsed, err := ParseTimeOfDay(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Instant composes the date's local midnight with the time-of-day offset.
func Instant(d Date, t TimeOfDay, loc *time.Location) (time.Time, error) {
	if !d.Valid() {
		return time.Time{}, ErrInvalidDate
	}
	offset, err := t.Offset()
	if err != nil {
		return time.Time{}, err
	}
	return d.Midnight(loc).Add(offset), nil
}
