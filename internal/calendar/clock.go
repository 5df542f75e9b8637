package calendar

import "time"

// Clock answers "now" in the zone booking dates are interpreted in.
type Clock struct {
	Loc *time.Location
	now func() time.Time
}

func NewClock(loc *time.Location) Clock {
	if loc == nil {
		loc = time.UTC
	}
	return Clock{Loc: loc, now: time.Now}
}

// FixedClock always reports t. Used by tests.
func FixedClock(t time.Time) Clock {
	return Clock{Loc: t.Location(), now: func() time.Time { return t }}
}

func (c Clock) Now() time.Time {
	if c.now == nil {
		return time.Now()
	}
	return c.now()
}

// IsPast reports whether date at tod lies strictly before now.
func (c Clock) IsPast(date Date, tod TimeOfDay) (bool, error) {
	at, err := Instant(date, tod, c.Loc)
	if err != nil {
		return false, err
	}
	return at.Before(c.Now()), nil
}
