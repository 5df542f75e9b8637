package booking

import (
	"github.com/mikededo/hubbl-sub000/internal/calendar"
	"github.com/mikededo/hubbl-sub000/internal/gym"
	"github.com/mikededo/hubbl-sub000/internal/person"
)

type Rule string

const (
	RuleTimeOrder     Rule = "time_order"
	RuleNotPast       Rule = "not_past"
	RuleBusinessHours Rule = "business_hours"
	RuleCapacity      Rule = "capacity"
	RulePersonExists  Rule = "person_exists"
	RuleCovidPassport Rule = "covid_passport"
	RuleDuplicate     Rule = "duplicate"
)

const (
	MessageTimeOrder             = "startTime must be before endTime."
	MessageZoneClosed            = "Can not create an appointment if gym zone is closed."
	MessageEventFull             = "No places left for the seleted event."
	MessageZoneFull              = "No places left for the selected time."
	MessagePersonNotFound        = "Person does not exist"
	MessageCovidPassport         = "Client does not have a valid covid passport."
	MessageDuplicateEvent        = "Client already has an appointment for the selected event."
	MessageDuplicateCalendarSlot = "Client already has an appointment at the selected time."
	MessageAlreadyCancelled      = "Appointment already cancelled."
)

// Rejection is a failed booking rule.
type Rejection struct {
	Rule    Rule
	Message string
}

func (r *Rejection) Error() string { return r.Message }

func TimeOrder(start, end calendar.TimeOfDay) *Rejection {
	if start.Before(end) {
		return nil
	}
	return &Rejection{Rule: RuleTimeOrder, Message: MessageTimeOrder}
}

// NotPast rejects when date at start is strictly before the clock's now.
// op names the operation in the message ("create", "cancel", "delete").
func NotPast(clock calendar.Clock, date calendar.Date, start calendar.TimeOfDay, op string) (*Rejection, error) {
	past, err := clock.IsPast(date, start)
	if err != nil {
		return nil, err
	}
	if !past {
		return nil, nil
	}
	return &Rejection{Rule: RuleNotPast, Message: "Can not " + op + " an appointment in the past."}, nil
}

func BusinessHours(zone *gym.GymZone, start, end calendar.TimeOfDay) *Rejection {
	if zone.Covers(start, end) {
		return nil
	}
	return &Rejection{Rule: RuleBusinessHours, Message: MessageZoneClosed}
}

// EventCapacity takes the number of non-cancelled appointments of the event.
func EventCapacity(booked, capacity int) *Rejection {
	if booked < capacity {
		return nil
	}
	return &Rejection{Rule: RuleCapacity, Message: MessageEventFull}
}

// ZoneCapacity takes the highest number of concurrent appointments inside
// the requested window.
func ZoneCapacity(concurrent, capacity int) *Rejection {
	if concurrent < capacity {
		return nil
	}
	return &Rejection{Rule: RuleCapacity, Message: MessageZoneFull}
}

func PersonExists(client *person.Client) *Rejection {
	if client != nil {
		return nil
	}
	return &Rejection{Rule: RulePersonExists, Message: MessagePersonNotFound}
}

func CovidPassport(required bool, client *person.Client) *Rejection {
	if !required || client.CovidPassport {
		return nil
	}
	return &Rejection{Rule: RuleCovidPassport, Message: MessageCovidPassport}
}

func Duplicate(kind string, exists bool) *Rejection {
	if !exists {
		return nil
	}
	if kind == KindEvent {
		return &Rejection{Rule: RuleDuplicate, Message: MessageDuplicateEvent}
	}
	return &Rejection{Rule: RuleDuplicate, Message: MessageDuplicateCalendarSlot}
}
