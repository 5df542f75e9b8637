package person

// Permission names one of the flags a worker carries. The zero value means
// the operation has no worker permission configured.
type Permission int

const (
	PermissionNone Permission = iota
	UpdateVirtualGyms
	CreateGymZones
	UpdateGymZones
	DeleteGymZones
	CreateTrainers
	UpdateTrainers
	DeleteTrainers
	CreateClients
	UpdateClients
	DeleteClients
	CreateEvents
	UpdateEvents
	DeleteEvents
	CreateEventAppointments
	UpdateEventAppointments
	DeleteEventAppointments
	CreateCalendarAppointments
	UpdateCalendarAppointments
	DeleteCalendarAppointments
)

var permissionNames = map[Permission]string{
	PermissionNone:             "none",
	UpdateVirtualGyms:          "updateVirtualGyms",
	CreateGymZones:             "createGymZones",
	UpdateGymZones:             "updateGymZones",
	DeleteGymZones:             "deleteGymZones",
	CreateTrainers:             "createTrainers",
	UpdateTrainers:             "updateTrainers",
	DeleteTrainers:             "deleteTrainers",
	CreateClients:              "createClients",
	UpdateClients:              "updateClients",
	DeleteClients:              "deleteClients",
	CreateEvents:               "createEvents",
	UpdateEvents:               "updateEvents",
	DeleteEvents:               "deleteEvents",
	CreateEventAppointments:    "createEventAppointments",
	UpdateEventAppointments:    "updateEventAppointments",
	DeleteEventAppointments:    "deleteEventAppointments",
	CreateCalendarAppointments: "createCalendarAppointments",
	UpdateCalendarAppointments: "updateCalendarAppointments",
	DeleteCalendarAppointments: "deleteCalendarAppointments",
}

func (p Permission) String() string {
	if name, ok := permissionNames[p]; ok {
		return name
	}
	return "unknown"
}

// Permissions is the capability set stored with every worker.
type Permissions struct {
	UpdateVirtualGyms          bool `db:"update_virtual_gyms" json:"updateVirtualGyms"`
	CreateGymZones             bool `db:"create_gym_zones" json:"createGymZones"`
	UpdateGymZones             bool `db:"update_gym_zones" json:"updateGymZones"`
	DeleteGymZones             bool `db:"delete_gym_zones" json:"deleteGymZones"`
	CreateTrainers             bool `db:"create_trainers" json:"createTrainers"`
	UpdateTrainers             bool `db:"update_trainers" json:"updateTrainers"`
	DeleteTrainers             bool `db:"delete_trainers" json:"deleteTrainers"`
	CreateClients              bool `db:"create_clients" json:"createClients"`
	UpdateClients              bool `db:"update_clients" json:"updateClients"`
	DeleteClients              bool `db:"delete_clients" json:"deleteClients"`
	CreateEvents               bool `db:"create_events" json:"createEvents"`
	UpdateEvents               bool `db:"update_events" json:"updateEvents"`
	DeleteEvents               bool `db:"delete_events" json:"deleteEvents"`
	CreateEventAppointments    bool `db:"create_event_appointments" json:"createEventAppointments"`
	UpdateEventAppointments    bool `db:"update_event_appointments" json:"updateEventAppointments"`
	DeleteEventAppointments    bool `db:"delete_event_appointments" json:"deleteEventAppointments"`
	CreateCalendarAppointments bool `db:"create_calendar_appointments" json:"createCalendarAppointments"`
	UpdateCalendarAppointments bool `db:"update_calendar_appointments" json:"updateCalendarAppointments"`
	DeleteCalendarAppointments bool `db:"delete_calendar_appointments" json:"deleteCalendarAppointments"`
}

func (p Permissions) Can(perm Permission) bool {
	switch perm {
	case UpdateVirtualGyms:
		return p.UpdateVirtualGyms
	case CreateGymZones:
		return p.CreateGymZones
	case UpdateGymZones:
		return p.UpdateGymZones
	case DeleteGymZones:
		return p.DeleteGymZones
	case CreateTrainers:
		return p.CreateTrainers
	case UpdateTrainers:
		return p.UpdateTrainers
	case DeleteTrainers:
		return p.DeleteTrainers
	case CreateClients:
		return p.CreateClients
	case UpdateClients:
		return p.UpdateClients
	case DeleteClients:
		return p.DeleteClients
	case CreateEvents:
		return p.CreateEvents
	case UpdateEvents:
		return p.UpdateEvents
	case DeleteEvents:
		return p.DeleteEvents
	case CreateEventAppointments:
		return p.CreateEventAppointments
	case UpdateEventAppointments:
		return p.UpdateEventAppointments
	case DeleteEventAppointments:
		return p.DeleteEventAppointments
	case CreateCalendarAppointments:
		return p.CreateCalendarAppointments
	case UpdateCalendarAppointments:
		return p.UpdateCalendarAppointments
	case DeleteCalendarAppointments:
		return p.DeleteCalendarAppointments
	default:
		return false
	}
}
