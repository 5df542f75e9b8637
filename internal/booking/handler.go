package booking

import (
	"github.com/gin-gonic/gin"

	"github.com/mikededo/hubbl-sub000/internal/api"
	"github.com/mikededo/hubbl-sub000/internal/apperr"
	"github.com/mikededo/hubbl-sub000/internal/auth"
	"github.com/mikededo/hubbl-sub000/internal/authz"
	"github.com/mikededo/hubbl-sub000/internal/dto"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func actor(c *gin.Context) (authz.Actor, bool) {
	p, ok := auth.GetPrincipal(c)
	if !ok {
		api.Error(c, apperr.Unauthorized(""))
		return authz.Actor{}, false
	}
	return authz.ActorOf(p), true
}

// forcedClient overrides the body's client with the caller when the caller
// is a client.
func forcedClient(a authz.Actor, client *int) {
	if a.Role == auth.RoleClient {
		*client = a.PersonID
	}
}

// ids reads the target id and, when appointment is set, the appointment id.
func ids(c *gin.Context, target string, appointment bool) (int, int, bool) {
	targetID, err := api.ParamID(c, target)
	if err != nil {
		api.Error(c, err)
		return 0, 0, false
	}
	if !appointment {
		return targetID, 0, true
	}
	id, err := api.ParamID(c, "id")
	if err != nil {
		api.Error(c, err)
		return 0, 0, false
	}
	return targetID, id, true
}

// @Summary      Book a place in an event
// @Description  Clients always book for themselves; staff pass the client id.
// @Tags         event-appointments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        eId     path int                             true "Event ID"
// @Param        request body booking.EventAppointmentRequest true "Appointment payload"
// @Success      201 {object} booking.EventAppointment
// @Failure      400 {object} api.ErrorResponse
// @Failure      401 {object} api.ErrorResponse
// @Failure      403 {object} api.ErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /events/{eId}/appointments [post]
func (h *Handler) CreateEventAppointment(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}
	eventID, _, ok := ids(c, "eId", false)
	if !ok {
		return
	}
	req, err := dto.Bind(c, func(r *EventAppointmentRequest) { forcedClient(a, &r.Client) })
	if err != nil {
		api.Error(c, err)
		return
	}

	appointment, err := h.service.CreateEventAppointment(c.Request.Context(), a, eventID, req)
	if err != nil {
		api.Error(c, err)
		return
	}
	api.Created(c, appointment)
}

// @Summary      Cancel an event appointment
// @Tags         event-appointments
// @Security     BearerAuth
// @Param        eId path int true "Event ID"
// @Param        id  path int true "Appointment ID"
// @Success      200
// @Failure      401 {object} api.ErrorResponse
// @Failure      403 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Router       /events/{eId}/appointments/{id}/cancel [put]
func (h *Handler) CancelEventAppointment(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}
	eventID, id, ok := ids(c, "eId", true)
	if !ok {
		return
	}

	if err := h.service.CancelEventAppointment(c.Request.Context(), a, eventID, id); err != nil {
		api.Error(c, err)
		return
	}
	api.OK(c, nil)
}

// @Summary      Delete an event appointment
// @Tags         event-appointments
// @Security     BearerAuth
// @Param        eId path int true "Event ID"
// @Param        id  path int true "Appointment ID"
// @Success      200
// @Failure      401 {object} api.ErrorResponse
// @Failure      403 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Router       /events/{eId}/appointments/{id} [delete]
func (h *Handler) DeleteEventAppointment(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}
	eventID, id, ok := ids(c, "eId", true)
	if !ok {
		return
	}

	if err := h.service.DeleteEventAppointment(c.Request.Context(), a, eventID, id); err != nil {
		api.Error(c, err)
		return
	}
	api.OK(c, nil)
}

// @Summary      List the appointments of an event
// @Tags         event-appointments
// @Produce      json
// @Security     BearerAuth
// @Param        eId path int true "Event ID"
// @Success      200 {array} booking.EventAppointment
// @Failure      404 {object} api.ErrorResponse
// @Router       /events/{eId}/appointments [get]
func (h *Handler) ListEventAppointments(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}
	eventID, _, ok := ids(c, "eId", false)
	if !ok {
		return
	}

	appointments, err := h.service.ListEventAppointments(c.Request.Context(), a, eventID)
	if err != nil {
		api.Error(c, err)
		return
	}
	api.OK(c, appointments)
}

// @Summary      Book a free slot of a gym zone calendar
// @Description  Clients always book for themselves; staff pass the client id.
// @Tags         calendar-appointments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        cId     path int                                true "Calendar ID"
// @Param        request body booking.CalendarAppointmentRequest true "Appointment payload"
// @Success      201 {object} booking.CalendarAppointment
// @Failure      400 {object} api.ErrorResponse
// @Failure      401 {object} api.ErrorResponse
// @Failure      403 {object} api.ErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /calendars/{cId}/appointments [post]
func (h *Handler) CreateCalendarAppointment(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}
	calendarID, _, ok := ids(c, "cId", false)
	if !ok {
		return
	}
	req, err := dto.Bind(c, func(r *CalendarAppointmentRequest) { forcedClient(a, &r.Client) })
	if err != nil {
		api.Error(c, err)
		return
	}

	appointment, err := h.service.CreateCalendarAppointment(c.Request.Context(), a, calendarID, req)
	if err != nil {
		api.Error(c, err)
		return
	}
	api.Created(c, appointment)
}

// @Summary      Cancel a calendar appointment
// @Tags         calendar-appointments
// @Security     BearerAuth
// @Param        cId path int true "Calendar ID"
// @Param        id  path int true "Appointment ID"
// @Success      200
// @Failure      401 {object} api.ErrorResponse
// @Failure      403 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Router       /calendars/{cId}/appointments/{id}/cancel [put]
func (h *Handler) CancelCalendarAppointment(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}
	calendarID, id, ok := ids(c, "cId", true)
	if !ok {
		return
	}

	if err := h.service.CancelCalendarAppointment(c.Request.Context(), a, calendarID, id); err != nil {
		api.Error(c, err)
		return
	}
	api.OK(c, nil)
}

// @Summary      Delete a calendar appointment
// @Tags         calendar-appointments
// @Security     BearerAuth
// @Param        cId path int true "Calendar ID"
// @Param        id  path int true "Appointment ID"
// @Success      200
// @Failure      401 {object} api.ErrorResponse
// @Failure      403 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Router       /calendars/{cId}/appointments/{id} [delete]
func (h *Handler) DeleteCalendarAppointment(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}
	calendarID, id, ok := ids(c, "cId", true)
	if !ok {
		return
	}

	if err := h.service.DeleteCalendarAppointment(c.Request.Context(), a, calendarID, id); err != nil {
		api.Error(c, err)
		return
	}
	api.OK(c, nil)
}

// @Summary      List the appointments of a calendar
// @Tags         calendar-appointments
// @Produce      json
// @Security     BearerAuth
// @Param        cId   path  int true  "Calendar ID"
// @Param        year  query int false "Year"
// @Param        month query int false "Month"
// @Param        day   query int false "Day"
// @Success      200 {array} booking.CalendarAppointment
// @Failure      400 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Router       /calendars/{cId}/appointments [get]
func (h *Handler) ListCalendarAppointments(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}
	calendarID, _, ok := ids(c, "cId", false)
	if !ok {
		return
	}
	date, err := api.QueryDate(c)
	if err != nil {
		api.Error(c, err)
		return
	}

	appointments, err := h.service.ListCalendarAppointments(c.Request.Context(), a, calendarID, date)
	if err != nil {
		api.Error(c, err)
		return
	}
	api.OK(c, appointments)
}

// @Summary      List the caller's appointments
// @Tags         appointments
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} booking.ClientAppointments
// @Failure      401 {object} api.ErrorResponse
// @Router       /appointments/me [get]
func (h *Handler) ClientAppointments(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}

	appointments, err := h.service.ClientAppointments(c.Request.Context(), a)
	if err != nil {
		api.Error(c, err)
		return
	}
	api.OK(c, appointments)
}
