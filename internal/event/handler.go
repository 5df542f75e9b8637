package event

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

// @Summary      Create an event
// @Tags         events
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body event.EventRequest true "Event payload"
// @Success      201 {object} event.Event
// @Failure      400 {object} api.ErrorResponse
// @Failure      401 {object} api.ErrorResponse
// @Failure      403 {object} api.ErrorResponse
// @Router       /events [post]
func (h *Handler) Create(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}
	req, err := dto.Bind[EventRequest](c, nil)
	if err != nil {
		api.Error(c, err)
		return
	}

	e, err := h.service.Create(c.Request.Context(), a, req)
	if err != nil {
		api.Error(c, err)
		return
	}
	api.Created(c, e)
}

// @Summary      Update an event
// @Tags         events
// @Accept       json
// @Security     BearerAuth
// @Param        eId     path int                true "Event ID"
// @Param        request body event.EventRequest true "Event payload"
// @Success      200
// @Failure      400 {object} api.ErrorResponse
// @Failure      401 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Router       /events/{eId} [put]
func (h *Handler) Update(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}
	id, err := api.ParamID(c, "eId")
	if err != nil {
		api.Error(c, err)
		return
	}
	req, err := dto.Bind[EventRequest](c, nil)
	if err != nil {
		api.Error(c, err)
		return
	}

	if err := h.service.Update(c.Request.Context(), a, id, req); err != nil {
		api.Error(c, err)
		return
	}
	api.OK(c, nil)
}

// @Summary      Delete an event
// @Tags         events
// @Security     BearerAuth
// @Param        eId path int true "Event ID"
// @Success      200
// @Failure      401 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Router       /events/{eId} [delete]
func (h *Handler) Delete(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}
	id, err := api.ParamID(c, "eId")
	if err != nil {
		api.Error(c, err)
		return
	}

	if err := h.service.Delete(c.Request.Context(), a, id); err != nil {
		api.Error(c, err)
		return
	}
	api.OK(c, nil)
}

// @Summary      List the events of a calendar
// @Tags         events
// @Produce      json
// @Security     BearerAuth
// @Param        cId   path  int true  "Calendar ID"
// @Param        year  query int false "Year"
// @Param        month query int false "Month"
// @Param        day   query int false "Day"
// @Success      200 {array} event.Event
// @Failure      400 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Router       /calendars/{cId}/events [get]
func (h *Handler) ListByCalendar(c *gin.Context) {
	calendarID, err := api.ParamID(c, "cId")
	if err != nil {
		api.Error(c, err)
		return
	}
	date, err := api.QueryDate(c)
	if err != nil {
		api.Error(c, err)
		return
	}

	events, err := h.service.ListByCalendar(c.Request.Context(), calendarID, date)
	if err != nil {
		api.Error(c, err)
		return
	}
	api.OK(c, events)
}
