package gym

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
	return &Handler{
		service: service,
	}
}

func actor(c *gin.Context) (authz.Actor, bool) {
	p, ok := auth.GetPrincipal(c)
	if !ok {
		api.Error(c, apperr.Unauthorized(""))
		return authz.Actor{}, false
	}
	return authz.ActorOf(p), true
}

// @Summary      Create a virtual gym
// @Tags         virtual-gyms
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body gym.VirtualGymRequest true "Virtual gym payload"
// @Success      201 {object} gym.VirtualGym
// @Failure      400 {object} api.ErrorResponse
// @Failure      401 {object} api.ErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /virtual-gyms [post]
func (h *Handler) CreateVirtualGym(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}
	req, err := dto.Bind[VirtualGymRequest](c, nil)
	if err != nil {
		api.Error(c, err)
		return
	}

	vg, err := h.service.CreateVirtualGym(c.Request.Context(), a, req)
	if err != nil {
		api.Error(c, err)
		return
	}
	api.Created(c, vg)
}

// @Summary      Update a virtual gym
// @Tags         virtual-gyms
// @Accept       json
// @Security     BearerAuth
// @Param        vgId    path int                   true "Virtual gym ID"
// @Param        request body gym.VirtualGymRequest true "Virtual gym payload"
// @Success      200
// @Failure      400 {object} api.ErrorResponse
// @Failure      401 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Router       /virtual-gyms/{vgId} [put]
func (h *Handler) UpdateVirtualGym(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}
	id, err := api.ParamID(c, "vgId")
	if err != nil {
		api.Error(c, err)
		return
	}
	req, err := dto.Bind[VirtualGymRequest](c, nil)
	if err != nil {
		api.Error(c, err)
		return
	}

	if err := h.service.UpdateVirtualGym(c.Request.Context(), a, id, req); err != nil {
		api.Error(c, err)
		return
	}
	api.OK(c, nil)
}

// @Summary      Delete a virtual gym
// @Tags         virtual-gyms
// @Security     BearerAuth
// @Param        vgId path int true "Virtual gym ID"
// @Success      200
// @Failure      401 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Router       /virtual-gyms/{vgId} [delete]
func (h *Handler) DeleteVirtualGym(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}
	id, err := api.ParamID(c, "vgId")
	if err != nil {
		api.Error(c, err)
		return
	}

	if err := h.service.DeleteVirtualGym(c.Request.Context(), a, id); err != nil {
		api.Error(c, err)
		return
	}
	api.OK(c, nil)
}

// @Summary      List virtual gyms of the caller's gym
// @Tags         virtual-gyms
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} gym.VirtualGym
// @Router       /virtual-gyms [get]
func (h *Handler) ListVirtualGyms(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}

	gyms, err := h.service.ListVirtualGyms(c.Request.Context(), a)
	if err != nil {
		api.Error(c, err)
		return
	}
	api.OK(c, gyms)
}

// @Summary      Create a gym zone
// @Description  Creates the zone and the calendar its events and appointments live in.
// @Tags         gym-zones
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        vgId    path int                 true "Virtual gym ID"
// @Param        request body gym.GymZoneRequest true "Gym zone payload"
// @Success      201 {object} gym.GymZone
// @Failure      400 {object} api.ErrorResponse
// @Failure      401 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Router       /virtual-gyms/{vgId}/gym-zones [post]
func (h *Handler) CreateGymZone(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}
	vgID, err := api.ParamID(c, "vgId")
	if err != nil {
		api.Error(c, err)
		return
	}
	req, err := dto.Bind[GymZoneRequest](c, nil)
	if err != nil {
		api.Error(c, err)
		return
	}

	zone, err := h.service.CreateGymZone(c.Request.Context(), a, vgID, req)
	if err != nil {
		api.Error(c, err)
		return
	}
	api.Created(c, zone)
}

// @Summary      Update a gym zone
// @Tags         gym-zones
// @Accept       json
// @Security     BearerAuth
// @Param        id      path int                 true "Gym zone ID"
// @Param        request body gym.GymZoneRequest true "Gym zone payload"
// @Success      200
// @Failure      400 {object} api.ErrorResponse
// @Failure      401 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Router       /gym-zones/{id} [put]
func (h *Handler) UpdateGymZone(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}
	id, err := api.ParamID(c, "id")
	if err != nil {
		api.Error(c, err)
		return
	}
	req, err := dto.Bind[GymZoneRequest](c, nil)
	if err != nil {
		api.Error(c, err)
		return
	}

	if err := h.service.UpdateGymZone(c.Request.Context(), a, id, req); err != nil {
		api.Error(c, err)
		return
	}
	api.OK(c, nil)
}

// @Summary      Delete a gym zone
// @Tags         gym-zones
// @Security     BearerAuth
// @Param        id path int true "Gym zone ID"
// @Success      200
// @Failure      401 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Router       /gym-zones/{id} [delete]
func (h *Handler) DeleteGymZone(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}
	id, err := api.ParamID(c, "id")
	if err != nil {
		api.Error(c, err)
		return
	}

	if err := h.service.DeleteGymZone(c.Request.Context(), a, id); err != nil {
		api.Error(c, err)
		return
	}
	api.OK(c, nil)
}

// @Summary      List gym zones of a virtual gym
// @Tags         gym-zones
// @Produce      json
// @Security     BearerAuth
// @Param        vgId path int true "Virtual gym ID"
// @Success      200 {array} gym.GymZone
// @Failure      404 {object} api.ErrorResponse
// @Router       /virtual-gyms/{vgId}/gym-zones [get]
func (h *Handler) ListGymZones(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}
	vgID, err := api.ParamID(c, "vgId")
	if err != nil {
		api.Error(c, err)
		return
	}

	zones, err := h.service.ListGymZones(c.Request.Context(), a, vgID)
	if err != nil {
		api.Error(c, err)
		return
	}
	api.OK(c, zones)
}
