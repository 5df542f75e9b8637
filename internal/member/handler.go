package member

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

func actorAndID(c *gin.Context) (authz.Actor, int, bool) {
	a, ok := actor(c)
	if !ok {
		return a, 0, false
	}
	id, err := api.ParamID(c, "id")
	if err != nil {
		api.Error(c, err)
		return a, 0, false
	}
	return a, id, true
}

// @Summary      Create a worker
// @Tags         workers
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body member.CreateWorkerRequest true "Worker payload"
// @Success      201 {object} person.Worker
// @Failure      400 {object} api.ErrorResponse
// @Failure      401 {object} api.ErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /workers [post]
func (h *Handler) CreateWorker(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}
	req, err := dto.Bind[CreateWorkerRequest](c, nil)
	if err != nil {
		api.Error(c, err)
		return
	}

	w, err := h.service.CreateWorker(c.Request.Context(), a, req)
	if err != nil {
		api.Error(c, err)
		return
	}
	api.Created(c, w)
}

// @Summary      Update a worker and its permissions
// @Tags         workers
// @Accept       json
// @Security     BearerAuth
// @Param        id      path int                        true "Worker ID"
// @Param        request body member.UpdateWorkerRequest true "Worker payload"
// @Success      200
// @Failure      400 {object} api.ErrorResponse
// @Failure      401 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Router       /workers/{id} [put]
func (h *Handler) UpdateWorker(c *gin.Context) {
	a, id, ok := actorAndID(c)
	if !ok {
		return
	}
	req, err := dto.Bind[UpdateWorkerRequest](c, nil)
	if err != nil {
		api.Error(c, err)
		return
	}

	if err := h.service.UpdateWorker(c.Request.Context(), a, id, req); err != nil {
		api.Error(c, err)
		return
	}
	api.OK(c, nil)
}

// @Summary      Delete a worker
// @Tags         workers
// @Security     BearerAuth
// @Param        id path int true "Worker ID"
// @Success      200
// @Failure      401 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Router       /workers/{id} [delete]
func (h *Handler) DeleteWorker(c *gin.Context) {
	a, id, ok := actorAndID(c)
	if !ok {
		return
	}
	if err := h.service.DeleteWorker(c.Request.Context(), a, id); err != nil {
		api.Error(c, err)
		return
	}
	api.OK(c, nil)
}

// @Summary      List the workers of the caller's gym
// @Tags         workers
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} person.Worker
// @Failure      401 {object} api.ErrorResponse
// @Router       /workers [get]
func (h *Handler) ListWorkers(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}
	workers, err := h.service.ListWorkers(c.Request.Context(), a)
	if err != nil {
		api.Error(c, err)
		return
	}
	api.OK(c, workers)
}

// @Summary      Create a trainer
// @Tags         trainers
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body member.TrainerRequest true "Trainer payload"
// @Success      201 {object} person.Trainer
// @Failure      400 {object} api.ErrorResponse
// @Failure      401 {object} api.ErrorResponse
// @Router       /trainers [post]
func (h *Handler) CreateTrainer(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}
	req, err := dto.Bind[TrainerRequest](c, nil)
	if err != nil {
		api.Error(c, err)
		return
	}

	t, err := h.service.CreateTrainer(c.Request.Context(), a, req)
	if err != nil {
		api.Error(c, err)
		return
	}
	api.Created(c, t)
}

// @Summary      Update a trainer
// @Tags         trainers
// @Accept       json
// @Security     BearerAuth
// @Param        id      path int                   true "Trainer ID"
// @Param        request body member.TrainerRequest true "Trainer payload"
// @Success      200
// @Failure      400 {object} api.ErrorResponse
// @Failure      401 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Router       /trainers/{id} [put]
func (h *Handler) UpdateTrainer(c *gin.Context) {
	a, id, ok := actorAndID(c)
	if !ok {
		return
	}
	req, err := dto.Bind[TrainerRequest](c, nil)
	if err != nil {
		api.Error(c, err)
		return
	}

	if err := h.service.UpdateTrainer(c.Request.Context(), a, id, req); err != nil {
		api.Error(c, err)
		return
	}
	api.OK(c, nil)
}

// @Summary      Delete a trainer
// @Tags         trainers
// @Security     BearerAuth
// @Param        id path int true "Trainer ID"
// @Success      200
// @Failure      401 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Router       /trainers/{id} [delete]
func (h *Handler) DeleteTrainer(c *gin.Context) {
	a, id, ok := actorAndID(c)
	if !ok {
		return
	}
	if err := h.service.DeleteTrainer(c.Request.Context(), a, id); err != nil {
		api.Error(c, err)
		return
	}
	api.OK(c, nil)
}

// @Summary      List the trainers of the caller's gym
// @Tags         trainers
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} person.Trainer
// @Failure      401 {object} api.ErrorResponse
// @Router       /trainers [get]
func (h *Handler) ListTrainers(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}
	trainers, err := h.service.ListTrainers(c.Request.Context(), a)
	if err != nil {
		api.Error(c, err)
		return
	}
	api.OK(c, trainers)
}

// @Summary      Update a client
// @Description  Clients may only update themselves.
// @Tags         clients
// @Accept       json
// @Security     BearerAuth
// @Param        id      path int                  true "Client ID"
// @Param        request body member.ClientRequest true "Client payload"
// @Success      200
// @Failure      400 {object} api.ErrorResponse
// @Failure      401 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Router       /clients/{id} [put]
func (h *Handler) UpdateClient(c *gin.Context) {
	a, id, ok := actorAndID(c)
	if !ok {
		return
	}
	req, err := dto.Bind[ClientRequest](c, nil)
	if err != nil {
		api.Error(c, err)
		return
	}

	if err := h.service.UpdateClient(c.Request.Context(), a, id, req); err != nil {
		api.Error(c, err)
		return
	}
	api.OK(c, nil)
}

// @Summary      Delete a client
// @Tags         clients
// @Security     BearerAuth
// @Param        id path int true "Client ID"
// @Success      200
// @Failure      401 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Router       /clients/{id} [delete]
func (h *Handler) DeleteClient(c *gin.Context) {
	a, id, ok := actorAndID(c)
	if !ok {
		return
	}
	if err := h.service.DeleteClient(c.Request.Context(), a, id); err != nil {
		api.Error(c, err)
		return
	}
	api.OK(c, nil)
}

// @Summary      List the clients of the caller's gym
// @Tags         clients
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} person.Client
// @Failure      401 {object} api.ErrorResponse
// @Router       /clients [get]
func (h *Handler) ListClients(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}
	clients, err := h.service.ListClients(c.Request.Context(), a)
	if err != nil {
		api.Error(c, err)
		return
	}
	api.OK(c, clients)
}
