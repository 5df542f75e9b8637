package person

import (
	"github.com/gin-gonic/gin"

	"github.com/mikededo/hubbl-sub000/internal/api"
	"github.com/mikededo/hubbl-sub000/internal/apperr"
	"github.com/mikededo/hubbl-sub000/internal/auth"
	"github.com/mikededo/hubbl-sub000/internal/dto"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// RegisterClient godoc
// @Summary      Register a client
// @Description  Creates a client inside an existing gym and returns access & refresh tokens.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request  body      person.RegisterClientRequest  true  "Client registration data"
// @Success      201      {object}  person.AuthResponse
// @Failure      400      {object}  api.ErrorResponse
// @Failure      500      {object}  api.ErrorResponse
// @Router       /auth/register [post]
func (h *Handler) RegisterClient(c *gin.Context) {
	req, err := dto.Bind[RegisterClientRequest](c, nil)
	if err != nil {
		api.Error(c, err)
		return
	}

	res, err := h.service.RegisterClient(c.Request.Context(), req)
	if err != nil {
		api.Error(c, err)
		return
	}
	api.Created(c, res)
}

// RegisterOwner godoc
// @Summary      Register an owner
// @Description  Creates a gym together with its owner.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request  body      person.RegisterOwnerRequest  true  "Owner registration data"
// @Success      201      {object}  person.AuthResponse
// @Failure      400      {object}  api.ErrorResponse
// @Failure      500      {object}  api.ErrorResponse
// @Router       /auth/register/owner [post]
func (h *Handler) RegisterOwner(c *gin.Context) {
	req, err := dto.Bind[RegisterOwnerRequest](c, nil)
	if err != nil {
		api.Error(c, err)
		return
	}

	res, err := h.service.RegisterOwner(c.Request.Context(), req)
	if err != nil {
		api.Error(c, err)
		return
	}
	api.Created(c, res)
}

// Login godoc
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request  body      person.LoginRequest  true  "Credentials"
// @Success      200      {object}  person.AuthResponse
// @Failure      400      {object}  api.ErrorResponse
// @Failure      401      {object}  api.ErrorResponse
// @Failure      500      {object}  api.ErrorResponse
// @Router       /auth/login [post]
func (h *Handler) Login(c *gin.Context) {
	req, err := dto.Bind[LoginRequest](c, nil)
	if err != nil {
		api.Error(c, err)
		return
	}

	res, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		api.Error(c, err)
		return
	}
	api.OK(c, res)
}

// Refresh godoc
// @Summary      Refresh the access token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request  body      person.RefreshRequest  true  "Refresh token"
// @Success      200      {object}  person.AuthResponse
// @Failure      400      {object}  api.ErrorResponse
// @Failure      401      {object}  api.ErrorResponse
// @Router       /auth/refresh [post]
func (h *Handler) Refresh(c *gin.Context) {
	req, err := dto.Bind[RefreshRequest](c, nil)
	if err != nil {
		api.Error(c, err)
		return
	}

	res, err := h.service.Refresh(c.Request.Context(), req)
	if err != nil {
		api.Error(c, err)
		return
	}
	api.OK(c, res)
}

// Me godoc
// @Summary      Profile of the caller
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  person.Person
// @Failure      401  {object}  api.ErrorResponse
// @Failure      404  {object}  api.ErrorResponse
// @Router       /me [get]
func (h *Handler) Me(c *gin.Context) {
	p, ok := auth.GetPrincipal(c)
	if !ok {
		api.Error(c, apperr.Unauthorized(""))
		return
	}

	profile, err := h.service.Me(c.Request.Context(), p)
	if err != nil {
		api.Error(c, err)
		return
	}
	api.OK(c, profile)
}
