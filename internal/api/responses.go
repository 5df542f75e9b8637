package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mikededo/hubbl-sub000/internal/apperr"
	"github.com/mikededo/hubbl-sub000/internal/logger"
)

type MessageResponse struct {
	Message string `json:"message" example:"ok"`
}

type ErrorResponse struct {
	Message string `json:"message" example:"something went wrong"`
	Details any    `json:"details,omitempty"`
}

type HealthResponse struct {
	Status string `json:"status" example:"ok"`
}

func OK(c *gin.Context, body any) {
	if body == nil {
		c.Status(http.StatusOK)
		return
	}
	c.JSON(http.StatusOK, body)
}

func Created(c *gin.Context, body any) {
	c.JSON(http.StatusCreated, body)
}

func ClientError(c *gin.Context, message string, details any) {
	c.JSON(http.StatusBadRequest, ErrorResponse{Message: message, Details: details})
}

// Unauthorized answers with a bare 401 when message is empty.
func Unauthorized(c *gin.Context, message string) {
	if message == "" {
		c.Status(http.StatusUnauthorized)
		return
	}
	c.JSON(http.StatusUnauthorized, ErrorResponse{Message: message})
}

func Forbidden(c *gin.Context, message string) {
	c.JSON(http.StatusForbidden, ErrorResponse{Message: message})
}

func NotFound(c *gin.Context, message string) {
	c.JSON(http.StatusNotFound, ErrorResponse{Message: message})
}

func Fail(c *gin.Context) {
	c.JSON(http.StatusInternalServerError, ErrorResponse{Message: apperr.GenericMessage})
}

// Error writes err with the status of its kind. Internal failures are
// logged here unless the producer already logged them.
func Error(c *gin.Context, err error) {
	e := apperr.From(err)
	switch e.Kind {
	case apperr.KindClientError:
		ClientError(c, e.Message, e.Details)
	case apperr.KindUnauthorized:
		Unauthorized(c, e.Message)
	case apperr.KindForbidden:
		Forbidden(c, e.Message)
	case apperr.KindNotFound:
		NotFound(c, e.Message)
	default:
		if !e.Logged() {
			logger.Error("request failed",
				"method", c.Request.Method,
				"path", c.FullPath(),
				"error", e.Err,
			)
		}
		Fail(c)
	}
}
