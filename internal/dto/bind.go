package dto

import (
	"github.com/gin-gonic/gin"

	"github.com/mikededo/hubbl-sub000/internal/apperr"
)

// Bind reads the request body and runs it through Parse.
func Bind[T any](c *gin.Context, prepare func(*T)) (T, error) {
	raw, err := c.GetRawData()
	if err != nil {
		var zero T
		return zero, apperr.ClientError(MessageInvalidBody, nil)
	}
	return Parse(raw, prepare)
}
