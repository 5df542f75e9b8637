package api

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/mikededo/hubbl-sub000/internal/apperr"
	"github.com/mikededo/hubbl-sub000/internal/calendar"
)

// ParamID reads a positive integer path parameter.
func ParamID(c *gin.Context, name string) (int, error) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil || id <= 0 {
		return 0, apperr.ClientError("Invalid "+name+" parameter.", nil)
	}
	return id, nil
}

// QueryDate reads the optional year, month and day query parameters. It
// returns nil when none is present.
func QueryDate(c *gin.Context) (*calendar.Date, error) {
	year, month, day := c.Query("year"), c.Query("month"), c.Query("day")
	if year == "" && month == "" && day == "" {
		return nil, nil
	}

	invalid := apperr.ClientError("Ensure to pass a valid year, month and day.", nil)
	y, err := strconv.Atoi(year)
	if err != nil {
		return nil, invalid
	}
	m, err := strconv.Atoi(month)
	if err != nil {
		return nil, invalid
	}
	d, err := strconv.Atoi(day)
	if err != nil {
		return nil, invalid
	}

	date, err := calendar.NewDate(y, m, d)
	if err != nil {
		return nil, invalid
	}
	return &date, nil
}
