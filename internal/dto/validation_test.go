package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mikededo/hubbl-sub000/internal/apperr"
	"github.com/mikededo/hubbl-sub000/internal/calendar"
)

type slotRequest struct {
	Client    int                `json:"client" validate:"required,gt=0"`
	StartTime calendar.TimeOfDay `json:"startTime" validate:"required,timeofday"`
	EndTime   calendar.TimeOfDay `json:"endTime" validate:"required,timeofday"`
	Date      calendar.Date      `json:"date" validate:"required"`
}

func fieldNames(errs []FieldError) []string {
	names := make([]string, 0, len(errs))
	for _, e := range errs {
		names = append(names, e.Field)
	}
	return names
}

func TestParse_Valid(t *testing.T) {
	raw := []byte(`{"client":4,"startTime":"10:00:00","endTime":"11:00:00","date":{"year":2030,"month":5,"day":20}}`)

	req, err := Parse[slotRequest](raw, nil)
	require.NoError(t, err)
	assert.Equal(t, 4, req.Client)
	assert.Equal(t, calendar.Date{Year: 2030, Month: 5, Day: 20}, req.Date)
}

func TestParse_PrepareOverridesBody(t *testing.T) {
	raw := []byte(`{"client":99,"startTime":"10:00:00","endTime":"11:00:00","date":{"year":2030,"month":5,"day":20}}`)

	req, err := Parse(raw, func(r *slotRequest) { r.Client = 7 })
	require.NoError(t, err)
	assert.Equal(t, 7, req.Client)
}

func TestParse_PrepareFillsMissingField(t *testing.T) {
	raw := []byte(`{"startTime":"10:00:00","endTime":"11:00:00","date":{"year":2030,"month":5,"day":20}}`)

	_, err := Parse(raw, func(r *slotRequest) { r.Client = 7 })
	assert.NoError(t, err)
}

func TestParse_FieldErrors(t *testing.T) {
	raw := []byte(`{"startTime":"25:00:00","endTime":"11:00","date":{"year":2030,"month":2,"day":30}}`)

	_, err := Parse[slotRequest](raw, nil)
	require.Error(t, err)

	e := apperr.From(err)
	assert.Equal(t, apperr.KindClientError, e.Kind)
	assert.Equal(t, MessageValidationFailed, e.Message)

	details, ok := e.Details.([]FieldError)
	require.True(t, ok)
	assert.ElementsMatch(t, []string{"client", "startTime", "endTime", "date.day"}, fieldNames(details))
}

func TestParse_MalformedJSON(t *testing.T) {
	_, err := Parse[slotRequest]([]byte(`{"client": invalid}`), nil)

	e := apperr.From(err)
	assert.Equal(t, apperr.KindClientError, e.Kind)
	assert.Equal(t, MessageInvalidBody, e.Message)
}

func TestParse_WrongType(t *testing.T) {
	_, err := Parse[slotRequest]([]byte(`{"client":"four"}`), nil)

	e := apperr.From(err)
	details, ok := e.Details.([]FieldError)
	require.True(t, ok)
	assert.Equal(t, "client", details[0].Field)
}

func TestParse_EmptyBody(t *testing.T) {
	_, err := Parse[slotRequest](nil, nil)

	e := apperr.From(err)
	assert.Equal(t, MessageValidationFailed, e.Message)
}

type EmbeddedName struct {
	First string `json:"firstName" validate:"required"`
}

type embeddingRequest struct {
	EmbeddedName
	Gym int `json:"gym" validate:"required"`
}

func TestParse_EmbeddedFieldPath(t *testing.T) {
	_, err := Parse[embeddingRequest]([]byte(`{}`), nil)

	e := apperr.From(err)
	details, ok := e.Details.([]FieldError)
	require.True(t, ok)
	assert.ElementsMatch(t, []string{"firstName", "gym"}, fieldNames(details))
}
