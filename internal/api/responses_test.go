package api

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/mikededo/hubbl-sub000/internal/apperr"
)

func serve(t *testing.T, h gin.HandlerFunc) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/", h)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	return w
}

func TestError_MapsKinds(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		status  int
		message string
	}{
		{"client error", apperr.ClientError("Invalid body", nil), http.StatusBadRequest, "Invalid body"},
		{"unauthorized", apperr.Unauthorized("Worker does not have enough permissions."), http.StatusUnauthorized, "Worker does not have enough permissions."},
		{"forbidden", apperr.Forbidden("No places left for the seleted event."), http.StatusForbidden, "No places left for the seleted event."},
		{"not found", apperr.NotFound("Event to update not found."), http.StatusNotFound, "Event to update not found."},
		{"internal", apperr.Internal(errors.New("pq: deadlock detected")), http.StatusInternalServerError, apperr.GenericMessage},
		{"unclassified", errors.New("boom"), http.StatusInternalServerError, apperr.GenericMessage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := serve(t, func(c *gin.Context) { Error(c, tt.err) })

			assert.Equal(t, tt.status, w.Code)
			assert.Contains(t, w.Body.String(), tt.message)
			assert.NotContains(t, w.Body.String(), "pq:")
		})
	}
}

func TestError_ClientErrorDetails(t *testing.T) {
	details := []map[string]string{{"field": "client", "message": "client is required"}}
	w := serve(t, func(c *gin.Context) { Error(c, apperr.ClientError("validation failed", details)) })

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"message":"validation failed","details":[{"field":"client","message":"client is required"}]}`, w.Body.String())
}

func TestOK_WithoutBody(t *testing.T) {
	w := serve(t, func(c *gin.Context) { OK(c, nil) })

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Body.String())
}

func TestCreated(t *testing.T) {
	w := serve(t, func(c *gin.Context) { Created(c, gin.H{"id": 3}) })

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.JSONEq(t, `{"id":3}`, w.Body.String())
}

func TestUnauthorized_WithoutMessage(t *testing.T) {
	w := serve(t, func(c *gin.Context) { Error(c, apperr.Unauthorized("")) })

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Empty(t, w.Body.String())
}

func TestParamID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/events/:id", func(c *gin.Context) {
		id, err := ParamID(c, "id")
		if err != nil {
			Error(c, err)
			return
		}
		OK(c, gin.H{"id": id})
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/events/12", nil))
	assert.JSONEq(t, `{"id":12}`, w.Body.String())

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/events/abc", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid id parameter.")
}

func TestQueryDate(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/", func(c *gin.Context) {
		d, err := QueryDate(c)
		if err != nil {
			Error(c, err)
			return
		}
		if d == nil {
			OK(c, gin.H{"date": nil})
			return
		}
		OK(c, gin.H{"date": d.String()})
	})

	tests := []struct {
		query  string
		status int
		body   string
	}{
		{"", http.StatusOK, `{"date":null}`},
		{"?year=2030&month=5&day=20", http.StatusOK, `{"date":"2030-05-20"}`},
		{"?year=2030&month=2&day=30", http.StatusBadRequest, ""},
		{"?year=2030", http.StatusBadRequest, ""},
	}

	for _, tt := range tests {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/"+tt.query, nil))

		assert.Equal(t, tt.status, w.Code, tt.query)
		if tt.body != "" {
			assert.JSONEq(t, tt.body, w.Body.String())
		}
	}
}
