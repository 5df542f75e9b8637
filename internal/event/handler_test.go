package event_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/mikededo/hubbl-sub000/internal/apperr"
	"github.com/mikededo/hubbl-sub000/internal/auth"
	"github.com/mikededo/hubbl-sub000/internal/calendar"
	"github.com/mikededo/hubbl-sub000/internal/event"
	"github.com/mikededo/hubbl-sub000/internal/event/eventtest"
)

func newRouter(svc event.Service, p *auth.Principal) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := event.NewHandler(svc)

	router := gin.New()
	if p != nil {
		router.Use(func(c *gin.Context) { auth.SetPrincipal(c, *p); c.Next() })
	}
	router.POST("/events", h.Create)
	router.PUT("/events/:eId", h.Update)
	router.DELETE("/events/:eId", h.Delete)
	router.GET("/calendars/:cId/events", h.ListByCalendar)
	return router
}

const eventBody = `{"calendar":30,"name":"Spinning","capacity":15,"date":{"year":2030,"month":1,"day":15},"startTime":"10:00:00","endTime":"11:00:00"}`

func TestHandler_Create(t *testing.T) {
	svc := new(eventtest.MockService)
	svc.On("Create", mock.Anything, owner, request()).Return(&event.Event{ID: 12, CalendarID: 30}, nil)

	w := httptest.NewRecorder()
	newRouter(svc, &auth.Principal{PersonID: 1, Role: auth.RoleOwner}).
		ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/events", bytes.NewBufferString(eventBody)))

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"id":12`)
}

func TestHandler_Create_WithoutPrincipal(t *testing.T) {
	svc := new(eventtest.MockService)

	w := httptest.NewRecorder()
	newRouter(svc, nil).ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/events", bytes.NewBufferString(eventBody)))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	svc.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
}

func TestHandler_Create_InvalidDate(t *testing.T) {
	svc := new(eventtest.MockService)
	body := `{"calendar":30,"name":"Spinning","capacity":15,"date":{"year":2030,"month":2,"day":30},"startTime":"10:00:00","endTime":"11:00:00"}`

	w := httptest.NewRecorder()
	newRouter(svc, &auth.Principal{PersonID: 1, Role: auth.RoleOwner}).
		ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/events", bytes.NewBufferString(body)))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "date.day")
}

func TestHandler_Update_Forbidden(t *testing.T) {
	svc := new(eventtest.MockService)
	svc.On("Update", mock.Anything, worker, 12, request()).Return(apperr.Forbidden("Calendar to update the event does not exist"))

	w := httptest.NewRecorder()
	newRouter(svc, &auth.Principal{PersonID: 2, Role: auth.RoleWorker}).
		ServeHTTP(w, httptest.NewRequest(http.MethodPut, "/events/12", bytes.NewBufferString(eventBody)))

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "Calendar to update the event does not exist")
}

func TestHandler_Delete_InvalidID(t *testing.T) {
	svc := new(eventtest.MockService)

	w := httptest.NewRecorder()
	newRouter(svc, &auth.Principal{PersonID: 1, Role: auth.RoleOwner}).
		ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/events/abc", nil))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_ListByCalendar(t *testing.T) {
	svc := new(eventtest.MockService)
	date := &calendar.Date{Year: 2030, Month: 1, Day: 15}
	svc.On("ListByCalendar", mock.Anything, 30, date).Return([]event.Event{{ID: 1, Name: "Yoga"}}, nil)

	w := httptest.NewRecorder()
	newRouter(svc, &auth.Principal{PersonID: 9, Role: auth.RoleClient}).
		ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/calendars/30/events?year=2030&month=1&day=15", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"name":"Yoga"`)
}
