package booking_test

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
	"github.com/mikededo/hubbl-sub000/internal/booking"
	"github.com/mikededo/hubbl-sub000/internal/booking/bookingtest"
	"github.com/mikededo/hubbl-sub000/internal/calendar"
)

func newRouter(svc booking.Service, p *auth.Principal) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := booking.NewHandler(svc)

	router := gin.New()
	if p != nil {
		router.Use(func(c *gin.Context) { auth.SetPrincipal(c, *p); c.Next() })
	}
	router.POST("/events/:eId/appointments", h.CreateEventAppointment)
	router.PUT("/events/:eId/appointments/:id/cancel", h.CancelEventAppointment)
	router.DELETE("/events/:eId/appointments/:id", h.DeleteEventAppointment)
	router.GET("/events/:eId/appointments", h.ListEventAppointments)
	router.POST("/calendars/:cId/appointments", h.CreateCalendarAppointment)
	router.PUT("/calendars/:cId/appointments/:id/cancel", h.CancelCalendarAppointment)
	router.DELETE("/calendars/:cId/appointments/:id", h.DeleteCalendarAppointment)
	router.GET("/calendars/:cId/appointments", h.ListCalendarAppointments)
	router.GET("/appointments/me", h.ClientAppointments)
	return router
}

func serve(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(method, path, bytes.NewBufferString(body)))
	return w
}

func TestHandler_CreateEventAppointment_ClientIDForced(t *testing.T) {
	svc := new(bookingtest.MockService)
	svc.On("CreateEventAppointment", mock.Anything, clientActor, 4, booking.EventAppointmentRequest{Client: 9}).
		Return(&booking.EventAppointment{ID: 70, EventID: 4, ClientID: 9}, nil)

	w := serve(newRouter(svc, &auth.Principal{PersonID: 9, Role: auth.RoleClient}), http.MethodPost, "/events/4/appointments", `{"client":55}`)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"client":9`)
}

func TestHandler_CreateEventAppointment_ClientMayOmitClient(t *testing.T) {
	svc := new(bookingtest.MockService)
	svc.On("CreateEventAppointment", mock.Anything, clientActor, 4, booking.EventAppointmentRequest{Client: 9}).
		Return(&booking.EventAppointment{ID: 70}, nil)

	w := serve(newRouter(svc, &auth.Principal{PersonID: 9, Role: auth.RoleClient}), http.MethodPost, "/events/4/appointments", `{}`)

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestHandler_CreateEventAppointment_StaffMustNameClient(t *testing.T) {
	svc := new(bookingtest.MockService)

	w := serve(newRouter(svc, &auth.Principal{PersonID: 1, Role: auth.RoleOwner}), http.MethodPost, "/events/4/appointments", `{}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), `"client"`)
	svc.AssertNotCalled(t, "CreateEventAppointment", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestHandler_CreateEventAppointment_Rejected(t *testing.T) {
	svc := new(bookingtest.MockService)
	svc.On("CreateEventAppointment", mock.Anything, owner, 4, booking.EventAppointmentRequest{Client: 9}).
		Return(nil, apperr.Forbidden(booking.MessageEventFull))

	w := serve(newRouter(svc, &auth.Principal{PersonID: 1, Role: auth.RoleOwner}), http.MethodPost, "/events/4/appointments", `{"client":9}`)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "No places left for the seleted event.")
}

func TestHandler_CreateCalendarAppointment_InvalidTimes(t *testing.T) {
	svc := new(bookingtest.MockService)
	body := `{"client":9,"date":{"year":2030,"month":1,"day":17},"startTime":"9:00","endTime":"11:00:00"}`

	w := serve(newRouter(svc, &auth.Principal{PersonID: 1, Role: auth.RoleOwner}), http.MethodPost, "/calendars/30/appointments", body)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "startTime")
}

func TestHandler_CreateCalendarAppointment(t *testing.T) {
	svc := new(bookingtest.MockService)
	req := booking.CalendarAppointmentRequest{Client: 9, Date: calendar.Date{Year: 2030, Month: 1, Day: 17}, StartTime: "10:00:00", EndTime: "11:00:00"}
	svc.On("CreateCalendarAppointment", mock.Anything, owner, 30, req).Return(&booking.CalendarAppointment{ID: 80}, nil)
	body := `{"client":9,"date":{"year":2030,"month":1,"day":17},"startTime":"10:00:00","endTime":"11:00:00"}`

	w := serve(newRouter(svc, &auth.Principal{PersonID: 1, Role: auth.RoleOwner}), http.MethodPost, "/calendars/30/appointments", body)

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestHandler_CancelEventAppointment(t *testing.T) {
	svc := new(bookingtest.MockService)
	svc.On("CancelEventAppointment", mock.Anything, clientActor, 4, 7).Return(apperr.Forbidden(booking.MessageAlreadyCancelled))

	w := serve(newRouter(svc, &auth.Principal{PersonID: 9, Role: auth.RoleClient}), http.MethodPut, "/events/4/appointments/7/cancel", "")

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "Appointment already cancelled.")
}

func TestHandler_DeleteCalendarAppointment(t *testing.T) {
	svc := new(bookingtest.MockService)
	svc.On("DeleteCalendarAppointment", mock.Anything, owner, 30, 7).Return(nil)

	w := serve(newRouter(svc, &auth.Principal{PersonID: 1, Role: auth.RoleOwner}), http.MethodDelete, "/calendars/30/appointments/7", "")

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_InvalidAppointmentID(t *testing.T) {
	svc := new(bookingtest.MockService)

	w := serve(newRouter(svc, &auth.Principal{PersonID: 1, Role: auth.RoleOwner}), http.MethodDelete, "/events/4/appointments/seven", "")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid id parameter.")
}

func TestHandler_ListCalendarAppointments(t *testing.T) {
	svc := new(bookingtest.MockService)
	date := &calendar.Date{Year: 2030, Month: 1, Day: 17}
	svc.On("ListCalendarAppointments", mock.Anything, owner, 30, date).Return([]booking.CalendarAppointment{{ID: 1}}, nil)

	router := newRouter(svc, &auth.Principal{PersonID: 1, Role: auth.RoleOwner})

	w := serve(router, http.MethodGet, "/calendars/30/appointments?year=2030&month=1&day=17", "")
	assert.Equal(t, http.StatusOK, w.Code)

	w = serve(router, http.MethodGet, "/calendars/30/appointments?year=2030&month=2&day=30", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_ClientAppointments(t *testing.T) {
	svc := new(bookingtest.MockService)
	svc.On("ClientAppointments", mock.Anything, clientActor).Return(&booking.ClientAppointments{
		Events:    []booking.EventAppointment{{ID: 1}},
		Calendars: []booking.CalendarAppointment{},
	}, nil)

	w := serve(newRouter(svc, &auth.Principal{PersonID: 9, Role: auth.RoleClient}), http.MethodGet, "/appointments/me", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"calendars":[]`)
}

func TestHandler_WithoutPrincipal(t *testing.T) {
	w := serve(newRouter(new(bookingtest.MockService), nil), http.MethodGet, "/appointments/me", "")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Empty(t, w.Body.String())
}
