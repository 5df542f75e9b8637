package gym_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/mikededo/hubbl-sub000/internal/auth"
	"github.com/mikededo/hubbl-sub000/internal/gym"
	"github.com/mikededo/hubbl-sub000/internal/person"
)

func newRouter(f *fixture, p auth.Principal) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := gym.NewHandler(f.svc)

	router := gin.New()
	router.Use(func(c *gin.Context) { auth.SetPrincipal(c, p); c.Next() })
	router.POST("/virtual-gyms/:vgId/gym-zones", h.CreateGymZone)
	router.DELETE("/gym-zones/:id", h.DeleteGymZone)
	return router
}

func TestHandler_CreateGymZone(t *testing.T) {
	f := newFixture()
	f.resolver.On("OwnerExists", mock.Anything, 1).Return(true, nil)
	f.people.On("GymOf", mock.Anything, 1).Return(9, nil)
	f.repo.On("FindVirtualGym", mock.Anything, 3).Return(&gym.VirtualGym{ID: 3, GymID: 9, OpenTime: "07:00:00", CloseTime: "22:00:00"}, nil)
	f.repo.On("CreateGymZone", mock.Anything, mock.Anything).Return(&gym.GymZone{ID: 5, CalendarID: 30, Name: "Spinning"}, nil)

	body := `{"name":"Spinning","capacity":20,"isClassType":true,"openTime":"08:00:00","closeTime":"21:00:00"}`
	w := httptest.NewRecorder()
	newRouter(f, auth.Principal{PersonID: 1, Role: auth.RoleOwner}).
		ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/virtual-gyms/3/gym-zones", bytes.NewBufferString(body)))

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"calendar":30`)
}

func TestHandler_CreateGymZone_InvalidBody(t *testing.T) {
	f := newFixture()

	w := httptest.NewRecorder()
	newRouter(f, auth.Principal{PersonID: 1, Role: auth.RoleOwner}).
		ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/virtual-gyms/3/gym-zones", bytes.NewBufferString(`{"capacity":"a lot"}`)))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	f.resolver.AssertNotCalled(t, "OwnerExists", mock.Anything, mock.Anything)
}

func TestHandler_DeleteGymZone_WorkerWithoutPermission(t *testing.T) {
	f := newFixture()
	f.resolver.On("FindWorker", mock.Anything, 2).Return(&person.Worker{}, nil)

	w := httptest.NewRecorder()
	newRouter(f, auth.Principal{PersonID: 2, Role: auth.RoleWorker}).
		ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/gym-zones/5", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Worker does not have enough permissions.")
}
