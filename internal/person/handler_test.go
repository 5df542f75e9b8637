package person_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mikededo/hubbl-sub000/internal/auth"
	"github.com/mikededo/hubbl-sub000/internal/person"
	"github.com/mikededo/hubbl-sub000/internal/person/persontest"
)

func newAuthRouter(repo person.Repository) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := person.NewHandler(person.NewService(repo, testSecret))

	router := gin.New()
	router.POST("/auth/register", h.RegisterClient)
	router.POST("/auth/login", h.Login)
	router.GET("/me", auth.AuthMiddleware(testSecret), h.Me)
	return router
}

func TestHandler_RegisterClient_ValidationErrors(t *testing.T) {
	router := newAuthRouter(new(persontest.MockRepository))

	req := httptest.NewRequest(http.MethodPost, "/auth/register", bytes.NewBufferString(`{"email":"not-an-email"}`))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var body struct {
		Message string `json:"message"`
		Details []struct {
			Field string `json:"field"`
		} `json:"details"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	fields := make([]string, 0, len(body.Details))
	for _, d := range body.Details {
		fields = append(fields, d.Field)
	}
	assert.Contains(t, fields, "email")
	assert.Contains(t, fields, "firstName")
	assert.Contains(t, fields, "gym")
}

func TestHandler_Login_Unauthorized(t *testing.T) {
	repo := new(persontest.MockRepository)
	repo.On("FindByEmail", mock.Anything, "x@hubbl.app").Return(nil, person.ErrNotFound)
	router := newAuthRouter(repo)

	req := httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewBufferString(`{"email":"x@hubbl.app","password":"secret1"}`))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), person.MessageInvalidCredentials)
}

func TestHandler_Me(t *testing.T) {
	repo := new(persontest.MockRepository)
	repo.On("FindOwner", mock.Anything, 1).Return(&person.Owner{Person: person.Person{ID: 1, FirstName: "Olga"}, GymID: 3}, nil)
	router := newAuthRouter(repo)

	token, err := auth.GenerateAccessToken(1, "o@hubbl.app", auth.RoleOwner, testSecret)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"firstName":"Olga"`)
	assert.Contains(t, w.Body.String(), `"gym":3`)
	assert.NotContains(t, w.Body.String(), "password")
}
