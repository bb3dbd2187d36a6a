package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"portfoliohub/internal/httpapi/policy"
	"portfoliohub/internal/httpapi/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockAboutService struct {
	mock.Mock
}

func (m *MockAboutService) Content() (string, error) {
	args := m.Called()
	return args.String(0), args.Error(1)
}

func (m *MockAboutService) SetContent(actor policy.Actor, content string) error {
	args := m.Called(actor, content)
	return args.Error(0)
}

func (m *MockAboutService) EnsureDefault() error {
	args := m.Called()
	return args.Error(0)
}

func TestAboutHandler_Show(t *testing.T) {
	gin.SetMode(gin.TestMode)
	svc := new(MockAboutService)
	h := NewAboutHandler(svc)
	r := gin.New()
	r.GET("/about", h.Show)

	svc.On("Content").Return(service.DefaultAboutContent, nil)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/about", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Welcome to my portfolio!")
}

func TestAboutHandler_Update(t *testing.T) {
	gin.SetMode(gin.TestMode)
	svc := new(MockAboutService)
	h := NewAboutHandler(svc)

	admin := policy.Actor{ID: "a1", IsAdmin: true}
	r := gin.New()
	r.POST("/admin/about", asActor(admin), h.Update)

	svc.On("SetContent", admin, "About me, rewritten.").Return(nil)

	w := postJSON(r, "/admin/about", gin.H{"content": "About me, rewritten."})

	assert.Equal(t, http.StatusOK, w.Code)
	svc.AssertExpectations(t)
}

func TestAboutHandler_Update_Forbidden(t *testing.T) {
	gin.SetMode(gin.TestMode)
	svc := new(MockAboutService)
	h := NewAboutHandler(svc)

	user := policy.Actor{ID: "u1"}
	r := gin.New()
	r.POST("/admin/about", asActor(user), h.Update)

	svc.On("SetContent", user, mock.Anything).Return(service.ErrUnauthorized)

	w := postJSON(r, "/admin/about", gin.H{"content": "nope"})

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.JSONEq(t, `{"error":"Access denied"}`, w.Body.String())
}
