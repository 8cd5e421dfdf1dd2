package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"newsapp/internal/model"
	"newsapp/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/assert/v2"
)

type fakeUserStore struct {
	user  model.User
	users []model.User
	err   error
}

func (f *fakeUserStore) GetOne(context.Context, string, string) (model.User, error) {
	return f.user, f.err
}

func (f *fakeUserStore) GetMany(context.Context, string, string) ([]model.User, error) {
	return f.users, f.err
}

func newUserRouter(users UserStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewUserHandler(users)
	r.GET("/users", h.GetUsers)
	r.GET("/users/:id", h.GetUser)
	return r
}

func TestGetUser(t *testing.T) {
	r := newUserRouter(&fakeUserStore{
		user: model.User{UserID: 3, Name: "news", Email: "sales@example.com", Role: model.RoleReader},
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/users/3", nil))

	assert.Equal(t, http.StatusOK, w.Code)

	var res UserResponse
	json.Unmarshal(w.Body.Bytes(), &res)
	assert.Equal(t, int64(3), res.ID)
	assert.Equal(t, "Reader", res.Role)
}

func TestGetUser_NotFound(t *testing.T) {
	r := newUserRouter(&fakeUserStore{err: fmt.Errorf("UserID=3: %w", store.ErrNotFound)})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/users/3", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetUsers_UnknownFilterFieldIs400(t *testing.T) {
	r := newUserRouter(&fakeUserStore{err: fmt.Errorf("User has no filterable field: %w", store.ErrFieldNotFound)})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/users?field=Password&value=x", nil))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetUsers_ByRole(t *testing.T) {
	r := newUserRouter(&fakeUserStore{
		users: []model.User{{UserID: 5, Role: model.RoleAdmin}},
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/users?field=Role&value=Admin", nil))

	assert.Equal(t, http.StatusOK, w.Code)

	var res []UserResponse
	json.Unmarshal(w.Body.Bytes(), &res)
	assert.Equal(t, 1, len(res))
	assert.Equal(t, "Admin", res[0].Role)
}
