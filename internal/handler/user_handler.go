package handler

import (
	"context"
	"net/http"

	"newsapp/internal/model"

	"github.com/gin-gonic/gin"
)

// UserStore is the slice of the generic user store the API consumes.
// Filters arrive straight from the query string as (field, value) pairs.
type UserStore interface {
	GetOne(ctx context.Context, field, value string) (model.User, error)
	GetMany(ctx context.Context, field, value string) ([]model.User, error)
}

type UserHandler struct {
	users UserStore
}

func NewUserHandler(users UserStore) *UserHandler {
	return &UserHandler{users: users}
}

func (h *UserHandler) GetUser(c *gin.Context) {
	user, err := h.users.GetOne(c.Request.Context(), "UserID", c.Param("id"))
	if err != nil {
		writeError(c, err, "error fetching user")
		return
	}

	c.JSON(http.StatusOK, toUserResponse(user))
}

// GetUsers lists users, optionally filtered by an arbitrary field, e.g.
// /users?field=Role&value=Admin.
func (h *UserHandler) GetUsers(c *gin.Context) {
	users, err := h.users.GetMany(c.Request.Context(), c.Query("field"), c.Query("value"))
	if err != nil {
		writeError(c, err, "error fetching users")
		return
	}

	res := make([]UserResponse, 0, len(users))
	for _, user := range users {
		res = append(res, toUserResponse(user))
	}

	c.JSON(http.StatusOK, res)
}

func toUserResponse(u model.User) UserResponse {
	return UserResponse{
		ID:    u.UserID,
		Name:  u.Name,
		Email: u.Email,
		Role:  u.Role.String(),
	}
}
