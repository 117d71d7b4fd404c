package controllers

import (
	"net/http"

	"github.com/shashiranjanraj/companyapi/app/models"
	"github.com/shashiranjanraj/companyapi/app/services"
	"github.com/shashiranjanraj/companyapi/pkg/ctx"
)

type UserController struct {
	service *services.UserService
}

func NewUserController(service *services.UserService) *UserController {
	return &UserController{service: service}
}

// Index handles GET /users?name=&title=&roles=&email=&password=
func (h *UserController) Index(c *ctx.Context) {
	received(c, "GetUsers")
	users, err := h.service.List(c.Context(), services.UserFilter{
		Name:     c.QueryPtr("name"),
		Title:    c.QueryPtr("title"),
		Roles:    c.QueryPtr("roles"),
		Email:    c.QueryPtr("email"),
		Password: c.QueryPtr("password"),
	})
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

func (h *UserController) Show(c *ctx.Context) {
	received(c, "GetUserById")
	id, ok := c.ParamInt("id")
	if !ok {
		return
	}
	user, err := h.service.Get(c.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *UserController) Store(c *ctx.Context) {
	received(c, "PostUser")
	var in models.User
	if !c.BindJSON(&in) {
		return
	}
	user, err := h.service.Create(c.Context(), in)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, user)
}

func (h *UserController) Update(c *ctx.Context) {
	received(c, "PutUser")
	id, ok := c.ParamInt("id")
	if !ok {
		return
	}
	var in models.User
	if !c.BindJSON(&in) {
		return
	}
	user, err := h.service.Update(c.Context(), id, in)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *UserController) Destroy(c *ctx.Context) {
	received(c, "DeleteUser")
	id, ok := c.ParamInt("id")
	if !ok {
		return
	}
	if err := h.service.Delete(c.Context(), id); err != nil {
		fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
