package controllers

import (
	"net/http"

	"github.com/shashiranjanraj/companyapi/app/models"
	"github.com/shashiranjanraj/companyapi/app/services"
	"github.com/shashiranjanraj/companyapi/pkg/ctx"
)

type CustomerController struct {
	service *services.CustomerService
}

func NewCustomerController(service *services.CustomerService) *CustomerController {
	return &CustomerController{service: service}
}

// Index handles GET /customers?name=&email=&street=&city=&state=&zipCode=
func (h *CustomerController) Index(c *ctx.Context) {
	received(c, "GetCustomers")
	customers, err := h.service.List(c.Context(), services.CustomerFilter{
		Name:    c.QueryPtr("name"),
		Email:   c.QueryPtr("email"),
		Street:  c.QueryPtr("street"),
		City:    c.QueryPtr("city"),
		State:   c.QueryPtr("state"),
		ZipCode: c.QueryPtr("zipCode"),
	})
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, customers)
}

func (h *CustomerController) Show(c *ctx.Context) {
	received(c, "GetCustomerById")
	id, ok := c.ParamInt("id")
	if !ok {
		return
	}
	customer, err := h.service.Get(c.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, customer)
}

func (h *CustomerController) Store(c *ctx.Context) {
	received(c, "PostCustomer")
	var in models.Customer
	if !c.BindJSON(&in) {
		return
	}
	customer, err := h.service.Create(c.Context(), in)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, customer)
}

func (h *CustomerController) Update(c *ctx.Context) {
	received(c, "PutCustomer")
	id, ok := c.ParamInt("id")
	if !ok {
		return
	}
	var in models.Customer
	if !c.BindJSON(&in) {
		return
	}
	customer, err := h.service.Update(c.Context(), id, in)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, customer)
}

func (h *CustomerController) Destroy(c *ctx.Context) {
	received(c, "DeleteCustomer")
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
