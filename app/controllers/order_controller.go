package controllers

import (
	"net/http"

	"github.com/shashiranjanraj/companyapi/app/models"
	"github.com/shashiranjanraj/companyapi/app/services"
	"github.com/shashiranjanraj/companyapi/pkg/ctx"
)

type OrderController struct {
	service *services.OrderService
}

func NewOrderController(service *services.OrderService) *OrderController {
	return &OrderController{service: service}
}

// Index handles GET /orders?customerId=&date=&orderTotal=&productId=&quantity=
func (h *OrderController) Index(c *ctx.Context) {
	received(c, "GetOrders")
	orders, err := h.service.List(c.Context(), services.OrderFilter{
		CustomerID: c.QueryPtr("customerId"),
		Date:       c.QueryPtr("date"),
		OrderTotal: c.QueryPtr("orderTotal"),
		ProductID:  c.QueryPtr("productId"),
		Quantity:   c.QueryPtr("quantity"),
	})
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, orders)
}

func (h *OrderController) Show(c *ctx.Context) {
	received(c, "GetOrderById")
	id, ok := c.ParamInt("id")
	if !ok {
		return
	}
	order, err := h.service.Get(c.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

func (h *OrderController) Store(c *ctx.Context) {
	received(c, "PostOrder")
	var in models.Order
	if !c.BindJSON(&in) {
		return
	}
	order, err := h.service.Create(c.Context(), in)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, order)
}

func (h *OrderController) Update(c *ctx.Context) {
	received(c, "PutOrder")
	id, ok := c.ParamInt("id")
	if !ok {
		return
	}
	var in models.Order
	if !c.BindJSON(&in) {
		return
	}
	order, err := h.service.Update(c.Context(), id, in)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

func (h *OrderController) Destroy(c *ctx.Context) {
	received(c, "DeleteOrder")
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
