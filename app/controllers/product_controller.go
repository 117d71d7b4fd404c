package controllers

import (
	"net/http"

	"github.com/shashiranjanraj/companyapi/app/models"
	"github.com/shashiranjanraj/companyapi/app/services"
	"github.com/shashiranjanraj/companyapi/pkg/ctx"
)

type ProductController struct {
	service *services.ProductService
}

func NewProductController(service *services.ProductService) *ProductController {
	return &ProductController{service: service}
}

// Index handles GET /products?sku=&price=&name=&description=&manufacturer=&type=
func (h *ProductController) Index(c *ctx.Context) {
	received(c, "GetProducts")
	products, err := h.service.List(c.Context(), services.ProductFilter{
		Sku:          c.QueryPtr("sku"),
		Price:        c.QueryPtr("price"),
		Name:         c.QueryPtr("name"),
		Description:  c.QueryPtr("description"),
		Manufacturer: c.QueryPtr("manufacturer"),
		Type:         c.QueryPtr("type"),
	})
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, products)
}

func (h *ProductController) Show(c *ctx.Context) {
	received(c, "GetProductById")
	id, ok := c.ParamInt("id")
	if !ok {
		return
	}
	product, err := h.service.Get(c.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, product)
}

func (h *ProductController) Store(c *ctx.Context) {
	received(c, "PostProduct")
	var in models.Product
	if !c.BindJSON(&in) {
		return
	}
	product, err := h.service.Create(c.Context(), in)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, product)
}

func (h *ProductController) Update(c *ctx.Context) {
	received(c, "PutProduct")
	id, ok := c.ParamInt("id")
	if !ok {
		return
	}
	var in models.Product
	if !c.BindJSON(&in) {
		return
	}
	product, err := h.service.Update(c.Context(), id, in)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, product)
}

func (h *ProductController) Destroy(c *ctx.Context) {
	received(c, "DeleteProduct")
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
