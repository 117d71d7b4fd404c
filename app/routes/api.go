// Package routes mounts the resource endpoints on the router.
package routes

import (
	"gorm.io/gorm"

	"github.com/shashiranjanraj/companyapi/app/controllers"
	"github.com/shashiranjanraj/companyapi/app/repositories"
	"github.com/shashiranjanraj/companyapi/app/services"
	"github.com/shashiranjanraj/companyapi/pkg/ctx"
	"github.com/shashiranjanraj/companyapi/pkg/router"
)

// resource is the handler set behind one CRUD group.
type resource interface {
	Index(c *ctx.Context)
	Show(c *ctx.Context)
	Store(c *ctx.Context)
	Update(c *ctx.Context)
	Destroy(c *ctx.Context)
}

// RegisterAPI builds repositories, services and controllers over db and
// mounts them.
func RegisterAPI(r *router.Router, db *gorm.DB) {
	users := repositories.NewUserRepository(db)
	customers := repositories.NewCustomerRepository(db)
	products := repositories.NewProductRepository(db)
	orders := repositories.NewOrderRepository(db)

	health := controllers.NewHealthController(db)
	r.Get("/health", "health", ctx.Wrap(health.Check))

	mount(r, "users", controllers.NewUserController(services.NewUserService(users)))
	mount(r, "customers", controllers.NewCustomerController(services.NewCustomerService(customers)))
	mount(r, "products", controllers.NewProductController(services.NewProductService(products)))
	mount(r, "orders", controllers.NewOrderController(services.NewOrderService(orders, customers, products)))
}

func mount(r *router.Router, name string, h resource) {
	g := r.Group("/" + name)
	g.Get("/", name+".index", ctx.Wrap(h.Index))
	g.Post("/", name+".store", ctx.Wrap(h.Store))
	g.Get("/{id}", name+".show", ctx.Wrap(h.Show))
	g.Put("/{id}", name+".update", ctx.Wrap(h.Update))
	g.Delete("/{id}", name+".destroy", ctx.Wrap(h.Destroy))
}
