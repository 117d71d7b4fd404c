// Package kernel assembles the HTTP handler: global middleware, the
// metrics endpoint and the API routes.
package kernel

import (
	"net/http"

	"gorm.io/gorm"

	"github.com/shashiranjanraj/companyapi/app/routes"
	"github.com/shashiranjanraj/companyapi/pkg/metrics"
	"github.com/shashiranjanraj/companyapi/pkg/middleware"
	"github.com/shashiranjanraj/companyapi/pkg/reqid"
	"github.com/shashiranjanraj/companyapi/pkg/router"
)

type HTTPKernel struct {
	router *router.Router
}

// NewHTTPKernel wires every route over db. Middleware, outermost first:
// metrics, request id, recovery, access log, CORS.
func NewHTTPKernel(db *gorm.DB) *HTTPKernel {
	r := router.New()

	r.Use(metrics.Middleware())
	r.Use(reqid.Middleware())
	r.Use(middleware.Recovery)
	r.Use(middleware.Logger)
	r.Use(middleware.CORS(middleware.DefaultCORSOptions()))

	r.Handle("/metrics", "metrics", metrics.Handler())
	routes.RegisterAPI(r, db)

	return &HTTPKernel{router: r}
}

func (k *HTTPKernel) Handler() http.Handler { return k.router.Handler() }

// Routes lists the registered routes for route:list.
func (k *HTTPKernel) Routes() []router.RouteInfo { return k.router.Routes() }
