package controllers

import (
	"net/http"

	"gorm.io/gorm"

	"github.com/shashiranjanraj/companyapi/pkg/ctx"
	"github.com/shashiranjanraj/companyapi/pkg/database"
	"github.com/shashiranjanraj/companyapi/pkg/logger"
)

type HealthController struct {
	db *gorm.DB
}

func NewHealthController(db *gorm.DB) *HealthController {
	return &HealthController{db: db}
}

// Check answers 200 while the database responds to a ping.
func (h *HealthController) Check(c *ctx.Context) {
	if err := database.Ping(c.Context(), h.db); err != nil {
		logger.WithCtx(c.Context()).Error("health check failed", "error", err)
		c.Unavailable()
		return
	}
	c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
