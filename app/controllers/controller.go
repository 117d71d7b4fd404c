// Package controllers adapts HTTP requests to service calls and maps the
// outcome to a status code.
package controllers

import (
	"net/http"

	"github.com/shashiranjanraj/companyapi/app/apperrors"
	"github.com/shashiranjanraj/companyapi/pkg/ctx"
	"github.com/shashiranjanraj/companyapi/pkg/logger"
)

// fail answers err with the status its kind maps to.
func fail(c *ctx.Context, err error) {
	msg := err.Error()
	switch apperrors.KindOf(err) {
	case apperrors.KindBadRequest:
		c.Error(http.StatusBadRequest, msg)
	case apperrors.KindNotFound:
		c.Error(http.StatusNotFound, msg)
	case apperrors.KindConflict:
		c.Error(http.StatusConflict, msg)
	case apperrors.KindUnavailable:
		c.Unavailable()
	default:
		logger.WithCtx(c.Context()).Error("unclassified error", "error", err)
		c.Error(http.StatusInternalServerError, "Internal Server Error")
	}
}

func received(c *ctx.Context, endpoint string) {
	logger.WithCtx(c.Context()).Info("Request received for " + endpoint)
}
