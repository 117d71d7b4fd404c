// Package services holds the business rules for each entity family. A
// mutation runs identity check, existence check, uniqueness check and
// reference check, in that order, before anything is written. Every error
// returned is an *apperrors.Error.
package services

import (
	"context"
	"errors"

	"github.com/shashiranjanraj/companyapi/app/apperrors"
	"github.com/shashiranjanraj/companyapi/app/repositories"
	"github.com/shashiranjanraj/companyapi/pkg/logger"
	"github.com/shashiranjanraj/companyapi/pkg/metrics"
)

// fault logs a storage failure and converts it to Unavailable. It is never
// retried.
func fault(ctx context.Context, entity, op string, err error) error {
	logger.WithCtx(ctx).Error("storage fault",
		"entity", entity,
		"operation", op,
		"error", err,
	)
	return apperrors.Unavailable(err)
}

// lookup maps the error of a by-id read: a missing row becomes NotFound,
// anything else is a fault.
func lookup(ctx context.Context, entity, op string, id int64, err error) error {
	if errors.Is(err, repositories.ErrNotFound) {
		return apperrors.NotFound("%s %d not found", entity, id)
	}
	return fault(ctx, entity, op, err)
}

// track records the outcome of one service call.
func track(entity, op string, err error) {
	outcome := "ok"
	if err != nil {
		outcome = apperrors.KindOf(err).String()
	}
	metrics.RecordOutcome(entity, op, outcome)
}
