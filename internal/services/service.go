package services

import (
	"context"
	"errors"

	"github.com/justsurfingit/job-board-api/internal/apperr"
	"github.com/justsurfingit/job-board-api/internal/pagination"
	"github.com/justsurfingit/job-board-api/internal/repository"
	"github.com/justsurfingit/job-board-api/internal/telemetry"
	"github.com/justsurfingit/job-board-api/internal/validation"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "jobboard/services"

// startSpan opens a span; the returned func ends it, recording *err.
func startSpan(ctx context.Context, tracer trace.Tracer, name string, attrs ...attribute.KeyValue) (context.Context, func(err *error)) {
	ctx, span := tracer.Start(ctx, name, trace.WithAttributes(attrs...))
	return ctx, func(err *error) {
		telemetry.RecordError(span, *err)
		span.End()
	}
}

// validate runs v over s and turns field failures into a Validation error.
func validate(v *validation.Validator, s any) error {
	fields, err := v.Struct(s)
	if err != nil {
		return apperr.Internal("validation could not run", err)
	}
	if len(fields) > 0 {
		return apperr.Validation(fields)
	}
	return nil
}

func pageRequest(v *validation.Validator, q pagination.Query, spec pagination.SortSpec) (pagination.Request, error) {
	if err := validate(v, q); err != nil {
		return pagination.Request{}, err
	}
	return pagination.NewRequest(q, spec), nil
}

// checkVersion rejects an update whose expected version is not the stored one.
func checkVersion(expected *int, stored int) error {
	if expected != nil && *expected != stored {
		return apperr.Conflict(nil)
	}
	return nil
}

func notFound(err error, resource string, id uint) error {
	if errors.Is(err, repository.ErrNotFound) {
		return apperr.NotFound(resource, id)
	}
	return err
}

func conflict(err error) error {
	if errors.Is(err, repository.ErrConflict) {
		return apperr.Conflict(err)
	}
	return err
}
