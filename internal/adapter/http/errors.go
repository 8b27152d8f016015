package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"freelance-engagement-backend/internal/domain/errs"
)

// writeDomainError maps the lifecycle error kinds onto HTTP statuses. Raw
// storage errors were already translated below the usecase boundary, so
// anything unrecognized here is a genuine internal error.
func writeDomainError(c echo.Context, err error) error {
	var (
		validation *errs.ValidationError
		notFound   *errs.NotFoundError
		invalid    *errs.InvalidTransitionError
		conflict   *errs.ConcurrencyConflictError
		invariant  *errs.InvariantViolationError
	)

	switch {
	case errors.As(err, &validation):
		details := make([]FieldError, 0, len(validation.Violations))
		for _, v := range validation.Violations {
			details = append(details, FieldError{Field: v.Field, Message: v.Rule})
		}
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   validation.Entity + " validation failed",
			Details: details,
		})
	case errors.As(err, &notFound):
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
	case errors.As(err, &invalid):
		return c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
	case errors.As(err, &conflict):
		return c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
	case errors.As(err, &invariant):
		return c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
	default:
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
	}
}
