package httperr

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/danielgtaylor/huma/v2"
	"github.com/go-playground/validator/v10"

	"github.com/carson-networks/cashbook-server/internal/ledger"
	"github.com/carson-networks/cashbook-server/internal/logging"
	"github.com/carson-networks/cashbook-server/internal/service"
)

// FromService converts a service error into a huma status error. Errors the
// caller can act on keep their message; anything else becomes a 500 with
// message and the cause goes to the request log only.
func FromService(ctx context.Context, err error, message string) error {
	var validationErrs validator.ValidationErrors
	switch {
	case err == nil:
		return nil
	case errors.Is(err, service.ErrNotFound):
		return huma.Error404NotFound(err.Error())
	case errors.Is(err, service.ErrConflict):
		return huma.Error409Conflict(err.Error())
	case errors.Is(err, service.ErrInvalidCredentials):
		return huma.Error401Unauthorized(service.ErrInvalidCredentials.Error())
	case errors.Is(err, ledger.ErrInvalidCursor):
		return huma.Error400BadRequest("invalid cursor", &huma.ErrorDetail{
			Location: "query",
			Message:  "cursor does not name a record of this ledger",
		})
	case errors.As(err, &validationErrs):
		return huma.Error422UnprocessableEntity("validation failed", validationDetails(validationErrs)...)
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return huma.NewError(http.StatusServiceUnavailable, "request cancelled")
	}

	logging.GetLogData(ctx).AddData("error", err.Error())
	return huma.Error500InternalServerError(message)
}

// validationDetails names the failing field and rule. The submitted value is
// left out since it may be a credential.
func validationDetails(errs validator.ValidationErrors) []error {
	details := make([]error, 0, len(errs))
	for _, fe := range errs {
		message := "failed " + fe.Tag() + " validation"
		if fe.Param() != "" {
			message = "failed " + fe.Tag() + "=" + fe.Param() + " validation"
		}
		details = append(details, &huma.ErrorDetail{
			Location: "body." + lowerFirst(fe.Field()),
			Message:  message,
		})
	}
	return details
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}
