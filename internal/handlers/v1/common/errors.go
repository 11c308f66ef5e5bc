package common

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/finance-tracker/internal/apperror"
	"github.com/carson-networks/finance-tracker/internal/logging"
)

// ServiceError converts a service failure into the HTTP error returned to the
// client. Validation failures become 422 with one detail per field message,
// located at body.<field>. Unknown failures are logged on the request and
// reported as a generic 500 so storage details never reach the client.
func ServiceError(ctx context.Context, err error, failure string) error {
	if verr, ok := apperror.AsValidation(err); ok {
		return ValidationError(verr)
	}
	if apperror.IsNotFound(err) {
		return huma.Error404NotFound(err.Error())
	}
	if conflict, ok := apperror.AsConflict(err); ok {
		return huma.Error409Conflict(conflict.Message)
	}

	logging.Data(ctx, "error", err.Error())
	return huma.NewError(http.StatusInternalServerError, failure)
}

// ValidationError renders field messages as a huma 422.
func ValidationError(verr *apperror.ValidationError) error {
	var details []error
	for _, field := range verr.SortedFields() {
		for _, message := range verr.Fields[field] {
			details = append(details, &huma.ErrorDetail{
				Message:  message,
				Location: "body." + field,
			})
		}
	}
	return huma.Error422UnprocessableEntity("validation failed", details...)
}

// ValidationErrorAt builds a 422 with a single detail at location.
func ValidationErrorAt(location, message string) error {
	return huma.Error422UnprocessableEntity("validation failed", &huma.ErrorDetail{
		Message:  message,
		Location: location,
	})
}
