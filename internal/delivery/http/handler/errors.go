package handler

import (
	"errors"
	"net/http"

	"enfermeria-api/internal/domain/policy"
	"enfermeria-api/internal/domain/vitals"
	"enfermeria-api/pkg/response"
)

// developmentMode controls whether internal error detail is echoed back to
// clients. Production responses stay generic.
var developmentMode bool

// Configure sets the error-detail policy for every handler in the package.
// Called once at startup.
func Configure(development bool) {
	developmentMode = development
}

// handleCommonErrors maps the error classes shared by every protected
// endpoint: authentication, authorization and measurement validation.
// Returns true when the error was written.
func handleCommonErrors(w http.ResponseWriter, err error) bool {
	if errors.Is(err, policy.ErrUnauthenticated) {
		response.Unauthorized(w, "Authentication required")
		return true
	}

	var denied *policy.DeniedError
	if errors.As(err, &denied) {
		response.Forbidden(w, denied.Reason)
		return true
	}

	var validation *vitals.ValidationError
	if errors.As(err, &validation) {
		response.Error(w, http.StatusBadRequest, "Validation failed", map[string]string{
			validation.Field: validation.Reason,
		})
		return true
	}

	var missing *vitals.MissingFieldsError
	if errors.As(err, &missing) {
		response.Error(w, http.StatusBadRequest, "Validation failed", map[string]interface{}{
			"missing_fields": missing.Fields,
		})
		return true
	}

	return false
}

// internalError writes a 500, with the underlying detail only in development.
func internalError(w http.ResponseWriter, message string, err error) {
	if developmentMode && err != nil {
		response.Error(w, http.StatusInternalServerError, message, err.Error())
		return
	}
	response.InternalServerError(w, message)
}
