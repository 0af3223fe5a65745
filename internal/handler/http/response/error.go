package response

import (
	"errors"
	"net/http"

	"github.com/oilchem-hr/attendance-backend-go/internal/domain/auth"
	"github.com/oilchem-hr/attendance-backend-go/internal/domain/employee"
	"github.com/oilchem-hr/attendance-backend-go/internal/domain/notification"
	"github.com/oilchem-hr/attendance-backend-go/internal/domain/report"
	"github.com/oilchem-hr/attendance-backend-go/internal/domain/user"
	"github.com/oilchem-hr/attendance-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, auth.ErrUserNotFound), errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrAdminPrivilegeRequired):
		Forbidden(w, "Admin privilege required")
	case errors.Is(err, user.ErrUserEmailExists):
		Conflict(w, "Email is already registered")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")

	// Report domain errors
	case errors.Is(err, report.ErrInvalidPeriod):
		BadRequest(w, "Invalid report period", nil)
	case errors.Is(err, report.ErrSourceUnavailable):
		ServiceUnavailable(w, "Attendance source is unavailable, retry later")

	// Notification domain errors
	case errors.Is(err, notification.ErrMailerNotConfigured):
		ServiceUnavailable(w, "Mailer is not configured")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
