package response

import (
	"errors"
	"net/http"

	"github.com/amanaz3/staff-hub-suite-sub001/internal/domain/attendance"
	"github.com/amanaz3/staff-hub-suite-sub001/internal/domain/auth"
	"github.com/amanaz3/staff-hub-suite-sub001/internal/domain/document"
	"github.com/amanaz3/staff-hub-suite-sub001/internal/domain/employee"
	"github.com/amanaz3/staff-hub-suite-sub001/internal/domain/exception"
	"github.com/amanaz3/staff-hub-suite-sub001/internal/domain/leave"
	"github.com/amanaz3/staff-hub-suite-sub001/internal/domain/notification"
	"github.com/amanaz3/staff-hub-suite-sub001/internal/domain/schedule"
	"github.com/amanaz3/staff-hub-suite-sub001/internal/domain/user"
	"github.com/amanaz3/staff-hub-suite-sub001/internal/pkg/timezone"
	"github.com/amanaz3/staff-hub-suite-sub001/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses.
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrOAuthExchange):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrUserNotFound),
		errors.Is(err, user.ErrUserNotFound):
		NotFound(w, err.Error())
	case errors.Is(err, user.ErrUserEmailExists):
		Conflict(w, err.Error())
	case errors.Is(err, user.ErrAdminPrivilegeRequired),
		errors.Is(err, user.ErrInsufficientPermissions):
		Forbidden(w, err.Error())

	// Employees
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, err.Error())
	case errors.Is(err, employee.ErrEmployeeCodeTaken),
		errors.Is(err, employee.ErrEmployeeEmailTaken),
		errors.Is(err, employee.ErrEmployeeAlreadyLinked):
		Conflict(w, err.Error())
	case errors.Is(err, employee.ErrEmployeeNotActive):
		BadRequest(w, err.Error(), nil)

	// Attendance
	case errors.Is(err, attendance.ErrDayNotFound):
		NotFound(w, err.Error())
	case errors.Is(err, attendance.ErrAlreadyClockedIn),
		errors.Is(err, attendance.ErrAlreadyClockedOut):
		Conflict(w, err.Error())
	case errors.Is(err, attendance.ErrNotClockedIn),
		errors.Is(err, attendance.ErrNoScheduleForDay),
		errors.Is(err, attendance.ErrTooEarlyToClockIn),
		errors.Is(err, attendance.ErrClockOutBeforeIn):
		BadRequest(w, err.Error(), nil)

	// Schedules
	case errors.Is(err, schedule.ErrScheduleNotFound),
		errors.Is(err, schedule.ErrAssignmentNotFound),
		errors.Is(err, schedule.ErrNoDefaultSchedule):
		NotFound(w, err.Error())
	case errors.Is(err, schedule.ErrDefaultUndeletable):
		Conflict(w, err.Error())
	case errors.Is(err, schedule.ErrMalformedSchedule):
		BadRequest(w, err.Error(), nil)

	// Exceptions
	case errors.Is(err, exception.ErrRequestNotFound):
		NotFound(w, err.Error())
	case errors.Is(err, exception.ErrAlreadyProcessed),
		errors.Is(err, exception.ErrDuplicatePending):
		Conflict(w, err.Error())

	// Leave
	case errors.Is(err, leave.ErrRequestNotFound):
		NotFound(w, err.Error())
	case errors.Is(err, leave.ErrAlreadyProcessed),
		errors.Is(err, leave.ErrOverlapPending):
		Conflict(w, err.Error())

	// Documents
	case errors.Is(err, document.ErrDocumentNotFound):
		NotFound(w, err.Error())
	case errors.Is(err, document.ErrFileTooLarge):
		PayloadTooLarge(w, err.Error())
	case errors.Is(err, document.ErrUnsupportedType):
		BadRequest(w, err.Error(), nil)

	// Notifications
	case errors.Is(err, notification.ErrNotificationNotFound):
		NotFound(w, err.Error())
	case errors.Is(err, notification.ErrNotRecipient):
		Forbidden(w, err.Error())

	// Timestamps and dates
	case errors.Is(err, timezone.ErrInvalidInstant):
		BadRequest(w, err.Error(), nil)

	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
