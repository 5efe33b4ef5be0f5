package notification

import (
	"time"
)

// Type represents the type of notification
type Type string

const (
	TypeExceptionSubmitted Type = "exception_submitted"
	TypeExceptionApproved  Type = "exception_approved"
	TypeExceptionRejected  Type = "exception_rejected"
	TypeLeaveSubmitted     Type = "leave_submitted"
	TypeLeaveApproved      Type = "leave_approved"
	TypeLeaveRejected      Type = "leave_rejected"
	TypeScheduleAssigned   Type = "schedule_assigned"
	TypeAttendanceAbsent   Type = "attendance_absent"
	TypeDocumentShared     Type = "document_shared"
)

// Notification represents a notification entity
type Notification struct {
	ID          string
	RecipientID string
	SenderID    *string
	Type        Type
	Title       string
	Message     string
	Data        map[string]interface{}
	IsRead      bool
	ReadAt      *time.Time
	CreatedAt   time.Time
}
