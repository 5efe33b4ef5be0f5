package document

import (
	"strings"
	"time"

	"github.com/amanaz3/staff-hub-suite-sub001/internal/pkg/validator"
)

type UploadRequest struct {
	EmployeeID string
	Category   string
	Note       *string
}

func (r *UploadRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}
	if !validator.IsInSlice(r.Category, CategoryValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "category",
			Message: "category must be one of: " + strings.Join(CategoryValues, ", "),
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type Response struct {
	ID          string  `json:"id"`
	EmployeeID  string  `json:"employee_id"`
	Category    string  `json:"category"`
	FileName    string  `json:"file_name"`
	URL         string  `json:"url"`
	ContentType string  `json:"content_type"`
	SizeBytes   int64   `json:"size_bytes"`
	Note        *string `json:"note,omitempty"`
	CreatedAt   string  `json:"created_at"`
}

func MapToResponse(doc Document, url string) Response {
	return Response{
		ID:          doc.ID,
		EmployeeID:  doc.EmployeeID,
		Category:    string(doc.Category),
		FileName:    doc.FileName,
		URL:         url,
		ContentType: doc.ContentType,
		SizeBytes:   doc.SizeBytes,
		Note:        doc.Note,
		CreatedAt:   doc.CreatedAt.Format(time.RFC3339),
	}
}
