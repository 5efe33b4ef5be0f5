package exception

import (
	"strings"
	"time"

	"github.com/amanaz3/staff-hub-suite-sub001/internal/pkg/validator"
)

type CreateRequest struct {
	Date             string  `json:"date"` // YYYY-MM-DD
	Type             string  `json:"type"`
	ProposedClockIn  *string `json:"proposed_clock_in,omitempty"`  // RFC3339
	ProposedClockOut *string `json:"proposed_clock_out,omitempty"` // RFC3339
	Reason           string  `json:"reason"`
}

func (r *CreateRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, valid := validator.IsValidDate(r.Date); !valid {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}

	if !validator.IsInSlice(r.Type, TypeValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "type",
			Message: "type must be one of: " + strings.Join(TypeValues, ", "),
		})
		if len(errs) > 0 {
			return errs
		}
	}

	if validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{
			Field:   "reason",
			Message: "reason is required",
		})
	}

	// Types requiring a proposed time must carry it before submission is
	// accepted.
	typ := Type(r.Type)
	if typ.CorrectsClockIn() {
		if r.ProposedClockIn == nil {
			errs = append(errs, validator.ValidationError{
				Field:   "proposed_clock_in",
				Message: "proposed_clock_in is required for type " + r.Type,
			})
		} else if _, valid := validator.IsValidDateTime(*r.ProposedClockIn); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "proposed_clock_in",
				Message: "proposed_clock_in must be an RFC3339 timestamp",
			})
		}
	}
	if typ.CorrectsClockOut() {
		if r.ProposedClockOut == nil {
			errs = append(errs, validator.ValidationError{
				Field:   "proposed_clock_out",
				Message: "proposed_clock_out is required for type " + r.Type,
			})
		} else if _, valid := validator.IsValidDateTime(*r.ProposedClockOut); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "proposed_clock_out",
				Message: "proposed_clock_out must be an RFC3339 timestamp",
			})
		}
	}

	if r.ProposedClockIn != nil && r.ProposedClockOut != nil {
		in, inOK := validator.IsValidDateTime(*r.ProposedClockIn)
		out, outOK := validator.IsValidDateTime(*r.ProposedClockOut)
		if inOK && outOK && out.Before(in) {
			errs = append(errs, validator.ValidationError{
				Field:   "proposed_clock_out",
				Message: "proposed_clock_out must not precede proposed_clock_in",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type DecideRequest struct {
	ID      string  `json:"-"`
	Comment *string `json:"comment,omitempty"`
}

type RejectRequest struct {
	ID      string `json:"-"`
	Comment string `json:"comment"`
}

func (r *RejectRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Comment) {
		errs = append(errs, validator.ValidationError{
			Field:   "comment",
			Message: "a comment explaining the rejection is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type Response struct {
	ID               string  `json:"id"`
	EmployeeID       string  `json:"employee_id"`
	EmployeeName     *string `json:"employee_name,omitempty"`
	Date             string  `json:"date"`
	Type             string  `json:"type"`
	ProposedClockIn  *string `json:"proposed_clock_in,omitempty"`
	ProposedClockOut *string `json:"proposed_clock_out,omitempty"`
	Reason           string  `json:"reason"`
	Status           string  `json:"status"`
	AdminComment     *string `json:"admin_comment,omitempty"`
	DecidedAt        *string `json:"decided_at,omitempty"`
	SubmittedAt      string  `json:"submitted_at"`
}

// MapToResponse converts a Request entity to its response shape.
func MapToResponse(req Request) Response {
	resp := Response{
		ID:           req.ID,
		EmployeeID:   req.EmployeeID,
		EmployeeName: req.EmployeeName,
		Date:         req.Date.Format("2006-01-02"),
		Type:         string(req.Type),
		Reason:       req.Reason,
		Status:       string(req.Status),
		AdminComment: req.AdminComment,
		SubmittedAt:  req.SubmittedAt.Format(time.RFC3339),
	}
	if req.ProposedClockIn != nil {
		s := req.ProposedClockIn.Format(time.RFC3339)
		resp.ProposedClockIn = &s
	}
	if req.ProposedClockOut != nil {
		s := req.ProposedClockOut.Format(time.RFC3339)
		resp.ProposedClockOut = &s
	}
	if req.DecidedAt != nil {
		s := req.DecidedAt.Format(time.RFC3339)
		resp.DecidedAt = &s
	}
	return resp
}
