package leave

import "errors"

var (
	ErrRequestNotFound  = errors.New("leave request not found")
	ErrAlreadyProcessed = errors.New("leave request has already been processed")
	ErrOverlapPending   = errors.New("a pending leave request already overlaps the requested range")
)
