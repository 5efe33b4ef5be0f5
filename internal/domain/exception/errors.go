package exception

import "errors"

// Exception domain errors
var (
	ErrRequestNotFound  = errors.New("exception request not found")
	ErrAlreadyProcessed = errors.New("exception request has already been approved or rejected")
	ErrDuplicatePending = errors.New("a pending exception request already exists for this date")
)
