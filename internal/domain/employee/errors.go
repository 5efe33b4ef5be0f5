package employee

import "errors"

var (
	ErrEmployeeNotFound      = errors.New("employee not found")
	ErrEmployeeCodeTaken     = errors.New("employee code is already in use")
	ErrEmployeeEmailTaken    = errors.New("employee email is already in use")
	ErrEmployeeNotActive     = errors.New("employee is not active")
	ErrEmployeeAlreadyLinked = errors.New("employee is already linked to a user account")
)
