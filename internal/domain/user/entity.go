package user

import "time"

type Role string

const (
	RoleAdmin    Role = "admin"    // Full access, approves requests
	RoleEmployee Role = "employee" // Regular employee
)

var RoleValues = []string{
	string(RoleAdmin),
	string(RoleEmployee),
}

type User struct {
	ID              string
	Email           string
	PasswordHash    *string
	Role            Role
	OAuthProvider   *string
	OAuthProviderID *string
	CreatedAt       time.Time
	UpdatedAt       time.Time

	// DTO / Join
	EmployeeID *string
}

// IsAdmin checks if user holds the admin role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// CanApprove checks if user can decide leave and exception requests.
func (u *User) CanApprove() bool {
	return u.IsAdmin()
}

// CanViewFullProfile checks if user may see another employee's full record.
func (u *User) CanViewFullProfile() bool {
	return u.IsAdmin()
}
