package domain

import "time"

type Role string

const (
	RoleAdmin    Role = "ADMIN"
	RoleEmployee Role = "EMPLOYEE"
)

type User struct {
	ID        string
	Name      string
	Email     string
	Password  string
	Role      Role
	CreatedAt time.Time
}

// Identity is the authenticated caller attached to every operation by the
// HTTP boundary. It never carries the credential.
type Identity struct {
	ID    string
	Name  string
	Email string
	Role  Role
}

func (i Identity) IsAdmin() bool {
	return i.Role == RoleAdmin
}

type RegisterInput struct {
	Name     string
	Email    string
	Password string
}
