package models

import "time"

// Roles known to the application. Registration accepts any non-empty role;
// RoleAdmin marks the built-in account seeded at start.
const (
	RoleAdmin    = "admin"
	RoleEmployee = "employee"
	RoleManager  = "manager"
	RoleHR       = "hr"
)

// User is a registered account. Password is kept in plaintext.
type User struct {
	ID        string    `json:"id"`
	FullName  string    `json:"fullName"`
	Email     string    `json:"email"`
	Password  string    `json:"password"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

// Identity returns the public part of u held by a session.
func (u User) Identity() Identity {
	return Identity{Email: u.Email, Role: u.Role, FullName: u.FullName}
}

// Identity is the public view of the logged-in user.
type Identity struct {
	Email    string `json:"email"`
	Role     string `json:"role"`
	FullName string `json:"fullName"`
}

// String formats the identity the way it is shown in the status line.
func (i Identity) String() string {
	return i.Email + " (" + i.Role + ")"
}
