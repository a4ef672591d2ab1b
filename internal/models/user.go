package models

import "time"

// Role represents user role
type Role string

const (
	RolePhotographer Role = "photographer"
	RoleClient       Role = "client"
)

// Valid reports whether r is a known role
func (r Role) Valid() bool {
	return r == RolePhotographer || r == RoleClient
}

// User is an account able to sign in
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	Name         string    `json:"name"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Identity is the authenticated caller as seen by the engines
type Identity struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Role Role   `json:"role"`
}

// Identity returns the caller identity of the user
func (u *User) Identity() Identity {
	return Identity{ID: u.ID, Name: u.Name, Role: u.Role}
}
