// Package models defines the data shapes exchanged with the EasyApt API.
package models

// Roles assigned to user accounts.
const (
	RolePatient  = "patient"
	RoleProvider = "provider"
	RoleStaff    = "staff"
	RoleAdmin    = "admin"
)

// User is an account as returned by /auth/register and /auth/me.
type User struct {
	ID        int64  `json:"id"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	CreatedAt Time   `json:"created_at"`
}

// Token is the response of /auth/login.
type Token struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}
