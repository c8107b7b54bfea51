package users

import (
	"time"
)

// User is an account of the recipe app. IsPublic controls whether the user's
// posts show up in the public feed and whether follow requests are auto-accepted.
type User struct {
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
	Avatar    *string   `json:"avatar,omitempty" db:"avatar"`
	Name      string    `json:"name" db:"name"`
	Email     string    `json:"email" db:"email"`
	ID        int64     `json:"id" db:"id"`
	IsPublic  bool      `json:"is_public" db:"is_public"`
}

// Summary is the compact author/liker shape embedded in post and comment views.
type Summary struct {
	Avatar *string `json:"avatar,omitempty"`
	Name   string  `json:"name"`
	ID     int64   `json:"id"`
}

// Summary returns the compact view of u.
func (u *User) Summary() Summary {
	return Summary{ID: u.ID, Name: u.Name, Avatar: u.Avatar}
}

// CreateUserRequest is the input for creating a user row.
type CreateUserRequest struct {
	Avatar   *string `json:"avatar,omitempty"`
	Name     string  `json:"name"`
	Email    string  `json:"email"`
	IsPublic bool    `json:"is_public"`
}

// SetVisibilityRequest toggles the public flag of the caller's account.
type SetVisibilityRequest struct {
	IsPublic *bool `json:"is_public"`
}
