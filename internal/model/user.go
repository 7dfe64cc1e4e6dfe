package model

import "time"

// User holds the acting user's identity. Email is the unique key and is
// compared case-insensitively. Only identity and the authenticated flag
// are consumed by the rest of the store.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// Session is the current auth state carried in the store snapshot.
type Session struct {
	UserID          string `json:"user_id,omitempty"`
	IsAuthenticated bool   `json:"is_authenticated"`
}
