package domain

import "time"

// User models a registered account holder. Users are created at sign-up and
// never mutated or deleted afterwards.
type User struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// Session binds an opaque bearer token to a user. One row is created per
// login, so a user may hold several live sessions at once. A session stays
// valid until its row is deleted; there is no expiry.
type Session struct {
	Token  string `json:"token"`
	UserID int64  `json:"user_id"`
}
