package domain

import "time"

type User struct {
	ID        uint      `json:"id"`
	Email     string    `json:"email"`
	Password  string    `json:"-"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Session binds a bearer token to a user. A token without a session is rejected.
type Session struct {
	ID        uint
	UserID    uint
	Token     string
	CreatedAt time.Time
}
