package models

import "time"

// Session is the client-side login state persisted in the local cache so
// the TUI can resume without re-entering credentials while the token is
// still valid.
type Session struct {
	UserID    int64     `json:"user_id"`
	Email     string    `json:"email"`
	Token     string    `json:"token"`
	CreatedAt time.Time `json:"created_at"`
}
