package model

import "time"

// User represents a registered account able to sign in and donate.
type User struct {
	ID           string
	Username     string
	PasswordHash string
	CreatedAt    time.Time
}
