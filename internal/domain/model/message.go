package model

import "time"

// Message is a contact form submission. It is not linked to any user.
type Message struct {
	ID        string
	Name      string
	Email     string
	Message   string
	CreatedAt time.Time
}
