package dto

import "time"

// DonateRequest holds the donated amount. A nil Amount means the field was absent.
type DonateRequest struct {
	Amount *float64 `json:"amount"`
}

// DonationResponse describes a single donation in the history listing.
type DonationResponse struct {
	ID     string    `json:"id"`
	UserID string    `json:"userId"`
	Amount float64   `json:"amount"`
	Date   time.Time `json:"date"`
}

// HealthResponse reports service health.
type HealthResponse struct {
	Status string `json:"status"`
}
