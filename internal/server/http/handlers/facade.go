package handlers

import (
	"context"

	"github.com/polkiloo/givebox/internal/domain/model"
)

// AuthFacade describes authentication capabilities required by handlers.
type AuthFacade interface {
	Register(ctx context.Context, username, password string) error
	Authenticate(ctx context.Context, username, password string) (string, error)
	ParseToken(token string) (string, error)
}

// MessageFacade stores contact messages.
type MessageFacade interface {
	SubmitMessage(ctx context.Context, name, email, message string) (*model.Message, error)
}

// DonationFacade provides donation operations for authenticated users.
type DonationFacade interface {
	Donate(ctx context.Context, userID string, amount float64) (*model.Donation, error)
	Donations(ctx context.Context, userID string) ([]model.Donation, error)
}

// HealthFacade reports backend availability.
type HealthFacade interface {
	HealthCheck(ctx context.Context) error
}

// GiveboxFacade aggregates the full set of operations used across handlers.
type GiveboxFacade interface {
	AuthFacade
	MessageFacade
	DonationFacade
	HealthFacade
}
