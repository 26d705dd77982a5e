package test

import (
	"context"
	"time"

	"github.com/polkiloo/givebox/internal/domain/model"
)

// MessageFacadeStub provides controllable behaviour for the contact endpoint.
type MessageFacadeStub struct {
	SubmitFn func(context.Context, string, string, string) (*model.Message, error)
}

// SubmitMessage delegates to provided function or echoes the message back.
func (s MessageFacadeStub) SubmitMessage(ctx context.Context, name, email, message string) (*model.Message, error) {
	if s.SubmitFn != nil {
		return s.SubmitFn(ctx, name, email, message)
	}
	return &model.Message{ID: "message-1", Name: name, Email: email, Message: message}, nil
}

// DonationFacadeStub simulates donation operations.
type DonationFacadeStub struct {
	DonateFn    func(context.Context, string, float64) (*model.Donation, error)
	DonationsFn func(context.Context, string) ([]model.Donation, error)
}

// Donate executes configured handler or accepts the donation.
func (s DonationFacadeStub) Donate(ctx context.Context, userID string, amount float64) (*model.Donation, error) {
	if s.DonateFn != nil {
		return s.DonateFn(ctx, userID, amount)
	}
	return &model.Donation{ID: "donation-1", UserID: userID, Amount: amount, Date: time.Unix(0, 0).UTC()}, nil
}

// Donations returns preconfigured history.
func (s DonationFacadeStub) Donations(ctx context.Context, userID string) ([]model.Donation, error) {
	if s.DonationsFn != nil {
		return s.DonationsFn(ctx, userID)
	}
	return []model.Donation{{ID: "donation-1", UserID: userID, Amount: 10, Date: time.Unix(0, 0).UTC()}}, nil
}

// HealthFacadeStub reports storage health.
type HealthFacadeStub struct {
	HealthErr error
}

// HealthCheck returns the configured error.
func (s HealthFacadeStub) HealthCheck(context.Context) error {
	return s.HealthErr
}
