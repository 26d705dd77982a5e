package app

import (
	"context"

	"github.com/polkiloo/givebox/internal/domain/model"
	"github.com/polkiloo/givebox/internal/usecase"
)

// HealthChecker reports whether the storage backend is reachable.
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

// GiveboxFacade exposes use cases to the HTTP layer.
type GiveboxFacade struct {
	auth      *usecase.AuthUseCase
	messages  *usecase.MessageUseCase
	donations *usecase.DonationUseCase
	health    HealthChecker
}

func NewGiveboxFacade(auth *usecase.AuthUseCase, messages *usecase.MessageUseCase, donations *usecase.DonationUseCase, health HealthChecker) *GiveboxFacade {
	return &GiveboxFacade{auth: auth, messages: messages, donations: donations, health: health}
}

func (f *GiveboxFacade) Register(ctx context.Context, username, password string) error {
	_, err := f.auth.Register(ctx, username, password)
	return err
}

func (f *GiveboxFacade) Authenticate(ctx context.Context, username, password string) (string, error) {
	_, token, err := f.auth.Authenticate(ctx, username, password)
	return token, err
}

func (f *GiveboxFacade) ParseToken(token string) (string, error) {
	return f.auth.ParseToken(token)
}

func (f *GiveboxFacade) SubmitMessage(ctx context.Context, name, email, message string) (*model.Message, error) {
	return f.messages.Submit(ctx, name, email, message)
}

func (f *GiveboxFacade) Donate(ctx context.Context, userID string, amount float64) (*model.Donation, error) {
	return f.donations.Donate(ctx, userID, amount)
}

func (f *GiveboxFacade) Donations(ctx context.Context, userID string) ([]model.Donation, error) {
	return f.donations.History(ctx, userID)
}

func (f *GiveboxFacade) HealthCheck(ctx context.Context) error {
	return f.health.HealthCheck(ctx)
}
