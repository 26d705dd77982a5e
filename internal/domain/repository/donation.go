package repository

import (
	"context"

	"github.com/polkiloo/givebox/internal/domain/model"
)

// DonationRepository persists donations and reads them back per user.
type DonationRepository interface {
	Create(ctx context.Context, donation model.Donation) (*model.Donation, error)
	// ListByUser returns donations of the user ordered by date, newest first.
	ListByUser(ctx context.Context, userID string) ([]model.Donation, error)
}
