package usecase

import (
	"context"
	"time"

	domainErrors "github.com/polkiloo/givebox/internal/domain/errors"
	"github.com/polkiloo/givebox/internal/domain/model"
	"github.com/polkiloo/givebox/internal/domain/repository"
)

// DonationUseCase records donations and reads a user's history.
type DonationUseCase struct {
	donations repository.DonationRepository
	now       func() time.Time
}

// NewDonationUseCase constructs DonationUseCase.
func NewDonationUseCase(donations repository.DonationRepository) *DonationUseCase {
	return &DonationUseCase{donations: donations, now: time.Now}
}

// Donate records amount for the authenticated user, dated now.
func (u *DonationUseCase) Donate(ctx context.Context, userID string, amount float64) (*model.Donation, error) {
	if userID == "" {
		return nil, domainErrors.ErrInvalidInput
	}
	if err := ValidateDonationAmount(amount); err != nil {
		return nil, err
	}
	return u.donations.Create(ctx, model.Donation{
		UserID: userID,
		Amount: amount,
		Date:   u.now().UTC(),
	})
}

// History lists the user's donations, newest first. An empty history is an empty slice.
func (u *DonationUseCase) History(ctx context.Context, userID string) ([]model.Donation, error) {
	items, err := u.donations.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if items == nil {
		return []model.Donation{}, nil
	}
	model.SortNewestFirst(items)
	return items, nil
}
