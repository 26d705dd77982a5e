package usecase

import (
	"math"
	"strings"

	domainErrors "github.com/polkiloo/givebox/internal/domain/errors"
)

// ValidateCredentials trims the username and rejects empty fields.
func ValidateCredentials(username, password string) (string, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return "", domainErrors.ErrInvalidInput
	}
	return username, nil
}

// ValidateDonationAmount accepts strictly positive finite amounts.
func ValidateDonationAmount(amount float64) error {
	if math.IsNaN(amount) || math.IsInf(amount, 0) || amount <= 0 {
		return domainErrors.ErrInvalidAmount
	}
	return nil
}
