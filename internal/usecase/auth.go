package usecase

import (
	"context"
	"errors"
	"fmt"

	domainErrors "github.com/polkiloo/givebox/internal/domain/errors"
	"github.com/polkiloo/givebox/internal/domain/model"
	"github.com/polkiloo/givebox/internal/domain/repository"
	pkgAuth "github.com/polkiloo/givebox/internal/pkg/auth"
)

// AuthUseCase handles user lifecycle and token management.
type AuthUseCase struct {
	users  repository.UserRepository
	hasher pkgAuth.PasswordHasher
	tokens pkgAuth.Strategy
}

// NewAuthUseCase constructs AuthUseCase.
func NewAuthUseCase(users repository.UserRepository, hasher pkgAuth.PasswordHasher, strategy pkgAuth.Strategy) *AuthUseCase {
	return &AuthUseCase{users: users, hasher: hasher, tokens: strategy}
}

// Register creates a new user. No token is issued; the client logs in separately.
func (u *AuthUseCase) Register(ctx context.Context, username, password string) (*model.User, error) {
	username, err := ValidateCredentials(username, password)
	if err != nil {
		return nil, err
	}

	hash, err := u.hasher.Hash(password)
	if err != nil {
		if errors.Is(err, pkgAuth.ErrPasswordTooLong) {
			return nil, fmt.Errorf("%w: %w", domainErrors.ErrInvalidInput, err)
		}
		return nil, fmt.Errorf("hash password: %w", err)
	}

	return u.users.Create(ctx, username, hash)
}

// Authenticate validates credentials and returns the user with a fresh token.
func (u *AuthUseCase) Authenticate(ctx context.Context, username, password string) (*model.User, string, error) {
	username, err := ValidateCredentials(username, password)
	if err != nil {
		return nil, "", err
	}

	usr, err := u.users.GetByUsername(ctx, username)
	if err != nil {
		return nil, "", err
	}

	if err := u.hasher.Compare(usr.PasswordHash, password); err != nil {
		return nil, "", domainErrors.ErrInvalidCredentials
	}

	token, err := u.tokens.IssueToken(usr.ID)
	if err != nil {
		return nil, "", err
	}

	return usr, token, nil
}

// ParseToken extracts user ID from provided token.
func (u *AuthUseCase) ParseToken(token string) (string, error) {
	if token == "" {
		return "", pkgAuth.ErrInvalidToken
	}
	return u.tokens.ParseToken(token)
}
