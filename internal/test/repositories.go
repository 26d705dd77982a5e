package test

import (
	"context"
	"fmt"
	"sync"

	domainErrors "github.com/polkiloo/givebox/internal/domain/errors"
	"github.com/polkiloo/givebox/internal/domain/model"
	"github.com/polkiloo/givebox/internal/domain/repository"
)

// UserRepositoryStub stores users in-memory for tests.
type UserRepositoryStub struct {
	Users map[string]*model.User
	Next  int
	Err   error
}

// NewUserRepositoryStub constructs stub repository with initialized maps.
func NewUserRepositoryStub() *UserRepositoryStub {
	return &UserRepositoryStub{
		Users: make(map[string]*model.User),
		Next:  1,
	}
}

// Create registers user unless already exists or stub has explicit error.
func (s *UserRepositoryStub) Create(ctx context.Context, username, passwordHash string) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if s.Users == nil {
		s.Users = make(map[string]*model.User)
	}
	if _, exists := s.Users[username]; exists {
		return nil, domainErrors.ErrAlreadyExists
	}
	if s.Next == 0 {
		s.Next = 1
	}
	user := &model.User{ID: fmt.Sprintf("user-%d", s.Next), Username: username, PasswordHash: passwordHash}
	s.Next++
	s.Users[username] = user
	return user, nil
}

// GetByUsername fetches user by username or returns not found.
func (s *UserRepositoryStub) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.Users[username]; ok {
		return user, nil
	}
	return nil, domainErrors.ErrNotFound
}

// MessageRepositoryStub records saved messages.
type MessageRepositoryStub struct {
	Saved []model.Message
	Err   error
}

// Create appends the message unless an error is configured.
func (s *MessageRepositoryStub) Create(ctx context.Context, msg model.Message) (*model.Message, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	msg.ID = fmt.Sprintf("message-%d", len(s.Saved)+1)
	s.Saved = append(s.Saved, msg)
	return &msg, nil
}

// DonationRepositoryStub keeps donations in memory and lists them newest first.
type DonationRepositoryStub struct {
	CreateFn func(context.Context, model.Donation) (*model.Donation, error)
	ListFn   func(context.Context, string) ([]model.Donation, error)

	mu    sync.Mutex
	Items []model.Donation
}

// Create stores the donation with a generated identifier.
func (s *DonationRepositoryStub) Create(ctx context.Context, donation model.Donation) (*model.Donation, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, donation)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	donation.ID = fmt.Sprintf("donation-%d", len(s.Items)+1)
	s.Items = append(s.Items, donation)
	return &donation, nil
}

// ListByUser returns donations of the user ordered by date descending.
func (s *DonationRepositoryStub) ListByUser(ctx context.Context, userID string) ([]model.Donation, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx, userID)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	result := make([]model.Donation, 0)
	for _, d := range s.Items {
		if d.UserID == userID {
			result = append(result, d)
		}
	}
	model.SortNewestFirst(result)
	return result, nil
}

// Count returns number of stored donations.
func (s *DonationRepositoryStub) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.Items)
}

// MemoryStore bundles in-memory repositories behind the repository.Store contract.
type MemoryStore struct {
	UserRepo     *UserRepositoryStub
	MessageRepo  *MessageRepositoryStub
	DonationRepo *DonationRepositoryStub
	HealthErr    error

	mu     sync.Mutex
	closed bool
}

// NewMemoryStore builds an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		UserRepo:     NewUserRepositoryStub(),
		MessageRepo:  &MessageRepositoryStub{},
		DonationRepo: &DonationRepositoryStub{},
	}
}

func (m *MemoryStore) Users() repository.UserRepository         { return m.UserRepo }
func (m *MemoryStore) Messages() repository.MessageRepository   { return m.MessageRepo }
func (m *MemoryStore) Donations() repository.DonationRepository { return m.DonationRepo }

// HealthCheck returns the configured error.
func (m *MemoryStore) HealthCheck(context.Context) error { return m.HealthErr }

// Close marks the store as closed.
func (m *MemoryStore) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
}

// Closed reports whether Close has been called.
func (m *MemoryStore) Closed() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.closed
}

var _ repository.Store = (*MemoryStore)(nil)
