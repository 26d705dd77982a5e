package repository

import "context"

// Factory describes access to different domain repositories.
type Factory interface {
	Users() UserRepository
	Messages() MessageRepository
	Donations() DonationRepository
}

// Store is a storage backend able to hand out repositories.
type Store interface {
	Factory
	HealthCheck(ctx context.Context) error
	Close()
}
