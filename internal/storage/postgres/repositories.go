package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	domainErrors "github.com/polkiloo/givebox/internal/domain/errors"
	"github.com/polkiloo/givebox/internal/domain/model"
)

const uniqueViolation = "23505"

type userRepository struct {
	storage *Storage
}

type messageRepository struct {
	storage *Storage
}

type donationRepository struct {
	storage *Storage
}

// --- UserRepository implementation ---

func (r *userRepository) Create(ctx context.Context, username, passwordHash string) (*model.User, error) {
	const query = `INSERT INTO users (username, password_hash) VALUES ($1, $2) RETURNING id::text, created_at`
	u := model.User{Username: username, PasswordHash: passwordHash}
	err := r.storage.pool.QueryRow(ctx, query, username, passwordHash).Scan(&u.ID, &u.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return nil, domainErrors.ErrAlreadyExists
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}
	return &u, nil
}

func (r *userRepository) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	const query = `SELECT id::text, username, password_hash, created_at FROM users WHERE username=$1`
	var u model.User
	err := r.storage.pool.QueryRow(ctx, query, username).Scan(&u.ID, &u.Username, &u.PasswordHash, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, fmt.Errorf("select user: %w", err)
	}
	return &u, nil
}

// --- MessageRepository implementation ---

func (r *messageRepository) Create(ctx context.Context, msg model.Message) (*model.Message, error) {
	const query = `INSERT INTO messages (name, email, message) VALUES ($1, $2, $3) RETURNING id::text, created_at`
	err := r.storage.pool.QueryRow(ctx, query, msg.Name, msg.Email, msg.Message).Scan(&msg.ID, &msg.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("insert message: %w", err)
	}
	return &msg, nil
}

// --- DonationRepository implementation ---

func (r *donationRepository) Create(ctx context.Context, donation model.Donation) (*model.Donation, error) {
	const query = `INSERT INTO donations (user_id, amount, date) VALUES ($1::uuid, $2, $3) RETURNING id::text`
	if donation.Date.IsZero() {
		donation.Date = time.Now().UTC()
	}
	err := r.storage.pool.QueryRow(ctx, query, donation.UserID, donation.Amount, donation.Date).Scan(&donation.ID)
	if err != nil {
		return nil, fmt.Errorf("insert donation: %w", err)
	}
	return &donation, nil
}

func (r *donationRepository) ListByUser(ctx context.Context, userID string) ([]model.Donation, error) {
	const query = `SELECT id::text, user_id::text, amount, date
                   FROM donations WHERE user_id = $1::uuid ORDER BY date DESC`
	// no user can own a non-uuid id
	if _, err := uuid.Parse(userID); err != nil {
		return []model.Donation{}, nil
	}

	rows, err := r.storage.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("select donations: %w", err)
	}
	defer rows.Close()

	result := make([]model.Donation, 0)
	for rows.Next() {
		var d model.Donation
		if err := rows.Scan(&d.ID, &d.UserID, &d.Amount, &d.Date); err != nil {
			return nil, fmt.Errorf("scan donation: %w", err)
		}
		result = append(result, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate donations: %w", err)
	}
	return result, nil
}
