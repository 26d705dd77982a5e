package mysql

import (
	"context"
	"errors"
	"fmt"
	"time"

	mysqldriver "github.com/go-sql-driver/mysql"
	"gorm.io/gorm"

	domainErrors "github.com/polkiloo/givebox/internal/domain/errors"
	"github.com/polkiloo/givebox/internal/domain/model"
)

const duplicateEntry = 1062

type userRepository struct {
	db *gorm.DB
}

type messageRepository struct {
	db *gorm.DB
}

type donationRepository struct {
	db *gorm.DB
}

func isDuplicate(err error) bool {
	var myErr *mysqldriver.MySQLError
	if errors.As(err, &myErr) && myErr.Number == duplicateEntry {
		return true
	}
	return errors.Is(err, gorm.ErrDuplicatedKey)
}

func (r *userRepository) Create(ctx context.Context, username, passwordHash string) (*model.User, error) {
	rec := userRecord{Username: username, PasswordHash: passwordHash}
	if err := r.db.WithContext(ctx).Create(&rec).Error; err != nil {
		if isDuplicate(err) {
			return nil, domainErrors.ErrAlreadyExists
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}
	return rec.toModel(), nil
}

func (r *userRepository) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	var rec userRecord
	if err := r.db.WithContext(ctx).Where("username = ?", username).First(&rec).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, fmt.Errorf("select user: %w", err)
	}
	return rec.toModel(), nil
}

func (r *messageRepository) Create(ctx context.Context, msg model.Message) (*model.Message, error) {
	rec := messageRecord{Name: msg.Name, Email: msg.Email, Message: msg.Message}
	if err := r.db.WithContext(ctx).Create(&rec).Error; err != nil {
		return nil, fmt.Errorf("insert message: %w", err)
	}
	msg.ID = rec.ID
	msg.CreatedAt = rec.CreatedAt
	return &msg, nil
}

func (r *donationRepository) Create(ctx context.Context, donation model.Donation) (*model.Donation, error) {
	if donation.Date.IsZero() {
		donation.Date = time.Now().UTC()
	}
	rec := donationRecord{UserID: donation.UserID, Amount: donation.Amount, Date: donation.Date}
	if err := r.db.WithContext(ctx).Create(&rec).Error; err != nil {
		return nil, fmt.Errorf("insert donation: %w", err)
	}
	donation.ID = rec.ID
	return &donation, nil
}

func (r *donationRepository) ListByUser(ctx context.Context, userID string) ([]model.Donation, error) {
	var recs []donationRecord
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("date DESC").Find(&recs).Error; err != nil {
		return nil, fmt.Errorf("select donations: %w", err)
	}
	result := make([]model.Donation, 0, len(recs))
	for _, rec := range recs {
		result = append(result, rec.toModel())
	}
	return result, nil
}
