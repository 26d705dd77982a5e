package mysql

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/polkiloo/givebox/internal/domain/model"
)

type userRecord struct {
	ID           string `gorm:"type:char(36);primaryKey"`
	Username     string `gorm:"type:varchar(191);uniqueIndex;not null"`
	PasswordHash string `gorm:"type:varchar(255);not null"`
	CreatedAt    time.Time
}

func (userRecord) TableName() string { return "users" }

func (r *userRecord) BeforeCreate(*gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}

func (r userRecord) toModel() *model.User {
	return &model.User{ID: r.ID, Username: r.Username, PasswordHash: r.PasswordHash, CreatedAt: r.CreatedAt}
}

type messageRecord struct {
	ID        string `gorm:"type:char(36);primaryKey"`
	Name      string `gorm:"type:varchar(255)"`
	Email     string `gorm:"type:varchar(255)"`
	Message   string `gorm:"type:text"`
	CreatedAt time.Time
}

func (messageRecord) TableName() string { return "messages" }

func (r *messageRecord) BeforeCreate(*gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}

type donationRecord struct {
	ID     string    `gorm:"type:char(36);primaryKey"`
	UserID string    `gorm:"type:char(36);not null;index:idx_donations_user,priority:1"`
	Amount float64   `gorm:"not null"`
	Date   time.Time `gorm:"not null;index:idx_donations_user,priority:2"`
}

func (donationRecord) TableName() string { return "donations" }

func (r *donationRecord) BeforeCreate(*gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}

func (r donationRecord) toModel() model.Donation {
	return model.Donation{ID: r.ID, UserID: r.UserID, Amount: r.Amount, Date: r.Date}
}
