package mysql

import (
	"context"
	"fmt"
	"time"

	mysqldriver "github.com/go-sql-driver/mysql"
	"github.com/rs/zerolog"
	gormmysql "gorm.io/driver/mysql"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/polkiloo/givebox/internal/domain/repository"
)

var openDialector = func(dsn string) gorm.Dialector {
	return gormmysql.Open(dsn)
}

// Storage is a repository facade backed by MySQL through gorm.
type Storage struct {
	db     *gorm.DB
	logger zerolog.Logger
}

var _ repository.Store = (*Storage)(nil)

// normalizeDSN forces DATETIME columns to be decoded as time.Time in UTC.
func normalizeDSN(dsn string) (string, error) {
	cfg, err := mysqldriver.ParseDSN(dsn)
	if err != nil {
		return "", err
	}
	cfg.ParseTime = true
	cfg.Loc = time.UTC
	return cfg.FormatDSN(), nil
}

// New opens the connection and migrates the users, messages and donations tables.
func New(ctx context.Context, dsn string, logger zerolog.Logger) (*Storage, error) {
	dsn, err := normalizeDSN(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}

	db, err := gorm.Open(openDialector(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}

	storage := &Storage{db: db, logger: logger}
	if err := db.WithContext(ctx).AutoMigrate(&userRecord{}, &messageRecord{}, &donationRecord{}); err != nil {
		storage.Close()
		return nil, fmt.Errorf("migrate schema: %w", err)
	}

	logger.Info().Msg("mysql storage ready")
	return storage, nil
}

// Close releases database resources.
func (s *Storage) Close() {
	if s.db == nil {
		return
	}
	sqlDB, err := s.db.DB()
	if err != nil {
		return
	}
	if err := sqlDB.Close(); err != nil {
		s.logger.Warn().Err(err).Msg("close mysql connection")
	}
}

func (s *Storage) Users() repository.UserRepository {
	return &userRepository{db: s.db}
}

func (s *Storage) Messages() repository.MessageRepository {
	return &messageRepository{db: s.db}
}

func (s *Storage) Donations() repository.DonationRepository {
	return &donationRepository{db: s.db}
}

// HealthCheck verifies database connectivity.
func (s *Storage) HealthCheck(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return sqlDB.PingContext(ctx)
}
