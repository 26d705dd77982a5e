package repository

import (
	"context"

	"github.com/polkiloo/givebox/internal/domain/model"
)

// MessageRepository stores contact messages.
type MessageRepository interface {
	Create(ctx context.Context, msg model.Message) (*model.Message, error)
}
