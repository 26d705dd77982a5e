package usecase

import (
	"context"

	"github.com/polkiloo/givebox/internal/domain/model"
	"github.com/polkiloo/givebox/internal/domain/repository"
)

// MessageUseCase stores contact form submissions.
type MessageUseCase struct {
	messages repository.MessageRepository
}

// NewMessageUseCase constructs MessageUseCase.
func NewMessageUseCase(messages repository.MessageRepository) *MessageUseCase {
	return &MessageUseCase{messages: messages}
}

// Submit persists the message as given. Fields are not validated.
func (u *MessageUseCase) Submit(ctx context.Context, name, email, message string) (*model.Message, error) {
	return u.messages.Create(ctx, model.Message{Name: name, Email: email, Message: message})
}
